package cholesky

import (
	"testing"

	"github.com/sparsela/sparsechol"
)

// scenarioAMatrix builds the 11x11 fixture from the package's testable
// properties scenario A: a symmetric matrix given as full (both triangles)
// CSC column data.
func scenarioAMatrix() *sparse.SymbolicCSC {
	colPtr := []int{0, 3, 6, 10, 13, 16, 21, 24, 29, 31, 37, 43}
	rowInd := []int{
		0, 5, 6,
		1, 2, 7,
		1, 2, 9, 10,
		3, 5, 9,
		4, 7, 10,
		0, 3, 5, 8, 9,
		0, 6, 10,
		1, 4, 7, 9, 10,
		5, 8,
		2, 3, 5, 7, 9, 10,
		2, 4, 6, 7, 9, 10,
	}
	return sparse.NewSymbolicCSC(11, colPtr, rowInd)
}

func TestEliminationTreeAndColumnCountsScenarioA(t *testing.T) {
	a := scenarioAMatrix()

	etree, colCounts := EliminationTreeAndColumnCounts(a)

	wantEtree := []int{5, 2, 7, 5, 7, 6, 8, 9, 9, 10, NoParent}
	wantColCounts := []int{3, 3, 4, 3, 3, 4, 4, 3, 3, 2, 1}

	if len(etree) != len(wantEtree) {
		t.Fatalf("len(etree) = %d, want %d", len(etree), len(wantEtree))
	}
	for j := range wantEtree {
		if etree[j] != wantEtree[j] {
			t.Errorf("etree[%d] = %d, want %d", j, etree[j], wantEtree[j])
		}
	}
	for j := range wantColCounts {
		if colCounts[j] != wantColCounts[j] {
			t.Errorf("colCounts[%d] = %d, want %d", j, colCounts[j], wantColCounts[j])
		}
	}
}

func TestEliminationTreeInvariants(t *testing.T) {
	a := scenarioAMatrix()
	etree, colCounts := EliminationTreeAndColumnCounts(a)

	for j, p := range etree {
		if p != NoParent && p <= j {
			t.Errorf("etree[%d] = %d violates etree[j] > j", j, p)
		}
	}
	for j, c := range colCounts {
		if c < 1 {
			t.Errorf("colCounts[%d] = %d, want >= 1", j, c)
		}
	}

	// Acyclic: climbing from any node must reach NoParent in at most n
	// steps.
	n := a.N()
	for j := 0; j < n; j++ {
		steps := 0
		for current := j; current != NoParent; current = etree[current] {
			steps++
			if steps > n {
				t.Fatalf("etree has a cycle reachable from %d", j)
			}
		}
	}
}
