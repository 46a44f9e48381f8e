package cholesky

import "testing"

func TestFactorizeSimplicialSymbolicScenarioA(t *testing.T) {
	a := scenarioAMatrix()
	sym := FactorizeSimplicialSymbolic(a)

	wantColCounts := []int{3, 3, 4, 3, 3, 4, 4, 3, 3, 2, 1}

	if sym.N != 11 {
		t.Fatalf("N = %d, want 11", sym.N)
	}
	for j := 0; j < sym.N; j++ {
		col := sym.Col(j)
		if len(col) != wantColCounts[j] {
			t.Errorf("column %d: len = %d, want %d", j, len(col), wantColCounts[j])
		}
		if len(col) == 0 || col[0] != j {
			t.Errorf("column %d: diagonal entry missing or not first: %v", j, col)
		}
		for i := 1; i < len(col); i++ {
			if col[i-1] >= col[i] {
				t.Errorf("column %d: row indices not strictly increasing: %v", j, col)
			}
		}
	}

	if sym.NNZ() != sym.ColPtr[sym.N] {
		t.Errorf("NNZ() = %d, want %d", sym.NNZ(), sym.ColPtr[sym.N])
	}
}

func TestFactorizeSimplicialSymbolicMatchesColCounts(t *testing.T) {
	a := scenarioAMatrix()
	_, wantColCounts := EliminationTreeAndColumnCounts(a)
	sym := FactorizeSimplicialSymbolic(a)

	for j := 0; j < sym.N; j++ {
		if got := len(sym.Col(j)); got != wantColCounts[j] {
			t.Errorf("column %d: len(Col) = %d, colCounts = %d", j, got, wantColCounts[j])
		}
	}
}
