package cholesky

import (
	"reflect"
	"testing"
)

func TestRelaxSupernodesEmptyCutoffsMatchesFundamental(t *testing.T) {
	a := scenarioAMatrix()
	etree, colCounts := EliminationTreeAndColumnCounts(a)
	fund := DiscoverFundamentalSupernodes(etree, colCounts)

	relaxed := RelaxSupernodes(fund, colCounts, []RelaxCutoff{})

	if !reflect.DeepEqual(relaxed.SuperBegin, fund.SuperBegin) {
		t.Errorf("SuperBegin = %v, want %v (fundamental)", relaxed.SuperBegin, fund.SuperBegin)
	}
	if !reflect.DeepEqual(relaxed.IndexToSuper, fund.IndexToSuper) {
		t.Errorf("IndexToSuper = %v, want %v (fundamental)", relaxed.IndexToSuper, fund.IndexToSuper)
	}
	if !reflect.DeepEqual(relaxed.SuperEtree, fund.SuperEtree) {
		t.Errorf("SuperEtree = %v, want %v (fundamental)", relaxed.SuperEtree, fund.SuperEtree)
	}
}

func TestRelaxSupernodesFullyPermissiveMergesAtLeastAsMuch(t *testing.T) {
	a := scenarioAMatrix()
	etree, colCounts := EliminationTreeAndColumnCounts(a)
	fund := DiscoverFundamentalSupernodes(etree, colCounts)

	permissive := []RelaxCutoff{{SizeCutoff: 1 << 30, DensityCutoff: 1.0}}
	relaxed := RelaxSupernodes(fund, colCounts, permissive)

	if relaxed.NumSuper() > fund.NumSuper() {
		t.Errorf("NumSuper() = %d, want <= fundamental count %d", relaxed.NumSuper(), fund.NumSuper())
	}

	// Every column still belongs to exactly one supernode, partitioning
	// [0, n).
	n := len(colCounts)
	seen := make([]bool, n)
	for s := 0; s < relaxed.NumSuper(); s++ {
		for j := relaxed.SuperBegin[s]; j < relaxed.SuperBegin[s+1]; j++ {
			if seen[j] {
				t.Fatalf("column %d assigned to more than one supernode", j)
			}
			seen[j] = true
			if relaxed.IndexToSuper[j] != s {
				t.Errorf("IndexToSuper[%d] = %d, want %d", j, relaxed.IndexToSuper[j], s)
			}
		}
	}
	for j, s := range seen {
		if !s {
			t.Errorf("column %d not covered by any supernode", j)
		}
	}
}

func TestRelaxSupernodesDefaultCutoffsAreValidPartition(t *testing.T) {
	a := scenarioAMatrix()
	etree, colCounts := EliminationTreeAndColumnCounts(a)
	fund := DiscoverFundamentalSupernodes(etree, colCounts)

	relaxed := RelaxSupernodes(fund, colCounts, nil)

	if relaxed.SuperBegin[0] != 0 || relaxed.SuperBegin[relaxed.NumSuper()] != len(colCounts) {
		t.Errorf("SuperBegin bounds = %v, want to span [0, %d]", relaxed.SuperBegin, len(colCounts))
	}
	for s := 0; s < relaxed.NumSuper(); s++ {
		if relaxed.Size(s) <= 0 {
			t.Errorf("supernode %d has non-positive size %d", s, relaxed.Size(s))
		}
	}
}
