package cholesky

import (
	"reflect"
	"testing"
)

func TestDiscoverFundamentalSupernodesScenarioA(t *testing.T) {
	a := scenarioAMatrix()
	etree, colCounts := EliminationTreeAndColumnCounts(a)

	f := DiscoverFundamentalSupernodes(etree, colCounts)

	wantSuperBegin := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 11}
	wantIndexToSuper := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 9}
	wantSuperEtree := []int{5, 2, 7, 5, 7, 6, 8, 9, 9, NoParent}

	if !reflect.DeepEqual(f.SuperBegin, wantSuperBegin) {
		t.Errorf("SuperBegin = %v, want %v", f.SuperBegin, wantSuperBegin)
	}
	if !reflect.DeepEqual(f.IndexToSuper, wantIndexToSuper) {
		t.Errorf("IndexToSuper = %v, want %v", f.IndexToSuper, wantIndexToSuper)
	}
	if !reflect.DeepEqual(f.SuperEtree, wantSuperEtree) {
		t.Errorf("SuperEtree = %v, want %v", f.SuperEtree, wantSuperEtree)
	}
	if f.NumSuper() != 10 {
		t.Errorf("NumSuper() = %d, want 10", f.NumSuper())
	}
}
