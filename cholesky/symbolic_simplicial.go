package cholesky

import (
	"github.com/sparsela/sparsechol"
	"github.com/sparsela/sparsechol/stack"
)

// SymbolicSimplicial is the pattern of L for a simplicial (non-supernodal)
// numeric factorization, plus the elimination tree it was built from (kept
// around because both the up-looking numeric kernel and a later solve need
// to climb it).
type SymbolicSimplicial struct {
	N      int
	ColPtr []int
	RowInd []int
	Etree  []int
}

// NNZ returns the number of stored entries of L (including the diagonal).
func (s *SymbolicSimplicial) NNZ() int { return s.ColPtr[s.N] }

// LenValues returns the size of the value buffer FactorizeSimplicialNumeric
// needs, i.e. NNZ().
func (s *SymbolicSimplicial) LenValues() int { return s.NNZ() }

// Col returns the row indices of column j of L, in increasing order with
// the diagonal entry j first.
func (s *SymbolicSimplicial) Col(j int) []int {
	return s.RowInd[s.ColPtr[j]:s.ColPtr[j+1]]
}

// FactorizeSimplicialSymbolic builds the column pattern of L from a's upper
// triangle: L_col_ptr is the exclusive prefix sum of the column counts,
// L_row_ind is filled by placing the diagonal at the head of each column
// and then, for every k, appending row k to every column j in Ereach(k) —
// the row indices within a column end up strictly increasing because k
// runs in increasing order.
func FactorizeSimplicialSymbolic(a *sparse.SymbolicCSC) *SymbolicSimplicial {
	n := a.N()
	etree, colCounts := EliminationTreeAndColumnCounts(a)

	colPtr := make([]int, n+1)
	for j := 0; j < n; j++ {
		colPtr[j+1] = colPtr[j] + colCounts[j]
	}
	rowInd := make([]int, colPtr[n])

	// fillPos[j] is the next free slot in column j; the diagonal occupies
	// the first slot, so later appends start one past it.
	fillPos := make([]int, n)
	for j := 0; j < n; j++ {
		rowInd[colPtr[j]] = j
		fillPos[j] = colPtr[j] + 1
	}

	marked := make([]bool, n)
	s := stack.New(EreachReq(n))
	for k := 0; k < n; k++ {
		reach := Ereach(a, etree, k, marked, s)
		for _, j := range reach {
			rowInd[fillPos[j]] = k
			fillPos[j]++
		}
	}

	return &SymbolicSimplicial{N: n, ColPtr: colPtr, RowInd: rowInd, Etree: etree}
}
