package cholesky

import (
	"fmt"
	"math"

	"github.com/sparsela/sparsechol"
	"github.com/sparsela/sparsechol/stack"
)

// NumericSimplicial is a numeric LDLᵀ factorization sharing the layout of a
// SymbolicSimplicial: LData[sym.ColPtr[j]] is D[j], and LData[p] for
// p in (sym.ColPtr[j], sym.ColPtr[j+1]) is L(sym.RowInd[p], j).
type NumericSimplicial struct {
	Sym   *SymbolicSimplicial
	LData []float64
}

// D returns the diagonal entry of column j (the D in LDLᵀ).
func (f *NumericSimplicial) D(j int) float64 {
	return f.LData[f.Sym.ColPtr[j]]
}

// NumericParams configures FactorizeSimplicialNumeric and
// FactorizeSupernodalNumeric.
//
// CheckPositiveDefinite, when true, makes factorization return
// ErrNotPositiveDefinite as soon as a non-positive or non-finite diagonal
// is produced.
// Off by default: plain LDLᵀ without pivoting is well defined algebraically
// for indefinite input, and some callers intentionally rely on that (e.g.
// quasi-definite KKT systems), matching the original's no-pivoting
// behaviour.
type NumericParams struct {
	CheckPositiveDefinite bool
}

// FactorizeSimplicialNumeric computes the numeric LDLᵀ factorization
// matching sym's pattern, using a's upper triangle values (a must be
// symmetric; only entries with row <= col are read). lValues is the
// caller-owned value buffer L is written into; len(lValues) must equal
// sym.LenValues() (spec.md §6's "L_values_out.len() == sym.len_values()"
// precondition) - FactorizeSimplicialNumeric does not allocate it.
//
// Up-looking: for column k, scatter column k of A into a dense workspace,
// pull out the diagonal, then walk Ereach(k) in the order it's returned;
// each visited column j contributes its already-known strictly-below-
// diagonal entries back into the workspace (a gather/AXPY against a dense
// accumulator, the same shape as blas.Dusga/Dusaxpy in the blas
// subpackage, just inlined here since source and destination swap roles
// every column rather than staying fixed).
func FactorizeSimplicialNumeric(lValues []float64, a *sparse.CSC, sym *SymbolicSimplicial, params NumericParams) (*NumericSimplicial, error) {
	n := sym.N
	if rows, cols := a.Dims(); rows != n || cols != n {
		panic("cholesky: a's dimensions do not match the symbolic factor")
	}
	if len(lValues) != sym.LenValues() {
		panic(fmt.Sprintf("cholesky: len(lValues)=%d, want %d", len(lValues), sym.LenValues()))
	}

	lData := lValues
	fillPos := make([]int, n)
	for j := 0; j < n; j++ {
		fillPos[j] = sym.ColPtr[j] + 1
	}

	aSym := sparse.SymbolicCSCOf(a)
	etree := sym.Etree
	x := make([]float64, n)
	marked := make([]bool, n)
	s := stack.New(EreachReq(n))

	for k := 0; k < n; k++ {
		rowInd, vals := a.ColView(k)
		for p, i := range rowInd {
			if i <= k {
				x[i] = vals[p]
			}
		}
		d := x[k]
		x[k] = 0

		reach := Ereach(aSym, etree, k, marked, s)
		for _, j := range reach {
			xj := x[j]
			x[j] = 0

			dj := lData[sym.ColPtr[j]]
			lkj := xj / dj

			for p := sym.ColPtr[j] + 1; p < fillPos[j]; p++ {
				i := sym.RowInd[p]
				lij := lData[p]
				x[i] -= lij * xj
			}
			d -= lkj * xj

			lData[fillPos[j]] = lkj
			fillPos[j]++
		}

		if params.CheckPositiveDefinite && (d <= 0 || math.IsNaN(d) || math.IsInf(d, 0)) {
			return nil, fmt.Errorf("cholesky: column %d: %w", k, ErrNotPositiveDefinite)
		}
		lData[sym.ColPtr[k]] = d
	}

	return &NumericSimplicial{Sym: sym, LData: lData}, nil
}
