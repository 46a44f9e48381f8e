package cholesky

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/floats"

	"github.com/sparsela/sparsechol"
	"github.com/sparsela/sparsechol/internal/densekernel"
)

// NumericSupernodal is a numeric LDLᵀ factorization sharing the layout of a
// SymbolicSupernodal: supernode s's dense frontal block lives column-major
// at Values[sym.ColPtrVal[s]:sym.ColPtrVal[s+1]], shape
// (ncols(s)+len(Pattern(s))) x ncols(s). Its top ncols(s) x ncols(s) square
// holds D on the diagonal and the unit-lower L below it; the rows below
// that hold the sub-diagonal part of L for Pattern(s).
type NumericSupernodal struct {
	Sym    *SymbolicSupernodal
	Values []float64
}

// D returns the diagonal entry of column j (the D in LDLᵀ).
func (f *NumericSupernodal) D(j int) float64 {
	s := f.Sym.IndexToSuper[j]
	begin := f.Sym.SuperBegin[s]
	data, lda := f.frontal(s)
	local := j - begin
	return data[local+local*lda]
}

func (f *NumericSupernodal) frontal(s int) (data []float64, lda int) {
	begin, end := f.Sym.SuperBegin[s], f.Sym.SuperBegin[s+1]
	ncols := end - begin
	lda = ncols + len(f.Sym.Pattern(s))
	return f.Values[f.Sym.ColPtrVal[s]:f.Sym.ColPtrVal[s+1]], lda
}

// FactorizeSupernodalNumeric computes the numeric LDLᵀ factorization
// matching sym's pattern, using aLower's values (aLower must hold A's
// lower triangle, i.e. column j carries every entry with row i >= j - the
// transpose of the upper-triangular CSC the rest of this package works
// from; CSC.Transpose produces exactly that view).
//
// Supernodes are visited in postorder (children before parents), mirroring
// the teacher's row-at-a-time "dot product" Cholesky (cholSimple) but
// operating a block at a time: assemble A's contribution to the frontal
// block, subtract every already-factored descendant's contribution to it,
// factor the square diagonal block with densekernel.LDLT, then solve the
// sub-diagonal block against it.
//
// lValues is the caller-owned value buffer the frontal blocks are written
// into; len(lValues) must equal sym.LenValues() (spec.md §6's
// "L_values_out.len() == sym.len_values()" precondition) -
// FactorizeSupernodalNumeric does not allocate it.
func FactorizeSupernodalNumeric(lValues []float64, aLower *sparse.CSC, sym *SymbolicSupernodal, params NumericParams) (*NumericSupernodal, error) {
	n := sym.N
	if rows, cols := aLower.Dims(); rows != n || cols != n {
		panic("cholesky: aLower's dimensions do not match the symbolic factor")
	}
	if len(lValues) != sym.LenValues() {
		panic(fmt.Sprintf("cholesky: len(lValues)=%d, want %d", len(lValues), sym.LenValues()))
	}

	values := lValues
	globalToLocal := make([]int, n)
	for i := range globalToLocal {
		globalToLocal[i] = -1
	}

	frontal := func(s int) (data []float64, lda int) {
		begin, end := sym.SuperBegin[s], sym.SuperBegin[s+1]
		ncols := end - begin
		lda = ncols + len(sym.Pattern(s))
		return values[sym.ColPtrVal[s]:sym.ColPtrVal[s+1]], lda
	}

	for _, s := range sym.Postorder {
		begin, end := sym.SuperBegin[s], sym.SuperBegin[s+1]
		ncols := end - begin
		pattern := sym.Pattern(s)
		ls, lda := frontal(s)

		for p, r := range pattern {
			globalToLocal[r] = ncols + p
		}

		// 1. Assembly: scatter A's lower-triangle entries for columns
		// [begin, end) into the frontal block - rows inside [begin, end)
		// land in the square diagonal block, rows at or past end land in
		// the sub-diagonal rows via global_to_local.
		for j := begin; j < end; j++ {
			rowInd, vals := aLower.ColView(j)
			for p, i := range rowInd {
				var localRow int
				if i < end {
					localRow = i - begin
				} else {
					localRow = globalToLocal[i]
				}
				ls[localRow+(j-begin)*lda] = vals[p]
			}
		}

		// 2. Updates from descendants: postorder makes every proper
		// descendant of s exactly the descendant_count[s] entries
		// immediately preceding s's own postorder position (a subtree is
		// a contiguous postorder range), so no separate child-list walk
		// is needed to find them.
		dStart := sym.PostorderInv[s] - sym.DescendantCount[s]
		dEnd := sym.PostorderInv[s]
		for idx := dStart; idx < dEnd; idx++ {
			d := sym.Postorder[idx]
			dData, dLda := frontal(d)
			applySupernodeUpdate(sym, dData, dLda, d, ls, lda, begin, end, globalToLocal)
		}

		// 3. Factor the diagonal block.
		if err := densekernel.LDLT(ls, ncols, lda, params.CheckPositiveDefinite); err != nil {
			return nil, fmt.Errorf("cholesky: supernode %d: %w", s, ErrNotPositiveDefinite)
		}

		// 4. Solve the sub-diagonal block against the just-factored
		// diagonal block: Ls_bot currently holds A's contribution minus
		// descendants', i.e. Ls_bot * Ltopᵀ (unit upper); solve it down to
		// Ls_bot = (that) * Ltop^-ᵀ, then scale each column by 1/D to turn
		// the implicit-unit-diagonal solve into the stored L convention.
		patLen := len(pattern)
		if patLen > 0 {
			solveSubDiagonal(ls, lda, ncols, patLen)
		}

		// 5. Clear global_to_local so it is all -1 again for the next
		// supernode.
		for _, r := range pattern {
			globalToLocal[r] = -1
		}
	}

	return &NumericSupernodal{Sym: sym, Values: values}, nil
}

// applySupernodeUpdate subtracts descendant d's contribution to ancestor
// s's frontal block. d's off-diagonal pattern is sorted increasing, so the
// rows falling in [sBegin, sEnd) ("mid", contributing to s's square
// diagonal block) and the rows at or past sEnd ("bot", contributing to s's
// sub-diagonal block) are both contiguous slices, located by binary search;
// any pattern rows below sBegin belong to some nearer ancestor on the path
// from d to s and are skipped.
//
// The two Schur-complement contributions are expressed as blas64.Gemm
// calls rather than hand-rolled triple loops. d's sub-diagonal block
// Ld_mid/Ld_bot is stored column-major with leading dimension dLda, which
// is bit-for-bit a row-major matrix of the transposed shape with the same
// stride - so it is read directly as Ld_midᵀ/Ld_botᵀ with no copy.
func applySupernodeUpdate(sym *SymbolicSupernodal, dData []float64, dLda, d int, ls []float64, sLda, sBegin, sEnd int, globalToLocal []int) {
	dNcols := sym.Size(d)
	patternD := sym.Pattern(d)

	lo := sort.Search(len(patternD), func(i int) bool { return patternD[i] >= sBegin })
	hi := sort.Search(len(patternD), func(i int) bool { return patternD[i] >= sEnd })
	midLen := hi - lo
	botLen := len(patternD) - hi
	if midLen == 0 {
		return
	}

	// D of d's diagonal block.
	dDiag := make([]float64, dNcols)
	for k := 0; k < dNcols; k++ {
		dDiag[k] = dData[k+k*dLda]
	}

	ldMidT := blas64.General{Rows: dNcols, Cols: midLen, Stride: dLda, Data: dData[dNcols+lo:]}

	// m = diag(D) * Ld_midᵀ: scale each of Ld_midᵀ's dNcols rows by the
	// matching D entry.
	m := make([]float64, dNcols*midLen)
	for k := 0; k < dNcols; k++ {
		dst := m[k*midLen : (k+1)*midLen]
		copy(dst, dData[dNcols+lo+k*dLda:dNcols+lo+k*dLda+midLen])
		floats.Scale(dDiag[k], dst)
	}
	mGen := blas64.General{Rows: dNcols, Cols: midLen, Stride: midLen, Data: m}

	// tmp_top = Ld_mid * diag(D) * Ld_midᵀ = (Ld_midᵀ)ᵀ * m.
	tmpTop := blas64.General{Rows: midLen, Cols: midLen, Stride: midLen, Data: make([]float64, midLen*midLen)}
	blas64.Gemm(blas.Trans, blas.NoTrans, 1, ldMidT, mGen, 0, tmpTop)

	for a := 0; a < midLen; a++ {
		localRowS := patternD[lo+a] - sBegin
		for b := 0; b < midLen; b++ {
			localColS := patternD[lo+b] - sBegin
			ls[localRowS+localColS*sLda] -= tmpTop.Data[a*midLen+b]
		}
	}

	if botLen == 0 {
		return
	}

	ldBotT := blas64.General{Rows: dNcols, Cols: botLen, Stride: dLda, Data: dData[dNcols+hi:]}

	// tmp_bot = Ld_bot * diag(D) * Ld_midᵀ = (Ld_botᵀ)ᵀ * m.
	tmpBot := blas64.General{Rows: botLen, Cols: midLen, Stride: midLen, Data: make([]float64, botLen*midLen)}
	blas64.Gemm(blas.Trans, blas.NoTrans, 1, ldBotT, mGen, 0, tmpBot)

	for a := 0; a < botLen; a++ {
		localRowS := globalToLocal[patternD[hi+a]]
		for b := 0; b < midLen; b++ {
			localColS := patternD[lo+b] - sBegin
			ls[localRowS+localColS*sLda] -= tmpBot.Data[a*midLen+b]
		}
	}
}

// solveSubDiagonal solves the ncols x ncols unit-lower-triangular diagonal
// block (already factored by densekernel.LDLT: strict lower triangle L,
// diagonal D) against the patLen x ncols sub-diagonal block in place,
// turning A's contribution into L's stored sub-diagonal entries.
//
// Ls_bot currently holds X such that X * Ltopᵀ equals A's contribution
// minus descendants'; solving for X is a single blas64.Trsm rather than an
// explicit loop nest. Ltop is stored column-major at ls[:ncols*lda], which
// read as a row-major ncols x ncols block with the same stride is exactly
// Ltopᵀ, so a Right*NoTrans solve against that reading is a Left*Trans
// solve against Ltop itself - and because Ls_botᵀ occupies the identical
// bytes as Ls_bot (the same column-major-as-row-major-transpose identity),
// Trsm overwrites Ls_bot in place with X.
func solveSubDiagonal(ls []float64, lda, ncols, patLen int) {
	ltopT := blas64.Triangular{N: ncols, Stride: lda, Data: ls, Uplo: blas.Upper, Diag: blas.Unit}
	lsBotT := blas64.General{Rows: ncols, Cols: patLen, Stride: lda, Data: ls[ncols:]}
	blas64.Trsm(blas.Left, blas.Trans, 1, ltopT, lsBotT)

	for col := 0; col < ncols; col++ {
		d := ls[col+col*lda]
		column := ls[ncols+col*lda : ncols+patLen+col*lda]
		floats.Scale(1/d, column)
	}
}
