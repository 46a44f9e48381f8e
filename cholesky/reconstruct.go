package cholesky

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Reconstruct builds the dense n x n matrix L * diag(D) * Lᵀ, the ground
// truth behind invariant 1 ("reconstruct(P, L, D) ≈ A") - used by tests to
// check scenario A-F rather than comparing sparse patterns entry by entry.
func (f *NumericSimplicial) Reconstruct() *mat.Dense {
	n := f.Sym.N
	l := blas64.General{Rows: n, Cols: n, Stride: n, Data: make([]float64, n*n)}
	d := make([]float64, n)
	for j := 0; j < n; j++ {
		l.Data[j*n+j] = 1
		d[j] = f.D(j)
		for p := f.Sym.ColPtr[j] + 1; p < f.Sym.ColPtr[j+1]; p++ {
			i := f.Sym.RowInd[p]
			l.Data[i*n+j] = f.LData[p]
		}
	}
	return reconstructLDLt(n, l, d)
}

// Reconstruct builds the dense n x n matrix L * diag(D) * Lᵀ from the
// supernodal factor's frontal blocks.
func (f *NumericSupernodal) Reconstruct() *mat.Dense {
	n := f.Sym.N
	l := blas64.General{Rows: n, Cols: n, Stride: n, Data: make([]float64, n*n)}
	d := make([]float64, n)
	for s := 0; s < f.Sym.NumSuper(); s++ {
		begin, end := f.Sym.SuperBegin[s], f.Sym.SuperBegin[s+1]
		ncols := end - begin
		pattern := f.Sym.Pattern(s)
		lda := ncols + len(pattern)
		data := f.Values[f.Sym.ColPtrVal[s]:f.Sym.ColPtrVal[s+1]]
		for jc := 0; jc < ncols; jc++ {
			j := begin + jc
			d[j] = data[jc+jc*lda]
			l.Data[j*n+j] = 1
			for ic := jc + 1; ic < ncols; ic++ {
				i := begin + ic
				l.Data[i*n+j] = data[ic+jc*lda]
			}
			for p, r := range pattern {
				l.Data[r*n+j] = data[ncols+p+jc*lda]
			}
		}
	}
	return reconstructLDLt(n, l, d)
}

// reconstructLDLt computes L * diag(d) * Lᵀ: first scale each row of L by
// d element-wise (floats.MulTo), then a single blas64.Gemm rank-n update
// against Lᵀ - the same two-step "scale then Gemm" shape the teacher's
// gonum dependency uses throughout its own dense linear algebra (e.g.
// lapack/testlapack's Qᵀ*A*Z checks).
func reconstructLDLt(n int, l blas64.General, d []float64) *mat.Dense {
	ld := blas64.General{Rows: n, Cols: n, Stride: n, Data: make([]float64, n*n)}
	for i := 0; i < n; i++ {
		row := l.Data[i*n : i*n+n]
		floats.MulTo(ld.Data[i*n:i*n+n], row, d)
	}

	out := blas64.General{Rows: n, Cols: n, Stride: n, Data: make([]float64, n*n)}
	blas64.Gemm(blas.NoTrans, blas.Trans, 1, ld, l, 0, out)

	return mat.NewDense(n, n, out.Data)
}
