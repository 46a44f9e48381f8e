package sparse

// Transpose produces Aᵀ (n x m, CSC) from the receiver (m x n, CSC) using a
// two-pass counting sort: pass one counts entries per row of A (= entries
// per column of Aᵀ) and prefix-sums them into the new column pointer array;
// pass two scatters each entry into its destination column while bumping a
// per-destination-column write cursor. Because the receiver is visited in
// column-major order and rows within a column are sorted, the result's
// columns come out sorted too — the same counting-sort shape as COO.ToCSC
// elsewhere in this package, just specialised to avoid the COO round trip.
func (c *CSC) Transpose() *CSC {
	rows, cols := c.Dims()

	newIndptr := make([]int, rows+1)
	nnz := c.NNZ()
	newInd := make([]int, nnz)
	newData := make([]float64, nnz)

	w := make([]int, rows+1)
	for _, r := range c.ind {
		w[r+1]++
	}
	for i := 0; i < rows; i++ {
		w[i+1] += w[i]
	}
	copy(newIndptr, w)

	for j := 0; j < cols; j++ {
		for p := c.indptr[j]; p < c.indptr[j+1]; p++ {
			r := c.ind[p]
			dest := w[r]
			newInd[dest] = j
			newData[dest] = c.data[p]
			w[r]++
		}
	}

	return NewCSC(cols, rows, newIndptr, newInd, newData)
}

// Adjoint is the conjugate transpose. Since this library only carries real
// float64 values, Adjoint and Transpose coincide; Adjoint exists so callers
// ported from a complex-valued source can spell the operation they mean.
func (c *CSC) Adjoint() *CSC {
	return c.Transpose()
}

// Transpose on SymbolicCSC performs the same pattern-only counting sort,
// without a data pass.
func (s *SymbolicCSC) Transpose() *SymbolicCSC {
	n := s.n
	nnz := s.NNZ()

	newColPtr := make([]int, n+1)
	newRowInd := make([]int, nnz)

	w := make([]int, n+1)
	for _, r := range s.rowInd {
		w[r+1]++
	}
	for i := 0; i < n; i++ {
		w[i+1] += w[i]
	}
	copy(newColPtr, w)

	for j := 0; j < n; j++ {
		for p := s.colPtr[j]; p < s.colPtr[j+1]; p++ {
			r := s.rowInd[p]
			dest := w[r]
			newRowInd[dest] = j
			w[r]++
		}
	}

	return &SymbolicCSC{n: n, colPtr: newColPtr, rowInd: newRowInd}
}
