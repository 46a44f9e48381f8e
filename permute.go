package sparse

import "gonum.org/v1/gonum/mat"

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// PermuteSymmetric computes the upper triangle of PᵀAP where A is the
// triangle stored by the receiver (identified by inSide) and P is given by
// fwd (fwd[i] is the new index of old row/column i). The result is always
// returned as an upper-triangle CSC, matching the cholesky package's
// convention of working on the upper form internally.
//
// Entries are relocated by permuting their (row, col) coordinates and
// folding each into the upper triangle (row <= col after permutation), then
// handed to the same compress/dedupe counting-sort pipeline COO uses to
// build a CSC — see coordinate.go.
func (c *CSC) PermuteSymmetric(fwd []int, inSide Side) *CSC {
	rows, cols := c.Dims()
	if rows != cols {
		panic(mat.ErrShape)
	}
	n := rows
	if len(fwd) != n {
		panic(mat.ErrShape)
	}

	nnz := c.NNZ()
	rowsOut := make([]int, 0, nnz)
	colsOut := make([]int, 0, nnz)
	dataOut := make([]float64, 0, nnz)

	for j := 0; j < n; j++ {
		for p := c.indptr[j]; p < c.indptr[j+1]; p++ {
			i := c.ind[p]
			v := c.data[p]
			pi, pj := fwd[i], fwd[j]
			r, cc := minInt(pi, pj), maxInt(pi, pj)
			rowsOut = append(rowsOut, r)
			colsOut = append(colsOut, cc)
			dataOut = append(dataOut, v)
		}
	}

	coo := NewCOO(n, n, rowsOut, colsOut, dataOut)
	return coo.ToCSC()
}

// PermuteSymmetric is the pattern-only counterpart of CSC.PermuteSymmetric,
// used by the symbolic analysis path which never touches numeric values.
func (s *SymbolicCSC) PermuteSymmetric(fwd []int) *SymbolicCSC {
	n := s.n
	if len(fwd) != n {
		panic(mat.ErrShape)
	}

	nnz := s.NNZ()
	rowsOut := make([]int, 0, nnz)
	colsOut := make([]int, 0, nnz)

	for j := 0; j < n; j++ {
		for p := s.colPtr[j]; p < s.colPtr[j+1]; p++ {
			i := s.rowInd[p]
			pi, pj := fwd[i], fwd[j]
			r, cc := minInt(pi, pj), maxInt(pi, pj)
			rowsOut = append(rowsOut, r)
			colsOut = append(colsOut, cc)
		}
	}

	// Reuse the COO->CSC counting-sort/dedupe pipeline to get sorted,
	// deduplicated columns, then discard the values.
	data := make([]float64, len(rowsOut))
	coo := NewCOO(n, n, rowsOut, colsOut, data)
	csc := coo.ToCSC()
	return SymbolicCSCOf(csc)
}
