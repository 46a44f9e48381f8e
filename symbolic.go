package sparse

import "gonum.org/v1/gonum/mat"

// SymbolicCSC is the pattern-only counterpart of CSC: column pointers and row
// indices with no associated values. It is the input type accepted by
// cholesky.FactorizeSymbolic, which only ever inspects the sparsity pattern
// of A, never its numeric entries.
type SymbolicCSC struct {
	n      int
	colPtr []int
	rowInd []int
}

// NewSymbolicCSC constructs a SymbolicCSC for an n x n matrix from the given
// column-pointer/row-index pair. The slices are used as-is (not copied).
func NewSymbolicCSC(n int, colPtr []int, rowInd []int) *SymbolicCSC {
	if n < 0 {
		panic(mat.ErrRowAccess)
	}
	if len(colPtr) != n+1 {
		panic(mat.ErrShape)
	}
	return &SymbolicCSC{n: n, colPtr: colPtr, rowInd: rowInd}
}

// SymbolicCSCOf strips the values from a CSC matrix, sharing its colPtr/ind
// slices with the receiver.
func SymbolicCSCOf(c *CSC) *SymbolicCSC {
	rows, cols := c.Dims()
	if rows != cols {
		panic(mat.ErrShape)
	}
	return &SymbolicCSC{n: rows, colPtr: c.indptr, rowInd: c.ind}
}

// N returns the dimension of the (square) matrix.
func (s *SymbolicCSC) N() int { return s.n }

// ColPtr returns the column pointer array (length N()+1).
func (s *SymbolicCSC) ColPtr() []int { return s.colPtr }

// RowInd returns the row index array (length ColPtr()[N()]).
func (s *SymbolicCSC) RowInd() []int { return s.rowInd }

// NNZ returns the number of stored entries.
func (s *SymbolicCSC) NNZ() int { return s.colPtr[s.n] }

// Col returns the row indices stored in column j.
func (s *SymbolicCSC) Col(j int) []int {
	return s.rowInd[s.colPtr[j]:s.colPtr[j+1]]
}
