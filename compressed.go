package sparse

import (
	"github.com/sparsela/sparsechol/blas"
	"gonum.org/v1/gonum/mat"
)

// compressedSparse represents the common structure backing compressed sparse matrix
// formats, indexed over the pointer dimension i (this package only instantiates it as CSC).
type compressedSparse struct {
	i, j   int
	indptr []int
	ind    []int
	data   []float64
}

// NNZ returns the Number of Non Zero elements in the sparse matrix.
func (c *compressedSparse) NNZ() int {
	return len(c.data)
}

// at returns the element of the matrix located at coordinate i, j.  Depending upon the
// context and the type of compressed sparse (CSR or CSC) i and j could represent rows
// and columns or columns and rows respectively.
func (c *compressedSparse) at(i, j int) float64 {
	if uint(i) < 0 || uint(i) >= uint(c.i) {
		panic(mat.ErrRowAccess)
	}
	if uint(j) < 0 || uint(j) >= uint(c.j) {
		panic(mat.ErrColAccess)
	}

	// todo: consider a binary search if we can assume the data is ordered within row (CSR)/column (CSC).
	for k := c.indptr[i]; k < c.indptr[i+1]; k++ {
		if c.ind[k] == j {
			return c.data[k]
		}
	}

	return 0
}

/*
func (c *compressedSparse) set(i, j int, v float64) {
	if uint(i) < 0 || uint(i) >= uint(c.i) {
		panic(mat.ErrRowAccess)
	}
	if uint(j) < 0 || uint(j) >= uint(c.j) {
		panic(mat.ErrColAccess)
	}

	if v == 0 {
		// don't bother storing zero values
		return
	}

	if c.indptr[i] == c.indptr[i+1] {
		// row i is an empty row/col (all zero values) so add the new element
		c.ind = append(c.ind, 0)
		copy(c.ind[c.indptr[i+1]+1:], c.ind[c.indptr[i+1]:])
		c.ind[c.indptr[i+1]] = j

		c.data = append(c.data, 0)
		copy(c.data[c.indptr[i+1]+1:], c.data[c.indptr[i+1]:])
		c.data[c.indptr[i+1]] = v

		for k := i + 1; k <= c.i; k++ {
			c.indptr[k]++
		}
		return
	}

	for k := c.indptr[i]; k < c.indptr[i+1]; k++ {
		if c.ind[k] == j {
			// if element(i, j) is already a non-zero value then simply update the existing
			// value without altering the sparsity pattern
			c.data[k] = v
			return
		}

		if c.ind[k] > j {
			// element(i, j) is mid row/col but doesn't exist in current sparsity pattern
			// so add it
			c.ind = append(c.ind, 0)
			copy(c.ind[k+1:], c.ind[k:])
			c.ind[k] = j

			c.data = append(c.data, 0)
			copy(c.data[k+1:], c.data[k:])
			c.data[k] = v

			for n := i + 1; n <= c.i; n++ {
				c.indptr[n]++
			}
			return
		}
	}

	// element(i, j) is beyond the last non-zero element of a row/col and doesn't exist
	// in current sparsity pattern so add it
	c.ind = append(c.ind, 0)
	copy(c.ind[c.indptr[i+1]+1:], c.ind[c.indptr[i+1]:])
	c.ind[c.indptr[i+1]] = j

	c.data = append(c.data, 0)
	copy(c.data[c.indptr[i+1]+1:], c.data[c.indptr[i+1]:])
	c.data[c.indptr[i+1]] = v

	for n := i + 1; n <= c.i; n++ {
		c.indptr[n]++
	}
}
*/
func (c *compressedSparse) set(i, j int, v float64) {
	if uint(i) < 0 || uint(i) >= uint(c.i) {
		panic(mat.ErrRowAccess)
	}
	if uint(j) < 0 || uint(j) >= uint(c.j) {
		panic(mat.ErrColAccess)
	}

	if v == 0 {
		// don't bother storing zero values
		return
	}

	for k := c.indptr[i]; k < c.indptr[i+1]; k++ {
		if c.ind[k] == j {
			// if element(i, j) is already a non-zero value then simply update the existing
			// value without altering the sparsity pattern
			c.data[k] = v
			return
		}

		if c.ind[k] > j {
			// element(i, j) doesn't exist in current sparsity pattern and is mid row/col
			// so add it
			c.insert(i, j, v, k)
			return
		}
	}

	// element(i, j) doesn't exist in current sparsity pattern and is beyond the last
	// non-zero element of a row/col or an empty row/col - so add it
	c.insert(i, j, v, c.indptr[i+1])
}

func (c *compressedSparse) insert(i int, j int, v float64, insertionPoint int) {
	c.ind = append(c.ind, 0)
	copy(c.ind[insertionPoint+1:], c.ind[insertionPoint:])
	c.ind[insertionPoint] = j

	c.data = append(c.data, 0)
	copy(c.data[insertionPoint+1:], c.data[insertionPoint:])
	c.data[insertionPoint] = v

	for n := i + 1; n <= c.i; n++ {
		c.indptr[n]++
	}
}

/*
func (c *compressedSparse) MarshalBinary() ([]byte, error) {

}

func (c *compressedSparse) MarshalBinaryTo(w io.Writer) (int, error) {

}

func (c *compressedSparse) UnmarshalBinary(data []byte) error {

}

func (c *compressedSparse) UnmarshalBinaryFrom(r io.Reader) (int, error) {

}
*/

// CSC is a Compressed Sparse Column format sparse matrix implementation (sometimes called Compressed Column
// Storage (CCS) format) and implements the Matrix interface from gonum/matrix.  This allows large sparse
// (mostly zero values) matrices to be stored efficiently in memory (only storing non-zero values).
// CSC matrices are poor for constructing sparse matrices incrementally but very good for arithmetic operations.
// CSC matrices are similar to COOrdinate matrices except the column index slice is compressed.  Rather than
// storing the column indices of each non zero values (length == NNZ) each element, i, of the slice contains
// the cumulative count of non zero values in the matrix up to column i-1 of the matrix. In this way, it is
// possible to address any element, j i, in the matrix with the following:
//
// 		for k := c.indptr[i]; k < c.indptr[i+1]; k++ {
//			if c.ind[k] == j {
//				return c.data[k]
//			}
//		}
//
// As this type implements the gonum mat.Matrix interface, it may be used with any of the Gonum mat64 functions
// that accept Matrix types as parameters in place of other matrix types included in the Gonum mat64 package
// e.g. mat.Dense.
type CSC struct {
	compressedSparse
}

// NewCSC creates a new Compressed Sparse Column format sparse matrix.
// The matrix is initialised to the size of the specified r * c dimensions (rows * columns)
// with the specified slices containing column pointers and row indexes of non-zero elements
// and the non-zero data values themselves respectively.  The supplied slices will be used as the
// backing storage to the matrix so changes to values of the slices will be reflected in the created matrix
// and vice versa.
func NewCSC(r int, c int, indptr []int, ind []int, data []float64) *CSC {
	if uint(r) < 0 {
		panic(mat.ErrRowAccess)
	}
	if uint(c) < 0 {
		panic(mat.ErrColAccess)
	}

	return &CSC{
		compressedSparse: compressedSparse{
			i: c, j: r,
			indptr: indptr,
			ind:    ind,
			data:   data,
		},
	}
}

// Dims returns the size of the matrix as the number of rows and columns
func (c *CSC) Dims() (int, int) {
	return c.j, c.i
}

// At returns the element of the matrix located at row i and column j.  At will panic if specified values
// for i or j fall outside the dimensions of the matrix.
func (c *CSC) At(m, n int) float64 {
	return c.at(n, m)
}

func (c *CSC) Set(m, n int, v float64) {
	c.set(n, m, v)
}

// T transposes the matrix, returning Aᵀ as a new CSC built by Transpose's
// counting sort. Unlike the CSR/CSC pairing this package used to support,
// there is no row-major sibling format to swap into cheaply, so T pays the
// O(NNZ) transpose cost up front.
func (c *CSC) T() mat.Matrix {
	return c.Transpose()
}

// ToDense returns a mat.Dense dense format version of the matrix.  The returned mat.Dense
// matrix will not share underlying storage with the receiver nor is the receiver modified by this call.
func (c *CSC) ToDense() *mat.Dense {
	dense := mat.NewDense(c.j, c.i, nil)

	for i := 0; i < len(c.indptr)-1; i++ {
		for j := c.indptr[i]; j < c.indptr[i+1]; j++ {
			dense.Set(c.ind[j], i, c.data[j])
		}
	}

	return dense
}

// ToCOO returns a COOrdinate sparse format version of the matrix.  The returned COO matrix will
// not share underlying storage with the receiver nor is the receiver modified by this call.
func (c *CSC) ToCOO() *COO {
	rows := make([]int, c.NNZ())
	cols := make([]int, c.NNZ())
	data := make([]float64, c.NNZ())

	for i := 0; i < len(c.indptr)-1; i++ {
		for j := c.indptr[i]; j < c.indptr[i+1]; j++ {
			cols[j] = i
		}
	}

	copy(rows, c.ind)
	copy(data, c.data)

	coo := NewCOO(c.j, c.i, rows, cols, data)

	return coo
}

// ToCSC returns the receiver
func (c *CSC) ToCSC() *CSC {
	return c
}

// ToType returns an alternative format version fo the matrix in the format specified.
func (c *CSC) ToType(matType MatrixType) mat.Matrix {
	return matType.Convert(c)
}

// RawMatrix returns a pointer to a blas.SparseMatrix sharing the receiver's
// underlying index and data slices. Note that for a CSC, I/J in the returned
// structure correspond to column-major indexing (Indptr is per-column).
func (c *CSC) RawMatrix() *blas.SparseMatrix {
	return &blas.SparseMatrix{I: c.i, J: c.j, Indptr: c.indptr, Ind: c.ind, Data: c.data}
}

// ColView returns the row indices and values stored in column j, sharing
// the receiver's backing arrays. The returned slices must not be retained
// past a mutation of the receiver.
func (c *CSC) ColView(j int) (rowInd []int, data []float64) {
	return c.ind[c.indptr[j]:c.indptr[j+1]], c.data[c.indptr[j]:c.indptr[j+1]]
}
