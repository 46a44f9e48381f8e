package sparse

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

func Example() {
	// Construct a new COO (COOrdinate, aka triplet) matrix, the format
	// this package's Cholesky factorization accepts on its way in after
	// conversion to CSC.
	cooMatrix := NewCOO(3, 2, nil, nil, nil)

	// Populate it with some non-zero values
	cooMatrix.Set(0, 0, 5)
	cooMatrix.Set(2, 1, 7)

	// Demonstrate accessing values (could use mat.Formatted() to
	// pretty print but this demonstrates element access)
	m, n := cooMatrix.Dims()
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			fmt.Printf("%.0f", cooMatrix.At(i, j))
			if j < n-1 {
				fmt.Printf(" ")
			}
		}
		fmt.Printf("\n")
	}

	// Convert COO to CSC (Compressed Sparse Column), the layout the
	// factorization routines operate on directly.
	cscMatrix := cooMatrix.ToCSC()

	// Confirm the two matrices in different formats are equal
	// Using the mat.Equal function
	if !mat.Equal(cooMatrix, cscMatrix) {
		fmt.Println("COO and converted CSC are not equal")
	}

	// Output: 5 0
	//0 0
	//0 7
}
