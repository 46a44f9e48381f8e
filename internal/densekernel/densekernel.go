// Package densekernel implements the small dense building block the
// supernodal numeric factorization needs on each frontal matrix's diagonal
// block: an in-place, unit-diagonal LDLᵀ with no pivoting. gonum's mat
// package only ships pivoted/positive-definite dense factorizations
// (mat.Cholesky, mat.LU), neither of which produces the unit-lower L plus
// separately stored D this library's LDLᵀ convention needs, so this is
// hand-rolled rather than wired to an external collaborator - generalized
// from the teacher's textbook "dot product" Cholesky (cholSimple in the
// sparse package's history) by dropping the square root and carrying the
// diagonal separately.
package densekernel

import (
	"fmt"
	"math"
)

// ErrNotPositiveDefinite is returned by LDLT when CheckPositiveDefinite is
// requested and a non-positive or non-finite pivot is produced.
var ErrNotPositiveDefinite = fmt.Errorf("densekernel: matrix is not positive definite")

// LDLT factors the symmetric n x n matrix stored in the lower triangle of
// a (column-major, leading dimension lda) in place: on return, a's strict
// lower triangle holds the unit-lower factor L (L's implicit unit diagonal
// is not stored) and a's diagonal holds D, so that the original matrix
// equals L * diag(D) * Lᵀ.
//
// checkPD, when true, returns ErrNotPositiveDefinite as soon as a
// non-positive or non-finite pivot appears instead of continuing (plain LDLᵀ is defined
// for indefinite input; this is an opt-in early exit).
func LDLT(a []float64, n, lda int, checkPD bool) error {
	for j := 0; j < n; j++ {
		sum := 0.0
		for k := 0; k < j; k++ {
			ljk := a[j+k*lda]
			sum += ljk * ljk * a[k+k*lda]
		}
		d := a[j+j*lda] - sum
		if checkPD && (d <= 0 || math.IsNaN(d) || math.IsInf(d, 0)) {
			return ErrNotPositiveDefinite
		}
		a[j+j*lda] = d

		for i := j + 1; i < n; i++ {
			sum := 0.0
			for k := 0; k < j; k++ {
				sum += a[i+k*lda] * a[j+k*lda] * a[k+k*lda]
			}
			a[i+j*lda] = (a[i+j*lda] - sum) / d
		}
	}
	return nil
}
