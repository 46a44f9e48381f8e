package sparse

import (
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestCSCPermuteSymmetric(t *testing.T) {
	// A (upper triangle only, 4x4):
	// 1 2 0 0
	// . 3 4 0
	// .  . 5 0
	// .  .  . 6
	n := 4
	upper := mat.NewDense(n, n, []float64{
		1, 2, 0, 0,
		0, 3, 4, 0,
		0, 0, 5, 0,
		0, 0, 0, 6,
	})
	rows, cols, data := []int{}, []int{}, []float64{}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if v := upper.At(i, j); v != 0 {
				rows = append(rows, i)
				cols = append(cols, j)
				data = append(data, v)
			}
		}
	}
	a := NewCOO(n, n, rows, cols, data).ToCSC()

	// Reverse permutation: fwd[i] = n-1-i.
	fwd := []int{3, 2, 1, 0}

	result := a.PermuteSymmetric(fwd, Upper)

	// Build the expected dense symmetric matrix, permute it, take its upper
	// triangle, and compare.
	full := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i <= j {
				full.Set(i, j, upper.At(i, j))
			} else {
				full.Set(i, j, upper.At(j, i))
			}
		}
	}
	wantFull := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			wantFull.Set(fwd[i], fwd[j], full.At(i, j))
		}
	}
	wantUpper := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			wantUpper.Set(i, j, wantFull.At(i, j))
		}
	}

	if !mat.Equal(result.ToDense(), wantUpper) {
		t.Errorf("PermuteSymmetric() = \n%v\nexpected\n%v", mat.Formatted(result.ToDense()), mat.Formatted(wantUpper))
	}
}

func TestSymbolicCSCPermuteSymmetric(t *testing.T) {
	n := 3
	rows := []int{0, 0, 1, 2}
	cols := []int{0, 2, 1, 2}
	data := []float64{1, 1, 1, 1}
	a := NewCOO(n, n, rows, cols, data).ToCSC()
	sym := SymbolicCSCOf(a)

	fwd := []int{2, 1, 0}
	permuted := sym.PermuteSymmetric(fwd)

	if permuted.N() != n {
		t.Fatalf("N() = %d, want %d", permuted.N(), n)
	}
	for j := 0; j < permuted.N(); j++ {
		for _, i := range permuted.Col(j) {
			if i > j {
				t.Errorf("PermuteSymmetric() produced a lower-triangle entry (%d, %d)", i, j)
			}
		}
	}
}
