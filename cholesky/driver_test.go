package cholesky

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sparsela/sparsechol"
	"github.com/sparsela/sparsechol/amd"
	"github.com/sparsela/sparsechol/stack"
)

// scenarioAFullPattern is the package's literal scenario A fixture: an 11 x
// 11 symmetric pattern given with both triangles stored per column (the
// "full" dual-triangle form the spec's own examples use).
func scenarioAFullPattern() (n int, colPtr, rowInd []int) {
	colPtr = []int{0, 3, 6, 10, 13, 16, 21, 24, 29, 31, 37, 43}
	rowInd = []int{
		0, 5, 6,
		1, 2, 7,
		1, 2, 9, 10,
		3, 5, 9,
		4, 7, 10,
		0, 3, 5, 8, 9,
		0, 6, 10,
		1, 4, 7, 9, 10,
		5, 8,
		2, 3, 5, 7, 9, 10,
		2, 4, 6, 7, 9, 10,
	}
	return 11, colPtr, rowInd
}

// scenarioADiagonallyDominantLower builds a numeric, lower-triangle-only
// CSC (row >= col) over scenario A's pattern with a diagonal large enough
// to guarantee symmetric positive definiteness, for exercising the
// side=Lower branch of FactorizeSymbolic/FactorizeNumericLDLT.
func scenarioADiagonallyDominantLower() (n int, colPtr, rowInd []int, data []float64) {
	n, fullColPtr, fullRowInd := scenarioAFullPattern()

	colPtr = make([]int, n+1)
	var rows []int
	var vals []float64
	for j := 0; j < n; j++ {
		for p := fullColPtr[j]; p < fullColPtr[j+1]; p++ {
			i := fullRowInd[p]
			if i < j {
				continue
			}
			rows = append(rows, i)
			if i == j {
				vals = append(vals, 20)
			} else {
				vals = append(vals, 1)
			}
		}
		colPtr[j+1] = len(rows)
	}
	return n, colPtr, rows, vals
}

func TestFactorizeSymbolicScenarioALower(t *testing.T) {
	n, colPtr, rowInd, data := scenarioADiagonallyDominantLower()
	symA := sparse.NewSymbolicCSC(n, colPtr, rowInd)
	a := sparse.NewCSC(n, n, colPtr, rowInd, data)

	sym, err := FactorizeSymbolic(symA, sparse.Lower, SymbolicParams{Orderer: amd.Identity{}})
	require.NoError(t, err)
	require.Len(t, sym.PermFwd, n)
	require.Len(t, sym.PermInv, n)
	for i, p := range sym.PermFwd {
		require.Equal(t, i, sym.PermInv[p], "PermInv is not PermFwd's inverse at %d", i)
	}

	req, err := sym.FactorizeNumericLDLTReq(sparse.Lower, 1)
	require.NoError(t, err)
	st := stack.New(req)

	num, err := sym.FactorizeNumericLDLT(make([]float64, sym.LenValues()), a, sparse.Lower, 1, NumericParams{CheckPositiveDefinite: true}, st)
	require.NoError(t, err)

	var reconstructed [][]float64
	if num.Supernodal != nil {
		reconstructed = denseToSlice(num.Supernodal.Reconstruct(), n)
	} else {
		reconstructed = denseToSlice(num.Simplicial.Reconstruct(), n)
	}

	want := permutedDense(n, colPtr, rowInd, data, sym.PermFwd)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			require.InDeltaf(t, want[i][j], reconstructed[i][j], 1e-6, "entry (%d,%d)", i, j)
		}
	}
}

func TestFactorizeSymbolicIdentityOrderMatchesUnordered(t *testing.T) {
	n, colPtr, rowInd, data := scenarioADiagonallyDominantUpper()
	symA := sparse.NewSymbolicCSC(n, colPtr, rowInd)
	a := sparse.NewCSC(n, n, colPtr, rowInd, data)

	sym, err := FactorizeSymbolic(symA, sparse.Upper, SymbolicParams{Orderer: amd.Identity{}})
	require.NoError(t, err)
	for i, p := range sym.PermFwd {
		require.Equal(t, i, p, "identity ordering should leave column %d in place", i)
	}

	req, err := sym.FactorizeNumericLDLTReq(sparse.Upper, 1)
	require.NoError(t, err)
	st := stack.New(req)
	num, err := sym.FactorizeNumericLDLT(make([]float64, sym.LenValues()), a, sparse.Upper, 1, NumericParams{CheckPositiveDefinite: true}, st)
	require.NoError(t, err)

	for j := 0; j < n; j++ {
		require.Greater(t, num.D(j), 0.0, "D(%d) should be positive for a diagonally dominant SPD input", j)
	}
}

func TestFactorizeSymbolicChoosesSupernodalAboveThreshold(t *testing.T) {
	n, colPtr, rowInd, _ := scenarioADiagonallyDominantUpper()
	symA := sparse.NewSymbolicCSC(n, colPtr, rowInd)

	simSym, err := FactorizeSymbolic(symA, sparse.Upper, SymbolicParams{
		Orderer:                      amd.Identity{},
		SupernodalFlopRatioThreshold: 1e9,
	})
	require.NoError(t, err)
	require.False(t, simSym.Supernodal)
	require.NotNil(t, simSym.Simplicial)

	supSym, err := FactorizeSymbolic(symA, sparse.Upper, SymbolicParams{
		Orderer:                      amd.Identity{},
		SupernodalFlopRatioThreshold: 1e-9,
	})
	require.NoError(t, err)
	require.True(t, supSym.Supernodal)
	require.NotNil(t, supSym.SupernodalFactor)
}

func TestLogDetMatchesSumOfLogD(t *testing.T) {
	n, colPtr, rowInd, data := scenarioADiagonallyDominantUpper()
	symA := sparse.NewSymbolicCSC(n, colPtr, rowInd)
	a := sparse.NewCSC(n, n, colPtr, rowInd, data)

	sym, err := FactorizeSymbolic(symA, sparse.Upper, SymbolicParams{Orderer: amd.Identity{}})
	require.NoError(t, err)
	req, err := sym.FactorizeNumericLDLTReq(sparse.Upper, 1)
	require.NoError(t, err)
	st := stack.New(req)
	num, err := sym.FactorizeNumericLDLT(make([]float64, sym.LenValues()), a, sparse.Upper, 1, NumericParams{}, st)
	require.NoError(t, err)

	want := 0.0
	for j := 0; j < n; j++ {
		want += math.Log(math.Abs(num.D(j)))
	}
	require.InDelta(t, want, num.LogDet(), 1e-9)
}

// denseToSlice converts a *mat.Dense-like accessor (At(i,j)) to a plain
// [][]float64 so comparisons below don't need to import gonum/mat.
func denseToSlice(d interface{ At(i, j int) float64 }, n int) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			out[i][j] = d.At(i, j)
		}
	}
	return out
}

// permutedDense builds the dense n x n matrix P*A*Pᵀ from a's triangle
// storage (upper or lower, whichever the caller passes), folding both
// (i,j) and (j,i) into the result since the source data is symmetric.
func permutedDense(n int, colPtr, rowInd []int, data []float64, fwd []int) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
	}
	for j := 0; j < n; j++ {
		for p := colPtr[j]; p < colPtr[j+1]; p++ {
			i := rowInd[p]
			v := data[p]
			pi, pj := fwd[i], fwd[j]
			out[pi][pj] = v
			out[pj][pi] = v
		}
	}
	return out
}
