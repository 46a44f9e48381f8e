package cholesky

import (
	"fmt"
	"math"

	"github.com/sparsela/sparsechol"
	"github.com/sparsela/sparsechol/amd"
	"github.com/sparsela/sparsechol/cholesky/internal/bound"
	"github.com/sparsela/sparsechol/stack"
)

// SymbolicCholesky is the output of FactorizeSymbolic: a fill-reducing
// permutation plus whichever of the two symbolic factors the flop/nnz
// heuristic selected. FactorizeNumericLDLT dispatches on Supernodal to
// run the matching numeric kernel.
type SymbolicCholesky struct {
	N int

	// PermFwd[i] is the position original index i moves to; PermInv is
	// its inverse (PermInv[PermFwd[i]] == i). Both are the identity when
	// params.Orderer leaves the matrix unordered.
	PermFwd, PermInv []int

	// ANNZ is the number of stored entries of the permuted upper
	// triangle fed to the chosen symbolic factorization.
	ANNZ int

	// Supernodal reports which numeric kernel FactorizeNumericLDLT must
	// use; exactly one of Simplicial/Supernodal is non-nil, matching
	// this flag.
	Supernodal bool

	Simplicial       *SymbolicSimplicial
	SupernodalFactor *SymbolicSupernodal
}

// LenValues returns the size of the value buffer FactorizeNumericLDLT's
// lValues parameter must have (spec.md §6's "L_values_out.len() ==
// sym.len_values()").
func (sym *SymbolicCholesky) LenValues() int {
	if sym.Supernodal {
		return sym.SupernodalFactor.LenValues()
	}
	return sym.Simplicial.LenValues()
}

// flopEstimate returns a rough (n_div, n_mult_subs_ldl) flop count for an
// up-looking LDLᵀ factorization whose column counts of L (including the
// diagonal) are given by colCounts: column j with off := colCounts[j]-1
// strictly-below-diagonal entries costs one division per off-diagonal
// entry (n_div) and, from the rank-1 update every later reach contributes
// back into it, roughly off^2 multiply-subtracts (n_mult_subs_ldl). Used
// as the fallback when the chosen amd.Orderer doesn't report its own
// amd.Result.Flops (Identity and Custom don't simulate elimination, so
// they can't); see DESIGN.md for why an exact flop count isn't reproduced
// either way.
func flopEstimate(colCounts []int) (nDiv, nMultSubsLDL int) {
	for _, c := range colCounts {
		off := c - 1
		nDiv += off
		nMultSubsLDL += off * off
	}
	return nDiv, nMultSubsLDL
}

// symmetricNeighbors returns a neighbors function over aUpper's full
// symmetric adjacency (both triangles), the form amd.Orderer needs to
// compute vertex degrees: aUpper.Col(j) already holds j's own upper
// entries (rows <= j); aUpper.Transpose().Col(j) holds every row k > j
// whose column k stores (j, k) — together, minus the diagonal, the two
// give j's full neighbor set.
func symmetricNeighbors(aUpper *sparse.SymbolicCSC) func(j int) []int {
	lower := aUpper.Transpose()
	return func(j int) []int {
		var nbrs []int
		for _, i := range aUpper.Col(j) {
			if i != j {
				nbrs = append(nbrs, i)
			}
		}
		for _, i := range lower.Col(j) {
			if i != j {
				nbrs = append(nbrs, i)
			}
		}
		return nbrs
	}
}

// FactorizeSymbolic runs the full symbolic analysis pipeline of spec.md
// §4.11: order a with params.Orderer (default amd.ApproximateMinDegree),
// bring it to upper-triangle form if side is Lower, permute it
// symmetrically, compute the elimination tree and column counts, estimate
// the LDLᵀ flop count, and build whichever of the simplicial/supernodal
// symbolic factors the flops/L_nnz ratio selects.
func FactorizeSymbolic(a *sparse.SymbolicCSC, side sparse.Side, params SymbolicParams) (*SymbolicCholesky, error) {
	n := a.N()
	dim := bound.NewDim(n)
	for j := 0; j < n; j++ {
		bound.NewIdx(j, dim)
	}

	orderer := params.Orderer
	if orderer == nil {
		orderer = amd.ApproximateMinDegree{}
	}

	aUpper := a
	if side == sparse.Lower {
		aUpper = a.Transpose()
	}

	// The orderer returns the elimination order (perm[new] == old) first;
	// PermFwd maps the other way (PermFwd[old] == new), so it takes the
	// orderer's inverse.
	inv, fwd, ordResult := orderer.Order(n, symmetricNeighbors(aUpper))
	params.logf("cholesky: ordered %d columns", n)

	permuted := aUpper.PermuteSymmetric(fwd)

	etree, colCounts := EliminationTreeAndColumnCounts(permuted)
	params.logf("cholesky: built elimination tree")

	lNNZ := 0
	for _, c := range colCounts {
		lNNZ += c
	}

	threshold := params.SupernodalFlopRatioThreshold
	if threshold == 0 {
		threshold = DefaultSupernodalFlopRatioThreshold
	}

	// Prefer the orderer's own flop estimate (amd.ApproximateMinDegree
	// reports one derived from each vertex's degree at elimination time,
	// amd.Result.Flops) over re-deriving it post-hoc from column counts;
	// Identity/Custom report a zero Result, so flopEstimate is the
	// fallback for those.
	flops := int(ordResult.Flops)
	if flops <= 0 {
		nDiv, nMultSubsLDL := flopEstimate(colCounts)
		flops = nDiv + nMultSubsLDL
	}

	ratio := 0.0
	if lNNZ > 0 {
		ratio = float64(flops) / float64(lNNZ)
	}
	useSupernodal := ratio > threshold
	params.logf("cholesky: flops=%d L_nnz=%d ratio=%.3f supernodal=%v", flops, lNNZ, ratio, useSupernodal)

	sym := &SymbolicCholesky{
		N:          n,
		PermFwd:    fwd,
		PermInv:    inv,
		ANNZ:       permuted.NNZ(),
		Supernodal: useSupernodal,
	}

	if !useSupernodal {
		sym.Simplicial = FactorizeSimplicialSymbolic(permuted)
		return sym, nil
	}

	fund := DiscoverFundamentalSupernodes(etree, colCounts)
	relaxed := RelaxSupernodes(fund, colCounts, params.RelaxationCutoffs)
	supSym, err := FactorizeSupernodalSymbolic(permuted, relaxed)
	if err != nil {
		return nil, err
	}
	sym.SupernodalFactor = supSym
	return sym, nil
}

// FactorizeNumericLDLTReq returns the scratch space FactorizeNumericLDLT
// needs for sym: the simplicial kernel climbs the elimination tree via
// Ereach (stack.Req sized for n ints); the supernodal kernel writes into the
// caller-owned lValues and heap-allocates its own scratch (the
// global-to-local row map and update temporaries), so it needs none from
// the caller-supplied arena.
func (sym *SymbolicCholesky) FactorizeNumericLDLTReq(side sparse.Side, parallelism int) (stack.Req, error) {
	if sym.Supernodal {
		return stack.Empty, nil
	}
	return EreachReq(sym.N), nil
}

// permuteUpper applies sym's permutation to a's numeric upper-triangle
// values and returns the permuted upper triangle FactorizeSimplicialNumeric
// expects; FactorizeNumericLDLT transposes it into the lower triangle
// FactorizeSupernodalNumeric expects.
func (sym *SymbolicCholesky) permuteUpper(a *sparse.CSC, side sparse.Side) *sparse.CSC {
	aUpper := a
	if side == sparse.Lower {
		aUpper = a.Transpose()
	}
	return aUpper.PermuteSymmetric(sym.PermFwd, sparse.Upper)
}

// NumericCholesky is the numeric counterpart of SymbolicCholesky: exactly
// one of Simplicial/Supernodal is populated, matching the symbolic
// factor's Supernodal flag.
type NumericCholesky struct {
	Sym *SymbolicCholesky

	Simplicial *NumericSimplicial
	Supernodal *NumericSupernodal
}

// D returns the diagonal entry D[j] (in the permuted order: column j of
// the factor, not column Sym.PermInv[j] of the original matrix).
func (f *NumericCholesky) D(j int) float64 {
	if f.Supernodal != nil {
		return f.Supernodal.D(j)
	}
	return f.Simplicial.D(j)
}

// LogDet returns the natural log of |det(A)| = sum of log|D(j)|, computed as
// a sum of logs to avoid overflow/underflow on ill-scaled inputs - the LDLᵀ
// byproduct the teacher's Cholesky.LogDet exposes for the positive
// semidefinite case, generalized here to LDLᵀ's signed diagonal. The sign
// of det(A) is not reported; use Det for it.
func (f *NumericCholesky) LogDet() float64 {
	n := f.Sym.N
	sum := 0.0
	for j := 0; j < n; j++ {
		sum += math.Log(math.Abs(f.D(j)))
	}
	return sum
}

// Det returns det(A) = prod(D).
func (f *NumericCholesky) Det() float64 {
	n := f.Sym.N
	prod := 1.0
	for j := 0; j < n; j++ {
		prod *= f.D(j)
	}
	return prod
}

// FactorizeNumericLDLT computes the numeric LDLᵀ factorization matching
// sym's pattern (built by a prior FactorizeSymbolic call against the same
// sparsity pattern), dispatching to the simplicial or supernodal kernel
// per sym.Supernodal. Matches spec.md §6's
// factorize_numeric_ldlt(L_values_out, A_numeric, side, parallelism,
// stack) signature: lValues is the caller-owned value buffer L is written
// into (must satisfy len(lValues) == sym.LenValues()) and
// FactorizeNumericLDLT does not allocate it. st must have at least the
// capacity FactorizeNumericLDLTReq(side, parallelism) reports;
// parallelism is accepted for interface parity with spec.md §6 but
// unused - both numeric kernels here run single-threaded (see
// DESIGN.md).
func (sym *SymbolicCholesky) FactorizeNumericLDLT(lValues []float64, a *sparse.CSC, side sparse.Side, parallelism int, params NumericParams, st *stack.Stack) (*NumericCholesky, error) {
	if len(lValues) != sym.LenValues() {
		panic(fmt.Sprintf("cholesky: len(lValues)=%d, want %d", len(lValues), sym.LenValues()))
	}

	permuted := sym.permuteUpper(a, side)

	if !sym.Supernodal {
		if sym.Simplicial == nil {
			return nil, fmt.Errorf("cholesky: sym was built for the supernodal path, not simplicial")
		}
		f, err := FactorizeSimplicialNumeric(lValues, permuted, sym.Simplicial, params)
		if err != nil {
			return nil, err
		}
		return &NumericCholesky{Sym: sym, Simplicial: f}, nil
	}

	if sym.SupernodalFactor == nil {
		return nil, fmt.Errorf("cholesky: sym was built for the simplicial path, not supernodal")
	}
	lower := permuted.Transpose()
	f, err := FactorizeSupernodalNumeric(lValues, lower, sym.SupernodalFactor, params)
	if err != nil {
		return nil, err
	}
	return &NumericCholesky{Sym: sym, Supernodal: f}, nil
}
