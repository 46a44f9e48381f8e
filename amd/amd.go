// Package amd supplies fill-reducing orderings for FactorizeSymbolic: a
// permutation P chosen before elimination so that symbolic factorization of
// P*A*Pᵀ produces fewer nonzeros in L than factorizing A directly.
//
// No repo in the retrieval pack ships an approximate minimum degree
// implementation (out of scope per the distilled spec's Non-goals), so
// ApproximateMinDegree here is a plain, non-corpus-grounded greedy min-
// degree heuristic - see the module's DESIGN.md for why this is the one
// part of the tree built without a teacher to imitate. Its adjacency
// bookkeeping (map of neighbor sets keyed by vertex) follows the shape of
// katalvlaran-lvlath's core.Graph adjacency list, adapted from string
// vertex IDs to the dense [0,n) column indices this library works with.
package amd

import "sort"

// Result carries ordering-time byproducts alongside the permutation itself.
// Orderers that eliminate vertices one at a time (ApproximateMinDegree) see
// each vertex's degree at the moment it is eliminated - the same quantity
// FactorizeSymbolic would otherwise have to re-derive from column counts
// after the fact - so they report a flop estimate computed from it.
// Orderers that do not simulate elimination (Identity, Custom) return a
// zero Result, meaning no estimate is available; callers fall back to
// deriving one from the symbolic factor's column counts.
type Result struct {
	// Flops is an estimated LDLᵀ flop count (n_div + n_mult_subs_ldl,
	// matching the original's ComputationModel accounting), derived from
	// the off-diagonal degree of each vertex at the step it was
	// eliminated. Zero means no estimate is available.
	Flops float64
}

// Orderer produces a fill-reducing permutation for a symmetric n x n
// pattern given as, for each column j, its neighbor columns (both triangles
// - the same full-symmetric adjacency convention the elimination tree
// construction reads). Perm[i] is the original column that ends up at
// position i after permutation; InversePerm is its inverse.
type Orderer interface {
	Order(n int, neighbors func(j int) []int) (perm, inversePerm []int, result Result)
}

// Identity never reorders: Perm/InversePerm are both the identity
// permutation. Useful when the caller has already ordered A, or wants a
// baseline to compare fill against.
type Identity struct{}

func (Identity) Order(n int, neighbors func(j int) []int) (perm, inversePerm []int, result Result) {
	perm = make([]int, n)
	inversePerm = make([]int, n)
	for i := 0; i < n; i++ {
		perm[i] = i
		inversePerm[i] = i
	}
	return perm, inversePerm, Result{}
}

// Custom wraps a caller-supplied permutation (e.g. computed out of band, or
// from a previous factorization of a matrix with the same pattern) as an
// Orderer. Perm must be a permutation of [0, n).
type Custom struct {
	Perm []int
}

func (c Custom) Order(n int, neighbors func(j int) []int) (perm, inversePerm []int, result Result) {
	if len(c.Perm) != n {
		panic("amd: Custom.Perm length does not match n")
	}
	perm = append([]int(nil), c.Perm...)
	inversePerm = make([]int, n)
	for i, j := range perm {
		inversePerm[j] = i
	}
	return perm, inversePerm, Result{}
}

// ApproximateMinDegree greedily eliminates, at each step, the remaining
// vertex of smallest current degree, updating its neighbors' adjacency to
// reflect the clique fill-in that eliminating it would introduce (every
// pair of its still-uneliminated neighbors becomes adjacent). This is the
// textbook minimum-degree heuristic without the AMD paper's "quotient
// graph" compression or supernode amalgamation tricks - simpler and slower
// on large graphs, but it produces a valid, if not minimal, fill-reducing
// order.
type ApproximateMinDegree struct{}

func (ApproximateMinDegree) Order(n int, neighbors func(j int) []int) (perm, inversePerm []int, result Result) {
	adj := make([]map[int]struct{}, n)
	for j := 0; j < n; j++ {
		adj[j] = make(map[int]struct{})
	}
	for j := 0; j < n; j++ {
		for _, i := range neighbors(j) {
			if i == j {
				continue
			}
			adj[j][i] = struct{}{}
			adj[i][j] = struct{}{}
		}
	}

	eliminated := make([]bool, n)
	perm = make([]int, 0, n)
	var flops float64

	for step := 0; step < n; step++ {
		best := -1
		bestDegree := -1
		for v := 0; v < n; v++ {
			if eliminated[v] {
				continue
			}
			d := len(adj[v])
			if best == -1 || d < bestDegree || (d == bestDegree && v < best) {
				best = v
				bestDegree = d
			}
		}

		nbrs := make([]int, 0, len(adj[best]))
		for u := range adj[best] {
			nbrs = append(nbrs, u)
		}
		sort.Ints(nbrs)

		for _, u := range nbrs {
			delete(adj[u], best)
			for _, w := range nbrs {
				if w != u {
					adj[u][w] = struct{}{}
				}
			}
		}

		eliminated[best] = true
		perm = append(perm, best)

		// bestDegree is the off-diagonal count of the column being
		// eliminated at this step - the same quantity flopEstimate
		// later re-derives from the permuted matrix's column counts,
		// available here for free during elimination.
		off := float64(bestDegree)
		flops += off + off*off
	}

	inversePerm = make([]int, n)
	for i, j := range perm {
		inversePerm[j] = i
	}
	return perm, inversePerm, Result{Flops: flops}
}
