// Package cholesky implements symbolic analysis and numeric factorization of
// sparse symmetric positive (semi-)definite matrices via LDLᵀ, following
// either a simplicial up-looking kernel or a supernodal multifrontal-style
// kernel chosen by a flop/nnz heuristic.
package cholesky

import "github.com/sparsela/sparsechol"

// NoParent marks the root of the elimination tree: a column with no parent.
const NoParent = -1

// EliminationTree computes the elimination tree of a, given as the upper
// triangle (row < col) of a symmetric n x n pattern: etree[j] is either the
// parent column of j in L, or NoParent.
//
// The classic column-merge algorithm: process columns left to right; for
// each row i < j present in column j, climb from i through already-built
// tree edges, grafting the first unparented node onto j and stamping every
// climbed node as visited for j so the same edge is never retraced within
// this column.
func EliminationTree(a *sparse.SymbolicCSC) []int {
	etree, _ := EliminationTreeAndColumnCounts(a)
	return etree
}

// EliminationTreeAndColumnCounts computes the elimination tree and the
// column counts of L (including the diagonal) in a single pass over the
// upper triangle of a. See spec §4.3 / the package etree.go for the
// algorithm; the expected output for the scenario fixture in the package's
// tests was used to pin down the exact operation order (count the node
// before advancing to its parent, not after).
func EliminationTreeAndColumnCounts(a *sparse.SymbolicCSC) (etree []int, colCounts []int) {
	n := a.N()
	etree = make([]int, n)
	colCounts = make([]int, n)
	visited := make([]int, n)
	for j := 0; j < n; j++ {
		etree[j] = NoParent
		colCounts[j] = 1
	}

	for j := 0; j < n; j++ {
		visited[j] = j
		for _, i := range a.Col(j) {
			if i >= j {
				continue
			}
			current := i
			for visited[current] != j {
				if etree[current] == NoParent {
					etree[current] = j
				}
				colCounts[current]++
				visited[current] = j
				current = etree[current]
			}
		}
	}

	return etree, colCounts
}
