package cholesky

import (
	"github.com/sparsela/sparsechol"
	"github.com/sparsela/sparsechol/stack"
)

// EreachReq returns the scratch space Ereach needs for an n x n matrix.
func EreachReq(n int) stack.Req {
	return stack.IntsReq(n)
}

// Ereach computes the row pattern of L(k, :): the set of columns j < k with
// L(k, j) != 0, returned in the topological order a sparse triangular solve
// needs to consume it in (ancestors before descendants is not required;
// what matters is that every column is emitted after all columns reachable
// only through it have already appeared, which the reverse-accumulation
// below guarantees).
//
// For every row i <= k present in column k of a, the reach is the set of
// etree ancestors of i below k: climb from i through already-built parent
// edges, stopping at the first node already marked for this call. Each
// climbed segment is copied onto the top of a shared stack in reverse, so
// nodes closer to k (found first, via smaller original row indices) end up
// deeper in the stack than nodes found via later rows — matching how the
// teacher's other two-pass counting-sort routines build output by walking
// a structure once and committing positions from a cursor, just run here
// over the etree instead of column pointers.
//
// marked must have length a.N() and be all false on entry; Ereach restores
// it to all false before returning, so the same slice can be reused across
// successive calls for k = 0, 1, ..., n-1. s is rewound at the start of the
// call and used purely as scratch for the duration of the call.
func Ereach(a *sparse.SymbolicCSC, etree []int, k int, marked []bool, s *stack.Stack) []int {
	n := a.N()
	s.Rewind()
	buf := s.Ints(n)

	top := n
	marked[k] = true
	for _, i := range a.Col(k) {
		if i > k {
			continue
		}
		length := 0
		for c := i; !marked[c]; c = etree[c] {
			buf[length] = c
			length++
			marked[c] = true
		}
		for length > 0 {
			length--
			top--
			buf[top] = buf[length]
		}
	}

	reach := make([]int, n-top)
	copy(reach, buf[top:n])

	for _, j := range reach {
		marked[j] = false
	}
	marked[k] = false

	return reach
}
