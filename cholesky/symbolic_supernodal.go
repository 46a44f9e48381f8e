package cholesky

import (
	"fmt"
	"math"

	"github.com/sparsela/sparsechol"
	"github.com/sparsela/sparsechol/stack"
)

// SymbolicSupernodal is the pattern of L for the supernodal multifrontal
// numeric kernel.
type SymbolicSupernodal struct {
	N     int
	Etree []int

	SuperBegin   []int
	IndexToSuper []int
	SuperEtree   []int

	// ColPtrRow[s]..ColPtrRow[s+1] indexes into RowIndices for supernode
	// s's off-diagonal row pattern (strictly increasing, disjoint from
	// [SuperBegin[s], SuperBegin[s+1])).
	ColPtrRow  []int
	RowIndices []int

	// ColPtrVal[s] is the offset of supernode s's dense frontal block
	// (column-major, shape (ncols(s)+patternLen(s)) x ncols(s)) within
	// the shared value buffer; ColPtrVal[NumSuper()] is the buffer's
	// total length.
	ColPtrVal []int

	Postorder       []int
	PostorderInv    []int
	DescendantCount []int
}

// NumSuper returns the number of supernodes.
func (s *SymbolicSupernodal) NumSuper() int { return len(s.SuperBegin) - 1 }

// LenValues returns the size of the dense value buffer FactorizeSupernodalNumeric
// needs, the sum of every supernode's frontal block size.
func (s *SymbolicSupernodal) LenValues() int { return s.ColPtrVal[s.NumSuper()] }

// Size returns the number of columns in supernode s.
func (s *SymbolicSupernodal) Size(sup int) int { return s.SuperBegin[sup+1] - s.SuperBegin[sup] }

// Pattern returns the off-diagonal row indices of supernode sup.
func (s *SymbolicSupernodal) Pattern(sup int) []int {
	return s.RowIndices[s.ColPtrRow[sup]:s.ColPtrRow[sup+1]]
}

// maxFrontalIndex is the overflow ceiling frontal-block sizes are checked
// against, standing in for the original's I::MAX on its configured sparse
// index type.
const maxFrontalIndex = math.MaxInt32

// FactorizeSupernodalSymbolic builds the supernodal symbolic factor of a
// from its (already relaxed) supernode partition.
//
// The off-diagonal pattern of each supernode is derived from the same
// per-column Ereach used by the simplicial symbolic factor (C5): for every
// column k, Ereach(k) gives the columns j < k with L(k, j) != 0, which is
// equally a statement that row k belongs to column j's pattern. Bucketing
// those (j, k) pairs by supernode - row k goes into supernode
// IndexToSuper(j)'s pattern, once per supernode no matter how many columns
// of that supernode j ranges over - produces exactly "the set of row
// indices strictly below the supernode that appear in any of its columns"
// the spec describes via a dedicated ereach_super climb; expressing it as
// a bucketed Ereach sweep instead reuses already-verified machinery rather
// than re-deriving the same reachability relation a second way.
func FactorizeSupernodalSymbolic(a *sparse.SymbolicCSC, relaxed *RelaxedSupernodes) (*SymbolicSupernodal, error) {
	n := a.N()
	etree := EliminationTree(a)
	numSuper := relaxed.NumSuper()

	marked := make([]bool, n)
	st := stack.New(EreachReq(n))

	supVisited := make([]bool, numSuper)
	patternLen := make([]int, numSuper)
	touched := make([]int, 0, numSuper)

	// Pass 1: count.
	for k := 0; k < n; k++ {
		reach := Ereach(a, etree, k, marked, st)
		ks := relaxed.IndexToSuper[k]
		touched := touched[:0]
		for _, j := range reach {
			t := relaxed.IndexToSuper[j]
			if t == ks || supVisited[t] {
				continue
			}
			supVisited[t] = true
			patternLen[t]++
			touched = append(touched, t)
		}
		for _, t := range touched {
			supVisited[t] = false
		}
	}

	colPtrRow := make([]int, numSuper+1)
	for s := 0; s < numSuper; s++ {
		colPtrRow[s+1] = colPtrRow[s] + patternLen[s]
	}
	rowIndices := make([]int, colPtrRow[numSuper])
	fillPos := make([]int, numSuper)
	copy(fillPos, colPtrRow[:numSuper])

	// Pass 2: fill. Re-derive etree-climb state fresh; marked/st were
	// left clean by Ereach after pass 1.
	for k := 0; k < n; k++ {
		reach := Ereach(a, etree, k, marked, st)
		ks := relaxed.IndexToSuper[k]
		touched := touched[:0]
		for _, j := range reach {
			t := relaxed.IndexToSuper[j]
			if t == ks || supVisited[t] {
				continue
			}
			supVisited[t] = true
			rowIndices[fillPos[t]] = k
			fillPos[t]++
			touched = append(touched, t)
		}
		for _, t := range touched {
			supVisited[t] = false
		}
	}

	colPtrVal := make([]int, numSuper+1)
	for s := 0; s < numSuper; s++ {
		ncols := relaxed.Size(s)
		nrows := ncols + patternLen[s]
		if nrows > 0 && ncols > maxFrontalIndex/nrows {
			return nil, fmt.Errorf("cholesky: supernode %d frontal block size overflow: %w", s, ErrIndexOverflow)
		}
		blockSize := nrows * ncols
		if colPtrVal[s] > maxFrontalIndex-blockSize {
			return nil, fmt.Errorf("cholesky: value buffer size overflow: %w", ErrIndexOverflow)
		}
		colPtrVal[s+1] = colPtrVal[s] + blockSize
	}

	post, postInv, descCount := supernodalPostorder(relaxed.SuperEtree)

	return &SymbolicSupernodal{
		N:               n,
		Etree:           etree,
		SuperBegin:      relaxed.SuperBegin,
		IndexToSuper:    relaxed.IndexToSuper,
		SuperEtree:      relaxed.SuperEtree,
		ColPtrRow:       colPtrRow,
		RowIndices:      rowIndices,
		ColPtrVal:       colPtrVal,
		Postorder:       post,
		PostorderInv:    postInv,
		DescendantCount: descCount,
	}, nil
}

// supernodalPostorder computes a postorder of the forest given by parent
// (parent[s] == NoParent for roots), plus its inverse and, for each node,
// the number of proper descendants - both needed by the numeric kernel to
// walk "children before parents" and to know how many preceding postorder
// entries belong to a given supernode's subtree.
func supernodalPostorder(parent []int) (post, postInv, descendantCount []int) {
	s := len(parent)
	children := make([][]int, s)
	var roots []int
	for node, p := range parent {
		if p == NoParent {
			roots = append(roots, node)
		} else {
			children[p] = append(children[p], node)
		}
	}

	post = make([]int, 0, s)
	// Iterative postorder DFS: a stack of (node, next-child-index) frames
	// so we never recurse (the etree can be as deep as n).
	type frame struct {
		node     int
		childIdx int
	}
	for _, root := range roots {
		stk := []frame{{node: root, childIdx: 0}}
		for len(stk) > 0 {
			top := &stk[len(stk)-1]
			if top.childIdx < len(children[top.node]) {
				child := children[top.node][top.childIdx]
				top.childIdx++
				stk = append(stk, frame{node: child, childIdx: 0})
				continue
			}
			post = append(post, top.node)
			stk = stk[:len(stk)-1]
		}
	}

	postInv = make([]int, s)
	for i, node := range post {
		postInv[node] = i
	}

	descendantCount = make([]int, s)
	var count func(int) int
	count = func(node int) int {
		total := 0
		for _, c := range children[node] {
			total += 1 + count(c)
		}
		descendantCount[node] = total
		return total
	}
	for _, root := range roots {
		count(root)
	}

	return post, postInv, descendantCount
}
