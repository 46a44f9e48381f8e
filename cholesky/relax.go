package cholesky

import "math"

// RelaxCutoff is one (size, density) pair in a supernode relaxation
// policy: a merge producing a supernode no larger than SizeCutoff columns
// is accepted as long as its explicit zero fill stays within
// SizeCutoff * (expanded block size) * DensityCutoff.
type RelaxCutoff struct {
	SizeCutoff    int
	DensityCutoff float64
}

// DefaultRelaxationCutoffs is the relaxation policy used when
// SymbolicParams.RelaxationCutoffs is nil.
func DefaultRelaxationCutoffs() []RelaxCutoff {
	return []RelaxCutoff{
		{SizeCutoff: 4, DensityCutoff: 1.0},
		{SizeCutoff: 16, DensityCutoff: 0.8},
		{SizeCutoff: 48, DensityCutoff: 0.1},
		{SizeCutoff: math.MaxInt64, DensityCutoff: 0.05},
	}
}

// RelaxedSupernodes is the output of RelaxSupernodes: S <= the fundamental
// supernode count, after merging bounded by the cutoff policy.
type RelaxedSupernodes struct {
	SuperBegin   []int
	IndexToSuper []int
	SuperEtree   []int
}

// NumSuper returns the number of supernodes.
func (r *RelaxedSupernodes) NumSuper() int { return len(r.SuperBegin) - 1 }

// Size returns the number of columns in supernode s.
func (r *RelaxedSupernodes) Size(s int) int { return r.SuperBegin[s+1] - r.SuperBegin[s] }

// RelaxSupernodes merges adjacent fundamental supernodes to trade bounded
// explicit zero fill for fewer, larger dense blocks, which is what lets
// the supernodal numeric kernel lean on dense BLAS-style rank-k updates
// instead of many tiny ones.
//
// cutoffs == nil means "use DefaultRelaxationCutoffs()"; pass an empty,
// non-nil slice to disable relaxation entirely (every supernode stays
// fundamental) - mirrors the original's Option<&[(usize,f64)]> default
// parameter, where None means "use the default" and Some(&[]) means "off".
//
// Only one candidate is ever considered per parent p: the supernode
// immediately preceding it (by original fundamental index), and only if
// its etree parent resolves to p - the "only immediately adjacent
// children" restriction the original algorithm relies on (see DESIGN.md).
// Because of that restriction there is never more than one candidate to
// choose between, so the "greedily select the largest mergeable child"
// step degenerates to a single accept/reject test per step; the loop
// still runs repeatedly per parent so a chain of several preceding
// supernodes can cascade into one.
func RelaxSupernodes(fund *FundamentalSupernodes, colCounts []int, cutoffs []RelaxCutoff) *RelaxedSupernodes {
	sf := fund.NumSuper()
	if sf == 0 {
		return &RelaxedSupernodes{SuperBegin: []int{0}}
	}
	if cutoffs == nil {
		cutoffs = DefaultRelaxationCutoffs()
	}

	begin := make([]int, sf)
	size := make([]int, sf)
	degree := make([]int, sf)
	sumCounts := make([]int, sf)
	mergedInto := make([]int, sf)
	for s := 0; s < sf; s++ {
		mergedInto[s] = NoParent
		b, e := fund.SuperBegin[s], fund.SuperBegin[s+1]
		begin[s] = b
		size[s] = e - b
		degree[s] = colCounts[e-1] - 1
		sum := 0
		for j := b; j < e; j++ {
			sum += colCounts[j]
		}
		sumCounts[s] = sum
	}

	find := func(s int) int {
		for mergedInto[s] != NoParent {
			s = mergedInto[s]
		}
		return s
	}

	for p := 0; p < sf; p++ {
		for c := p - 1; c >= 0; c-- {
			if find(c) != c {
				break
			}
			if find(fund.SuperEtree[c]) != p {
				break
			}

			combinedSize := size[c] + size[p]
			parentDegree := degree[p]
			numExpanded := combinedSize*(combinedSize+1)/2 + parentDegree*combinedSize
			numZeros := numExpanded - (sumCounts[c] + sumCounts[p])

			if !relaxAllows(combinedSize, numZeros, numExpanded, cutoffs) {
				break
			}

			size[p] += size[c]
			sumCounts[p] += sumCounts[c]
			begin[p] = begin[c]
			mergedInto[c] = p
		}
	}

	newIndex := make([]int, sf)
	superBegin := []int{0}
	r := 0
	for s := 0; s < sf; s++ {
		if mergedInto[s] != NoParent {
			continue
		}
		newIndex[s] = r
		superBegin = append(superBegin, fund.SuperBegin[s+1])
		r++
	}
	superBegin[0] = 0
	// The loop above appended each alive supernode's end column; fix up
	// the starts to the (possibly merge-extended) begin values, in order.
	r = 0
	for s := 0; s < sf; s++ {
		if mergedInto[s] != NoParent {
			continue
		}
		superBegin[r] = begin[s]
		r++
	}

	n := fund.SuperBegin[sf]
	indexToSuper := make([]int, n)
	r = 0
	for s := 0; s < sf; s++ {
		if mergedInto[s] != NoParent {
			continue
		}
		for j := begin[s]; j < fund.SuperBegin[s+1]; j++ {
			indexToSuper[j] = r
		}
		r++
	}

	superEtree := make([]int, r)
	idx := 0
	for s := 0; s < sf; s++ {
		if mergedInto[s] != NoParent {
			continue
		}
		p := fund.SuperEtree[s]
		if p == NoParent {
			superEtree[idx] = NoParent
		} else {
			superEtree[idx] = newIndex[find(p)]
		}
		idx++
	}

	return &RelaxedSupernodes{SuperBegin: superBegin, IndexToSuper: indexToSuper, SuperEtree: superEtree}
}

func relaxAllows(combinedSize, numZeros, numExpanded int, cutoffs []RelaxCutoff) bool {
	for _, co := range cutoffs {
		if combinedSize > co.SizeCutoff {
			continue
		}
		limit := float64(co.SizeCutoff) * float64(numExpanded) * co.DensityCutoff
		if float64(numZeros) <= limit {
			return true
		}
	}
	return false
}
