package cholesky

// FundamentalSupernodes partitions the columns 0..n into contiguous
// supernodes sharing the same off-diagonal row pattern below the
// supernode, derived purely from the etree and column counts (before any
// relaxation merging is applied).
type FundamentalSupernodes struct {
	// SuperBegin holds the column boundaries: supernode s spans columns
	// [SuperBegin[s], SuperBegin[s+1]). Length NumSuper()+1.
	SuperBegin []int
	// IndexToSuper maps a column to its supernode index. Length n.
	IndexToSuper []int
	// SuperEtree is the etree of the column etree induced on supernodes
	// (each supernode's parent is the supernode containing the etree
	// parent of the supernode's last column).
	SuperEtree []int
}

// NumSuper returns the number of supernodes.
func (f *FundamentalSupernodes) NumSuper() int { return len(f.SuperBegin) - 1 }

// Size returns the number of columns in supernode s.
func (f *FundamentalSupernodes) Size(s int) int { return f.SuperBegin[s+1] - f.SuperBegin[s] }

// DiscoverFundamentalSupernodes scans columns left to right and starts a
// new supernode whenever column j fails to extend column j-1's: j must be
// j-1's etree parent, j must have exactly one child, and the column counts
// must progress by exactly one (col_counts[j-1] == col_counts[j] + 1).
func DiscoverFundamentalSupernodes(etree []int, colCounts []int) *FundamentalSupernodes {
	n := len(etree)
	if n == 0 {
		return &FundamentalSupernodes{SuperBegin: []int{0}}
	}

	childCount := make([]int, n)
	for _, p := range etree {
		if p != NoParent {
			childCount[p]++
		}
	}

	superBegin := []int{0}
	for j := 1; j < n; j++ {
		extends := etree[j-1] == j && childCount[j] == 1 && colCounts[j-1] == colCounts[j]+1
		if !extends {
			superBegin = append(superBegin, j)
		}
	}
	superBegin = append(superBegin, n)

	sf := len(superBegin) - 1
	indexToSuper := make([]int, n)
	for s := 0; s < sf; s++ {
		for j := superBegin[s]; j < superBegin[s+1]; j++ {
			indexToSuper[j] = s
		}
	}

	superEtree := make([]int, sf)
	for s := 0; s < sf; s++ {
		last := superBegin[s+1] - 1
		p := etree[last]
		if p == NoParent {
			superEtree[s] = NoParent
		} else {
			superEtree[s] = indexToSuper[p]
		}
	}

	return &FundamentalSupernodes{SuperBegin: superBegin, IndexToSuper: indexToSuper, SuperEtree: superEtree}
}
