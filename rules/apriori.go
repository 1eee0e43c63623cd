package rules

import (
	"sort"
)

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/tarm/itemset"
	"github.com/timtadh/tarm/occurrence"
)

// FrequentItemsets runs the level-wise apriori search: itemsets of size k+1
// are joined from the frequent itemsets of size k and kept when at least
// minSup documents contain them. maxSize <= 0 leaves the size unbounded.
func FrequentItemsets(idx *occurrence.Index, minSup, maxSize int) ([]itemset.Itemset, error) {
	if minSup <= 0 {
		return nil, errors.Errorf("minimum support must be > 0, got %d", minSup)
	}
	level := make([]itemset.Itemset, 0, idx.Len())
	for _, item := range idx.Items() {
		sup, err := idx.Support([]int32{item})
		if err != nil {
			return nil, err
		}
		if sup >= minSup {
			level = append(level, itemset.Itemset{item})
		}
	}
	frequent := make([]itemset.Itemset, 0, len(level))
	for k := 1; len(level) > 0; k++ {
		frequent = append(frequent, level...)
		errors.Logf("DEBUG", "%d frequent itemsets of size %d", len(level), k)
		if maxSize > 0 && k >= maxSize {
			break
		}
		next := make([]itemset.Itemset, 0, len(level))
		for _, c := range itemset.Candidates(level, k+1) {
			sup, err := idx.Support(c)
			if err != nil {
				return nil, err
			}
			if sup >= minSup {
				next = append(next, c)
			}
		}
		level = next
	}
	sort.SliceStable(frequent, func(i, j int) bool { return frequent[i].Less(frequent[j]) })
	return frequent, nil
}

// MineItemsets runs the consequent growing generator over the given
// itemsets only, largest first. Itemsets with fewer than two items are
// skipped.
func MineItemsets(idx *occurrence.Index, sets []itemset.Itemset, opts Options) (*Rules, error) {
	ordered := make([]itemset.Itemset, len(sets))
	copy(ordered, sets)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[j].Less(ordered[i]) })
	found := New()
	for _, l := range ordered {
		if len(l) < 2 || (opts.MaxSize > 0 && len(l) > opts.MaxSize) {
			continue
		}
		if err := apGenRules(idx, l, opts.MinConf, found); err != nil {
			return nil, err
		}
	}
	return found, nil
}
