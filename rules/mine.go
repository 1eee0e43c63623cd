package rules

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/data-structures/hashtable"
)

import (
	"github.com/timtadh/tarm/itemset"
	"github.com/timtadh/tarm/occurrence"
)

type Options struct {
	// MinConf is the smallest support(ante U cons) / support(ante) kept.
	MinConf float64
	// MaxSize caps the size of the itemsets rules are generated from. Zero
	// means the whole item universe.
	MaxSize int
}

// confident reports whether ante => (l - ante) holds given supL, the
// support of l. Antecedents without support never hold.
func confident(idx *occurrence.Index, ante itemset.Itemset, supL int, minConf float64) (bool, error) {
	supA, err := idx.Support(ante)
	if err != nil {
		return false, err
	}
	return supA > 0 && float64(supL)/float64(supA) >= minConf, nil
}

// itemsets calls do with every combination of the index's items, from the
// largest size down to pairs.
func itemsets(idx *occurrence.Index, maxSize int, do func(l itemset.Itemset) error) error {
	universe := idx.Items()
	top := len(universe)
	if maxSize > 0 && maxSize < top {
		top = maxSize
	}
	for size := top; size >= 2; size-- {
		errors.Logf("DEBUG", "generating rules from itemsets of size %d", size)
		if err := itemset.Combinations(universe, size, do); err != nil {
			return err
		}
	}
	return nil
}

// MineNaive tests every non-empty proper subset of every itemset as an
// antecedent. Smaller antecedents are always explored, whether or not the
// rule for their superset held.
func MineNaive(idx *occurrence.Index, opts Options) (*Rules, error) {
	found := New()
	err := itemsets(idx, opts.MaxSize, func(l itemset.Itemset) error {
		return genRules(idx, l, opts.MinConf, found)
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

func genRules(idx *occurrence.Index, l itemset.Itemset, minConf float64, found *Rules) error {
	supL, err := idx.Support(l)
	if err != nil {
		return err
	}
	visited := hashtable.NewLinearHash()
	queue := []itemset.Itemset{l}
	for len(queue) > 0 {
		a := queue[0]
		queue = queue[1:]
		err := itemset.Combinations(a, len(a)-1, func(sub itemset.Itemset) error {
			key := sub.Key()
			if visited.Has(key) {
				return nil
			}
			if err := visited.Put(key, nil); err != nil {
				return err
			}
			ok, err := confident(idx, sub, supL, minConf)
			if err != nil {
				return err
			} else if ok {
				if _, err := found.Add(sub, l.Minus(sub)); err != nil {
					return err
				}
			}
			if len(sub) > 1 {
				queue = append(queue, sub)
			}
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// MineFaster grows consequents level by level. Only consequents built from
// consequents accepted at the previous level are tested.
func MineFaster(idx *occurrence.Index, opts Options) (*Rules, error) {
	found := New()
	err := itemsets(idx, opts.MaxSize, func(l itemset.Itemset) error {
		return apGenRules(idx, l, opts.MinConf, found)
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

func apGenRules(idx *occurrence.Index, l itemset.Itemset, minConf float64, found *Rules) error {
	supL, err := idx.Support(l)
	if err != nil {
		return err
	}
	H, err := singleConsequents(idx, l, supL, minConf, found)
	if err != nil {
		return err
	}
	for m := 1; len(l) > m+1 && len(H) > 0; m++ {
		next := make([]itemset.Itemset, 0, len(H))
		for _, h := range itemset.Candidates(H, m+1) {
			ante := l.Minus(h)
			ok, err := confident(idx, ante, supL, minConf)
			if err != nil {
				return err
			} else if !ok {
				continue
			}
			added, err := found.Add(ante, h)
			if err != nil {
				return err
			} else if added {
				next = append(next, h)
			}
		}
		H = next
	}
	return nil
}

func singleConsequents(idx *occurrence.Index, l itemset.Itemset, supL int, minConf float64, found *Rules) ([]itemset.Itemset, error) {
	H := make([]itemset.Itemset, 0, len(l))
	for _, single := range l {
		others := l.Without(single)
		ok, err := confident(idx, others, supL, minConf)
		if err != nil {
			return nil, err
		} else if !ok {
			continue
		}
		cons := itemset.Itemset{single}
		added, err := found.Add(others, cons)
		if err != nil {
			return nil, err
		} else if added {
			H = append(H, cons)
		}
	}
	return H, nil
}
