// Package predict matches observed sequences against the antecedents of a
// rule set and returns the consequents of the rules which match closely
// enough.
package predict

import (
	"github.com/timtadh/data-structures/set"
	"github.com/timtadh/data-structures/types"
)

import (
	"github.com/timtadh/tarm/itemset"
	"github.com/timtadh/tarm/occurrence"
	"github.com/timtadh/tarm/rules"
	"github.com/timtadh/tarm/sequence"
)

// Similarity scores two items in [0, 1].
type Similarity func(a, b int32) (float64, error)

// Exact scores 1 for identical items and 0 otherwise.
func Exact(a, b int32) (float64, error) {
	if a == b {
		return 1, nil
	}
	return 0, nil
}

// Jaccard scores two items by the overlap of the documents they occur in.
func Jaccard(idx *occurrence.Index) Similarity {
	return func(a, b int32) (float64, error) {
		if a == b {
			if !idx.Has(a) {
				return 0, &occurrence.MissingItem{Item: a}
			}
			return 1, nil
		}
		sa, err := idx.Support([]int32{a})
		if err != nil {
			return 0, err
		}
		sb, err := idx.Support([]int32{b})
		if err != nil {
			return 0, err
		}
		both, err := idx.Support([]int32{a, b})
		if err != nil {
			return 0, err
		}
		union := sa + sb - both
		if union == 0 {
			return 0, nil
		}
		return float64(both) / float64(union), nil
	}
}

// Predict considers every antecedent as long as seq. The similarity of seq
// and an antecedent is the product of the position wise similarities; at
// or above ratio all of the antecedent's consequents are predicted. Each
// consequent is returned once, in rule order.
func Predict(seq []int32, r *rules.Rules, ratio float64, sim Similarity) ([][]int32, error) {
	predictions := make([][]int32, 0, 10)
	seen := set.NewSortedSet(10)
	for _, rule := range r.Rules() {
		if len(rule.Antecedent) != len(seq) {
			continue
		}
		s := 1.0
		for i := range seq {
			x, err := sim(seq[i], rule.Antecedent[i])
			if err != nil {
				return nil, err
			}
			s *= x
			if s < ratio {
				break
			}
		}
		if s < ratio {
			continue
		}
		for _, cons := range rule.Consequents {
			label := types.ByteSlice(itemset.Label(cons))
			if seen.Has(label) {
				continue
			}
			if err := seen.Add(label); err != nil {
				return nil, err
			}
			predictions = append(predictions, cons)
		}
	}
	return predictions, nil
}

type Prediction struct {
	Sequence    []int32
	Consequents [][]int32
}

// Windows runs Predict on every distinct pattern of the windows and keeps
// the patterns which predicted something.
func Windows(windows []*sequence.Window, r *rules.Rules, ratio float64, sim Similarity) ([]*Prediction, error) {
	predictions := make([]*Prediction, 0, 10)
	seen := set.NewSortedSet(10)
	for _, w := range windows {
		for _, e := range w.Entries {
			label := types.ByteSlice(itemset.Label(e.Pattern))
			if seen.Has(label) {
				continue
			}
			if err := seen.Add(label); err != nil {
				return nil, err
			}
			cons, err := Predict(e.Pattern, r, ratio, sim)
			if err != nil {
				return nil, err
			}
			if len(cons) > 0 {
				predictions = append(predictions, &Prediction{e.Pattern, cons})
			}
		}
	}
	return predictions, nil
}
