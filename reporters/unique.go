package reporters

import (
	"github.com/timtadh/data-structures/set"
	"github.com/timtadh/data-structures/types"
)

import (
	"github.com/timtadh/tarm/itemset"
	"github.com/timtadh/tarm/rules"
)

// Unique drops rules it has already passed on. Rules from several mining
// runs (one per partition, say) can then share one output.
type Unique struct {
	Seen     *set.SortedSet
	Reporter rules.Reporter
}

func NewUnique(reporter rules.Reporter) *Unique {
	return &Unique{
		Seen:     set.NewSortedSet(10),
		Reporter: reporter,
	}
}

func (r *Unique) Report(ante, cons []int32) error {
	label := types.ByteSlice(append(itemset.Label(ante), itemset.Label(cons)...))
	if r.Seen.Has(label) {
		return nil
	}
	if err := r.Seen.Add(label); err != nil {
		return err
	}
	return r.Reporter.Report(ante, cons)
}

func (r *Unique) Close() error {
	return r.Reporter.Close()
}
