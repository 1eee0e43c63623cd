package reporters

import (
	"math/rand"
	"sort"
)

import (
	"github.com/timtadh/tarm/rules"
	"github.com/timtadh/tarm/stats"
	"github.com/timtadh/tarm/stores/ints_ints"
)

// Sample holds every rule in a scratch store and passes a uniform random
// sample of Size of them, in report order, to the inner reporter on close.
// The store is deleted on close.
type Sample struct {
	Size     int
	Reporter rules.Reporter
	rng      *rand.Rand
	store    ints_ints.MultiMap
	count    int32
}

func NewSample(rng *rand.Rand, size int, store ints_ints.MultiMap, rptr rules.Reporter) *Sample {
	return &Sample{
		Size:     size,
		Reporter: rptr,
		rng:      rng,
		store:    store,
	}
}

// rule i is kept as [i, 0] -> antecedent and [i, 1] -> consequent.
func (r *Sample) Report(ante, cons []int32) error {
	if err := r.store.Add([]int32{r.count, 0}, ante); err != nil {
		return err
	}
	if err := r.store.Add([]int32{r.count, 1}, cons); err != nil {
		return err
	}
	r.count++
	return nil
}

func (r *Sample) find(key []int32) (value []int32, err error) {
	err = r.store.DoFind(key, func(_, v []int32) error {
		value = v
		return nil
	})
	return value, err
}

func (r *Sample) Close() error {
	picked := stats.Sample(r.rng, r.Size, int(r.count))
	sort.Ints(picked)
	for _, i := range picked {
		ante, err := r.find([]int32{int32(i), 0})
		if err != nil {
			r.store.Delete()
			return err
		}
		cons, err := r.find([]int32{int32(i), 1})
		if err != nil {
			r.store.Delete()
			return err
		}
		if err := r.Reporter.Report(ante, cons); err != nil {
			r.store.Delete()
			return err
		}
	}
	if err := r.store.Delete(); err != nil {
		return err
	}
	return r.Reporter.Close()
}
