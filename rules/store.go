package rules

import (
	"github.com/timtadh/tarm/stores/ints_ints"
)

// the empty key holds a single value: 1 for ordered rule sets, 0 otherwise.
var orderedKey = []int32{}

// Save writes every ante => cons pair as one entry of the store.
func (r *Rules) Save(store ints_ints.MultiMap) error {
	flag := int32(0)
	if r.Ordered {
		flag = 1
	}
	if err := store.Add(orderedKey, []int32{flag}); err != nil {
		return err
	}
	return r.Do(store.Add)
}

// Open reads back a rule set written by Save. Antecedents come back in key
// order rather than in the order they were mined.
func Open(store ints_ints.MultiMap) (*Rules, error) {
	r := New()
	err := store.DoFind(orderedKey, func(_, flag []int32) error {
		r.Ordered = len(flag) == 1 && flag[0] == 1
		return nil
	})
	if err != nil {
		return nil, err
	}
	err = ints_ints.Do(store.Iterate, func(ante, cons []int32) error {
		if len(ante) == 0 {
			return nil
		}
		_, err := r.Add(ante, cons)
		return err
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}
