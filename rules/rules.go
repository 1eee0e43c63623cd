// Package rules mines association rules (antecedent => consequent) from an
// occurrence index and holds rule sets produced by any of the miners.
package rules

import (
	"fmt"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/data-structures/hashtable"
	"github.com/timtadh/data-structures/types"
)

import (
	"github.com/timtadh/tarm/itemset"
)

type Rule struct {
	Antecedent  []int32
	Consequents [][]int32
}

// Rules maps antecedents to their distinct consequents. When Ordered is
// false both sides are canonical itemsets; when true they are sequences and
// keep their order. Antecedents iterate in first insertion order.
type Rules struct {
	Ordered bool
	rules   []*Rule
	index   *hashtable.LinearHash
	seen    *hashtable.LinearHash
}

// Reporter receives every rule of a rule set.
type Reporter interface {
	Report(ante, cons []int32) error
	Close() error
}

// Formatter renders a single rule.
type Formatter func(ante, cons []int32) string

func New() *Rules {
	return &Rules{
		rules: make([]*Rule, 0, 10),
		index: hashtable.NewLinearHash(),
		seen:  hashtable.NewLinearHash(),
	}
}

func NewOrdered() *Rules {
	r := New()
	r.Ordered = true
	return r
}

func (r *Rules) canon(items []int32) []int32 {
	if r.Ordered {
		c := make([]int32, len(items))
		copy(c, items)
		return c
	}
	return itemset.New(items...)
}

func pairKey(ante, cons []int32) types.ByteSlice {
	return types.ByteSlice(append(itemset.Label(ante), itemset.Label(cons)...))
}

// Add records ante => cons. It reports false when the rule was already
// present.
func (r *Rules) Add(ante, cons []int32) (bool, error) {
	ante = r.canon(ante)
	cons = r.canon(cons)
	pk := pairKey(ante, cons)
	if r.seen.Has(pk) {
		return false, nil
	}
	if err := r.seen.Put(pk, nil); err != nil {
		return false, err
	}
	ak := types.ByteSlice(itemset.Label(ante))
	if r.index.Has(ak) {
		i, err := r.index.Get(ak)
		if err != nil {
			return false, err
		}
		rule := r.rules[i.(int)]
		rule.Consequents = append(rule.Consequents, cons)
		return true, nil
	}
	if err := r.index.Put(ak, len(r.rules)); err != nil {
		return false, err
	}
	r.rules = append(r.rules, &Rule{Antecedent: ante, Consequents: [][]int32{cons}})
	return true, nil
}

func (r *Rules) Has(ante, cons []int32) bool {
	return r.seen.Has(pairKey(r.canon(ante), r.canon(cons)))
}

// Consequents returns the consequents recorded for ante (nil if none).
func (r *Rules) Consequents(ante []int32) [][]int32 {
	ak := types.ByteSlice(itemset.Label(r.canon(ante)))
	if !r.index.Has(ak) {
		return nil
	}
	i, err := r.index.Get(ak)
	if err != nil {
		return nil
	}
	return r.rules[i.(int)].Consequents
}

// Len is the number of distinct antecedents.
func (r *Rules) Len() int {
	return len(r.rules)
}

// Count is the number of antecedent => consequent pairs.
func (r *Rules) Count() int {
	return r.seen.Size()
}

func (r *Rules) Rules() []*Rule {
	return r.rules
}

func (r *Rules) Do(do func(ante, cons []int32) error) error {
	for _, rule := range r.rules {
		for _, cons := range rule.Consequents {
			if err := do(rule.Antecedent, cons); err != nil {
				return err
			}
		}
	}
	return nil
}

// Merge adds every rule of o. Both sets must agree on Ordered.
func (r *Rules) Merge(o *Rules) error {
	if r.Ordered != o.Ordered {
		return errors.Errorf("cannot merge ordered and unordered rules")
	}
	return o.Do(func(ante, cons []int32) error {
		_, err := r.Add(ante, cons)
		return err
	})
}

// Map builds a new rule set with every item passed through f.
func (r *Rules) Map(f func(int32) (int32, error)) (*Rules, error) {
	m := New()
	m.Ordered = r.Ordered
	apply := func(items []int32) ([]int32, error) {
		out := make([]int32, 0, len(items))
		for _, item := range items {
			x, err := f(item)
			if err != nil {
				return nil, err
			}
			out = append(out, x)
		}
		return out, nil
	}
	err := r.Do(func(ante, cons []int32) error {
		a, err := apply(ante)
		if err != nil {
			return err
		}
		c, err := apply(cons)
		if err != nil {
			return err
		}
		_, err = m.Add(a, c)
		return err
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *Rules) ReportTo(rptr Reporter) error {
	return r.Do(rptr.Report)
}

func (r *Rules) Formatter() Formatter {
	if r.Ordered {
		return FormatOrdered
	}
	return FormatUnordered
}

func FormatUnordered(ante, cons []int32) string {
	return fmt.Sprintf("%v\t=>\t%v", itemset.Itemset(ante), itemset.Itemset(cons))
}

func FormatOrdered(ante, cons []int32) string {
	return fmt.Sprintf("%v\t=>\t%v", tuple(ante), tuple(cons))
}

func tuple(items []int32) string {
	strs := make([]string, 0, len(items))
	for _, item := range items {
		strs = append(strs, fmt.Sprint(item))
	}
	return "(" + strings.Join(strs, ", ") + ")"
}

func (r *Rules) String() string {
	return fmt.Sprintf("<Rules %d antecedents %d rules>", r.Len(), r.Count())
}
