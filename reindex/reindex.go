// Package reindex renumbers a kept subset of items into a contiguous id
// range so that several partitions can share one id space.
package reindex

import (
	"fmt"
)

import (
	"github.com/timtadh/tarm/occurrence"
	"github.com/timtadh/tarm/rules"
	"github.com/timtadh/tarm/sequence"
)

// UnknownItem is returned when an id cannot be mapped: it is missing from
// the item map or the index, it is kept twice, or a window pattern uses an
// id which is not kept.
type UnknownItem struct {
	Item   int32
	Reason string
}

func (e *UnknownItem) Error() string {
	return fmt.Sprintf("cannot reindex item %d: %s", e.Item, e.Reason)
}

// Mapping takes old ids to new ids.
type Mapping map[int32]int32

func (m Mapping) Map(item int32) (int32, error) {
	n, has := m[item]
	if !has {
		return 0, &UnknownItem{item, "not kept"}
	}
	return n, nil
}

func (m Mapping) mapAll(items []int32) ([]int32, error) {
	out := make([]int32, 0, len(items))
	for _, item := range items {
		n, err := m.Map(item)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

type Result[T any] struct {
	Items   map[int32]T
	Kept    []int32
	Windows []*sequence.Window
	Index   *occurrence.Index
	Mapping Mapping
}

// Reindex maps kept[i] to start+i and rewrites the items, the windows and
// the index under that mapping. Nothing passed in is modified.
func Reindex[T any](items map[int32]T, kept []int32, windows []*sequence.Window, idx *occurrence.Index, start int32) (*Result[T], error) {
	m := make(Mapping, len(kept))
	for i, item := range kept {
		if _, has := m[item]; has {
			return nil, &UnknownItem{item, "kept twice"}
		}
		if _, has := items[item]; !has {
			return nil, &UnknownItem{item, "not in the item map"}
		}
		if !idx.Has(item) {
			return nil, &UnknownItem{item, "not in the occurrence index"}
		}
		m[item] = start + int32(i)
	}
	r := &Result[T]{
		Items:   make(map[int32]T, len(kept)),
		Kept:    make([]int32, 0, len(kept)),
		Windows: make([]*sequence.Window, 0, len(windows)),
		Index:   occurrence.New(),
		Mapping: m,
	}
	for _, item := range kept {
		n := m[item]
		r.Items[n] = items[item]
		r.Kept = append(r.Kept, n)
		docs, err := idx.Docs(item)
		if err != nil {
			return nil, err
		}
		for _, doc := range docs {
			if err := r.Index.Add(n, doc); err != nil {
				return nil, err
			}
		}
	}
	for _, w := range windows {
		nw := &sequence.Window{
			ID:      w.ID,
			Offset:  w.Offset,
			Entries: make([]sequence.Entry, 0, len(w.Entries)),
		}
		for _, e := range w.Entries {
			pattern, err := m.mapAll(e.Pattern)
			if err != nil {
				return nil, err
			}
			nw.Entries = append(nw.Entries, sequence.Entry{Pattern: pattern, Support: e.Support})
		}
		r.Windows = append(r.Windows, nw)
	}
	return r, nil
}

// Rules rewrites a rule set under m. Every item in it must be kept.
func Rules(m Mapping, r *rules.Rules) (*rules.Rules, error) {
	return r.Map(m.Map)
}
