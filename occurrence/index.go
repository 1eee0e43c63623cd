// Package occurrence holds the occurrence index: for every item (a mined
// subgraph) the set of documents it occurs in. Support, transactions and
// the partition level views of the index all start here.
package occurrence

import (
	"fmt"
	"sort"
)

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/data-structures/set"
	"github.com/timtadh/data-structures/types"
)

// MissingItem is returned when an item is looked up which the upstream
// miner never reported.
type MissingItem struct {
	Item int32
}

func (e *MissingItem) Error() string {
	return fmt.Sprintf("item %d is not in the occurrence index", e.Item)
}

// BadDocument is returned when a document id falls outside of the
// document range a caller declared.
type BadDocument struct {
	Item, Doc int32
	Count     int
}

func (e *BadDocument) Error() string {
	return fmt.Sprintf("item %d occurs in document %d but there are only %d documents", e.Item, e.Doc, e.Count)
}

type Index struct {
	items   []int32
	support map[int32]*set.SortedSet
}

func New() *Index {
	return &Index{
		items:   make([]int32, 0, 10),
		support: make(map[int32]*set.SortedSet),
	}
}

// FromMap builds an index from item -> documents. Every item must occur in
// at least one document.
func FromMap(m map[int32][]int32) (*Index, error) {
	x := New()
	for item, docs := range m {
		if len(docs) == 0 {
			return nil, errors.Errorf("item %d has an empty support set", item)
		}
		for _, doc := range docs {
			if err := x.Add(item, doc); err != nil {
				return nil, err
			}
		}
	}
	return x, nil
}

func (x *Index) Add(item, doc int32) error {
	if item < 0 || doc < 0 {
		return errors.Errorf("ids must be non-negative (item %d, doc %d)", item, doc)
	}
	s, has := x.support[item]
	if !has {
		s = set.NewSortedSet(10)
		x.support[item] = s
		i := sort.Search(len(x.items), func(i int) bool { return x.items[i] >= item })
		x.items = append(x.items, 0)
		copy(x.items[i+1:], x.items[i:])
		x.items[i] = item
	}
	return s.Add(types.Int32(doc))
}

// Len is the number of items.
func (x *Index) Len() int {
	return len(x.items)
}

// Items returns the items in ascending order.
func (x *Index) Items() []int32 {
	items := make([]int32, len(x.items))
	copy(items, x.items)
	return items
}

func (x *Index) Has(item int32) bool {
	_, has := x.support[item]
	return has
}

// Docs returns the documents of item in ascending order.
func (x *Index) Docs(item int32) ([]int32, error) {
	s, has := x.support[item]
	if !has {
		return nil, &MissingItem{item}
	}
	return docs(s), nil
}

func docs(s *set.SortedSet) []int32 {
	list := make([]int32, 0, s.Size())
	for d, next := s.Items()(); next != nil; d, next = next() {
		list = append(list, int32(d.(types.Int32)))
	}
	return list
}

// DocCount is one past the largest document id in the index.
func (x *Index) DocCount() int {
	count := 0
	for _, s := range x.support {
		for d, next := s.Items()(); next != nil; d, next = next() {
			if c := int(d.(types.Int32)) + 1; c > count {
				count = c
			}
		}
	}
	return count
}

// Support is the number of documents containing every one of items. The
// empty item list has support 0. An empty intersection is not an error,
// it is the common case for candidate itemsets.
func (x *Index) Support(items []int32) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}
	sets := make([]*set.SortedSet, 0, len(items))
	for _, item := range items {
		s, has := x.support[item]
		if !has {
			return 0, &MissingItem{item}
		}
		sets = append(sets, s)
	}
	return intersect(sets).Size(), nil
}

func intersect(sets []*set.SortedSet) *set.SortedSet {
	s := sets[0]
	for i := 1; i < len(sets) && s.Size() > 0; i++ {
		x, err := s.Intersect(sets[i])
		if err != nil {
			panic(err)
		}
		s = x.(*set.SortedSet)
	}
	return s
}

// Transactions inverts the index into one item list per document. Items
// appear in ascending item order within a transaction. The ordering is
// the contract the sequencer relies on.
func (x *Index) Transactions(docCount int) ([][]int32, error) {
	txs := make([][]int32, docCount)
	for i := range txs {
		txs[i] = make([]int32, 0, 4)
	}
	for _, item := range x.items {
		for _, doc := range docs(x.support[item]) {
			if int(doc) >= docCount {
				return nil, &BadDocument{Item: item, Doc: doc, Count: docCount}
			}
			txs[doc] = append(txs[doc], item)
		}
	}
	return txs, nil
}

// Filter keeps only the given items.
func (x *Index) Filter(keep []int32) (*Index, error) {
	f := New()
	for _, item := range keep {
		s, has := x.support[item]
		if !has {
			return nil, &MissingItem{item}
		}
		for _, doc := range docs(s) {
			if err := f.Add(item, doc); err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}

// TopN returns the n items with the largest support, largest first. Ties
// go to the smaller item id.
func (x *Index) TopN(n int) []int32 {
	items := x.Items()
	sort.SliceStable(items, func(i, j int) bool {
		return x.support[items[i]].Size() > x.support[items[j]].Size()
	})
	if n < len(items) {
		items = items[:n]
	}
	return items
}

// Slice restricts the index to the documents in [start, end) and rebases
// them so that start becomes document 0. Items left without documents are
// dropped.
func (x *Index) Slice(start, end int32) *Index {
	s := New()
	for _, item := range x.items {
		for _, doc := range docs(x.support[item]) {
			if doc < start || doc >= end {
				continue
			}
			if err := s.Add(item, doc-start); err != nil {
				panic(err)
			}
		}
	}
	return s
}

func (x *Index) String() string {
	return fmt.Sprintf("<occurrence.Index %d items %d docs>", len(x.items), x.DocCount())
}
