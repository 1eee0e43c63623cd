package reindex

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"github.com/timtadh/tarm/itemset"
	"github.com/timtadh/tarm/occurrence"
	"github.com/timtadh/tarm/rules"
	"github.com/timtadh/tarm/sequence"
)

func fixture(t *assert.Assertions) (map[int32]string, *occurrence.Index, []*sequence.Window) {
	items := map[int32]string{
		4:  "a->b",
		9:  "b->c",
		11: "c->a",
		20: "a->a",
	}
	idx, err := occurrence.FromMap(map[int32][]int32{
		4:  {0, 1, 2},
		9:  {1, 2},
		11: {0, 2, 5},
		20: {3},
	})
	t.Nil(err)
	windows := []*sequence.Window{
		{ID: 0, Offset: 0, Entries: []sequence.Entry{{Pattern: []int32{4, 9}, Support: 2}}},
		{ID: 1, Offset: 2, Entries: []sequence.Entry{{Pattern: []int32{11}, Support: 3}, {Pattern: []int32{9, 4, 9}, Support: 2}}},
	}
	return items, idx, windows
}

func TestReindex(x *testing.T) {
	t := assert.New(x)
	items, idx, windows := fixture(t)
	r, err := Reindex(items, []int32{11, 4, 9}, windows, idx, 100)
	t.Nil(err)
	t.Equal(Mapping{11: 100, 4: 101, 9: 102}, r.Mapping)
	t.Equal([]int32{100, 101, 102}, r.Kept)
	t.Equal(map[int32]string{100: "c->a", 101: "a->b", 102: "b->c"}, r.Items)
	t.Equal([]int32{100, 101, 102}, r.Index.Items())
	t.Equal([]int32{0, 2, 5}, mustDocs(t, r.Index, 100))
	t.Equal([]int32{101, 102}, r.Windows[0].Entries[0].Pattern)
	t.Equal([]int32{102, 101, 102}, r.Windows[1].Entries[1].Pattern)
	t.Equal(2, r.Windows[1].Offset)
	t.Equal([]int32{4, 9}, windows[0].Entries[0].Pattern, "input windows must not change")
}

func mustDocs(t *assert.Assertions, idx *occurrence.Index, item int32) []int32 {
	docs, err := idx.Docs(item)
	t.Nil(err)
	return docs
}

func TestReindexPreservesSupport(x *testing.T) {
	t := assert.New(x)
	items, idx, windows := fixture(t)
	kept := []int32{4, 9, 11, 20}
	r, err := Reindex(items, kept, windows, idx, 0)
	t.Nil(err)
	for k := 1; k <= len(kept); k++ {
		err := itemset.Combinations(kept, k, func(s itemset.Itemset) error {
			old, err := idx.Support(s)
			t.Nil(err)
			mapped, err := r.Mapping.mapAll(s)
			t.Nil(err)
			now, err := r.Index.Support(mapped)
			t.Nil(err)
			t.Equal(old, now, "support of %v", s)
			return nil
		})
		t.Nil(err)
	}
}

func TestReindexErrors(x *testing.T) {
	t := assert.New(x)
	items, idx, windows := fixture(t)

	_, err := Reindex(items, []int32{4, 9, 4, 11}, windows, idx, 0)
	t.IsType(&UnknownItem{}, err)
	t.Equal(int32(4), err.(*UnknownItem).Item)

	_, err = Reindex(items, []int32{4, 9, 11, 33}, windows, idx, 0)
	t.IsType(&UnknownItem{}, err)

	items[33] = "x->y"
	_, err = Reindex(items, []int32{4, 9, 11, 33}, windows, idx, 0)
	t.IsType(&UnknownItem{}, err)
	t.Equal(int32(33), err.(*UnknownItem).Item)

	_, err = Reindex(items, []int32{4, 11}, windows, idx, 0)
	t.IsType(&UnknownItem{}, err)
	t.Equal(int32(9), err.(*UnknownItem).Item)
}

func TestRules(x *testing.T) {
	t := assert.New(x)
	r := rules.NewOrdered()
	_, err := r.Add([]int32{9, 4}, []int32{11})
	t.Nil(err)
	m := Mapping{4: 0, 9: 1, 11: 2}
	mapped, err := Rules(m, r)
	t.Nil(err)
	t.True(mapped.Ordered)
	t.True(mapped.Has([]int32{1, 0}, []int32{2}))

	_, err = Rules(Mapping{4: 0}, r)
	t.IsType(&UnknownItem{}, err)
}
