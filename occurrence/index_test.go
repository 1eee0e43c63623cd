package occurrence

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"strings"
)

import (
	"github.com/timtadh/tarm/stores/ints_ints"
)

func fixture(t *assert.Assertions) *Index {
	x, err := FromMap(map[int32][]int32{
		1: {0, 1, 2},
		2: {0, 1},
		3: {1, 2, 3},
		7: {4},
	})
	t.Nil(err)
	return x
}

func TestItems(x *testing.T) {
	t := assert.New(x)
	idx := fixture(t)
	t.Equal([]int32{1, 2, 3, 7}, idx.Items())
	t.Equal(4, idx.Len())
	t.Equal(5, idx.DocCount())
	t.True(idx.Has(7))
	t.False(idx.Has(4))
	docs, err := idx.Docs(3)
	t.Nil(err)
	t.Equal([]int32{1, 2, 3}, docs)
	_, err = idx.Docs(4)
	t.IsType(&MissingItem{}, err)
}

func TestFromMapRejectsEmpty(x *testing.T) {
	t := assert.New(x)
	_, err := FromMap(map[int32][]int32{1: {}})
	t.NotNil(err)
	_, err = FromMap(map[int32][]int32{-1: {2}})
	t.NotNil(err)
}

func TestSupport(x *testing.T) {
	t := assert.New(x)
	idx := fixture(t)
	cases := []struct {
		items []int32
		sup   int
	}{
		{[]int32{}, 0},
		{[]int32{1}, 3},
		{[]int32{3}, 3},
		{[]int32{1, 2}, 2},
		{[]int32{2, 3}, 1},
		{[]int32{1, 2, 3}, 1},
		{[]int32{1, 7}, 0},
		{[]int32{7, 1, 2}, 0},
	}
	for _, c := range cases {
		sup, err := idx.Support(c.items)
		t.Nil(err)
		t.Equal(c.sup, sup, "support of %v", c.items)
	}
}

func TestSupportMissingItem(x *testing.T) {
	t := assert.New(x)
	idx := fixture(t)
	_, err := idx.Support([]int32{7, 1, 99})
	t.NotNil(err)
	missing, ok := err.(*MissingItem)
	t.True(ok)
	t.Equal(int32(99), missing.Item)
}

func TestSupportIsIntersectionSize(x *testing.T) {
	t := assert.New(x)
	idx := fixture(t)
	items := idx.Items()
	for mask := 1; mask < 1<<uint(len(items)); mask++ {
		subset := make([]int32, 0, len(items))
		counts := make(map[int32]int)
		for i, item := range items {
			if mask&(1<<uint(i)) == 0 {
				continue
			}
			subset = append(subset, item)
			docs, err := idx.Docs(item)
			t.Nil(err)
			for _, d := range docs {
				counts[d]++
			}
		}
		expected := 0
		for _, c := range counts {
			if c == len(subset) {
				expected++
			}
		}
		sup, err := idx.Support(subset)
		t.Nil(err)
		t.Equal(expected, sup, "support of %v", subset)
	}
}

func TestTransactions(x *testing.T) {
	t := assert.New(x)
	idx := fixture(t)
	txs, err := idx.Transactions(6)
	t.Nil(err)
	t.Equal([][]int32{{1, 2}, {1, 2, 3}, {1, 3}, {3}, {7}, {}}, txs)
	again, err := idx.Transactions(6)
	t.Nil(err)
	t.Equal(txs, again)
	_, err = idx.Transactions(4)
	t.IsType(&BadDocument{}, err)
}

func TestFilterTopNSlice(x *testing.T) {
	t := assert.New(x)
	idx := fixture(t)
	f, err := idx.Filter([]int32{2, 7})
	t.Nil(err)
	t.Equal([]int32{2, 7}, f.Items())
	_, err = idx.Filter([]int32{5})
	t.IsType(&MissingItem{}, err)

	t.Equal([]int32{1, 3}, idx.TopN(2))
	t.Equal([]int32{1, 3, 2, 7}, idx.TopN(10))

	s := idx.Slice(1, 3)
	t.Equal([]int32{1, 2, 3}, s.Items())
	docs, err := s.Docs(3)
	t.Nil(err)
	t.Equal([]int32{0, 1}, docs)
	docs, err = s.Docs(2)
	t.Nil(err)
	t.Equal([]int32{0}, docs)
}

func TestReadSupport(x *testing.T) {
	t := assert.New(x)
	idx, documents, err := Read(strings.NewReader("1 0 1 2\n2 0 1\n\n3 1 2 3\n9\n7 4 x\n"), SupportFormat)
	t.Nil(err)
	t.Equal(5, documents)
	t.Equal([]int32{1, 2, 3, 7}, idx.Items())
	sup, err := idx.Support([]int32{1, 3})
	t.Nil(err)
	t.Equal(2, sup)
}

func TestReadTransactions(x *testing.T) {
	t := assert.New(x)
	idx, documents, err := Read(strings.NewReader("1 2\n1 2 3\n1 3\n3\n7\n"), TransactionsFormat)
	t.Nil(err)
	t.Equal(5, documents)
	expected := fixture(t)
	t.Equal(expected.Items(), idx.Items())
	for _, item := range expected.Items() {
		a, err := expected.Docs(item)
		t.Nil(err)
		b, err := idx.Docs(item)
		t.Nil(err)
		t.Equal(a, b)
	}
	_, _, err = Read(strings.NewReader(""), "csv")
	t.NotNil(err)

	_, documents, err = Read(strings.NewReader("1 2\n\n1\n\n\n"), TransactionsFormat)
	t.Nil(err)
	t.Equal(5, documents)
}

func TestSaveOpen(x *testing.T) {
	t := assert.New(x)
	idx := fixture(t)
	store, err := ints_ints.AnonBpTree()
	t.Nil(err)
	defer store.Delete()
	t.NotNil(idx.Save(store, 4))
	t.Nil(idx.Save(store, 8))
	back, documents, err := Open(store)
	t.Nil(err)
	t.Equal(8, documents)
	t.Equal(idx.Items(), back.Items())
	txs, err := idx.Transactions(8)
	t.Nil(err)
	backTxs, err := back.Transactions(8)
	t.Nil(err)
	t.Equal(txs, backTxs)
}
