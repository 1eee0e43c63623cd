package ints_ints

import "testing"
import "github.com/stretchr/testify/assert"

func TestSerialize(x *testing.T) {
	t := assert.New(x)
	list := []int32{7, 0, 12, 3}
	got, err := DeserializeInt32s(SerializeInt32s(list))
	t.Nil(err)
	t.Equal(list, got)
	got, err = DeserializeInt32s(SerializeInt32s(nil))
	t.Nil(err)
	t.Len(got, 0)
	_, err = DeserializeInt32s([]byte{0, 0, 0, 2, 0})
	t.NotNil(err)
}

func TestAddFind(x *testing.T) {
	t := assert.New(x)
	b, err := AnonBpTree()
	t.Nil(err)
	defer b.Delete()
	t.Nil(b.Add([]int32{1, 2}, []int32{3}))
	t.Nil(b.Add([]int32{1, 2}, []int32{4, 5}))
	t.Nil(b.Add([]int32{9}, []int32{}))
	t.Equal(3, b.Size())
	has, err := b.Has([]int32{1, 2})
	t.Nil(err)
	t.True(has)
	has, err = b.Has([]int32{2, 1})
	t.Nil(err)
	t.False(has)
	count, err := b.Count([]int32{1, 2})
	t.Nil(err)
	t.Equal(2, count)
	values := make([][]int32, 0, 2)
	err = b.DoFind([]int32{1, 2}, func(key, value []int32) error {
		t.Equal([]int32{1, 2}, key)
		values = append(values, value)
		return nil
	})
	t.Nil(err)
	t.ElementsMatch([][]int32{{3}, {4, 5}}, values)
}

func TestRemove(x *testing.T) {
	t := assert.New(x)
	b, err := AnonBpTree()
	t.Nil(err)
	defer b.Delete()
	t.Nil(b.Add([]int32{1}, []int32{3}))
	t.Nil(b.Add([]int32{1}, []int32{4}))
	t.Nil(b.Remove([]int32{1}, func(v []int32) bool { return v[0] == 3 }))
	count, err := b.Count([]int32{1})
	t.Nil(err)
	t.Equal(1, count)
	keys := 0
	t.Nil(DoKeys(b.Keys, func(key []int32) error {
		keys++
		return nil
	}))
	t.Equal(1, keys)
}
