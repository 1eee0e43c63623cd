package ints_ints

import (
	"sync"
)

import (
	"github.com/timtadh/fs2"
	"github.com/timtadh/fs2/bptree"
	"github.com/timtadh/fs2/fmap"
)

// MultiMap maps lists of int32 to lists of int32. A key may hold many
// values.
type MultiMap interface {
	Keys() (ListIterator, error)
	Iterate() (Iterator, error)
	Find(key []int32) (Iterator, error)
	DoFind(key []int32, do func(key, value []int32) error) error
	Has(key []int32) (bool, error)
	Count(key []int32) (int, error)
	Add(key, value []int32) error
	Remove(key []int32, where func([]int32) bool) error
	Size() int
	Close() error
	Delete() error
}

type Iterator func() ([]int32, []int32, error, Iterator)
type ListIterator func() ([]int32, error, ListIterator)

func Do(run func() (Iterator, error), do func(key, value []int32) error) error {
	kvi, err := run()
	if err != nil {
		return err
	}
	var key, value []int32
	for key, value, err, kvi = kvi(); kvi != nil; key, value, err, kvi = kvi() {
		e := do(key, value)
		if e != nil {
			return e
		}
	}
	return err
}

func DoKeys(run func() (ListIterator, error), do func([]int32) error) error {
	it, err := run()
	if err != nil {
		return err
	}
	var key []int32
	for key, err, it = it(); it != nil; key, err, it = it() {
		e := do(key)
		if e != nil {
			return e
		}
	}
	return err
}

type BpTree struct {
	bf    *fmap.BlockFile
	bpt   *bptree.BpTree
	mutex sync.Mutex
}

// AnonBpTree is backed by an anonymous mapping and vanishes on Close.
func AnonBpTree() (*BpTree, error) {
	bf, err := fmap.Anonymous(fmap.BLOCKSIZE)
	if err != nil {
		return nil, err
	}
	return newBpTree(bf)
}

func NewBpTree(path string) (*BpTree, error) {
	bf, err := fmap.CreateBlockFile(path)
	if err != nil {
		return nil, err
	}
	return newBpTree(bf)
}

func OpenBpTree(path string) (*BpTree, error) {
	bf, err := fmap.OpenBlockFile(path)
	if err != nil {
		return nil, err
	}
	bpt, err := bptree.Open(bf)
	if err != nil {
		return nil, err
	}
	return &BpTree{bf: bf, bpt: bpt}, nil
}

func newBpTree(bf *fmap.BlockFile) (*BpTree, error) {
	bpt, err := bptree.New(bf, -1, -1)
	if err != nil {
		return nil, err
	}
	return &BpTree{bf: bf, bpt: bpt}, nil
}

func (b *BpTree) Close() error {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.bf.Close()
}

func (b *BpTree) Delete() error {
	err := b.Close()
	if err != nil {
		return err
	}
	if b.bf.Path() != "" {
		return b.bf.Remove()
	}
	return nil
}

func (b *BpTree) Size() int {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.bpt.Size()
}

func (b *BpTree) Add(key, value []int32) error {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.bpt.Add(SerializeInt32s(key), SerializeInt32s(value))
}

func (b *BpTree) Count(key []int32) (int, error) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.bpt.Count(SerializeInt32s(key))
}

func (b *BpTree) Has(key []int32) (bool, error) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.bpt.Has(SerializeInt32s(key))
}

func (b *BpTree) kvIter(kvi fs2.Iterator) (it Iterator) {
	it = func() (key, value []int32, err error, _ Iterator) {
		b.mutex.Lock()
		defer b.mutex.Unlock()
		var k, v []byte
		k, v, err, kvi = kvi()
		if err != nil {
			return nil, nil, err, nil
		}
		if kvi == nil {
			return nil, nil, nil, nil
		}
		if key, err = DeserializeInt32s(k); err != nil {
			return nil, nil, err, nil
		}
		if value, err = DeserializeInt32s(v); err != nil {
			return nil, nil, err, nil
		}
		return key, value, nil, it
	}
	return it
}

func (b *BpTree) keyIter(raw fs2.ItemIterator) (it ListIterator) {
	it = func() (key []int32, err error, _ ListIterator) {
		b.mutex.Lock()
		defer b.mutex.Unlock()
		var k []byte
		k, err, raw = raw()
		if err != nil {
			return nil, err, nil
		}
		if raw == nil {
			return nil, nil, nil
		}
		if key, err = DeserializeInt32s(k); err != nil {
			return nil, err, nil
		}
		return key, nil, it
	}
	return it
}

func (b *BpTree) Keys() (it ListIterator, err error) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	raw, err := b.bpt.Keys()
	if err != nil {
		return nil, err
	}
	return b.keyIter(raw), nil
}

func (b *BpTree) Find(key []int32) (it Iterator, err error) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	raw, err := b.bpt.Find(SerializeInt32s(key))
	if err != nil {
		return nil, err
	}
	return b.kvIter(raw), nil
}

func (b *BpTree) DoFind(key []int32, do func(key, value []int32) error) error {
	return Do(func() (Iterator, error) { return b.Find(key) }, do)
}

func (b *BpTree) Iterate() (it Iterator, err error) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	raw, err := b.bpt.Iterate()
	if err != nil {
		return nil, err
	}
	return b.kvIter(raw), nil
}

func (b *BpTree) Remove(key []int32, where func([]int32) bool) error {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.bpt.Remove(SerializeInt32s(key), func(bytes []byte) bool {
		value, err := DeserializeInt32s(bytes)
		if err != nil {
			return false
		}
		return where(value)
	})
}
