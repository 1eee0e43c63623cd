package occurrence

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/tarm/stores/ints_ints"
)

// the empty key holds a single value: the number of documents of the
// corpus, which may exceed DocCount when trailing documents have no items.
var documentsKey = []int32{}

// Save writes one entry per item, [item] -> documents, and the document
// count under the empty key.
func (x *Index) Save(store ints_ints.MultiMap, documents int) error {
	if documents < x.DocCount() {
		return errors.Errorf("index covers %d documents but the corpus has %d", x.DocCount(), documents)
	}
	if err := store.Add(documentsKey, []int32{int32(documents)}); err != nil {
		return err
	}
	for _, item := range x.items {
		if err := store.Add([]int32{item}, docs(x.support[item])); err != nil {
			return err
		}
	}
	return nil
}

// Open reads back an index written by Save along with its document count.
func Open(store ints_ints.MultiMap) (*Index, int, error) {
	x := New()
	documents := -1
	err := ints_ints.Do(store.Iterate, func(key, docs []int32) error {
		if len(key) == 0 {
			if len(docs) != 1 {
				return errors.Errorf("document count should be one value, got %v", docs)
			}
			documents = int(docs[0])
			return nil
		} else if len(key) != 1 {
			return errors.Errorf("occurrence key should hold one item, got %v", key)
		}
		for _, doc := range docs {
			if err := x.Add(key[0], doc); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	if documents < x.DocCount() {
		documents = x.DocCount()
	}
	return x, documents, nil
}
