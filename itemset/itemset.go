// Package itemset holds the canonical form of an unordered set of items and
// the apriori join step used to grow them.
package itemset

import (
	"encoding/binary"
	"fmt"
	"sort"
	"strings"
)

import (
	"github.com/timtadh/data-structures/hashtable"
	"github.com/timtadh/data-structures/types"
)

// Itemset is sorted and holds no duplicates. Build one with New unless the
// slice is already canonical.
type Itemset []int32

func New(items ...int32) Itemset {
	s := make(Itemset, len(items))
	copy(s, items)
	sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
	out := s[:0]
	for i, item := range s {
		if i > 0 && item == s[i-1] {
			continue
		}
		out = append(out, item)
	}
	return out
}

func (s Itemset) Size() int {
	return len(s)
}

func (s Itemset) Has(item int32) bool {
	i := sort.Search(len(s), func(i int) bool { return s[i] >= item })
	return i < len(s) && s[i] == item
}

func (s Itemset) Union(o Itemset) Itemset {
	u := make(Itemset, 0, len(s)+len(o))
	i, j := 0, 0
	for i < len(s) && j < len(o) {
		switch {
		case s[i] < o[j]:
			u = append(u, s[i])
			i++
		case s[i] > o[j]:
			u = append(u, o[j])
			j++
		default:
			u = append(u, s[i])
			i++
			j++
		}
	}
	u = append(u, s[i:]...)
	return append(u, o[j:]...)
}

func (s Itemset) Minus(o Itemset) Itemset {
	d := make(Itemset, 0, len(s))
	for _, item := range s {
		if !o.Has(item) {
			d = append(d, item)
		}
	}
	return d
}

func (s Itemset) Without(item int32) Itemset {
	return s.Minus(Itemset{item})
}

func (s Itemset) Equals(o Itemset) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

// Less orders by size first, then lexicographically.
func (s Itemset) Less(o Itemset) bool {
	if len(s) != len(o) {
		return len(s) < len(o)
	}
	for i := range s {
		if s[i] != o[i] {
			return s[i] < o[i]
		}
	}
	return false
}

// Label is the size followed by the items as big endian words.
func (s Itemset) Label() []byte {
	return Label(s)
}

func (s Itemset) Key() types.ByteSlice {
	return types.ByteSlice(s.Label())
}

func (s Itemset) String() string {
	return "{" + join(s) + "}"
}

// Label encodes an item list (ordered or not) as a hashable byte string.
func Label(items []int32) []byte {
	bytes := make([]byte, 4*(len(items)+1))
	binary.BigEndian.PutUint32(bytes[0:4], uint32(len(items)))
	s := 4
	for _, item := range items {
		binary.BigEndian.PutUint32(bytes[s:s+4], uint32(item))
		s += 4
	}
	return bytes
}

func join(items []int32) string {
	strs := make([]string, 0, len(items))
	for _, item := range items {
		strs = append(strs, fmt.Sprint(item))
	}
	return strings.Join(strs, ", ")
}

// Combinations calls do with every r sized subset of items in
// lexicographic order. The slice passed to do is fresh on every call.
func Combinations(items []int32, r int, do func(Itemset) error) error {
	pool := New(items...)
	n := len(pool)
	if r <= 0 || r > n {
		return nil
	}
	idxs := make([]int, r)
	for i := range idxs {
		idxs[i] = i
	}
	emit := func() error {
		c := make(Itemset, r)
		for i, idx := range idxs {
			c[i] = pool[idx]
		}
		return do(c)
	}
	if err := emit(); err != nil {
		return err
	}
	for {
		i := r - 1
		for ; i >= 0; i-- {
			if idxs[i] != i+n-r {
				break
			}
		}
		if i < 0 {
			return nil
		}
		idxs[i]++
		for j := i + 1; j < r; j++ {
			idxs[j] = idxs[j-1] + 1
		}
		if err := emit(); err != nil {
			return err
		}
	}
}

// Candidates is the apriori join: the distinct unions of two members of L
// which have exactly k items. Nothing is pruned by support.
func Candidates(L []Itemset, k int) []Itemset {
	seen := hashtable.NewLinearHash()
	cands := make([]Itemset, 0, len(L))
	for i := range L {
		for j := i + 1; j < len(L); j++ {
			c := L[i].Union(L[j])
			if len(c) != k {
				continue
			}
			key := c.Key()
			if seen.Has(key) {
				continue
			}
			if err := seen.Put(key, nil); err != nil {
				panic(err)
			}
			cands = append(cands, c)
		}
	}
	sort.Slice(cands, func(i, j int) bool { return cands[i].Less(cands[j]) })
	return cands
}
