package sequence

import (
	"sort"
)

// PrefixSpan enumerates frequent subsequences by growing prefixes over
// pseudo-projected sequences. Items need not be adjacent to form a
// pattern and each sequence counts at most once towards a pattern's
// support. Output is ordered by pattern length, then by items.
type PrefixSpan struct {
	// MaxLen caps the pattern length when positive.
	MaxLen int
}

type projection struct {
	seq, pos int
}

type frame struct {
	prefix []int32
	proj   []projection
}

func (p PrefixSpan) Enumerate(seqs []Sequence, minsup int) ([]Entry, error) {
	if minsup <= 0 {
		return nil, &ConfigError{"minimum support", minsup}
	}
	root := make([]projection, 0, len(seqs))
	for i, s := range seqs {
		if len(s) > 0 {
			root = append(root, projection{i, 0})
		}
	}
	entries := make([]Entry, 0, 10)
	stack := []frame{{prefix: []int32{}, proj: root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if p.MaxLen > 0 && len(f.prefix) >= p.MaxLen {
			continue
		}
		counts := make(map[int32]int)
		for _, pr := range f.proj {
			seen := make(map[int32]bool)
			for _, item := range seqs[pr.seq][pr.pos:] {
				if !seen[item] {
					seen[item] = true
					counts[item]++
				}
			}
		}
		for item, count := range counts {
			if count < minsup {
				continue
			}
			prefix := make([]int32, len(f.prefix)+1)
			copy(prefix, f.prefix)
			prefix[len(f.prefix)] = item
			entries = append(entries, Entry{Pattern: prefix, Support: count})
			stack = append(stack, frame{prefix: prefix, proj: project(seqs, f.proj, item)})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return less(entries[i].Pattern, entries[j].Pattern)
	})
	return entries, nil
}

// project advances every projection past its first occurrence of item.
// Projections without item or without anything after it are dropped.
func project(seqs []Sequence, proj []projection, item int32) []projection {
	next := make([]projection, 0, len(proj))
	for _, pr := range proj {
		s := seqs[pr.seq]
		for i := pr.pos; i < len(s); i++ {
			if s[i] == item {
				if i+1 < len(s) {
					next = append(next, projection{pr.seq, i + 1})
				}
				break
			}
		}
	}
	return next
}

func less(a, b []int32) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}
