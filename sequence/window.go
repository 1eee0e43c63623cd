package sequence

import (
	"fmt"
)

import (
	"github.com/timtadh/data-structures/errors"
)

// Entry is a frequent pattern and the number of sequences of its window
// which contain it.
type Entry struct {
	Pattern []int32
	Support int
}

// Window holds the frequent patterns of one window. ID counts windows in
// scan order, Offset is the first bucket the window covered.
type Window struct {
	ID      int
	Offset  int
	Entries []Entry
}

func (w *Window) String() string {
	return fmt.Sprintf("<Window %d @%d %d patterns>", w.ID, w.Offset, len(w.Entries))
}

// Enumerator finds every subsequence supported by at least minsup of seqs.
type Enumerator interface {
	Enumerate(seqs []Sequence, minsup int) ([]Entry, error)
}

type Options struct {
	// WindowLen is the number of buckets in a window.
	WindowLen int
	// Granularity is how many buckets the window advances per step.
	// Zero means WindowLen (no overlap).
	Granularity int
	// MinSupport is the number of sequences of a window which must contain
	// a pattern. Zero means WindowLen.
	MinSupport int
	// Enumerator defaults to PrefixSpan.
	Enumerator Enumerator
}

func (o *Options) defaults() (Options, error) {
	c := *o
	if c.WindowLen <= 0 {
		return c, &ConfigError{"window length", c.WindowLen}
	}
	if c.Granularity < 0 {
		return c, &ConfigError{"granularity", c.Granularity}
	} else if c.Granularity == 0 {
		c.Granularity = c.WindowLen
	}
	if c.MinSupport < 0 {
		return c, &ConfigError{"minimum support", c.MinSupport}
	} else if c.MinSupport == 0 {
		c.MinSupport = c.WindowLen
	}
	if c.Enumerator == nil {
		c.Enumerator = PrefixSpan{}
	}
	return c, nil
}

// Mine slides a window over seqs from left to right and enumerates the
// frequent patterns of each full window. A trailing partial window is
// dropped. Windows are not deduplicated against each other.
func Mine(seqs []Sequence, opts Options) ([]*Window, error) {
	o, err := opts.defaults()
	if err != nil {
		return nil, err
	}
	windows := make([]*Window, 0, len(seqs)/o.Granularity+1)
	for start := 0; start+o.WindowLen <= len(seqs); start += o.Granularity {
		entries, err := o.Enumerator.Enumerate(seqs[start:start+o.WindowLen], o.MinSupport)
		if err != nil {
			errors.Logf("ERROR", "window %d at bucket %d: %v", len(windows), start, err)
			return nil, err
		}
		w := &Window{
			ID:      len(windows),
			Offset:  start,
			Entries: entries,
		}
		errors.Logf("DEBUG", "window %d [%d, %d) %d frequent sequences", w.ID, start, start+o.WindowLen, len(entries))
		windows = append(windows, w)
	}
	return windows, nil
}
