// Package partition saves and restores everything mined for one named
// slice of the corpus, and merges several of them for training.
package partition

import (
	"fmt"
	"os"
)

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/tarm/config"
	"github.com/timtadh/tarm/occurrence"
	"github.com/timtadh/tarm/rules"
	"github.com/timtadh/tarm/sequence"
	"github.com/timtadh/tarm/stores/ints_ints"
)

const (
	OccurrencePart = "occurrence"
	RulesPart      = "rules"
	WindowsPart    = "windows"
)

// Partition is the mining state of one partition. Any of Index, Rules and
// Windows may be nil when that stage was not run.
type Partition struct {
	Name string
	// Start is the corpus document the partition's document 0 stands for.
	// It is not saved.
	Start int32
	// DocCount is the number of documents in the partition. Documents
	// without items count, so it may exceed Index.DocCount(). Zero means
	// unknown and falls back to the index.
	DocCount int
	Index    *occurrence.Index
	Rules    *rules.Rules
	Windows  []*sequence.Window
}

func (p *Partition) String() string {
	count := 0
	if p.Rules != nil {
		count = p.Rules.Count()
	}
	items := 0
	if p.Index != nil {
		items = p.Index.Len()
	}
	return fmt.Sprintf("<Partition %s %d docs %d items %d rules %d windows>", p.Name, p.Documents(), items, count, len(p.Windows))
}

// Documents is DocCount, or the extent of the index when it is not set.
func (p *Partition) Documents() int {
	if p.DocCount > 0 {
		return p.DocCount
	} else if p.Index != nil {
		return p.Index.DocCount()
	}
	return 0
}

// Save writes one store per present part into the store directory,
// replacing earlier saves of the same name.
func Save(c *config.Config, p *Partition) error {
	if p.Name == "" {
		return errors.Errorf("cannot save a partition without a name")
	}
	if p.Index != nil {
		err := save(c, p.Name, OccurrencePart, func(store ints_ints.MultiMap) error {
			return p.Index.Save(store, p.Documents())
		})
		if err != nil {
			return err
		}
	}
	if p.Rules != nil {
		if err := save(c, p.Name, RulesPart, p.Rules.Save); err != nil {
			return err
		}
	}
	if p.Windows != nil {
		err := save(c, p.Name, WindowsPart, func(store ints_ints.MultiMap) error {
			return sequence.SaveWindows(p.Windows, store)
		})
		if err != nil {
			return err
		}
	}
	errors.Logf("INFO", "saved %v", p)
	return nil
}

func save(c *config.Config, name, part string, write func(ints_ints.MultiMap) error) error {
	path := c.PartitionFile(name, part)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	store, err := ints_ints.NewBpTree(path)
	if err != nil {
		return err
	}
	if err := write(store); err != nil {
		store.Close()
		return err
	}
	return store.Close()
}

// Load reads back whichever parts of the named partition exist. It is an
// error for none of them to exist.
func Load(c *config.Config, name string) (*Partition, error) {
	p := &Partition{Name: name}
	found := false
	err := load(c, name, OccurrencePart, &found, func(store ints_ints.MultiMap) (err error) {
		p.Index, p.DocCount, err = occurrence.Open(store)
		return err
	})
	if err != nil {
		return nil, err
	}
	err = load(c, name, RulesPart, &found, func(store ints_ints.MultiMap) (err error) {
		p.Rules, err = rules.Open(store)
		return err
	})
	if err != nil {
		return nil, err
	}
	err = load(c, name, WindowsPart, &found, func(store ints_ints.MultiMap) (err error) {
		p.Windows, err = sequence.OpenWindows(store)
		return err
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.Errorf("no saved partition '%s' in %s", name, c.Store)
	}
	errors.Logf("INFO", "loaded %v", p)
	return p, nil
}

func load(c *config.Config, name, part string, found *bool, read func(ints_ints.MultiMap) error) error {
	path := c.PartitionFile(name, part)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return err
	}
	*found = true
	store, err := ints_ints.OpenBpTree(path)
	if err != nil {
		return err
	}
	defer store.Close()
	return read(store)
}

// Merge combines partitions into one named name as if their corpora were
// concatenated in argument order: the documents of each partition are
// shifted past those of the partitions before it, so an item shared by
// several partitions ends up with the union of its documents. Rule sets
// are unioned and windows are concatenated with their ids renumbered
// from 0. The merged DocCount is the sum of the parts' document counts.
func Merge(name string, parts ...*Partition) (*Partition, error) {
	m := &Partition{Name: name}
	shift := int32(0)
	for _, p := range parts {
		documents := p.Documents()
		if p.Index != nil && documents < p.Index.DocCount() {
			return nil, errors.Errorf("partition %v has %d documents but its index covers %d", p.Name, documents, p.Index.DocCount())
		}
		if p.Index != nil {
			if m.Index == nil {
				m.Index = occurrence.New()
			}
			for _, item := range p.Index.Items() {
				docs, err := p.Index.Docs(item)
				if err != nil {
					return nil, err
				}
				for _, doc := range docs {
					if err := m.Index.Add(item, doc+shift); err != nil {
						return nil, err
					}
				}
			}
		}
		shift += int32(documents)
		if p.Rules != nil {
			if m.Rules == nil {
				if p.Rules.Ordered {
					m.Rules = rules.NewOrdered()
				} else {
					m.Rules = rules.New()
				}
			}
			if err := m.Rules.Merge(p.Rules); err != nil {
				return nil, err
			}
		}
		for _, w := range p.Windows {
			m.Windows = append(m.Windows, &sequence.Window{
				ID:      len(m.Windows),
				Offset:  w.Offset,
				Entries: w.Entries,
			})
		}
	}
	m.DocCount = int(shift)
	return m, nil
}
