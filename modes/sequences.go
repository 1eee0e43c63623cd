package modes

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/tarm/config"
	"github.com/timtadh/tarm/partition"
	"github.com/timtadh/tarm/rules"
	"github.com/timtadh/tarm/sequence"
)

// SequenceMiner buckets the partition's documents by date, mines frequent
// sequences per window and induces ordered rules from them.
type SequenceMiner struct {
	config *config.Config
	// Dates holds the day offset of every document of the corpus.
	Dates []int
	rng   sequence.Rand
}

func NewSequenceMiner(c *config.Config, dates []int) *SequenceMiner {
	return &SequenceMiner{
		config: c,
		Dates:  dates,
		rng:    c.Rand(),
	}
}

func (m *SequenceMiner) Mine(p *partition.Partition, rptr rules.Reporter) (err error) {
	p.Windows, err = Windows(m.config, p, m.Dates)
	if err != nil {
		return err
	}
	p.Rules, err = sequence.Induce(p.Windows, p.Index, m.config.MinConf, m.rng)
	if err != nil {
		return err
	}
	errors.Logf("INFO", "induced %v from %d windows", p.Rules, len(p.Windows))
	return report(p.Rules, rptr)
}

func (m *SequenceMiner) Formatter() rules.Formatter {
	return rules.FormatOrdered
}

func (m *SequenceMiner) Close() error {
	return nil
}

// Windows mines the frequent sequence windows of a partition. The dates of
// the partition's documents are rebased so that its first day is day 0.
func Windows(c *config.Config, p *partition.Partition, dates []int) ([]*sequence.Window, error) {
	seqs, err := Sequences(p, dates, c.Days)
	if err != nil {
		return nil, err
	}
	errors.Logf("INFO", "%v spans %d buckets of %d days", p.Name, len(seqs), c.Days)
	return sequence.Mine(seqs, sequence.Options{
		WindowLen:   c.WindowLen,
		Granularity: c.Granularity,
		MinSupport:  c.MinSupport,
	})
}

// Sequences buckets every document of the partition, including trailing
// ones without items, by its rebased date.
func Sequences(p *partition.Partition, dates []int, days int) ([]sequence.Sequence, error) {
	count := p.Documents()
	start := int(p.Start)
	if start+count > len(dates) {
		return nil, &sequence.MissingDate{Doc: len(dates)}
	}
	local := make([]int, count)
	copy(local, dates[start:start+count])
	if count > 0 {
		min := local[0]
		for _, d := range local {
			if d < min {
				min = d
			}
		}
		for i := range local {
			local[i] -= min
		}
	}
	txs, err := p.Index.Transactions(count)
	if err != nil {
		return nil, err
	}
	return sequence.Build(txs, local, days)
}
