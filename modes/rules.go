package modes

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/tarm/config"
	"github.com/timtadh/tarm/partition"
	"github.com/timtadh/tarm/rules"
)

// RuleMiner finds unordered association rules with the naive generator or,
// when Faster is set, with the single consequent generator.
type RuleMiner struct {
	config *config.Config
	Faster bool
}

func NewRuleMiner(c *config.Config, faster bool) *RuleMiner {
	return &RuleMiner{config: c, Faster: faster}
}

func (m *RuleMiner) Mine(p *partition.Partition, rptr rules.Reporter) (err error) {
	opts := rules.Options{MinConf: m.config.MinConf, MaxSize: m.config.MaxSize}
	if m.Faster {
		p.Rules, err = rules.MineFaster(p.Index, opts)
	} else {
		p.Rules, err = rules.MineNaive(p.Index, opts)
	}
	if err != nil {
		return err
	}
	errors.Logf("INFO", "mined %v from %v", p.Rules, p.Index)
	return report(p.Rules, rptr)
}

func (m *RuleMiner) Formatter() rules.Formatter {
	return rules.FormatUnordered
}

func (m *RuleMiner) Close() error {
	return nil
}

// AprioriMiner first finds the itemsets supported by at least MinSupport
// documents and only generates rules from those.
type AprioriMiner struct {
	config     *config.Config
	MinSupport int
}

func NewAprioriMiner(c *config.Config, minSupport int) *AprioriMiner {
	return &AprioriMiner{config: c, MinSupport: minSupport}
}

func (m *AprioriMiner) Mine(p *partition.Partition, rptr rules.Reporter) error {
	sets, err := rules.FrequentItemsets(p.Index, m.MinSupport, m.config.MaxSize)
	if err != nil {
		return err
	}
	errors.Logf("INFO", "%d itemsets with support >= %d", len(sets), m.MinSupport)
	opts := rules.Options{MinConf: m.config.MinConf, MaxSize: m.config.MaxSize}
	p.Rules, err = rules.MineItemsets(p.Index, sets, opts)
	if err != nil {
		return err
	}
	errors.Logf("INFO", "mined %v from %v", p.Rules, p.Index)
	return report(p.Rules, rptr)
}

func (m *AprioriMiner) Formatter() rules.Formatter {
	return rules.FormatUnordered
}

func (m *AprioriMiner) Close() error {
	return nil
}
