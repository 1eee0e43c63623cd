package reporters

import (
	"github.com/timtadh/tarm/rules"
)

// Collector gathers reported rules back into a rule set.
type Collector struct {
	Rules *rules.Rules
}

func NewCollector(ordered bool) *Collector {
	if ordered {
		return &Collector{rules.NewOrdered()}
	}
	return &Collector{rules.New()}
}

func (c *Collector) Report(ante, cons []int32) error {
	_, err := c.Rules.Add(ante, cons)
	return err
}

func (c *Collector) Close() error {
	return nil
}
