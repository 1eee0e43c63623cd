// Package modes holds the mining stages the command line can run over a
// loaded partition.
package modes

import (
	"github.com/timtadh/tarm/partition"
	"github.com/timtadh/tarm/rules"
)

// Miner runs one stage over a partition, leaves what it mined on the
// partition and reports every rule it produced.
type Miner interface {
	Mine(p *partition.Partition, rptr rules.Reporter) error
	Formatter() rules.Formatter
	Close() error
}

func report(r *rules.Rules, rptr rules.Reporter) error {
	if err := r.ReportTo(rptr); err != nil {
		return err
	}
	return rptr.Close()
}
