package reporters

import (
	"github.com/timtadh/tarm/rules"
)

type Chain struct {
	Reporters []rules.Reporter
}

func (r *Chain) Report(ante, cons []int32) error {
	for _, rpt := range r.Reporters {
		err := rpt.Report(ante, cons)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *Chain) Close() error {
	for _, rpt := range r.Reporters {
		err := rpt.Close()
		if err != nil {
			return err
		}
	}
	return nil
}
