package reporters

import (
	"github.com/timtadh/tarm/rules"
)

// Skip passes on every Skip-th rule.
type Skip struct {
	Skip     int
	Reporter rules.Reporter
	count    int
}

func NewSkip(n int, rptr rules.Reporter) *Skip {
	if n <= 0 {
		n = 1
	}
	return &Skip{
		Skip:     n,
		Reporter: rptr,
	}
}

func (r *Skip) Report(ante, cons []int32) error {
	r.count++
	if r.count%r.Skip == 0 {
		return r.Reporter.Report(ante, cons)
	}
	return nil
}

func (r *Skip) Close() error {
	return r.Reporter.Close()
}
