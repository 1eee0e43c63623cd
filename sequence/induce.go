package sequence

import (
	"github.com/timtadh/tarm/occurrence"
	"github.com/timtadh/tarm/rules"
	"github.com/timtadh/tarm/stats"
)

// Rand picks split points. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Induce splits every frequent pattern of length > 1 at a random point into
// an antecedent prefix and a consequent suffix. The split is kept as a rule
// when support(cons) / support(ante) >= minConf, both measured on the whole
// occurrence index rather than on the window. A nil rng draws its seed from
// /dev/urandom; pass a seeded one for reproducible output.
func Induce(windows []*Window, idx *occurrence.Index, minConf float64, rng Rand) (*rules.Rules, error) {
	if rng == nil {
		rng = stats.NewRand(0)
	}
	found := rules.NewOrdered()
	for _, w := range windows {
		for _, e := range w.Entries {
			n := len(e.Pattern)
			if n <= 1 {
				continue
			}
			split := 1 + rng.Intn(n-1)
			ante := e.Pattern[:split]
			cons := e.Pattern[split:]
			supAnte, err := idx.Support(ante)
			if err != nil {
				return nil, err
			}
			supCons, err := idx.Support(cons)
			if err != nil {
				return nil, err
			}
			if supAnte > 0 && float64(supCons)/float64(supAnte) >= minConf {
				if _, err := found.Add(ante, cons); err != nil {
					return nil, err
				}
			}
		}
	}
	return found, nil
}
