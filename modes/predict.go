package modes

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/tarm/config"
	"github.com/timtadh/tarm/occurrence"
	"github.com/timtadh/tarm/partition"
	"github.com/timtadh/tarm/predict"
	"github.com/timtadh/tarm/rules"
)

// PredictMiner matches the frequent sequences of a partition against the
// rules of the training partitions. Every prediction is reported as
// sequence => consequent.
type PredictMiner struct {
	config *config.Config
	Train  *partition.Partition
	Ratio  float64
	Dates  []int
	sim    predict.Similarity
}

// NewPredictMiner uses exact item matches, or the Jaccard similarity over
// the training documents when jaccard is set. Items the training index has
// never seen are dissimilar to everything.
func NewPredictMiner(c *config.Config, train *partition.Partition, ratio float64, jaccard bool, dates []int) (*PredictMiner, error) {
	if train.Rules == nil {
		return nil, errors.Errorf("training partition %v has no rules", train.Name)
	}
	m := &PredictMiner{
		config: c,
		Train:  train,
		Ratio:  ratio,
		Dates:  dates,
		sim:    predict.Exact,
	}
	if jaccard {
		if train.Index == nil {
			return nil, errors.Errorf("training partition %v has no occurrence index", train.Name)
		}
		m.sim = known(train.Index, predict.Jaccard(train.Index))
	}
	return m, nil
}

func known(idx *occurrence.Index, sim predict.Similarity) predict.Similarity {
	return func(a, b int32) (float64, error) {
		if !idx.Has(a) || !idx.Has(b) {
			return 0, nil
		}
		return sim(a, b)
	}
}

func (m *PredictMiner) Mine(p *partition.Partition, rptr rules.Reporter) (err error) {
	if p.Windows == nil {
		if m.Dates == nil {
			return errors.Errorf("%v has no saved windows, supply dates to mine them", p.Name)
		}
		p.Windows, err = Windows(m.config, p, m.Dates)
		if err != nil {
			return err
		}
	}
	predictions, err := predict.Windows(p.Windows, m.Train.Rules, m.Ratio, m.sim)
	if err != nil {
		return err
	}
	found := rules.NewOrdered()
	for _, pr := range predictions {
		for _, cons := range pr.Consequents {
			if _, err := found.Add(pr.Sequence, cons); err != nil {
				return err
			}
		}
	}
	errors.Logf("INFO", "%d of the sequences of %v predicted %d consequents", len(predictions), p.Name, found.Count())
	return report(found, rptr)
}

func (m *PredictMiner) Formatter() rules.Formatter {
	return rules.FormatOrdered
}

func (m *PredictMiner) Close() error {
	return nil
}
