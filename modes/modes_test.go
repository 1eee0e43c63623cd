package modes

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"github.com/timtadh/tarm/config"
	"github.com/timtadh/tarm/occurrence"
	"github.com/timtadh/tarm/partition"
	"github.com/timtadh/tarm/reporters"
	"github.com/timtadh/tarm/sequence"
)

func corpus(t *assert.Assertions) *partition.Partition {
	idx, err := occurrence.FromMap(map[int32][]int32{
		1: {0, 1, 2, 3},
		2: {0, 1, 2, 3},
		3: {1, 2, 3},
	})
	t.Nil(err)
	return &partition.Partition{Name: "test", Index: idx}
}

func TestRuleMiners(x *testing.T) {
	t := assert.New(x)
	c := &config.Config{MinConf: 1}
	naive := reporters.NewCollector(false)
	p := corpus(t)
	t.Nil(NewRuleMiner(c, false).Mine(p, naive))
	t.Equal(naive.Rules.Count(), p.Rules.Count())
	t.True(p.Rules.Has([]int32{1}, []int32{2}))
	t.True(p.Rules.Has([]int32{3}, []int32{1, 2}))
	t.False(p.Rules.Has([]int32{1}, []int32{3}))

	faster := reporters.NewCollector(false)
	t.Nil(NewRuleMiner(c, true).Mine(corpus(t), faster))
	t.True(faster.Rules.Has([]int32{1, 3}, []int32{2}))

	apriori := reporters.NewCollector(false)
	q := corpus(t)
	t.Nil(NewAprioriMiner(c, 4).Mine(q, apriori))
	t.Equal(2, q.Rules.Count())
	t.True(q.Rules.Has([]int32{2}, []int32{1}))
}

func TestSequences(x *testing.T) {
	t := assert.New(x)
	p := corpus(t)
	seqs, err := Sequences(p, []int{5, 5, 6, 8}, 1)
	t.Nil(err)
	t.Equal([]sequence.Sequence{{1, 2, 1, 2, 3}, {1, 2, 3}, {}, {1, 2, 3}}, seqs)

	p.Start = 1
	_, err = Sequences(p, []int{5, 5, 6, 8}, 1)
	t.IsType(&sequence.MissingDate{}, err)
	seqs, err = Sequences(p, []int{0, 5, 5, 6, 8}, 1)
	t.Nil(err)
	t.Len(seqs, 4)
}

func TestSequencesTrailingEmptyDocuments(x *testing.T) {
	t := assert.New(x)
	idx, err := occurrence.FromMap(map[int32][]int32{1: {0, 1, 2}, 2: {0, 2}})
	t.Nil(err)
	p := &partition.Partition{Name: "test", Index: idx, DocCount: 5}
	dates := []int{0, 1, 2, 3, 4}
	seqs, err := Sequences(p, dates, 1)
	t.Nil(err)
	t.Equal([]sequence.Sequence{{1, 2}, {1}, {1, 2}, {}, {}}, seqs)

	c := &config.Config{Days: 1, WindowLen: 3, Granularity: 1, MinSupport: 1}
	windows, err := Windows(c, p, dates)
	t.Nil(err)
	t.Len(windows, 3)

	p.DocCount = 6
	_, err = Sequences(p, dates, 1)
	t.IsType(&sequence.MissingDate{}, err)
}

func TestSequenceMinerAndPredict(x *testing.T) {
	t := assert.New(x)
	c := &config.Config{MinConf: 0.5, Days: 1, WindowLen: 2, Granularity: 1, Seed: 7}
	dates := []int{0, 1, 2, 3}
	train := corpus(t)
	collected := reporters.NewCollector(true)
	t.Nil(NewSequenceMiner(c, dates).Mine(train, collected))
	t.Len(train.Windows, 3)
	t.True(train.Rules.Ordered)
	t.Equal(collected.Rules.Count(), train.Rules.Count())
	t.True(train.Rules.Count() > 0)

	test := corpus(t)
	m, err := NewPredictMiner(c, train, 1, false, dates)
	t.Nil(err)
	predicted := reporters.NewCollector(true)
	t.Nil(m.Mine(test, predicted))
	t.NotNil(test.Windows)
	t.Nil(test.Rules)
	for _, rule := range train.Rules.Rules() {
		for _, cons := range rule.Consequents {
			t.True(predicted.Rules.Has(rule.Antecedent, cons))
		}
	}

	j, err := NewPredictMiner(c, train, 1, true, nil)
	t.Nil(err)
	t.Nil(j.Mine(test, reporters.NewCollector(true)))

	_, err = NewPredictMiner(c, corpus(t), 1, false, nil)
	t.NotNil(err)
	_, err = NewPredictMiner(c, &partition.Partition{Rules: train.Rules}, 1, true, nil)
	t.NotNil(err)
	t.NotNil(j.Mine(&partition.Partition{Index: test.Index}, reporters.NewCollector(true)))
}
