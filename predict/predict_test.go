package predict

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"github.com/timtadh/tarm/occurrence"
	"github.com/timtadh/tarm/rules"
	"github.com/timtadh/tarm/sequence"
)

func ruleSet(t *assert.Assertions) *rules.Rules {
	r := rules.NewOrdered()
	for _, x := range [][2][]int32{
		{{1, 2}, {3}},
		{{1, 2}, {4, 5}},
		{{2, 1}, {3}},
		{{1}, {6}},
		{{1, 4}, {3}},
	} {
		_, err := r.Add(x[0], x[1])
		t.Nil(err)
	}
	return r
}

func TestPredictExact(x *testing.T) {
	t := assert.New(x)
	r := ruleSet(t)
	p, err := Predict([]int32{1, 2}, r, 0.9, Exact)
	t.Nil(err)
	t.Equal([][]int32{{3}, {4, 5}}, p)

	p, err = Predict([]int32{1}, r, 1, Exact)
	t.Nil(err)
	t.Equal([][]int32{{6}}, p)

	p, err = Predict([]int32{7, 7, 7}, r, 0.5, Exact)
	t.Nil(err)
	t.Len(p, 0)
}

func TestPredictZeroRatio(x *testing.T) {
	t := assert.New(x)
	r := ruleSet(t)
	p, err := Predict([]int32{9, 9}, r, 0, Exact)
	t.Nil(err)
	t.Equal([][]int32{{3}, {4, 5}}, p)
}

func TestJaccard(x *testing.T) {
	t := assert.New(x)
	idx, err := occurrence.FromMap(map[int32][]int32{
		1: {0, 1, 2},
		2: {1, 2, 3},
		3: {7},
	})
	t.Nil(err)
	sim := Jaccard(idx)
	s, err := sim(1, 2)
	t.Nil(err)
	t.InDelta(0.5, s, 1e-9)
	s, err = sim(1, 1)
	t.Nil(err)
	t.Equal(1.0, s)
	s, err = sim(1, 3)
	t.Nil(err)
	t.Equal(0.0, s)
	_, err = sim(1, 42)
	t.IsType(&occurrence.MissingItem{}, err)
}

func TestPredictJaccard(x *testing.T) {
	t := assert.New(x)
	idx, err := occurrence.FromMap(map[int32][]int32{
		1: {0, 1, 2},
		2: {1, 2, 3},
		3: {4},
		4: {0, 1, 2, 5},
		5: {6},
		6: {7},
	})
	t.Nil(err)
	r := ruleSet(t)
	// (1, 2) scores 1 * 0.4 and (2, 1) scores 0.5 * 0.75
	p, err := Predict([]int32{1, 4}, r, 0.39, Jaccard(idx))
	t.Nil(err)
	t.Equal([][]int32{{3}, {4, 5}}, p)
	p, err = Predict([]int32{1, 4}, r, 0.41, Jaccard(idx))
	t.Nil(err)
	t.Equal([][]int32{{3}}, p)
}

func TestWindows(x *testing.T) {
	t := assert.New(x)
	r := ruleSet(t)
	windows := []*sequence.Window{
		{ID: 0, Entries: []sequence.Entry{{Pattern: []int32{1, 2}}, {Pattern: []int32{8}}}},
		{ID: 1, Entries: []sequence.Entry{{Pattern: []int32{1, 2}}, {Pattern: []int32{1}}}},
	}
	p, err := Windows(windows, r, 1, Exact)
	t.Nil(err)
	t.Len(p, 2)
	t.Equal([]int32{1, 2}, p[0].Sequence)
	t.Equal([][]int32{{3}, {4, 5}}, p[0].Consequents)
	t.Equal([]int32{1}, p[1].Sequence)
}
