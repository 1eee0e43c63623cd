package reporters

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
)

import (
	"github.com/parquet-go/parquet-go"
)

import (
	"github.com/timtadh/tarm/config"
	"github.com/timtadh/tarm/rules"
	"github.com/timtadh/tarm/stats"
)

func tmpConfig(t *assert.Assertions) (*config.Config, func()) {
	dir, err := ioutil.TempDir("", "tarm-reporters")
	t.Nil(err)
	return &config.Config{Output: dir}, func() { os.RemoveAll(dir) }
}

func TestChainUniqueCollector(x *testing.T) {
	t := assert.New(x)
	a := NewCollector(true)
	b := NewCollector(true)
	chain := &Chain{[]rules.Reporter{a, NewUnique(b)}}
	t.Nil(chain.Report([]int32{2, 1}, []int32{3}))
	t.Nil(chain.Report([]int32{2, 1}, []int32{3}))
	t.Nil(chain.Report([]int32{1, 2}, []int32{3}))
	t.Nil(chain.Close())
	t.Equal(2, a.Rules.Count())
	t.Equal(2, b.Rules.Count())
	t.True(b.Rules.Has([]int32{2, 1}, []int32{3}))
}

func TestSkip(x *testing.T) {
	t := assert.New(x)
	c := NewCollector(false)
	s := NewSkip(2, c)
	for i := int32(0); i < 5; i++ {
		t.Nil(s.Report([]int32{i}, []int32{10}))
	}
	t.Nil(s.Close())
	t.Equal(2, c.Rules.Count())
	t.True(c.Rules.Has([]int32{1}, []int32{10}))
	t.True(c.Rules.Has([]int32{3}, []int32{10}))
}

func TestSample(x *testing.T) {
	t := assert.New(x)
	c, clean := tmpConfig(t)
	defer clean()
	c.Cache = c.Output
	store, err := c.IntsIntsMultiMap("sample")
	t.Nil(err)
	collected := NewCollector(true)
	s := NewSample(stats.NewRand(3), 3, store, collected)
	for i := int32(0); i < 10; i++ {
		t.Nil(s.Report([]int32{i, i + 1}, []int32{10}))
	}
	files, err := ioutil.ReadDir(c.Cache)
	t.Nil(err)
	t.Len(files, 1)
	t.Nil(s.Close())
	files, err = ioutil.ReadDir(c.Cache)
	t.Nil(err)
	t.Len(files, 0)
	t.Equal(3, collected.Rules.Count())
	last := int32(-1)
	for _, rule := range collected.Rules.Rules() {
		t.Equal(rule.Antecedent[0]+1, rule.Antecedent[1])
		t.True(rule.Antecedent[0] > last)
		last = rule.Antecedent[0]
		t.Equal([][]int32{{10}}, rule.Consequents)
	}

	anon, err := (&config.Config{}).IntsIntsMultiMap("sample")
	t.Nil(err)
	all := NewCollector(false)
	s = NewSample(stats.NewRand(3), 20, anon, all)
	for i := int32(0); i < 4; i++ {
		t.Nil(s.Report([]int32{i}, []int32{10}))
	}
	t.Nil(s.Close())
	t.Equal(4, all.Rules.Count())
}

func TestFileAndCount(x *testing.T) {
	t := assert.New(x)
	c, clean := tmpConfig(t)
	defer clean()
	f, err := NewFile(c, rules.FormatOrdered, "rules.txt")
	t.Nil(err)
	count := NewCount(c, "count")
	chain := &Chain{[]rules.Reporter{f, count, NewLog(rules.FormatOrdered, "DEBUG", "rule")}}
	t.Nil(chain.Report([]int32{2, 1}, []int32{3}))
	t.Nil(chain.Report([]int32{4}, []int32{5, 6}))
	t.Nil(chain.Close())
	t.Equal(2, count.Count())

	bytes, err := ioutil.ReadFile(filepath.Join(c.Output, "rules.txt"))
	t.Nil(err)
	t.Equal([]string{"(2, 1)\t=>\t(3)", "(4)\t=>\t(5, 6)"}, strings.Split(strings.TrimSpace(string(bytes)), "\n"))

	bytes, err = ioutil.ReadFile(filepath.Join(c.Output, "count"))
	t.Nil(err)
	t.Equal("2\n", string(bytes))
}

func TestTable(x *testing.T) {
	t := assert.New(x)
	c, clean := tmpConfig(t)
	defer clean()
	table := NewTable(c, "rules.parquet")
	t.Nil(table.Report([]int32{2, 1}, []int32{3}))
	t.Nil(table.Report([]int32{4}, []int32{5, 6}))
	t.Nil(table.Close())
	rows, err := parquet.ReadFile[Row](filepath.Join(c.Output, "rules.parquet"))
	t.Nil(err)
	t.Equal([]Row{
		{Antecedent: []int32{2, 1}, Consequent: []int32{3}},
		{Antecedent: []int32{4}, Consequent: []int32{5, 6}},
	}, rows)
}
