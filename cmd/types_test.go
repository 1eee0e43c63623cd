package cmd

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"io/ioutil"
	"os"
	"path/filepath"
)

import (
	"github.com/timtadh/tarm/config"
	"github.com/timtadh/tarm/partition"
	"github.com/timtadh/tarm/rules"
)

func workspace(t *assert.Assertions) (*config.Config, func()) {
	dir, err := ioutil.TempDir("", "tarm-cmd")
	t.Nil(err)
	c := &config.Config{
		Output: filepath.Join(dir, "out"),
		Store:  filepath.Join(dir, "store"),
	}
	t.Nil(os.MkdirAll(c.Output, 0775))
	t.Nil(os.MkdirAll(c.Store, 0775))
	return c, func() { os.RemoveAll(dir) }
}

func write(t *assert.Assertions, path, content string) string {
	t.Nil(ioutil.WriteFile(path, []byte(content), 0644))
	return path
}

func TestSupportLoader(x *testing.T) {
	t := assert.New(x)
	c, clean := workspace(t)
	defer clean()
	input := write(t, filepath.Join(c.Output, "support.txt"), "7 0 1 2 3\n8 1 2\n9 3\n")
	table := write(t, filepath.Join(c.Output, "parts.yaml"),
		"partitions:\n  - {name: early, start: 0, end: 2}\n  - {name: late, start: 2, end: 4}\n")

	loader, args := Types["support"]([]string{"--top=2", input, "rules", "--faster"}, c)
	t.Equal([]string{"rules", "--faster"}, args)
	p, err := loader()
	t.Nil(err)
	t.Equal([]int32{7, 8}, p.Index.Items())
	t.Equal(4, p.DocCount)

	loader, _ = Types["support"]([]string{"--top=1", "--documents=9", input}, c)
	p, err = loader()
	t.Nil(err)
	t.Equal([]int32{7}, p.Index.Items())
	t.Equal(9, p.DocCount)

	loader, _ = Types["support"]([]string{"--documents=2", input}, c)
	_, err = loader()
	t.NotNil(err)

	loader, _ = Types["support"]([]string{"--partitions=" + table, "--partition=late", input}, c)
	p, err = loader()
	t.Nil(err)
	t.Equal("late", p.Name)
	t.Equal(int32(2), p.Start)
	t.Equal(2, p.DocCount)
	t.Equal([]int32{7, 8, 9}, p.Index.Items())
	docs, err := p.Index.Docs(9)
	t.Nil(err)
	t.Equal([]int32{1}, docs)
}

func TestRenumber(x *testing.T) {
	t := assert.New(x)
	c, clean := workspace(t)
	defer clean()
	input := write(t, filepath.Join(c.Output, "tx.txt"), "7 8\n8\n9 7\n\n")
	loader, _ := Types["transactions"]([]string{"--start-id=100", input}, c)
	p, err := loader()
	t.Nil(err)
	t.Equal([]int32{100, 101, 102}, p.Index.Items())
	t.Equal(4, p.DocCount)
	ids, err := ioutil.ReadFile(c.OutputFile("ids"))
	t.Nil(err)
	t.Equal("100 7\n101 8\n102 9\n", string(ids))
}

func TestSavedLoader(x *testing.T) {
	t := assert.New(x)
	c, clean := workspace(t)
	defer clean()
	input := write(t, filepath.Join(c.Output, "tx.txt"), "1 2\n1 2 3\n\n")
	loader, _ := Types["transactions"]([]string{input}, c)
	p, err := loader()
	t.Nil(err)
	p.Name = "january"
	p.Rules = rules.New()
	_, err = p.Rules.Add([]int32{1}, []int32{2})
	t.Nil(err)
	t.Nil(partition.Save(c, p))
	p.Name = "february"
	t.Nil(partition.Save(c, p))

	loader, _ = Types["saved"]([]string{"--merge=february", "january"}, c)
	q, err := loader()
	t.Nil(err)
	t.Equal("january", q.Name)
	docs, err := q.Index.Docs(1)
	t.Nil(err)
	t.Equal([]int32{0, 1, 3, 4}, docs)
	t.Equal(6, q.DocCount)
	t.Equal(1, q.Rules.Count())
}
