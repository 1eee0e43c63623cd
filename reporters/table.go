package reporters

import (
	"github.com/parquet-go/parquet-go"
)

import (
	"github.com/timtadh/tarm/config"
)

// Row is one rule of a parquet rule table.
type Row struct {
	Antecedent []int32 `parquet:"antecedent"`
	Consequent []int32 `parquet:"consequent"`
}

// Table buffers the rules and writes them as a parquet file in the output
// directory when closed.
type Table struct {
	path string
	rows []Row
}

func NewTable(c *config.Config, filename string) *Table {
	return &Table{
		path: c.OutputFile(filename),
		rows: make([]Row, 0, 100),
	}
}

func (r *Table) Report(ante, cons []int32) error {
	a := make([]int32, len(ante))
	copy(a, ante)
	c := make([]int32, len(cons))
	copy(c, cons)
	r.rows = append(r.rows, Row{Antecedent: a, Consequent: c})
	return nil
}

func (r *Table) Close() error {
	return parquet.WriteFile(r.path, r.rows)
}
