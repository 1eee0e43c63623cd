package reporters

import (
	"fmt"
	"os"
)

import (
	"github.com/timtadh/tarm/config"
)

// Count writes the number of reported rules to a file when closed.
type Count struct {
	config   *config.Config
	count    int
	filename string
}

func NewCount(c *config.Config, filename string) *Count {
	return &Count{
		config:   c,
		filename: filename,
	}
}

func (r *Count) Count() int {
	return r.count
}

func (r *Count) Report(ante, cons []int32) error {
	r.count++
	return nil
}

func (r *Count) Close() error {
	f, err := os.Create(r.config.OutputFile(r.filename))
	if err != nil {
		return err
	}
	_, perr := fmt.Fprintf(f, "%v\n", r.count)
	err = f.Close()
	if perr != nil {
		return perr
	}
	return err
}
