package reporters

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

import (
	"github.com/timtadh/tarm/config"
	"github.com/timtadh/tarm/rules"
)

// File writes one formatted rule per line to a file in the output
// directory.
type File struct {
	fmtr rules.Formatter
	file io.WriteCloser
	buf  *bufio.Writer
}

func NewFile(c *config.Config, fmtr rules.Formatter, filename string) (*File, error) {
	f, err := os.Create(c.OutputFile(filename))
	if err != nil {
		return nil, err
	}
	return newFile(fmtr, f), nil
}

func newFile(fmtr rules.Formatter, w io.WriteCloser) *File {
	return &File{
		fmtr: fmtr,
		file: w,
		buf:  bufio.NewWriter(w),
	}
}

func (r *File) Report(ante, cons []int32) error {
	_, err := fmt.Fprintln(r.buf, r.fmtr(ante, cons))
	return err
}

func (r *File) Close() error {
	ferr := r.buf.Flush()
	err := r.file.Close()
	if ferr != nil {
		return ferr
	}
	return err
}
