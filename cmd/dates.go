package cmd

import (
	"encoding/csv"
	"io"
	"strings"
	"time"
)

import (
	"github.com/timtadh/data-structures/errors"
)

const DateLayout = "2006-01-02"

// LoadDates reads the date column of a csv file with a header row. Row i
// is the date of document i. The result holds, for every document, the
// number of days since the earliest date in the file.
func LoadDates(input io.Reader) ([]int, error) {
	r := csv.NewReader(input)
	r.FieldsPerRecord = -1
	header, err := r.Read()
	if err == io.EOF {
		return []int{}, nil
	} else if err != nil {
		return nil, err
	}
	col := -1
	for i, name := range header {
		if strings.TrimSpace(strings.ToLower(name)) == "date" {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, errors.Errorf("date file has no 'date' column in header %v", header)
	}
	times := make([]time.Time, 0, 100)
	for row := 1; ; row++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		if col >= len(record) {
			return nil, errors.Errorf("row %d has no date column", row)
		}
		t, err := time.Parse(DateLayout, strings.TrimSpace(record[col]))
		if err != nil {
			return nil, errors.Errorf("row %d: %v", row, err)
		}
		times = append(times, t)
	}
	days := make([]int, len(times))
	if len(times) == 0 {
		return days, nil
	}
	earliest := times[0]
	for _, t := range times {
		if t.Before(earliest) {
			earliest = t
		}
	}
	for i, t := range times {
		days[i] = int(t.Sub(earliest).Hours() / 24)
	}
	return days, nil
}
