// Package sequence turns per document transactions into time ordered
// sequences, mines frequent subsequences over sliding windows of them and
// induces ordered rules from the results.
package sequence

import (
	"fmt"
)

import (
	"github.com/timtadh/data-structures/errors"
)

// Sequence is the chronological list of items seen in one time bucket.
type Sequence []int32

// ConfigError reports a nonsensical mining parameter. It is raised before
// any work is done.
type ConfigError struct {
	Field string
	Value int
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("bad %s: %d", e.Field, e.Value)
}

// MissingDate reports a document which the date source has no offset for.
type MissingDate struct {
	Doc int
}

func (e *MissingDate) Error() string {
	return fmt.Sprintf("no date for document %d", e.Doc)
}

// Build groups transactions into buckets of days days and concatenates
// each bucket's items in document order. dates[d] is the day offset of
// document d from the start of the corpus. Empty buckets yield empty
// sequences.
func Build(transactions [][]int32, dates []int, days int) ([]Sequence, error) {
	if days <= 0 {
		return nil, &ConfigError{"days", days}
	}
	if len(dates) < len(transactions) {
		return nil, &MissingDate{len(dates)}
	}
	if len(transactions) == 0 {
		return []Sequence{}, nil
	}
	max := 0
	for d := range transactions {
		if dates[d] < 0 {
			return nil, errors.Errorf("document %d has negative day offset %d", d, dates[d])
		}
		if dates[d] > max {
			max = dates[d]
		}
	}
	count := (max+days-1)/days + 1
	seqs := make([]Sequence, count)
	for i := range seqs {
		seqs[i] = make(Sequence, 0, 10)
	}
	for d, tx := range transactions {
		b := dates[d] / days
		seqs[b] = append(seqs[b], tx...)
	}
	return seqs, nil
}
