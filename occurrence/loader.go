package occurrence

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
)

const (
	// SupportFormat has one item per line: the item id followed by the
	// ids of the documents it occurs in.
	//
	//     12 0 5 9
	//     13 1 5
	SupportFormat = "support"

	// TransactionsFormat has one document per line. The line number is
	// the document id and the columns are the items occurring in it.
	//
	//     12 13
	//     13
	TransactionsFormat = "transactions"
)

// Read loads an index in one of the line formats and returns it with the
// number of documents the input describes. For the transactions format
// that is the number of lines, empty ones included. The support format
// only names documents holding items, so its count is DocCount. Columns
// which are not integers are logged and skipped.
func Read(input io.Reader, format string) (*Index, int, error) {
	switch format {
	case SupportFormat:
		x, err := readSupport(input)
		if err != nil {
			return nil, 0, err
		}
		return x, x.DocCount(), nil
	case TransactionsFormat:
		return readTransactions(input)
	default:
		return nil, 0, errors.Errorf("unknown occurrence format '%v'", format)
	}
}

func columns(line string, lineno int) []int32 {
	cols := make([]int32, 0, 10)
	for _, col := range strings.Fields(line) {
		i, err := strconv.ParseInt(col, 10, 32)
		if err != nil {
			errors.Logf("WARN", "input line %d contained non int '%s'", lineno, col)
			continue
		}
		cols = append(cols, int32(i))
	}
	return cols
}

func readSupport(input io.Reader) (*Index, error) {
	x := New()
	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lineno := 0
	for scanner.Scan() {
		cols := columns(scanner.Text(), lineno)
		lineno++
		if len(cols) == 0 {
			continue
		} else if len(cols) == 1 {
			errors.Logf("WARN", "item %d on line %d has no documents, skipping", cols[0], lineno-1)
			continue
		}
		for _, doc := range cols[1:] {
			if err := x.Add(cols[0], doc); err != nil {
				return nil, err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return x, nil
}

func readTransactions(input io.Reader) (*Index, int, error) {
	x := New()
	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	doc := int32(0)
	for scanner.Scan() {
		for _, item := range columns(scanner.Text(), int(doc)) {
			if err := x.Add(item, doc); err != nil {
				return nil, 0, err
			}
		}
		doc++
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, err
	}
	return x, int(doc), nil
}
