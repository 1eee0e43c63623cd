package reporters

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/tarm/rules"
)

type Log struct {
	fmtr   rules.Formatter
	level  string
	prefix string
	count  int
}

func NewLog(fmtr rules.Formatter, level, prefix string) *Log {
	if level == "" {
		level = "INFO"
	}
	return &Log{fmtr: fmtr, level: level, prefix: prefix}
}

func (lr *Log) Report(ante, cons []int32) error {
	lr.count++
	if lr.prefix != "" {
		errors.Logf(lr.level, "%s %v %v", lr.prefix, lr.count, lr.fmtr(ante, cons))
	} else {
		errors.Logf(lr.level, "%v %v", lr.count, lr.fmtr(ante, cons))
	}
	return nil
}

func (lr *Log) Close() error {
	return nil
}
