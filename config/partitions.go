package config

import (
	"fmt"
	"io"
)

import (
	"gopkg.in/yaml.v3"
)

// Partition is a named document range [Start, End), typically one month
// of the corpus.
type Partition struct {
	Name  string `yaml:"name"`
	Start int32  `yaml:"start"`
	End   int32  `yaml:"end"`
}

func (p *Partition) String() string {
	return fmt.Sprintf("%s[%d, %d)", p.Name, p.Start, p.End)
}

type PartitionError struct {
	Name   string
	Reason string
}

func (e *PartitionError) Error() string {
	return fmt.Sprintf("partition '%s': %s", e.Name, e.Reason)
}

type partitionTable struct {
	Partitions []*Partition `yaml:"partitions"`
}

// LoadPartitions reads a table of the form
//
//	partitions:
//	  - name: january
//	    start: 0
//	    end: 1187
//
// Names must be unique and ranges must be non-empty and must not overlap.
func LoadPartitions(input io.Reader) ([]*Partition, error) {
	var table partitionTable
	if err := yaml.NewDecoder(input).Decode(&table); err != nil && err != io.EOF {
		return nil, err
	}
	names := make(map[string]bool, len(table.Partitions))
	for i, p := range table.Partitions {
		if p == nil || p.Name == "" {
			return nil, &PartitionError{fmt.Sprintf("#%d", i), "has no name"}
		}
		if names[p.Name] {
			return nil, &PartitionError{p.Name, "is defined twice"}
		}
		names[p.Name] = true
		if p.Start < 0 || p.End <= p.Start {
			return nil, &PartitionError{p.Name, fmt.Sprintf("bad range [%d, %d)", p.Start, p.End)}
		}
		for _, o := range table.Partitions[:i] {
			if p.Start < o.End && o.Start < p.End {
				return nil, &PartitionError{p.Name, fmt.Sprintf("overlaps %v", o)}
			}
		}
	}
	return table.Partitions, nil
}

func Lookup(partitions []*Partition, name string) (*Partition, error) {
	for _, p := range partitions {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, &PartitionError{name, "is not in the partition table"}
}
