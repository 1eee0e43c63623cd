package cmd

import (
	"fmt"
	"os"
	"path"
)

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/getopt"
)

import (
	"github.com/timtadh/tarm/config"
	"github.com/timtadh/tarm/occurrence"
	"github.com/timtadh/tarm/partition"
	"github.com/timtadh/tarm/reindex"
)

// Loader produces the partition a mode mines.
type Loader func() (*partition.Partition, error)

type Type func([]string, *config.Config) (Loader, []string)

// selection is what every type can do to the partition after loading it.
type selection struct {
	top        int
	partitions string
	partition  string
	startId    int
	reindex    bool
	documents  int
}

// selectionOpts parses the options shared by every type. Anything else is
// handed to extra, which reports whether it knew the option.
func selectionOpts(argv []string, extra func(opt, arg string) bool, long ...string) ([]string, *selection) {
	long = append(long,
		"help",
		"top=",
		"partitions=",
		"partition=",
		"start-id=",
		"documents=",
	)
	args, optargs, err := getopt.GetOpt(argv, "h", long)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		Usage(ErrorCodes["opts"])
	}
	sel := &selection{}
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			Usage(0)
		case "--top":
			sel.top = ParseInt(oa.Arg())
		case "--partitions":
			sel.partitions = AssertFileOrDirExists(oa.Arg())
		case "--partition":
			sel.partition = oa.Arg()
		case "--start-id":
			sel.startId = ParseInt(oa.Arg())
			sel.reindex = true
		case "--documents":
			sel.documents = ParseInt(oa.Arg())
		default:
			if extra == nil || !extra(oa.Opt(), oa.Arg()) {
				fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
				Usage(ErrorCodes["opts"])
			}
		}
	}
	if (sel.partition == "") != (sel.partitions == "") {
		fmt.Fprintf(os.Stderr, "--partition and --partitions must be given together\n")
		Usage(ErrorCodes["opts"])
	}
	return args, sel
}

func (sel *selection) apply(conf *config.Config, p *partition.Partition) (*partition.Partition, error) {
	if sel.documents > 0 {
		if sel.documents < p.Index.DocCount() {
			return nil, errors.Errorf("--documents=%d but the input has %d documents", sel.documents, p.Index.DocCount())
		}
		p.DocCount = sel.documents
	}
	if sel.partition != "" {
		input, closer := Input(sel.partitions)
		table, err := config.LoadPartitions(input)
		closer()
		if err != nil {
			return nil, err
		}
		part, err := config.Lookup(table, sel.partition)
		if err != nil {
			return nil, err
		}
		p = &partition.Partition{
			Name:     part.Name,
			Start:    part.Start,
			DocCount: int(part.End - part.Start),
			Index:    p.Index.Slice(part.Start, part.End),
		}
		errors.Logf("INFO", "selected partition %v", part)
	}
	if sel.top > 0 {
		idx, err := p.Index.Filter(p.Index.TopN(sel.top))
		if err != nil {
			return nil, err
		}
		p.Index = idx
	}
	if sel.reindex {
		return renumber(conf, p, int32(sel.startId))
	}
	return p, nil
}

// renumber moves the items of p to ids starting at start and writes the
// new -> old id table to the output directory.
func renumber(conf *config.Config, p *partition.Partition, start int32) (*partition.Partition, error) {
	kept := p.Index.Items()
	orig := make(map[int32]int32, len(kept))
	for _, item := range kept {
		orig[item] = item
	}
	r, err := reindex.Reindex(orig, kept, p.Windows, p.Index, start)
	if err != nil {
		return nil, err
	}
	q := &partition.Partition{
		Name:     p.Name,
		Start:    p.Start,
		DocCount: p.DocCount,
		Index:    r.Index,
		Windows:  p.Windows,
	}
	if p.Windows != nil {
		q.Windows = r.Windows
	}
	if p.Rules != nil {
		q.Rules, err = reindex.Rules(r.Mapping, p.Rules)
		if err != nil {
			return nil, err
		}
	}
	f, err := os.Create(conf.OutputFile("ids"))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	for _, n := range r.Kept {
		if _, err := fmt.Fprintf(f, "%d %d\n", n, r.Items[n]); err != nil {
			return nil, err
		}
	}
	return q, nil
}

func lineType(format string) Type {
	return func(argv []string, conf *config.Config) (Loader, []string) {
		args, sel := selectionOpts(argv, nil)
		if len(args) < 1 {
			fmt.Fprintf(os.Stderr, "You must supply an input path\n")
			Usage(ErrorCodes["opts"])
		}
		inputPath := AssertFileOrDirExists(args[0])
		loader := func() (*partition.Partition, error) {
			input, closer := Input(inputPath)
			defer closer()
			idx, documents, err := occurrence.Read(input, format)
			if err != nil {
				return nil, err
			}
			p := &partition.Partition{Name: path.Base(inputPath), Index: idx, DocCount: documents}
			return sel.apply(conf, p)
		}
		return loader, args[1:]
	}
}

func savedType(argv []string, conf *config.Config) (Loader, []string) {
	names := make([]string, 0, 1)
	args, sel := selectionOpts(argv, func(opt, arg string) bool {
		if opt == "--merge" {
			names = append(names, arg)
			return true
		}
		return false
	}, "merge=")
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "You must supply a partition name\n")
		Usage(ErrorCodes["opts"])
	}
	if conf.Store == "" {
		fmt.Fprintf(os.Stderr, "You must supply a store (--store) to load saved partitions\n")
		Usage(ErrorCodes["opts"])
	}
	name := args[0]
	loader := func() (*partition.Partition, error) {
		p, err := partition.Load(conf, name)
		if err != nil {
			return nil, err
		}
		if len(names) > 0 {
			parts := []*partition.Partition{p}
			for _, n := range names {
				q, err := partition.Load(conf, n)
				if err != nil {
					return nil, err
				}
				parts = append(parts, q)
			}
			p, err = partition.Merge(name, parts...)
			if err != nil {
				return nil, err
			}
		}
		if p.Index == nil {
			return nil, errors.Errorf("saved partition %v has no occurrence index", name)
		}
		return sel.apply(conf, p)
	}
	return loader, args[1:]
}

var Types map[string]Type = map[string]Type{
	"support":      lineType(occurrence.SupportFormat),
	"transactions": lineType(occurrence.TransactionsFormat),
	"saved":        savedType,
}
