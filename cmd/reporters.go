package cmd

import (
	"fmt"
	"os"
)

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/getopt"
)

import (
	"github.com/timtadh/tarm/config"
	"github.com/timtadh/tarm/reporters"
	"github.com/timtadh/tarm/rules"
)

type Reporter func(map[string]Reporter, []string, rules.Formatter, *config.Config) (rules.Reporter, []string)

func noOpts(name string, argv []string) []string {
	args, optargs, err := getopt.GetOpt(argv, "h", []string{"help"})
	if err != nil {
		errors.Logf("ERROR", "%v", err)
		Usage(ErrorCodes["opts"])
	}
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			Usage(0)
		default:
			errors.Logf("ERROR", "Unknown flag '%v' for %v", oa.Opt(), name)
			Usage(ErrorCodes["opts"])
		}
	}
	return args
}

func inner(name string, reports map[string]Reporter, args []string, fmtr rules.Formatter, conf *config.Config) (rules.Reporter, []string) {
	if len(args) == 0 {
		errors.Logf("ERROR", "You must supply an inner reporter to %v", name)
		fmt.Fprintf(os.Stderr, "try: %v file\n", name)
		Usage(ErrorCodes["opts"])
	} else if _, has := reports[args[0]]; !has {
		errors.Logf("ERROR", "Unknown reporter '%v'", args[0])
		fmt.Fprintln(os.Stderr, "Reporters:")
		for k := range reports {
			fmt.Fprintln(os.Stderr, "  ", k)
		}
		Usage(ErrorCodes["opts"])
	}
	return reports[args[0]](reports, args[1:], fmtr, conf)
}

func logReporter(rptrs map[string]Reporter, argv []string, fmtr rules.Formatter, conf *config.Config) (rules.Reporter, []string) {
	args, optargs, err := getopt.GetOpt(
		argv,
		"hl:p:",
		[]string{
			"help",
			"level=",
			"prefix=",
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		Usage(ErrorCodes["opts"])
	}
	level := "INFO"
	prefix := ""
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			Usage(0)
		case "-l", "--level":
			level = oa.Arg()
		case "-p", "--prefix":
			prefix = oa.Arg()
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			Usage(ErrorCodes["opts"])
		}
	}
	return reporters.NewLog(fmtr, level, prefix), args
}

func fileReporter(rptrs map[string]Reporter, argv []string, fmtr rules.Formatter, conf *config.Config) (rules.Reporter, []string) {
	args, optargs, err := getopt.GetOpt(
		argv,
		"hr:",
		[]string{
			"help",
			"rules=",
		},
	)
	if err != nil {
		errors.Logf("ERROR", "%v", err)
		Usage(ErrorCodes["opts"])
	}
	filename := "rules.txt"
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			Usage(0)
		case "-r", "--rules":
			filename = oa.Arg()
		default:
			errors.Logf("ERROR", "Unknown flag '%v'\n", oa.Opt())
			Usage(ErrorCodes["opts"])
		}
	}
	fr, err := reporters.NewFile(conf, fmtr, filename)
	if err != nil {
		errors.Logf("ERROR", "There was error creating output files\n")
		errors.Logf("ERROR", "%v\n", err)
		os.Exit(1)
	}
	return fr, args
}

func countReporter(rptrs map[string]Reporter, argv []string, fmtr rules.Formatter, conf *config.Config) (rules.Reporter, []string) {
	args, optargs, err := getopt.GetOpt(
		argv,
		"hf:",
		[]string{
			"help",
			"filename=",
		},
	)
	if err != nil {
		errors.Logf("ERROR", "%v", err)
		Usage(ErrorCodes["opts"])
	}
	filename := "count"
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			Usage(0)
		case "-f", "--filename":
			filename = oa.Arg()
		default:
			errors.Logf("ERROR", "Unknown flag '%v'\n", oa.Opt())
			Usage(ErrorCodes["opts"])
		}
	}
	return reporters.NewCount(conf, filename), args
}

func tableReporter(rptrs map[string]Reporter, argv []string, fmtr rules.Formatter, conf *config.Config) (rules.Reporter, []string) {
	args, optargs, err := getopt.GetOpt(
		argv,
		"hf:",
		[]string{
			"help",
			"filename=",
		},
	)
	if err != nil {
		errors.Logf("ERROR", "%v", err)
		Usage(ErrorCodes["opts"])
	}
	filename := "rules.parquet"
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			Usage(0)
		case "-f", "--filename":
			filename = oa.Arg()
		default:
			errors.Logf("ERROR", "Unknown flag '%v'\n", oa.Opt())
			Usage(ErrorCodes["opts"])
		}
	}
	return reporters.NewTable(conf, filename), args
}

func chainReporter(reports map[string]Reporter, argv []string, fmtr rules.Formatter, conf *config.Config) (rules.Reporter, []string) {
	args := noOpts("chain", argv)
	rptrs := make([]rules.Reporter, 0, 10)
	for len(args) >= 1 {
		if args[0] == "endchain" {
			args = args[1:]
			break
		}
		var rptr rules.Reporter
		rptr, args = inner("chain", reports, args, fmtr, conf)
		rptrs = append(rptrs, rptr)
	}
	if len(rptrs) == 0 {
		errors.Logf("ERROR", "Empty chain")
		fmt.Fprintln(os.Stderr, "try: chain log file")
		Usage(ErrorCodes["opts"])
	}
	return &reporters.Chain{Reporters: rptrs}, args
}

func uniqueReporter(reports map[string]Reporter, argv []string, fmtr rules.Formatter, conf *config.Config) (rules.Reporter, []string) {
	rptr, args := inner("unique", reports, noOpts("unique", argv), fmtr, conf)
	return reporters.NewUnique(rptr), args
}

func sampleReporter(reports map[string]Reporter, argv []string, fmtr rules.Formatter, conf *config.Config) (rules.Reporter, []string) {
	args, optargs, err := getopt.GetOpt(
		argv,
		"hn:",
		[]string{
			"help",
			"size=",
		},
	)
	if err != nil {
		errors.Logf("ERROR", "%v", err)
		Usage(ErrorCodes["opts"])
	}
	size := -1
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			Usage(0)
		case "-n", "--size":
			size = ParseInt(oa.Arg())
		default:
			errors.Logf("ERROR", "Unknown flag '%v'\n", oa.Opt())
			Usage(ErrorCodes["opts"])
		}
	}
	if size < 0 {
		errors.Logf("ERROR", "sample needs a size (-n)")
		Usage(ErrorCodes["opts"])
	}
	store, err := conf.IntsIntsMultiMap("sample")
	if err != nil {
		errors.Logf("ERROR", "could not make the sample store: %v", err)
		os.Exit(ErrorCodes["baddir"])
	}
	rptr, args := inner("sample", reports, args, fmtr, conf)
	return reporters.NewSample(conf.Rand(), size, store, rptr), args
}

func skipReporter(reports map[string]Reporter, argv []string, fmtr rules.Formatter, conf *config.Config) (rules.Reporter, []string) {
	args, optargs, err := getopt.GetOpt(
		argv,
		"hn:",
		[]string{
			"help",
			"every=",
		},
	)
	if err != nil {
		errors.Logf("ERROR", "%v", err)
		Usage(ErrorCodes["opts"])
	}
	every := 1
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			Usage(0)
		case "-n", "--every":
			every = ParseInt(oa.Arg())
		default:
			errors.Logf("ERROR", "Unknown flag '%v'\n", oa.Opt())
			Usage(ErrorCodes["opts"])
		}
	}
	rptr, args := inner("skip", reports, args, fmtr, conf)
	return reporters.NewSkip(every, rptr), args
}

var Reporters map[string]Reporter = map[string]Reporter{
	"log":    logReporter,
	"file":   fileReporter,
	"count":  countReporter,
	"table":  tableReporter,
	"sample": sampleReporter,
	"chain":  chainReporter,
	"unique": uniqueReporter,
	"skip":   skipReporter,
}
