package main

/* Tim Henderson (tadh@case.edu)
*
* Copyright (c) 2015, Tim Henderson, Case Western Reserve University
* Cleveland, Ohio 44106. All Rights Reserved.
*
* This library is free software; you can redistribute it and/or modify
* it under the terms of the GNU General Public License as published by
* the Free Software Foundation; either version 3 of the License, or (at
* your option) any later version.
*
* This library is distributed in the hope that it will be useful, but
* WITHOUT ANY WARRANTY; without even the implied warranty of
* MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
* General Public License for more details.
*
* You should have received a copy of the GNU General Public License
* along with this library; if not, write to the Free Software
* Foundation, Inc.,
*   51 Franklin Street, Fifth Floor,
*   Boston, MA  02110-1301
*   USA
 */

import (
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/getopt"
)

import (
	"github.com/timtadh/tarm/cmd"
	"github.com/timtadh/tarm/config"
	"github.com/timtadh/tarm/modes"
	"github.com/timtadh/tarm/partition"
)

func init() {
	cmd.UsageMessage = "tarm --help"
	cmd.ExtendedMessage = `
tarm - temporal association rule mining

$ tarm -o <path> [Global Options] \
    <type> [Type Options] <input> \
    <mode> [Mode Options] \
    [<reporter> [Reporter Options]]

Note: You must supply [Global Options] then [<type> [Type Options] <input>]
      then [<mode> [Mode Options]] and finally the reporters. Changes in
      ordering are not supported.

Note: You may either supply the <input> as a regular file or a gzipped
      file. If supplying a gzip file the file extension must be '.gz'.

Note: If you don't supply a reporter by default it will use 'chain log file'.


Global Options
    -h, --help                view this message
    --types                   show the available types
    --modes                   show the available modes
    --reporters               show the available reporters
    -o, --output=<path>       path to output directory (required)
                              NB: will overwrite contents of dir
    -c, --cache=<path>        directory for scratch stores (optional).
                              without it they are anonymous mappings
                              NB: will overwrite contents of dir
    --store=<path>            directory partitions are saved to and loaded
                              from (never cleared)
    --save=<name>             save the mined partition under this name
    --min-conf=<float>        minimum rule confidence (default .5)
    --max-size=<int>          largest itemset rules are mined from (default:
                              unbounded)
    --seed=<int>              seed for the random split points (default: from
                              /dev/urandom)
    --skip-log=<level>        don't output the given log level.

Developer Options
    --cpu-profile=<path>      write a cpu-profile to this location

Types
    support                   one item per line: the item id followed by the
                              ids of the documents it occurs in
    transactions              one document per line: the items occurring in it
    saved                     a partition saved with --save. <input> is its
                              name.

    Type Options
        --top=<int>              keep the <int> items with the most support
        --partitions=<path>      yaml partition table
        --partition=<name>       only mine this partition of the table
        --start-id=<int>         renumber the items from <int>. the new -> old
                                 id table is written to <output>/ids
        --documents=<int>        number of documents in the corpus, for
                                 trailing documents without items

    saved Options
        --merge=<name>           merge another saved partition into this one
                                 (may be repeated)

    Partition table example:
        partitions:
          - name: january
            start: 0
            end: 1187
          - name: february
            start: 1187
            end: 2210

Modes
    rules                     association rules over every itemset
    apriori                   association rules over the frequent itemsets
    sequences                 ordered rules induced from frequent sequences
    predict                   predict consequents for the frequent sequences
                              of the input from rules of saved partitions

    rules Options
        --faster              only grow consequents which held

    apriori Options
        -s, --min-support=<int>   minimum document support of an itemset

    sequences Options
        -d, --dates=<path>        csv file with a date column (required)
        --days=<int>              days per time bucket (default 1)
        -w, --window=<int>        buckets per window (default 3)
        -g, --granularity=<int>   buckets the window advances (default: window)
        -s, --min-support=<int>   buckets which must contain a sequence
                                  (default: window)

    predict Options
        -t, --train=<name>        saved partition to take rules from (may be
                                  repeated)
        -r, --ratio=<float>       minimum similarity to an antecedent (default .9)
        --jaccard                 compare items by the jaccard similarity of
                                  their training documents
        plus the sequences Options, used when the input has no saved windows

Reporters
    chain                     chain several reporters together (end the chain
                              with endchain)
    log                       log the rules
    file                      write the rules to a file in the output dir
    count                     write the number of rules to a file
    table                     write the rules as a parquet table (columns
                              antecedent and consequent)
    unique                    only pass rules not seen before to the inner
                              reporter
    skip                      only pass every n-th rule to the inner reporter
    sample                    pass a random sample of the rules to the inner
                              reporter (uses --seed)

    log Options
        -l, level=<string>    log level the logger should use
        -p, prefix=<string>   a prefix to put before the log line

    file Options
        -r, rules=<name>      name of the file (default rules.txt)

    count Options
        -f, filename=<name>   name of the file (default count)

    table Options
        -f, filename=<name>   name of the file (default rules.parquet)

    skip Options
        -n, every=<int>       pass every n-th rule

    sample Options
        -n, size=<int>        number of rules to pass on

    Examples

        $ tarm -o /tmp/tarm --min-conf=.8 support ./support.txt rules

        $ tarm -o /tmp/tarm --store=./months --save=january --seed=7 \
            support --partitions=months.yaml --partition=january ./support.txt \
            sequences -d dates.csv --days=1 -w 3 -g 1 \
            chain log -p rule file endchain

        $ tarm -o /tmp/tarm --store=./months \
            saved december \
            predict -t january -t february --jaccard -r .7
`
}

type windowOpts struct {
	dates string
}

// windowOpt handles the options of the windowing pipeline shared by the
// sequences and predict modes.
func windowOpt(conf *config.Config, w *windowOpts, opt, arg string) bool {
	switch opt {
	case "-d", "--dates":
		w.dates = cmd.AssertFileOrDirExists(arg)
	case "--days":
		conf.Days = cmd.ParseInt(arg)
	case "-w", "--window":
		conf.WindowLen = cmd.ParseInt(arg)
	case "-g", "--granularity":
		conf.Granularity = cmd.ParseInt(arg)
	case "-s", "--min-support":
		conf.MinSupport = cmd.ParseInt(arg)
	default:
		return false
	}
	return true
}

var windowLong = []string{"dates=", "days=", "window=", "granularity=", "min-support="}

func (w *windowOpts) load() []int {
	if w.dates == "" {
		return nil
	}
	input, closer := cmd.Input(w.dates)
	defer closer()
	dates, err := cmd.LoadDates(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not load dates: %v\n", err)
		os.Exit(cmd.ErrorCodes["badfile"])
	}
	return dates
}

func rulesMode(argv []string, conf *config.Config) (modes.Miner, []string) {
	args, optargs, err := getopt.GetOpt(
		argv,
		"h",
		[]string{
			"help",
			"faster",
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		cmd.Usage(cmd.ErrorCodes["opts"])
	}
	faster := false
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			cmd.Usage(0)
		case "--faster":
			faster = true
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			cmd.Usage(cmd.ErrorCodes["opts"])
		}
	}
	return modes.NewRuleMiner(conf, faster), args
}

func aprioriMode(argv []string, conf *config.Config) (modes.Miner, []string) {
	args, optargs, err := getopt.GetOpt(
		argv,
		"hs:",
		[]string{
			"help",
			"min-support=",
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		cmd.Usage(cmd.ErrorCodes["opts"])
	}
	support := 0
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			cmd.Usage(0)
		case "-s", "--min-support":
			support = cmd.ParseInt(oa.Arg())
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			cmd.Usage(cmd.ErrorCodes["opts"])
		}
	}
	if support <= 0 {
		fmt.Fprintf(os.Stderr, "Support <= 0, must be > 0\n")
		cmd.Usage(cmd.ErrorCodes["opts"])
	}
	return modes.NewAprioriMiner(conf, support), args
}

func sequencesMode(argv []string, conf *config.Config) (modes.Miner, []string) {
	args, optargs, err := getopt.GetOpt(
		argv,
		"hd:w:g:s:",
		append([]string{"help"}, windowLong...),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		cmd.Usage(cmd.ErrorCodes["opts"])
	}
	w := &windowOpts{}
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			cmd.Usage(0)
		default:
			if !windowOpt(conf, w, oa.Opt(), oa.Arg()) {
				fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
				cmd.Usage(cmd.ErrorCodes["opts"])
			}
		}
	}
	if w.dates == "" {
		fmt.Fprintf(os.Stderr, "You must supply a date file (-d)\n")
		cmd.Usage(cmd.ErrorCodes["opts"])
	}
	return modes.NewSequenceMiner(conf, w.load()), args
}

func predictMode(argv []string, conf *config.Config) (modes.Miner, []string) {
	args, optargs, err := getopt.GetOpt(
		argv,
		"ht:r:d:w:g:s:",
		append([]string{"help", "train=", "ratio=", "jaccard"}, windowLong...),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		cmd.Usage(cmd.ErrorCodes["opts"])
	}
	train := make([]string, 0, 10)
	ratio := .9
	jaccard := false
	w := &windowOpts{}
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			cmd.Usage(0)
		case "-t", "--train":
			train = append(train, oa.Arg())
		case "-r", "--ratio":
			ratio = cmd.ParseFloat(oa.Arg())
		case "--jaccard":
			jaccard = true
		default:
			if !windowOpt(conf, w, oa.Opt(), oa.Arg()) {
				fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
				cmd.Usage(cmd.ErrorCodes["opts"])
			}
		}
	}
	if len(train) == 0 {
		fmt.Fprintf(os.Stderr, "You must supply at least one training partition (-t)\n")
		cmd.Usage(cmd.ErrorCodes["opts"])
	}
	if conf.Store == "" {
		fmt.Fprintf(os.Stderr, "You must supply a store (--store) to load training partitions\n")
		cmd.Usage(cmd.ErrorCodes["opts"])
	}
	parts := make([]*partition.Partition, 0, len(train))
	for _, name := range train {
		p, err := partition.Load(conf, name)
		if err != nil {
			log.Fatal(err)
		}
		parts = append(parts, p)
	}
	merged, err := partition.Merge(strings.Join(train, "+"), parts...)
	if err != nil {
		log.Fatal(err)
	}
	miner, err := modes.NewPredictMiner(conf, merged, ratio, jaccard, w.load())
	if err != nil {
		log.Fatal(err)
	}
	return miner, args
}

func main() {
	os.Exit(run())
}

func run() int {
	modeMap := map[string]cmd.Mode{
		"rules":     rulesMode,
		"apriori":   aprioriMode,
		"sequences": sequencesMode,
		"predict":   predictMode,
	}

	args, optargs, err := getopt.GetOpt(
		os.Args[1:],
		"ho:c:",
		[]string{
			"help",
			"output=", "cache=", "store=", "save=",
			"modes", "types", "reporters",
			"min-conf=",
			"max-size=",
			"seed=",
			"skip-log=",
			"cpu-profile=",
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, "could not process your arguments (perhaps you forgot a mode?) try:")
		fmt.Fprintf(os.Stderr, "$ %v %v rules\n", os.Args[0], strings.Join(os.Args[1:], " "))
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	conf := &config.Config{
		MinConf:   .5,
		Days:      1,
		WindowLen: 3,
	}
	cpuProfile := ""
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			cmd.Usage(0)
		case "-o", "--output":
			conf.Output = cmd.EmptyDir(oa.Arg())
		case "-c", "--cache":
			conf.Cache = cmd.EmptyDir(oa.Arg())
		case "--store":
			conf.Store = cmd.AssertDir(oa.Arg())
		case "--save":
			conf.Save = oa.Arg()
		case "--min-conf":
			conf.MinConf = cmd.ParseFloat(oa.Arg())
		case "--max-size":
			conf.MaxSize = cmd.ParseInt(oa.Arg())
		case "--seed":
			conf.Seed = int64(cmd.ParseInt(oa.Arg()))
		case "--types":
			fmt.Fprintln(os.Stderr, "Types:")
			for k := range cmd.Types {
				fmt.Fprintln(os.Stderr, "  ", k)
			}
			os.Exit(0)
		case "--modes":
			fmt.Fprintln(os.Stderr, "Modes:")
			for k := range modeMap {
				fmt.Fprintln(os.Stderr, "  ", k)
			}
			os.Exit(0)
		case "--reporters":
			fmt.Fprintln(os.Stderr, "Reporters:")
			for k := range cmd.Reporters {
				fmt.Fprintln(os.Stderr, "  ", k)
			}
			os.Exit(0)
		case "--skip-log":
			level := oa.Arg()
			errors.Logf("INFO", "not logging level %v", level)
			errors.SkipLogging[level] = true
		case "--cpu-profile":
			cpuProfile = cmd.AssertFile(oa.Arg())
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			cmd.Usage(cmd.ErrorCodes["opts"])
		}
	}

	if conf.MinConf < 0 || conf.MinConf > 1 {
		fmt.Fprintf(os.Stderr, "--min-conf must be in [0, 1]\n")
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	if conf.Output == "" {
		fmt.Fprintf(os.Stderr, "You must supply an output dir (-o)\n")
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	if conf.Save != "" && conf.Store == "" {
		fmt.Fprintf(os.Stderr, "--save needs a store (--store)\n")
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	if cpuProfile != "" {
		errors.Logf("DEBUG", "starting cpu profile: %v", cpuProfile)
		f, err := os.Create(cpuProfile)
		if err != nil {
			log.Fatal(err)
		}
		err = pprof.StartCPUProfile(f)
		if err != nil {
			log.Fatal(err)
		}
		defer func() {
			errors.Logf("DEBUG", "closing cpu profile")
			pprof.StopCPUProfile()
			err := f.Close()
			errors.Logf("DEBUG", "closed cpu profile, err: %v", err)
		}()
	}

	return cmd.Main(args, conf, modeMap)
}
