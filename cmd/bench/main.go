// Command bench drives the comparative benchmark of the string sorters
// in this module: with no arguments it times both random generators at
// every size; given --1|--2|--3 and a file path, it times that file's
// lines at SMALL, SMALL+MEDIUM, or all three sizes respectively.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/multikey/stringsort/bench"
)

const usage = "usage: bench [--1|--2|--3 <path>]"

func main() {
	logger := log.New(os.Stderr, "", 0)

	generators, sizes, err := parseArgs(os.Args[1:])
	if err != nil {
		logger.Println(err)
		os.Exit(1)
	}

	bench.Warmup(generators, bench.Roster, os.Stderr)
	results := bench.Measure(generators, sizes, bench.Roster, os.Stderr)
	bench.WriteReport(os.Stdout, results)
}

// parseArgs implements the CLI's fixed mini-grammar: zero arguments run
// both random generators at all sizes; exactly two arguments select a
// file generator and a size ceiling via --1/--2/--3; any other argument
// count is a usage error.
func parseArgs(args []string) (generators []bench.Generator, sizes []bench.DataSize, err error) {
	switch len(args) {
	case 0:
		return []bench.Generator{bench.RandomGenerator{}, bench.PseudoWordGenerator{}},
			[]bench.DataSize{bench.Small, bench.Medium, bench.Large}, nil

	case 2:
		path := args[1]
		f, openErr := os.Open(path)
		if openErr != nil {
			return nil, nil, fmt.Errorf("bench: cannot read %s: %w", path, openErr)
		}
		f.Close()
		switch args[0] {
		case "--1":
			sizes = []bench.DataSize{bench.Small}
		case "--2":
			sizes = []bench.DataSize{bench.Small, bench.Medium}
		case "--3":
			sizes = []bench.DataSize{bench.Small, bench.Medium, bench.Large}
		default:
			return nil, nil, fmt.Errorf("%s", usage)
		}
		return []bench.Generator{bench.FileGenerator{Path: path}}, sizes, nil

	default:
		return nil, nil, fmt.Errorf("%s", usage)
	}
}
