package bench

import (
	"fmt"
	"io"
	"time"

	"github.com/multikey/stringsort/radixsort"
)

// RunCount is the number of timed copies measured per (generator, size,
// runner) triple; the reported value discards the fastest and slowest
// and means the rest.
const RunCount = 5

// Result is one reported timing: the trimmed-mean milliseconds a runner
// took to sort one (generator, size) workload.
type Result struct {
	Generator string
	Size      DataSize
	Runner    string
	Millis    int64
}

// Warmup runs a SMALL dataset from each generator through every runner
// once and discards the timings, so any JIT/branch-predictor/cache
// warmup in the host environment happens before measurement starts. In
// an ahead-of-time-compiled target like this one, the pass still runs so
// first-touch cache population is uniform across runners.
func Warmup(generators []Generator, runners []Runner, errOut io.Writer) {
	for _, gen := range generators {
		data, err := gen.Generate(Small)
		if err != nil {
			fmt.Fprintln(errOut, err)
			continue
		}
		for _, runner := range runners {
			cp := append([]string(nil), data...)
			runner.Sort(cp)
		}
	}
}

// Measure generates each (generator, size) workload once, then times
// every runner against RunCount fresh copies of it (sorting mutates in
// place, so each run needs its own copy). Generator failures are
// reported through errOut and that (generator, size) pair is skipped,
// not fatal to the run as a whole.
func Measure(generators []Generator, sizes []DataSize, runners []Runner, errOut io.Writer) []Result {
	var results []Result
	for _, gen := range generators {
		for _, size := range sizes {
			data, err := gen.Generate(size)
			if err != nil {
				fmt.Fprintln(errOut, err)
				continue
			}
			for _, runner := range runners {
				samples := make([]int64, RunCount)
				for i := 0; i < RunCount; i++ {
					cp := append([]string(nil), data...)
					start := time.Now()
					runner.Sort(cp)
					samples[i] = time.Since(start).Milliseconds()
				}
				results = append(results, Result{
					Generator: gen.DisplayName(),
					Size:      size,
					Runner:    runner.Name,
					Millis:    trimmedMean(samples),
				})
			}
		}
	}
	return results
}

// trimmedMean sorts samples with the module's own adapted radix sort,
// discards the minimum and maximum, and returns the integer mean of what
// remains.
func trimmedMean(samples []int64) int64 {
	sorted := append([]int64(nil), samples...)
	radixsort.Int64s(sorted)
	trimmed := sorted[1 : len(sorted)-1]
	var sum int64
	for _, v := range trimmed {
		sum += v
	}
	return sum / int64(len(trimmed))
}

// WriteReport writes the tabular text report: one (generator, size)
// header per block, one runner row per line underneath it.
func WriteReport(w io.Writer, results []Result) {
	var curGen string
	var curSize DataSize
	haveHeader := false
	for _, r := range results {
		if !haveHeader || r.Generator != curGen || r.Size != curSize {
			fmt.Fprintf(w, "\n%s / %s\n", r.Generator, r.Size)
			curGen, curSize, haveHeader = r.Generator, r.Size, true
		}
		fmt.Fprintf(w, "  %-12s %6d ms\n", r.Runner, r.Millis)
	}
}
