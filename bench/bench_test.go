package bench

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

func TestRandomGeneratorShape(t *testing.T) {
	saved := swapSmallCount(t, 50)
	defer saved()

	out, err := RandomGenerator{}.Generate(Small)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 50 {
		t.Fatalf("got %d strings, want 50", len(out))
	}
	for _, s := range out {
		if len(s) != 64 {
			t.Fatalf("RandomGenerator string has length %d, want 64", len(s))
		}
		for _, c := range s {
			if !strings.ContainsRune(alphanumeric, c) {
				t.Fatalf("unexpected character %q", c)
			}
		}
	}
}

func TestPseudoWordGeneratorShape(t *testing.T) {
	saved := swapSmallCount(t, 200)
	defer saved()

	out, err := PseudoWordGenerator{}.Generate(Small)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, s := range out {
		if len(s) < 1 || len(s) > 28 {
			t.Fatalf("PseudoWordGenerator string length %d out of [1,28]", len(s))
		}
		for _, c := range s {
			if c < 'a' || c > 'z' {
				t.Fatalf("unexpected character %q", c)
			}
		}
	}
}

func TestFileGeneratorTruncatesAndFails(t *testing.T) {
	saved := swapSmallCount(t, 3)
	defer saved()

	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	if err := os.WriteFile(path, []byte("one\ntwo\nthree\nfour\n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	gen := FileGenerator{Path: path}
	out, err := gen.Generate(Small)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("got %d lines, want 3", len(out))
	}

	shortPath := filepath.Join(dir, "short.txt")
	if err := os.WriteFile(shortPath, []byte("one\ntwo\n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	_, err = FileGenerator{Path: shortPath}.Generate(Small)
	if err == nil {
		t.Fatalf("expected an error for a short file")
	}
	var genErr *GeneratorError
	if !asGeneratorError(err, &genErr) {
		t.Fatalf("expected *GeneratorError, got %T: %v", err, err)
	}
}

func TestFileGeneratorMissingFile(t *testing.T) {
	_, err := FileGenerator{Path: "/nonexistent/path/to/words.txt"}.Generate(Small)
	if err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}

func TestRosterSortsCorrectly(t *testing.T) {
	base := []string{"z", "m", "", "a", "d", "tt", "tt", "tt", "foo", "bar"}
	want := append([]string(nil), base...)
	sort.Strings(want)

	for _, runner := range Roster {
		t.Run(runner.Name, func(t *testing.T) {
			got := append([]string(nil), base...)
			runner.Sort(got)
			for i := range want {
				if got[i] != want[i] {
					t.Fatalf("%s: got %v, want %v", runner.Name, got, want)
				}
			}
		})
	}
}

func TestTrimmedMean(t *testing.T) {
	got := trimmedMean([]int64{5, 1, 100, 3, 4})
	// drop 1 and 100, mean of {3,4,5} = 4
	if got != 4 {
		t.Fatalf("trimmedMean = %d, want 4", got)
	}
}

func TestWarmupAndMeasureEndToEnd(t *testing.T) {
	saved := swapSmallCount(t, 40)
	defer saved()

	generators := []Generator{RandomGenerator{}, PseudoWordGenerator{}}
	var stderr bytes.Buffer
	Warmup(generators, Roster, &stderr)
	if stderr.Len() != 0 {
		t.Fatalf("unexpected warmup errors: %s", stderr.String())
	}

	results := Measure(generators, []DataSize{Small}, Roster, &stderr)
	if len(results) != len(generators)*len(Roster) {
		t.Fatalf("got %d results, want %d", len(results), len(generators)*len(Roster))
	}

	var report bytes.Buffer
	WriteReport(&report, results)
	if !strings.Contains(report.String(), "Random") || !strings.Contains(report.String(), "Multikey 2") {
		t.Fatalf("report missing expected content: %s", report.String())
	}
}

func TestMeasureSkipsFailingGenerator(t *testing.T) {
	saved := swapSmallCount(t, 5)
	defer saved()

	var stderr bytes.Buffer
	results := Measure([]Generator{FileGenerator{Path: "/nonexistent"}}, []DataSize{Small}, Roster, &stderr)
	if len(results) != 0 {
		t.Fatalf("expected no results for a failing generator, got %d", len(results))
	}
	if stderr.Len() == 0 {
		t.Fatalf("expected the generator failure to be reported")
	}
}

// swapSmallCount temporarily overrides what count(Small) returns via the
// package-level countOverride hook (see generators.go), restoring it
// when the returned func is called.
func swapSmallCount(t *testing.T, n int) func() {
	t.Helper()
	orig := countOverride
	countOverride = n
	return func() { countOverride = orig }
}
