package multikey

import (
	"math/rand"
	"time"
)

// Multikey1 sorts strs in place using the randomized-pivot multikey
// quicksort. It panics if strs is nil; an empty or single-element slice
// is a no-op.
//
// M1 seeds its own *rand.Rand from the wall clock on every call, so two
// calls are not reproducible runs of each other and concurrent calls from
// different goroutines don't race on a shared PRNG; the package-level
// math/rand source is never touched. Reproducibility isn't required for
// a sort used in benchmarking, but a caller that needs a deterministic
// run can use MKQSort/Multikey2 instead, which have no randomized
// component.
func Multikey1(strs []string) {
	if strs == nil {
		panic("multikey: Multikey1 called with a nil slice")
	}
	if len(strs) < 2 {
		return
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	mkqsort1(strs, 0, len(strs), 0, rng)
}

// Multikey2 sorts strs in place using the production multikey quicksort:
// median-of-three / pseudo-median-of-nine pivot selection and an
// insertion-sort cutoff for small ranges. It panics if strs is nil; an
// empty or single-element slice is a no-op.
func Multikey2(strs []string) {
	if strs == nil {
		panic("multikey: Multikey2 called with a nil slice")
	}
	if len(strs) < 2 {
		return
	}
	mkqsort2(strs, 0, len(strs), 0)
}

// MKQSort sorts strs[lo:hi] in place, comparing strings from character
// offset depth onward. It is the range- and depth-restricted entry point
// into the M2 engine.
func MKQSort(strs []string, lo, hi, depth int) {
	if hi-lo < 2 {
		return
	}
	mkqsort2(strs, lo, hi-lo, depth)
}

// Insertion sorts strs[lo:hi] in place using straight insertion,
// comparing strings from character offset depth onward.
func Insertion(strs []string, lo, hi, depth int) {
	insertionSort(strs, lo, hi, depth)
}

// MultikeyQuicksort gives the M2 engine a type-based entry point alongside
// the free functions above, for callers that prefer a value to pass around.
type MultikeyQuicksort struct{}

// Sort sorts strs in place: an in-place three-way string sort, depth 0,
// full range, identical in behavior to Multikey2.
func (MultikeyQuicksort) Sort(strs []string) { Multikey2(strs) }
