package bench

import (
	"sort"

	"github.com/multikey/stringsort/burstsort"
	"github.com/multikey/stringsort/multikey"
	"github.com/multikey/stringsort/radixsort"
)

// Runner pairs a display name with an in-place sort operation. The
// roster is a small closed set of algorithms, so it's represented as
// tagged values rather than a class hierarchy.
type Runner struct {
	Name string
	Sort func([]string)
}

// Roster is the harness's fixed set of runners, plus a supplemental
// Radix runner appended at the end so the five named runners stay
// intact as a prefix.
var Roster = []Runner{
	{Name: "Mergesort", Sort: mergeSort},
	{Name: "Quicksort", Sort: quickSortRunner},
	{Name: "Multikey 1", Sort: multikey.Multikey1},
	{Name: "Multikey 2", Sort: multikey.Multikey2},
	{Name: "Burstsort", Sort: burstsort.Sort},
	{Name: "Radix", Sort: radixsort.Strings},
}

// quickSortRunner adapts the radixsort package's Bentley-McIlroy
// quicksort, which operates on a sort.Interface range, to the roster's
// []string signature.
func quickSortRunner(strs []string) {
	if len(strs) < 2 {
		return
	}
	radixsort.Quicksort(sort.StringSlice(strs), 0, len(strs))
}

// mergeSort is a standard top-down mergesort baseline, written fresh:
// cut over to insertion sort under the same small-range threshold the
// multikey sorters use, for the same reason.
func mergeSort(strs []string) {
	if len(strs) < 2 {
		return
	}
	buf := make([]string, len(strs))
	mergeSortRange(strs, buf, 0, len(strs))
}

func mergeSortRange(strs, buf []string, lo, hi int) {
	if hi-lo < 8 {
		insertionSortRange(strs, lo, hi)
		return
	}
	mid := lo + (hi-lo)/2
	mergeSortRange(strs, buf, lo, mid)
	mergeSortRange(strs, buf, mid, hi)

	copy(buf[lo:hi], strs[lo:hi])
	i, j := lo, mid
	for k := lo; k < hi; k++ {
		switch {
		case i >= mid:
			strs[k] = buf[j]
			j++
		case j >= hi:
			strs[k] = buf[i]
			i++
		case buf[i] <= buf[j]:
			strs[k] = buf[i]
			i++
		default:
			strs[k] = buf[j]
			j++
		}
	}
}

func insertionSortRange(strs []string, lo, hi int) {
	for i := lo + 1; i < hi; i++ {
		for j := i; j > lo && strs[j] < strs[j-1]; j-- {
			strs[j], strs[j-1] = strs[j-1], strs[j]
		}
	}
}
