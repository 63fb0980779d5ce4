package radixsort

// SetQSortCutoff lowers the bail-to-quicksort threshold so tests can
// exercise the radix-sorting code paths on small slices, returning the
// previous value so callers can restore it.
func SetQSortCutoff(i int) int {
	orig := qSortCutoff
	qSortCutoff = i
	return orig
}

// Heapsort exposes heapSort for tests of the quicksort fallback.
func Heapsort(data interface {
	Len() int
	Less(i, j int) bool
	Swap(i, j int)
}, a, b int) {
	heapSort(data, a, b)
}
