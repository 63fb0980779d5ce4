// Copyright 2009 The Go Authors.
// Copyright 2014-5 Randall Farmer.
// All rights reserved.
//
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package radixsort

import "sort"

// This is adapted from the standard library's sort.go, following Bentley
// and McIlroy, "Engineering a Sort Function," SP&E November 1993. It's
// kept range-restricted (sort a[lo:hi], not a whole sort.Interface) so
// the radix sort above can call it on sub-ranges without allocating a
// wrapper, and it is exported as Quicksort so the benchmark harness can
// run it directly as the roster's plain-quicksort baseline.

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func insertionSort(data sort.Interface, a, b int) {
	for i := a + 1; i < b; i++ {
		for j := i; j > a && data.Less(j, j-1); j-- {
			data.Swap(j, j-1)
		}
	}
}

func siftDown(data sort.Interface, lo, hi, first int) {
	root := lo
	for {
		child := 2*root + 1
		if child >= hi {
			break
		}
		if child+1 < hi && data.Less(first+child, first+child+1) {
			child++
		}
		if !data.Less(first+root, first+child) {
			return
		}
		data.Swap(first+root, first+child)
		root = child
	}
}

func heapSort(data sort.Interface, a, b int) {
	first := a
	lo := 0
	hi := b - a

	for i := (hi - 1) / 2; i >= 0; i-- {
		siftDown(data, i, hi, first)
	}
	for i := hi - 1; i >= 0; i-- {
		data.Swap(first, first+i)
		siftDown(data, lo, i, first)
	}
}

// medianOfThree returns the middle of the three indices.
func medianOfThree(data sort.Interface, a, b, c int) (med int) {
	c0, c1 := data.Less(a, b), data.Less(a, c)
	if c0 != c1 {
		return a
	}
	c2 := data.Less(b, c)
	if c1 != c2 {
		return c
	}
	return b
}

func swapRange(data sort.Interface, a, b, n int) {
	for i := 0; i < n; i++ {
		data.Swap(a+i, b+i)
	}
}

func doPivot(data sort.Interface, lo, hi int) (midlo, midhi int) {
	m := lo + (hi-lo)/2
	m1, m2, m3 := lo, m, hi-1
	if hi-lo > 40 {
		s := (hi - lo) / 8
		m1 = medianOfThree(data, lo, lo+s, lo+2*s)
		m2 = medianOfThree(data, m, m-s, m+s)
		m3 = medianOfThree(data, hi-1, hi-1-s, hi-1-2*s)
	}
	data.Swap(lo, medianOfThree(data, m1, m2, m3))

	pivot := lo
	a, b, c, d := lo+1, lo+1, hi, hi
	for {
		for b < c {
			if data.Less(b, pivot) {
				b++
			} else if !data.Less(pivot, b) {
				data.Swap(a, b)
				a++
				b++
			} else {
				break
			}
		}
		for b < c {
			if data.Less(pivot, c-1) {
				c--
			} else if !data.Less(c-1, pivot) {
				data.Swap(c-1, d-1)
				c--
				d--
			} else {
				break
			}
		}
		if b >= c {
			break
		}
		data.Swap(b, c-1)
		b++
		c--
	}

	n := min(b-a, a-lo)
	swapRange(data, lo, b-n, n)

	n = min(hi-d, d-c)
	swapRange(data, c, hi-n, n)

	return lo + b - a, hi - (d - c)
}

func quickSort(data sort.Interface, a, b, maxDepth int) {
	for b-a > 7 {
		if maxDepth == 0 {
			heapSort(data, a, b)
			return
		}
		maxDepth--
		mlo, mhi := doPivot(data, a, b)
		if mlo-a < b-mhi {
			quickSort(data, a, mlo, maxDepth)
			a = mhi
		} else {
			quickSort(data, mhi, b, maxDepth)
			b = mlo
		}
	}
	if b-a > 1 {
		insertionSort(data, a, b)
	}
}

// Quicksort sorts data[a:b] in place. It performs O(n*log(n)) comparisons
// and swaps; it is not stable. This is the benchmark harness's plain-
// quicksort baseline runner.
func Quicksort(data sort.Interface, a, b int) {
	n := b - a
	maxDepth := 0
	for i := n; i > 0; i >>= 1 {
		maxDepth++
	}
	maxDepth *= 2
	quickSort(data, a, b, maxDepth)
}

// IsSorted reports whether data is sorted.
func IsSorted(data sort.Interface) bool {
	return sort.IsSorted(data)
}
