// Copyright 2014-5 Randall Farmer. All rights reserved.
//
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package radixsort is a byte-indexed LSD radix sort for strings, byte
// slices, and int64s, trimmed from a general-purpose sort library down to
// the surface this module's benchmark harness actually needs: sorting
// the workloads it generates (ByString; ByBytes is the same sort over
// []byte keys) and sorting its own timing samples (ByInt64). It also carries the Bentley-McIlroy quicksort
// the radix sort falls back to on small ranges, exported as Quicksort so
// the benchmark harness can run it as a baseline runner in its own right.
package radixsort

import (
	"sync"
)

const radix = 8
const mask = (1 << radix) - 1

// qSortCutoff is when radix sorting bails out to the quicksort baseline.
var qSortCutoff = 1 << 7

// maxRadixDepth limits how deeply the radix part of a string sort can
// recurse before bailing to quicksort; each level of recursion costs
// stack space proportional to the bucket table it carries.
const maxRadixDepth = 32

// byteTbl is a reusable count/offset table for one byte position.
type byteTbl *[256]int

var byteTblPool = sync.Pool{New: func() interface{} { return byteTbl(new([256]int)) }}

// Int64Interface is implemented by collections that can be radix-sorted
// by a non-negative int64 key.
type Int64Interface interface {
	Len() int
	Less(i, j int) bool
	Swap(i, j int)
	Key(i int) int64
}

// StringInterface is implemented by collections that can be radix-sorted
// by a string key.
type StringInterface interface {
	Len() int
	Less(i, j int) bool
	Swap(i, j int)
	Key(i int) string
}

// BytesInterface is implemented by collections that can be radix-sorted
// by a []byte key.
type BytesInterface interface {
	Len() int
	Less(i, j int) bool
	Swap(i, j int)
	Key(i int) []byte
}

// ByInt64 sorts data by a non-negative int64 key, such as the elapsed-
// millisecond timing samples the benchmark driver collects.
func ByInt64(data Int64Interface) {
	l := data.Len()
	radixSortUint64(data, guessShift(data, l), 0, l)
}

// ByString sorts data by a string key.
func ByString(data StringInterface) {
	bucketEnds := byteTblPool.Get().(byteTbl)
	defer byteTblPool.Put(bucketEnds)
	l := data.Len()
	radixSortString(data, 0, 0, l, 0, bucketEnds)
}

// ByBytes sorts data by a []byte key.
func ByBytes(data BytesInterface) {
	bucketEnds := byteTblPool.Get().(byteTbl)
	defer byteTblPool.Put(bucketEnds)
	l := data.Len()
	radixSortBytes(data, 0, 0, l, 0, bucketEnds)
}

// guessShift saves a pass when the keys are tightly clustered, by
// sampling a stride of the data and estimating how many low bits differ.
func guessShift(data Int64Interface, l int) uint {
	if l < qSortCutoff {
		return 64 - radix
	}
	step := l >> 5
	if step == 0 {
		step = 1
	}
	min := uint64(data.Key(l - 1))
	max := min
	for i := 0; i < l; i += step {
		k := uint64(data.Key(i))
		if k < min {
			min = k
		}
		if k > max {
			max = k
		}
	}
	diff := min ^ max
	log2diff := 0
	for diff != 0 {
		log2diff++
		diff >>= 1
	}
	if log2diff < 64 {
		log2diff++ // margin for a uniform distribution's 1-bit-low estimate
	}
	shiftGuess := log2diff - radix
	if shiftGuess < 0 {
		return 0
	}
	return uint(shiftGuess)
}

// radixSortUint64 does a counting pass and a swapping pass over the
// low-order `radix` bits at shift, then recurses; it bails to the
// quicksort baseline for small buckets and for all-equal keys.
func radixSortUint64(data Int64Interface, shift uint, a, b int) {
	if b-a < qSortCutoff {
		Quicksort(wrapLess{data}, a, b)
		return
	}

	var bucketStarts, bucketEnds [1 << radix]int
	min := uint64(data.Key(a))
	max := min
	for i := a; i < b; i++ {
		k := uint64(data.Key(i))
		bucketStarts[(k>>shift)&mask]++
		if k < min {
			min = k
		}
		if k > max {
			max = k
		}
	}

	diff := min ^ max
	if diff == 0 {
		Quicksort(wrapLess{data}, a, b)
		return
	}
	if diff>>shift == 0 || diff>>(shift+radix) != 0 {
		log2diff := 0
		for diff != 0 {
			log2diff++
			diff >>= 1
		}
		nextShift := log2diff - radix
		if nextShift < 0 {
			nextShift = 0
		}
		radixSortUint64(data, uint(nextShift), a, b)
		return
	}

	pos := a
	for i, c := range bucketStarts {
		bucketStarts[i] = pos
		pos += c
		bucketEnds[i] = pos
	}

	for curBucket, bucketEnd := range bucketEnds {
		i := bucketStarts[curBucket]
		for i < bucketEnd {
			destBucket := (uint64(data.Key(i)) >> shift) & mask
			if destBucket == uint64(curBucket) {
				i++
				bucketStarts[destBucket]++
				continue
			}
			data.Swap(i, bucketStarts[destBucket])
			bucketStarts[destBucket]++
		}
	}

	if shift == 0 {
		pos = a
		for _, end := range bucketEnds {
			if end > pos+1 {
				Quicksort(wrapLess{data}, pos, end)
			}
			pos = end
		}
		return
	}

	nextShift := shift - radix
	if shift < radix {
		nextShift = 0
	}
	pos = a
	for _, end := range bucketEnds {
		if end > pos+1 {
			radixSortUint64(data, nextShift, pos, end)
		}
		pos = end
	}
}

func radixSortString(data StringInterface, offset, a, b, depth int, bucketEnds byteTbl) {
	if b-a < qSortCutoff || depth == maxRadixDepth {
		Quicksort(wrapLess{data}, a, b)
		return
	}

	bucketStarts := [256]int{}
	aStart := a
	for i := a; i < b; i++ {
		k := data.Key(i)
		if len(k) <= offset {
			data.Swap(a, i)
			a++
			continue
		}
		bucketStarts[k[offset]]++
	}

	if a-aStart > 1 {
		Quicksort(wrapLess{data}, aStart, a)
	}

	pos := a
	for i, c := range bucketStarts {
		bucketStarts[i] = pos
		pos += c
		bucketEnds[i] = pos
		if bucketStarts[i] == a && bucketEnds[i] == b {
			radixSortString(data, offset+1, a, b, depth+1, bucketEnds)
			return
		}
	}

	for curBucket, bucketEnd := range bucketEnds {
		i := bucketStarts[curBucket]
		for i < bucketEnd {
			destBucket := data.Key(i)[offset]
			if destBucket == byte(curBucket) {
				i++
				bucketStarts[destBucket]++
				continue
			}
			data.Swap(i, bucketStarts[destBucket])
			bucketStarts[destBucket]++
		}
	}

	pos = a
	for _, end := range bucketStarts {
		if end > pos+1 {
			radixSortString(data, offset+1, pos, end, depth+1, bucketEnds)
		}
		pos = end
	}
}

func radixSortBytes(data BytesInterface, offset, a, b, depth int, bucketEnds byteTbl) {
	if b-a < qSortCutoff || depth == maxRadixDepth {
		Quicksort(wrapLess{data}, a, b)
		return
	}

	bucketStarts := [256]int{}
	aStart := a
	for i := a; i < b; i++ {
		k := data.Key(i)
		if len(k) <= offset {
			data.Swap(a, i)
			a++
			continue
		}
		bucketStarts[k[offset]]++
	}

	if a-aStart > 1 {
		Quicksort(wrapLess{data}, aStart, a)
	}

	pos := a
	for i, c := range bucketStarts {
		bucketStarts[i] = pos
		pos += c
		bucketEnds[i] = pos
		if bucketStarts[i] == a && bucketEnds[i] == b {
			radixSortBytes(data, offset+1, a, b, depth+1, bucketEnds)
			return
		}
	}

	for curBucket, bucketEnd := range bucketEnds {
		i := bucketStarts[curBucket]
		for i < bucketEnd {
			destBucket := data.Key(i)[offset]
			if destBucket == byte(curBucket) {
				i++
				bucketStarts[destBucket]++
				continue
			}
			data.Swap(i, bucketStarts[destBucket])
			bucketStarts[destBucket]++
		}
	}

	pos = a
	for _, end := range bucketStarts {
		if end > pos+1 {
			radixSortBytes(data, offset+1, pos, end, depth+1, bucketEnds)
		}
		pos = end
	}
}

// wrapLess adapts any of the three key interfaces to sort.Interface so
// the quicksort fallback can operate on them without knowing about keys.
type wrapLess struct {
	data interface {
		Len() int
		Less(i, j int) bool
		Swap(i, j int)
	}
}

func (w wrapLess) Len() int           { return w.data.Len() }
func (w wrapLess) Less(i, j int) bool { return w.data.Less(i, j) }
func (w wrapLess) Swap(i, j int)      { w.data.Swap(i, j) }
