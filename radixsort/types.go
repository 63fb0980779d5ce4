// Copyright 2009 The Go Authors.
// Copyright 2015 Randall Farmer.
// All rights reserved.
//
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package radixsort

import "bytes"

// Int64Slice, StringSlice and BytesSlice are the only concrete slice
// types this module needs: durations (timing samples), []string (the
// benchmark harness's Radix runner) and [][]byte (the same string sort
// over byte-slice keys).
// The broader Int32/Uint/Uint32/Uint64/Float32/Float64 zoo is dropped
// here — this module only ever sorts code-unit strings, plus the one
// non-negative int64 use (trimmed-mean timing) the driver needs.

// Int64Slice attaches the methods of Int64Interface to []int64, sorting
// non-negative values in increasing order.
type Int64Slice []int64

func (p Int64Slice) Len() int           { return len(p) }
func (p Int64Slice) Less(i, j int) bool { return p[i] < p[j] }
func (p Int64Slice) Swap(i, j int)      { p[i], p[j] = p[j], p[i] }
func (p Int64Slice) Key(i int) int64    { return p[i] }

// Sort is a convenience method.
func (p Int64Slice) Sort() { ByInt64(p) }

// StringSlice attaches the methods of StringInterface to []string,
// sorting in increasing order.
type StringSlice []string

func (p StringSlice) Len() int           { return len(p) }
func (p StringSlice) Less(i, j int) bool { return p[i] < p[j] }
func (p StringSlice) Swap(i, j int)      { p[i], p[j] = p[j], p[i] }
func (p StringSlice) Key(i int) string   { return p[i] }

// Sort is a convenience method.
func (p StringSlice) Sort() { ByString(p) }

// BytesSlice attaches the methods of BytesInterface to [][]byte, sorting
// in increasing order.
type BytesSlice [][]byte

func (p BytesSlice) Len() int           { return len(p) }
func (p BytesSlice) Less(i, j int) bool { return bytes.Compare(p[i], p[j]) == -1 }
func (p BytesSlice) Swap(i, j int)      { p[i], p[j] = p[j], p[i] }
func (p BytesSlice) Key(i int) []byte   { return p[i] }

// Sort is a convenience method.
func (p BytesSlice) Sort() { ByBytes(p) }

// Int64s sorts a slice of non-negative int64s in increasing order.
func Int64s(a []int64) { Int64Slice(a).Sort() }

// Strings sorts a slice of strings in increasing order.
func Strings(a []string) { StringSlice(a).Sort() }

// Bytes sorts a slice of byte slices in increasing order.
func Bytes(a [][]byte) { BytesSlice(a).Sort() }

// Int64sAreSorted reports whether a is sorted in increasing order.
func Int64sAreSorted(a []int64) bool { return IsSorted(Int64Slice(a)) }

// StringsAreSorted reports whether a is sorted in increasing order.
func StringsAreSorted(a []string) bool { return IsSorted(StringSlice(a)) }

// BytesAreSorted reports whether a is sorted in increasing order.
func BytesAreSorted(a [][]byte) bool { return IsSorted(BytesSlice(a)) }
