// Copyright 2010 The Go Authors.
// Copyright 2015 Randall Farmer.
// All rights reserved.
//
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package radixsort

import (
	"bytes"
	"sort"
)

// Search calls sort.Search; consult its description.
func Search(n int, f func(int) bool) int { return sort.Search(n, f) }

// SearchInt64s searches a, which must be sorted in increasing order.
func SearchInt64s(a []int64, x int64) int {
	return Search(len(a), func(i int) bool { return a[i] >= x })
}

// Search returns the result of applying SearchInt64s to the receiver and x.
func (p Int64Slice) Search(x int64) int { return SearchInt64s(p, x) }

// SearchStrings searches a, which must be sorted in increasing order.
func SearchStrings(a []string, x string) int {
	return Search(len(a), func(i int) bool { return a[i] >= x })
}

// Search returns the result of applying SearchStrings to the receiver and x.
func (p StringSlice) Search(x string) int { return SearchStrings(p, x) }

// SearchBytes searches a, which must be sorted in increasing order.
func SearchBytes(a [][]byte, x []byte) int {
	return Search(len(a), func(i int) bool { return bytes.Compare(a[i], x) >= 0 })
}

// Search returns the result of applying SearchBytes to the receiver and x.
func (p BytesSlice) Search(x []byte) int { return SearchBytes(p, x) }
