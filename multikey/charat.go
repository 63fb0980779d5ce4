// Copyright 2014-5 Randall Farmer. All rights reserved.
//
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package multikey implements three-way multikey quicksort for strings:
// a randomized-pivot pedagogical form (Multikey1) and a production form
// with median-of-three/pseudo-median-of-nine pivot selection and a small-
// range insertion sort cutoff (Multikey2).
//
// Both variants compare strings one character at a time at an increasing
// depth, treating every string as if it were zero-padded to infinity, so
// a proper prefix always sorts before its extensions and "" sorts before
// everything. Sorting is not stable.
package multikey

// charAt returns the character of s at offset d, or the sentinel 0 if d
// is past the end of s. Every comparison in this package goes through
// here, so this is what makes "" sort first and a prefix sort before
// its extensions.
func charAt(s string, d int) byte {
	if d < len(s) {
		return s[d]
	}
	return 0
}
