package radixsort_test

import (
	"bytes"
	"math/rand"
	"sort"
	"testing"

	. "github.com/multikey/stringsort/radixsort"
)

var int64s = [...]int64{74, 59, 238, 784, 9845, 959, 905, 0, 0, 42, 7586, 5467984, 7586}
var strs = [...]string{"", "Hello", "foo", "bar", "foo", "f00", "%*&^*&^&", "***"}

func forceRadix(sortFn func()) {
	orig := SetQSortCutoff(1)
	defer SetQSortCutoff(orig)
	sortFn()
}

func TestSortInt64Slice(t *testing.T) {
	data := int64s
	a := Int64Slice(data[:])
	forceRadix(a.Sort)
	if !Int64sAreSorted(a) {
		t.Fatalf("not sorted: %v", []int64(a))
	}
	if a.Search(0) != 0 || a.Search(1e9) != len(a) {
		t.Fatalf("search failed")
	}
}

func TestSortStringSlice(t *testing.T) {
	data := strs
	a := StringSlice(data[:])
	forceRadix(a.Sort)
	if !StringsAreSorted(a) {
		t.Fatalf("not sorted: %v", []string(a))
	}
	want := append([]string(nil), data[:]...)
	sort.Strings(want)
	for i := range want {
		if a[i] != want[i] {
			t.Fatalf("got %v, want %v", []string(a), want)
		}
	}
}

func TestSortBytesSlice(t *testing.T) {
	a := make(BytesSlice, len(strs))
	for i, s := range strs {
		a[i] = []byte(s)
	}
	forceRadix(a.Sort)
	if !BytesAreSorted(a) {
		t.Fatalf("not sorted")
	}
	for i := 1; i < len(a); i++ {
		if bytes.Compare(a[i-1], a[i]) > 0 {
			t.Fatalf("out of order at %d", i)
		}
	}
}

func TestRandomStringsLargeEnoughToRadix(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	a := make(StringSlice, 5000)
	alphabet := "abcdefghijklmnopqrstuvwxyz"
	for i := range a {
		n := rng.Intn(20)
		b := make([]byte, n)
		for j := range b {
			b[j] = alphabet[rng.Intn(len(alphabet))]
		}
		a[i] = string(b)
	}
	a.Sort()
	if !StringsAreSorted(a) {
		t.Fatalf("large random string slice not sorted")
	}
}

func TestQuicksortBaseline(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	a := make(sort.IntSlice, 500)
	for i := range a {
		a[i] = rng.Intn(10000)
	}
	Quicksort(a, 0, len(a))
	if !sort.IsSorted(a) {
		t.Fatalf("Quicksort baseline produced unsorted output")
	}
}

func TestSearch(t *testing.T) {
	a := []int64{1, 2, 2, 4, 8}
	if got := SearchInt64s(a, 4); got != 3 {
		t.Fatalf("SearchInt64s(4) = %d, want 3", got)
	}
	if got := Search(len(a), func(i int) bool { return a[i] >= 100 }); got != len(a) {
		t.Fatalf("Search past the end = %d, want %d", got, len(a))
	}
}
