// Package burstsort is a burst-trie string sort, one of the roster of
// sorters the benchmark harness compares against the multikey quicksort
// variants: a character-indexed trie, bucketing strings the same way the
// multikey sorters' CharAt does, but as a persistent tree of buckets
// instead of in-place array partitions.
//
// Every node's bucket holds strings whose first characters, from the
// node's depth down, have all matched. A bucket bursts into 256 child
// buckets (one per byte value, plus a terminal slot for strings that end
// exactly at this depth) once it grows past burstThreshold. Small
// buckets are sorted with straight insertion rather than bursting
// further, for the same reason the multikey sorters have an insertion-sort
// cutoff (there at 8 strings, here at burstThreshold): below a certain
// size, comparison sort beats another level of bucketing.
package burstsort

const burstThreshold = 64

type node struct {
	// terminal holds strings that end exactly at this node's depth (the
	// zero-sentinel bucket: charAt would return 0 for all of them here).
	terminal []string
	// bucket holds strings not yet distributed to a child, keyed by
	// their next character. Nil once the node has burst.
	bucket []string
	// children is non-nil once bucket has burst past burstThreshold.
	children [256]*node
	burst    bool
}

func (n *node) insert(s string, depth int) {
	if n.burst {
		if depth >= len(s) {
			n.terminal = append(n.terminal, s)
			return
		}
		c := s[depth]
		if n.children[c] == nil {
			n.children[c] = &node{}
		}
		n.children[c].insert(s, depth+1)
		return
	}
	if depth >= len(s) {
		n.terminal = append(n.terminal, s)
		return
	}
	n.bucket = append(n.bucket, s)
	if len(n.bucket) > burstThreshold {
		n.burstBucket(depth)
	}
}

// burstBucket redistributes n's flat bucket into per-character children,
// one level deeper, then discards the flat bucket.
func (n *node) burstBucket(depth int) {
	pending := n.bucket
	n.bucket = nil
	n.burst = true
	for _, s := range pending {
		if depth >= len(s) {
			n.terminal = append(n.terminal, s)
			continue
		}
		c := s[depth]
		if n.children[c] == nil {
			n.children[c] = &node{}
		}
		n.children[c].insert(s, depth+1)
	}
}

// collect appends this node's strings, in sorted order, to out.
func (n *node) collect(out []string) []string {
	out = append(out, n.terminal...)
	if n.burst {
		for _, child := range n.children {
			if child != nil {
				out = child.collect(out)
			}
		}
		return out
	}
	insertionSort(n.bucket)
	return append(out, n.bucket...)
}

func insertionSort(strs []string) {
	for i := 1; i < len(strs); i++ {
		for j := i; j > 0 && strs[j] < strs[j-1]; j-- {
			strs[j], strs[j-1] = strs[j-1], strs[j]
		}
	}
}

// Sort sorts strs in place using a burst trie. It panics if strs is nil;
// an empty or single-element slice is a no-op. This is the benchmark
// harness's Burstsort runner.
func Sort(strs []string) {
	if strs == nil {
		panic("burstsort: Sort called with a nil slice")
	}
	if len(strs) < 2 {
		return
	}
	root := &node{}
	for _, s := range strs {
		root.insert(s, 0)
	}
	out := root.collect(make([]string, 0, len(strs)))
	copy(strs, out)
}
