package csstree

import "slices"

// binaryScanThreshold is the node-size cutoff (in bytes) above which the
// searcher uses binary search within a node instead of a linear scan. Nodes
// this large hold enough keys that a linear scan starts to lose to a
// branch-predictable binary search; below it, scanning a handful of keys
// that are already in cache beats the overhead of branching search.
const binaryScanThreshold = 256

// find descends the internal buffer arithmetically and resolves the
// surviving leaf slice. See spec 4.3 (Searcher).
func (t *tree[K]) find(key K) Pos {
	n := len(t.leaves)
	s := t.geom.fanout

	if t.geom.internalCount == 0 {
		return t.scanLeaves(0, n, key)
	}

	child := 0
	for child < t.geom.internalCount {
		base := child * s
		node := t.internal[base : base+s]

		var lo int
		if t.nodeSize > binaryScanThreshold {
			// slices.BinarySearchFunc's postcondition already returns a
			// value in [0, s]; the "one past the node" case is simply s
			// itself and needs no further clamping.
			lo, _ = slices.BinarySearchFunc(node, key, compare[K])
		} else {
			for lo < s && node[lo] < key {
				lo++
			}
		}

		child = child*(s+1) + 1 + lo
	}

	diff := int64(child-t.geom.halfMarker) * int64(s)
	if diff < 0 {
		diff += int64(n)
	}

	a := minInt(n, int(diff))
	b := minInt(n, int(diff)+s)
	return t.scanLeaves(a, b, key)
}

// scanLeaves linear-scans leaves[lo:hi] for the first key >= key, testing
// the bound before dereferencing so an exhausted scan (no key >= key) never
// reads past hi.
func (t *tree[K]) scanLeaves(lo, hi int, key K) Pos {
	p := lo
	for p < hi && t.leaves[p] < key {
		p++
	}
	if p < hi && t.leaves[p] == key {
		return Pos(p)
	}
	return Pos(len(t.leaves))
}

func compare[K Ordered](a, b K) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
