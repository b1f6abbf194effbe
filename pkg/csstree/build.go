package csstree

// buildInternal populates the internal-node buffer in reverse index order,
// so that every slot is resolved against already-final structure to its
// left and right. See spec 4.2 (Index Builder): each slot is assigned the
// largest key in the leaf slice that is the rightmost descendant of the
// slot's child subtree, with a wrap-around rule for the second half of the
// leaf array.
func buildInternal[K Ordered](leaves []K, g geometry) []K {
	m, s := g.internalCount, g.fanout
	if m == 0 {
		return nil
	}

	n := len(leaves)
	lastChunkSize := n - g.missingLeaves*s
	tree := make([]K, m*s)

	for i := m*s - 1; i >= 0; i-- {
		node := i / s
		child := node*(s+1) + 1 + i%s

		// Rightmost-descent: follow the last child until it escapes the
		// internal region, landing on the subtree's largest key.
		for child < m {
			child = child*(s+1) + s + 1
		}

		diff := int64(child-g.halfMarker) * int64(s)

		switch {
		case diff < 0:
			tree[i] = leaves[diff+int64(n)+int64(s)-1]
		case diff+int64(s)-1 < int64(lastChunkSize):
			tree[i] = leaves[diff+int64(s)-1]
		default:
			// Ancestor of the last (possibly partial) leaf node: fill with
			// the largest key in the first half of the tree.
			tree[i] = leaves[lastChunkSize-1]
		}
	}

	return tree
}
