// Package csstree implements a Cache-Sensitive Search Tree: a static,
// read-only, pointer-free multiway index over a sorted key sequence,
// following Rao & Ross (1998) "Cache conscious indexing for decision-support
// in main memory". Internal-node keys are packed into a single contiguous
// buffer sized in multiples of a node size chosen to match a CPU cache line,
// and lookup navigates that buffer by arithmetic alone — no pointers, no
// per-node headers.
package csstree

import (
	"cmp"
	"slices"
	"unsafe"
)

// Ordered is the key type contract: a totally ordered scalar comparable with
// strict less-than. This is exactly the standard library's cmp.Ordered.
type Ordered = cmp.Ordered

// Pos is a position into a Tree's leaf sequence. It is stable for the
// tree's lifetime. End returns the past-the-end sentinel.
type Pos int

// Tree is a built, immutable Cache-Sensitive Search Tree over keys of type
// K. Once constructed it is safe for concurrent use by any number of
// readers: nothing about it ever changes.
type Tree[K Ordered] interface {
	// Find returns a position into the leaf sequence holding a key equal to
	// key, or End() if no such key exists.
	Find(key K) Pos

	// At dereferences a position to its key. It panics if pos is out of
	// range, mirroring the source material's undefined iterator
	// dereference, but as a documented, immediate failure rather than a
	// silent out-of-bounds read.
	At(pos Pos) K

	// Begin returns the position of the first leaf in sorted order.
	Begin() Pos

	// End returns the past-the-end sentinel position.
	End() Pos

	// Size returns N, the number of leaves.
	Size() int

	// SizeInBytes returns the size, in bytes, of the internal-node buffer
	// only (M*s*sizeof(K)); it excludes the leaf array.
	SizeInBytes() int

	// Height returns the tree height h. A tree with no internal nodes (N <=
	// s) has height 0.
	Height() int

	// Leaves returns a copy of the sorted key sequence in its original
	// order.
	Leaves() []K
}

type tree[K Ordered] struct {
	leaves   []K
	internal []K
	geom     geometry
	nodeSize int
	keySize  int
}

// New constructs a Tree from data, which must already be sorted
// non-decreasingly, and nodeSize, the byte size of one internal node
// (typically a cache line or memory page). New copies data; the returned
// tree owns its own leaf sequence and is never mutated afterward.
//
// New fails with ErrUnsortedInput if data is not sorted, and with
// ErrBadNodeSize if nodeSize is smaller than sizeof(K) or if the resulting
// geometry would overflow.
func New[K Ordered](data []K, nodeSize int) (Tree[K], error) {
	if !slices.IsSorted(data) {
		return nil, ErrUnsortedInput
	}

	var zero K
	keySize := int(unsafe.Sizeof(zero))
	if nodeSize < keySize {
		return nil, errBadNodeSize("node size %d is smaller than sizeof(key) %d", nodeSize, keySize)
	}

	fanout := nodeSize / keySize
	leaves := slices.Clone(data)

	geom, err := computeGeometry(len(leaves), fanout)
	if err != nil {
		return nil, err
	}

	internal := buildInternal(leaves, geom)

	return &tree[K]{
		leaves:   leaves,
		internal: internal,
		geom:     geom,
		nodeSize: nodeSize,
		keySize:  keySize,
	}, nil
}

func (t *tree[K]) Find(key K) Pos {
	return t.find(key)
}

func (t *tree[K]) At(pos Pos) K {
	return t.leaves[pos]
}

func (t *tree[K]) Begin() Pos {
	return 0
}

func (t *tree[K]) End() Pos {
	return Pos(len(t.leaves))
}

func (t *tree[K]) Size() int {
	return len(t.leaves)
}

func (t *tree[K]) SizeInBytes() int {
	return len(t.internal) * t.keySize
}

func (t *tree[K]) Height() int {
	return t.geom.height
}

func (t *tree[K]) Leaves() []K {
	return slices.Clone(t.leaves)
}
