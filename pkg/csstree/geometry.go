package csstree

import "math"

// geometry holds the four scalars the builder and searcher are derived from:
// fanout (keys per internal node), tree height, the number of materialized
// internal nodes and the half marker that splits child indices between the
// first and second half of the leaf array. See Rao & Ross (1998) section 3.
type geometry struct {
	fanout        int // s
	height        int // h
	internalCount int // M
	halfMarker    int // H
	missingLeaves int // D
}

// computeGeometry derives tree geometry from the leaf count n and fanout s,
// using only integer arithmetic: the smallest h with (s+1)^h >= leafNodes is
// found by repeated multiplication rather than floating-point log/pow, which
// would risk off-by-one rounding for large n.
func computeGeometry(n, fanout int) (geometry, error) {
	leafNodes := ceilDiv(n, fanout)
	if leafNodes <= 1 {
		return geometry{fanout: fanout}, nil
	}

	height := 0
	capacity := 1
	for capacity < leafNodes {
		if capacity > math.MaxInt64/(fanout+1) {
			return geometry{}, errBadNodeSize("tree capacity overflows for n=%d, fanout=%d", n, fanout)
		}
		capacity *= fanout + 1
		height++
	}
	e := capacity

	d := (e - leafNodes) / fanout
	m := (e-1)/fanout - d
	h := (e - 1) / fanout

	return geometry{
		fanout:        fanout,
		height:        height,
		internalCount: m,
		halfMarker:    h,
		missingLeaves: d,
	}, nil
}

func ceilDiv(a, b int) int {
	if a == 0 {
		return 0
	}
	return (a + b - 1) / b
}
