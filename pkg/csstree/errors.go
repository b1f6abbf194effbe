package csstree

import (
	"errors"
	"fmt"
)

// ErrUnsortedInput is returned by New when the supplied key sequence is not
// sorted non-decreasingly.
var ErrUnsortedInput = errors.New("csstree: input must be sorted non-decreasing")

// ErrBadNodeSize is returned by New when nodeSize is smaller than sizeof(K),
// or when the requested geometry would overflow a signed 64-bit size.
var ErrBadNodeSize = errors.New("csstree: invalid node size")

func errBadNodeSize(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrBadNodeSize, fmt.Sprintf(format, args...))
}
