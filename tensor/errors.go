// SPDX-License-Identifier: MIT
// Package tensor: sentinel error set.
// Every message is prefixed with "tensor: ..." and callers match with
// errors.Is. Context is added with fmt.Errorf("ctx: %w", ErrX) at the call
// site; the sentinels themselves are never re-created.

package tensor

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTensor is returned when an array is ragged (inconsistent
	// per-axis lengths), has an empty axis, contains a non-numeric or
	// non-finite leaf, or when shape and data disagree.
	ErrInvalidTensor = errors.New("tensor: invalid tensor")

	// ErrAxisOutOfRange indicates an axis, index or permutation entry outside
	// the valid bounds of the tensor it is applied to.
	ErrAxisOutOfRange = errors.New("tensor: axis out of range")
)

// tensorErrorf wraps a sentinel with the name of the failing operation.
func tensorErrorf(op string, err error, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %s", op, err, fmt.Sprintf(format, args...))
}
