// SPDX-License-Identifier: MIT

package blanket

import (
	"errors"

	"github.com/wmayner/marbl/codec"
	"github.com/wmayner/marbl/tensor"
)

// ErrNilBlanket is returned when a nil *Blanket or *Multiset is used where
// a value is required.
var ErrNilBlanket = errors.New("blanket: nil blanket")

// Aliases of collaborator sentinels, so callers matching errors from this
// package need a single import.
var (
	ErrInvalidTensor  = tensor.ErrInvalidTensor
	ErrAxisOutOfRange = tensor.ErrAxisOutOfRange
	ErrDecode         = codec.ErrDecode
)
