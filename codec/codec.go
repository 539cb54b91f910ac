// SPDX-License-Identifier: MIT

package codec

import (
	"errors"
	"fmt"

	"github.com/wmayner/marbl/tensor"
)

// ErrDecode indicates bytes that are not a well-formed encoded tree.
var ErrDecode = errors.New("codec: malformed input")

// MaxDepth bounds the nesting accepted by decoders.
const MaxDepth = 64

// Codec encodes and decodes tagged trees.
type Codec interface {
	// Name identifies the codec in logs ("msgpack", "cbor").
	Name() string

	// Encode writes n deterministically.
	Encode(n tensor.Node) ([]byte, error)

	// Decode parses exactly one tree; trailing bytes are an error.
	Decode(data []byte) (tensor.Node, error)
}

// Default returns the codec used when none is configured.
func Default() Codec {
	return MsgPack()
}

// decodeErrorf wraps ErrDecode with codec name and cause.
func decodeErrorf(codec string, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrDecode, codec, fmt.Sprintf(format, args...))
}
