// SPDX-License-Identifier: MIT

package codec

import (
	"fmt"
	"math"

	"github.com/fxamacker/cbor/v2"

	"github.com/wmayner/marbl/tensor"
)

const cborName = "cbor"

type cborCodec struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

// CBOR returns a codec producing RFC 8949 core deterministic CBOR, with
// floats kept at 64 bits. Modes are built once; the codec is safe for
// concurrent use.
func CBOR() Codec {
	return defaultCBOR
}

var defaultCBOR = newCBOR()

func newCBOR() cborCodec {
	eo := cbor.CoreDetEncOptions()
	eo.ShortestFloat = cbor.ShortestFloatNone
	em, err := eo.EncMode()
	if err != nil {
		panic(fmt.Sprintf("codec: cbor encode options: %v", err))
	}

	dm, err := cbor.DecOptions{
		MaxNestedLevels: MaxDepth,
		IndefLength:     cbor.IndefLengthForbidden,
	}.DecMode()
	if err != nil {
		panic(fmt.Sprintf("codec: cbor decode options: %v", err))
	}

	return cborCodec{enc: em, dec: dm}
}

func (cborCodec) Name() string { return cborName }

func (c cborCodec) Encode(n tensor.Node) ([]byte, error) {
	b, err := c.enc.Marshal(toCBORValue(n))
	if err != nil {
		return nil, fmt.Errorf("codec: cbor encode: %w", err)
	}

	return b, nil
}

// toCBORValue maps the tree onto the types the encoder knows.
func toCBORValue(n tensor.Node) any {
	switch n.Kind() {
	case tensor.KindSequence:
		out := make([]any, n.Len())
		for i := range out {
			out[i] = toCBORValue(n.At(i))
		}
		return out
	case tensor.KindInt:
		v, _ := n.IntValue()
		return v
	default:
		return n.Value()
	}
}

func (c cborCodec) Decode(data []byte) (tensor.Node, error) {
	var v any
	// Unmarshal rejects trailing bytes with ExtraneousDataError.
	if err := c.dec.Unmarshal(data, &v); err != nil {
		return tensor.Node{}, decodeErrorf(cborName, "%v", err)
	}

	return fromCBORValue(v)
}

func fromCBORValue(v any) (tensor.Node, error) {
	switch x := v.(type) {
	case []any:
		items := make([]tensor.Node, len(x))
		for i, it := range x {
			n, err := fromCBORValue(it)
			if err != nil {
				return tensor.Node{}, err
			}
			items[i] = n
		}
		return tensor.NewSequence(items...), nil
	case float64:
		return tensor.NewFloat(x), nil
	case uint64:
		if x > math.MaxInt64 {
			return tensor.Node{}, decodeErrorf(cborName, "integer %d overflows int64", x)
		}
		return tensor.NewInt(int64(x)), nil
	case int64:
		return tensor.NewInt(x), nil
	default:
		return tensor.Node{}, decodeErrorf(cborName, "unsupported item of type %T", v)
	}
}
