// SPDX-License-Identifier: MIT

package codec

import (
	"bytes"
	"fmt"
	"math"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"

	"github.com/wmayner/marbl/tensor"
)

const msgpackName = "msgpack"

type msgpackCodec struct{}

// MsgPack returns the MessagePack codec.
// Sequences are arrays, float leaves are "float 64" (0xcb) and integer
// leaves use the compact int family (fixint for small axis indices).
func MsgPack() Codec {
	return msgpackCodec{}
}

func (msgpackCodec) Name() string { return msgpackName }

func (msgpackCodec) Encode(n tensor.Node) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	if err := encodeMsgpack(enc, n); err != nil {
		return nil, fmt.Errorf("codec: msgpack encode: %w", err)
	}

	return buf.Bytes(), nil
}

func encodeMsgpack(enc *msgpack.Encoder, n tensor.Node) error {
	switch n.Kind() {
	case tensor.KindSequence:
		if err := enc.EncodeArrayLen(n.Len()); err != nil {
			return err
		}
		for i := 0; i < n.Len(); i++ {
			if err := encodeMsgpack(enc, n.At(i)); err != nil {
				return err
			}
		}
		return nil
	case tensor.KindInt:
		v, _ := n.IntValue()
		return enc.EncodeInt(v)
	default:
		return enc.EncodeFloat64(n.Value())
	}
}

func (msgpackCodec) Decode(data []byte) (tensor.Node, error) {
	r := bytes.NewReader(data)
	dec := msgpack.NewDecoder(r)

	n, err := decodeMsgpack(dec, r, 0)
	if err != nil {
		return tensor.Node{}, err
	}
	if r.Len() != 0 {
		return tensor.Node{}, decodeErrorf(msgpackName, "%d trailing bytes", r.Len())
	}

	return n, nil
}

// decodeMsgpack reads one tree. r is the decoder's source, consulted to
// bound array preallocation by the bytes actually left.
func decodeMsgpack(dec *msgpack.Decoder, r *bytes.Reader, depth int) (tensor.Node, error) {
	if depth > MaxDepth {
		return tensor.Node{}, decodeErrorf(msgpackName, "nesting deeper than %d", MaxDepth)
	}
	c, err := dec.PeekCode()
	if err != nil {
		return tensor.Node{}, decodeErrorf(msgpackName, "%v", err)
	}

	switch {
	case msgpcode.IsFixedArray(c) || c == msgpcode.Array16 || c == msgpcode.Array32:
		n, err := dec.DecodeArrayLen()
		if err != nil {
			return tensor.Node{}, decodeErrorf(msgpackName, "%v", err)
		}
		if n > r.Len() {
			return tensor.Node{}, decodeErrorf(msgpackName, "array of %d items exceeds %d remaining bytes", n, r.Len())
		}
		items := make([]tensor.Node, n)
		for i := range items {
			if items[i], err = decodeMsgpack(dec, r, depth+1); err != nil {
				return tensor.Node{}, err
			}
		}
		return tensor.NewSequence(items...), nil

	case c == msgpcode.Float || c == msgpcode.Double:
		f, err := dec.DecodeFloat64()
		if err != nil {
			return tensor.Node{}, decodeErrorf(msgpackName, "%v", err)
		}
		return tensor.NewFloat(f), nil

	case c == msgpcode.Uint64:
		u, err := dec.DecodeUint64()
		if err != nil {
			return tensor.Node{}, decodeErrorf(msgpackName, "%v", err)
		}
		if u > math.MaxInt64 {
			return tensor.Node{}, decodeErrorf(msgpackName, "integer %d overflows int64", u)
		}
		return tensor.NewInt(int64(u)), nil

	case msgpcode.IsFixedNum(c),
		c == msgpcode.Uint8, c == msgpcode.Uint16, c == msgpcode.Uint32,
		c == msgpcode.Int8, c == msgpcode.Int16, c == msgpcode.Int32, c == msgpcode.Int64:
		v, err := dec.DecodeInt64()
		if err != nil {
			return tensor.Node{}, decodeErrorf(msgpackName, "%v", err)
		}
		return tensor.NewInt(v), nil

	default:
		return tensor.Node{}, decodeErrorf(msgpackName, "unexpected code 0x%02x", c)
	}
}
