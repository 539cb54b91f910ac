// SPDX-License-Identifier: MIT

package blanket

import (
	"fmt"

	"github.com/wmayner/marbl/digest"
	"github.com/wmayner/marbl/tensor"
)

// Packable is a value with a canonical tree form: *Blanket or *Multiset.
type Packable interface {
	Node() tensor.Node
}

// isNil catches typed nil pointers hidden in a Packable.
func isNil(v Packable) bool {
	switch x := v.(type) {
	case nil:
		return true
	case *Blanket:
		return x == nil
	case *Multiset:
		return x == nil
	default:
		return false
	}
}

// Pack encodes v with the configured codec (msgpack by default).
// Equal values always pack to identical bytes.
//
// Errors:
//   - ErrNilBlanket if v is nil.
func Pack(v Packable, opts ...Option) ([]byte, error) {
	if isNil(v) {
		return nil, fmt.Errorf("blanket.Pack: %w", ErrNilBlanket)
	}
	o := gatherOptions(opts...)

	data, err := o.codec.Encode(v.Node())
	if err != nil {
		return nil, fmt.Errorf("blanket.Pack: %w", err)
	}

	return data, nil
}

// Hash packs v and digests the bytes with the configured hasher
// (sha2-256 by default). Use Digest.Int for the integer digest.
//
// Errors:
//   - ErrNilBlanket if v is nil.
//   - digest.ErrDigest if hashing fails.
func Hash(v Packable, opts ...Option) (digest.Digest, error) {
	data, err := Pack(v, opts...)
	if err != nil {
		return digest.Digest{}, err
	}
	o := gatherOptions(opts...)

	d, err := digest.Compute(o.hasher, data)
	if err != nil {
		return digest.Digest{}, fmt.Errorf("blanket.Hash: %w", err)
	}

	return d, nil
}

// Unpack decodes a packed blanket. The data is trusted to be canonical
// already and is not normalized again (see FromCanonical).
//
// Errors (all wrap ErrDecode):
//   - malformed bytes or a tree that is not [node, [[axis, child], ...]];
//   - also ErrInvalidTensor for a ragged or non-finite TPM;
//   - also ErrAxisOutOfRange for an axis outside the child's rank.
func Unpack(data []byte, opts ...Option) (*Blanket, error) {
	o := gatherOptions(opts...)

	n, err := o.codec.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("blanket.Unpack: %w", err)
	}
	b, err := blanketFromNode(n)
	if err != nil {
		return nil, fmt.Errorf("blanket.Unpack: %w", err)
	}

	o.logger.Debug("blanket: unpacked",
		"codec", o.codec.Name(),
		"bytes", len(data),
		"children", len(b.children),
	)

	return b, nil
}

// UnpackMultiset decodes a packed multiset. Members are restored in the
// packed (canonical) order without normalization.
//
// Errors: as Unpack, for the outer sequence and for every member.
func UnpackMultiset(data []byte, opts ...Option) (*Multiset, error) {
	o := gatherOptions(opts...)

	n, err := o.codec.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("blanket.UnpackMultiset: %w", err)
	}
	if n.Kind() != tensor.KindSequence {
		return nil, fmt.Errorf("blanket.UnpackMultiset: %w: want a sequence of blankets, got %s", ErrDecode, n.Kind())
	}

	blankets := make([]*Blanket, n.Len())
	for i := range blankets {
		if blankets[i], err = blanketFromNode(n.At(i)); err != nil {
			return nil, fmt.Errorf("blanket.UnpackMultiset: entry %d: %w", i, err)
		}
	}

	o.logger.Debug("blanket: unpacked multiset",
		"codec", o.codec.Name(),
		"bytes", len(data),
		"blankets", len(blankets),
	)

	return NewMultiset(blankets)
}

// blanketFromNode checks the [node, [[axis, child], ...]] shape and
// rebuilds the blanket in pre-canonical mode.
func blanketFromNode(n tensor.Node) (*Blanket, error) {
	if n.Kind() != tensor.KindSequence || n.Len() != 2 {
		return nil, fmt.Errorf("%w: want [node, children], got %s", ErrDecode, n)
	}
	node, err := tensor.FromNode(n.At(0))
	if err != nil {
		return nil, fmt.Errorf("%w: node: %w", ErrDecode, err)
	}

	list := n.At(1)
	if list.Kind() != tensor.KindSequence {
		return nil, fmt.Errorf("%w: children: want a sequence, got %s", ErrDecode, list.Kind())
	}
	children := make([]AugmentedChild, list.Len())
	for i := range children {
		c := list.At(i)
		if c.Kind() != tensor.KindSequence || c.Len() != 2 {
			return nil, fmt.Errorf("%w: child %d: want [axis, tpm]", ErrDecode, i)
		}
		axis, ok := c.At(0).IntValue()
		if !ok {
			return nil, fmt.Errorf("%w: child %d: axis is a %s, want an integer", ErrDecode, i, c.At(0).Kind())
		}
		tpm, err := tensor.FromNode(c.At(1))
		if err != nil {
			return nil, fmt.Errorf("%w: child %d: %w", ErrDecode, i, err)
		}
		if err := tensor.ValidateAxis(int(axis), tpm.Rank()); err != nil || int64(int(axis)) != axis {
			return nil, fmt.Errorf("%w: child %d: %w: axis %d, rank %d", ErrDecode, i, ErrAxisOutOfRange, axis, tpm.Rank())
		}
		children[i] = AugmentedChild{Axis: int(axis), TPM: tpm}
	}

	return FromCanonical(node, children)
}
