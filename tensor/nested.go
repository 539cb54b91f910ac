// SPDX-License-Identifier: MIT
// Package tensor: ingestion from and export to nested Go values.
//
// Ingestion walks the input depth-first. The first descent along index 0
// fixes the shape; every later sequence must match the recorded length at
// its depth and every leaf must sit at the recorded leaf depth. Anything
// else is ragged and rejected with ErrInvalidTensor.

package tensor

import (
	"reflect"
)

// ingest accumulates shape and row-major leaves during a walk.
type ingest struct {
	shape     []int
	data      []float64
	leafDepth int // -1 until the first leaf is seen
}

func newIngest() *ingest {
	return &ingest{leafDepth: -1}
}

// sequence records a sequence of length n at depth.
func (in *ingest) sequence(depth, n int) error {
	if in.leafDepth >= 0 && depth >= in.leafDepth {
		return tensorErrorf("ingest", ErrInvalidTensor, "ragged: sequence at leaf depth %d", depth)
	}
	if n == 0 {
		return tensorErrorf("ingest", ErrInvalidTensor, "empty sequence at depth %d", depth)
	}
	if depth == len(in.shape) {
		in.shape = append(in.shape, n) // first visit fixes this axis
		return nil
	}
	if in.shape[depth] != n {
		return tensorErrorf("ingest", ErrInvalidTensor, "ragged: length %d at depth %d, want %d", n, depth, in.shape[depth])
	}

	return nil
}

// leaf records a numeric leaf at depth.
func (in *ingest) leaf(depth int, v float64) error {
	if in.leafDepth < 0 {
		in.leafDepth = depth
	}
	if depth != in.leafDepth || depth != len(in.shape) {
		return tensorErrorf("ingest", ErrInvalidTensor, "ragged: leaf at depth %d, want %d", depth, in.leafDepth)
	}
	if isNonFinite(v) {
		return tensorErrorf("ingest", ErrInvalidTensor, "non-finite leaf %v", v)
	}
	in.data = append(in.data, canonicalZero(v))

	return nil
}

// node walks a tagged tree.
func (in *ingest) node(n Node, depth int) error {
	if n.IsNumeric() {
		return in.leaf(depth, n.Value())
	}
	if err := in.sequence(depth, n.Len()); err != nil {
		return err
	}
	for _, item := range n.items {
		if err := in.node(item, depth+1); err != nil {
			return err
		}
	}

	return nil
}

// value walks an arbitrary Go value through reflection.
func (in *ingest) value(v reflect.Value, depth int) error {
	for v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return tensorErrorf("ingest", ErrInvalidTensor, "nil at depth %d", depth)
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		n := v.Len()
		if err := in.sequence(depth, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := in.value(v.Index(i), depth+1); err != nil {
				return err
			}
		}
		return nil
	case reflect.Float32, reflect.Float64:
		return in.leaf(depth, v.Float())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return in.leaf(depth, float64(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return in.leaf(depth, float64(v.Uint()))
	default:
		return tensorErrorf("ingest", ErrInvalidTensor, "non-numeric leaf of type %s", v.Type())
	}
}

// finish turns the accumulated walk into a Tensor.
func (in *ingest) finish(op string) (*Tensor, error) {
	if in.leafDepth < 0 {
		return nil, tensorErrorf(op, ErrInvalidTensor, "no leaves")
	}

	return newOwned(in.shape, in.data), nil
}

// FromNested builds a Tensor from nested Go values: numeric scalars,
// slices or arrays of them ([]float64, [][]float64, [2][2]float64, ...),
// []any trees as produced by generic decoders, a Node, or a *Tensor (copied).
//
// Returns ErrInvalidTensor for ragged input, empty sequences, nil values,
// non-numeric leaves (strings, bools, maps...) and NaN/±Inf.
// Complexity: O(size).
func FromNested(v any) (*Tensor, error) {
	switch x := v.(type) {
	case *Tensor:
		if x == nil {
			return nil, tensorErrorf("FromNested", ErrInvalidTensor, "nil tensor")
		}
		return newOwned(x.Shape(), x.Data()), nil
	case Node:
		return FromNode(x)
	case nil:
		return nil, tensorErrorf("FromNested", ErrInvalidTensor, "nil value")
	}

	in := newIngest()
	if err := in.value(reflect.ValueOf(v), 0); err != nil {
		return nil, err
	}

	return in.finish("FromNested")
}

// Nested exports t as float64 (rank 0) or nested []any whose leaves are
// float64. The result shares nothing with t.
// Complexity: O(size).
func (t *Tensor) Nested() any {
	return t.nestedAt(0, 0)
}

func (t *Tensor) nestedAt(depth, off int) any {
	if depth == len(t.shape) {
		return t.data[off]
	}
	out := make([]any, t.shape[depth])
	for i := range out {
		out[i] = t.nestedAt(depth+1, off+i*t.strides[depth])
	}

	return out
}
