// SPDX-License-Identifier: MIT
// Package tensor: Tensor is a concrete, row-major n-dimensional array of
// float64 values, storing elements in a flat slice.

package tensor

import (
	"fmt"
	"strings"
)

// Tensor is an immutable rank-tagged array.
// shape holds one length per axis (all ≥ 1), strides the row-major step of
// each axis, and data holds product(shape) elements in row-major order.
type Tensor struct {
	shape   []int     // axis lengths; empty for a scalar
	strides []int     // row-major strides, len == len(shape)
	data    []float64 // flat backing storage
}

// New creates a tensor of the given shape from row-major data.
// Stage 1 (Validate): every axis ≥ 1, len(data) == product(shape), finite leaves.
// Stage 2 (Prepare): copy shape and data, fold -0 into +0.
// Stage 3 (Finalize): compute strides.
// Complexity: O(size) time and memory.
func New(shape []int, data []float64) (*Tensor, error) {
	if err := ValidateShape(shape); err != nil {
		return nil, err
	}
	size := product(shape)
	if len(data) != size {
		return nil, tensorErrorf("New", ErrInvalidTensor, "shape %v needs %d values, got %d", shape, size, len(data))
	}
	if err := ValidateFinite(data); err != nil {
		return nil, err
	}

	buf := make([]float64, size)
	for i, v := range data {
		buf[i] = canonicalZero(v)
	}

	return newOwned(append([]int(nil), shape...), buf), nil
}

// Scalar returns the rank-0 tensor holding v (a node without parents).
// Returns ErrInvalidTensor for NaN or ±Inf.
func Scalar(v float64) (*Tensor, error) {
	return New(nil, []float64{v})
}

// newOwned wraps already-validated shape and data without copying.
func newOwned(shape []int, data []float64) *Tensor {
	return &Tensor{shape: shape, strides: rowMajorStrides(shape), data: data}
}

// Rank returns the number of axes (the parent count of a TPM).
// Complexity: O(1).
func (t *Tensor) Rank() int {
	return len(t.shape)
}

// Shape returns a copy of the axis lengths.
// Complexity: O(rank).
func (t *Tensor) Shape() []int {
	out := make([]int, len(t.shape))
	copy(out, t.shape)

	return out
}

// Size returns the number of leaves.
// Complexity: O(1).
func (t *Tensor) Size() int {
	return len(t.data)
}

// Data returns a copy of the row-major leaves.
// Complexity: O(size).
func (t *Tensor) Data() []float64 {
	return append([]float64(nil), t.data...)
}

// At returns the leaf at the given multi-index.
// Returns ErrAxisOutOfRange if the index count differs from the rank or
// any coordinate is outside its axis.
// Complexity: O(rank).
func (t *Tensor) At(idx ...int) (float64, error) {
	if len(idx) != len(t.shape) {
		return 0, tensorErrorf("At", ErrAxisOutOfRange, "%d indices for rank %d", len(idx), len(t.shape))
	}
	off := 0
	for axis, i := range idx {
		if i < 0 || i >= t.shape[axis] {
			return 0, tensorErrorf("At", ErrAxisOutOfRange, "index %d on axis %d of length %d", i, axis, t.shape[axis])
		}
		off += i * t.strides[axis]
	}

	return t.data[off], nil
}

// Transpose returns a new tensor whose axis i is axis perm[i] of t.
// Applying perm and then its inverse restores t.
// Returns ErrAxisOutOfRange if perm is not a permutation of 0..rank-1.
// Complexity: O(size).
func (t *Tensor) Transpose(perm []int) (*Tensor, error) {
	view, err := t.Transposed(perm)
	if err != nil {
		return nil, err
	}

	return view.Materialize(), nil
}

// Take returns the sub-tensor obtained by fixing axis at index.
// The result has rank-1 axes, in the original order with axis removed.
// Returns ErrAxisOutOfRange for a bad axis or index.
// Complexity: O(size / shape[axis]).
func (t *Tensor) Take(axis, index int) (*Tensor, error) {
	if err := ValidateAxis(axis, len(t.shape)); err != nil {
		return nil, err
	}
	if index < 0 || index >= t.shape[axis] {
		return nil, tensorErrorf("Take", ErrAxisOutOfRange, "index %d on axis %d of length %d", index, axis, t.shape[axis])
	}

	shape := make([]int, 0, len(t.shape)-1)
	strides := make([]int, 0, len(t.shape)-1)
	for a := range t.shape {
		if a == axis {
			continue // fixed axis disappears from the view
		}
		shape = append(shape, t.shape[a])
		strides = append(strides, t.strides[a])
	}
	data := gather(t.data, index*t.strides[axis], shape, strides)

	return newOwned(shape, data), nil
}

// Equal reports whether a and b are structurally identical.
// Complexity: O(size).
func (t *Tensor) Equal(o *Tensor) bool {
	return Equal(t, o)
}

// String renders the tensor as nested brackets, e.g. [[0.3 0.1] [0.4 0.3]].
func (t *Tensor) String() string {
	var sb strings.Builder
	t.writeTo(&sb, 0, 0)

	return sb.String()
}

// writeTo renders the sub-array rooted at (depth, off).
func (t *Tensor) writeTo(sb *strings.Builder, depth, off int) {
	if depth == len(t.shape) {
		fmt.Fprintf(sb, "%g", t.data[off])
		return
	}
	sb.WriteByte('[')
	for i := 0; i < t.shape[depth]; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		t.writeTo(sb, depth+1, off+i*t.strides[depth])
	}
	sb.WriteByte(']')
}

// rowMajorStrides computes C-order strides for shape.
func rowMajorStrides(shape []int) []int {
	strides := make([]int, len(shape))
	step := 1
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = step
		step *= shape[i]
	}

	return strides
}

// product returns the number of leaves of shape (1 for a scalar).
func product(shape []int) int {
	n := 1
	for _, s := range shape {
		n *= s
	}

	return n
}

// gather copies a strided view starting at off into a fresh row-major slice.
// It walks the output with an odometer over shape, adjusting the source
// offset incrementally.
// Complexity: O(product(shape)).
func gather(src []float64, off int, shape, strides []int) []float64 {
	size := product(shape)
	out := make([]float64, 0, size)
	idx := make([]int, len(shape))
	for k := 0; k < size; k++ {
		out = append(out, src[off])
		for d := len(idx) - 1; d >= 0; d-- {
			idx[d]++
			off += strides[d]
			if idx[d] < shape[d] {
				break
			}
			off -= idx[d] * strides[d] // wrap this digit back to zero
			idx[d] = 0
		}
	}

	return out
}
