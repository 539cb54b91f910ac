// SPDX-License-Identifier: MIT
// Package tensor: total lexicographic order and lazy transposition.
//
// Order definition (depth-first):
//   - two leaves compare numerically (IEEE order; inputs are finite);
//   - a leaf orders before any sequence;
//   - two sequences compare element by element, the first difference wins,
//     and a sequence that is a proper prefix of the other orders first.

package tensor

import "cmp"

// Transposition is an unmaterialized transpose of a Tensor: axis i of the
// view is axis Perm()[i] of the source. It shares the source buffer.
type Transposition struct {
	src     *Tensor
	perm    []int
	shape   []int
	strides []int
}

// Transposed returns a lazy transpose of t under perm.
// Returns ErrAxisOutOfRange if perm is not a permutation of 0..rank-1.
// Complexity: O(rank).
func (t *Tensor) Transposed(perm []int) (Transposition, error) {
	if err := ValidatePermutation(perm, len(t.shape)); err != nil {
		return Transposition{}, err
	}

	shape := make([]int, len(perm))
	strides := make([]int, len(perm))
	for i, axis := range perm {
		shape[i] = t.shape[axis]
		strides[i] = t.strides[axis]
	}

	return Transposition{
		src:     t,
		perm:    append([]int(nil), perm...),
		shape:   shape,
		strides: strides,
	}, nil
}

// Perm returns a copy of the permutation defining the view.
func (v Transposition) Perm() []int {
	return append([]int(nil), v.perm...)
}

// Compare orders two views under the lexicographic order of their
// materialized contents, without materializing either.
// Complexity: O(size) worst case, stops at the first difference.
func (v Transposition) Compare(o Transposition) int {
	return compareStrided(v.src.data, v.shape, v.strides, 0, o.src.data, o.shape, o.strides, 0)
}

// Materialize copies the view into a new row-major Tensor.
// Complexity: O(size).
func (v Transposition) Materialize() *Tensor {
	shape := append([]int(nil), v.shape...)

	return newOwned(shape, gather(v.src.data, 0, v.shape, v.strides))
}

// Compare returns -1, 0 or +1 ordering a against b lexicographically.
// Tensors of different rank are comparable: at the first depth where one
// side is a leaf and the other a sequence, the leaf orders first.
// Complexity: O(min(size(a), size(b))).
func Compare(a, b *Tensor) int {
	return compareStrided(a.data, a.shape, a.strides, 0, b.data, b.shape, b.strides, 0)
}

// Equal reports whether a and b have identical shape and leaves.
// Since every axis is non-empty, Compare(a,b)==0 implies equal shapes.
func Equal(a, b *Tensor) bool {
	if a == nil || b == nil {
		return a == b
	}

	return Compare(a, b) == 0
}

// compareStrided walks two strided views in lockstep.
// Shapes and strides are re-sliced per depth; no allocation happens.
func compareStrided(a []float64, aShape, aStrides []int, aOff int, b []float64, bShape, bStrides []int, bOff int) int {
	aLeaf, bLeaf := len(aShape) == 0, len(bShape) == 0
	switch {
	case aLeaf && bLeaf:
		return cmp.Compare(a[aOff], b[bOff])
	case aLeaf:
		return -1 // scalar before sequence
	case bLeaf:
		return 1
	}

	n := min(aShape[0], bShape[0])
	for i := 0; i < n; i++ {
		c := compareStrided(
			a, aShape[1:], aStrides[1:], aOff+i*aStrides[0],
			b, bShape[1:], bStrides[1:], bOff+i*bStrides[0],
		)
		if c != 0 {
			return c
		}
	}

	// common prefix equal: the shorter sequence orders first
	return cmp.Compare(aShape[0], bShape[0])
}
