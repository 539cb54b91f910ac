// SPDX-License-Identifier: MIT
// Package: tensor
//
// Purpose:
//  - Provide a single source of truth for shape, axis, permutation and
//    numeric checks shared by constructors, views and the normalizer.
//  - Return wrapped sentinels (ErrInvalidTensor, ErrAxisOutOfRange) so call
//    sites can match with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure and deterministic.
//  - ValidatePermutation allocates one bool slice of length rank.

package tensor

import "math"

// ValidateShape ensures every axis length is at least one.
// Rank-0 (empty shape) is a valid scalar shape.
// Complexity: O(rank).
func ValidateShape(shape []int) error {
	for axis, n := range shape {
		if n < 1 {
			return tensorErrorf("ValidateShape", ErrInvalidTensor, "axis %d has length %d", axis, n)
		}
	}

	return nil
}

// ValidateAxis ensures 0 ≤ axis < rank.
// A scalar (rank 0) has no valid axis.
// Complexity: O(1).
func ValidateAxis(axis, rank int) error {
	if axis < 0 || axis >= rank {
		return tensorErrorf("ValidateAxis", ErrAxisOutOfRange, "axis %d not in [0,%d)", axis, rank)
	}

	return nil
}

// ValidatePermutation ensures perm is a permutation of 0..rank-1.
// Complexity: O(rank) time and memory.
func ValidatePermutation(perm []int, rank int) error {
	if len(perm) != rank {
		return tensorErrorf("ValidatePermutation", ErrAxisOutOfRange, "permutation length %d, rank %d", len(perm), rank)
	}
	seen := make([]bool, rank)
	for _, axis := range perm {
		if axis < 0 || axis >= rank || seen[axis] {
			return tensorErrorf("ValidatePermutation", ErrAxisOutOfRange, "%v is not a permutation of rank %d", perm, rank)
		}
		seen[axis] = true // each axis may appear once
	}

	return nil
}

// ValidateFinite rejects NaN and ±Inf leaves.
// Complexity: O(len(data)).
func ValidateFinite(data []float64) error {
	for i, v := range data {
		if isNonFinite(v) {
			return tensorErrorf("ValidateFinite", ErrInvalidTensor, "leaf %d is %v", i, v)
		}
	}

	return nil
}

// isNonFinite reports whether v is NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

// canonicalZero maps -0 to +0; all other values pass through.
func canonicalZero(v float64) float64 {
	if v == 0 {
		return 0
	}

	return v
}
