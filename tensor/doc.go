// SPDX-License-Identifier: MIT

// Package tensor provides the rank-tagged numeric array used to represent
// transition probability matrices (TPMs), together with the total
// lexicographic order that defines their normal form.
//
// What & Why:
//
//	A TPM of a node with p parents is a p-dimensional array: TPM[i][j][k]
//	is the transition probability when the parents are in state (i,j,k).
//	Untyped nested lists give no structural guarantees, so Tensor stores an
//	explicit shape, row-major strides and a flat float64 buffer, and rejects
//	ragged or non-numeric input at the boundary.
//
// Key features:
//   - Immutable values: constructors copy their input, accessors return copies.
//   - Ingestion from Go nested slices/arrays or []any trees (FromNested).
//   - Lazy transposition (Transposed) compared without materialization.
//   - Total lexicographic order (Compare) over nested sequences, including
//     mixed-rank comparison where any scalar orders before any sequence.
//   - Node: an explicit tagged variant Int | Float | Sequence used as the
//     structural form for byte encoding.
//
// Numeric policy:
//
//	Leaves must be finite (NaN and ±Inf are rejected with ErrInvalidTensor).
//	Negative zero is stored as +0 so that equal tensors encode identically.
//	Every axis must have at least one state; a scalar has rank 0.
//
// Complexity:
//
//	Compare is O(size) in the worst case and stops at the first difference.
//	Transpose and Take are O(size) of the result.
package tensor
