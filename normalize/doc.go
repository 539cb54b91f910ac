// SPDX-License-Identifier: MIT

// Package normalize computes the normal form of a transition probability
// matrix (TPM) under relabeling of its parents.
//
// 🚀 What is the normal form?
//
//	A TPM with p parents is a p-dimensional tensor, one axis per parent.
//	Relabeling (reordering) the parents permutes the axes. The normal form is
//	the lexicographically least tensor among all p! axis permutations, so two
//	TPMs that differ only by parent order share one normal form.
//
// ✨ Key features:
//   - Normalize: canonical tensor only.
//   - NormalizeTracked: canonical tensor plus the new position of one
//     distinguished axis (the covered node inside a child TPM).
//   - Canonicalize: full Result (tensor, chosen permutation, tie count).
//   - Deterministic tie-break: among all permutations that produce the
//     canonical tensor, the lexicographically least permutation is chosen.
//   - Optional parallel search (WithWorkers) with identical results.
//
// ⚙️ Usage:
//
//	import "github.com/wmayner/marbl/normalize"
//
//	canon, err := normalize.Normalize(tpm)
//	axis, canon, err := normalize.NormalizeTracked(childTPM, 1)
//
// Performance:
//
//   - Time:   O(p! · p · size) worst case, usually far less because
//     comparisons stop at the first differing leaf.
//   - Memory: O(size + p); transposes are compared as strided views and only
//     the winner is materialized.
//
// Intended for small p (single-digit parent counts). Use WithMaxRank to
// bound the factorial cost at an API boundary.
package normalize
