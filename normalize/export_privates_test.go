// SPDX-License-Identifier: MIT

package normalize

// Test bridge (white-box) exposing private helpers to normalize_test only.
// Being a _test.go file in package normalize, it never reaches production
// builds.

// NthPermutationForTest unranks a lexicographic permutation index.
func NthPermutationForTest(n, k int) []int { return nthPermutation(n, k) }

// EffectiveWorkersForTest reports the worker count a search would use.
func EffectiveWorkersForTest(requested, total int) int { return effectiveWorkers(requested, total) }
