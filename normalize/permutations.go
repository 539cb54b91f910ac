// SPDX-License-Identifier: MIT
// Package normalize: permutation enumeration in lexicographic order.
//
// The search relies on two facts:
//   - nextPermutation visits permutations in strictly increasing
//     lexicographic order, so the first permutation reaching the minimum is
//     the lexicographically least one among all ties;
//   - nthPermutation unranks an index (factorial number system), so workers
//     can start at any point of the sequence without enumerating a prefix.

package normalize

import (
	"fmt"
	"math/bits"
)

// MaxSearchRank is the largest rank whose permutation count fits in an int:
// 20 on 64-bit platforms, 12 on 32-bit ones. Canonicalize rejects higher
// ranks with ErrRankLimit.
const MaxSearchRank = 12 + 8*(bits.UintSize/64)

const panicPermutationsRank = "normalize: Permutations: n must be in [0, MaxSearchRank]"

// Factorial returns n! for 0 ≤ n ≤ MaxSearchRank. Larger n overflows int.
// Complexity: O(n).
func Factorial(n int) int {
	f := 1
	for i := 2; i <= n; i++ {
		f *= i
	}

	return f
}

// Permutations returns all n! permutations of 0..n-1 in lexicographic order.
// Permutations(0) returns the single empty permutation.
//
// Panics if n < 0 or n > MaxSearchRank.
// Complexity: O(n! · n) time and memory.
func Permutations(n int) [][]int {
	if n < 0 || n > MaxSearchRank {
		panic(fmt.Sprintf("%s: got %d", panicPermutationsRank, n))
	}
	out := make([][]int, 0, Factorial(n))
	perm := identity(n)
	for {
		out = append(out, append([]int(nil), perm...))
		if !nextPermutation(perm) {
			break
		}
	}

	return out
}

// identity returns [0, 1, ..., n-1].
func identity(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}

	return p
}

// nextPermutation rearranges p into its lexicographic successor in place.
// It returns false, leaving p unchanged, when p is the last permutation.
// Stage 1: find the rightmost ascent p[i] < p[i+1].
// Stage 2: swap p[i] with the rightmost element greater than it.
// Stage 3: reverse the suffix after i.
// Complexity: O(n).
func nextPermutation(p []int) bool {
	i := len(p) - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false // already the greatest permutation
	}
	j := len(p) - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]
	for l, r := i+1, len(p)-1; l < r; l, r = l+1, r-1 {
		p[l], p[r] = p[r], p[l]
	}

	return true
}

// nthPermutation returns the k-th (0-based) permutation of 0..n-1 in
// lexicographic order, for 0 ≤ k < n!.
// Complexity: O(n²).
func nthPermutation(n, k int) []int {
	pool := identity(n)
	out := make([]int, 0, n)
	for i := n; i > 0; i-- {
		f := Factorial(i - 1)
		idx := k / f
		k %= f
		out = append(out, pool[idx])
		pool = append(pool[:idx], pool[idx+1:]...)
	}

	return out
}
