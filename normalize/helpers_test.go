// SPDX-License-Identifier: MIT
// Package normalize_test - deterministic random fixtures.
//
// Goals:
//   - Determinism: same seed ⇒ identical tensors and permutations.
//   - Small value alphabets so that ties and symmetric structure occur often.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Each test owns its own stream.

package normalize_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wmayner/marbl/tensor"
)

// defaultRNGSeed is used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// randomPerm returns a permutation of 0..n-1 via Fisher–Yates.
func randomPerm(rng *rand.Rand, n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}

	return p
}

// randomTensor draws a tensor of the given shape whose leaves come from
// alphabet.
func randomTensor(t testing.TB, rng *rand.Rand, shape []int, alphabet []float64) *tensor.Tensor {
	t.Helper()
	size := 1
	for _, s := range shape {
		size *= s
	}
	data := make([]float64, size)
	for i := range data {
		data[i] = alphabet[rng.Intn(len(alphabet))]
	}
	out, err := tensor.New(shape, data)
	require.NoError(t, err)

	return out
}

// randomShape draws rank axis lengths in [1, maxLen].
func randomShape(rng *rand.Rand, rank, maxLen int) []int {
	shape := make([]int, rank)
	for i := range shape {
		shape[i] = 1 + rng.Intn(maxLen)
	}

	return shape
}

// mustTensor builds a tensor from nested values or fails the test.
func mustTensor(t *testing.T, v any) *tensor.Tensor {
	t.Helper()
	out, err := tensor.FromNested(v)
	require.NoError(t, err)

	return out
}

// mustTranspose transposes or fails the test.
func mustTranspose(t *testing.T, m *tensor.Tensor, perm []int) *tensor.Tensor {
	t.Helper()
	out, err := m.Transpose(perm)
	require.NoError(t, err)

	return out
}

// positionOf returns j with perm[j] == axis.
func positionOf(perm []int, axis int) int {
	for j, a := range perm {
		if a == axis {
			return j
		}
	}

	return -1
}
