// SPDX-License-Identifier: MIT

package blanket_test

import (
	"encoding/hex"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wmayner/marbl/blanket"
	"github.com/wmayner/marbl/tensor"
)

// Fixtures shared with the legacy doctests.
var (
	cubeTPM = [][][]float64{
		{{0.3, 0.4}, {0.1, 0.3}},
		{{0.4, 0.5}, {0.3, 0.1}},
	}
	cubeEquivalent = [][][]float64{
		{{0.3, 0.1}, {0.4, 0.3}},
		{{0.4, 0.3}, {0.5, 0.1}},
	}
	squareTPM = [][]float64{{0.3, 0.4}, {0.1, 0.3}}
)

// Packed canonical forms of cubeTPM and squareTPM.
const (
	packedCube = "929292cb3fd3333333333333cb3fb999999999999a92cb3fd999999999999acb3fd3333333333333" +
		"9292cb3fd999999999999acb3fd333333333333392cb3fe0000000000000cb3fb999999999999a"
	packedSquare = "9292cb3fd3333333333333cb3fb999999999999a92cb3fd999999999999acb3fd3333333333333"
)

func mustTensor(t testing.TB, v any) *tensor.Tensor {
	t.Helper()
	out, err := tensor.FromNested(v)
	require.NoError(t, err)

	return out
}

func mustTranspose(t testing.TB, m *tensor.Tensor, perm []int) *tensor.Tensor {
	t.Helper()
	out, err := m.Transpose(perm)
	require.NoError(t, err)

	return out
}

func mustHex(t testing.TB, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)

	return b
}

// cubeBlanket is the doctest blanket: cubeTPM with children tracked on
// axes 0 and 1 of cubeTPM.
func cubeBlanket(t testing.TB, opts ...blanket.Option) *blanket.Blanket {
	t.Helper()
	m := mustTensor(t, cubeTPM)
	b, err := blanket.New(m, []blanket.AugmentedChild{{Axis: 0, TPM: m}, {Axis: 1, TPM: m}}, opts...)
	require.NoError(t, err)

	return b
}

func mustBlanket(t testing.TB, node any, children ...blanket.NestedChild) *blanket.Blanket {
	t.Helper()
	b, err := blanket.NewFromNested(node, children)
	require.NoError(t, err)

	return b
}

func mustMultiset(t testing.TB, bs ...*blanket.Blanket) *blanket.Multiset {
	t.Helper()
	s, err := blanket.NewMultiset(bs)
	require.NoError(t, err)

	return s
}

// rngFromSeed returns a deterministic *rand.Rand owned by one test.
func rngFromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// randomTensor draws leaves from {0, 0.25, 0.5}, so ties are frequent.
func randomTensor(t testing.TB, rng *rand.Rand, shape []int) *tensor.Tensor {
	t.Helper()
	data := make([]float64, size(shape))
	for i := range data {
		data[i] = float64(rng.Intn(3)) / 4
	}
	out, err := tensor.New(shape, data)
	require.NoError(t, err)

	return out
}

// distinctTensor draws pairwise distinct leaves.
func distinctTensor(t testing.TB, rng *rand.Rand, shape []int) *tensor.Tensor {
	t.Helper()
	data := make([]float64, size(shape))
	for i, k := range rng.Perm(len(data)) {
		data[i] = float64(k+1) / float64(len(data)+1)
	}
	out, err := tensor.New(shape, data)
	require.NoError(t, err)

	return out
}

// randomShape draws rank axis lengths in [minLen, 3].
func randomShape(rng *rand.Rand, rank, minLen int) []int {
	shape := make([]int, rank)
	for i := range shape {
		shape[i] = minLen + rng.Intn(4-minLen)
	}

	return shape
}

func size(shape []int) int {
	n := 1
	for _, s := range shape {
		n *= s
	}

	return n
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
