// SPDX-License-Identifier: MIT

package blanket_test

import (
	"encoding/hex"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wmayner/marbl/blanket"
	"github.com/wmayner/marbl/codec"
	"github.com/wmayner/marbl/digest"
)

// threeBlankets returns blankets that sort as bare < prefix < full.
func threeBlankets(t *testing.T) (bare, prefix, full *blanket.Blanket) {
	t.Helper()
	m := mustTensor(t, cubeTPM)
	bare, err := blanket.New(m, nil)
	require.NoError(t, err)
	prefix, err = blanket.New(m, []blanket.AugmentedChild{{Axis: 0, TPM: m}})
	require.NoError(t, err)

	return bare, prefix, cubeBlanket(t)
}

// TestMultiset_Triplicate: [b, b, b] has length 3, contains b and packs
// three identical entries.
func TestMultiset_Triplicate(t *testing.T) {
	b := cubeBlanket(t)
	s := mustMultiset(t, b, b, b)

	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Contains(b))
	assert.True(t, s.Contains(cubeBlanket(t)), "membership is by value")
	assert.Equal(t, 3, s.Count(b))

	canon := s.Canonical()
	require.Len(t, canon, 3)
	for _, c := range canon {
		assert.True(t, c.Equal(b))
	}
	assert.Equal(t, []int{0, 1, 2}, s.Permutation(), "stable for equal members")

	legacy, err := s.Hash(blanket.WithHasher(digest.LegacySHA1()))
	require.NoError(t, err)
	assert.Equal(t, int64(170586149808347817), legacy.LegacyInt64())

	d, err := s.Hash()
	require.NoError(t, err)
	assert.Equal(t, "b1023d426c45f817333720bdc87fb0de15c2591cfa79c610ef91a3f4942a4844", d.Hex())
}

// TestMultiset_PackGolden pins the legacy bytes of two copies of a
// one-child blanket over a 2×2 TPM.
func TestMultiset_PackGolden(t *testing.T) {
	b := mustBlanket(t, squareTPM, blanket.NestedChild{Axis: 0, TPM: squareTPM})
	s := mustMultiset(t, b, b)

	member := "92" + packedSquare + "91" + "9201" + packedSquare
	got, err := blanket.Pack(s)
	require.NoError(t, err)
	assert.Equal(t, "92"+member+member, hex.EncodeToString(got))
}

// TestMultiset_OrderInvariance: every input order packs to the same bytes.
func TestMultiset_OrderInvariance(t *testing.T) {
	bare, prefix, full := threeBlankets(t)
	inputs := [][]*blanket.Blanket{
		{full, bare, prefix},
		{bare, prefix, full},
		{prefix, full, bare},
		{full, prefix, bare},
	}

	var first []byte
	for _, in := range inputs {
		s := mustMultiset(t, in...)
		data, err := s.Pack()
		require.NoError(t, err)
		if first == nil {
			first = data
		}
		assert.Equal(t, first, data)

		d, err := s.Hash()
		require.NoError(t, err)
		assert.Equal(t, "2869b3e99159846e49e2226c39736cf28ac63f2f5cae592d68f2d92f7a879a0d", d.Hex())
	}

	s := mustMultiset(t, full, bare, prefix)
	assert.Equal(t, []int{1, 2, 0}, s.Permutation())
	for k, c := range s.Canonical() {
		assert.Same(t, s.At(s.Permutation()[k]), c)
	}
	assert.Same(t, full, s.At(0), "input order is kept for access")
}

// TestMultiset_MultiplicityChangesHash.
func TestMultiset_MultiplicityChangesHash(t *testing.T) {
	bare, prefix, _ := threeBlankets(t)

	h := func(bs ...*blanket.Blanket) string {
		d, err := mustMultiset(t, bs...).Hash()
		require.NoError(t, err)
		return d.Hex()
	}
	assert.NotEqual(t, h(bare, prefix), h(bare, bare, prefix))
	assert.NotEqual(t, h(bare, prefix), h(bare, prefix, prefix))
	assert.Equal(t, h(bare, prefix, prefix), h(prefix, bare, prefix))
}

// TestMultiset_Equality: Equal ignores input order, EqualOrdered does not.
func TestMultiset_Equality(t *testing.T) {
	bare, prefix, full := threeBlankets(t)
	a := mustMultiset(t, bare, prefix, full)
	b := mustMultiset(t, full, prefix, bare)
	c := mustMultiset(t, bare, prefix, prefix)

	assert.True(t, a.Equal(b))
	assert.False(t, a.EqualOrdered(b))
	assert.True(t, a.EqualOrdered(mustMultiset(t, bare, prefix, full)))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(mustMultiset(t, bare, prefix)))

	var none *blanket.Multiset
	assert.True(t, none.Equal(nil))
	assert.False(t, a.Equal(nil))
	assert.False(t, a.EqualOrdered(nil))
}

func TestMultiset_RoundTrip(t *testing.T) {
	bare, prefix, full := threeBlankets(t)
	s := mustMultiset(t, full, bare, prefix, full)

	for _, c := range []codec.Codec{codec.MsgPack(), codec.CBOR()} {
		data, err := s.Pack(blanket.WithCodec(c))
		require.NoError(t, err)

		back, err := blanket.UnpackMultiset(data, blanket.WithCodec(c))
		require.NoError(t, err, c.Name())
		assert.True(t, s.Equal(back), c.Name())
		assert.Equal(t, []int{0, 1, 2, 3}, back.Permutation(), "unpacked members arrive sorted")
		assert.Equal(t, 2, back.Count(full))
	}
}

func TestMultiset_Empty(t *testing.T) {
	s := mustMultiset(t)
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Contains(cubeBlanket(t)))

	data, err := s.Pack()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x90}, data)

	back, err := blanket.UnpackMultiset(data)
	require.NoError(t, err)
	assert.True(t, s.Equal(back))
}

func TestMultiset_Errors(t *testing.T) {
	_, err := blanket.NewMultiset([]*blanket.Blanket{cubeBlanket(t), nil})
	assert.ErrorIs(t, err, blanket.ErrNilBlanket)

	_, err = blanket.UnpackMultiset([]byte{0xcb, 0, 0, 0, 0, 0, 0, 0, 0})
	assert.ErrorIs(t, err, blanket.ErrDecode, "a float is not a sequence")

	_, err = blanket.UnpackMultiset([]byte{0x91, 0x90})
	assert.ErrorIs(t, err, blanket.ErrDecode, "an empty list is not a blanket")

	assert.False(t, mustMultiset(t, cubeBlanket(t)).Contains(nil))
}

func TestMultiset_Iteration(t *testing.T) {
	bare, prefix, full := threeBlankets(t)
	s := mustMultiset(t, full, bare, prefix)

	got := slices.Collect(s.All())
	assert.Equal(t, []*blanket.Blanket{full, bare, prefix}, got)
	assert.Equal(t, got, s.Blankets())

	for b := range s.All() {
		assert.Same(t, full, b)
		break
	}

	// Blankets returns a copy.
	bs := s.Blankets()
	bs[0] = nil
	assert.NotNil(t, s.At(0))
}

func TestMultiset_String(t *testing.T) {
	b := mustBlanket(t, []float64{0.5}, blanket.NestedChild{Axis: 0, TPM: []float64{0.1}})
	s := mustMultiset(t, b, b)
	assert.Equal(t, "Multiset([Blanket([0.5], [[0 [0.1]]]), Blanket([0.5], [[0 [0.1]]])])", s.String())
}
