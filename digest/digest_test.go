// SPDX-License-Identifier: MIT

package digest_test

import (
	"math/big"
	"testing"

	"github.com/multiformats/go-multihash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wmayner/marbl/digest"
)

var abc = []byte("abc")

func TestHashers_KnownVectors(t *testing.T) {
	cases := []struct {
		h    digest.Hasher
		in   []byte
		name string
		hex  string
	}{
		{digest.SHA256(), abc, "sha2-256", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{digest.SHA3(), abc, "sha3-256", "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532"},
		{digest.LegacySHA1(), abc, "sha1", "a9993e364706816aba3e25717850c26c9cd0d89d"},
		{digest.BLAKE3(), nil, "blake3", "af1349b9f5f9a1a6a0404dea36dcc9499bcb25c9adc112b7cc9a93cae41f3262"},
	}
	for _, tc := range cases {
		d, err := digest.Compute(tc.h, tc.in)
		require.NoError(t, err, tc.name)
		assert.Equal(t, tc.name, tc.h.Name())
		assert.Equal(t, tc.h.Code(), d.Code)
		assert.Equal(t, tc.hex, d.Hex(), tc.name)
		assert.Equal(t, tc.name+":"+tc.hex, d.String())
	}
}

func TestCompute_NilHasherUsesDefault(t *testing.T) {
	d, err := digest.Compute(nil, abc)
	require.NoError(t, err)
	assert.Equal(t, uint64(multihash.SHA2_256), d.Code)
	assert.Equal(t, "sha2-256", digest.Default().Name())
}

func TestDigest_IntegerViews(t *testing.T) {
	d, err := digest.Compute(digest.SHA256(), abc)
	require.NoError(t, err)
	assert.Equal(t, uint64(13436514500253700074), d.Uint64())

	want, ok := new(big.Int).SetString("ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", 16)
	require.True(t, ok)
	assert.Equal(t, 0, want.Cmp(d.Int()))

	short := digest.Digest{Code: multihash.SHA1, Sum: []byte{0x01}}
	assert.Equal(t, uint64(1)<<56, short.Uint64())
}

func TestDigest_LegacyInt64(t *testing.T) {
	d, err := digest.Compute(digest.LegacySHA1(), abc)
	require.NoError(t, err)
	assert.Equal(t, int64(1190302618603327930), d.LegacyInt64())
}

func TestDigest_MultihashAndCID(t *testing.T) {
	d, err := digest.Compute(digest.SHA256(), abc)
	require.NoError(t, err)

	mh, err := d.Multihash()
	require.NoError(t, err)
	assert.Equal(t, "1220ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", mh.HexString())

	c, err := d.CID()
	require.NoError(t, err)
	assert.Equal(t, "bafkreif2pall7dybz7vecqka3zo24irdwabwdi4wc55jznaq75q7eaavvu", c.String())
	assert.Equal(t, uint64(1), c.Version())
}

func TestDigest_Equal(t *testing.T) {
	a, err := digest.Compute(digest.SHA256(), abc)
	require.NoError(t, err)
	b, err := digest.Compute(digest.SHA256(), []byte("abc"))
	require.NoError(t, err)
	c, err := digest.Compute(digest.SHA3(), abc)
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(digest.Digest{Code: a.Code}))
}

func TestFromCode(t *testing.T) {
	for _, h := range []digest.Hasher{digest.SHA256(), digest.SHA3(), digest.BLAKE3(), digest.LegacySHA1()} {
		got, err := digest.FromCode(h.Code())
		require.NoError(t, err)
		assert.Equal(t, h.Name(), got.Name())
	}

	_, err := digest.FromCode(multihash.MD5)
	assert.ErrorIs(t, err, digest.ErrDigest)
}

func TestDigest_StringUnknownCode(t *testing.T) {
	d := digest.Digest{Code: 0x7fff0, Sum: []byte{0xab}}
	assert.Equal(t, "0x7fff0:ab", d.String())
}
