// SPDX-License-Identifier: MIT

package digest

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

// legacyModulus is the Mersenne prime 2^61-1.
var legacyModulus = new(big.Int).SetUint64(1<<61 - 1)

// Digest is a hash sum tagged with its algorithm.
type Digest struct {
	Code uint64
	Sum  []byte
}

// Compute hashes data with h.
func Compute(h Hasher, data []byte) (Digest, error) {
	if h == nil {
		h = Default()
	}
	sum, err := h.Sum(data)
	if err != nil {
		return Digest{}, err
	}

	return Digest{Code: h.Code(), Sum: sum}, nil
}

// Hex returns the lowercase hex encoding of the sum.
func (d Digest) Hex() string { return hex.EncodeToString(d.Sum) }

// String renders "<algorithm>:<hex>".
func (d Digest) String() string {
	name, ok := multihash.Codes[d.Code]
	if !ok {
		name = fmt.Sprintf("0x%x", d.Code)
	}

	return name + ":" + d.Hex()
}

// Equal reports whether both digests use the same algorithm and sum.
func (d Digest) Equal(o Digest) bool {
	return d.Code == o.Code && bytes.Equal(d.Sum, o.Sum)
}

// Uint64 returns the first eight bytes of the sum as a big-endian integer,
// zero-padded on the right for shorter sums.
func (d Digest) Uint64() uint64 {
	var b [8]byte
	copy(b[:], d.Sum)

	return binary.BigEndian.Uint64(b[:])
}

// Int returns the whole sum as a non-negative big-endian integer.
func (d Digest) Int() *big.Int {
	return new(big.Int).SetBytes(d.Sum)
}

// LegacyInt64 reduces Int modulo 2^61-1. For LegacySHA1 digests this is
// the integer hash value the legacy implementation reported.
func (d Digest) LegacyInt64() int64 {
	return new(big.Int).Mod(d.Int(), legacyModulus).Int64()
}

// Multihash returns the self-describing multihash encoding of d.
func (d Digest) Multihash() (multihash.Multihash, error) {
	mh, err := multihash.Encode(d.Sum, d.Code)
	if err != nil {
		return nil, fmt.Errorf("%w: multihash: %v", ErrDigest, err)
	}

	return mh, nil
}

// CID returns a CIDv1 with the raw codec addressing the encoded bytes.
func (d Digest) CID() (cid.Cid, error) {
	mh, err := d.Multihash()
	if err != nil {
		return cid.Undef, err
	}

	return cid.NewCidV1(cid.Raw, mh), nil
}
