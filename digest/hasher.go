// SPDX-License-Identifier: MIT

package digest

import (
	"errors"
	"fmt"

	"github.com/multiformats/go-multihash"
	"github.com/zeebo/blake3"
	"golang.org/x/crypto/sha3"
)

// ErrDigest reports an unknown algorithm or a failed hash computation.
var ErrDigest = errors.New("digest: hashing failed")

// Hasher computes a fixed-size sum identified by a multicodec code.
type Hasher interface {
	// Name is the multicodec name ("sha2-256", "sha3-256", ...).
	Name() string

	// Code is the multicodec code of the algorithm.
	Code() uint64

	// Sum returns the raw digest of data.
	Sum(data []byte) ([]byte, error)
}

// Default returns the hasher used when none is configured.
func Default() Hasher {
	return SHA256()
}

// multihashHasher delegates to the go-multihash registry.
type multihashHasher struct {
	code uint64
}

func (h multihashHasher) Name() string { return multihash.Codes[h.code] }
func (h multihashHasher) Code() uint64 { return h.code }

func (h multihashHasher) Sum(data []byte) ([]byte, error) {
	mh, err := multihash.Sum(data, h.code, -1)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDigest, h.Name(), err)
	}
	dec, err := multihash.Decode(mh)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDigest, h.Name(), err)
	}

	return dec.Digest, nil
}

// SHA256 returns the sha2-256 hasher.
func SHA256() Hasher { return multihashHasher{code: multihash.SHA2_256} }

// LegacySHA1 returns the sha1 hasher. SHA-1 is not collision resistant;
// use it only to match hashes produced by the legacy implementation.
func LegacySHA1() Hasher { return multihashHasher{code: multihash.SHA1} }

type sha3Hasher struct{}

// SHA3 returns the sha3-256 hasher.
func SHA3() Hasher { return sha3Hasher{} }

func (sha3Hasher) Name() string { return multihash.Codes[multihash.SHA3_256] }
func (sha3Hasher) Code() uint64 { return multihash.SHA3_256 }

func (sha3Hasher) Sum(data []byte) ([]byte, error) {
	s := sha3.Sum256(data)
	return s[:], nil
}

type blake3Hasher struct{}

// BLAKE3 returns the blake3 hasher with a 32-byte output.
func BLAKE3() Hasher { return blake3Hasher{} }

func (blake3Hasher) Name() string { return multihash.Codes[multihash.BLAKE3] }
func (blake3Hasher) Code() uint64 { return multihash.BLAKE3 }

func (blake3Hasher) Sum(data []byte) ([]byte, error) {
	s := blake3.Sum256(data)
	return s[:], nil
}

// FromCode returns the hasher for a multicodec code.
// Returns ErrDigest for codes outside the supported set.
func FromCode(code uint64) (Hasher, error) {
	switch code {
	case multihash.SHA2_256:
		return SHA256(), nil
	case multihash.SHA3_256:
		return SHA3(), nil
	case multihash.BLAKE3:
		return BLAKE3(), nil
	case multihash.SHA1:
		return LegacySHA1(), nil
	default:
		return nil, fmt.Errorf("%w: unsupported code 0x%x", ErrDigest, code)
	}
}
