// SPDX-License-Identifier: MIT

// Package digest fingerprints encoded blankets.
//
// A Hasher turns bytes into a fixed-size sum and names itself with its
// multicodec code, so every Digest can also be rendered as a multihash or
// as a CIDv1 (raw codec) for content-addressed storage.
//
// Hashers:
//
//	SHA256     — sha2-256 via go-multihash (default).
//	SHA3       — sha3-256 via golang.org/x/crypto.
//	BLAKE3     — blake3, 32-byte output, via zeebo/blake3.
//	LegacySHA1 — sha1; weak, provided only to reproduce legacy hashes.
//
// All hashers are stateless and safe for concurrent use.
package digest
