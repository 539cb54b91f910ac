// SPDX-License-Identifier: MIT

// Package blanket provides canonical Markov blankets and multisets of them.
//
// A Markov blanket here is the transition probability matrix (TPM) of a
// covered node together with the TPMs of its children, each child tagged
// with the axis that corresponds to the covered node. Blankets that differ
// only by a relabeling of parents (of the covered node or of any child)
// normalize to the same canonical pair, and therefore encode to the same
// bytes and hash to the same digest.
//
// Types:
//
//	Blanket        — canonical pair (node TPM, ordered augmented children).
//	AugmentedChild — a child TPM plus the axis of the covered node in it.
//	Multiset       — unordered, duplicate-keeping collection of blankets.
//
// Construction:
//
//	New            — normalizes every TPM (the usual entry point).
//	NewFromNested  — same, from untyped nested data ([]any, [][]float64, ...).
//	FromCanonical  — stores already canonical data verbatim (used by Unpack).
//	NewMultiset    — derives the canonical sorted order of its members.
//
// Serialization:
//
//	Pack / Unpack / UnpackMultiset — via a codec.Codec (msgpack by default).
//	Hash                           — digest of the packed bytes (sha2-256 by default).
//
// The wire shape of a blanket is [node, [[axis, child], ...]] and that of a
// multiset is [blanket, ...] in canonical order; with the default codec it
// is byte-compatible with the legacy msgpack format. LegacySHA1 digests
// reproduce legacy integer hashes through Digest.LegacyInt64.
//
// Children are kept in construction order: two blankets listing the same
// children in different orders are different blankets.
//
// All values are immutable after construction and safe for concurrent reads.
package blanket
