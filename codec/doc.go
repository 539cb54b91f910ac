// SPDX-License-Identifier: MIT

// Package codec turns tagged trees (tensor.Node) into bytes and back.
//
// Contract:
//   - Deterministic: one tree always encodes to the same bytes, which is
//     what makes digests of canonical blankets stable.
//   - Fixed-width floats: every float leaf is written as an IEEE-754
//     binary64, never shortened, so no cross-platform drift.
//   - Integer leaves (axis indices) use the shortest integer encoding.
//
// Two codecs are provided:
//
//	MsgPack — MessagePack arrays, float 64 and fixint. Byte-compatible with
//	          the legacy msgpack wire format of Markov-blanket normal forms.
//	CBOR    — RFC 8949 core deterministic encoding with float64 leaves.
//
// Malformed input is reported with ErrDecode.
package codec
