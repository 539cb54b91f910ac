// SPDX-License-Identifier: MIT

// Package marbl computes normal forms of Markov blankets in Bayesian
// networks, so that blankets differing only by a relabeling of parent
// variables serialize and hash identically.
//
// What is a blanket?
//
//	A covered node's transition probability matrix (TPM), one axis per
//	parent, together with the TPMs of the node's children. Each child TPM
//	is tagged with the axis that corresponds to the covered node.
//
// Pipeline:
//
//	raw TPMs ──normalize──▶ canonical pair ──codec──▶ bytes ──digest──▶ hash
//	bytes ──codec──▶ canonical pair (no re-normalization on the way back)
//
// Packages:
//
//	tensor/    — immutable rank-tagged float64 arrays, nested ingestion,
//	             transposition, slicing and the total lexicographic order
//	normalize/ — permutation search for the least transpose, with the
//	             covered node's axis tracked through it
//	blanket/   — Blanket and Multiset values: equality, ordering, Pack,
//	             Unpack, Hash
//	codec/     — msgpack (legacy wire format) and deterministic CBOR
//	digest/    — sha2-256, sha3-256, blake3 and legacy sha1, with multihash
//	             and CID views
//
// Quick example:
//
//	b, err := blanket.NewFromNested(nodeTPM, []blanket.NestedChild{
//		{Axis: 0, TPM: childTPM},
//	})
//	d, err := b.Hash()
//	fmt.Println(d) // sha2-256:…
//
// Normalization enumerates all p! permutations of a TPM's p parents; it is
// meant for small parent counts. normalize.WithWorkers spreads the search
// over goroutines and normalize.WithMaxRank bounds it.
//
//	go get github.com/wmayner/marbl
package marbl
