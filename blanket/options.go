// SPDX-License-Identifier: MIT

// Package blanket: functional configuration shared by construction,
// packing, hashing and unpacking.
// Options select collaborators (codec, hasher, logger) and forward settings
// to the normalizer; none of them changes the canonical form itself.
package blanket

import (
	"log/slog"

	"github.com/wmayner/marbl/codec"
	"github.com/wmayner/marbl/digest"
	"github.com/wmayner/marbl/normalize"
)

const (
	panicCodecNil  = "blanket: WithCodec: codec must not be nil"
	panicHasherNil = "blanket: WithHasher: hasher must not be nil"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	codec     codec.Codec        // codec.Default() unless set
	hasher    digest.Hasher      // digest.Default() unless set
	logger    *slog.Logger       // nil ⇒ slog.Default()
	normalize []normalize.Option // forwarded to normalize.*
}

// WithCodec selects the byte codec for Pack, Hash and Unpack.
// Bytes are only comparable between values packed with the same codec.
//
// Panics if c is nil.
func WithCodec(c codec.Codec) Option {
	if c == nil {
		panic(panicCodecNil)
	}

	return func(o *Options) { o.codec = c }
}

// WithHasher selects the digest algorithm for Hash.
//
// Panics if h is nil.
func WithHasher(h digest.Hasher) Option {
	if h == nil {
		panic(panicHasherNil)
	}

	return func(o *Options) { o.hasher = h }
}

// WithLogger sets the logger for Debug-level diagnostics; it is also handed
// to the normalizer. A nil logger restores the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// WithNormalizeOptions forwards options to the normalizer (workers, rank
// limit). They are applied after the logger set by WithLogger.
func WithNormalizeOptions(opts ...normalize.Option) Option {
	return func(o *Options) { o.normalize = append(o.normalize, opts...) }
}

// gatherOptions applies user setters over the defaults, last-writer-wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		codec:  codec.Default(),
		hasher: digest.Default(),
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	return o
}

// normalizeOptions returns the normalizer options, logger first.
func (o Options) normalizeOptions() []normalize.Option {
	out := make([]normalize.Option, 0, len(o.normalize)+1)
	out = append(out, normalize.WithLogger(o.logger))

	return append(out, o.normalize...)
}
