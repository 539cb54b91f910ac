// SPDX-License-Identifier: MIT

// Package normalize: functional configuration for the permutation search.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies them in order.
//
// Options never change the result of a search, only how it is executed
// (workers, logging) or whether it is accepted at all (rank limit).
package normalize

import "log/slog"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWorkers runs the permutation search on the calling goroutine.
	DefaultWorkers = 1

	// DefaultMaxRank disables the rank limit (0 = unlimited).
	DefaultMaxRank = 0

	// parallelThreshold is the minimum number of permutations per worker
	// below which the search stays sequential.
	parallelThreshold = 24
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicWorkersInvalid = "normalize: WithWorkers: n must be >= 1"
	panicMaxRankInvalid = "normalize: WithMaxRank: n must be >= 0"
)

// Option mutates internal options. Safe to apply repeatedly.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	workers int          // >= 1; DefaultWorkers
	maxRank int          // >= 0; 0 disables the check
	logger  *slog.Logger // nil ⇒ slog.Default() at use time
}

// WithWorkers splits the permutation range across n goroutines.
// The minimum and its tie-break are associative reductions, so the result
// is identical to the sequential search.
//
// Panics if n < 1.
// Complexity: O(1).
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithMaxRank rejects tensors with more than n axes with ErrRankLimit.
// n == 0 removes the limit.
//
// Panics if n < 0.
// Complexity: O(1).
func WithMaxRank(n int) Option {
	if n < 0 {
		panic(panicMaxRankInvalid)
	}

	return func(o *Options) { o.maxRank = n }
}

// WithLogger sets the logger used for Debug-level search diagnostics.
// A nil logger restores the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// gatherOptions applies user setters over the defaults, last-writer-wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		workers: DefaultWorkers,
		maxRank: DefaultMaxRank,
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
