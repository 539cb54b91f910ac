// SPDX-License-Identifier: MIT

package normalize

import (
	"errors"
	"fmt"
	"sync"

	"github.com/wmayner/marbl/tensor"
)

// Result is the outcome of a canonical-form search.
type Result struct {
	// Tensor is the lexicographically least transpose of the input.
	Tensor *tensor.Tensor

	// Perm is the lexicographically least permutation producing Tensor:
	// axis i of Tensor is axis Perm[i] of the input.
	Perm []int

	// Ties counts the permutations producing Tensor (≥ 1). Values above one
	// reveal symmetric parent structure.
	Ties int
}

// NewAxis returns the position in r.Tensor of input axis axis, i.e. the j
// with Perm[j] == axis.
// Returns tensor.ErrAxisOutOfRange if axis is not an input axis.
// Complexity: O(rank).
func (r Result) NewAxis(axis int) (int, error) {
	for j, a := range r.Perm {
		if a == axis {
			return j, nil
		}
	}

	return 0, fmt.Errorf("Result.NewAxis(%d): %w", axis, tensor.ErrAxisOutOfRange)
}

// Normalize returns the normal form of t: the lexicographically least
// tensor over all permutations of its axes. A scalar is returned as is.
//
// Errors:
//   - tensor.ErrInvalidTensor if t is nil.
//   - ErrRankLimit if WithMaxRank is set and exceeded, or rank > MaxSearchRank.
//
// Example:
//
//	canon, err := normalize.Normalize(tpm)
func Normalize(t *tensor.Tensor, opts ...Option) (*tensor.Tensor, error) {
	res, err := Canonicalize(t, opts...)
	if err != nil {
		return nil, err
	}

	return res.Tensor, nil
}

// NormalizeTracked returns the normal form of t together with the new
// position of input axis axis inside it. The position is taken under the
// lexicographically least permutation among those yielding the normal form,
// which makes it the canonical identity of that parent.
// The position is the j with Perm[j] == axis. Packed bytes can therefore
// differ from the legacy format, which reads Perm[axis], when the least
// permutation is not its own inverse (a 3-cycle, for instance).
//
// Errors:
//   - tensor.ErrAxisOutOfRange unless 0 ≤ axis < t.Rank() (always for a scalar).
//   - tensor.ErrInvalidTensor if t is nil.
//   - ErrRankLimit if WithMaxRank is set and exceeded, or rank > MaxSearchRank.
//
// Example:
//
//	newAxis, canon, err := normalize.NormalizeTracked(childTPM, coveredAxis)
func NormalizeTracked(t *tensor.Tensor, axis int, opts ...Option) (int, *tensor.Tensor, error) {
	if t == nil {
		return 0, nil, fmt.Errorf("NormalizeTracked: %w: nil tensor", tensor.ErrInvalidTensor)
	}
	if err := tensor.ValidateAxis(axis, t.Rank()); err != nil {
		return 0, nil, fmt.Errorf("NormalizeTracked: %w", err)
	}

	res, err := Canonicalize(t, opts...)
	if err != nil {
		return 0, nil, err
	}
	newAxis, err := res.NewAxis(axis)
	if err != nil {
		return 0, nil, err
	}

	return newAxis, res.Tensor, nil
}

// Canonicalize runs the permutation search and reports the full Result.
//
// Algorithm:
//  1. p = rank(t); enumerate the p! permutations in lexicographic order.
//  2. For each permutation build a lazy transpose and compare it with the
//     running minimum; a strictly smaller view replaces the minimum, an
//     equal one only increments the tie count. Lexicographic enumeration
//     makes the surviving permutation the least among ties.
//  3. With several workers, each takes a contiguous rank range (started by
//     unranking) and the partial minima are reduced in range order.
//  4. Materialize the winning view.
//
// Complexity: O(p! · p · size) time worst case, O(size + p·workers) memory.
func Canonicalize(t *tensor.Tensor, opts ...Option) (Result, error) {
	if t == nil {
		return Result{}, fmt.Errorf("Canonicalize: %w: nil tensor", tensor.ErrInvalidTensor)
	}
	o := gatherOptions(opts...)

	rank := t.Rank()
	if o.maxRank > 0 && rank > o.maxRank {
		return Result{}, fmt.Errorf("Canonicalize: rank %d, limit %d: %w", rank, o.maxRank, ErrRankLimit)
	}
	if rank > MaxSearchRank {
		return Result{}, fmt.Errorf("Canonicalize: rank %d, search limit %d: %w", rank, MaxSearchRank, ErrRankLimit)
	}

	total := Factorial(rank)
	workers := effectiveWorkers(o.workers, total)

	var (
		best candidate
		err  error
	)
	if workers == 1 {
		best, err = searchRange(t, rank, 0, total)
	} else {
		best, err = searchParallel(t, rank, total, workers)
	}
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Tensor: best.view.Materialize(),
		Perm:   best.view.Perm(),
		Ties:   best.ties,
	}
	o.logger.Debug("normalize: canonical form",
		"rank", rank,
		"permutations", total,
		"workers", workers,
		"perm", res.Perm,
		"ties", res.Ties,
	)

	return res, nil
}

// candidate is a partial minimum of the search.
type candidate struct {
	view tensor.Transposition
	ties int
	ok   bool
}

// effectiveWorkers caps the worker count so every worker has at least
// parallelThreshold permutations.
func effectiveWorkers(requested, total int) int {
	if requested <= 1 {
		return 1
	}

	return max(1, min(requested, total/parallelThreshold))
}

// searchRange scans count permutations starting at lexicographic rank start.
func searchRange(t *tensor.Tensor, rank, start, count int) (candidate, error) {
	var best candidate
	perm := nthPermutation(rank, start)
	for k := 0; k < count; k++ {
		view, err := t.Transposed(perm) // copies perm
		if err != nil {
			return candidate{}, err
		}

		switch {
		case !best.ok:
			best = candidate{view: view, ties: 1, ok: true}
		default:
			c := view.Compare(best.view)
			if c < 0 {
				best = candidate{view: view, ties: 1, ok: true}
			} else if c == 0 {
				best.ties++ // later permutation, keep the earlier one
			}
		}

		if k+1 < count {
			nextPermutation(perm)
		}
	}

	return best, nil
}

// searchParallel fans the permutation range out to workers and reduces.
func searchParallel(t *tensor.Tensor, rank, total, workers int) (candidate, error) {
	chunk := (total + workers - 1) / workers
	parts := make([]candidate, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunk
		if start >= total {
			break
		}
		count := min(chunk, total-start)

		wg.Add(1)
		go func(w, start, count int) {
			defer wg.Done()
			parts[w], errs[w] = searchRange(t, rank, start, count)
		}(w, start, count)
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return candidate{}, err
	}

	return reduce(parts), nil
}

// reduce merges partial minima given in ascending range order.
func reduce(parts []candidate) candidate {
	var best candidate
	for _, p := range parts {
		if !p.ok {
			continue
		}
		if !best.ok {
			best = p
			continue
		}
		switch c := p.view.Compare(best.view); {
		case c < 0:
			best = p
		case c == 0:
			best.ties += p.ties // earlier range holds the least permutation
		}
	}

	return best
}
