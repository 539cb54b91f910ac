// SPDX-License-Identifier: MIT

package blanket

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/wmayner/marbl/digest"
	"github.com/wmayner/marbl/tensor"
)

// Multiset is an unordered collection of blankets that keeps duplicates.
// Iteration follows the input order; packing and hashing follow the
// canonical order, so the digest does not depend on how the input was
// arranged. It is immutable.
type Multiset struct {
	blankets []*Blanket // input order
	order    []int      // order[k] = input index of the k-th canonical entry
}

// NewMultiset collects blankets and derives their canonical order: a
// stable sort by Blanket.Compare, so equal blankets keep their input order.
// An empty multiset is valid.
//
// Errors:
//   - ErrNilBlanket if any entry is nil.
//
// Complexity: O(n log n) comparisons.
func NewMultiset(blankets []*Blanket) (*Multiset, error) {
	for i, b := range blankets {
		if b == nil {
			return nil, fmt.Errorf("blanket.NewMultiset: entry %d: %w", i, ErrNilBlanket)
		}
	}

	bs := append([]*Blanket{}, blankets...)
	order := make([]int, len(bs))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(i, j int) int { return bs[i].Compare(bs[j]) })

	return &Multiset{blankets: bs, order: order}, nil
}

// Len returns the number of blankets, counting multiplicity.
func (s *Multiset) Len() int { return len(s.blankets) }

// Contains reports whether some member equals b.
func (s *Multiset) Contains(b *Blanket) bool { return s.Count(b) > 0 }

// Count returns the multiplicity of b.
// Complexity: O(n) comparisons.
func (s *Multiset) Count(b *Blanket) int {
	if b == nil {
		return 0
	}
	n := 0
	for _, m := range s.blankets {
		if m.Equal(b) {
			n++
		}
	}

	return n
}

// At returns the i-th blanket in input order. It panics if i is out of
// range, like slice indexing.
func (s *Multiset) At(i int) *Blanket { return s.blankets[i] }

// Blankets returns the members in input order.
func (s *Multiset) Blankets() []*Blanket { return append([]*Blanket{}, s.blankets...) }

// All iterates over the members in input order.
func (s *Multiset) All() iter.Seq[*Blanket] {
	return func(yield func(*Blanket) bool) {
		for _, b := range s.blankets {
			if !yield(b) {
				return
			}
		}
	}
}

// Canonical returns the members in canonical (sorted) order.
func (s *Multiset) Canonical() []*Blanket {
	out := make([]*Blanket, len(s.order))
	for k, i := range s.order {
		out[k] = s.blankets[i]
	}

	return out
}

// Permutation returns the mapping from canonical position to input index:
// Canonical()[k] == At(Permutation()[k]).
func (s *Multiset) Permutation() []int { return append([]int{}, s.order...) }

// Equal reports multiset equality: the same blankets with the same
// multiplicities, in any input order. Equal multisets hash equally.
// Two nil multisets are equal.
func (s *Multiset) Equal(o *Multiset) bool {
	if s == nil || o == nil {
		return s == o
	}
	if len(s.order) != len(o.order) {
		return false
	}
	for k := range s.order {
		if !s.blankets[s.order[k]].Equal(o.blankets[o.order[k]]) {
			return false
		}
	}

	return true
}

// EqualOrdered reports whether both multisets list equal blankets in the
// same input order (the legacy notion of equality).
func (s *Multiset) EqualOrdered(o *Multiset) bool {
	if s == nil || o == nil {
		return s == o
	}

	return slices.EqualFunc(s.blankets, o.blankets, (*Blanket).Equal)
}

// Node returns the canonical sequence as the tree handed to the codec.
func (s *Multiset) Node() tensor.Node {
	items := make([]tensor.Node, len(s.order))
	for k, i := range s.order {
		items[k] = s.blankets[i].Node()
	}

	return tensor.NewSequence(items...)
}

// Pack encodes the canonical sequence; see the package function Pack.
func (s *Multiset) Pack(opts ...Option) ([]byte, error) { return Pack(s, opts...) }

// Hash digests the packed canonical sequence; see the package function Hash.
func (s *Multiset) Hash(opts ...Option) (digest.Digest, error) { return Hash(s, opts...) }

// String renders the members in input order.
func (s *Multiset) String() string {
	if s == nil {
		return "Multiset(nil)"
	}
	parts := make([]string, len(s.blankets))
	for i, b := range s.blankets {
		parts[i] = b.String()
	}

	return "Multiset([" + strings.Join(parts, ", ") + "])"
}
