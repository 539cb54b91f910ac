// SPDX-License-Identifier: MIT

package blanket

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/wmayner/marbl/digest"
	"github.com/wmayner/marbl/normalize"
	"github.com/wmayner/marbl/tensor"
)

// AugmentedChild is a child TPM together with the axis of that TPM which
// corresponds to the covered node.
type AugmentedChild struct {
	Axis int
	TPM  *tensor.Tensor
}

// NestedChild is AugmentedChild with an untyped TPM, see NewFromNested.
type NestedChild struct {
	Axis int
	TPM  any
}

// Blanket is a Markov blanket in canonical form. It is immutable.
type Blanket struct {
	node     *tensor.Tensor
	children []AugmentedChild
}

// New normalizes the node TPM and every child TPM, tracking the covered
// node's axis through each child, and returns the canonical blanket.
// Child order is preserved.
//
// Errors:
//   - ErrInvalidTensor if node or a child TPM is nil.
//   - ErrAxisOutOfRange if a child axis is outside [0, rank).
//   - normalize.ErrRankLimit if a rank limit was forwarded and exceeded.
//
// Example:
//
//	b, err := blanket.New(nodeTPM, []blanket.AugmentedChild{{Axis: 0, TPM: childTPM}})
func New(node *tensor.Tensor, children []AugmentedChild, opts ...Option) (*Blanket, error) {
	o := gatherOptions(opts...)
	nopts := o.normalizeOptions()

	if node == nil {
		return nil, fmt.Errorf("blanket.New: node: %w: nil tensor", ErrInvalidTensor)
	}
	canonNode, err := normalize.Normalize(node, nopts...)
	if err != nil {
		return nil, fmt.Errorf("blanket.New: node: %w", err)
	}

	canonChildren := make([]AugmentedChild, len(children))
	for i, c := range children {
		if c.TPM == nil {
			return nil, fmt.Errorf("blanket.New: child %d: %w: nil tensor", i, ErrInvalidTensor)
		}
		axis, tpm, err := normalize.NormalizeTracked(c.TPM, c.Axis, nopts...)
		if err != nil {
			return nil, fmt.Errorf("blanket.New: child %d: %w", i, err)
		}
		canonChildren[i] = AugmentedChild{Axis: axis, TPM: tpm}
	}

	o.logger.Debug("blanket: normalized",
		"node_rank", canonNode.Rank(),
		"children", len(canonChildren),
	)

	return &Blanket{node: canonNode, children: canonChildren}, nil
}

// NewFromNested is New for untyped nested data, as produced by JSON or
// other generic decoders ([]any trees, [][]float64, ...).
func NewFromNested(node any, children []NestedChild, opts ...Option) (*Blanket, error) {
	nt, err := tensor.FromNested(node)
	if err != nil {
		return nil, fmt.Errorf("blanket.NewFromNested: node: %w", err)
	}
	aug := make([]AugmentedChild, len(children))
	for i, c := range children {
		ct, err := tensor.FromNested(c.TPM)
		if err != nil {
			return nil, fmt.Errorf("blanket.NewFromNested: child %d: %w", i, err)
		}
		aug[i] = AugmentedChild{Axis: c.Axis, TPM: ct}
	}

	return New(nt, aug, opts...)
}

// FromCanonical wraps data that is already in canonical form, without
// normalizing it. Only structure is checked: tensors are non-nil and each
// axis lies in [0, rank).
//
// Warning: data that is not actually canonical yields blankets that compare
// and hash differently from their normalized equivalents.
func FromCanonical(node *tensor.Tensor, children []AugmentedChild) (*Blanket, error) {
	if node == nil {
		return nil, fmt.Errorf("blanket.FromCanonical: node: %w: nil tensor", ErrInvalidTensor)
	}
	for i, c := range children {
		if c.TPM == nil {
			return nil, fmt.Errorf("blanket.FromCanonical: child %d: %w: nil tensor", i, ErrInvalidTensor)
		}
		if err := tensor.ValidateAxis(c.Axis, c.TPM.Rank()); err != nil {
			return nil, fmt.Errorf("blanket.FromCanonical: child %d: %w", i, err)
		}
	}

	return &Blanket{node: node, children: append([]AugmentedChild{}, children...)}, nil
}

// NodeTPM returns the canonical TPM of the covered node.
func (b *Blanket) NodeTPM() *tensor.Tensor { return b.node }

// Children returns a copy of the canonical augmented children, in
// construction order.
func (b *Blanket) Children() []AugmentedChild {
	return append([]AugmentedChild{}, b.children...)
}

// Equal reports whether both blankets have the same canonical pair.
// Two nil blankets are equal.
func (b *Blanket) Equal(o *Blanket) bool {
	if b == nil || o == nil {
		return b == o
	}

	return b.Compare(o) == 0
}

// Less reports whether b orders strictly before o.
func (b *Blanket) Less(o *Blanket) bool { return b.Compare(o) < 0 }

// Compare orders blankets lexicographically by their canonical pair: node
// TPM first, then the children list element by element, each child by axis
// then TPM, a shorter list ordering first when it is a prefix of the other.
// This is the order of CompareNodes over Node(). nil orders first.
// Complexity: O(total size) worst case, no allocation.
func (b *Blanket) Compare(o *Blanket) int {
	switch {
	case b == nil && o == nil:
		return 0
	case b == nil:
		return -1
	case o == nil:
		return 1
	}

	if c := tensor.Compare(b.node, o.node); c != 0 {
		return c
	}
	n := min(len(b.children), len(o.children))
	for i := 0; i < n; i++ {
		x, y := b.children[i], o.children[i]
		if c := cmp.Compare(x.Axis, y.Axis); c != 0 {
			return c
		}
		if c := tensor.Compare(x.TPM, y.TPM); c != 0 {
			return c
		}
	}

	return cmp.Compare(len(b.children), len(o.children))
}

// Node returns the canonical pair as the tree handed to the codec:
// [node, [[axis, child], ...]] with integer axes and float data.
func (b *Blanket) Node() tensor.Node {
	children := make([]tensor.Node, len(b.children))
	for i, c := range b.children {
		children[i] = tensor.NewSequence(tensor.NewInt(int64(c.Axis)), c.TPM.Node())
	}

	return tensor.NewSequence(b.node.Node(), tensor.NewSequence(children...))
}

// Pack encodes the canonical pair; see the package function Pack.
func (b *Blanket) Pack(opts ...Option) ([]byte, error) { return Pack(b, opts...) }

// Hash digests the packed canonical pair; see the package function Hash.
func (b *Blanket) Hash(opts ...Option) (digest.Digest, error) { return Hash(b, opts...) }

// String renders "Blanket(<node>, [[axis child] ...])".
func (b *Blanket) String() string {
	if b == nil {
		return "Blanket(nil)"
	}
	var sb strings.Builder
	sb.WriteString("Blanket(")
	sb.WriteString(b.node.String())
	sb.WriteString(", [")
	for i, c := range b.children {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "[%d %s]", c.Axis, c.TPM)
	}
	sb.WriteString("])")

	return sb.String()
}
