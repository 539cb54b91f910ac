// SPDX-License-Identifier: MIT

package tensor

import (
	"cmp"
	"fmt"
	"strings"
)

// Kind tags the variant held by a Node.
type Kind uint8

const (
	// KindFloat is a float64 leaf (TPM entries).
	KindFloat Kind = iota
	// KindInt is an integer leaf (axis indices).
	KindInt
	// KindSequence is an ordered sequence of Nodes.
	KindSequence
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case KindFloat:
		return "float"
	case KindInt:
		return "int"
	case KindSequence:
		return "sequence"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Node is the structural form exchanged with byte codecs:
// Int(number) | Float(number) | Sequence(list<Node>).
// The zero value is Float(0).
type Node struct {
	kind  Kind
	f     float64
	i     int64
	items []Node
}

// NewFloat returns a float leaf; -0 is folded into +0.
func NewFloat(v float64) Node {
	return Node{kind: KindFloat, f: canonicalZero(v)}
}

// NewInt returns an integer leaf.
func NewInt(v int64) Node {
	return Node{kind: KindInt, i: v}
}

// NewSequence returns a sequence holding a copy of items.
func NewSequence(items ...Node) Node {
	return Node{kind: KindSequence, items: append([]Node{}, items...)}
}

// Kind returns the variant tag.
func (n Node) Kind() Kind { return n.kind }

// IsNumeric reports whether n is a leaf.
func (n Node) IsNumeric() bool { return n.kind != KindSequence }

// Value returns the numeric value of a leaf (integers are converted).
// It returns 0 for a sequence.
func (n Node) Value() float64 {
	switch n.kind {
	case KindInt:
		return float64(n.i)
	case KindFloat:
		return n.f
	default:
		return 0
	}
}

// IntValue returns the value of an integer leaf; ok is false otherwise.
func (n Node) IntValue() (v int64, ok bool) {
	if n.kind != KindInt {
		return 0, false
	}

	return n.i, true
}

// Len returns the number of items of a sequence, 0 for a leaf.
func (n Node) Len() int { return len(n.items) }

// At returns item i of a sequence. It panics if i is out of range,
// like slice indexing.
func (n Node) At(i int) Node { return n.items[i] }

// Items returns a copy of the items of a sequence.
func (n Node) Items() []Node { return append([]Node(nil), n.items...) }

// Equal reports whether CompareNodes(n, o) == 0.
func (n Node) Equal(o Node) bool { return CompareNodes(n, o) == 0 }

// String renders leaves with %g and sequences in brackets.
func (n Node) String() string {
	var sb strings.Builder
	n.writeTo(&sb)

	return sb.String()
}

func (n Node) writeTo(sb *strings.Builder) {
	switch n.kind {
	case KindInt:
		fmt.Fprintf(sb, "%d", n.i)
	case KindFloat:
		fmt.Fprintf(sb, "%g", n.f)
	default:
		sb.WriteByte('[')
		for i, item := range n.items {
			if i > 0 {
				sb.WriteByte(' ')
			}
			item.writeTo(sb)
		}
		sb.WriteByte(']')
	}
}

// CompareNodes applies the package order to tagged trees: leaves compare by
// numeric value whatever their tag, any leaf orders before any sequence, and
// sequences compare lexicographically.
func CompareNodes(a, b Node) int {
	aLeaf, bLeaf := a.IsNumeric(), b.IsNumeric()
	switch {
	case aLeaf && bLeaf:
		if a.kind == KindInt && b.kind == KindInt {
			return cmp.Compare(a.i, b.i)
		}
		return cmp.Compare(a.Value(), b.Value())
	case aLeaf:
		return -1
	case bLeaf:
		return 1
	}

	n := min(len(a.items), len(b.items))
	for i := 0; i < n; i++ {
		if c := CompareNodes(a.items[i], b.items[i]); c != 0 {
			return c
		}
	}

	return cmp.Compare(len(a.items), len(b.items))
}

// Node converts t into its tagged tree (float leaves, nested sequences).
// Complexity: O(size).
func (t *Tensor) Node() Node {
	return t.nodeAt(0, 0)
}

func (t *Tensor) nodeAt(depth, off int) Node {
	if depth == len(t.shape) {
		return Node{kind: KindFloat, f: t.data[off]}
	}
	items := make([]Node, t.shape[depth])
	for i := range items {
		items[i] = t.nodeAt(depth+1, off+i*t.strides[depth])
	}

	return Node{kind: KindSequence, items: items}
}

// FromNode builds a Tensor from a tagged tree. Integer leaves are accepted
// and converted to float64.
// Returns ErrInvalidTensor for ragged trees, empty sequences or non-finite leaves.
// Complexity: O(size).
func FromNode(n Node) (*Tensor, error) {
	in := newIngest()
	if err := in.node(n, 0); err != nil {
		return nil, err
	}

	return in.finish("FromNode")
}
