package tree

import (
	"fmt"
	"iter"
)

// VirtualAccessor is the navigation contract of Accessor, exposed through
// dynamic dispatch. Algorithms written against VirtualAccessor work on trees
// of any value type and any node implementation.
//
// Navigating beyond the tree yields a VirtualAccessor for which Valid reports
// false; it is never nil.
type VirtualAccessor interface {
	Valid() bool
	IsRoot() bool
	IsSide(Side) bool
	HasChild(Side) bool
	Child(Side) VirtualAccessor
	Parent() VirtualAccessor
	Depth() int
	Value() any
	Label() string
}

// Virtual returns a VirtualAccessor forwarding to acc.
func (acc Accessor[T]) Virtual() VirtualAccessor {
	return virtual[T]{acc}
}

// virtual forwards every call to its accessor and carries no other state.
type virtual[T any] struct {
	acc Accessor[T]
}

func (v virtual[T]) Valid() bool          { return v.acc.Valid() }
func (v virtual[T]) IsRoot() bool         { return v.acc.IsRoot() }
func (v virtual[T]) IsSide(s Side) bool   { return v.acc.IsSide(s) }
func (v virtual[T]) HasChild(s Side) bool { return v.acc.HasChild(s) }
func (v virtual[T]) Depth() int           { return v.acc.Depth() }
func (v virtual[T]) Value() any           { return v.acc.Value() }

func (v virtual[T]) Child(s Side) VirtualAccessor {
	return virtual[T]{v.acc.Child(s)}
}

func (v virtual[T]) Parent() VirtualAccessor {
	return virtual[T]{v.acc.Parent()}
}

func (v virtual[T]) Label() string {
	if !v.acc.Valid() {
		return ""
	}
	return fmt.Sprint(v.acc.Value())
}

// Subtree returns a VirtualAccessor which treats the node of acc as the root
// of a virtual tree: IsRoot is true there, its Parent is invalid and depths
// are counted from it.
//
// A subtree accessor knows its depth in O(1). It is invalidated by any
// mutation which changes the depth of its node relative to the virtual root.
func Subtree[T any](acc Accessor[T]) VirtualAccessor {
	if !acc.Valid() {
		return &subtree[T]{depth: -1}
	}
	return &subtree[T]{at: bounded[T]{acc: acc, root: acc.h.idx}}
}

type subtree[T any] struct {
	at    bounded[T]
	depth int
}

func (v *subtree[T]) Valid() bool          { return v.depth >= 0 && v.at.acc.Valid() }
func (v *subtree[T]) IsRoot() bool         { return v.Valid() && v.at.IsRoot() }
func (v *subtree[T]) IsSide(s Side) bool   { return v.Valid() && v.at.IsSide(s) }
func (v *subtree[T]) HasChild(s Side) bool { return v.Valid() && v.at.HasChild(s) }
func (v *subtree[T]) Depth() int           { return v.depth }
func (v *subtree[T]) Value() any           { return v.at.acc.Value() }

func (v *subtree[T]) Child(s Side) VirtualAccessor {
	if !v.HasChild(s) {
		return &subtree[T]{depth: -1}
	}
	return &subtree[T]{at: v.at.Child(s), depth: v.depth + 1}
}

func (v *subtree[T]) Parent() VirtualAccessor {
	if !v.Valid() || v.at.IsRoot() {
		return &subtree[T]{depth: -1}
	}
	return &subtree[T]{at: v.at.Parent(), depth: v.depth - 1}
}

func (v *subtree[T]) Label() string {
	if !v.Valid() {
		return ""
	}
	return fmt.Sprint(v.at.acc.Value())
}

// virtualNode adapts a VirtualAccessor to the traversal algorithms. The node
// a traversal starts at counts as root (depth 0).
type virtualNode struct {
	v     VirtualAccessor
	depth int // relative to the traversal root
}

func (n virtualNode) IsRoot() bool         { return n.depth == 0 }
func (n virtualNode) IsSide(s Side) bool   { return n.depth > 0 && n.v.IsSide(s) }
func (n virtualNode) HasChild(s Side) bool { return n.v.HasChild(s) }

func (n virtualNode) Child(s Side) virtualNode {
	return virtualNode{v: n.v.Child(s), depth: n.depth + 1}
}

func (n virtualNode) Parent() virtualNode {
	return virtualNode{v: n.v.Parent(), depth: n.depth - 1}
}

// Walk returns an iterator over the subtree rooted at v, in the given order
// and wing. The second value yielded is the depth relative to v.
func Walk(v VirtualAccessor, order Order, wing Side) iter.Seq2[VirtualAccessor, int] {
	return func(yield func(VirtualAccessor, int) bool) {
		if v == nil || !v.Valid() {
			return
		}
		root := virtualNode{v: v}
		for n, ok := first(root, order, wing); ok; n, ok = next(n, order, wing) {
			if !yield(n.v, n.depth) {
				return
			}
		}
	}
}
