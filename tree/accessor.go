package tree

import "iter"

// Accessor references a node of a tree and navigates between nodes. It grants
// read access only.
//
// The zero value is the end accessor: it references no node and Valid
// reports false. Accessors are comparable; two accessors are equal if they
// reference the same node (identity, not value equality).
//
// An accessor is invalidated when the node it references is erased or
// discarded. Navigating from an invalid accessor yields end accessors; values
// read through it are zero values. Holding on to accessors across structural
// mutations which relocate a node is the caller's responsibility.
type Accessor[T any] struct {
	a *arena[T]
	h handle
}

// Valid reports whether the accessor references a live node.
func (acc Accessor[T]) Valid() bool {
	return acc.a.valid(acc.h)
}

func (acc Accessor[T]) at(i uint32) Accessor[T] {
	if i == nilIndex {
		return Accessor[T]{}
	}
	return Accessor[T]{a: acc.a, h: acc.a.handleOf(i)}
}

// Value returns the value stored at the node.
func (acc Accessor[T]) Value() T {
	if !acc.Valid() {
		var zero T
		return zero
	}
	return acc.a.slots[acc.h.idx].value
}

// Seq returns the creation stamp of the node. Stamps increase monotonically
// with every node created in a tree (including detached subtrees sharing its
// storage) and are never reused.
func (acc Accessor[T]) Seq() uint64 {
	if !acc.Valid() {
		return 0
	}
	return acc.a.slots[acc.h.idx].seq
}

// IsRoot reports whether the node has no parent.
func (acc Accessor[T]) IsRoot() bool {
	return acc.Valid() && acc.a.parent(acc.h.idx) == nilIndex
}

// HasParent reports whether the node has a parent.
func (acc Accessor[T]) HasParent() bool {
	return acc.Valid() && acc.a.parent(acc.h.idx) != nilIndex
}

// Parent returns the parent node, or an end accessor for a root.
func (acc Accessor[T]) Parent() Accessor[T] {
	if !acc.Valid() {
		return Accessor[T]{}
	}
	return acc.at(acc.a.parent(acc.h.idx))
}

// HasChild reports whether the node has a child at side s.
func (acc Accessor[T]) HasChild(s Side) bool {
	return acc.Valid() && acc.a.child(acc.h.idx, s) != nilIndex
}

// Child returns the child at side s, or an end accessor.
func (acc Accessor[T]) Child(s Side) Accessor[T] {
	if !acc.Valid() {
		return Accessor[T]{}
	}
	return acc.at(acc.a.child(acc.h.idx, s))
}

// IsSide reports whether the node is the s-child of its parent. It is false
// for roots.
func (acc Accessor[T]) IsSide(s Side) bool {
	if !acc.HasParent() {
		return false
	}
	return acc.a.sideOf(acc.h.idx) == s
}

// Which returns the side at which the node hangs below its parent. ok is false
// for roots and invalid accessors.
func (acc Accessor[T]) Which() (s Side, ok bool) {
	if !acc.HasParent() {
		return Left, false
	}
	return acc.a.sideOf(acc.h.idx), true
}

// Sibling returns the other child of the node's parent, or an end accessor.
func (acc Accessor[T]) Sibling() Accessor[T] {
	s, ok := acc.Which()
	if !ok {
		return Accessor[T]{}
	}
	return acc.at(acc.a.child(acc.a.parent(acc.h.idx), s.Opposite()))
}

// Depth returns the number of edges between the node and its root, or -1 for
// an invalid accessor.
//
// Complexity: O(depth).
func (acc Accessor[T]) Depth() int {
	if !acc.Valid() {
		return -1
	}
	d := 0
	for i := acc.a.parent(acc.h.idx); i != nilIndex; i = acc.a.parent(i) {
		d++
	}
	return d
}

// CommonAncestor returns the lowest common ancestor of acc and other. It
// returns an end accessor if either is invalid or if they are not part of the
// same tree.
//
// Complexity: O(depth).
func (acc Accessor[T]) CommonAncestor(other Accessor[T]) Accessor[T] {
	if !acc.Valid() || !other.Valid() || acc.a != other.a {
		return Accessor[T]{}
	}
	lower, higher := acc.h.idx, other.h.idx
	dl, dh := acc.Depth(), other.Depth()
	if dh > dl {
		lower, higher = higher, lower
		dl, dh = dh, dl
	}
	for ; dl > dh; dl-- {
		lower = acc.a.parent(lower)
	}
	for lower != higher {
		lower, higher = acc.a.parent(lower), acc.a.parent(higher)
	}
	return acc.at(lower) // nilIndex if the roots differ
}

// Begin returns a cursor over the subtree rooted at acc, positioned at the
// first node in the given order and wing. The cursor treats acc as root: it
// never leaves the subtree.
func (acc Accessor[T]) Begin(order Order, wing Side) *Cursor[T] {
	c := &Cursor[T]{root: acc, order: order, wing: wing}
	c.First()
	return c
}

// End returns a cursor over the subtree rooted at acc, positioned at the end
// sentinel.
func (acc Accessor[T]) End(order Order, wing Side) *Cursor[T] {
	return &Cursor[T]{root: acc, order: order, wing: wing, end: true}
}

// Range returns an iterator over the nodes of the subtree rooted at acc.
func (acc Accessor[T]) Range(order Order, wing Side) iter.Seq[Accessor[T]] {
	return func(yield func(Accessor[T]) bool) {
		if !acc.Valid() {
			return
		}
		root := bounded[T]{acc: acc, root: acc.h.idx}
		for n, ok := first(root, order, wing); ok; n, ok = next(n, order, wing) {
			if !yield(n.acc) {
				return
			}
		}
	}
}

// Values returns an iterator over the values of the subtree rooted at acc.
func (acc Accessor[T]) Values(order Order, wing Side) iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := range acc.Range(order, wing) {
			if !yield(n.Value()) {
				return
			}
		}
	}
}
