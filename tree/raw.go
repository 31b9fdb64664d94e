package tree

import (
	"fmt"
	"slices"
)

// RawTree is a binary tree without any ordering discipline. It owns zero or
// one root node; the empty tree is a valid state.
//
// A tree created by
//
//	&RawTree[T]{}
//
// is a valid, empty tree.
//
// Trees detached from a RawTree share node storage with it. Storage of a
// detached tree which is neither spliced back nor discarded stays allocated
// until all trees sharing it are unreachable.
type RawTree[T any] struct {
	a    *arena[T]
	root uint32
}

// New creates an empty tree.
func New[T any]() *RawTree[T] {
	return &RawTree[T]{a: newArena[T]()}
}

// NewWithRoot creates a tree consisting of a single root node.
func NewWithRoot[T any](value T) *RawTree[T] {
	t := New[T]()
	t.root = t.a.alloc(value)
	return t
}

func (t *RawTree[T]) storage() *arena[T] {
	if t.a == nil {
		t.a = newArena[T]()
	}
	return t.a
}

// Empty reports whether the tree has no nodes.
func (t *RawTree[T]) Empty() bool {
	return t == nil || t.root == nilIndex
}

// Len returns the number of nodes. The count is not cached, Len walks the
// whole tree.
func (t *RawTree[T]) Len() int {
	if t.Empty() {
		return 0
	}
	return t.a.count(t.root)
}

// Root returns an accessor for the root node, or an end accessor if the tree
// is empty.
func (t *RawTree[T]) Root() Accessor[T] {
	if t.Empty() {
		return Accessor[T]{}
	}
	return Accessor[T]{a: t.a, h: t.a.handleOf(t.root)}
}

// RootMutator returns a mutator for the root node. The mutator is invalid if
// the tree is empty.
func (t *RawTree[T]) RootMutator() Mutator[T] {
	return Mutator[T]{Accessor: t.Root(), t: t}
}

// InsertRoot creates the root node of an empty tree.
func (t *RawTree[T]) InsertRoot(value T) (Mutator[T], error) {
	if t == nil {
		return Mutator[T]{}, fmt.Errorf("%w: nil tree", ErrPrecondition)
	}
	if !t.Empty() {
		return Mutator[T]{}, ErrNotEmpty
	}
	t.root = t.storage().alloc(value)
	return t.RootMutator(), nil
}

// Mutator upgrades an accessor to a mutator for this tree. It fails if a is
// not valid or does not reference a node of t.
//
// Complexity: O(depth(a)).
func (t *RawTree[T]) Mutator(a Accessor[T]) (Mutator[T], error) {
	if err := t.owns(a); err != nil {
		return Mutator[T]{}, err
	}
	return Mutator[T]{Accessor: a, t: t}, nil
}

// Contains reports whether a references a node of t.
func (t *RawTree[T]) Contains(a Accessor[T]) bool {
	return t.owns(a) == nil
}

func (t *RawTree[T]) owns(a Accessor[T]) error {
	if t == nil || a.a == nil {
		return ErrForeignHandle
	}
	if !a.a.valid(a.h) {
		return ErrStaleHandle
	}
	if a.a != t.a || t.root == nilIndex || a.a.topOf(a.h.idx) != t.root {
		return ErrForeignHandle
	}
	return nil
}

// Begin returns a cursor positioned at the first node of the tree in the given
// order and wing.
func (t *RawTree[T]) Begin(order Order, wing Side) *Cursor[T] {
	return t.Root().Begin(order, wing)
}

// Discard releases all nodes of t. Every accessor into t becomes invalid and
// t is left empty.
func (t *RawTree[T]) Discard() {
	if t.Empty() {
		return
	}
	t.a.releaseSubtree(t.root)
	t.root = nilIndex
}

// Clone creates a deep copy of t with its own node storage. Relative creation
// order of nodes is preserved.
func (t *RawTree[T]) Clone() *RawTree[T] {
	c := New[T]()
	if t.Empty() {
		return c
	}
	c.root = transplant(t.a, t.root, c.a)
	return c
}

// transplant copies the subtree rooted at i in src into dst and returns the
// index of the copy's root. Slots are allocated in order of their creation
// stamps in src, so relative creation order survives the copy.
func transplant[T any](src *arena[T], i uint32, dst *arena[T]) uint32 {
	var nodes []uint32
	stack := []uint32{i}
	for len(stack) > 0 {
		x := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nodes = append(nodes, x)
		for _, c := range src.slots[x].children {
			if c != nilIndex {
				stack = append(stack, c)
			}
		}
	}
	slices.SortFunc(nodes, func(x, y uint32) int {
		sx, sy := src.slots[x].seq, src.slots[y].seq
		switch {
		case sx < sy:
			return -1
		case sx > sy:
			return 1
		}
		return 0
	})
	mapped := make(map[uint32]uint32, len(nodes))
	for _, x := range nodes {
		mapped[x] = dst.alloc(src.slots[x].value)
	}
	for _, x := range nodes {
		n := mapped[x]
		if p := src.slots[x].parent; p != nilIndex && x != i {
			dst.slots[n].parent = mapped[p]
		}
		for s, c := range src.slots[x].children {
			if c != nilIndex {
				dst.slots[n].children[s] = mapped[c]
			}
		}
	}
	return mapped[i]
}

// Equal reports whether two trees have identical shape and pairwise equal
// values under eq.
func Equal[T any](t1, t2 *RawTree[T], eq func(T, T) bool) bool {
	if t1.Empty() || t2.Empty() {
		return t1.Empty() == t2.Empty()
	}
	type pair struct{ x, y uint32 }
	stack := []pair{{t1.root, t2.root}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		sx, sy := &t1.a.slots[p.x], &t2.a.slots[p.y]
		if !eq(sx.value, sy.value) {
			return false
		}
		for s := range sx.children {
			cx, cy := sx.children[s], sy.children[s]
			if (cx == nilIndex) != (cy == nilIndex) {
				return false
			}
			if cx != nilIndex {
				stack = append(stack, pair{cx, cy})
			}
		}
	}
	return true
}
