package tree

import "fmt"

// Mutator is an Accessor with the right to change the structure of the tree
// the node belongs to.
//
// Mutators are obtained from the owning *RawTree (RawTree.RootMutator,
// RawTree.Mutator) or from another mutator. Every mutating operation checks
// that the node still belongs to the tree before touching any link; on error
// the tree is unchanged.
type Mutator[T any] struct {
	Accessor[T]
	t *RawTree[T]
}

// Tree returns the tree the mutator operates on.
func (m Mutator[T]) Tree() *RawTree[T] {
	return m.t
}

// Up returns a mutator for the parent node.
func (m Mutator[T]) Up() Mutator[T] {
	return Mutator[T]{Accessor: m.Parent(), t: m.t}
}

// Down returns a mutator for the child at side s.
func (m Mutator[T]) Down(s Side) Mutator[T] {
	return Mutator[T]{Accessor: m.Child(s), t: m.t}
}

func (m Mutator[T]) check() error {
	if m.t == nil {
		return fmt.Errorf("%w: mutator without tree", ErrForeignHandle)
	}
	return m.t.owns(m.Accessor)
}

func (m Mutator[T]) slot() *slot[T] {
	return &m.a.slots[m.h.idx]
}

// SetValue replaces the value stored at the node.
func (m Mutator[T]) SetValue(value T) error {
	if err := m.check(); err != nil {
		return err
	}
	m.slot().value = value
	return nil
}

// InsertChild creates a new node holding value as the child at side s.
// It fails with ErrSlotOccupied if the node already has such a child.
func (m Mutator[T]) InsertChild(s Side, value T) (Mutator[T], error) {
	if err := m.check(); err != nil {
		return Mutator[T]{}, err
	}
	if m.HasChild(s) {
		return Mutator[T]{}, fmt.Errorf("%w: %s child", ErrSlotOccupied, s)
	}
	i := m.a.alloc(value) // may grow the arena; do not hold slot pointers across
	m.a.slots[i].parent = m.h.idx
	m.a.slots[m.h.idx].children[s] = i
	return Mutator[T]{Accessor: m.at(i), t: m.t}, nil
}

// Detach cuts the subtree rooted at the node out of the tree and returns it as
// a standalone tree. Detaching the root leaves the original tree empty and
// returns the complete tree.
//
// Accessors into the detached subtree stay valid and now refer to nodes of the
// returned tree.
func (m Mutator[T]) Detach() (*RawTree[T], error) {
	if err := m.check(); err != nil {
		return nil, err
	}
	i := m.h.idx
	if i == m.t.root {
		m.t.root = nilIndex
		return &RawTree[T]{a: m.a, root: i}, nil
	}
	p := m.a.parent(i)
	m.a.slots[p].children[m.a.sideOf(i)] = nilIndex
	m.a.slots[i].parent = nilIndex
	return &RawTree[T]{a: m.a, root: i}, nil
}

// Splice attaches the tree src as the child at side s. src must not be empty
// and is left empty after a successful splice, as its nodes are now owned by
// the destination.
//
// It fails with ErrSlotOccupied if the slot is taken and with ErrCycle if src
// is the destination tree itself (or a tree whose root is an ancestor of the
// node). A src which does not share storage with the destination is copied
// over; accessors into src are invalid afterwards.
func (m Mutator[T]) Splice(s Side, src *RawTree[T]) error {
	if err := m.check(); err != nil {
		return err
	}
	if src.Empty() {
		return fmt.Errorf("%w: splice of empty tree", ErrEmptyTree)
	}
	if m.HasChild(s) {
		return fmt.Errorf("%w: %s child", ErrSlotOccupied, s)
	}
	if src == m.t {
		return ErrCycle
	}
	var r uint32
	if src.a == m.a {
		for i := m.h.idx; i != nilIndex; i = m.a.parent(i) {
			if i == src.root {
				return ErrCycle
			}
		}
		r = src.root
	} else {
		r = transplant(src.a, src.root, m.a)
		src.Discard()
	}
	m.a.slots[m.h.idx].children[s] = r
	m.a.slots[r].parent = m.h.idx
	src.root = nilIndex
	return nil
}

// Replace swaps the child subtree at side s for src and returns the former
// child subtree (nil if there was none). src may be nil or empty, which makes
// Replace a detach of the child.
func (m Mutator[T]) Replace(s Side, src *RawTree[T]) (*RawTree[T], error) {
	if err := m.check(); err != nil {
		return nil, err
	}
	if src == m.t {
		return nil, ErrCycle
	}
	if !src.Empty() && src.a == m.a {
		for i := m.h.idx; i != nilIndex; i = m.a.parent(i) {
			if i == src.root {
				return nil, ErrCycle
			}
		}
	}
	var old *RawTree[T]
	if m.HasChild(s) {
		var err error
		old, err = m.Down(s).Detach()
		assert(err == nil, "Replace: detach of checked child failed")
	}
	if !src.Empty() {
		err := m.Splice(s, src)
		assert(err == nil, "Replace: splice into emptied slot failed")
	}
	return old, nil
}

// Rotate performs a single rotation about the node. Rotating to the left lifts
// the right child into the node's position and makes the node its left child;
// rotating to the right is the mirror image:
//
//	    n                 c
//	   / \   Rotate(L)   / \
//	  a   c   ------>   n   e
//	     / \           / \
//	    d   e         a   d
//
// The in-order sequence of nodes is preserved. Rotation fails with
// ErrMissingChild if the child to lift is absent. The node keeps its value:
// accessors stay attached to the same values.
func (m Mutator[T]) Rotate(dir Side) error {
	if err := m.check(); err != nil {
		return err
	}
	lift := dir.Opposite()
	if !m.HasChild(lift) {
		return fmt.Errorf("%w: rotate %s needs %s child", ErrMissingChild, dir, lift)
	}
	a := m.a
	n := m.h.idx
	c := a.child(n, lift)
	inner := a.child(c, dir)
	p := a.parent(n)
	// inner subtree moves from c to n
	a.slots[n].children[lift] = inner
	if inner != nilIndex {
		a.slots[inner].parent = n
	}
	// c takes n's position
	if p == nilIndex {
		m.t.root = c
	} else {
		a.slots[p].children[a.sideOf(n)] = c
	}
	a.slots[c].parent = p
	a.slots[c].children[dir] = n
	a.slots[n].parent = c
	return nil
}

// Flip exchanges the two child subtrees of the node.
func (m Mutator[T]) Flip() error {
	if err := m.check(); err != nil {
		return err
	}
	ch := &m.slot().children
	ch[Left], ch[Right] = ch[Right], ch[Left]
	return nil
}

// Erase removes the subtree rooted at the node and releases its nodes. All
// accessors into the subtree become invalid.
func (m Mutator[T]) Erase() error {
	sub, err := m.Detach()
	if err != nil {
		return err
	}
	sub.Discard()
	return nil
}

// Relink moves the node, without its subtrees, to take the position of the
// node target, which is removed from the tree. The subtrees of target are
// re-attached below the moved node and the former subtrees of the node are
// handed to the node's former parent slot. Both nodes must belong to the tree
// and the node must be a leaf or have one child.
//
// Relink is the building block for deletion in ordered trees: it moves an
// in-order neighbour into the place of a deleted node without copying values.
// The removed target's subtree links are cleared; target itself is returned as
// a single-node standalone tree.
func (m Mutator[T]) Relink(target Mutator[T]) (*RawTree[T], error) {
	if err := m.check(); err != nil {
		return nil, err
	}
	if err := target.check(); err != nil {
		return nil, err
	}
	if target.t != m.t {
		return nil, ErrForeignHandle
	}
	a := m.a
	n, x := m.h.idx, target.h.idx
	if n == x {
		return nil, fmt.Errorf("%w: relink of node onto itself", ErrPrecondition)
	}
	if m.HasChild(Left) && m.HasChild(Right) {
		return nil, fmt.Errorf("%w: relinked node has two children", ErrPrecondition)
	}
	m.unlink(n)
	// n takes x's position
	xp := a.parent(x)
	if xp == nilIndex {
		m.t.root = n
	} else {
		a.slots[xp].children[a.sideOf(x)] = n
	}
	a.slots[n].parent = xp
	for _, s := range [2]Side{Left, Right} {
		c := a.child(x, s)
		a.slots[n].children[s] = c
		if c != nilIndex {
			a.slots[c].parent = n
		}
	}
	a.slots[x].parent = nilIndex
	a.slots[x].children = [2]uint32{nilIndex, nilIndex}
	return &RawTree[T]{a: a, root: x}, nil
}

// Collapse removes the node from the tree. The node must have at most one
// child, which takes the node's position. The removed node is returned as a
// single-node standalone tree.
func (m Mutator[T]) Collapse() (*RawTree[T], error) {
	if err := m.check(); err != nil {
		return nil, err
	}
	if m.HasChild(Left) && m.HasChild(Right) {
		return nil, fmt.Errorf("%w: collapsed node has two children", ErrPrecondition)
	}
	m.unlink(m.h.idx)
	return &RawTree[T]{a: m.a, root: m.h.idx}, nil
}

// unlink cuts node n, which has at most one child, out of the tree. The child
// of n moves up into its place.
func (m Mutator[T]) unlink(n uint32) {
	a := m.a
	only := a.child(n, Left)
	if only == nilIndex {
		only = a.child(n, Right)
	}
	np := a.parent(n)
	if np == nilIndex {
		m.t.root = only
	} else {
		a.slots[np].children[a.sideOf(n)] = only
	}
	if only != nilIndex {
		a.slots[only].parent = np
	}
	a.slots[n].parent = nilIndex
	a.slots[n].children = [2]uint32{nilIndex, nilIndex}
}
