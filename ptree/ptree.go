package ptree

import (
	"fmt"
	"iter"

	"github.com/npillmayer/arbor/order"
	"github.com/npillmayer/arbor/tree"
	"golang.org/x/exp/constraints"
)

// Tree is a predicated binary tree.
//
// Nodes are read through tree.Accessor; all structural changes go through the
// methods of Tree, which keep the in-order and the heap invariant intact.
// Accessors returned by Tree stay valid until their node is erased, even
// across erasure of other nodes and across re-heaping or re-sorting.
type Tree[T any] struct {
	cfg  Config[T]
	cmp  order.Comparator[T]
	raw  *tree.RawTree[T]
	size int
}

// New creates an empty tree with validated configuration.
func New[T any](cfg Config[T]) (*Tree[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	return &Tree[T]{cfg: cfg, cmp: cfg.Comparator(), raw: tree.New[T]()}, nil
}

// NewOrdered creates an empty binary search tree ordered by '<'.
func NewOrdered[T constraints.Ordered]() *Tree[T] {
	cfg := Config[T]{Left: order.Natural[T]()}
	return &Tree[T]{cfg: cfg, cmp: cfg.Comparator(), raw: tree.New[T]()}
}

// FromRaw adopts raw as a predicated tree. raw must satisfy the invariants
// implied by cfg; FromRaw checks them and fails with an error wrapping
// tree.ErrPrecondition if it does not. raw must not be used by the caller
// afterwards.
func FromRaw[T any](raw *tree.RawTree[T], cfg Config[T]) (*Tree[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if raw == nil {
		raw = tree.New[T]()
	}
	cfg = cfg.normalized()
	t := &Tree[T]{cfg: cfg, cmp: cfg.Comparator(), raw: raw, size: raw.Len()}
	if err := t.Check(); err != nil {
		return nil, err
	}
	return t, nil
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[T]) Config() Config[T] {
	return t.cfg
}

// Comparator returns the comparator governing the tree.
func (t *Tree[T]) Comparator() order.Comparator[T] {
	return t.cmp
}

// Len returns the number of values in the tree.
func (t *Tree[T]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Empty reports whether the tree holds no values.
func (t *Tree[T]) Empty() bool {
	return t.Len() == 0
}

// Root returns an accessor for the root node.
func (t *Tree[T]) Root() tree.Accessor[T] {
	return t.raw.Root()
}

// heap reports if the tree maintains a heap order.
func (t *Tree[T]) heap() bool {
	return t.cmp.HasHeap()
}

// above decides the vertical order of two nodes. Nodes of equal height are
// ordered by creation, older ones first.
func above[T any](cmp order.Comparator[T], a, b tree.Accessor[T]) bool {
	return cmp.Above(a.Value(), b.Value(), a.Seq() < b.Seq())
}

// Insert adds a value and returns an accessor for its node. A value equal to
// values already in the tree is placed after them in in-order.
//
// Complexity: O(height).
func (t *Tree[T]) Insert(value T) tree.Accessor[T] {
	return t.insertBelow(t.raw.RootMutator(), value)
}

// InsertHint adds a value, starting the search for its position at hint
// instead of at the root. The value ends up at the same position as with
// Insert. A hint close to the value's position saves the walk from the root,
// e.g. when inserting sorted input with the previously inserted node as hint.
//
// If hint is invalid or not part of t, InsertHint behaves like Insert. If the
// value does not belong into the subtree of hint, the search starts at the
// lowest ancestor of hint whose subtree it belongs into.
//
// Complexity: O(distance between hint and the value's position).
func (t *Tree[T]) InsertHint(value T, hint tree.Accessor[T]) tree.Accessor[T] {
	m, err := t.raw.Mutator(hint)
	if err != nil {
		return t.Insert(value)
	}
	for {
		a := t.bounding(m.Accessor, value)
		if !a.Valid() {
			break
		}
		m, err = t.raw.Mutator(a)
		assert(err == nil, "ancestor not part of tree")
	}
	return t.insertBelow(m, value)
}

// bounding returns the lowest ancestor of n at which a search for value from
// the root would turn away from n, or an end accessor if a search for value
// passes through n.
func (t *Tree[T]) bounding(n tree.Accessor[T], value T) tree.Accessor[T] {
	lower, upper := false, false // nearest bound on either side checked
	for c := n; c.HasParent() && !(lower && upper); c = c.Parent() {
		p := c.Parent()
		if c.IsSide(tree.Left) {
			if !upper {
				upper = true
				if !t.cmp.Horizontal(tree.Left, value, p.Value()) {
					return p
				}
			}
		} else if !lower {
			lower = true
			if !t.cmp.Horizontal(tree.Right, value, p.Value()) {
				return p
			}
		}
	}
	return tree.Accessor[T]{}
}

// insertBelow inserts value into the subtree of m, which must bound value.
func (t *Tree[T]) insertBelow(m tree.Mutator[T], value T) tree.Accessor[T] {
	t.size++
	if t.raw.Empty() {
		r, err := t.raw.InsertRoot(value)
		assert(err == nil, "insert into empty tree failed")
		return r.Accessor
	}
	for {
		s := tree.Right
		if t.cmp.Horizontal(tree.Left, value, m.Value()) {
			s = tree.Left
		}
		if !m.HasChild(s) {
			c, err := m.InsertChild(s, value)
			assert(err == nil, "insert into free slot failed")
			m = c
			break
		}
		m = m.Down(s)
	}
	if t.heap() {
		t.bubbleUp(m)
	}
	return m.Accessor
}

// bubbleUp rotates m upwards until it is not above its parent any more.
func (t *Tree[T]) bubbleUp(m tree.Mutator[T]) {
	for m.HasParent() && above(t.cmp, m.Accessor, m.Parent()) {
		dir := tree.Left
		if m.IsSide(tree.Left) {
			dir = tree.Right
		}
		err := m.Up().Rotate(dir)
		assert(err == nil, "rotation towards existing child failed")
	}
}

// InsertAll adds all values of seq. Each value is inserted with the node of
// its predecessor in seq as hint, which makes inserting sorted input cheap.
func (t *Tree[T]) InsertAll(seq iter.Seq[T]) {
	var hint tree.Accessor[T]
	for v := range seq {
		hint = t.InsertHint(v, hint)
	}
}

// LowerBound returns the first node (in in-order) which is not left of value,
// or an end accessor.
//
// Complexity: O(height).
func (t *Tree[T]) LowerBound(value T) tree.Accessor[T] {
	var found tree.Accessor[T]
	for n := t.raw.Root(); n.Valid(); {
		if t.cmp.Left(n.Value(), value) {
			n = n.Child(tree.Right)
		} else {
			found, n = n, n.Child(tree.Left)
		}
	}
	return found
}

// UpperBound returns the first node (in in-order) which is right of value,
// or an end accessor.
//
// Complexity: O(height).
func (t *Tree[T]) UpperBound(value T) tree.Accessor[T] {
	var found tree.Accessor[T]
	for n := t.raw.Root(); n.Valid(); {
		if t.cmp.Left(value, n.Value()) {
			found, n = n, n.Child(tree.Left)
		} else {
			n = n.Child(tree.Right)
		}
	}
	return found
}

// Find returns the first node holding a value equal to value under both
// predicates, or an end accessor.
func (t *Tree[T]) Find(value T) tree.Accessor[T] {
	for n := range t.EqualRange(value) {
		if t.cmp.Equal(n.Value(), value) {
			return n
		}
	}
	return tree.Accessor[T]{}
}

// EqualRange iterates in in-order over all nodes equal to value under the
// Left predicate.
func (t *Tree[T]) EqualRange(value T) iter.Seq[tree.Accessor[T]] {
	return func(yield func(tree.Accessor[T]) bool) {
		lb := t.LowerBound(value)
		if !lb.Valid() || t.cmp.Left(value, lb.Value()) {
			return
		}
		c, err := t.raw.CursorAt(lb, tree.InOrder, tree.Left)
		assert(err == nil, "lower bound not part of tree")
		for ; !c.AtEnd(); _ = c.Next() {
			n, _ := c.Current()
			if t.cmp.Left(value, n.Value()) || !yield(n) {
				return
			}
		}
	}
}

// Cursor returns an in-order cursor positioned at acc.
func (t *Tree[T]) Cursor(acc tree.Accessor[T]) (*tree.Cursor[T], error) {
	return t.raw.CursorAt(acc, tree.InOrder, tree.Left)
}

// Erase removes the node of acc from the tree. It fails with an error
// wrapping tree.ErrPrecondition if acc does not reference a node of t. Other
// accessors stay valid: nodes are relinked, values are never moved between
// nodes.
//
// Complexity: O(height).
func (t *Tree[T]) Erase(acc tree.Accessor[T]) error {
	m, err := t.raw.Mutator(acc)
	if err != nil {
		return err
	}
	var removed *tree.RawTree[T]
	switch {
	case t.heap():
		// rotate m down towards its taller child
		for m.HasChild(tree.Left) && m.HasChild(tree.Right) {
			dir := tree.Left
			if above(t.cmp, m.Child(tree.Left), m.Child(tree.Right)) {
				dir = tree.Right
			}
			err = m.Rotate(dir)
			assert(err == nil, "rotation of inner node failed")
		}
		removed, err = m.Collapse()
	case m.HasChild(tree.Left) && m.HasChild(tree.Right):
		succ := m.Child(tree.Right)
		for succ.HasChild(tree.Left) {
			succ = succ.Child(tree.Left)
		}
		var sm tree.Mutator[T]
		sm, err = t.raw.Mutator(succ)
		assert(err == nil, "successor not part of tree")
		removed, err = sm.Relink(m)
	default:
		removed, err = m.Collapse()
	}
	assert(err == nil, "removal of checked node failed")
	removed.Discard()
	t.size--
	return nil
}

// Rotate performs a rotation about the node of acc (see tree.Mutator.Rotate).
// Rotations are available only for trees without a heap predicate, as they
// would break the heap order.
func (t *Tree[T]) Rotate(acc tree.Accessor[T], dir tree.Side) error {
	if t.heap() {
		return fmt.Errorf("%w: rotation in heap-ordered tree", tree.ErrPrecondition)
	}
	m, err := t.raw.Mutator(acc)
	if err != nil {
		return err
	}
	return m.Rotate(dir)
}

// Min returns the node of the leftmost value, or an end accessor.
func (t *Tree[T]) Min() tree.Accessor[T] {
	return t.extreme(tree.Left)
}

// Max returns the node of the rightmost value, or an end accessor.
func (t *Tree[T]) Max() tree.Accessor[T] {
	return t.extreme(tree.Right)
}

func (t *Tree[T]) extreme(s tree.Side) tree.Accessor[T] {
	n := t.raw.Root()
	for n.HasChild(s) {
		n = n.Child(s)
	}
	return n
}

// Clear removes all values.
func (t *Tree[T]) Clear() {
	t.raw.Discard()
	t.size = 0
}

// Release hands out the underlying raw tree and leaves t empty.
func (t *Tree[T]) Release() *tree.RawTree[T] {
	raw := t.raw
	t.raw, t.size = tree.New[T](), 0
	return raw
}

// Range iterates over all nodes in in-order.
func (t *Tree[T]) Range() iter.Seq[tree.Accessor[T]] {
	return t.raw.Root().Range(tree.InOrder, tree.Left)
}

// Values iterates over all values in in-order.
func (t *Tree[T]) Values() iter.Seq[T] {
	return t.raw.Root().Values(tree.InOrder, tree.Left)
}

// Backward iterates over all values in reverse in-order.
func (t *Tree[T]) Backward() iter.Seq[T] {
	return t.raw.Root().Values(tree.InOrder, tree.Right)
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
