package tree

import "fmt"

// Cursor is a bidirectional position in a traversal of a (sub-)tree.
//
// A cursor is bound to a root node, an order and a wing. Stepping past the
// last node (with Next) or before the first node (with Prev) moves the cursor
// to the end sentinel. On the sentinel, Next, Prev, Current and Value report
// ErrCursorAtEnd; First and Last re-seat the cursor.
//
// A cursor holds no storage besides its position. It is invalidated by any
// structural mutation which detaches or relocates its current node or any of
// that node's ancestors. Using an invalidated cursor is not detected; it is
// the caller's obligation to avoid it.
type Cursor[T any] struct {
	root  Accessor[T]
	at    Accessor[T]
	order Order
	wing  Side
	end   bool
}

func (c *Cursor[T]) bound(acc Accessor[T]) bounded[T] {
	return bounded[T]{acc: acc, root: c.root.h.idx}
}

// Order returns the traversal order of the cursor.
func (c *Cursor[T]) Order() Order {
	return c.order
}

// Wing returns the preferred side of the cursor.
func (c *Cursor[T]) Wing() Side {
	return c.wing
}

// AtEnd reports whether the cursor is at the end sentinel.
func (c *Cursor[T]) AtEnd() bool {
	return c.end || !c.at.Valid()
}

// First positions the cursor at the first node. For an empty tree the cursor
// is at end.
func (c *Cursor[T]) First() {
	c.seat(first[bounded[T]])
}

// Last positions the cursor at the last node. For an empty tree the cursor is
// at end.
func (c *Cursor[T]) Last() {
	c.seat(last[bounded[T]])
}

func (c *Cursor[T]) seat(pos func(bounded[T], Order, Side) (bounded[T], bool)) {
	if !c.root.Valid() {
		c.at, c.end = Accessor[T]{}, true
		return
	}
	n, _ := pos(c.bound(c.root), c.order, c.wing)
	c.at, c.end = n.acc, false
}

// Current returns an accessor for the node the cursor is positioned at.
func (c *Cursor[T]) Current() (Accessor[T], error) {
	if c.AtEnd() {
		return Accessor[T]{}, ErrCursorAtEnd
	}
	return c.at, nil
}

// Value returns the value at the cursor position.
func (c *Cursor[T]) Value() (T, error) {
	if c.AtEnd() {
		var zero T
		return zero, ErrCursorAtEnd
	}
	return c.at.Value(), nil
}

// Next advances the cursor. Advancing from the last node moves the cursor to
// end and is not an error.
func (c *Cursor[T]) Next() error {
	return c.step(next[bounded[T]])
}

// Prev moves the cursor back. Moving back from the first node moves the
// cursor to end and is not an error.
func (c *Cursor[T]) Prev() error {
	return c.step(prev[bounded[T]])
}

func (c *Cursor[T]) step(move func(bounded[T], Order, Side) (bounded[T], bool)) error {
	if c.AtEnd() {
		return fmt.Errorf("%w: %s/%s step", ErrCursorAtEnd, c.order, c.wing)
	}
	n, ok := move(c.bound(c.at), c.order, c.wing)
	if !ok {
		c.at, c.end = Accessor[T]{}, true
		return nil
	}
	c.at = n.acc
	return nil
}

// Equal reports whether both cursors are at the same position. Two cursors at
// end are equal if they share the same root.
func (c *Cursor[T]) Equal(other *Cursor[T]) bool {
	if c.AtEnd() || other.AtEnd() {
		return c.AtEnd() && other.AtEnd() && c.root == other.root
	}
	return c.at == other.at
}

// CursorAt returns a cursor over the whole tree t, positioned at acc.
func (t *RawTree[T]) CursorAt(acc Accessor[T], order Order, wing Side) (*Cursor[T], error) {
	if err := t.owns(acc); err != nil {
		return nil, err
	}
	return &Cursor[T]{root: t.Root(), at: acc, order: order, wing: wing}, nil
}
