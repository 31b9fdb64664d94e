package ptree

import (
	"fmt"

	"github.com/npillmayer/arbor/tree"
)

// Check validates the invariants of a predicated tree: the structure of the
// raw tree, the in-order sequence, the heap order and the cached size. It
// returns an error wrapping tree.ErrPrecondition for the first violation
// found.
//
// Complexity: O(n).
func (t *Tree[T]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", tree.ErrPrecondition)
	}
	if err := t.raw.Check(); err != nil {
		return err
	}
	if n := t.raw.Len(); n != t.size {
		return fmt.Errorf("%w: size mismatch (%d != %d)", tree.ErrPrecondition, t.size, n)
	}
	var prev tree.Accessor[T]
	for n := range t.Range() {
		if prev.Valid() && t.cmp.Left(n.Value(), prev.Value()) {
			tracer().Debugf("ptree check: %v follows %v in in-order", n.Value(), prev.Value())
			return fmt.Errorf("%w: in-order sequence is not sorted", tree.ErrPrecondition)
		}
		prev = n
	}
	if t.heap() && !IsHeap(t.raw.Root(), t.cmp.Tall) {
		return fmt.Errorf("%w: heap order violated", tree.ErrPrecondition)
	}
	return nil
}
