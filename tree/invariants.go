package tree

import "fmt"

// Check validates the structural invariants of t: the root has no parent,
// every child links back to its parent, every node is live and no node is
// reachable twice.
//
// Check is meant for tests and debugging. It returns an error wrapping
// ErrPrecondition describing the first violation found.
//
// Complexity: O(n).
func (t *RawTree[T]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrPrecondition)
	}
	if t.root == nilIndex {
		return nil
	}
	a := t.a
	if int(t.root) >= len(a.slots) || !a.slots[t.root].live {
		return fmt.Errorf("%w: root slot %d is not live", ErrPrecondition, t.root)
	}
	if a.slots[t.root].parent != nilIndex {
		return fmt.Errorf("%w: root has a parent", ErrPrecondition)
	}
	seen := make(map[uint32]bool)
	stack := []uint32{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[n] {
			return fmt.Errorf("%w: node %d reachable twice", ErrPrecondition, n)
		}
		seen[n] = true
		for s, c := range a.slots[n].children {
			if c == nilIndex {
				continue
			}
			if int(c) >= len(a.slots) || !a.slots[c].live {
				return fmt.Errorf("%w: %s child of node %d is not live", ErrPrecondition, Side(s), n)
			}
			if a.slots[c].parent != n {
				tracer().Debugf("tree check: node %d has parent %d, expected %d", c, a.slots[c].parent, n)
				return fmt.Errorf("%w: %s child of node %d does not link back", ErrPrecondition, Side(s), n)
			}
			stack = append(stack, c)
		}
	}
	return nil
}
