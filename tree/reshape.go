package tree

import "fmt"

// Rearrange relinks the nodes of t into a new shape. seq lists every node of t
// exactly once, in the in-order sequence the rearranged tree will have. For
// positions i and j of seq, taller(i, j) reports whether the node at i
// belongs above the node at j; it must be a strict weak ordering. The result
// is the Cartesian tree of seq under taller: no node is located below a node
// it is taller than. Among equally tall nodes the leftmost one is placed
// highest.
//
// If taller is nil, the nodes are arranged as a balanced tree.
//
// Nodes are relinked, not copied: accessors into t stay valid and keep their
// values. On error t is unchanged.
//
// Complexity: O(n).
func (t *RawTree[T]) Rearrange(seq []Accessor[T], taller func(i, j int) bool) error {
	if len(seq) != t.Len() {
		return fmt.Errorf("%w: rearrange needs all %d nodes, got %d", ErrPrecondition, t.Len(), len(seq))
	}
	if len(seq) == 0 {
		return nil
	}
	member := make(map[uint32]bool, len(seq))
	for acc := range t.Root().Range(PreOrder, Left) {
		member[acc.h.idx] = true
	}
	for _, acc := range seq {
		if acc.a != t.a || !t.a.valid(acc.h) || !member[acc.h.idx] {
			return ErrForeignHandle
		}
		member[acc.h.idx] = false // seen
	}
	if taller == nil {
		taller = balanced
	}
	a := t.a
	for _, acc := range seq {
		a.slots[acc.h.idx].parent = nilIndex
		a.slots[acc.h.idx].children = [2]uint32{nilIndex, nilIndex}
	}
	// stack holds the right spine of the tree built so far, as positions in seq
	stack := make([]int, 0, 32)
	link := func(p, c int, s Side) {
		pi, ci := seq[p].h.idx, seq[c].h.idx
		a.slots[pi].children[s] = ci
		a.slots[ci].parent = pi
	}
	for i := range seq {
		last := -1
		for len(stack) > 0 && taller(i, stack[len(stack)-1]) {
			last = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
		}
		if last >= 0 {
			link(i, last, Left)
		}
		if len(stack) > 0 {
			link(stack[len(stack)-1], i, Right)
		}
		stack = append(stack, i)
	}
	r := seq[stack[0]].h.idx
	a.slots[r].parent = nilIndex
	t.root = r
	return nil
}

// balanced orders positions by their largest power-of-two divisor. The
// Cartesian tree of 1…n under this order has minimal height.
func balanced(i, j int) bool {
	x, y := uint(i+1), uint(j+1)
	return x^(x-1) > y^(y-1)
}
