package ptree

import (
	"fmt"
	"iter"
	"slices"

	"github.com/npillmayer/arbor/order"
	"github.com/npillmayer/arbor/tree"
)

// StableMakeHeap makes tall the heap predicate of t and rearranges the nodes
// accordingly. The in-order sequence is unchanged. Nodes equal under tall keep
// their relative vertical order by age: an older node is never placed below a
// younger one it is as tall as.
//
// Passing a nil or indifferent predicate turns t into a plain binary search
// tree without changing its shape.
//
// Complexity: O(n).
func StableMakeHeap[T any](t *Tree[T], tall order.LessFunc[T]) error {
	cmp := order.NewComparator(tall, t.cfg.Left)
	if !cmp.HasHeap() {
		t.cfg.Tall, t.cmp = nil, cmp
		return nil
	}
	seq := slices.Collect(t.Range())
	taller := func(i, j int) bool { return above(cmp, seq[i], seq[j]) }
	if err := t.raw.Rearrange(seq, taller); err != nil {
		return err
	}
	t.cfg.Tall, t.cmp = tall, cmp
	tracer().Debugf("re-heaped predicated tree of %d nodes", len(seq))
	return nil
}

// StableSort makes left the in-order predicate of t and re-sorts the nodes.
// Values equal under left are kept in the order of their insertion. If t has a
// heap predicate, the heap order is restored; otherwise the nodes are
// arranged as a balanced tree.
//
// Complexity: O(n log n).
func StableSort[T any](t *Tree[T], left order.LessFunc[T]) error {
	if left == nil {
		return fmt.Errorf("%w: sort without in-order predicate", tree.ErrInvalidConfig)
	}
	seq := slices.Collect(t.Range())
	slices.SortFunc(seq, func(a, b tree.Accessor[T]) int {
		switch {
		case left(a.Value(), b.Value()):
			return -1
		case left(b.Value(), a.Value()):
			return 1
		case a.Seq() < b.Seq():
			return -1
		case a.Seq() > b.Seq():
			return 1
		}
		return 0
	})
	cmp := order.NewComparator(t.cfg.Tall, left)
	var taller func(i, j int) bool
	if cmp.HasHeap() {
		taller = func(i, j int) bool { return above(cmp, seq[i], seq[j]) }
	}
	if err := t.raw.Rearrange(seq, taller); err != nil {
		return err
	}
	t.cfg.Left, t.cmp = left, cmp
	tracer().Debugf("re-sorted predicated tree of %d nodes", len(seq))
	return nil
}

// StableHeapPush inserts value into the heap-ordered tree t. A value as tall
// as values already in t will be popped after them.
func StableHeapPush[T any](t *Tree[T], value T) (tree.Accessor[T], error) {
	if !t.heap() {
		return tree.Accessor[T]{}, fmt.Errorf("%w: tree has no heap predicate", tree.ErrPrecondition)
	}
	return t.Insert(value), nil
}

// StableHeapPop removes the tallest value from the heap-ordered tree t and
// returns it. Of several equally tall values, the one inserted first is
// removed.
func StableHeapPop[T any](t *Tree[T]) (T, error) {
	var zero T
	if !t.heap() {
		return zero, fmt.Errorf("%w: tree has no heap predicate", tree.ErrPrecondition)
	}
	if t.Empty() {
		return zero, tree.ErrEmptyTree
	}
	root := t.Root()
	value := root.Value()
	if err := t.Erase(root); err != nil {
		return zero, err
	}
	return value, nil
}

// Drain returns an iterator which pops values off the heap-ordered tree t
// until it is empty. Stopping the iteration early leaves the remaining values
// in t. Drain yields nothing for a tree without heap predicate.
func Drain[T any](t *Tree[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for !t.Empty() {
			v, err := StableHeapPop(t)
			if err != nil || !yield(v) {
				return
			}
		}
	}
}

// IsHeap reports whether no node of the subtree rooted at acc is taller than
// its parent under tall.
func IsHeap[T any](acc tree.Accessor[T], tall order.LessFunc[T]) bool {
	if tall == nil {
		return true
	}
	for n := range acc.Range(tree.PreOrder, tree.Left) {
		for _, s := range [2]tree.Side{tree.Left, tree.Right} {
			if n.HasChild(s) && tall(n.Child(s).Value(), n.Value()) {
				return false
			}
		}
	}
	return true
}
