package tree

// navigable is the minimal navigation contract the traversal algorithms need.
// Both the arena-backed bounded accessor and VirtualAccessor implementations
// satisfy it, so all six traversals share one implementation.
//
// IsRoot must report true for the root of the traversal, which may be an
// inner node of a larger physical tree.
type navigable[N any] interface {
	IsRoot() bool
	IsSide(Side) bool
	HasChild(Side) bool
	Child(Side) N
	Parent() N
}

// first returns the first node of the traversal of the tree rooted at root.
//
// Complexity: O(1) for pre-order, O(height) otherwise.
func first[N navigable[N]](root N, order Order, wing Side) (N, bool) {
	n := root
	switch order {
	case InOrder:
		for n.HasChild(wing) {
			n = n.Child(wing)
		}
	case PostOrder:
		n = descend(n, wing)
	}
	return n, true
}

// last returns the last node of the traversal of the tree rooted at root.
func last[N navigable[N]](root N, order Order, wing Side) (N, bool) {
	return first(root, order.Complement(), wing.Opposite())
}

// descend walks down to a leaf, preferring wing over the opposite side.
func descend[N navigable[N]](n N, wing Side) N {
	for {
		if n.HasChild(wing) {
			n = n.Child(wing)
		} else if n.HasChild(wing.Opposite()) {
			n = n.Child(wing.Opposite())
		} else {
			return n
		}
	}
}

// next moves to the successor of n. It returns false if n is the last node.
//
// Complexity: O(1) amortized over a full traversal.
func next[N navigable[N]](n N, order Order, wing Side) (N, bool) {
	other := wing.Opposite()
	switch order {
	case PreOrder:
		if n.HasChild(wing) {
			return n.Child(wing), true
		}
		if n.HasChild(other) {
			return n.Child(other), true
		}
		for !n.IsRoot() && (n.IsSide(other) || !n.Parent().HasChild(other)) {
			n = n.Parent()
		}
		if n.IsRoot() {
			return n, false
		}
		return n.Parent().Child(other), true
	case InOrder:
		if n.HasChild(other) {
			n = n.Child(other)
			for n.HasChild(wing) {
				n = n.Child(wing)
			}
			return n, true
		}
		for !n.IsRoot() && n.IsSide(other) {
			n = n.Parent()
		}
		if n.IsRoot() {
			return n, false
		}
		return n.Parent(), true
	case PostOrder:
		if n.IsRoot() {
			return n, false
		}
		if n.IsSide(other) || !n.Parent().HasChild(other) {
			return n.Parent(), true
		}
		return descend(n.Parent().Child(other), wing), true
	}
	assert(false, "traversal with invalid order")
	return n, false
}

// prev moves to the predecessor of n. It returns false if n is the first
// node.
func prev[N navigable[N]](n N, order Order, wing Side) (N, bool) {
	return next(n, order.Complement(), wing.Opposite())
}

// bounded is an accessor which regards the node at index root as the root of
// the tree, regardless of the physical tree shape above it.
type bounded[T any] struct {
	acc  Accessor[T]
	root uint32
}

func (b bounded[T]) IsRoot() bool {
	return b.acc.h.idx == b.root
}

func (b bounded[T]) IsSide(s Side) bool {
	return !b.IsRoot() && b.acc.IsSide(s)
}

func (b bounded[T]) HasChild(s Side) bool {
	return b.acc.HasChild(s)
}

func (b bounded[T]) Child(s Side) bounded[T] {
	return bounded[T]{acc: b.acc.Child(s), root: b.root}
}

func (b bounded[T]) Parent() bounded[T] {
	if b.IsRoot() {
		return bounded[T]{root: b.root}
	}
	return bounded[T]{acc: b.acc.Parent(), root: b.root}
}
