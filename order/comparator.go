package order

import "github.com/npillmayer/arbor/tree"

// Comparator bundles the two predicates of a predicated tree.
type Comparator[T any] struct {
	Tall LessFunc[T] // vertical order, nil means Indifferent
	Left LessFunc[T] // in-order
}

// NewComparator creates a comparator. A nil tall predicate is Indifferent.
func NewComparator[T any](tall, left LessFunc[T]) Comparator[T] {
	if tall == nil {
		tall = Indifferent[T]()
	}
	return Comparator[T]{Tall: tall, Left: left}
}

// HasHeap reports whether the comparator has a non-trivial Tall predicate.
func (c Comparator[T]) HasHeap() bool {
	return !IsIndifferent(c.Tall)
}

func (c Comparator[T]) tall(a, b T) bool {
	return c.Tall != nil && c.Tall(a, b)
}

// EqualTall reports whether neither value is taller than the other.
func (c Comparator[T]) EqualTall(a, b T) bool {
	return !c.tall(a, b) && !c.tall(b, a)
}

// EqualLeft reports whether neither value is left of the other.
func (c Comparator[T]) EqualLeft(a, b T) bool {
	return !c.Left(a, b) && !c.Left(b, a)
}

// Equal reports whether a and b are equal under both predicates.
func (c Comparator[T]) Equal(a, b T) bool {
	return c.EqualLeft(a, b) && c.EqualTall(a, b)
}

// Horizontal reports whether a value being inserted belongs to side s of an
// existing value, as far as the in-order is concerned. Values equal to
// existing under Left go right: equal values keep their insertion order.
func (c Comparator[T]) Horizontal(s tree.Side, incoming, existing T) bool {
	if s == tree.Left {
		return c.Left(incoming, existing)
	}
	return !c.Left(incoming, existing)
}

// Vertical reports whether a belongs above b if a is located at the wing side
// of b. It equals Tall(a, b), except for values equal under both predicates:
// then Vertical is true iff wing is Right. This positional rule suits trees
// without a notion of node age; predicated trees decide with Above.
func (c Comparator[T]) Vertical(wing tree.Side, a, b T) bool {
	if c.tall(a, b) {
		return true
	}
	return wing == tree.Right && !c.tall(b, a) && c.EqualLeft(a, b)
}

// Above reports whether a belongs above b. It equals Tall(a, b), except for
// values equally tall: then a is above b iff aFirst is true, i.e. if a's node
// has been created before b's.
func (c Comparator[T]) Above(a, b T, aFirst bool) bool {
	if c.tall(a, b) {
		return true
	}
	return aFirst && !c.tall(b, a)
}
