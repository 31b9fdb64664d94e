package arbor

import (
	"fmt"
	"io"
	"iter"
	"math"
	"strings"

	"github.com/npillmayer/arbor/order"
	"github.com/npillmayer/arbor/ptree"
	"github.com/npillmayer/arbor/tree"
	"github.com/npillmayer/arbor/treefmt"
	"golang.org/x/exp/constraints"
)

// Multiset is an ordered bag of values. Equal values may be contained more
// than once; they are kept in the order they have been added.
//
// A Multiset is a treap: values are ordered by an in-order predicate and
// balanced by a pseudo-random heap predicate derived from a hash of the
// values. Without a hash function it degrades to an unbalanced binary search
// tree.
//
// The zero value is not usable; create multisets with NewMultiset or
// NewMultisetFunc.
type Multiset[E any] struct {
	t *ptree.Tree[E]
}

// treapSeed seeds the heap predicate of multisets.
const treapSeed = 0x5eed_a2b0

// NewMultiset creates an empty multiset of values ordered by '<'.
func NewMultiset[E constraints.Ordered]() *Multiset[E] {
	m, err := NewMultisetFunc(order.Natural[E](), hashOrdered[E])
	if err != nil {
		panic(err) // Natural is never nil
	}
	return m
}

// NewMultisetFunc creates an empty multiset ordered by less. If less is nil,
// the natural ordering of E is used, if there is one (see order.Default).
// hash is used to balance the multiset and may be nil.
func NewMultisetFunc[E any](less order.LessFunc[E], hash func(E) uint64) (*Multiset[E], error) {
	cfg := ptree.Config[E]{Left: less}
	if hash != nil {
		cfg.Tall = order.StableRandom(treapSeed, hash)
	}
	t, err := ptree.New(cfg)
	if err != nil {
		T().Errorf("cannot create multiset: %v", err)
		return nil, err
	}
	return &Multiset[E]{t: t}, nil
}

// Len returns the number of values in m, counting duplicates.
func (m *Multiset[E]) Len() int {
	return m.t.Len()
}

// Add inserts value into m.
//
// Complexity: O(log n) expected.
func (m *Multiset[E]) Add(value E) {
	m.t.Insert(value)
}

// AddAll inserts all values of seq into m.
func (m *Multiset[E]) AddAll(seq iter.Seq[E]) {
	m.t.InsertAll(seq)
}

// Remove removes one occurrence of value from m, the one added first. It
// reports whether m contained value.
func (m *Multiset[E]) Remove(value E) bool {
	n := m.first(value)
	if !n.Valid() {
		return false
	}
	if err := m.t.Erase(n); err != nil {
		panic(err) // n has just been found in m
	}
	return true
}

// RemoveAll removes all occurrences of value from m and returns their number.
func (m *Multiset[E]) RemoveAll(value E) int {
	cnt := 0
	for m.Remove(value) {
		cnt++
	}
	return cnt
}

// Contains reports whether value is an element of m.
func (m *Multiset[E]) Contains(value E) bool {
	return m.first(value).Valid()
}

// Count returns the number of occurrences of value in m.
func (m *Multiset[E]) Count(value E) int {
	cnt := 0
	for range m.t.EqualRange(value) {
		cnt++
	}
	return cnt
}

func (m *Multiset[E]) first(value E) tree.Accessor[E] {
	for n := range m.t.EqualRange(value) {
		return n
	}
	return tree.Accessor[E]{}
}

// Min returns the smallest value of m. If m is empty, ok is false.
func (m *Multiset[E]) Min() (value E, ok bool) {
	if n := m.t.Min(); n.Valid() {
		return n.Value(), true
	}
	return
}

// Max returns the largest value of m. If m is empty, ok is false.
func (m *Multiset[E]) Max() (value E, ok bool) {
	if n := m.t.Max(); n.Valid() {
		return n.Value(), true
	}
	return
}

// All iterates over the values of m in ascending order.
func (m *Multiset[E]) All() iter.Seq[E] {
	return m.t.Values()
}

// Backward iterates over the values of m in descending order.
func (m *Multiset[E]) Backward() iter.Seq[E] {
	return m.t.Backward()
}

// Between iterates in ascending order over the values v of m with
// lo <= v < hi.
func (m *Multiset[E]) Between(lo, hi E) iter.Seq[E] {
	return func(yield func(E) bool) {
		n := m.t.LowerBound(lo)
		if !n.Valid() {
			return
		}
		c, err := m.t.Cursor(n)
		if err != nil {
			return
		}
		left := m.t.Comparator().Left
		for ; !c.AtEnd(); _ = c.Next() {
			acc, _ := c.Current()
			if !left(acc.Value(), hi) || !yield(acc.Value()) {
				return
			}
		}
	}
}

// Clear removes all values from m.
func (m *Multiset[E]) Clear() {
	m.t.Clear()
}

// Tree exposes the predicated tree underlying m. Values must not be changed
// through it in a way that affects their order.
func (m *Multiset[E]) Tree() *ptree.Tree[E] {
	return m.t
}

// Print draws the tree structure of m onto w.
func (m *Multiset[E]) Print(w io.Writer, cfg *treefmt.Config) error {
	return treefmt.Print(w, m.t.Root().Virtual(), cfg)
}

// String lists the values of m in ascending order, as in "{1 2 2 5}".
func (m *Multiset[E]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	for v := range m.t.Values() {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		fmt.Fprint(&b, v)
	}
	b.WriteByte('}')
	return b.String()
}

// hashOrdered hashes values of the predeclared ordered types. Named types
// fall back to hashing their printed form.
func hashOrdered[E constraints.Ordered](v E) uint64 {
	switch x := any(v).(type) {
	case string:
		return order.HashString(x)
	case int:
		return order.HashInt(x)
	case int8:
		return order.HashInt(x)
	case int16:
		return order.HashInt(x)
	case int32:
		return order.HashInt(x)
	case int64:
		return order.HashInt(x)
	case uint:
		return order.HashInt(x)
	case uint8:
		return order.HashInt(x)
	case uint16:
		return order.HashInt(x)
	case uint32:
		return order.HashInt(x)
	case uint64:
		return order.HashInt(x)
	case uintptr:
		return order.HashInt(x)
	case float32:
		return order.HashInt(math.Float32bits(x))
	case float64:
		return order.HashInt(math.Float64bits(x))
	}
	return order.HashString(fmt.Sprint(v))
}
