/*
Package ptree implements predicated trees: binary trees whose shape is
governed by a pair of ordering predicates.

The Left predicate fixes the in-order sequence of values, which makes a
predicated tree a binary search tree. The optional Tall predicate fixes the
vertical arrangement: no node is located below a node it is shorter than.
With a random Tall predicate (see order.StableRandom) a predicated tree is a
treap; without one, it is a plain unbalanced binary search tree which
supports explicit rotations.

Values equal under Left keep the order of their insertion. Values equal under
Tall keep their relative vertical order, older nodes staying above younger
ones. This makes the heap operations of this package stable.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package ptree

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'arbor'
func tracer() tracing.Trace {
	return tracing.Select("arbor")
}
