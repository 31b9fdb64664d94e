/*
Package order provides ordering predicates for predicated trees.

A predicated tree is governed by two predicates. Left decides the in-order
position of values: Left(a, b) means a sorts before b. Tall decides the
vertical position: Tall(a, b) means a belongs above b. A tree whose Tall
predicate is Indifferent is a plain binary search tree; a tree with a
non-trivial Tall predicate is a Cartesian tree (a treap, if Tall is random).

Both predicates must be strict weak orderings. Two values for which neither
f(a, b) nor f(b, a) holds are considered equal under f; there is no separate
notion of incomparable values.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package order

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'arbor'
func tracer() tracing.Trace {
	return tracing.Select("arbor")
}
