/*
Package tree provides raw binary trees: node storage, structural mutation and
traversal, without any ordering discipline.

A RawTree owns zero or one root node. Nodes are stored in an arena and are
referenced through generation-checked handles, never through pointers. This
makes detach, splice and rotate plain index rewiring and it makes the use of
a handle to an erased node detectable: such a handle simply is not valid any
more.

Nodes are visited through two capability views:

  - Accessor: navigation and value read.
  - Mutator: an Accessor plus insert, detach, splice, rotate and value write.

A function accepting an Accessor cannot change the structure of a tree, even
if the caller holds a Mutator for the same node. Upgrading an Accessor to a
Mutator requires the owning *RawTree.

VirtualAccessor exposes the navigation contract through an interface, for
collaborators which do not know the concrete value type of a tree (e.g., the
formatters in package treefmt).

Cursors walk a (sub-)tree in pre-, in- or post-order, with either wing
preferred:

	order     | wing=Left      | wing=Right
	----------+----------------+----------------
	PreOrder  | N, left, right | N, right, left
	InOrder   | left, N, right | right, N, left
	PostOrder | left, right, N | right, left, N

Traversal with (order, wing) visits nodes in exactly the reverse sequence as
traversal with (order.Complement(), wing.Opposite()). Cursors use this to step
backwards.

Trees are single-owner in-memory structures. No operation is safe for
concurrent use while another goroutine mutates the tree.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package tree

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'arbor'
func tracer() tracing.Trace {
	return tracing.Select("arbor")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
