/*
Package treefmt renders binary trees for humans: as box-drawing text for
consoles and as Graphviz DOT for debugging.

Formatters navigate trees exclusively through tree.VirtualAccessor. They
never need to know the value type of a tree and they never mutate it.

	1
	┝━━2
	│  ┝━━4
	│  └──5
	└──3
	   └──6
	      ┕━━7

Left edges are drawn heavy, right edges light.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package treefmt

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'arbor'
func tracer() tracing.Trace {
	return tracing.Select("arbor")
}
