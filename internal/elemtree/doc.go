/*
Package elemtree is a trimmed, synchronous adaptation of the tree.Node[T]
type found elsewhere in this module's ancestry: a plain parent/children
tree, with the concurrent pipeline/Walker machinery dropped, since
resolving a stylesheet against an element tree is a single depth-first
walk with no suspension points (spec §5).

It exists only to give tests and examples something concrete to drive
package resolver's step pipeline over; it is not part of the matching
or resolution core itself.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package elemtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key "cuss.elemtree".
func tracer() tracing.Trace {
	return tracing.Select("cuss.elemtree")
}
