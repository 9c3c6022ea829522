/*
Package resolver drives package matcher over a caller-supplied element
tree and caches per-element property resolution along the way.

A Resolver owns one Matcher, built from every ComplexSelector in a
Stylesheet flattened in rule order, plus a parallel table mapping each
selector's position in the Matcher back to the rule (and hence the
declaration block) it came from. Callers run the same four-stage step
pipeline package matcher exposes — StepID, StepTag, any number of
StepClass, StepClassEnd — but address it through a ResolveState rather
than a raw matcher.StateId, and finish with Resolve instead of Merge:
Resolve both computes the child's matcher base state and overlays the
declarations of every rule that just became accepting onto a cloned
copy of the parent's Properties.

Resolve is memoized on (parent ResolveState, tip MatchState): any two
elements anywhere in the tree that reach the same parent resolution and
the same tip — same id/tag/class shape under the same ancestry — share
one Properties record rather than recomputing it.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package resolver

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key "cuss.resolver".
func tracer() tracing.Trace {
	return tracing.Select("cuss.resolver")
}
