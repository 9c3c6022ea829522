/*
Package matcher implements an incremental, memoized NFA over a fixed
set of selector.ComplexSelector values.

Matching is driven one element at a time, in a single pre-order walk
from the tree's roots downward. For each element the caller runs four
stages against the StateId inherited from the parent (Start() at the
roots): StepID, StepTag, and one StepClass call per class the element
carries, finishing with StepClassEnd. AcceptingRules(tip) then reports
which selectors just matched this element, and Merge(base, tip) folds
the result into the StateId to hand to this element's children.

Every stage is memoized on its input StateId (and whatever argument it
takes), so two elements that look the same to every selector in play —
same id-or-absence, same tag, same class multiset — collapse onto the
same transitions without recomputing them; this is the sense in which
the automaton is a "DFA of NfaStates" rather than a tree walk repeated
per selector.

The driver only walks parent to child. Combinators that relate
siblings (AdjacentSibling, GeneralSibling) are represented on cursors —
so a future sibling-aware driver could reuse this package unchanged —
but a cursor gated by one is dropped at Merge rather than carried
forward, since nothing in this core ever presents a sibling to it.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package matcher

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key "cuss.matcher".
func tracer() tracing.Trace {
	return tracing.Select("cuss.matcher")
}
