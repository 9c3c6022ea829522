package resolver

import (
	"github.com/tinycss/cuss/matcher"
	"github.com/tinycss/cuss/selector"
	"github.com/tinycss/cuss/symbol"
)

// ResolveState is a handle into a Resolver's cache of resolved
// Properties. The zero value names slot 0, the root/default
// Properties every Resolver starts with. A ResolveState is only
// meaningful in relation to the Resolver that produced it; Props
// panics if given a ResolveState from a different Resolver (spec §4.4).
type ResolveState int

// transitionKey is the memo key for Resolve: a parent resolution and
// the tip MatchState an element reached.
type transitionKey struct {
	parent ResolveState
	tip    matcher.StateId
}

// MatchTip is the ephemeral, per-element record the step pipeline
// threads through StepID/StepTag/StepClass/StepClassEnd. It is
// consumed by Resolve; callers never inspect its fields directly.
type MatchTip struct {
	parent ResolveState
	base   matcher.StateId
	tip    matcher.StateId
}

// Resolver drives a Matcher over a caller-supplied element tree,
// caching per-element property resolution along the traversal path.
type Resolver struct {
	m *matcher.Matcher

	// declIxs[selector index in m] == rule index in decls.
	declIxs []int
	decls   [][]selector.Declaration

	resolved    []*Properties
	transitions map[transitionKey]ResolveState
}

// New flattens stylesheet into one Matcher over every ComplexSelector,
// in rule order, and initializes resolved slot 0 to the zero
// Properties value (no declarations applied, matcher.Matcher's own
// Start() state as its NextState).
func New(stylesheet selector.Stylesheet) *Resolver {
	var sels []selector.ComplexSelector
	var declIxs []int
	var decls [][]selector.Declaration
	for i, rule := range stylesheet.Rules {
		for range rule.Selectors {
			declIxs = append(declIxs, i)
		}
		sels = append(sels, rule.Selectors...)
		decls = append(decls, rule.Decls)
	}
	m := matcher.New(sels)
	root := newProperties()
	root.nextState = m.Start()
	tracer().Debugf("new resolver: %d rules, %d selectors", len(stylesheet.Rules), len(sels))
	return &Resolver{
		m:           m,
		declIxs:     declIxs,
		decls:       decls,
		resolved:    []*Properties{root},
		transitions: make(map[transitionKey]ResolveState),
	}
}

// StepID starts the step pipeline for one element below parent. id is
// the element's id attribute, if any; hasID distinguishes "no id" from
// the zero Symbol.
func (r *Resolver) StepID(parent ResolveState, hasID bool, id symbol.Symbol) MatchTip {
	base := r.resolved[parent].nextState
	tip := r.m.StepID(base, hasID, id)
	return MatchTip{parent: parent, base: base, tip: tip}
}

// StepTag narrows state by the element's tag name.
func (r *Resolver) StepTag(state MatchTip, hasTag bool, tag symbol.Symbol) MatchTip {
	state.tip = r.m.StepTag(state.tip, hasTag, tag)
	return state
}

// StepClass folds in one class the element carries. Call once per
// class; pseudo-classes such as ":hover" are passed the same way,
// simulating whatever pseudo-state the caller wants matched.
func (r *Resolver) StepClass(state MatchTip, class symbol.Symbol) MatchTip {
	state.tip = r.m.StepClass(state.tip, class)
	return state
}

// StepClassEnd finalizes the element's tip, ready for Resolve.
func (r *Resolver) StepClassEnd(state MatchTip) MatchTip {
	state.tip = r.m.StepClassEnd(state.tip)
	return state
}

// Resolve applies every rule whose selector just became accepting for
// this element and returns the child ResolveState. Resolve is
// memoized on (state.parent, state.tip): two elements that reach the
// same parent resolution and the same tip share their Properties
// record instead of recomputing it (spec §4.4, §8.5).
func (r *Resolver) Resolve(state MatchTip) ResolveState {
	key := transitionKey{parent: state.parent, tip: state.tip}
	if cached, ok := r.transitions[key]; ok {
		return cached
	}
	nextState := r.m.Merge(state.base, state.tip)
	child := makeChild(r.resolved[state.parent], nextState)
	for _, ruleIx := range r.m.AcceptingRules(state.tip) {
		declIx := r.declIxs[ruleIx]
		child = applyDecls(child, r.decls[declIx])
	}
	result := ResolveState(len(r.resolved))
	r.resolved = append(r.resolved, child)
	r.transitions[key] = result
	tracer().Debugf("resolve: parent=%v tip=%v -> %v (%d props)", state.parent, state.tip, result, child.Len())
	return result
}

// Props returns the Properties a ResolveState names. It panics if
// state was not produced by this Resolver (an out-of-range index),
// per spec §4.4/§7.
func (r *Resolver) Props(state ResolveState) *Properties {
	return r.resolved[state]
}
