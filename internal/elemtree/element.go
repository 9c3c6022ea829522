package elemtree

import (
	"github.com/tinycss/cuss/resolver"
	"github.com/tinycss/cuss/symbol"
)

// Element is the payload a synthetic element tree carries: enough of
// an element's identity (id, tag, classes) to drive package resolver's
// step pipeline. Classes may be toggled between walks — e.g. adding
// the ":hover" symbol — to simulate pseudo-class state (spec §4.1).
type Element struct {
	HasID   bool
	ID      symbol.Symbol
	HasTag  bool
	Tag     symbol.Symbol
	Classes []symbol.Symbol
}

// Resolve walks root top-down, running every node's Element through
// r's step pipeline and Resolve, and returns the ResolveState reached
// by each node. parent is the ResolveState to start the walk from —
// callers pass resolver.ResolveState(0) to resolve against a fresh
// Resolver's default root.
func Resolve(r *resolver.Resolver, root *Node[Element], parent resolver.ResolveState) map[*Node[Element]]resolver.ResolveState {
	states := make(map[*Node[Element]]resolver.ResolveState)
	var walk func(n *Node[Element], parent resolver.ResolveState)
	walk = func(n *Node[Element], parent resolver.ResolveState) {
		tip := r.StepID(parent, n.Payload.HasID, n.Payload.ID)
		tip = r.StepTag(tip, n.Payload.HasTag, n.Payload.Tag)
		for _, c := range n.Payload.Classes {
			tip = r.StepClass(tip, c)
		}
		tip = r.StepClassEnd(tip)
		state := r.Resolve(tip)
		states[n] = state
		tracer().Debugf("resolved node %v -> state %v", n.Payload, state)
		for _, ch := range n.Children() {
			walk(ch, state)
		}
	}
	walk(root, parent)
	return states
}
