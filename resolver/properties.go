package resolver

import (
	"github.com/tinycss/cuss/matcher"
	"github.com/tinycss/cuss/selector"
	"github.com/tinycss/cuss/symbol"
)

// Properties is the set of property values an element resolved to:
// one slot per property name, holding that property's last-applied
// declaration values unevaluated, plus the merged MatchState a
// resolver uses as the base for this element's children.
type Properties struct {
	nextState matcher.StateId
	values    map[symbol.Symbol][]selector.Value
}

func newProperties() *Properties {
	return &Properties{values: make(map[symbol.Symbol][]selector.Value)}
}

// NextState is the MatchState a resolver feeds to StepID when
// descending into one of this element's children.
func (p *Properties) NextState() matcher.StateId {
	return p.nextState
}

func (p *Properties) clone() *Properties {
	cp := newProperties()
	cp.nextState = p.nextState
	for k, v := range p.values {
		cp.values[k] = v
	}
	return cp
}

// Get returns the values assigned to name, and whether anything ever
// assigned it.
func (p *Properties) Get(name symbol.Symbol) ([]selector.Value, bool) {
	v, ok := p.values[name]
	return v, ok
}

// Len reports how many distinct properties are set.
func (p *Properties) Len() int {
	return len(p.values)
}

// applyDecls is the single point where a rule's declaration block
// overlays an existing property environment. Declarations are applied
// in the caller-given order and a later one simply replaces an earlier
// one for the same name — this core orders accepting rules by source
// position and does not compute specificity (spec §4.4), so "last
// applied wins" is the entire cascade.
func applyDecls(base *Properties, decls []selector.Declaration) *Properties {
	out := base.clone()
	for _, d := range decls {
		out.values[d.Name] = d.Values
	}
	return out
}

// makeChild is the single point where a child element's starting
// environment is derived from its parent's resolved properties: a full
// copy, restamped with the child's own merged MatchState. This core does
// not model per-property inheritance rules (some properties inherit in
// real CSS, others don't) — every property carries down to children
// uniformly, to be overridden by whatever the child's own matched rules
// set (spec §4.4 Non-goals).
func makeChild(parent *Properties, nextState matcher.StateId) *Properties {
	child := parent.clone()
	child.nextState = nextState
	return child
}
