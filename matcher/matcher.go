package matcher

import (
	"github.com/tinycss/cuss/selector"
	"github.com/tinycss/cuss/symbol"
)

type idKey struct {
	base  StateId
	hasID bool
	id    symbol.Symbol
}

type tagKey struct {
	base   StateId
	hasTag bool
	tag    symbol.Symbol
}

type classKey struct {
	base  StateId
	class symbol.Symbol
}

type mergeKey struct {
	base StateId
	tip  StateId
}

// Matcher drives the incremental NFA described in package matcher's doc
// comment: one StateId per distinct set of in-flight selector cursors,
// with every transition memoized so that repeated element shapes reuse
// the same step computation instead of redoing it.
type Matcher struct {
	sels  []selector.ComplexSelector
	store *stateStore
	start StateId

	memoID        map[idKey]StateId
	memoTag       map[tagKey]StateId
	memoClass     map[classKey]StateId
	memoClassEnd  map[StateId]StateId
	memoMerge     map[mergeKey]StateId
	memoAccepting map[StateId][]int
}

// New builds a Matcher for sels. The selector order is preserved:
// AcceptingRules returns indices into this same slice, and Rule(i)
// returns sels[i] unchanged, so callers can recover declaration blocks
// by indexing into the stylesheet they parsed sels from.
func New(sels []selector.ComplexSelector) *Matcher {
	m := &Matcher{
		sels:          sels,
		store:         newStateStore(),
		memoID:        make(map[idKey]StateId),
		memoTag:       make(map[tagKey]StateId),
		memoClass:     make(map[classKey]StateId),
		memoClassEnd:  make(map[StateId]StateId),
		memoMerge:     make(map[mergeKey]StateId),
		memoAccepting: make(map[StateId][]int),
	}
	start := make([]cursor, len(sels))
	for i := range sels {
		start[i] = startCursor(i)
	}
	m.start = m.store.intern(canonicalize(start))
	tracer().Debugf("new matcher: %d selectors, start state %d", len(sels), m.start)
	return m
}

// Start is the NfaState every root element is matched against.
func (m *Matcher) Start() StateId {
	return m.start
}

// Rule returns the ComplexSelector at index i, the same index space
// AcceptingRules reports in.
func (m *Matcher) Rule(i int) selector.ComplexSelector {
	return m.sels[i]
}

// Dump returns the cursor set named by id, for diagnostics.
func (m *Matcher) Dump(id StateId) NfaState {
	return m.store.get(id)
}

// StepID is the first of the four single-element transition stages: it
// filters base down to cursors whose target compound's id constraint
// (if any) is satisfied by this element, producing tentative cursors
// that StepTag and StepClass further narrow.
func (m *Matcher) StepID(base StateId, hasID bool, id symbol.Symbol) StateId {
	key := idKey{base, hasID, id}
	if cached, ok := m.memoID[key]; ok {
		return cached
	}
	baseState := m.store.get(base)
	var tip []cursor
	for _, c := range baseState.cursors {
		compound := c.compound(m.sels)
		ok := !compound.HasID || (hasID && id == compound.ID)
		if !ok {
			continue
		}
		tip = append(tip, cursor{
			sel:         c.sel,
			progress:    c.progress,
			relax:       c.relax,
			pending:     true,
			idOK:        true,
			classesLeft: len(compound.Classes),
		})
	}
	result := m.store.intern(canonicalize(tip))
	m.memoID[key] = result
	return result
}

// StepTag narrows a StepID tip further by tag name.
func (m *Matcher) StepTag(tip StateId, hasTag bool, tag symbol.Symbol) StateId {
	key := tagKey{tip, hasTag, tag}
	if cached, ok := m.memoTag[key]; ok {
		return cached
	}
	tipState := m.store.get(tip)
	var next []cursor
	for _, c := range tipState.cursors {
		compound := c.compound(m.sels)
		ok := !compound.HasTag || (hasTag && tag == compound.Tag)
		if !ok {
			continue
		}
		c.tagOK = true
		next = append(next, c)
	}
	result := m.store.intern(canonicalize(next))
	m.memoTag[key] = result
	return result
}

// StepClass folds in one class present on the element. Call it once
// per class; classes the compound does not require are harmless no-ops,
// so an element carrying extra, unrelated classes never fails a match.
func (m *Matcher) StepClass(tip StateId, class symbol.Symbol) StateId {
	key := classKey{tip, class}
	if cached, ok := m.memoClass[key]; ok {
		return cached
	}
	tipState := m.store.get(tip)
	next := make([]cursor, 0, len(tipState.cursors))
	for _, c := range tipState.cursors {
		compound := c.compound(m.sels)
		if c.classesLeft > 0 && compound.HasClass(class) {
			c.classesLeft--
		}
		next = append(next, c)
	}
	result := m.store.intern(canonicalize(next))
	m.memoClass[key] = result
	return result
}

// StepClassEnd finalizes the element's in-flight cursors: a cursor
// whose id, tag, and every required class were all observed advances
// to progress+1 (or becomes accepting, if that was the selector's last
// compound); anything else is dropped. The returned StateId is both
// what AcceptingRules reads and the tip half of Merge.
func (m *Matcher) StepClassEnd(tip StateId) StateId {
	if cached, ok := m.memoClassEnd[tip]; ok {
		return cached
	}
	tipState := m.store.get(tip)
	var final []cursor
	var accepting []int
	for _, c := range tipState.cursors {
		if c.classesLeft != 0 || !c.idOK || !c.tagOK {
			continue
		}
		sel := m.sels[c.sel]
		progress := c.progress + 1
		if progress == len(sel.Compounds) {
			accepting = append(accepting, c.sel)
			final = append(final, cursor{sel: c.sel, progress: progress})
			continue
		}
		final = append(final, cursor{
			sel:      c.sel,
			progress: progress,
			relax:    sel.Combinators[c.progress],
		})
	}
	result := m.store.intern(canonicalize(final))
	m.memoClassEnd[tip] = result
	m.memoAccepting[result] = dedupInts(accepting)
	return result
}

// AcceptingRules reports the indices of every selector that just
// matched the element StepClassEnd was called for. The slice is
// derived from the same canonicalization cache StepClassEnd fills, so
// it costs nothing beyond a map lookup once a shape has been seen.
func (m *Matcher) AcceptingRules(tip StateId) []int {
	return m.memoAccepting[tip]
}

// Merge produces the base state for an element's children: cursors
// from base survive only if their relax is Descendant (the only
// relation this tree-only driver can keep waiting on indefinitely);
// cursors freshly promoted in tip survive if their new relax is
// Descendant or Child (anything gated by a sibling combinator is
// dropped — this driver never walks siblings, see the package doc).
func (m *Matcher) Merge(base, tip StateId) StateId {
	key := mergeKey{base, tip}
	if cached, ok := m.memoMerge[key]; ok {
		return cached
	}
	baseState := m.store.get(base)
	tipState := m.store.get(tip)
	var merged []cursor
	for _, c := range baseState.cursors {
		if c.relax == selector.Descendant {
			merged = append(merged, c)
		}
	}
	for _, c := range tipState.cursors {
		if c.accepting(m.sels) {
			continue
		}
		if !c.relax.Sibling() {
			merged = append(merged, c)
		}
	}
	result := m.store.intern(canonicalize(merged))
	m.memoMerge[key] = result
	return result
}

func dedupInts(in []int) []int {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[int]bool, len(in))
	out := make([]int, 0, len(in))
	for _, v := range in {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
