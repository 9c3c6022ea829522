package matcher

import (
	"fmt"
	"sort"
	"strings"
)

// StateId names a canonicalized NfaState inside a Matcher's interned
// store, the way a regular NFA-to-DFA construction names its subset
// states. TwoElements that reach the same StateId are, from this point
// in the tree downward, indistinguishable to every selector in play —
// the basis for the matcher's memoization.
type StateId int

// NfaState is a canonical (deduplicated, order-independent) set of
// cursors. Equal cursor sets always canonicalize to an identical
// NfaState, which is what lets the interned store collapse them to the
// same StateId.
type NfaState struct {
	cursors []cursor
}

func canonicalize(cursors []cursor) NfaState {
	seen := make(map[cursor]bool, len(cursors))
	uniq := make([]cursor, 0, len(cursors))
	for _, c := range cursors {
		if seen[c] {
			continue
		}
		seen[c] = true
		uniq = append(uniq, c)
	}
	sort.Slice(uniq, func(i, j int) bool { return cursorLess(uniq[i], uniq[j]) })
	return NfaState{cursors: uniq}
}

func cursorLess(a, b cursor) bool {
	if a.sel != b.sel {
		return a.sel < b.sel
	}
	if a.progress != b.progress {
		return a.progress < b.progress
	}
	if a.relax != b.relax {
		return a.relax < b.relax
	}
	if a.pending != b.pending {
		return !a.pending
	}
	if a.idOK != b.idOK {
		return !a.idOK
	}
	if a.tagOK != b.tagOK {
		return !a.tagOK
	}
	return a.classesLeft < b.classesLeft
}

func stateKey(ns NfaState) string {
	var b strings.Builder
	for _, c := range ns.cursors {
		fmt.Fprintf(&b, "%d.%d.%d.%t.%t.%t.%d;", c.sel, c.progress, c.relax, c.pending, c.idOK, c.tagOK, c.classesLeft)
	}
	return b.String()
}

// stateStore interns NfaStates, assigning each distinct one a small
// StateId the first time it is seen — the Go analogue of Rust's
// IndexSet<NfaState> in the reference implementation.
type stateStore struct {
	states []NfaState
	byKey  map[string]StateId
}

func newStateStore() *stateStore {
	return &stateStore{byKey: make(map[string]StateId)}
}

func (s *stateStore) intern(ns NfaState) StateId {
	key := stateKey(ns)
	if id, ok := s.byKey[key]; ok {
		return id
	}
	id := StateId(len(s.states))
	s.states = append(s.states, ns)
	s.byKey[key] = id
	return id
}

func (s *stateStore) get(id StateId) NfaState {
	return s.states[id]
}
