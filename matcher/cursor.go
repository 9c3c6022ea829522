package matcher

import "github.com/tinycss/cuss/selector"

// cursor is one partially-matched instantiation of a selector: it
// records that compounds[0:progress] of selector sels[sel] have already
// matched some ancestor chain, and it is now a candidate to extend onto
// whatever element is presented next.
//
// relax is the combinator gating that extension: Descendant means the
// cursor may wait across any number of further levels before it needs
// to try again; Child means this is the cursor's only chance, at the
// very next element. A cursor gated by AdjacentSibling or
// GeneralSibling is dropped at Merge, since this package's driver never
// presents siblings (see the package doc).
// pending/idOK/tagOK/classesLeft track an in-flight attempt against the
// element currently being stepped through id -> tag -> classes; once
// step_class_end runs, pending is always false again.
//
// cursor holds only plain comparable fields so a slice of cursors can
// be deduplicated by value, with no separate Equal/Hash method needed.
type cursor struct {
	sel         int
	progress    int
	relax       selector.Combinator
	pending     bool
	idOK        bool
	tagOK       bool
	classesLeft int
}

// startCursor is the initial, unattempted cursor for selector index
// sel: CSS selectors may begin matching at any depth, so the start
// relax is Descendant.
func startCursor(sel int) cursor {
	return cursor{sel: sel, relax: selector.Descendant}
}

func (c cursor) compound(sels []selector.ComplexSelector) selector.CompoundSelector {
	return sels[c.sel].Compounds[c.progress]
}

func (c cursor) accepting(sels []selector.ComplexSelector) bool {
	return c.progress == len(sels[c.sel].Compounds)
}
