package matcher

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// DumpState renders the cursor set named by id as a tree, one branch
// per cursor, for interactive debugging of why a selector did or did
// not match.
func (m *Matcher) DumpState(id StateId) string {
	root := treeprint.New()
	root.SetValue(fmt.Sprintf("state %d", id))
	state := m.store.get(id)
	for _, c := range state.cursors {
		sel := m.sels[c.sel]
		label := fmt.Sprintf("sel[%d] progress=%d/%d relax=%q", c.sel, c.progress, len(sel.Compounds), c.relax)
		branch := root.AddBranch(label)
		if c.pending {
			branch.AddNode(fmt.Sprintf("pending idOK=%t tagOK=%t classesLeft=%d", c.idOK, c.tagOK, c.classesLeft))
		}
	}
	return root.String()
}
