package elemtree_test

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
	"github.com/tinycss/cuss/internal/elemtree"
	"github.com/tinycss/cuss/parser"
	"github.com/tinycss/cuss/resolver"
	"github.com/tinycss/cuss/symbol"
)

// Builds root -> body.learn -> {h3, h4, h5, h6} and checks that h3/h4/h5
// pick up the grouped rule's margin while h6 does not — the same
// scenario resolver_test.go's TestResolveE3GroupSelector drives by
// hand, here driven through an actual tree walk.
func TestWalkAppliesGroupedRuleToEachHeading(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cuss.elemtree")
	defer teardown()

	pool := symbol.NewPool()
	p := parser.New(".learn h3, .learn h4, .learn h5 { margin: 10px 0; }", pool)
	sheet, err := p.Stylesheet()
	require.NoError(t, err)
	r := resolver.New(sheet)

	learn := pool.Intern("learn")
	marginSym := pool.Intern("margin")

	body := elemtree.NewNode(elemtree.Element{HasTag: true, Tag: symbol.Body, Classes: []symbol.Symbol{learn}})
	h3 := elemtree.NewNode(elemtree.Element{HasTag: true, Tag: symbol.H3})
	h4 := elemtree.NewNode(elemtree.Element{HasTag: true, Tag: symbol.H4})
	h5 := elemtree.NewNode(elemtree.Element{HasTag: true, Tag: symbol.H5})
	h6 := elemtree.NewNode(elemtree.Element{HasTag: true, Tag: symbol.H6})
	body.AddChild(h3).AddChild(h4).AddChild(h5).AddChild(h6)

	states := elemtree.Resolve(r, body, resolver.ResolveState(0))

	for _, heading := range []*elemtree.Node[elemtree.Element]{h3, h4, h5} {
		margin, ok := r.Props(states[heading]).Get(marginSym)
		require.True(t, ok)
		require.Len(t, margin, 2)
	}
	_, ok := r.Props(states[h6]).Get(marginSym)
	require.False(t, ok)
}
