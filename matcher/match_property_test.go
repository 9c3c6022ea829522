package matcher_test

import (
	"strings"
	"testing"

	"github.com/andybalholm/cascadia"
	"github.com/stretchr/testify/require"
	"github.com/tinycss/cuss/matcher"
	"github.com/tinycss/cuss/parser"
	"github.com/tinycss/cuss/symbol"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// This file cross-checks the matcher against cascadia, an independent,
// production selector engine, on one small real DOM tree and a fixed
// list of selectors (spec §8.5's "reference matcher" property). Attribute selectors are
// excluded from the selector texts used here since this core's matcher
// intentionally does not evaluate them (see the Open Question recorded
// in DESIGN.md) while cascadia does — the two engines are only
// expected to agree on id/tag/class/combinator matching.

func buildDOM(t *testing.T, fragment string) *html.Node {
	t.Helper()
	nodes, err := html.ParseFragment(strings.NewReader(fragment), &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	})
	require.NoError(t, err)
	root := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	for _, n := range nodes {
		root.AppendChild(n)
	}
	return root
}

// ourMatches runs every element of the tree rooted at root through the
// matcher's four-stage pipeline and returns, for the single given
// selector index, the set of *html.Node that accepted it.
func ourMatches(t *testing.T, pool *symbol.Pool, m *matcher.Matcher, sel int, root *html.Node) map[*html.Node]bool {
	t.Helper()
	out := make(map[*html.Node]bool)
	var walk func(n *html.Node, base matcher.StateId)
	walk = func(n *html.Node, base matcher.StateId) {
		if n.Type == html.ElementNode {
			hasID, id := false, symbol.Symbol(0)
			hasTag := true
			tag := pool.Intern(n.Data)
			var classes []symbol.Symbol
			for _, a := range n.Attr {
				switch a.Key {
				case "id":
					hasID, id = true, pool.Intern(a.Val)
				case "class":
					for _, c := range strings.Fields(a.Val) {
						classes = append(classes, pool.Intern(c))
					}
				}
			}
			s := m.StepID(base, hasID, id)
			s = m.StepTag(s, hasTag, tag)
			for _, c := range classes {
				s = m.StepClass(s, c)
			}
			tip := m.StepClassEnd(s)
			for _, r := range m.AcceptingRules(tip) {
				if r == sel {
					out[n] = true
				}
			}
			base = m.Merge(base, tip)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c, base)
		}
	}
	walk(root, m.Start())
	return out
}

func TestMatcherAgreesWithCascadia(t *testing.T) {
	fragment := `
		<div class="learn">
			<a href="#">intro</a>
			<div class="child"><p><span id="leaf1" class="leaf">x</span></p></div>
		</div>
		<div class="todo-list">
			<li><span class="destroy">d1</span></li>
			<li class="done"><span class="destroy">d2</span></li>
		</div>
		<h3>heading</h3>
		<h4>heading</h4>
	`
	selectorTexts := []string{
		".learn a",
		".todo-list li .destroy",
		".learn > a",
		"div div p span",
	}

	pool := symbol.NewPool()
	var selSrc strings.Builder
	for i, s := range selectorTexts {
		if i > 0 {
			selSrc.WriteString(", ")
		}
		selSrc.WriteString(s)
	}
	selSrc.WriteString(" {}")
	p := parser.New(selSrc.String(), pool)
	sheet, err := p.Stylesheet()
	require.NoError(t, err)
	require.Len(t, sheet.Rules, 1)
	sels := sheet.Rules[0].Selectors
	require.Len(t, sels, len(selectorTexts))
	m := matcher.New(sels)

	for i, text := range selectorTexts {
		root := buildDOM(t, fragment)
		ours := ourMatches(t, pool, m, i, root)

		sel, err := cascadia.Compile(text)
		require.NoError(t, err)
		theirSet := make(map[*html.Node]bool)
		var collect func(n *html.Node)
		collect = func(n *html.Node) {
			if n.Type == html.ElementNode && sel.Match(n) {
				theirSet[n] = true
			}
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				collect(c)
			}
		}
		collect(root)

		require.Equal(t, len(theirSet), len(ours), "selector %q: mismatched match count", text)
		for n := range theirSet {
			require.True(t, ours[n], "selector %q: cascadia matched a node our matcher missed: %v", text, n.Data)
		}
	}
}
