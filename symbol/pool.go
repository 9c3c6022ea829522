package symbol

import (
	"fmt"

	"golang.org/x/net/html/atom"
)

// Symbol is an opaque handle identifying an interned string. Equality of
// symbols is plain integer equality; a Symbol is only meaningful in
// relation to the Pool that produced it.
type Symbol int

// predefinedTags lists the well-known tag names that receive a fixed,
// stable Symbol at pool construction, borrowed from golang.org/x/net/html/atom's
// notion of "common HTML element names" (our numbering is our own — spec
// only requires pool-local stability, not agreement with atom's numbering).
var predefinedTags = []atom.Atom{
	atom.Html, atom.Head, atom.Body, atom.Div, atom.Span, atom.A, atom.P,
	atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6,
	atom.Ul, atom.Ol, atom.Li, atom.Table, atom.Tr, atom.Td, atom.Th,
	atom.Button, atom.Input, atom.Label, atom.Img, atom.Form,
	atom.Nav, atom.Header, atom.Footer, atom.Section, atom.Article,
	atom.Main, atom.Aside, atom.Br, atom.Hr,
	atom.Strong, atom.Em, atom.I, atom.B, atom.Small, atom.Pre,
	atom.Code, atom.Blockquote,
}

// Predefined, stable symbols for the most common HTML tag names. These are
// interned eagerly by NewPool, so code may refer to them without first
// obtaining a Pool reference.
var (
	Html, Head, Body, Div, Span, A, P                           Symbol
	H1, H2, H3, H4, H5, H6                                      Symbol
	Ul, Ol, Li, Table, Tr, Td, Th                               Symbol
	Button, Input, Label, Img, Form                             Symbol
	Nav, Header, Footer, Section, Article                       Symbol
	Main, Aside, Br, Hr                                         Symbol
	Strong, Em, I, B, Small, Pre, Code, Blockquote               Symbol
)

func init() {
	targets := []*Symbol{
		&Html, &Head, &Body, &Div, &Span, &A, &P,
		&H1, &H2, &H3, &H4, &H5, &H6,
		&Ul, &Ol, &Li, &Table, &Tr, &Td, &Th,
		&Button, &Input, &Label, &Img, &Form,
		&Nav, &Header, &Footer, &Section, &Article,
		&Main, &Aside, &Br, &Hr,
		&Strong, &Em, &I, &B, &Small, &Pre, &Code, &Blockquote,
	}
	for i, t := range targets {
		*t = Symbol(i)
	}
}

// Pool is a bidirectional mapping from string to Symbol with
// insertion-order preserved. A Pool is created once per parsing/matching
// session; it is mutably borrowed by the parser, and thereafter only read
// through symbols it already produced.
type Pool struct {
	names []string
	index map[string]Symbol
}

// NewPool creates a pool with the predefined tag-name symbols already
// interned at their fixed positions.
func NewPool() *Pool {
	p := &Pool{
		names: make([]string, len(predefinedTags)),
		index: make(map[string]Symbol, len(predefinedTags)*2),
	}
	for i, a := range predefinedTags {
		name := a.String()
		p.names[i] = name
		p.index[name] = Symbol(i)
	}
	return p
}

// Intern returns the handle for s, assigning a new one if s has not been
// seen by this pool before. Intern is idempotent: repeated calls with the
// same string return the same Symbol.
func (p *Pool) Intern(s string) Symbol {
	if sym, ok := p.index[s]; ok {
		return sym
	}
	sym := Symbol(len(p.names))
	p.names = append(p.names, s)
	p.index[s] = sym
	return sym
}

// Resolve returns the string a Symbol was interned from. It panics if sym
// was not produced by this pool — a programmer error, not a recoverable
// failure (see spec §7).
func (p *Pool) Resolve(sym Symbol) string {
	if int(sym) < 0 || int(sym) >= len(p.names) {
		panic(fmt.Sprintf("symbol: Resolve of unknown handle %d", sym))
	}
	return p.names[sym]
}

// Len returns the number of distinct strings interned so far, including
// the predefined tag names.
func (p *Pool) Len() int {
	return len(p.names)
}
