/*
Package cuss is the root of an incremental CSS-selector matcher and
stylesheet resolver.

Status

This is the core matching and resolution subsystem of a small CSS engine:
a symbol-interning pool (package symbol), a recursive-descent parser
(package parser) producing an immutable selector/declaration AST (package
selector), a nondeterministic finite automaton over interned symbols that
tracks, per element, the set of partially-matched selectors (package
matcher), and a resolver that threads that automaton through a caller-driven
traversal of an element tree, memoizing property resolution along the way
(package resolver).

Out of scope: DOM/widget tree construction, painting, layout, font
selection, value units beyond lexical form, and the full CSS cascade
(specificity, `!important`, inheritance beyond "clone the parent's
properties"). See SPEC_FULL.md for the complete requirements this module
implements and DESIGN.md for the rationale behind each component.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package cuss
