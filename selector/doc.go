/*
Package selector defines the immutable AST produced by package parser:
simple, compound, complex and group selectors, declarations and values,
and the stylesheet that collects them.

Once built, a Stylesheet is never mutated. Package matcher consumes
ComplexSelectors; package resolver consumes whole Rules (selectors plus
declarations).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package selector
