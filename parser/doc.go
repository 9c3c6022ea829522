/*
Package parser is a recursive-descent CSS parser. It turns source text
into a selector.Stylesheet, interning every name it reads (tag, id,
class, pseudo-class, property, attribute) through a *symbol.Pool
supplied by the caller.

The parser does not recover from errors: the first malformed token
aborts the whole parse (spec §7), returning a *parser.Error that
reports a byte offset and the offending lexeme.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package parser

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key "cuss.parser".
func tracer() tracing.Trace {
	return tracing.Select("cuss.parser")
}
