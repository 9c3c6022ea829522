package selector

import "github.com/tinycss/cuss/symbol"

// Combinator relates two adjacent compound selectors within a
// ComplexSelector.
type Combinator int

// The four combinators spec.md §3 requires. Descendant is also the
// relaxation used for the very first compound of a ComplexSelector, since
// that compound may match at any depth of an ancestry walk.
const (
	Descendant      Combinator = iota // whitespace
	Child                             // '>'
	AdjacentSibling                   // '+'
	GeneralSibling                    // '~'
)

func (c Combinator) String() string {
	switch c {
	case Descendant:
		return " "
	case Child:
		return ">"
	case AdjacentSibling:
		return "+"
	case GeneralSibling:
		return "~"
	default:
		return "?"
	}
}

// Strict reports whether a cursor waiting to cross this combinator gets
// exactly one chance to match (Child, AdjacentSibling) rather than being
// free to wait across further levels (Descendant, GeneralSibling).
func (c Combinator) Strict() bool {
	return c == Child || c == AdjacentSibling
}

// Sibling reports whether this combinator relates siblings rather than
// ancestor/descendant. The current matcher represents sibling cursors (so
// a future sibling-aware driver can be added without changing the step
// protocol — spec §4.2/§9) but no traversal driver in this core descends
// through siblings; cursors gated by a sibling combinator are dropped when
// merging into a child's base state.
func (c Combinator) Sibling() bool {
	return c == AdjacentSibling || c == GeneralSibling
}

// SimpleSelectorKind tags the variant held by a SimpleSelector. Per the
// design notes, SimpleSelector is modeled as a tagged variant rather than
// with interface-based polymorphism, so the matcher can switch on Kind
// directly instead of dispatching through a method.
type SimpleSelectorKind int

const (
	SimpleUniversal SimpleSelectorKind = iota // '*'
	SimpleTag                                 // a tag name
	SimpleID                                  // '#id'
	SimpleClass                               // '.class', or ':pseudo-class'
	SimpleAttribute                           // '[...]'
)

// AttributeOp is the operator of an attribute selector. The matcher never
// interprets these; they are carried on the AST purely for completeness
// (spec §3: "opaque, carried along but not interpreted by the matcher").
type AttributeOp int

const (
	AttrExists      AttributeOp = iota // [attr]
	AttrEquals                         // [attr=value]
	AttrIncludes                       // [attr~=value]
	AttrDashMatch                      // [attr|=value]
	AttrPrefixMatch                    // [attr^=value]
	AttrSuffixMatch                    // [attr$=value]
	AttrSubstring                      // [attr*=value]
)

// AttributeSelector is carried on the AST unevaluated; the matcher ignores
// it (see the Open Question in spec §9 — resolved here as: attributes do
// not participate in NFA matching).
type AttributeSelector struct {
	Name  symbol.Symbol
	Op    AttributeOp
	Value string // raw ident/string content; empty when Op == AttrExists
}

// SimpleSelector is one atom of a compound selector.
type SimpleSelector struct {
	Kind SimpleSelectorKind
	Sym  symbol.Symbol     // meaningful for SimpleTag, SimpleID, SimpleClass
	Attr AttributeSelector // meaningful for SimpleAttribute
}

// CompoundSelector is an ordered, non-empty list of SimpleSelectors
// targeting one element. The list is also split into the fields the
// matcher actually tests (id/tag/classes), computed once at construction
// so the hot matching path never has to re-scan Simple.
type CompoundSelector struct {
	Simple []SimpleSelector

	Universal bool // a bare '*' appeared
	HasID     bool
	ID        symbol.Symbol
	HasTag    bool
	Tag       symbol.Symbol
	Classes   []symbol.Symbol     // includes pseudo-classes, e.g. ":hover"
	Attrs     []AttributeSelector // carried, unchecked by the matcher
}

// NewCompoundSelector builds a CompoundSelector from an ordered list of
// simple selectors, deriving the id/tag/classes/attrs fields the matcher
// consumes.
func NewCompoundSelector(simple []SimpleSelector) CompoundSelector {
	cs := CompoundSelector{Simple: simple}
	for _, s := range simple {
		switch s.Kind {
		case SimpleUniversal:
			cs.Universal = true
		case SimpleTag:
			cs.HasTag = true
			cs.Tag = s.Sym
		case SimpleID:
			cs.HasID = true
			cs.ID = s.Sym
		case SimpleClass:
			cs.Classes = append(cs.Classes, s.Sym)
		case SimpleAttribute:
			cs.Attrs = append(cs.Attrs, s.Attr)
		}
	}
	return cs
}

// HasClass reports whether class is among the compound's required classes.
func (cs CompoundSelector) HasClass(class symbol.Symbol) bool {
	for _, c := range cs.Classes {
		if c == class {
			return true
		}
	}
	return false
}

// ComplexSelector is a non-empty sequence of compound selectors separated
// by combinators: C0 (comb1 C1) ... (combK Ck). The head is Compounds[len-1],
// the element actually being matched; Compounds[0] is the outermost
// ancestor requirement.
type ComplexSelector struct {
	Compounds   []CompoundSelector
	Combinators []Combinator // len(Combinators) == len(Compounds)-1
}

// Head returns the compound selector for the element being matched.
func (c ComplexSelector) Head() CompoundSelector {
	return c.Compounds[len(c.Compounds)-1]
}

// Declaration is a single CSS property declaration: a name and its
// (unevaluated) list of values.
type Declaration struct {
	Name   symbol.Symbol
	Values []Value
}

// ValueKind tags the variant held by a Value.
type ValueKind int

const (
	ValIdent ValueKind = iota
	ValNumber
	ValHexColor
	ValString
	ValFunction
)

// FunctionValue is a function-call value, e.g. `rgb(0, 0, 0)`.
type FunctionValue struct {
	Name string
	Args []Value
}

// Value is a lexical CSS value: stored structurally, never evaluated.
type Value struct {
	Kind ValueKind

	Ident string // ValIdent

	Number  float64 // ValNumber
	Unit    string  // ValNumber, optional
	HasUnit bool     // ValNumber

	Hex string // ValHexColor, without the leading '#'

	Str string // ValString, unquoted contents

	Func *FunctionValue // ValFunction
}

// Rule is one top-level rule: a non-empty selector group sharing one
// declaration block.
type Rule struct {
	Selectors []ComplexSelector // the selector group; never empty
	Decls     []Declaration
}

// Stylesheet is an ordered list of rules. Order matters: later rules win
// on equal-specificity ties, and — since specificity is not computed by
// this core (spec §4.4) — order alone decides.
type Stylesheet struct {
	Rules []Rule
}
