package parser

import (
	"github.com/tinycss/cuss/selector"
	"github.com/tinycss/cuss/symbol"
)

// Parser is a recursive-descent CSS parser driven by a one-token
// lookahead. It interns every identifier it consumes as a selector or
// declaration name into the pool given to New, so the resulting AST
// carries symbol.Symbol handles rather than strings.
type Parser struct {
	lex  *lexer
	pool *symbol.Pool
	cur  token
	err  error
}

// New returns a Parser ready to read source. Symbols produced while
// parsing are interned into pool.
func New(source string, pool *symbol.Pool) *Parser {
	p := &Parser{lex: newLexer(source), pool: pool}
	p.advance()
	return p
}

func (p *Parser) advance() {
	if p.err != nil {
		return
	}
	tok, err := p.lex.next()
	if err != nil {
		p.err = err
		return
	}
	p.cur = tok
}

// Stylesheet parses the whole source as a sequence of rules.
func (p *Parser) Stylesheet() (selector.Stylesheet, error) {
	var rules []selector.Rule
	for {
		if p.err != nil {
			tracer().Errorf("stylesheet parse failed: %v", p.err)
			return selector.Stylesheet{}, p.err
		}
		if p.cur.kind == tEOF {
			break
		}
		r, err := p.rule()
		if err != nil {
			tracer().Errorf("rule parse failed: %v", err)
			return selector.Stylesheet{}, err
		}
		rules = append(rules, *r)
	}
	tracer().Debugf("parsed stylesheet: %d rules", len(rules))
	return selector.Stylesheet{Rules: rules}, nil
}

func (p *Parser) rule() (*selector.Rule, error) {
	var sels []selector.ComplexSelector
	for {
		cs, err := p.ComplexSelector()
		if err != nil {
			return nil, err
		}
		if cs == nil {
			return nil, p.unexpected()
		}
		sels = append(sels, *cs)
		if p.err != nil {
			return nil, p.err
		}
		if p.cur.kind != tComma {
			break
		}
		p.advance()
		if p.err != nil {
			return nil, p.err
		}
	}
	if p.cur.kind != tLBrace {
		return nil, p.unexpected()
	}
	p.advance()
	if p.err != nil {
		return nil, p.err
	}
	var decls []selector.Declaration
	for p.cur.kind != tRBrace {
		if p.cur.kind == tEOF {
			return nil, &Error{Kind: UnexpectedEOF, Offset: p.cur.offset}
		}
		d, err := p.declaration()
		if err != nil {
			return nil, err
		}
		decls = append(decls, *d)
		if p.err != nil {
			return nil, p.err
		}
	}
	p.advance()
	if p.err != nil {
		return nil, p.err
	}
	return &selector.Rule{Selectors: sels, Decls: decls}, nil
}

// ComplexSelector parses one combinator-chained sequence of compound
// selectors. It returns (nil, nil) when the current position cannot
// start a selector at all — a normal terminator (',', '{', EOF) or a
// combinator token ('>', '+', '~'), never an error — so callers can distinguish "no more selectors here" from
// a malformed one.
func (p *Parser) ComplexSelector() (*selector.ComplexSelector, error) {
	if p.err != nil {
		return nil, p.err
	}
	head, err := p.compoundSelector()
	if err != nil {
		return nil, err
	}
	if head == nil {
		return nil, nil
	}
	compounds := []selector.CompoundSelector{*head}
	var combinators []selector.Combinator

	for {
		if p.err != nil {
			return nil, p.err
		}
		var comb selector.Combinator
		switch p.cur.kind {
		case tComma, tLBrace, tEOF:
			return &selector.ComplexSelector{Compounds: compounds, Combinators: combinators}, nil
		case tGT:
			comb = selector.Child
			p.advance()
		case tPlus:
			comb = selector.AdjacentSibling
			p.advance()
		case tTilde:
			comb = selector.GeneralSibling
			p.advance()
		default:
			if !p.cur.space {
				return nil, p.unexpected()
			}
			comb = selector.Descendant
		}
		if p.err != nil {
			return nil, p.err
		}
		next, err := p.compoundSelector()
		if err != nil {
			return nil, err
		}
		if next == nil {
			return nil, p.unexpected()
		}
		compounds = append(compounds, *next)
		combinators = append(combinators, comb)
	}
}

// compoundSelector parses a maximal run of simple selectors with no
// intervening whitespace. It returns (nil, nil) at a position that
// cannot start a compound (a normal terminator or combinator token),
// never an error.
func (p *Parser) compoundSelector() (*selector.CompoundSelector, error) {
	switch p.cur.kind {
	case tComma, tLBrace, tEOF, tGT, tPlus, tTilde:
		return nil, nil
	}

	var simples []selector.SimpleSelector
	first := true
loop:
	for {
		if p.err != nil {
			return nil, p.err
		}
		tok := p.cur
		switch tok.kind {
		case tComma, tLBrace, tEOF, tGT, tPlus, tTilde:
			break loop
		}
		if !first && tok.space {
			break loop
		}

		switch tok.kind {
		case tStar:
			simples = append(simples, selector.SimpleSelector{Kind: selector.SimpleUniversal})
			p.advance()
		case tIdent:
			sym := p.pool.Intern(tok.text)
			simples = append(simples, selector.SimpleSelector{Kind: selector.SimpleTag, Sym: sym})
			p.advance()
		case tHash:
			sym := p.pool.Intern(tok.text)
			simples = append(simples, selector.SimpleSelector{Kind: selector.SimpleID, Sym: sym})
			p.advance()
		case tDot:
			p.advance()
			if p.err != nil {
				return nil, p.err
			}
			if p.cur.kind != tIdent {
				return nil, p.unexpected()
			}
			sym := p.pool.Intern(p.cur.text)
			simples = append(simples, selector.SimpleSelector{Kind: selector.SimpleClass, Sym: sym})
			p.advance()
		case tColon:
			p.advance()
			if p.err != nil {
				return nil, p.err
			}
			if p.cur.kind == tColon {
				p.advance()
				if p.err != nil {
					return nil, p.err
				}
			}
			if p.cur.kind != tIdent {
				return nil, p.unexpected()
			}
			// pseudo-classes are modeled as classes under a reserved
			// prefix so ":hover" can never collide with a real class
			// named "hover".
			sym := p.pool.Intern(":" + p.cur.text)
			simples = append(simples, selector.SimpleSelector{Kind: selector.SimpleClass, Sym: sym})
			p.advance()
			if p.err != nil {
				return nil, p.err
			}
			if p.cur.kind == tLParen {
				if err := p.skipBalancedParens(); err != nil {
					return nil, err
				}
			}
		case tLBracket:
			attr, err := p.attributeSelector()
			if err != nil {
				return nil, err
			}
			simples = append(simples, selector.SimpleSelector{Kind: selector.SimpleAttribute, Attr: attr})
		default:
			return nil, p.unexpected()
		}
		first = false
	}

	if len(simples) == 0 {
		return nil, p.unexpected()
	}
	cs := selector.NewCompoundSelector(simples)
	return &cs, nil
}

// skipBalancedParens consumes a functional pseudo-class argument list,
// e.g. the "(2n+1)" in ":nth-child(2n+1)". The current core does not
// interpret such arguments.
func (p *Parser) skipBalancedParens() error {
	depth := 0
	for {
		if p.err != nil {
			return p.err
		}
		switch p.cur.kind {
		case tEOF:
			return &Error{Kind: UnexpectedEOF, Offset: p.cur.offset}
		case tLParen:
			depth++
		case tRParen:
			depth--
		}
		closing := p.cur.kind == tRParen && depth == 0
		p.advance()
		if closing {
			return nil
		}
	}
}

func (p *Parser) attributeSelector() (selector.AttributeSelector, error) {
	p.advance() // consume '['
	if p.err != nil {
		return selector.AttributeSelector{}, p.err
	}
	if p.cur.kind != tIdent {
		return selector.AttributeSelector{}, p.unexpected()
	}
	name := p.pool.Intern(p.cur.text)
	p.advance()
	if p.err != nil {
		return selector.AttributeSelector{}, p.err
	}

	op := selector.AttrExists
	var value string
	var err error
	switch p.cur.kind {
	case tRBracket:
	case tEquals:
		op = selector.AttrEquals
		p.advance()
		value, err = p.attrValue()
	case tIncludes:
		op = selector.AttrIncludes
		p.advance()
		value, err = p.attrValue()
	case tDashMatch:
		op = selector.AttrDashMatch
		p.advance()
		value, err = p.attrValue()
	case tPrefixMatch:
		op = selector.AttrPrefixMatch
		p.advance()
		value, err = p.attrValue()
	case tSuffixMatch:
		op = selector.AttrSuffixMatch
		p.advance()
		value, err = p.attrValue()
	case tSubstring:
		op = selector.AttrSubstring
		p.advance()
		value, err = p.attrValue()
	default:
		return selector.AttributeSelector{}, p.unexpected()
	}
	if err != nil {
		return selector.AttributeSelector{}, err
	}
	if p.err != nil {
		return selector.AttributeSelector{}, p.err
	}
	if p.cur.kind != tRBracket {
		return selector.AttributeSelector{}, p.unexpected()
	}
	p.advance()
	return selector.AttributeSelector{Name: name, Op: op, Value: value}, nil
}

func (p *Parser) attrValue() (string, error) {
	if p.err != nil {
		return "", p.err
	}
	switch p.cur.kind {
	case tString, tIdent:
		v := p.cur.text
		p.advance()
		return v, p.err
	default:
		return "", p.unexpected()
	}
}

func (p *Parser) declaration() (*selector.Declaration, error) {
	if p.cur.kind != tIdent {
		return nil, p.unexpected()
	}
	name := p.pool.Intern(p.cur.text)
	p.advance()
	if p.err != nil {
		return nil, p.err
	}
	if p.cur.kind != tColon {
		return nil, p.unexpected()
	}
	p.advance()
	if p.err != nil {
		return nil, p.err
	}

	var values []selector.Value
	for {
		v, err := p.Value()
		if err != nil {
			return nil, err
		}
		values = append(values, v)
		if p.err != nil {
			return nil, p.err
		}
		if p.cur.kind == tSemicolon || p.cur.kind == tRBrace {
			break
		}
	}
	if p.cur.kind == tSemicolon {
		p.advance()
		if p.err != nil {
			return nil, p.err
		}
	}
	return &selector.Declaration{Name: name, Values: values}, nil
}

// Value parses one CSS value: an identifier, a function call, a
// number (with optional unit), a hex color, or a quoted string.
func (p *Parser) Value() (selector.Value, error) {
	if p.err != nil {
		return selector.Value{}, p.err
	}
	tok := p.cur
	switch tok.kind {
	case tIdent:
		p.advance()
		if p.err != nil {
			return selector.Value{}, p.err
		}
		if p.cur.kind != tLParen {
			return selector.Value{Kind: selector.ValIdent, Ident: tok.text}, nil
		}
		p.advance()
		if p.err != nil {
			return selector.Value{}, p.err
		}
		var args []selector.Value
		for p.cur.kind != tRParen {
			if p.cur.kind == tEOF {
				return selector.Value{}, &Error{Kind: UnexpectedEOF, Offset: p.cur.offset}
			}
			v, err := p.Value()
			if err != nil {
				return selector.Value{}, err
			}
			args = append(args, v)
			if p.err != nil {
				return selector.Value{}, p.err
			}
			if p.cur.kind == tComma {
				p.advance()
				if p.err != nil {
					return selector.Value{}, p.err
				}
			}
		}
		p.advance()
		if p.err != nil {
			return selector.Value{}, p.err
		}
		return selector.Value{Kind: selector.ValFunction, Func: &selector.FunctionValue{Name: tok.text, Args: args}}, nil
	case tNumber:
		p.advance()
		return selector.Value{Kind: selector.ValNumber, Number: tok.num, Unit: tok.unit, HasUnit: tok.hasUnit}, p.err
	case tHash:
		p.advance()
		return selector.Value{Kind: selector.ValHexColor, Hex: tok.text}, p.err
	case tString:
		p.advance()
		return selector.Value{Kind: selector.ValString, Str: tok.text}, p.err
	default:
		return selector.Value{}, p.unexpected()
	}
}

func (p *Parser) unexpected() error {
	if p.cur.kind == tEOF {
		return &Error{Kind: UnexpectedEOF, Offset: p.cur.offset}
	}
	return &Error{Kind: UnexpectedToken, Offset: p.cur.offset, Lexeme: p.cur.text}
}
