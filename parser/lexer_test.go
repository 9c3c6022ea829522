package parser

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, src string) []token {
	t.Helper()
	lex := newLexer(src)
	var toks []token
	for {
		tok, err := lex.next()
		require.NoError(t, err)
		toks = append(toks, tok)
		if tok.kind == tEOF {
			return toks
		}
	}
}

func TestLexerPunctuation(t *testing.T) {
	toks := collect(t, "{ } ( ) [ ] , : ; . > + ~ *")
	kinds := make([]tokenKind, 0, len(toks))
	for _, tok := range toks {
		kinds = append(kinds, tok.kind)
	}
	require.Equal(t, []tokenKind{
		tLBrace, tRBrace, tLParen, tRParen, tLBracket, tRBracket,
		tComma, tColon, tSemicolon, tDot, tGT, tPlus, tTilde, tStar, tEOF,
	}, kinds)
}

func TestLexerAttributeOperators(t *testing.T) {
	toks := collect(t, "= ~= |= ^= $= *=")
	kinds := make([]tokenKind, 0, len(toks))
	for _, tok := range toks {
		kinds = append(kinds, tok.kind)
	}
	require.Equal(t, []tokenKind{
		tEquals, tIncludes, tDashMatch, tPrefixMatch, tSuffixMatch, tSubstring, tEOF,
	}, kinds)
}

func TestLexerIdent(t *testing.T) {
	toks := collect(t, "div -webkit-foo _bar")
	require.Equal(t, tIdent, toks[0].kind)
	require.Equal(t, "div", toks[0].text)
	require.Equal(t, "-webkit-foo", toks[1].text)
	require.Equal(t, "_bar", toks[2].text)
}

func TestLexerNumber(t *testing.T) {
	toks := collect(t, "10px 2.5em -3 .5 50%")
	require.Equal(t, tNumber, toks[0].kind)
	require.Equal(t, 10.0, toks[0].num)
	require.Equal(t, "px", toks[0].unit)
	require.True(t, toks[0].hasUnit)

	require.Equal(t, 2.5, toks[1].num)
	require.Equal(t, "em", toks[1].unit)

	require.Equal(t, -3.0, toks[2].num)
	require.False(t, toks[2].hasUnit)

	require.Equal(t, 0.5, toks[3].num)

	require.Equal(t, 50.0, toks[4].num)
	require.Equal(t, "%", toks[4].unit)
}

func TestLexerHash(t *testing.T) {
	toks := collect(t, "#header #ff00aa")
	require.Equal(t, tHash, toks[0].kind)
	require.Equal(t, "header", toks[0].text)
	require.Equal(t, "ff00aa", toks[1].text)
}

func TestLexerString(t *testing.T) {
	toks := collect(t, `"hello \"world\"" 'single \'quoted\''`)
	require.Equal(t, tString, toks[0].kind)
	require.Equal(t, `hello "world"`, toks[0].text)
	require.Equal(t, `single 'quoted'`, toks[1].text)
}

func TestLexerCommentsAndSpace(t *testing.T) {
	toks := collect(t, "a/* comment */b  c")
	require.Equal(t, "a", toks[0].text)
	require.False(t, toks[0].space)
	require.Equal(t, "b", toks[1].text)
	require.True(t, toks[1].space, "a comment counts as trivia, same as whitespace")
	require.Equal(t, "c", toks[2].text)
	require.True(t, toks[2].space)
}

func TestLexerUnterminatedString(t *testing.T) {
	_, err := newLexer(`"unterminated`).next()
	require.Error(t, err)
	var perr *Error
	require.ErrorAs(t, err, &perr)
	require.Equal(t, UnexpectedEOF, perr.Kind)
}

func TestLexerUnterminatedComment(t *testing.T) {
	_, err := newLexer("/* never closes").next()
	require.Error(t, err)
	var perr *Error
	require.ErrorAs(t, err, &perr)
	require.Equal(t, UnexpectedEOF, perr.Kind)
}
