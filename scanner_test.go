package yamlite

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lfdmn/go-yamlite/internal/token"
)

func scanAll(t *testing.T, src string) []token.Token {
	t.Helper()
	s := newScanner([]byte(src))
	var toks []token.Token
	for {
		tok, err := s.next()
		require.NoError(t, err)
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			return toks
		}
	}
}

func TestScanTokens(t *testing.T) {
	input := "name: app\nservers:\n  - host: a\nitems: [1, two]\n"

	expected := []struct {
		expectedType    token.Type
		expectedLiteral string
	}{
		{token.STRING, "name"},
		{token.COLON, ":"},
		{token.STRING, "app"},
		{token.NEWLINE, "\n"},
		{token.STRING, "servers"},
		{token.COLON, ":"},
		{token.NEWLINE, "\n"},
		{token.INDENT, ""},
		{token.DASH, "-"},
		{token.STRING, "host"},
		{token.COLON, ":"},
		{token.STRING, "a"},
		{token.NEWLINE, "\n"},
		{token.DEDENT, ""},
		{token.STRING, "items"},
		{token.COLON, ":"},
		{token.LBRACKET, "["},
		{token.NUMBER, "1"},
		{token.COMMA, ","},
		{token.STRING, "two"},
		{token.RBRACKET, "]"},
		{token.NEWLINE, "\n"},
		{token.EOF, ""},
	}

	toks := scanAll(t, input)
	require.Len(t, toks, len(expected))
	for i, want := range expected {
		require.Equal(t, want.expectedType, toks[i].Type, "token %d", i)
		require.Equal(t, want.expectedLiteral, toks[i].Literal, "token %d", i)
	}
}

func TestScanTabIndent(t *testing.T) {
	// A tab counts as eight columns of indentation.
	toks := scanAll(t, "a:\n\tb: 1\n")

	types := make([]token.Type, len(toks))
	for i, tok := range toks {
		types[i] = tok.Type
	}
	require.Equal(t, []token.Type{
		token.STRING, token.COLON, token.NEWLINE,
		token.INDENT, token.STRING, token.COLON, token.NUMBER, token.NEWLINE,
		token.DEDENT, token.EOF,
	}, types)
}

func TestScanBlankAndCommentLines(t *testing.T) {
	// Blank lines and comment-only lines never change the indent stack.
	toks := scanAll(t, "a:\n  b: 1\n\n  # note\n  c: 2\n")

	var indents, dedents int
	for _, tok := range toks {
		switch tok.Type {
		case token.INDENT:
			indents++
		case token.DEDENT:
			dedents++
		}
	}
	require.Equal(t, 1, indents)
	require.Equal(t, 1, dedents)
}

func TestScanFlowSuppressesIndentation(t *testing.T) {
	toks := scanAll(t, "a: [\n    1,\n  2]\n")

	for _, tok := range toks {
		require.NotEqual(t, token.INDENT, tok.Type)
		require.NotEqual(t, token.DEDENT, tok.Type)
	}
}

func TestScanDashMarker(t *testing.T) {
	toks := scanAll(t, "- item\n-5\n-flag\nx - y\n")

	types := make([]token.Type, len(toks))
	for i, tok := range toks {
		types[i] = tok.Type
	}
	require.Equal(t, []token.Type{
		token.DASH, token.STRING, token.NEWLINE,
		token.NUMBER, token.NEWLINE,
		token.STRING, token.NEWLINE,
		token.STRING, token.DASH, token.STRING, token.NEWLINE,
		token.EOF,
	}, types)
	require.Equal(t, "-5", toks[3].Literal)
	require.Equal(t, "-flag", toks[5].Literal)
	require.Equal(t, "x", toks[7].Literal)
	require.Equal(t, "y", toks[9].Literal)
}

func TestScanQuotedStrings(t *testing.T) {
	toks := scanAll(t, `msg: "a\nb" 'it\'s'`)

	require.Equal(t, token.STRING, toks[2].Type)
	require.Equal(t, "a\nb", toks[2].Literal)
	require.Equal(t, token.STRING, toks[3].Type)
	require.Equal(t, "it's", toks[3].Literal)
}

func TestScanPlainTrimsTrailingSpace(t *testing.T) {
	toks := scanAll(t, "key: some value   # comment\n")

	require.Equal(t, token.STRING, toks[2].Type)
	require.Equal(t, "some value", toks[2].Literal)
}

func TestScanPositions(t *testing.T) {
	toks := scanAll(t, "ab: 1\ncd: 2\n")

	require.Equal(t, 1, toks[0].Line)
	require.Equal(t, 1, toks[0].Column)
	require.Equal(t, 3, toks[1].Column) // colon after "ab"
	require.Equal(t, 5, toks[2].Column) // the 1
	require.Equal(t, 2, toks[4].Line)   // cd
	require.Equal(t, 1, toks[4].Column)
}

func TestScanInvalidIndentation(t *testing.T) {
	s := newScanner([]byte("a:\n     b: 1\n   c: 2\n"))

	var err error
	for err == nil {
		var tok token.Token
		tok, err = s.next()
		if tok.Type == token.EOF {
			break
		}
	}
	require.ErrorIs(t, err, ErrInvalidIndentation)

	var serr *SyntaxError
	require.ErrorAs(t, err, &serr)
	require.Equal(t, 3, serr.Line)
	require.Equal(t, 4, serr.Column)
}

func TestScanUnterminatedString(t *testing.T) {
	s := newScanner([]byte(`key: "abc`))

	var err error
	for err == nil {
		var tok token.Token
		tok, err = s.next()
		if tok.Type == token.EOF {
			break
		}
	}
	require.ErrorIs(t, err, ErrUnterminatedString)

	var serr *SyntaxError
	require.ErrorAs(t, err, &serr)
	require.Equal(t, 1, serr.Line)
	require.Equal(t, 6, serr.Column)
}
