package yamlite

import (
	"strings"

	"github.com/lfdmn/go-yamlite/internal/token"
)

// tabWidth is the width a tab contributes to a line's indentation.
// Spaces count as one.
const tabWidth = 8

// scanner turns source bytes into a token stream. Indentation changes at
// the beginning of a line are synthesized into INDENT and DEDENT tokens
// from a stack of open indent widths; inside flow collections ([ and {)
// indentation is not significant and no such tokens are produced.
type scanner struct {
	src  []byte
	pos  int
	line int
	col  int

	bol       bool // at the beginning of a line, before its indentation
	flowDepth int  // open [ and { minus closed ] and }
	indents   []int
	pending   []token.Token
}

func newScanner(src []byte) *scanner {
	return &scanner{
		src:     src,
		line:    1,
		col:     1,
		bol:     true,
		indents: []int{0},
	}
}

// next returns the next token. After the input is exhausted it returns
// any outstanding DEDENT tokens and then EOF forever.
func (s *scanner) next() (token.Token, error) {
	for {
		if len(s.pending) > 0 {
			tok := s.pending[0]
			s.pending = s.pending[1:]
			return tok, nil
		}

		if s.pos >= len(s.src) {
			for len(s.indents) > 1 {
				s.indents = s.indents[:len(s.indents)-1]
				s.pending = append(s.pending, token.Token{Type: token.DEDENT, Line: s.line, Column: s.col})
			}
			if len(s.pending) > 0 {
				continue
			}
			return token.Token{Type: token.EOF, Line: s.line, Column: s.col}, nil
		}

		if s.bol && s.flowDepth == 0 {
			if err := s.scanIndent(); err != nil {
				return token.Token{}, err
			}
			continue
		}
		s.bol = false

		ch := s.src[s.pos]
		switch {
		case ch == ' ' || ch == '\t' || ch == '\r':
			s.advance()

		case ch == '#':
			for s.pos < len(s.src) && s.src[s.pos] != '\n' {
				s.advance()
			}

		case ch == '\n':
			tok := token.Token{Type: token.NEWLINE, Literal: "\n", Line: s.line, Column: s.col}
			s.advance()
			s.bol = true
			return tok, nil

		case ch == ':':
			return s.structural(token.COLON), nil
		case ch == ',':
			return s.structural(token.COMMA), nil
		case ch == '[':
			s.flowDepth++
			return s.structural(token.LBRACKET), nil
		case ch == '{':
			s.flowDepth++
			return s.structural(token.LBRACE), nil
		case ch == ']':
			if s.flowDepth > 0 {
				s.flowDepth--
			}
			return s.structural(token.RBRACKET), nil
		case ch == '}':
			if s.flowDepth > 0 {
				s.flowDepth--
			}
			return s.structural(token.RBRACE), nil

		case ch == '-' && s.isDashMarker():
			return s.structural(token.DASH), nil

		case ch == '"' || ch == '\'':
			return s.scanQuoted(ch)

		default:
			return s.scanPlain(), nil
		}
	}
}

func (s *scanner) advance() {
	if s.src[s.pos] == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	s.pos++
}

// structural emits a single-byte token whose literal is the byte itself.
func (s *scanner) structural(t token.Type) token.Token {
	tok := token.Token{Type: t, Literal: string(s.src[s.pos]), Line: s.line, Column: s.col}
	s.advance()
	return tok
}

// isDashMarker reports whether the dash at the current position is a
// sequence entry marker rather than the start of a plain scalar. A marker
// dash is followed by whitespace, a line break, or the end of input.
func (s *scanner) isDashMarker() bool {
	if s.pos+1 >= len(s.src) {
		return true
	}
	switch s.src[s.pos+1] {
	case ' ', '\t', '\r', '\n':
		return true
	}
	return false
}

// scanIndent measures the indentation of the line starting at the current
// position and queues INDENT or DEDENT tokens for any change. Lines that
// hold only whitespace or a comment leave the indent stack untouched.
func (s *scanner) scanIndent() error {
	s.bol = false
	width := 0
	for s.pos < len(s.src) {
		ch := s.src[s.pos]
		if ch == ' ' {
			width++
		} else if ch == '\t' {
			width += tabWidth
		} else {
			break
		}
		s.advance()
	}

	if s.pos >= len(s.src) {
		return nil
	}
	if ch := s.src[s.pos]; ch == '\n' || ch == '\r' || ch == '#' {
		return nil
	}

	top := s.indents[len(s.indents)-1]
	switch {
	case width > top:
		s.indents = append(s.indents, width)
		s.pending = append(s.pending, token.Token{Type: token.INDENT, Line: s.line, Column: s.col})
	case width < top:
		for len(s.indents) > 1 && s.indents[len(s.indents)-1] > width {
			s.indents = s.indents[:len(s.indents)-1]
			s.pending = append(s.pending, token.Token{Type: token.DEDENT, Line: s.line, Column: s.col})
		}
		if s.indents[len(s.indents)-1] != width {
			return syntaxError(ErrInvalidIndentation, s.line, s.col,
				"indentation width %d does not match any enclosing block", width)
		}
	}
	return nil
}

// scanQuoted reads a quoted string. Both quote styles honor the same
// escapes (\n, \t, \r, \\, \", \'); an unknown escape keeps the escaped
// character verbatim. Line breaks inside the quotes are kept as-is.
func (s *scanner) scanQuoted(quote byte) (token.Token, error) {
	startLine, startCol := s.line, s.col
	s.advance()

	var b strings.Builder
	for {
		if s.pos >= len(s.src) {
			return token.Token{}, syntaxError(ErrUnterminatedString, startLine, startCol,
				"unterminated string")
		}
		ch := s.src[s.pos]
		if ch == quote {
			s.advance()
			break
		}
		if ch == '\\' {
			s.advance()
			if s.pos >= len(s.src) {
				return token.Token{}, syntaxError(ErrUnterminatedString, startLine, startCol,
					"unterminated string")
			}
			switch esc := s.src[s.pos]; esc {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			default:
				b.WriteByte(esc)
			}
			s.advance()
			continue
		}
		b.WriteByte(ch)
		s.advance()
	}
	return token.Token{Type: token.STRING, Literal: b.String(), Line: startLine, Column: startCol}, nil
}

// scanPlain reads an unquoted scalar up to the next structural character,
// comment, line break, or marker dash, trims trailing whitespace, and
// classifies the result as a boolean, null, number, or string. Internal
// spaces and non-marker dashes are kept, so multi-word scalars and
// hyphenated words need no quotes.
func (s *scanner) scanPlain() token.Token {
	startLine, startCol := s.line, s.col
	start := s.pos
	for s.pos < len(s.src) {
		ch := s.src[s.pos]
		switch ch {
		case ':', '\n', '\r', '#', '[', ']', '{', '}', ',':
			goto done
		}
		if ch == '-' && s.isDashMarker() {
			break
		}
		s.advance()
	}
done:
	lit := strings.TrimRight(string(s.src[start:s.pos]), " \t")
	return token.Token{Type: token.Classify(lit), Literal: lit, Line: startLine, Column: startCol}
}
