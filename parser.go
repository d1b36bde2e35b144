package yamlite

import (
	"strconv"

	"github.com/lfdmn/go-yamlite/internal/token"
)

// parser builds a Value tree from the scanner's token stream using one
// token of lookahead. Block collections track how many INDENT tokens they
// consumed and close exactly that many DEDENT tokens; an unmatched DEDENT
// ends the collection and is left for the enclosing one.
type parser struct {
	sc  *scanner
	cur token.Token
	nxt token.Token

	maxDepth int
}

func newParser(sc *scanner, maxDepth int) (*parser, error) {
	p := &parser{sc: sc, maxDepth: maxDepth}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *parser) advance() error {
	p.cur = p.nxt
	tok, err := p.sc.next()
	if err != nil {
		return err
	}
	p.nxt = tok
	return nil
}

func (p *parser) skipNewlines() error {
	for p.cur.Type == token.NEWLINE {
		if err := p.advance(); err != nil {
			return err
		}
	}
	return nil
}

// parseDocument parses a whole document. An input with no content yields
// null; content remaining after the root value is an error.
func (p *parser) parseDocument() (*Value, error) {
	if err := p.skipNewlines(); err != nil {
		return nil, err
	}
	if p.cur.Type == token.EOF {
		return NewNull(), nil
	}

	v, err := p.parseBlockValue(0)
	if err != nil {
		return nil, err
	}

	if err := p.skipNewlines(); err != nil {
		return nil, err
	}
	for p.cur.Type == token.DEDENT {
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	if p.cur.Type != token.EOF {
		return nil, syntaxError(ErrUnexpectedToken, p.cur.Line, p.cur.Column,
			"unexpected %s after document content", p.cur.Type)
	}
	return v, nil
}

// parseBlockValue parses the value position after a colon, after a dash,
// or at the document root. The value may continue on following lines at a
// deeper indentation; every INDENT consumed on the way in is matched by a
// DEDENT on the way out.
func (p *parser) parseBlockValue(depth int) (*Value, error) {
	if err := p.skipNewlines(); err != nil {
		return nil, err
	}
	opened := 0
	for p.cur.Type == token.INDENT {
		if err := p.advance(); err != nil {
			return nil, err
		}
		opened++
	}

	if p.cur.Type == token.DEDENT || p.cur.Type == token.EOF {
		return nil, syntaxError(ErrMissingValue, p.cur.Line, p.cur.Column, "missing value")
	}

	v, err := p.parseValue(depth)
	if err != nil {
		return nil, err
	}

	if err := p.skipNewlines(); err != nil {
		return nil, err
	}
	for opened > 0 && p.cur.Type == token.DEDENT {
		if err := p.advance(); err != nil {
			return nil, err
		}
		opened--
	}
	return v, nil
}

func (p *parser) parseValue(depth int) (*Value, error) {
	if depth >= p.maxDepth {
		return nil, syntaxError(ErrMaxDepth, p.cur.Line, p.cur.Column,
			"nesting exceeds %d levels", p.maxDepth)
	}

	switch {
	case p.cur.Type == token.STRING && p.nxt.Type == token.COLON:
		return p.parseBlockMapping(depth)
	case p.cur.Type == token.DASH:
		return p.parseBlockSequence(depth)
	case p.cur.Type == token.LBRACKET:
		return p.parseFlowSequence(depth)
	case p.cur.Type == token.LBRACE:
		return p.parseFlowMapping(depth)
	}

	switch p.cur.Type {
	case token.STRING:
		v := NewString(p.cur.Literal)
		return v, p.advance()
	case token.NUMBER:
		f, err := strconv.ParseFloat(p.cur.Literal, 64)
		if err != nil {
			return nil, syntaxError(ErrUnexpectedToken, p.cur.Line, p.cur.Column,
				"invalid number %q", p.cur.Literal)
		}
		return NewNumber(f), p.advance()
	case token.BOOLEAN:
		return NewBool(p.cur.Literal == "true"), p.advance()
	case token.NULL:
		return NewNull(), p.advance()
	}

	return nil, syntaxError(ErrUnexpectedToken, p.cur.Line, p.cur.Column,
		"unexpected %s", p.cur.Type)
}

// parseBlockMapping parses consecutive "key: value" entries. Entries may
// continue at the same indentation or, leniently, one level deeper; a
// duplicate key overwrites the earlier entry.
func (p *parser) parseBlockMapping(depth int) (*Value, error) {
	m := NewMapping()
	opened := 0
	for {
		key := p.cur.Literal
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.cur.Type != token.COLON {
			return nil, syntaxError(ErrUnexpectedToken, p.cur.Line, p.cur.Column,
				"expected ':' after mapping key, got %s", p.cur.Type)
		}
		if err := p.advance(); err != nil {
			return nil, err
		}

		val, err := p.parseBlockValue(depth + 1)
		if err != nil {
			return nil, err
		}
		m.mp[key] = val

		if err := p.skipNewlines(); err != nil {
			return nil, err
		}
		for p.cur.Type == token.INDENT {
			if err := p.advance(); err != nil {
				return nil, err
			}
			opened++
		}
		for opened > 0 && p.cur.Type == token.DEDENT {
			if err := p.advance(); err != nil {
				return nil, err
			}
			opened--
		}
		if p.cur.Type != token.STRING || p.nxt.Type != token.COLON {
			break
		}
	}
	return m, nil
}

// parseBlockSequence parses consecutive "- value" entries. An entry only
// continues the sequence when its dash sits in the same column as the
// first one; a dash further right belongs to a nested sequence.
func (p *parser) parseBlockSequence(depth int) (*Value, error) {
	seq := NewSequence()
	col := p.cur.Column
	opened := 0
	for {
		if err := p.advance(); err != nil {
			return nil, err
		}
		el, err := p.parseBlockValue(depth + 1)
		if err != nil {
			return nil, err
		}
		seq.seq = append(seq.seq, el)

		if err := p.skipNewlines(); err != nil {
			return nil, err
		}
		for p.cur.Type == token.INDENT {
			if err := p.advance(); err != nil {
				return nil, err
			}
			opened++
		}
		for opened > 0 && p.cur.Type == token.DEDENT {
			if err := p.advance(); err != nil {
				return nil, err
			}
			opened--
		}
		if p.cur.Type != token.DASH || p.cur.Column != col {
			break
		}
	}
	return seq, nil
}

// parseFlowSequence parses "[a, b, c]". Line breaks are insignificant
// inside the brackets and a trailing comma is allowed.
func (p *parser) parseFlowSequence(depth int) (*Value, error) {
	open := p.cur
	if err := p.advance(); err != nil {
		return nil, err
	}
	seq := NewSequence()
	for {
		if err := p.skipNewlines(); err != nil {
			return nil, err
		}
		if p.cur.Type == token.RBRACKET {
			return seq, p.advance()
		}
		if p.cur.Type == token.EOF {
			return nil, syntaxError(ErrUnexpectedToken, open.Line, open.Column,
				"unterminated flow sequence, expected ']'")
		}

		el, err := p.parseValue(depth + 1)
		if err != nil {
			return nil, err
		}
		seq.seq = append(seq.seq, el)

		if err := p.skipNewlines(); err != nil {
			return nil, err
		}
		switch p.cur.Type {
		case token.COMMA:
			if err := p.advance(); err != nil {
				return nil, err
			}
		case token.RBRACKET:
		default:
			return nil, syntaxError(ErrUnexpectedToken, p.cur.Line, p.cur.Column,
				"expected ',' or ']', got %s", p.cur.Type)
		}
	}
}

// parseFlowMapping parses "{k: v, k: v}". Keys must be scalars that read
// as strings; line breaks are insignificant inside the braces.
func (p *parser) parseFlowMapping(depth int) (*Value, error) {
	open := p.cur
	if err := p.advance(); err != nil {
		return nil, err
	}
	m := NewMapping()
	for {
		if err := p.skipNewlines(); err != nil {
			return nil, err
		}
		if p.cur.Type == token.RBRACE {
			return m, p.advance()
		}
		if p.cur.Type == token.EOF {
			return nil, syntaxError(ErrUnexpectedToken, open.Line, open.Column,
				"unterminated flow mapping, expected '}'")
		}
		if p.cur.Type != token.STRING {
			return nil, syntaxError(ErrUnexpectedToken, p.cur.Line, p.cur.Column,
				"expected mapping key, got %s", p.cur.Type)
		}

		key := p.cur.Literal
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.cur.Type != token.COLON {
			return nil, syntaxError(ErrUnexpectedToken, p.cur.Line, p.cur.Column,
				"expected ':' after mapping key, got %s", p.cur.Type)
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.skipNewlines(); err != nil {
			return nil, err
		}

		val, err := p.parseValue(depth + 1)
		if err != nil {
			return nil, err
		}
		m.mp[key] = val

		if err := p.skipNewlines(); err != nil {
			return nil, err
		}
		switch p.cur.Type {
		case token.COMMA:
			if err := p.advance(); err != nil {
				return nil, err
			}
		case token.RBRACE:
		default:
			return nil, syntaxError(ErrUnexpectedToken, p.cur.Line, p.cur.Column,
				"expected ',' or '}', got %s", p.cur.Type)
		}
	}
}
