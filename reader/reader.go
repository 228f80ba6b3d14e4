// Package reader turns Sol source bytes into a value.List tree (spec
// §4.1-§4.3): the lexer/parser half of the core pipeline.
//
// Grounded on asm/parser.go's parser struct: cursor and position state
// are threaded explicitly through a value passed down the call graph,
// not kept in package-level globals (spec §9, "static cursors →
// explicit parser state").
package reader

import (
	"github.com/pkg/errors"

	"github.com/assemblr/solc/value"
)

// parser carries all reader state for one Parse call. No field here is
// shared across calls; a fresh parser is built per invocation.
type parser struct {
	name string
	src  []byte
	pos  int
	line int
	col  int
	opts *Options
}

// Parse consumes the entire input and returns the top-level List it
// parses to (spec §3.2, §4.1.1). Equivalent to ParseSource("input", source,
// DefaultOptions()).
func Parse(source []byte) (*value.List, error) {
	return ParseSource("input", source, nil)
}

// ParseSource is Parse with an explicit source name (used in error
// messages) and Options.
func ParseSource(name string, source []byte, opts *Options) (*value.List, error) {
	p := &parser{
		name: name,
		src:  source,
		line: 1,
		col:  1,
		opts: normalizeOptions(opts),
	}
	top := value.NewList()
	for {
		if !p.skipSpaceAndComments() {
			break
		}
		v, err := p.readValue()
		if err != nil {
			return nil, err
		}
		top.Append(v)
	}
	return top, nil
}

func (p *parser) fail(kind Kind, pos Position, format string, args ...any) error {
	return &Error{
		Name: p.name,
		Kind: kind,
		Pos:  pos,
		Msg:  errors.Errorf(format, args...).Error(),
	}
}

func (p *parser) position() Position {
	return Position{Line: p.line, Col: p.col}
}

// eof reports whether the cursor has consumed the whole input.
func (p *parser) eof() bool {
	return p.pos >= len(p.src)
}

// peek returns the byte at the cursor without consuming it.
func (p *parser) peek() (byte, bool) {
	if p.eof() {
		return 0, false
	}
	return p.src[p.pos], true
}

// peekAt returns the byte offset bytes ahead of the cursor, without
// consuming anything.
func (p *parser) peekAt(offset int) (byte, bool) {
	i := p.pos + offset
	if i < 0 || i >= len(p.src) {
		return 0, false
	}
	return p.src[i], true
}

// advance consumes and returns the byte at the cursor.
func (p *parser) advance() byte {
	c := p.src[p.pos]
	p.pos++
	if c == '\n' {
		p.line++
		p.col = 1
	} else {
		p.col++
	}
	return c
}

// skipSpaceAndComments discards whitespace and ';'-to-end-of-line
// comments (spec §4.1.2). Returns false at EOF.
func (p *parser) skipSpaceAndComments() bool {
	for {
		c, ok := p.peek()
		if !ok {
			return false
		}
		switch {
		case isSpace(c):
			p.advance()
		case c == ';':
			for {
				c, ok := p.peek()
				if !ok || c == '\n' {
					break
				}
				p.advance()
			}
		default:
			return true
		}
	}
}

// readValue dispatches on the next lookahead byte per spec §4.1.3.
func (p *parser) readValue() (value.Value, error) {
	c, ok := p.peek()
	if !ok {
		return nil, p.fail(KindUnclosedList, p.position(), "unexpected end of input")
	}

	switch {
	case isDigit(c) || (c == '-' && isDigitAt(p, 1)):
		return p.readNumber()
	case c == '"':
		return p.readString()
	case c == '(':
		return p.readFrozenList()
	case c == '[':
		return p.readBracketList(false)
	case c == '{':
		return p.readObjectLiteral("")
	case c == ':':
		p.advance()
		if !p.skipSpaceAndComments() {
			return nil, p.fail(KindUnclosedList, p.position(), "unexpected end of input after ':'")
		}
		inner, err := p.readValue()
		if err != nil {
			return nil, err
		}
		return &value.Frozen{Inner: inner}, nil
	case c == '^':
		return p.readFunctionShorthand()
	case c == '@':
		return p.readObjectModeSugar()
	default:
		return p.readPlainToken()
	}
}

func isDigitAt(p *parser, offset int) bool {
	c, ok := p.peekAt(offset)
	return ok && isDigit(c)
}

// readFrozenList reads a '(' ... ')' list and wraps it in Frozen, per
// spec §4.1.3: "A List opened with ( is implicitly wrapped in a Frozen".
func (p *parser) readFrozenList() (value.Value, error) {
	start := p.position()
	p.advance() // '('
	children, err := p.readListBody(')', start)
	if err != nil {
		return nil, err
	}
	return &value.Frozen{Inner: &value.List{Children: children}}, nil
}

// readBracketList reads a '[' ... ']' list. objectMode comes from the
// '@[' sugar (spec §4.1.6); it is false for a plain '['.
func (p *parser) readBracketList(objectMode bool) (*value.List, error) {
	start := p.position()
	p.advance() // '['
	children, err := p.readListBody(']', start)
	if err != nil {
		return nil, err
	}
	return &value.List{ObjectMode: objectMode, Children: children}, nil
}

// readListBody reads values until closer, consuming it. start is the
// position of the opening delimiter, used for the UnclosedList error.
func (p *parser) readListBody(closer byte, start Position) ([]value.Value, error) {
	var children []value.Value
	for {
		if !p.skipSpaceAndComments() {
			return nil, p.fail(KindUnclosedList, start, "unclosed list: missing '%c'", closer)
		}
		c, _ := p.peek()
		if c == closer {
			p.advance()
			return children, nil
		}
		v, err := p.readValue()
		if err != nil {
			return nil, err
		}
		children = append(children, v)
	}
}

// readStatements reads values until closer without wrapping them in a
// List (spec §4.1.5's function body, "read as a statement sequence
// until }"). start is the opening '{' position, used for the
// UnclosedLiteral error (braces, not brackets).
func (p *parser) readStatements(closer byte, start Position) ([]value.Value, error) {
	var stmts []value.Value
	for {
		if !p.skipSpaceAndComments() {
			return nil, p.fail(KindUnclosedLiteral, start, "unclosed function body: missing '%c'", closer)
		}
		c, _ := p.peek()
		if c == closer {
			p.advance()
			return stmts, nil
		}
		v, err := p.readValue()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, v)
	}
}

// readPlainToken lexes a raw token and runs it through the dotted-getter
// rewrite (spec §4.1.4, §4.2).
func (p *parser) readPlainToken() (value.Value, error) {
	pos := p.position()
	raw := p.lexRawToken()
	return rewriteDottedToken(raw, pos, p)
}
