package reader

import (
	"strconv"

	"github.com/assemblr/solc/value"
)

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isDelimiter reports whether c ends a token. Spec §4.1.2 defines a
// delimiter as whitespace or one of "( ) [ ] { }"; we also stop at ';'
// and '"' to honor the stricter Token invariant of §3.1 ("contains...
// none of ( ) [ ] { } ; \""), since otherwise a token could swallow a
// trailing comment or an adjoining string literal.
func isDelimiter(c byte) bool {
	if isSpace(c) {
		return true
	}
	switch c {
	case '(', ')', '[', ']', '{', '}', ';', '"':
		return true
	}
	return false
}

// lexRawToken consumes and returns the raw bytes from the cursor up to
// the next delimiter (spec §4.1.4: "A token extends until the next
// delimiter").
func (p *parser) lexRawToken() string {
	start := p.pos
	for {
		c, ok := p.peek()
		if !ok || isDelimiter(c) {
			break
		}
		p.advance()
	}
	return string(p.src[start:p.pos])
}

// readNumber lexes a decimal float (spec §4.1.8) without ever
// overrunning into a malformed tail: the scanner only consumes
// characters that keep the lexeme well-formed, so strconv.ParseFloat on
// the result fails only when the value is out of float64 range (e.g.
// 1e400), which is reported as a fatal error. Anything left over (e.g. a
// second '.') is left for the next readValue call.
func (p *parser) readNumber() (value.Value, error) {
	start := p.pos
	if c, ok := p.peek(); ok && c == '-' {
		p.advance()
	}
	for {
		c, ok := p.peek()
		if !ok || !isDigit(c) {
			break
		}
		p.advance()
	}
	if c, ok := p.peek(); ok && c == '.' {
		if d, ok := p.peekAt(1); ok && isDigit(d) {
			p.advance() // '.'
			for {
				c, ok := p.peek()
				if !ok || !isDigit(c) {
					break
				}
				p.advance()
			}
		}
	}
	if c, ok := p.peek(); ok && (c == 'e' || c == 'E') {
		mark := p.pos
		markLine, markCol := p.line, p.col
		p.advance() // 'e'/'E'
		if s, ok := p.peek(); ok && (s == '+' || s == '-') {
			p.advance()
		}
		digits := 0
		for {
			c, ok := p.peek()
			if !ok || !isDigit(c) {
				break
			}
			p.advance()
			digits++
		}
		if digits == 0 {
			// Not a valid exponent after all; rewind to before 'e'.
			p.pos, p.line, p.col = mark, markLine, markCol
		}
	}
	text := string(p.src[start:p.pos])
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, p.fail(KindBadFunctionForm, p.position(), "malformed number literal %q", text)
	}
	return value.Number(f), nil
}

// readString lexes a "..." literal, decoding escapes (spec §4.1.7).
func (p *parser) readString() (value.Value, error) {
	start := p.position()
	p.advance() // opening '"'
	var out []byte
	for {
		c, ok := p.peek()
		if !ok {
			return nil, p.fail(KindUnterminatedString, start, "unterminated string literal")
		}
		if c == '"' {
			p.advance()
			return value.String(out), nil
		}
		if c == '\\' {
			p.advance()
			esc, ok := p.peek()
			if !ok {
				return nil, p.fail(KindUnterminatedString, start, "unterminated string literal")
			}
			p.advance()
			switch esc {
			case 'b':
				out = append(out, '\b')
			case 't':
				out = append(out, '\t')
			case 'n':
				out = append(out, '\n')
			case 'f':
				out = append(out, '\f')
			case 'r':
				out = append(out, '\r')
			case '"':
				out = append(out, '"')
			case '\\':
				out = append(out, '\\')
			default:
				if p.opts.StrictEscapes {
					return nil, p.fail(KindBadFunctionForm, p.position(), "unrecognised escape \\%c", esc)
				}
				p.opts.Warnings.Printf("%s: %s: BadEscape: unrecognised escape \\%c, passing through literally", p.name, p.position(), esc)
				out = append(out, esc)
			}
			continue
		}
		out = append(out, c)
		p.advance()
	}
}
