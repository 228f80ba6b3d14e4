package reader

import "github.com/assemblr/solc/value"

// readObjectLiteral reads a '{' ... '}' object literal with the given
// parent name (spec §4.3). The caller has already decided the parent
// (from plain '{', '@{' or '@name{'); the opening '{' has not yet been
// consumed.
func (p *parser) readObjectLiteral(parent string) (value.Value, error) {
	start := p.position()
	p.advance() // '{'
	lit := value.NewObjectLiteral(parent)
	for {
		if !p.skipSpaceAndComments() {
			return nil, p.fail(KindUnclosedLiteral, start, "unclosed object literal: missing '}'")
		}
		if c, _ := p.peek(); c == '}' {
			p.advance()
			return lit, nil
		}
		keyVal, err := p.readValue()
		if err != nil {
			return nil, err
		}
		key, ok := keyVal.(value.Token)
		if !ok {
			return nil, p.fail(KindBadLiteralKey, start, "object literal key must be a token, got %T", keyVal)
		}
		if !p.skipSpaceAndComments() {
			return nil, p.fail(KindUnclosedLiteral, start, "unclosed object literal: missing '}'")
		}
		if c, _ := p.peek(); c == '}' {
			return nil, p.fail(KindUnclosedLiteral, start, "object literal key %q has no matching value", key)
		}
		val, err := p.readValue()
		if err != nil {
			return nil, err
		}
		lit.Set(key, val)
	}
}

// dottedSegment is one run of non-separator characters from a raw
// token, plus the separator ('.', '@' or 0) that followed it.
type dottedSegment struct {
	text string
	sep  byte
}

// splitDotted splits raw on '.' and '@', recording the separator that
// terminated each segment (0 for the last).
func splitDotted(raw string) []dottedSegment {
	var segs []dottedSegment
	start := 0
	for i := 0; i < len(raw); i++ {
		if raw[i] == '.' || raw[i] == '@' {
			segs = append(segs, dottedSegment{text: raw[start:i], sep: raw[i]})
			start = i + 1
		}
	}
	segs = append(segs, dottedSegment{text: raw[start:], sep: 0})
	return segs
}

// rewriteDottedToken implements the dotted-getter rewrite (spec §4.2).
// A token with no '.' or '@' is returned unchanged. Otherwise each
// property-name segment after the head is wrapped Frozen, matching the
// worked example in spec §8 (P3) rather than the transformation
// formula's literal wording, which the example contradicts for chains
// of three or more segments — see DESIGN.md.
func rewriteDottedToken(raw string, pos Position, p *parser) (value.Value, error) {
	segs := splitDotted(raw)
	if len(segs) == 1 {
		return value.Token(raw), nil
	}
	for _, s := range segs {
		if s.text == "" {
			return nil, p.fail(KindBadFunctionForm, pos, "dotted-getter token %q has an empty segment", raw)
		}
	}
	var acc value.Value = value.Token(segs[0].text)
	for i := 1; i < len(segs); i++ {
		getName := "get"
		if segs[i-1].sep == '@' {
			getName = "@get"
		}
		acc = &value.List{
			ObjectMode:  true,
			FreezeCount: -1,
			Children: []value.Value{
				acc,
				value.Token(getName),
				&value.Frozen{Inner: value.Token(segs[i].text)},
			},
		}
	}
	return acc, nil
}

// readFunctionShorthand implements the '^' sugar (spec §4.1.5). The '^'
// byte has not yet been consumed; this peeks the following byte to
// decide whether to commit to one of the three function forms or fall
// back to ordinary token lexing (a bare '^' is a plain token character,
// not a standalone one).
//
// All three forms produce List(Token("^"), params, statements) with
// statements always a single nested *value.List, even though spec
// §4.1.5's "^( params ) { body… }" wording splices body inline: spliced
// children would make a single-statement "^(){ [a list literal] }" body
// indistinguishable, after parsing, from the "^[ body ]" form's single
// embedded body list. Keeping statements uniformly nested gives both
// forms one consistent tree shape without changing what either form
// means. See DESIGN.md.
func (p *parser) readFunctionShorthand() (value.Value, error) {
	pos := p.position()
	next, ok := p.peekAt(1)
	if !ok || (next != '[' && next != '(' && next != '{') {
		return p.readPlainToken()
	}
	p.advance() // '^'

	switch next {
	case '[':
		body, err := p.readBracketList(false)
		if err != nil {
			return nil, err
		}
		return &value.List{Children: []value.Value{
			value.Token("^"),
			value.NewList(),
			body,
		}}, nil

	case '(':
		params, err := p.readFrozenList()
		if err != nil {
			return nil, err
		}
		if !p.skipSpaceAndComments() {
			return nil, p.fail(KindBadFunctionForm, pos, "unexpected end of input after '^(...)'")
		}
		if c, _ := p.peek(); c != '{' {
			return nil, p.fail(KindBadFunctionForm, pos, "expected '{' after '^(...)' parameter list")
		}
		bodyStart := p.position()
		p.advance() // '{'
		stmts, err := p.readStatements('}', bodyStart)
		if err != nil {
			return nil, err
		}
		return &value.List{Children: []value.Value{
			value.Token("^"),
			params,
			&value.List{Children: stmts},
		}}, nil

	case '{':
		bodyStart := p.position()
		p.advance() // '{'
		stmts, err := p.readStatements('}', bodyStart)
		if err != nil {
			return nil, err
		}
		emptyParams := &value.Frozen{Inner: value.NewList()}
		return &value.List{Children: []value.Value{
			value.Token("^"),
			emptyParams,
			&value.List{Children: stmts},
		}}, nil
	}
	panic("unreachable")
}

// readObjectModeSugar implements the '@' sugar (spec §4.1.6). The '@'
// byte has not yet been consumed.
func (p *parser) readObjectModeSugar() (value.Value, error) {
	pos := p.position()
	next, ok := p.peekAt(1)

	if ok && next == '[' {
		p.advance() // '@'
		return p.readBracketList(true)
	}
	if ok && next == '{' {
		p.advance() // '@'
		return p.readObjectLiteral("Object")
	}

	if !ok || isDelimiter(next) {
		// Nothing nameable follows: bare '@' is a plain token (spec
		// §4.1.6).
		p.advance() // '@'
		return value.Token("@"), nil
	}

	// Commit to the @name{ grammar: lex the name, then require '{'.
	p.advance() // '@'
	name := p.lexRawToken()
	if name == "" {
		return nil, p.fail(KindBadLiteralParent, pos, "@ parent name does not lex as a token")
	}
	if c, ok := p.peek(); !ok || c != '{' {
		return nil, p.fail(KindBadLiteralParent, pos, "@%s is not followed by '{'", name)
	}
	return p.readObjectLiteral(name)
}
