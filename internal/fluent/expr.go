package fluent

// parsePlaceable parses a "{ ... }" placeable, including nested select
// expressions. The opening brace is the current byte.
func (p *parser) parsePlaceable() PatternElement {
	start := p.pos
	openStart := p.pos
	p.pos++ // consume '{'
	openSpan := Span{openStart, p.pos}
	p.skipInlineSpace()

	expr := p.parseExpression()

	p.skipInlineSpaceAndNewlines()
	closeStart := p.pos
	if p.peek() == '}' {
		p.pos++
	} else {
		p.errorf(Span{closeStart, closeStart + 1}, "expected '}' to close placeable")
	}
	closeSpan := Span{closeStart, p.pos}

	return PatternElement{
		Kind:       ElementPlaceable,
		Span:       Span{start, p.pos},
		OpenBrace:  openSpan,
		CloseBrace: closeSpan,
		Expr:       expr,
	}
}

// parseExpression parses one inline expression: a variable reference, a
// string/number literal, a term/message/function reference (with an
// optional "-> variants" select tail), or a bare select expression headed
// by one of those.
func (p *parser) parseExpression() Expression {
	start := p.pos
	var head Expression

	switch {
	case p.peek() == '$':
		p.pos++
		name, nameSpan := p.parseIdentifier()
		head = Expression{Kind: ExprVariableReference, Span: Span{start, p.pos}, Name: name, NameSpan: nameSpan}
	case p.peek() == '-' && isIdentStart(rune(p.peekAt(1))):
		p.pos++
		name, nameSpan := p.parseIdentifier()
		attr := p.parseOptionalAttrRef()
		args := p.parseOptionalCallArgs()
		head = Expression{Kind: ExprTermReference, Span: Span{start, p.pos}, Name: name, NameSpan: nameSpan, Attr: attr, Args: args}
	case p.peek() == '"':
		head = p.parseStringLiteral()
	case isDigit(p.peek()) || (p.peek() == '-' && isDigit(p.peekAt(1))):
		head = p.parseNumberLiteral()
	case isIdentStart(p.peekRune()):
		name, nameSpan := p.parseIdentifier()
		attr := p.parseOptionalAttrRef()
		args := p.parseOptionalCallArgs()
		kind := ExprMessageReference
		if args != nil && attr == "" {
			kind = ExprFunctionReference
		}
		head = Expression{Kind: kind, Span: Span{start, p.pos}, Name: name, NameSpan: nameSpan, Attr: attr, Args: args}
	default:
		p.errorf(Span{start, start + 1}, "expected expression")
		return Expression{Kind: ExprString, Span: Span{start, start}}
	}

	p.skipInlineSpaceAndNewlines()
	if p.peek() == '-' && p.peekAt(1) == '>' {
		arrowStart := p.pos
		p.pos += 2
		arrowSpan := Span{arrowStart, p.pos}
		variants := p.parseVariants()
		return Expression{
			Kind:     ExprSelect,
			Span:     Span{start, p.pos},
			Selector: &head,
			Arrow:    arrowSpan,
			Variants: variants,
		}
	}
	return head
}

// parseOptionalAttrRef parses an optional ".name" suffix on a term or
// message reference.
func (p *parser) parseOptionalAttrRef() string {
	if p.peek() != '.' {
		return ""
	}
	p.pos++
	name, _ := p.parseIdentifier()
	return name
}

// parseOptionalCallArgs parses an optional "(args)" call-argument list.
// Returns nil (not just empty) when no parenthesis is present, which
// callers use to distinguish a bare reference from a zero-arg call.
func (p *parser) parseOptionalCallArgs() []CallArg {
	p.skipInlineSpace()
	if p.peek() != '(' {
		return nil
	}
	p.pos++
	args := []CallArg{}
	p.skipInlineSpaceAndNewlines()
	for !p.atEOF() && p.peek() != ')' {
		args = append(args, p.parseCallArg())
		p.skipInlineSpaceAndNewlines()
		if p.peek() == ',' {
			p.pos++
			p.skipInlineSpaceAndNewlines()
		}
	}
	if p.peek() == ')' {
		p.pos++
	} else {
		p.errorf(Span{p.pos, p.pos + 1}, "expected ')' to close call arguments")
	}
	return args
}

func (p *parser) parseCallArg() CallArg {
	start := p.pos
	if isIdentStart(p.peekRune()) {
		savedPos := p.pos
		name, nameSpan := p.parseIdentifier()
		p.skipInlineSpace()
		if p.peek() == ':' {
			p.pos++
			p.skipInlineSpaceAndNewlines()
			value := p.parseExpression()
			return CallArg{Name: name, NameSpan: nameSpan, Value: value}
		}
		p.pos = savedPos
	}
	_ = start
	value := p.parseExpression()
	return CallArg{Value: value}
}

func (p *parser) parseStringLiteral() Expression {
	start := p.pos
	p.pos++ // opening quote
	contentStart := p.pos
	for !p.atEOF() && p.peek() != '"' {
		if p.peek() == '\\' && p.peekAt(1) != 0 {
			p.pos++
		}
		p.pos++
	}
	content := string(p.src[contentStart:p.pos])
	if p.peek() == '"' {
		p.pos++
	} else {
		p.errorf(Span{p.pos, p.pos + 1}, "unterminated string literal")
	}
	return Expression{Kind: ExprString, Span: Span{start, p.pos}, Literal: content}
}

func (p *parser) parseNumberLiteral() Expression {
	start := p.pos
	if p.peek() == '-' {
		p.pos++
	}
	for !p.atEOF() && isDigit(p.peek()) {
		p.pos++
	}
	if p.peek() == '.' && isDigit(p.peekAt(1)) {
		p.pos++
		for !p.atEOF() && isDigit(p.peek()) {
			p.pos++
		}
	}
	return Expression{Kind: ExprNumber, Span: Span{start, p.pos}, Literal: string(p.src[start:p.pos])}
}

// parseVariants parses the "[key] pattern" arms following a "->", up to
// (and consuming) the closing line whose indentation returns to the
// placeable's own level — in practice, up to the first unindented "}".
func (p *parser) parseVariants() []Variant {
	var variants []Variant
	for {
		p.skipInlineSpaceAndNewlines()
		isDefault := false
		if p.peek() == '*' {
			isDefault = true
			p.pos++
		}
		if p.peek() != '[' {
			break
		}
		p.pos++
		keyStart := p.pos
		for !p.atEOF() && p.peek() != ']' {
			p.pos++
		}
		key := string(p.src[keyStart:p.pos])
		keySpan := Span{keyStart, p.pos}
		if p.peek() == ']' {
			p.pos++
		}
		p.skipInlineSpace()
		value := p.parseVariantPattern()
		variants = append(variants, Variant{Key: key, KeySpan: keySpan, IsDefault: isDefault, Value: value})
	}
	return variants
}

// parseVariantPattern parses a variant's pattern: the rest of the current
// line plus any further-indented continuation lines, stopping at the next
// "[", "*[", or closing "}".
func (p *parser) parseVariantPattern() *Pattern {
	start := p.pos
	var elements []PatternElement
	textStart := p.pos
	var textRunes []byte

	flush := func(end int) {
		if len(textRunes) == 0 {
			return
		}
		elements = append(elements, PatternElement{Kind: ElementText, Span: Span{textStart, end}, Text: string(textRunes)})
		textRunes = nil
	}

	for !p.atEOF() {
		switch {
		case p.peek() == '{':
			flush(p.pos)
			elements = append(elements, p.parsePlaceable())
			textStart = p.pos
		case p.peek() == '}':
			flush(p.pos)
			if len(elements) == 0 {
				return nil
			}
			return &Pattern{Elements: elements, Span: Span{start, p.pos}}
		case p.peek() == '\n':
			save := p.pos
			nextIsVariantOrClose := p.nextLineStartsVariantOrClose()
			if nextIsVariantOrClose {
				flush(p.pos)
				if len(elements) == 0 {
					return nil
				}
				return &Pattern{Elements: elements, Span: Span{start, p.pos}}
			}
			textRunes = append(textRunes, '\n')
			p.pos++
			p.consumeIndent()
			textStart = p.pos
			_ = save
		default:
			textRunes = append(textRunes, p.advance())
		}
	}
	flush(p.pos)
	if len(elements) == 0 {
		return nil
	}
	return &Pattern{Elements: elements, Span: Span{start, p.pos}}
}

func (p *parser) nextLineStartsVariantOrClose() bool {
	i := p.pos + 1
	for i < len(p.src) && (p.src[i] == ' ' || p.src[i] == '\t') {
		i++
	}
	if i >= len(p.src) {
		return true
	}
	return p.src[i] == '[' || p.src[i] == '*' || p.src[i] == '}'
}

func (p *parser) skipInlineSpace() {
	for !p.atEOF() && (p.peek() == ' ' || p.peek() == '\t') {
		p.pos++
	}
}

func (p *parser) skipInlineSpaceAndNewlines() {
	for !p.atEOF() {
		switch p.peek() {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
