package fluent

import "strings"

// parsePattern consumes a message/term value: the rest of the current
// line, plus any subsequent indented continuation lines, stopping before
// a blank line, an attribute line ("    .name = ..."), or a
// less-indented/new-entry line.
func (p *parser) parsePattern() *Pattern {
	start := p.pos
	var elements []PatternElement
	var textStart = p.pos
	var textBuf strings.Builder

	flushText := func(end int) {
		if textBuf.Len() == 0 {
			return
		}
		elements = append(elements, PatternElement{
			Kind: ElementText,
			Span: Span{textStart, end},
			Text: textBuf.String(),
		})
		textBuf.Reset()
	}

	for !p.atEOF() {
		switch p.peek() {
		case '{':
			flushText(p.pos)
			placeable := p.parsePlaceable()
			elements = append(elements, placeable)
			textStart = p.pos
		case '\n':
			lineEndPos := p.pos
			if !p.continuesPattern() {
				flushText(lineEndPos)
				if len(elements) == 0 {
					return nil
				}
				return &Pattern{Elements: elements, Span: Span{start, p.pos}}
			}
			textBuf.WriteByte('\n')
			p.pos++ // consume '\n'
			p.consumeIndent()
			textStart = lineEndPos
		default:
			textBuf.WriteByte(p.advance())
		}
	}
	flushText(p.pos)
	if len(elements) == 0 {
		return nil
	}
	return &Pattern{Elements: elements, Span: Span{start, p.pos}}
}

// continuesPattern looks past the current newline to decide whether the
// following line extends this pattern: it must be indented, non-blank,
// and not an attribute ("."-prefixed after its indentation).
func (p *parser) continuesPattern() bool {
	i := p.pos + 1 // skip the '\n' itself
	indent := 0
	for i < len(p.src) && (p.src[i] == ' ' || p.src[i] == '\t') {
		i++
		indent++
	}
	if indent == 0 {
		return false
	}
	if i >= len(p.src) || p.src[i] == '\n' {
		return false
	}
	if p.src[i] == '.' {
		return false
	}
	return true
}

func (p *parser) consumeIndent() {
	for !p.atEOF() && (p.peek() == ' ' || p.peek() == '\t') {
		p.pos++
	}
}

// parseAttributes consumes any ".name = pattern" lines following a
// message/term value.
func (p *parser) parseAttributes() []Attribute {
	var attrs []Attribute
	for {
		save := p.pos
		p.skipBlankLinesWithinEntry()
		if p.atEOF() || p.peek() != '.' {
			p.pos = save
			return attrs
		}
		p.pos++ // consume '.'
		name, nameSpan := p.parseIdentifier()
		if !p.expectEquals() {
			p.skipToLineEnd()
			continue
		}
		value := p.parsePattern()
		attrs = append(attrs, Attribute{Name: name, NameSpan: nameSpan, Value: value})
	}
}

// skipBlankLinesWithinEntry skips indentation/newlines between a pattern's
// last line and a following attribute line. Blank lines are skipped too,
// so an attribute line after a blank line still attaches to the entry;
// parseAttributes restores the position when no "." follows.
func (p *parser) skipBlankLinesWithinEntry() {
	for !p.atEOF() && (p.peek() == '\n' || p.peek() == ' ' || p.peek() == '\t' || p.peek() == '\r') {
		p.pos++
	}
}
