package fluent

import (
	"fmt"
	"strings"
	"unicode"
)

var bom = []byte{0xEF, 0xBB, 0xBF}

// ParseFile parses a Fluent (.ftl) source buffer into its entries. A
// leading UTF-8 BOM is stripped first. Syntax errors are collected and
// returned alongside every entry that did parse successfully; they never
// abort the rest of the file.
func ParseFile(src []byte) ([]Entry, []SyntaxError) {
	if len(src) >= 3 && src[0] == bom[0] && src[1] == bom[1] && src[2] == bom[2] {
		src = src[3:]
	}

	p := &parser{src: src}
	var entries []Entry
	for !p.atEOF() {
		p.skipBlankLines()
		if p.atEOF() {
			break
		}
		start := p.pos
		switch {
		case p.peek() == '#':
			entries = append(entries, p.parseComment())
		case p.peek() == '-':
			entries = append(entries, p.parseTermOrError(start))
		case isIdentStart(p.peekRune()):
			entries = append(entries, p.parseMessageOrError(start))
		default:
			p.errorf(Span{start, start + 1}, "unexpected character %q", p.peek())
			p.skipToLineEnd()
		}
	}
	return entries, p.errors
}

type parser struct {
	src        []byte
	pos        int
	errors     []SyntaxError
	lastEqSpan Span
}

func (p *parser) errorf(span Span, format string, args ...any) {
	p.errors = append(p.errors, SyntaxError{Span: span, Message: fmt.Sprintf(format, args...)})
}

func (p *parser) atEOF() bool { return p.pos >= len(p.src) }

func (p *parser) peek() byte {
	if p.atEOF() {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) peekAt(offset int) byte {
	if p.pos+offset >= len(p.src) {
		return 0
	}
	return p.src[p.pos+offset]
}

func (p *parser) peekRune() rune {
	if p.atEOF() {
		return 0
	}
	return rune(p.src[p.pos])
}

func (p *parser) advance() byte {
	b := p.src[p.pos]
	p.pos++
	return b
}

func (p *parser) skipBlankLines() {
	for !p.atEOF() {
		if p.peek() == '\n' || p.peek() == '\r' || p.peek() == ' ' || p.peek() == '\t' {
			p.pos++
			continue
		}
		break
	}
}

func (p *parser) skipToLineEnd() {
	for !p.atEOF() && p.peek() != '\n' {
		p.pos++
	}
	if !p.atEOF() {
		p.pos++
	}
}

// parseComment handles one run of consecutive "#"/"##"/"###" lines at the
// same level, collapsed into a single Entry.
func (p *parser) parseComment() Entry {
	start := p.pos
	level := 0
	for p.peek() == '#' {
		level++
		p.pos++
	}
	if level > 3 {
		level = 3
	}
	if p.peek() == ' ' {
		p.pos++
	}
	textStart := p.pos
	p.skipToLineEnd()
	textEnd := p.pos
	text := strings.TrimRight(string(p.src[textStart:textEnd]), "\r\n")
	return Entry{
		Kind:         EntryComment,
		Span:         Span{start, p.pos},
		CommentLevel: level,
		CommentText:  text,
	}
}

// parseMessageOrError parses "identifier = pattern" plus any attribute
// lines, recovering to the next line on structural errors.
func (p *parser) parseMessageOrError(start int) Entry {
	id, idSpan := p.parseIdentifier()
	if !p.expectEquals() {
		p.errorf(Span{p.pos, p.pos + 1}, "expected '=' after message identifier %q", id)
		p.skipToLineEnd()
		return Entry{Kind: EntryMessage, ID: id, IDSpan: idSpan, Span: Span{start, p.pos}}
	}
	eqSpan := p.lastEqSpan
	value := p.parsePattern()
	attrs := p.parseAttributes()
	return Entry{
		Kind:       EntryMessage,
		ID:         id,
		IDSpan:     idSpan,
		EqSpan:     eqSpan,
		Value:      value,
		Attributes: attrs,
		Span:       Span{start, p.pos},
	}
}

func (p *parser) parseTermOrError(start int) Entry {
	p.pos++ // consume '-'
	id, idSpan := p.parseIdentifier()
	if !p.expectEquals() {
		p.errorf(Span{p.pos, p.pos + 1}, "expected '=' after term identifier %q", id)
		p.skipToLineEnd()
		return Entry{Kind: EntryTerm, ID: id, IDSpan: idSpan, Span: Span{start, p.pos}}
	}
	eqSpan := p.lastEqSpan
	value := p.parsePattern()
	attrs := p.parseAttributes()
	return Entry{
		Kind:       EntryTerm,
		ID:         id,
		IDSpan:     idSpan,
		EqSpan:     eqSpan,
		Value:      value,
		Attributes: attrs,
		Span:       Span{start, p.pos},
	}
}

func (p *parser) parseIdentifier() (string, Span) {
	start := p.pos
	for !p.atEOF() && isIdentPart(rune(p.peek())) {
		p.pos++
	}
	return string(p.src[start:p.pos]), Span{start, p.pos}
}

func (p *parser) expectEquals() bool {
	for p.peek() == ' ' || p.peek() == '\t' {
		p.pos++
	}
	if p.peek() != '=' {
		return false
	}
	start := p.pos
	p.pos++
	p.lastEqSpan = Span{start, p.pos}
	for p.peek() == ' ' || p.peek() == '\t' {
		p.pos++
	}
	return true
}

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isIdentPart(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-'
}
