// Package buffer implements the Rope Buffer Store: per-open-file editable
// text with line/character addressing and incremental range edits.
//
// No rope data-structure library appears anywhere in the retrieved corpus,
// so Buffer is a line-index over a single contiguous byte slice rather
// than a balanced-tree rope. For the edit volumes a single open document
// sees (keystroke-granularity edits scoped to one file) this is the same
// tradeoff gopls and most Go language servers make; a textbook rope only
// pays for itself at whole-file-rewrite scale this component never sees.
package buffer

import (
	"sort"
	"strings"
)

// Buffer is a mutable UTF-8 text buffer addressable by zero-based
// (line, character-as-rune-offset) positions.
type Buffer struct {
	text        string
	lineOffsets []int // byte offset of the start of each line
}

// New creates a Buffer over the given initial contents.
func New(text string) *Buffer {
	b := &Buffer{text: text}
	b.reindex()
	return b
}

// Text returns the buffer's current full contents.
func (b *Buffer) Text() string {
	return b.text
}

// LineCount returns the number of lines in the buffer (always >= 1).
func (b *Buffer) LineCount() int {
	return len(b.lineOffsets)
}

// Line returns the text of a single line, without its line terminator.
// Returns "" and false if line is out of range.
func (b *Buffer) Line(line int) (string, bool) {
	if line < 0 || line >= len(b.lineOffsets) {
		return "", false
	}
	start := b.lineOffsets[line]
	end := len(b.text)
	if line+1 < len(b.lineOffsets) {
		end = b.lineOffsets[line+1]
	}
	return strings.TrimRight(b.text[start:end], "\r\n"), true
}

// OffsetAt converts a (line, character) position to a byte offset into
// Text(), provided the line exists.
func (b *Buffer) OffsetAt(pos Position) (int, bool) {
	if pos.Line < 0 || pos.Line >= len(b.lineOffsets) {
		return 0, false
	}
	lineText, _ := b.Line(pos.Line)
	runes := []rune(lineText)
	char := pos.Character
	if char < 0 {
		char = 0
	}
	if char > len(runes) {
		char = len(runes)
	}
	byteInLine := len(string(runes[:char]))
	return b.lineOffsets[pos.Line] + byteInLine, true
}

// PositionAt converts a byte offset back into a (line, character)
// position.
func (b *Buffer) PositionAt(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(b.text) {
		offset = len(b.text)
	}
	line := sort.Search(len(b.lineOffsets), func(i int) bool {
		return b.lineOffsets[i] > offset
	}) - 1
	if line < 0 {
		line = 0
	}
	lineStart := b.lineOffsets[line]
	char := len([]rune(b.text[lineStart:offset]))
	return Position{Line: line, Character: char}
}

// Position is a zero-based (line, character) cursor.
type Position struct {
	Line      int
	Character int
}

// Range is a half-open [Start, End) span.
type Range struct {
	Start Position
	End   Position
}

// Edit replaces the text in [Start, End) with newText, entirely
// recomputing the line index. Edits to a single Buffer are expected to be
// serialized by the caller (the Edit Router processes edits for a given
// URL in order); Buffer itself is not safe for concurrent edit.
func (b *Buffer) Edit(r Range, newText string) {
	startOff, ok1 := b.OffsetAt(r.Start)
	endOff, ok2 := b.OffsetAt(r.End)
	if !ok1 {
		startOff = 0
	}
	if !ok2 {
		endOff = len(b.text)
	}
	if startOff > endOff {
		startOff, endOff = endOff, startOff
	}
	b.text = b.text[:startOff] + newText + b.text[endOff:]
	b.reindex()
}

func (b *Buffer) reindex() {
	offsets := []int{0}
	for i := 0; i < len(b.text); i++ {
		if b.text[i] == '\n' {
			offsets = append(offsets, i+1)
		}
	}
	b.lineOffsets = offsets
}
