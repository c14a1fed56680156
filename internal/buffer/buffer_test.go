package buffer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/robustls/robustls/internal/buffer"
)

func TestOffsetPositionRoundTrip(t *testing.T) {
	b := buffer.New("line one\nline two\nline three")
	positions := []buffer.Position{
		{Line: 0, Character: 0},
		{Line: 0, Character: 4},
		{Line: 1, Character: 5},
		{Line: 2, Character: 10},
	}
	for _, p := range positions {
		off, ok := b.OffsetAt(p)
		assert.True(t, ok)
		got := b.PositionAt(off)
		assert.Equal(t, p, got)
	}
}

func TestEditReplacesRange(t *testing.T) {
	b := buffer.New("- type: entity\n  id: Human\n")
	r := buffer.Range{
		Start: buffer.Position{Line: 1, Character: 6},
		End:   buffer.Position{Line: 1, Character: 11},
	}
	b.Edit(r, "Dwarf")
	line, ok := b.Line(1)
	assert.True(t, ok)
	assert.Equal(t, "  id: Dwarf", line)
}

func TestLineCount(t *testing.T) {
	b := buffer.New("a\nb\nc")
	assert.Equal(t, 3, b.LineCount())
}
