package query_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robustls/robustls/internal/model"
	"github.com/robustls/robustls/internal/parser/yamlproto"
	"github.com/robustls/robustls/internal/query"
	"github.com/robustls/robustls/internal/reflect"
)

// TestInlayHintsLabelComponentFields checks that an entity prototype's
// component fields each get a type-name hint.
func TestInlayHintsLabelComponentFields(t *testing.T) {
	idx := buildHumanIndex(t)
	resolver := reflect.New(idx)

	src := []byte("- type: entity\n  id: Dwarf\n  components:\n  - type: Sprite\n    sprite: mobs/dwarf.rsi\n")
	_, tree, err := yamlproto.Parse(context.Background(), "/dwarf.yml", src, nil)
	require.NoError(t, err)

	hints := query.InlayHints(resolver, tree.Sitter.RootNode(), src, model.Range{
		Start: model.Position{Line: 0, Character: 0},
		End:   model.Position{Line: 4, Character: 0},
	})

	var labels []string
	for _, h := range hints {
		labels = append(labels, h.Label)
	}
	assert.Contains(t, labels, "string")
}

// TestInlayHintsOutsideRangeAreOmitted confirms the range filter drops
// pairs outside the caller-supplied window.
func TestInlayHintsOutsideRangeAreOmitted(t *testing.T) {
	idx := buildHumanIndex(t)
	resolver := reflect.New(idx)

	src := []byte("- type: entity\n  id: Dwarf\n  components:\n  - type: Sprite\n    sprite: mobs/dwarf.rsi\n")
	_, tree, err := yamlproto.Parse(context.Background(), "/dwarf.yml", src, nil)
	require.NoError(t, err)

	hints := query.InlayHints(resolver, tree.Sitter.RootNode(), src, model.Range{
		Start: model.Position{Line: 0, Character: 0},
		End:   model.Position{Line: 0, Character: 0},
	})
	assert.Empty(t, hints)
}
