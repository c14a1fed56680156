package query_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robustls/robustls/internal/index"
	"github.com/robustls/robustls/internal/model"
	"github.com/robustls/robustls/internal/parser/host"
	"github.com/robustls/robustls/internal/parser/yamlproto"
	"github.com/robustls/robustls/internal/query"
	"github.com/robustls/robustls/internal/reflect"
)

func buildHumanIndex(t *testing.T) *index.Index {
	t.Helper()
	idx := index.New()

	hostSrc := []byte(`
[Prototype("entity")]
public sealed class EntityPrototype : IPrototype
{
    [DataField("id", required: true)]
    public string ID = "";

    [DataField("name")]
    public string Name = "";
}

[RegisterComponent]
public sealed class SpriteComponent : Component
{
    [DataField("sprite")]
    public string Sprite = "";
}
`)
	classes, _, err := host.Parse(context.Background(), "/Entity.cs", hostSrc, nil)
	require.NoError(t, err)
	idx.Classes.ReplaceFromOrigin("/Entity.cs", classes)

	protoSrc := []byte("- type: entity\n  id: Human\n- type: entity\n  id: Orc\n")
	protos, _, err := yamlproto.Parse(context.Background(), "/human.yml", protoSrc, nil)
	require.NoError(t, err)
	idx.Prototypes.ReplaceFromOrigin("/human.yml", protos)

	return idx
}

// TestCompletionOnTypeKeyOffersPrototypeTypes exercises completing the
// `type:` value at nesting 2.
func TestCompletionOnTypeKeyOffersPrototypeTypes(t *testing.T) {
	idx := buildHumanIndex(t)
	resolver := reflect.New(idx)

	src := []byte("- type: ent\n  id: Dwarf\n")
	records, tree, err := yamlproto.Parse(context.Background(), "/dwarf.yml", src, nil)
	require.NoError(t, err)
	_ = records

	list := query.Completion(idx, resolver, "/res", tree.Sitter.RootNode(), src, "- type: ent", model.Position{Line: 0, Character: 11})
	var labels []string
	for _, item := range list.Items {
		labels = append(labels, item.Label)
	}
	assert.Contains(t, labels, "entity")
}

// TestCompletionOnIdKeyOffersFieldNames exercises completion with the
// cursor at the start of the `id:` line, which lands on the prototype's
// block_mapping: the remaining field names are proposed, "components"
// ahead of the DataField names, and "id" is left out because it is
// already present.
func TestCompletionOnIdKeyOffersFieldNames(t *testing.T) {
	idx := buildHumanIndex(t)
	resolver := reflect.New(idx)

	src := []byte("- type: entity\n  id: Dwarf\n")
	_, tree, err := yamlproto.Parse(context.Background(), "/partial.yml", src, nil)
	require.NoError(t, err)

	list := query.Completion(idx, resolver, "/res", tree.Sitter.RootNode(), src, "  id: Dwarf", model.Position{Line: 1, Character: 0})
	var labels []string
	for _, item := range list.Items {
		labels = append(labels, item.Label)
	}
	assert.Equal(t, []string{"components", "name"}, labels)
	assert.False(t, list.Incomplete)
}

// TestCompletionFlowParentAfterComma exercises the `parent: [Human, ]`
// shape: the cursor sits right after a trailing comma, so the insertion
// point is the comma's own end and no extra separator is prefixed.
func TestCompletionFlowParentAfterComma(t *testing.T) {
	idx := buildHumanIndex(t)
	resolver := reflect.New(idx)

	lines := []string{"- type: entity", "  id: Dwarf", "  parent: [Human, ]"}
	src := []byte(strings.Join(lines, "\n") + "\n")
	_, tree, err := yamlproto.Parse(context.Background(), "/dwarf.yml", src, nil)
	require.NoError(t, err)

	list := query.Completion(idx, resolver, "/res", tree.Sitter.RootNode(), src, lines[2], model.Position{Line: 2, Character: 17})
	require.NotEmpty(t, list.Items)
	for _, item := range list.Items {
		require.NotNil(t, item.InsertRange)
		assert.Equal(t, item.InsertRange.Start, item.InsertRange.End)
		assert.Equal(t, model.Position{Line: 2, Character: 17}, item.InsertRange.Start)
		assert.Equal(t, item.Label, item.InsertText)
	}
}

// TestCompletionFlowParentAfterFlowNode exercises the `parent: [Human ]`
// shape: the cursor sits after an existing id with no trailing comma, so
// the insertion point is that id's end and the candidate is prefixed
// with ", " to separate it from what's already there.
func TestCompletionFlowParentAfterFlowNode(t *testing.T) {
	idx := buildHumanIndex(t)
	resolver := reflect.New(idx)

	lines := []string{"- type: entity", "  id: Dwarf", "  parent: [Human ]"}
	src := []byte(strings.Join(lines, "\n") + "\n")
	_, tree, err := yamlproto.Parse(context.Background(), "/dwarf.yml", src, nil)
	require.NoError(t, err)

	list := query.Completion(idx, resolver, "/res", tree.Sitter.RootNode(), src, lines[2], model.Position{Line: 2, Character: 17})
	require.NotEmpty(t, list.Items)
	for _, item := range list.Items {
		require.NotNil(t, item.InsertRange)
		assert.Equal(t, item.InsertRange.Start, item.InsertRange.End)
		assert.Equal(t, model.Position{Line: 2, Character: 16}, item.InsertRange.Start)
		assert.Equal(t, ", "+item.Label, item.InsertText)
	}
}

// TestCompletionFlowParentEmptySequence exercises the `parent: []` shape:
// with no prior content, the insertion point falls back to just past the
// opening bracket.
func TestCompletionFlowParentEmptySequence(t *testing.T) {
	idx := buildHumanIndex(t)
	resolver := reflect.New(idx)

	lines := []string{"- type: entity", "  id: Dwarf", "  parent: []"}
	src := []byte(strings.Join(lines, "\n") + "\n")
	_, tree, err := yamlproto.Parse(context.Background(), "/dwarf.yml", src, nil)
	require.NoError(t, err)

	list := query.Completion(idx, resolver, "/res", tree.Sitter.RootNode(), src, lines[2], model.Position{Line: 2, Character: 11})
	require.NotEmpty(t, list.Items)
	for _, item := range list.Items {
		require.NotNil(t, item.InsertRange)
		assert.Equal(t, item.InsertRange.Start, item.InsertRange.End)
		assert.Equal(t, model.Position{Line: 2, Character: 11}, item.InsertRange.Start)
		assert.Equal(t, item.Label, item.InsertText)
	}
}
