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

// TestDefinitionOnTypeKeyJumpsToClass checks that a type key on an
// entity prototype resolves to its declaring class.
func TestDefinitionOnTypeKeyJumpsToClass(t *testing.T) {
	idx := buildHumanIndex(t)
	resolver := reflect.New(idx)

	src := []byte("- type: entity\n  id: Dwarf\n")
	_, tree, err := yamlproto.Parse(context.Background(), "/dwarf.yml", src, nil)
	require.NoError(t, err)

	link, ok := query.Definition(idx, resolver, "/res", tree.Sitter.RootNode(), src, model.Position{Line: 0, Character: 9})
	require.True(t, ok)
	assert.Equal(t, "/Entity.cs", link.TargetPath)
}

// TestDefinitionOnParentKeyJumpsToPrototype exercises the parent-value
// resolution branch.
func TestDefinitionOnParentKeyJumpsToPrototype(t *testing.T) {
	idx := buildHumanIndex(t)
	resolver := reflect.New(idx)

	src := []byte("- type: entity\n  id: Dwarf\n  parent: Human\n")
	_, tree, err := yamlproto.Parse(context.Background(), "/dwarf.yml", src, nil)
	require.NoError(t, err)

	link, ok := query.Definition(idx, resolver, "/res", tree.Sitter.RootNode(), src, model.Position{Line: 2, Character: 11})
	require.True(t, ok)
	assert.Equal(t, "/human.yml", link.TargetPath)
}

// TestDefinitionOnUnrelatedKeyReturnsFalse confirms the no-result zero
// value: an unrecognized cursor never errors, it just yields ok=false.
func TestDefinitionOnUnrelatedKeyReturnsFalse(t *testing.T) {
	idx := buildHumanIndex(t)
	resolver := reflect.New(idx)

	src := []byte("- type: entity\n  id: Dwarf\n")
	_, tree, err := yamlproto.Parse(context.Background(), "/dwarf.yml", src, nil)
	require.NoError(t, err)

	_, ok := query.Definition(idx, resolver, "/res", tree.Sitter.RootNode(), src, model.Position{Line: 0, Character: 0})
	assert.False(t, ok)
}
