package yamlproto_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robustls/robustls/internal/model"
	"github.com/robustls/robustls/internal/parser/yamlproto"
)

// TestParseHumanPrototype exercises a prototype with multiple parents.
func TestParseHumanPrototype(t *testing.T) {
	src := []byte("- type: entity\n  id: Human\n  parent: [BaseMob, LivingBeing]\n")

	records, tree, err := yamlproto.Parse(context.Background(), "/human.yml", src, nil)
	require.NoError(t, err)
	require.NotNil(t, tree)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, model.PrototypeID{Type: "entity", ID: "Human"}, rec.PrototypeID)
	assert.Equal(t, []string{"BaseMob", "LivingBeing"}, rec.Parents)
	assert.Equal(t, "/human.yml", rec.Origin)
}

func TestParseSingleScalarParent(t *testing.T) {
	src := []byte("- type: entity\n  id: Dwarf\n  parent: Human\n")
	records, _, err := yamlproto.Parse(context.Background(), "/dwarf.yml", src, nil)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, []string{"Human"}, records[0].Parents)
}

func TestParseMultiplePrototypes(t *testing.T) {
	src := []byte("- type: entity\n  id: Human\n- type: entity\n  id: Orc\n")
	records, _, err := yamlproto.Parse(context.Background(), "/both.yml", src, nil)
	require.NoError(t, err)
	require.Len(t, records, 2)
}
