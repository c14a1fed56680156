package reflect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robustls/robustls/internal/index"
	"github.com/robustls/robustls/internal/model"
	"github.com/robustls/robustls/internal/reflect"
)

func entityPrototypeClass() model.ClassRecord {
	return model.ClassRecord{
		Name: "EntityPrototype",
		Base: []string{"IPrototype"},
		Attributes: model.AttributeSet{
			{Name: "Prototype", Args: map[string]model.ArgValue{
				"type": {Kind: model.ArgString, Str: "entity"},
			}},
		},
		Fields: []model.FieldRecord{
			{Name: "ID", TypeName: "string"},
		},
		Definition: model.DefinitionIndex{Path: "/EntityPrototype.cs"},
	}
}

func TestResolvePrototypeByAttributeType(t *testing.T) {
	idx := index.New()
	idx.Classes.Insert(entityPrototypeClass())

	r := reflect.New(idx)
	got, ok := r.ResolvePrototype("entity")
	require.True(t, ok)
	assert.Equal(t, "EntityPrototype", got.Name)
}

func TestResolvePrototypeByNameSuffix(t *testing.T) {
	idx := index.New()
	idx.Classes.Insert(model.ClassRecord{
		Name:       "HumanPrototype",
		Base:       []string{"IPrototype"},
		Attributes: model.AttributeSet{{Name: "Prototype", Args: map[string]model.ArgValue{}}},
	})

	r := reflect.New(idx)
	got, ok := r.ResolvePrototype("human")
	require.True(t, ok)
	assert.Equal(t, "HumanPrototype", got.Name)
}

func TestResolvePrototypeRejectsWithoutMarkerInterface(t *testing.T) {
	idx := index.New()
	idx.Classes.Insert(model.ClassRecord{
		Name:       "EntityPrototype",
		Base:       nil,
		Attributes: model.AttributeSet{{Name: "Prototype"}},
	})

	r := reflect.New(idx)
	_, ok := r.ResolvePrototype("entity")
	assert.False(t, ok)
}

func TestFieldsUnionOrdersBasesThenSelf(t *testing.T) {
	idx := index.New()
	idx.Classes.Insert(model.ClassRecord{
		Name:   "Base",
		Fields: []model.FieldRecord{{Name: "baseField"}},
	})
	child := model.ClassRecord{
		Name:   "Child",
		Base:   []string{"Base", "MissingBase"},
		Fields: []model.FieldRecord{{Name: "childField"}},
	}

	r := reflect.New(idx)
	fields := r.Fields(child)
	require.Len(t, fields, 2)
	assert.Equal(t, "baseField", fields[0].Name)
	assert.Equal(t, "childField", fields[1].Name)
}

func TestPrototypeDisplayNameStripsSuffix(t *testing.T) {
	idx := index.New()
	r := reflect.New(idx)
	assert.Equal(t, "Entity", r.PrototypeDisplayName(entityPrototypeClass()))
}

func TestComponentDisplayName(t *testing.T) {
	idx := index.New()
	r := reflect.New(idx)
	c := model.ClassRecord{Name: "SpriteComponent"}
	assert.Equal(t, "Sprite", r.ComponentDisplayName(c))
}

func TestProtoIDTypeArg(t *testing.T) {
	inner, ok := reflect.ProtoIDTypeArg("ProtoId<EntityPrototype>?")
	require.True(t, ok)
	assert.Equal(t, "EntityPrototype", inner)

	_, ok = reflect.ProtoIDTypeArg("string")
	assert.False(t, ok)
}
