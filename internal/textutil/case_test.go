package textutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/robustls/robustls/internal/textutil"
)

func TestPascalCase(t *testing.T) {
	assert.Equal(t, "Entity", textutil.PascalCase("entity"))
	assert.Equal(t, "Entity", textutil.PascalCase("Entity"))
	assert.Equal(t, "", textutil.PascalCase(""))
}

func TestLowerCamelCase(t *testing.T) {
	assert.Equal(t, "id", textutil.LowerCamelCase("ID"))
	assert.Equal(t, "sprite", textutil.LowerCamelCase("Sprite"))
}

func TestStripSuffix(t *testing.T) {
	assert.Equal(t, "Entity", textutil.StripSuffix("EntityPrototype", "Prototype"))
	assert.Equal(t, "Foo", textutil.StripSuffix("Foo", "Prototype"))
}

func TestStripQuotes(t *testing.T) {
	assert.Equal(t, "id", textutil.StripQuotes(`"id"`))
	assert.Equal(t, "id", textutil.StripQuotes("id"))
}
