package locale_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robustls/robustls/internal/parser/locale"
	"github.com/robustls/robustls/internal/treestore"
)

func TestParseHelloWorld(t *testing.T) {
	src := []byte("hello-world = Hi, { $name }!\n")
	keys, tree, errs := locale.Parse(context.Background(), "/ui.ftl", src)
	require.Empty(t, errs)
	require.NotNil(t, tree)
	assert.Equal(t, treestore.LangFluent, tree.Lang)
	require.Len(t, keys, 1)
	assert.Equal(t, "hello-world", keys[0].Key)
	assert.True(t, keys[0].HasVariable("name"))
}

func TestParsePartialFailureStillYieldsGoodEntries(t *testing.T) {
	src := []byte("good = fine\n!!! broken\nalso-good = also fine\n")
	keys, _, errs := locale.Parse(context.Background(), "/ui.ftl", src)
	assert.NotEmpty(t, errs)
	require.Len(t, keys, 2)
	assert.Equal(t, "good", keys[0].Key)
	assert.Equal(t, "also-good", keys[1].Key)
}
