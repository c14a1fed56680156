package editrouter_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robustls/robustls/internal/buffer"
	"github.com/robustls/robustls/internal/editrouter"
	"github.com/robustls/robustls/internal/index"
	"github.com/robustls/robustls/internal/logging"
	"github.com/robustls/robustls/internal/model"
)

func TestOpenChangeTracksBufferTree(t *testing.T) {
	idx := index.New()
	r := editrouter.New(t.TempDir(), idx, logging.NewNoop())

	url := "/virtual/human.yml"
	r.Open(url, "- type: entity\n  id: Human\n")

	ob, ok := r.Buffers.Get(url)
	require.True(t, ok)
	assert.Nil(t, ob.Tree)

	err := r.Change(context.Background(), url, []editrouter.TextEdit{
		{
			Range:   buffer.Range{Start: buffer.Position{Line: 1, Character: 6}, End: buffer.Position{Line: 1, Character: 11}},
			NewText: "Dwarf",
		},
	})
	require.NoError(t, err)

	ob, ok = r.Buffers.Get(url)
	require.True(t, ok)
	require.NotNil(t, ob.Tree)
	assert.Contains(t, ob.Rope.Text(), "Dwarf")

	// Change must not have touched the Symbol Index.
	assert.Equal(t, 0, idx.Prototypes.Len())
}

func TestSaveCommitsViaReplaceFromOrigin(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "human.yml")
	require.NoError(t, os.WriteFile(path, []byte("- type: entity\n  id: Human\n"), 0o644))

	idx := index.New()
	idx.Prototypes.Insert(model.PrototypeRecord{
		PrototypeID: model.PrototypeID{Type: "entity", ID: "StaleLeftover"},
		Origin:      path,
	})

	r := editrouter.New(root, idx, logging.NewNoop())
	require.NoError(t, r.Save(context.Background(), path))

	assert.Equal(t, 1, idx.Prototypes.Len())
	_, staleStillThere := idx.Prototypes.Get(model.PrototypeID{Type: "entity", ID: "StaleLeftover"})
	assert.False(t, staleStillThere)
	_, ok := idx.Prototypes.Get(model.PrototypeID{Type: "entity", ID: "Human"})
	assert.True(t, ok)
}

func TestCloseDropsBufferKeepsTree(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "human.yml")
	require.NoError(t, os.WriteFile(path, []byte("- type: entity\n  id: Human\n"), 0o644))

	idx := index.New()
	r := editrouter.New(root, idx, logging.NewNoop())
	require.NoError(t, r.Save(context.Background(), path))
	r.Open(path, "- type: entity\n  id: Human\n")

	r.Close(path)
	_, ok := r.Buffers.Get(path)
	assert.False(t, ok)

	_, ok = idx.Trees.Get(path)
	assert.True(t, ok)
}

func TestChangeOnUnopenedURLIsNoop(t *testing.T) {
	idx := index.New()
	r := editrouter.New(t.TempDir(), idx, logging.NewNoop())
	err := r.Change(context.Background(), "/never/opened.cs", nil)
	assert.NoError(t, err)
}
