package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robustls/robustls/internal/config"
	"github.com/robustls/robustls/internal/logging"
)

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Load(dir)
	assert.Equal(t, dir, cfg.WorkspaceRoot)
	assert.Equal(t, logging.LevelInfo, cfg.LogLevel)
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, ".env"), []byte("ROBUSTLS_LOG_LEVEL=debug\n"), 0o644)
	require.NoError(t, err)

	cfg := config.Load(dir)
	assert.Equal(t, logging.LevelDebug, cfg.LogLevel)
}

func TestSubtreesAndMarkersAreNonEmpty(t *testing.T) {
	assert.NotEmpty(t, config.Subtrees)
	assert.NotEmpty(t, config.ProjectMarkers)
}
