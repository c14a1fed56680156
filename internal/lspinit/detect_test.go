package lspinit_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robustls/robustls/internal/lspinit"
)

func TestDetectProjectRootTopLevelSln(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "SpaceStation14.sln"), []byte(""), 0o644))
	assert.True(t, lspinit.DetectProjectRoot(dir))
}

func TestDetectProjectRootNestedSln(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "RobustToolbox"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "RobustToolbox", "RobustToolbox.sln"), []byte(""), 0o644))
	assert.True(t, lspinit.DetectProjectRoot(dir))
}

func TestDetectProjectRootMissing(t *testing.T) {
	dir := t.TempDir()
	assert.False(t, lspinit.DetectProjectRoot(dir))
}
