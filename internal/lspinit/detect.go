// Package lspinit implements the workspace-root acceptance check the
// editor transport runs during initialization, before any ingest starts.
package lspinit

import (
	"os"
	"path/filepath"

	"github.com/robustls/robustls/internal/config"
)

// DetectProjectRoot reports whether root contains at least one of the
// configured project markers (SpaceStation14.sln or
// RobustToolbox/RobustToolbox.sln). The transport rejects initialization
// with request-cancelled when this returns false.
func DetectProjectRoot(root string) bool {
	for _, marker := range config.ProjectMarkers {
		if _, err := os.Stat(filepath.Join(root, marker)); err == nil {
			return true
		}
	}
	return false
}
