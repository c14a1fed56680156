// Package config loads the workspace-level configuration: the root
// directory, the fixed subtree set enumerated by the Project Ingestor, and
// the log level, with optional overrides from a .env file via godotenv.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/robustls/robustls/internal/logging"
)

// Subtrees are the root-relative directories the Project Ingestor
// enumerates; missing entries are skipped silently.
var Subtrees = []string{
	filepath.Join("RobustToolbox", "Robust.Client"),
	filepath.Join("RobustToolbox", "Robust.Server"),
	filepath.Join("RobustToolbox", "Robust.Shared"),
	"Content.Client",
	"Content.Server",
	"Content.Shared",
	filepath.Join("Resources", "Prototypes"),
	filepath.Join("Resources", "Locale"),
	filepath.Join("Resources", "Textures"),
}

// ProjectMarkers are the solution files, any one of which must be present
// at the workspace root for initialization to proceed.
var ProjectMarkers = []string{
	"SpaceStation14.sln",
	filepath.Join("RobustToolbox", "RobustToolbox.sln"),
}

// Config is the process-wide configuration.
type Config struct {
	WorkspaceRoot string
	LogLevel      logging.Level
}

// Load reads ROBUSTLS_-prefixed environment variables, first loading a
// .env file from root when present; a missing .env is not an error, the
// defaults below apply.
func Load(root string) *Config {
	envPath := filepath.Join(root, ".env")
	if _, err := os.Stat(envPath); err == nil {
		_ = godotenv.Load(envPath)
	}

	cfg := &Config{
		WorkspaceRoot: root,
		LogLevel:      logging.LevelInfo,
	}

	if lvl := os.Getenv("ROBUSTLS_LOG_LEVEL"); lvl != "" {
		cfg.LogLevel = parseLevel(lvl)
	}

	return cfg
}

func parseLevel(s string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return logging.LevelDebug
	case "notice":
		return logging.LevelNotice
	case "warning", "warn":
		return logging.LevelWarning
	case "error":
		return logging.LevelError
	case "critical":
		return logging.LevelCritical
	case "alert":
		return logging.LevelAlert
	case "emergency":
		return logging.LevelEmergency
	default:
		return logging.LevelInfo
	}
}
