// Package sprite reads sprite metadata: a `meta.json` file inside each
// `*.rsi` directory describing the sprite's named states. It backs
// Sprite/Icon field completion, which reads a sibling file under
// Resources/Textures/<sprite-path> to enumerate folder entries or parses
// a meta.json for its states.
package sprite

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// Meta is the subset of an .rsi directory's meta.json this package
// consumes: state names (plus optional direction counts), and
// license/version metadata read only if present.
type Meta struct {
	Version   int         `json:"version,omitempty"`
	License   string      `json:"license,omitempty"`
	Copyright string      `json:"copyright,omitempty"`
	Size      *SpriteSize `json:"size,omitempty"`
	States    []State     `json:"states"`
}

// SpriteSize is the meta.json "size" object.
type SpriteSize struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// State is one entry of a meta.json "states" array.
type State struct {
	Name       string `json:"name"`
	Directions int    `json:"directions,omitempty"`
}

// ReadMeta parses the meta.json at the given absolute path.
func ReadMeta(path string) (Meta, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Meta{}, err
	}
	var m Meta
	if err := json.Unmarshal(data, &m); err != nil {
		return Meta{}, err
	}
	return m, nil
}

// Candidates enumerates completion candidates for a sprite-path field's
// in-progress value: if inProgress ends in `.rsi`, the states in that
// directory's meta.json are offered; otherwise the folder entries
// directly under Resources/Textures/<inProgress> are offered. A partial
// path that only prefixes a directory name yields the directory-read
// error.
func Candidates(resourcesRoot, inProgress string) ([]string, error) {
	base := filepath.Join(resourcesRoot, "Resources", "Textures")
	dir := filepath.Join(base, filepath.FromSlash(inProgress))

	if strings.HasSuffix(inProgress, ".rsi") {
		meta, err := ReadMeta(filepath.Join(dir, "meta.json"))
		if err != nil {
			return nil, err
		}
		names := make([]string, len(meta.States))
		for i, s := range meta.States {
			names[i] = s.Name
		}
		return names, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}
