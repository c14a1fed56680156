package model

// LocaleKey is a single localization-file message identifier along with the
// set of variable names referenced by its pattern. Identity is Key alone.
type LocaleKey struct {
	Key        string
	Variables  map[string]struct{}
	Definition DefinitionIndex
	Origin     string
}

// HasVariable reports whether name is referenced anywhere in the key's
// pattern.
func (k LocaleKey) HasVariable(name string) bool {
	_, ok := k.Variables[name]
	return ok
}
