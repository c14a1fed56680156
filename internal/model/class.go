package model

// FieldRecord is a single field or property declared inside a class body.
type FieldRecord struct {
	Name       string
	TypeName   string // verbatim text: generics, trailing "?" preserved
	Attributes AttributeSet
	Definition DefinitionIndex
}

// spriteSpecifierTypes are the type names whose IncludeDataField fields are
// forced to the "sprite" data-field name.
var spriteSpecifierTypes = map[string]bool{
	"SpriteSpecifier":  true,
	"SpriteSpecifier?": true,
}

// DataFieldName computes the derived data-field name: a DataField tag
// wins, then the sprite-specifier rule, then lowerCamelCase of the
// declaration name.
func (f FieldRecord) DataFieldName(lowerCamelCase func(string) string) string {
	if df, ok := f.Attributes.Get("DataField"); ok {
		if tag, ok := df.ArgString("tag"); ok && tag != "" {
			return tag
		}
	}
	if f.Attributes.Has("IncludeDataField") && spriteSpecifierTypes[f.TypeName] {
		return "sprite"
	}
	return lowerCamelCase(f.Name)
}

// ClassRecord is a host-language class or interface declaration.
//
// Identity is the declared Name only; two records with the same name
// overwrite each other (last write wins, per save) rather than merge.
type ClassRecord struct {
	Name       string
	Base       []string // ordered base/interface list
	Attributes AttributeSet
	Fields     []FieldRecord
	Definition DefinitionIndex
}

// HasBase reports whether name appears in the class's base list.
func (c ClassRecord) HasBase(name string) bool {
	for _, b := range c.Base {
		if b == name {
			return true
		}
	}
	return false
}

// HasAnyBase reports whether any of names appears in the class's base list.
func (c ClassRecord) HasAnyBase(names ...string) bool {
	for _, n := range names {
		if c.HasBase(n) {
			return true
		}
	}
	return false
}
