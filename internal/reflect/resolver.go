// Package reflect is the Reflection Resolver: a lazy, read-only view
// over the Class Table that resolves a prototype-or-component name to
// its class, walks the base chain, and yields the union of declared
// fields.
package reflect

import (
	"strings"

	"github.com/robustls/robustls/internal/index"
	"github.com/robustls/robustls/internal/model"
	"github.com/robustls/robustls/internal/textutil"
)

// prototypeMarkerInterface is the base-list entry every prototype class
// must carry.
const prototypeMarkerInterface = "IPrototype"

// componentMarkerNames are the base-list entries a registered component
// class may carry.
var componentMarkerNames = []string{"IComponent", "Component"}

// Resolver answers prototype/component/field-union queries against an
// Index's Class Table. It holds no state of its own beyond the Index
// reference; every operation is computed fresh from the table's current
// contents.
type Resolver struct {
	idx *index.Index
}

// New creates a Resolver over idx.
func New(idx *index.Index) *Resolver {
	return &Resolver{idx: idx}
}

// ResolvePrototype returns the class record matching name by
// pascal-cased name, by name+"Prototype", or by a Prototype attribute's
// type argument — provided that class also carries the Prototype
// attribute and lists the prototype marker interface in its base.
func (r *Resolver) ResolvePrototype(name string) (model.ClassRecord, bool) {
	pascal := textutil.PascalCase(name)
	var found model.ClassRecord
	ok := false

	r.idx.Classes.Each(func(c model.ClassRecord) {
		if ok {
			return
		}
		if !c.HasBase(prototypeMarkerInterface) || !c.Attributes.Has("Prototype") {
			return
		}
		if c.Name == pascal || c.Name == pascal+"Prototype" {
			found, ok = c, true
			return
		}
		if proto, has := c.Attributes.Get("Prototype"); has {
			if t, hasT := proto.ArgString("type"); hasT && t == name {
				found, ok = c, true
			}
		}
	})
	return found, ok
}

// ResolveComponent returns the class record matching name by class name
// or name+"Component", provided it carries RegisterComponent and one of
// the component marker base names.
func (r *Resolver) ResolveComponent(name string) (model.ClassRecord, bool) {
	var found model.ClassRecord
	ok := false

	r.idx.Classes.Each(func(c model.ClassRecord) {
		if ok {
			return
		}
		if !c.Attributes.Has("RegisterComponent") || !c.HasAnyBase(componentMarkerNames...) {
			return
		}
		if c.Name == name || c.Name == name+"Component" {
			found, ok = c, true
		}
	})
	return found, ok
}

// Fields returns the union of every base class's declared fields (in
// base declaration order, bases resolved from the Class Table, missing
// bases skipped silently) followed by C's own fields. Duplicate
// data-field names are retained; callers filter as needed.
func (r *Resolver) Fields(c model.ClassRecord) []model.FieldRecord {
	var out []model.FieldRecord
	for _, baseName := range c.Base {
		base, ok := r.idx.Classes.Get(baseName)
		if !ok {
			continue
		}
		out = append(out, base.Fields...)
	}
	out = append(out, c.Fields...)
	return out
}

// PrototypeDisplayName derives the display name: if C.Prototype has a
// type string, pascal-case that; else use C.Name; then strip a trailing
// "Prototype" suffix.
func (r *Resolver) PrototypeDisplayName(c model.ClassRecord) string {
	name := c.Name
	if proto, ok := c.Attributes.Get("Prototype"); ok {
		if t, ok := proto.ArgString("type"); ok && t != "" {
			name = textutil.PascalCase(t)
		}
	}
	return textutil.StripSuffix(name, "Prototype")
}

// ComponentDisplayName strips a trailing "Component" from C.Name, then
// pascal-cases it.
func (r *Resolver) ComponentDisplayName(c model.ClassRecord) string {
	return textutil.PascalCase(textutil.StripSuffix(c.Name, "Component"))
}

// AllPrototypeDisplayNames returns the display name of every class
// passing the same filter ResolvePrototype applies, used by YAML
// completion's prototype-type candidate list.
func (r *Resolver) AllPrototypeDisplayNames() []string {
	var out []string
	r.idx.Classes.Each(func(c model.ClassRecord) {
		if IsPrototype(c) {
			out = append(out, r.PrototypeDisplayName(c))
		}
	})
	return out
}

// AllComponentDisplayNames returns the display name of every class
// passing the same filter ResolveComponent applies.
func (r *Resolver) AllComponentDisplayNames() []string {
	var out []string
	r.idx.Classes.Each(func(c model.ClassRecord) {
		if IsComponent(c) {
			out = append(out, r.ComponentDisplayName(c))
		}
	})
	return out
}

// IsComponent reports whether c passes the same filter ResolveComponent
// applies, independent of name matching — used by YAML completion's
// component-type candidate list.
func IsComponent(c model.ClassRecord) bool {
	return c.Attributes.Has("RegisterComponent") && c.HasAnyBase(componentMarkerNames...)
}

// IsPrototype reports whether c passes the same filter ResolvePrototype
// applies, independent of name matching.
func IsPrototype(c model.ClassRecord) bool {
	return c.Attributes.Has("Prototype") && c.HasBase(prototypeMarkerInterface)
}

// FieldByDataName finds the field in fields() whose derived data-field
// name equals name, filtered to fields carrying attrFilter (e.g.
// "DataField" at the top level, "DataField" or "IncludeDataField" at
// component nesting).
func FieldByDataName(fields []model.FieldRecord, name string, attrFilters ...string) (model.FieldRecord, bool) {
	for _, f := range fields {
		if !hasAnyAttribute(f, attrFilters) {
			continue
		}
		if f.DataFieldName(textutil.LowerCamelCase) == name {
			return f, true
		}
	}
	return model.FieldRecord{}, false
}

func hasAnyAttribute(f model.FieldRecord, names []string) bool {
	if len(names) == 0 {
		return true
	}
	for _, n := range names {
		if f.Attributes.Has(n) {
			return true
		}
	}
	return false
}

// ProtoIDTypeArg extracts the inner type identifier from a ProtoId<T>
// type-name string, stripping a trailing "?".
func ProtoIDTypeArg(typeName string) (string, bool) {
	t := strings.TrimSuffix(typeName, "?")
	const prefix = "ProtoId<"
	if !strings.HasPrefix(t, prefix) || !strings.HasSuffix(t, ">") {
		return "", false
	}
	return t[len(prefix) : len(t)-1], true
}
