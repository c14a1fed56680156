package model

// ArgKind tags the variant held by an ArgValue.
type ArgKind int

const (
	ArgNone ArgKind = iota
	ArgString
	ArgBool
	ArgReal
	ArgInt
	ArgTypeOf
	ArgGenericType
)

// ArgValue is the tagged variant an attribute argument may hold. Only the
// field matching Kind is meaningful.
type ArgValue struct {
	Kind ArgKind

	Str  string
	Bool bool
	Real float64
	Int  int64

	// Inner holds the wrapped type expression for ArgTypeOf.
	Inner *ArgValue

	// GenericName and GenericArgs hold the identifier and argument list for
	// ArgGenericType, e.g. ProtoId<EntityPrototype>.
	GenericName string
	GenericArgs []ArgValue
}

// StringValue returns the stripped string content for an ArgString value,
// and ok=false for any other variant.
func (v ArgValue) StringValue() (string, bool) {
	if v.Kind != ArgString {
		return "", false
	}
	return v.Str, true
}

// Attribute is a single `[Name(args...)]` annotation attached to a class or
// field declaration.
type Attribute struct {
	Name string
	Args map[string]ArgValue
}

// Arg looks up a named argument.
func (a Attribute) Arg(name string) (ArgValue, bool) {
	v, ok := a.Args[name]
	return v, ok
}

// ArgString is a convenience accessor for a named string argument with
// surrounding quotes already stripped.
func (a Attribute) ArgString(name string) (string, bool) {
	v, ok := a.Args[name]
	if !ok {
		return "", false
	}
	return v.StringValue()
}

// AttributeSet is an ordered collection of attributes attached to a class or
// field. Order is declaration order; lookups are by attribute name.
type AttributeSet []Attribute

// Get returns the first attribute with the given name.
func (s AttributeSet) Get(name string) (Attribute, bool) {
	for _, a := range s {
		if a.Name == name {
			return a, true
		}
	}
	return Attribute{}, false
}

// Has reports whether any attribute in the set has the given name.
func (s AttributeSet) Has(name string) bool {
	_, ok := s.Get(name)
	return ok
}

// PositionalSchema names the positional argument slots for a given
// attribute, in order. Adding a new attribute with positional arguments
// means extending this table.
var PositionalSchema = map[string][]string{
	"Prototype": {"type", "loadPriority"},
	"DataField": {"tag", "readOnly", "priority", "required", "serverOnly", "customTypeSerializer"},
}

// NamePositional resolves the i'th positional argument of attribute
// attrName to its argument name, or "" if attrName has no schema entry or i
// is out of range.
func NamePositional(attrName string, i int) string {
	schema, ok := PositionalSchema[attrName]
	if !ok || i < 0 || i >= len(schema) {
		return ""
	}
	return schema[i]
}
