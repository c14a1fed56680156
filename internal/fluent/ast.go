// Package fluent implements the localization-file AST for ".ftl" inputs.
// No Fluent-syntax parsing library is wired in elsewhere in this module,
// so this package is a direct, from-scratch parser rather than a binding
// around one; its entry/message/term/pattern shape and its
// selector-vs-placeable variable collection rule follow Fluent's own
// grammar, expressed in idiomatic Go rather than carried over from any
// other implementation.
package fluent

// Span is a byte-offset range into the source file.
type Span struct {
	Start, End int
}

// EntryKind tags the variant held by an Entry.
type EntryKind int

const (
	EntryMessage EntryKind = iota
	EntryTerm
	EntryComment
)

// Entry is one top-level Fluent construct: a message, a term, or a
// comment block.
type Entry struct {
	Kind EntryKind
	Span Span

	// Message/Term fields.
	ID         string
	IDSpan     Span
	Value      *Pattern
	EqSpan     Span // span of the "=" token
	Attributes []Attribute

	// Comment fields.
	CommentLevel int // 1, 2, or 3 "#" characters
	CommentText  string
}

// Attribute is a ".name = pattern" attribute of a message or term.
// Tokenize emits semantic tokens for its name and value, and
// CollectLocaleKeys adds its variable references to the message's key.
type Attribute struct {
	Name     string
	NameSpan Span
	Value    *Pattern
}

// Pattern is a message or term's value: a sequence of text runs and
// placeables.
type Pattern struct {
	Elements []PatternElement
	Span     Span
}

// PatternElementKind tags the variant held by a PatternElement.
type PatternElementKind int

const (
	ElementText PatternElementKind = iota
	ElementPlaceable
)

// PatternElement is either a literal text run or a placeable.
type PatternElement struct {
	Kind PatternElementKind
	Span Span

	// ElementText fields.
	Text string

	// ElementPlaceable fields.
	OpenBrace  Span
	CloseBrace Span
	Expr       Expression
}

// ExpressionKind tags the variant held by an Expression.
type ExpressionKind int

const (
	ExprVariableReference ExpressionKind = iota
	ExprTermReference
	ExprMessageReference
	ExprFunctionReference
	ExprSelect
	ExprString
	ExprNumber
)

// Expression is a Fluent inline expression.
type Expression struct {
	Kind ExpressionKind
	Span Span

	// ExprVariableReference / ExprTermReference / ExprMessageReference /
	// ExprFunctionReference.
	Name     string
	NameSpan Span
	Attr     string // optional ".attr" on a term/message reference

	// ExprFunctionReference.
	Args []CallArg

	// ExprSelect.
	Selector *Expression
	Arrow    Span
	Variants []Variant

	// ExprString / ExprNumber.
	Literal string
}

// CallArg is a single function-call argument; Name is empty for
// positional arguments.
type CallArg struct {
	Name     string
	NameSpan Span
	Value    Expression
}

// Variant is one "[key] pattern" arm of a select expression.
type Variant struct {
	Key       string
	KeySpan   Span
	IsDefault bool
	Value     *Pattern
}

// SyntaxError is a recoverable parse error: the offending span plus a
// message. Entries that parsed successfully are still returned alongside
// any errors; a syntax error surfaces as a diagnostic but never suppresses
// the rest of the file.
type SyntaxError struct {
	Span    Span
	Message string
}
