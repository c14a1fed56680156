package fluent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robustls/robustls/internal/fluent"
)

func TestParseSimpleMessage(t *testing.T) {
	entries, errs := fluent.ParseFile([]byte("hello-world = Hi, { $name }!\n"))
	require.Empty(t, errs)
	require.Len(t, entries, 1)

	e := entries[0]
	assert.Equal(t, fluent.EntryMessage, e.Kind)
	assert.Equal(t, "hello-world", e.ID)
	require.NotNil(t, e.Value)
	require.Len(t, e.Value.Elements, 3)

	assert.Equal(t, fluent.ElementText, e.Value.Elements[0].Kind)
	assert.Equal(t, "Hi, ", e.Value.Elements[0].Text)

	assert.Equal(t, fluent.ElementPlaceable, e.Value.Elements[1].Kind)
	assert.Equal(t, fluent.ExprVariableReference, e.Value.Elements[1].Expr.Kind)
	assert.Equal(t, "name", e.Value.Elements[1].Expr.Name)

	assert.Equal(t, fluent.ElementText, e.Value.Elements[2].Kind)
	assert.Equal(t, "!", e.Value.Elements[2].Text)
}

func TestParseTermWithAttributeAndComment(t *testing.T) {
	src := []byte("# A greeting term\n-brand-name = Space Station 14\n    .gender = neuter\n")
	entries, errs := fluent.ParseFile(src)
	require.Empty(t, errs)
	require.Len(t, entries, 2)

	comment := entries[0]
	assert.Equal(t, fluent.EntryComment, comment.Kind)
	assert.Equal(t, 1, comment.CommentLevel)
	assert.Equal(t, "A greeting term", comment.CommentText)

	term := entries[1]
	assert.Equal(t, fluent.EntryTerm, term.Kind)
	assert.Equal(t, "brand-name", term.ID)
	require.NotNil(t, term.Value)
	assert.Equal(t, "Space Station 14", term.Value.Elements[0].Text)
	require.Len(t, term.Attributes, 1)
	assert.Equal(t, "gender", term.Attributes[0].Name)
	assert.Equal(t, "neuter", term.Attributes[0].Value.Elements[0].Text)
}

func TestParseSelectExpression(t *testing.T) {
	src := []byte("items = { $count ->\n    [one] { $count } item\n   *[other] { $count } items\n}\n")
	entries, errs := fluent.ParseFile(src)
	require.Empty(t, errs)
	require.Len(t, entries, 1)

	e := entries[0]
	require.Len(t, e.Value.Elements, 1)
	ph := e.Value.Elements[0]
	require.Equal(t, fluent.ElementPlaceable, ph.Kind)

	sel := ph.Expr
	require.Equal(t, fluent.ExprSelect, sel.Kind)
	require.NotNil(t, sel.Selector)
	assert.Equal(t, fluent.ExprVariableReference, sel.Selector.Kind)
	assert.Equal(t, "count", sel.Selector.Name)

	require.Len(t, sel.Variants, 2)
	assert.Equal(t, "one", sel.Variants[0].Key)
	assert.False(t, sel.Variants[0].IsDefault)
	assert.Equal(t, "other", sel.Variants[1].Key)
	assert.True(t, sel.Variants[1].IsDefault)
}

func TestParseFunctionReferenceWithNamedArg(t *testing.T) {
	src := []byte(`time-left = { DATETIME($time, month: "long") } remaining` + "\n")
	entries, errs := fluent.ParseFile(src)
	require.Empty(t, errs)
	require.Len(t, entries, 1)

	ph := entries[0].Value.Elements[0]
	call := ph.Expr
	require.Equal(t, fluent.ExprFunctionReference, call.Kind)
	assert.Equal(t, "DATETIME", call.Name)
	require.Len(t, call.Args, 2)
	assert.Equal(t, "time", call.Args[0].Value.Name)
	assert.Equal(t, "month", call.Args[1].Name)
	assert.Equal(t, "long", call.Args[1].Value.Literal)
}

func TestSyntaxErrorDoesNotSuppressOtherEntries(t *testing.T) {
	src := []byte("good-one = fine\n!!! not an entry\nanother-good = also fine\n")
	entries, errs := fluent.ParseFile(src)
	require.NotEmpty(t, errs)

	var ids []string
	for _, e := range entries {
		if e.Kind == fluent.EntryMessage {
			ids = append(ids, e.ID)
		}
	}
	assert.Equal(t, []string{"good-one", "another-good"}, ids)
}

func TestCollectLocaleKeysUnionsVariableReferences(t *testing.T) {
	src := []byte("items = { $count ->\n    [one] { $count } item\n   *[other] { $count } items\n}\n    .aria-label = { $count } things\n")
	entries, _ := fluent.ParseFile(src)
	keys := fluent.CollectLocaleKeys("/ui.ftl", src, entries)
	require.Len(t, keys, 1)
	assert.Equal(t, "items", keys[0].Key)
	assert.True(t, keys[0].HasVariable("count"))
}
