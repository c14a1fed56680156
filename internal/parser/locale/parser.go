// Package locale wires the Fluent parser into the same (path, src) ->
// (records, tree) shape the host and yamlproto parsers expose, so the
// Project Ingestor and Edit Router can treat all three languages
// uniformly.
package locale

import (
	"context"

	"github.com/robustls/robustls/internal/fluent"
	"github.com/robustls/robustls/internal/model"
	"github.com/robustls/robustls/internal/treestore"
)

// Parse extracts every localization key from a .ftl file. Unlike the
// host and yamlproto parsers, a .ftl file with syntax errors still
// produces a tree and whatever keys parsed successfully: syntax errors
// surface as diagnostics but never suppress the entries that did parse,
// so errors are returned alongside the records rather than in place of
// them.
func Parse(ctx context.Context, path string, src []byte) ([]model.LocaleKey, *treestore.Tree, []fluent.SyntaxError) {
	entries, errs := fluent.ParseFile(src)
	keys := fluent.CollectLocaleKeys(path, src, entries)
	tree := &treestore.Tree{Lang: treestore.LangFluent, FluentEntries: entries}
	return keys, tree, errs
}
