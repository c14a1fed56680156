// Package editrouter implements the four document lifecycle operations
// (open/change/save/close) that keep the Rope Buffer Store, the Tree
// Store, and the Symbol Index consistent with what an editor has open.
package editrouter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/robustls/robustls/internal/buffer"
	"github.com/robustls/robustls/internal/index"
	"github.com/robustls/robustls/internal/logging"
	"github.com/robustls/robustls/internal/model"
	"github.com/robustls/robustls/internal/parser/host"
	"github.com/robustls/robustls/internal/parser/locale"
	"github.com/robustls/robustls/internal/parser/yamlproto"
	"github.com/robustls/robustls/internal/treestore"
)

// TextEdit replaces the text in [Start, End) with NewText, in (line,
// character) coordinates, matching an editor's incremental-sync edit
// shape.
type TextEdit struct {
	Range   buffer.Range
	NewText string
}

// Router owns the open-buffer store and wires parsing results into the
// Symbol Index. Trees is the same treestore.Store backing idx.Trees, the
// parsed-file table shared with the Query Engine.
type Router struct {
	Root    string
	Buffers *buffer.Store
	Trees   *treestore.Store
	Index   *index.Index
	Logger  logging.Logger
}

// New creates a Router over idx.
func New(root string, idx *index.Index, logger logging.Logger) *Router {
	return &Router{
		Root:    root,
		Buffers: buffer.NewStore(),
		Trees:   idx.Trees,
		Index:   idx,
		Logger:  logger,
	}
}

// Open reads a file's contents into a new Rope, attaches whatever tree is
// already cached for it (if any), and registers it as an open buffer.
func (r *Router) Open(url string, contents string) {
	rope := buffer.New(contents)
	tree, _ := r.Trees.Get(url)
	r.Buffers.Open(url, rope, tree)
}

// Change applies a batch of edits to an open document's Rope, then
// re-invokes the language parser for this file with the previous tree as
// an incremental hint, replacing the buffer's (and the shared Tree
// Store's) tree only on success. A url with no open buffer is a no-op.
// Change never touches the Symbol Index: only Save commits records.
func (r *Router) Change(ctx context.Context, url string, edits []TextEdit) error {
	ob, ok := r.Buffers.Get(url)
	if !ok {
		return nil
	}
	for _, e := range edits {
		ob.Rope.Edit(e.Range, e.NewText)
	}

	var oldSitter *sitter.Tree
	if ob.Tree != nil {
		oldSitter = ob.Tree.Sitter
	}

	_, _, tree, err := r.reparse(ctx, url, []byte(ob.Rope.Text()), oldSitter, false)
	if err != nil {
		logging.Warn(r.Logger, "editrouter: reparse on change failed", logging.Fields{"url": url, "error": err.Error()})
		return err
	}
	ob.Tree = tree
	r.Trees.Replace(url, tree)
	return nil
}

// Save re-runs the full parser over the file's on-disk contents and
// commits the result against the previous origin=url records via
// replace_from_origin, logging a unified diff of the identities that
// changed. A reader never observes a half-replaced origin's record set:
// the swap is a single table-level operation.
func (r *Router) Save(ctx context.Context, url string) error {
	src, err := os.ReadFile(url)
	if err != nil {
		return err
	}

	lang, count, tree, err := r.reparse(ctx, url, src, nil, true)
	if err != nil {
		logging.Warn(r.Logger, "editrouter: save parse failed", logging.Fields{"url": url, "error": err.Error()})
		return err
	}
	r.Trees.Replace(url, tree)
	if ob, ok := r.Buffers.Get(url); ok {
		ob.Tree = tree
	}

	logging.Debug(r.Logger, "editrouter: save committed", logging.Fields{"url": url, "lang": lang, "records": count})
	return nil
}

// Close drops the open buffer. The cached tree is left in place.
func (r *Router) Close(url string) {
	r.Buffers.Close(url)
}

// reparse dispatches to the language-specific parser by file extension,
// and, when commit is true, commits its records into the matching Symbol
// Index table via replace_from_origin. It returns the language name and
// record count for logging.
func (r *Router) reparse(ctx context.Context, url string, src []byte, oldSitter *sitter.Tree, commit bool) (string, int, *treestore.Tree, error) {
	switch filepath.Ext(url) {
	case ".cs":
		records, tree, err := host.Parse(ctx, url, src, oldSitter)
		if err != nil {
			return "", 0, nil, err
		}
		if commit {
			removed, upserted := r.Index.Classes.ReplaceFromOrigin(url, records)
			r.logDiff(url, removed, upserted)
		}
		return "host", len(records), tree, nil
	case ".yml", ".yaml":
		records, tree, err := yamlproto.Parse(ctx, url, src, oldSitter)
		if err != nil {
			return "", 0, nil, err
		}
		if commit {
			removed, upserted := r.Index.Prototypes.ReplaceFromOrigin(url, records)
			r.logDiffProto(url, removed, upserted)
		}
		return "yaml", len(records), tree, nil
	case ".ftl":
		keys, tree, errs := locale.Parse(ctx, url, src)
		for _, e := range errs {
			logging.Warn(r.Logger, "editrouter: locale syntax error", logging.Fields{"url": url, "message": e.Message})
		}
		if commit {
			removed, upserted := r.Index.Locales.ReplaceFromOrigin(url, keys)
			r.logDiffLocale(url, removed, upserted)
		}
		return "fluent", len(keys), tree, nil
	default:
		return "", 0, nil, fmt.Errorf("editrouter: no parser routes %s", url)
	}
}

func (r *Router) logDiff(url string, removed, upserted []string) {
	if len(removed) == 0 && len(upserted) == 0 {
		return
	}
	diff := index.DescribeDiff(url, removed, upserted)
	logging.Debug(r.Logger, "editrouter: class diff", logging.Fields{"url": url, "diff": diff})
}

func (r *Router) logDiffProto(url string, removed, upserted []model.PrototypeID) {
	if len(removed) == 0 && len(upserted) == 0 {
		return
	}
	diff := index.DescribeDiff(url, protoIdentityStrings(removed), protoIdentityStrings(upserted))
	logging.Debug(r.Logger, "editrouter: prototype diff", logging.Fields{"url": url, "diff": diff})
}

func protoIdentityStrings(ids []model.PrototypeID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.Type + "/" + id.ID
	}
	return out
}

func (r *Router) logDiffLocale(url string, removed, upserted []string) {
	if len(removed) == 0 && len(upserted) == 0 {
		return
	}
	diff := index.DescribeDiff(url, removed, upserted)
	logging.Debug(r.Logger, "editrouter: locale diff", logging.Fields{"url": url, "diff": diff})
}
