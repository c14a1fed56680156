// Package ingest is the Project Ingestor: walks a fixed set of workspace
// subtrees, routes each file to a parser by glob, fans the parsing out
// over a bounded worker pool, and commits records to the Symbol Index as
// soon as each file finishes.
//
// The worker pool runs over golang.org/x/sync/errgroup rather than a
// hand-rolled channel-and-WaitGroup loop, so a single file's parser panic
// or a ctx cancellation propagates without extra bookkeeping.
package ingest

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
	"golang.org/x/sync/errgroup"

	"github.com/robustls/robustls/internal/index"
	"github.com/robustls/robustls/internal/logging"
	"github.com/robustls/robustls/internal/parser/host"
	"github.com/robustls/robustls/internal/parser/locale"
	"github.com/robustls/robustls/internal/parser/yamlproto"
	"github.com/robustls/robustls/internal/progress"
	"github.com/robustls/robustls/internal/treestore"
)

// fileKind tags which parser a discovered file routes to.
type fileKind int

const (
	kindUnknown fileKind = iota
	kindHost
	kindYAML
	kindFluent
)

var (
	yamlPrototypeGlobs = []string{"**/Prototypes/**/*.yml", "**/Prototypes/**/*.yaml"}
)

func classify(relPath string) fileKind {
	switch filepath.Ext(relPath) {
	case ".cs":
		return kindHost
	case ".ftl":
		return kindFluent
	case ".yml", ".yaml":
		for _, g := range yamlPrototypeGlobs {
			if ok, _ := doublestar.Match(g, filepath.ToSlash(relPath)); ok {
				return kindYAML
			}
		}
		return kindUnknown
	default:
		return kindUnknown
	}
}

// Ingestor enumerates a workspace and fills an Index.
type Ingestor struct {
	Root     string
	Subtrees []string
	Index    *index.Index
	Logger   logging.Logger
	Progress progress.Reporter

	// Concurrency bounds the number of files parsed at once; 0 uses
	// runtime.GOMAXPROCS(0).
	Concurrency int
}

// Run walks every configured subtree and ingests its files. Missing
// subtrees are skipped silently; a single file's parse failure logs a
// warning and is dropped from the batch without aborting the rest.
func (in *Ingestor) Run(ctx context.Context) error {
	gi := in.loadGitignore()

	for _, subtree := range in.Subtrees {
		dir := filepath.Join(in.Root, subtree)
		if _, err := os.Stat(dir); err != nil {
			continue
		}
		if err := in.ingestSubtree(ctx, dir, gi); err != nil {
			return err
		}
	}
	return nil
}

func (in *Ingestor) loadGitignore() *ignore.GitIgnore {
	path := filepath.Join(in.Root, ".gitignore")
	gi, err := ignore.CompileIgnoreFile(path)
	if err != nil {
		return nil
	}
	return gi
}

func (in *Ingestor) ingestSubtree(ctx context.Context, dir string, gi *ignore.GitIgnore) error {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		rel, relErr := filepath.Rel(in.Root, path)
		if relErr == nil && gi != nil && gi.MatchesPath(rel) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if classify(rel) == kindUnknown {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return err
	}

	token := in.Progress.Begin(dir, len(files))
	defer token.Close()

	limit := in.Concurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for _, path := range files {
		path := path
		g.Go(func() error {
			defer token.Increment()
			select {
			case <-gctx.Done():
				return nil
			default:
			}
			in.ingestFile(gctx, path)
			return nil
		})
	}
	return g.Wait()
}

func (in *Ingestor) ingestFile(ctx context.Context, path string) {
	src, err := os.ReadFile(path)
	if err != nil {
		logging.Warn(in.Logger, "ingest: read failed", logging.Fields{"path": path, "error": err.Error()})
		return
	}

	rel, _ := filepath.Rel(in.Root, path)
	switch classify(rel) {
	case kindHost:
		records, tree, err := host.Parse(ctx, path, src, nil)
		if err != nil {
			logging.Warn(in.Logger, "ingest: host parse failed", logging.Fields{"path": path, "error": err.Error()})
			return
		}
		for _, rec := range records {
			in.Index.Classes.Insert(rec)
		}
		in.Index.Trees.Replace(path, tree)
	case kindYAML:
		records, tree, err := yamlproto.Parse(ctx, path, src, nil)
		if err != nil {
			logging.Warn(in.Logger, "ingest: yaml parse failed", logging.Fields{"path": path, "error": err.Error()})
			return
		}
		for _, rec := range records {
			in.Index.Prototypes.Insert(rec)
		}
		in.Index.Trees.Replace(path, tree)
	case kindFluent:
		keys, tree, errs := locale.Parse(ctx, path, src)
		for _, syntaxErr := range errs {
			logging.Warn(in.Logger, "ingest: locale syntax error", logging.Fields{
				"path": path, "message": syntaxErr.Message, "offset": syntaxErr.Span.Start,
			})
		}
		for _, key := range keys {
			in.Index.Locales.Insert(key)
		}
		in.Index.Trees.Replace(path, tree)
	}
}
