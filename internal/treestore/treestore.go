// Package treestore is the Tree Store: the Parsed-File Map from absolute
// path to cached concrete syntax tree, shared between the Edit Router and
// the Query Engine and replaced (never mutated in place) on every
// re-parse.
//
// Trees are held in a bounded, tested LRU (golang-lru) rather than an
// unbounded map plus a hand-rolled TTL eviction goroutine, so a long
// editing session can't retain a tree per file forever.
package treestore

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/robustls/robustls/internal/fluent"
)

// Language tags which grammar produced a Tree.
type Language int

const (
	LangHost Language = iota
	LangYAML
	LangFluent
)

// Tree is the opaque parse tree plus the language tag that produced it.
// Fluent files have no tree-sitter grammar in scope: the localization
// parser works over the fluent AST directly, so Sitter is nil and
// FluentEntries holds the parsed entries instead; callers branch on Lang
// before touching either.
type Tree struct {
	Lang          Language
	Sitter        *sitter.Tree
	FluentEntries []fluent.Entry
}

// defaultCapacity bounds the number of cached trees kept in memory; this
// is a resource cap, not a correctness requirement, so any reasonable size
// works.
const defaultCapacity = 4096

// Store is the concurrency-safe Parsed-File Map keyed by absolute path.
type Store struct {
	mu    sync.RWMutex
	cache *lru.Cache[string, *Tree]
}

// New creates an empty Store.
func New() *Store {
	c, _ := lru.New[string, *Tree](defaultCapacity)
	return &Store{cache: c}
}

// Get returns the cached tree for path, if any.
func (s *Store) Get(path string) (*Tree, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cache.Get(path)
}

// Replace installs tree as the cached tree for path, replacing (never
// mutating) whatever was cached before. The previous tree, if any and if
// a tree-sitter tree, is closed to release its native memory.
func (s *Store) Replace(path string, tree *Tree) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if old, ok := s.cache.Get(path); ok && old != nil && old.Sitter != nil {
		old.Sitter.Close()
	}
	s.cache.Add(path, tree)
}

// Remove drops the cached tree for path, e.g. when its origin file no
// longer exists after a save.
func (s *Store) Remove(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if old, ok := s.cache.Get(path); ok && old != nil && old.Sitter != nil {
		old.Sitter.Close()
	}
	s.cache.Remove(path)
}
