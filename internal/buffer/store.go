package buffer

import (
	"sync"

	"github.com/robustls/robustls/internal/treestore"
)

// OpenBuffer is a Rope plus the Tree that matches its current contents,
// keyed by document URL.
type OpenBuffer struct {
	Rope *Buffer
	Tree *treestore.Tree
}

// Store is the concurrency-safe map of currently open documents.
type Store struct {
	mu      sync.RWMutex
	buffers map[string]*OpenBuffer
}

// NewStore creates an empty open-buffer store.
func NewStore() *Store {
	return &Store{buffers: make(map[string]*OpenBuffer)}
}

// Open installs a fresh OpenBuffer for url, overwriting any existing one.
func (s *Store) Open(url string, rope *Buffer, tree *treestore.Tree) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buffers[url] = &OpenBuffer{Rope: rope, Tree: tree}
}

// Get returns the open buffer for url, if any.
func (s *Store) Get(url string) (*OpenBuffer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.buffers[url]
	return b, ok
}

// SetTree replaces the cached tree on an already-open buffer, e.g. after a
// successful re-parse following a change event.
func (s *Store) SetTree(url string, tree *treestore.Tree) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b, ok := s.buffers[url]; ok {
		b.Tree = tree
	}
}

// Close drops the open buffer for url. The cached tree in the Tree Store
// is retained independently; it is still useful for whole-file queries.
func (s *Store) Close(url string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.buffers, url)
}
