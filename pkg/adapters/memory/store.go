package memory

import (
	"context"
	"sync"

	"github.com/aretw0/ttp/pkg/domain"
)

// Store implements ports.TreeStore in memory.
// Safe for concurrent use.
type Store struct {
	root *domain.Node
	mu   sync.RWMutex
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{}
}

// NewStoreWith creates a store that already holds a copy of root.
func NewStoreWith(root *domain.Node) *Store {
	return &Store{root: domain.Clone(root)}
}

// Save keeps a deep copy of the tree, mirroring serialization.
func (s *Store) Save(ctx context.Context, root *domain.Node) error {
	copied := domain.Clone(root)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.root = copied
	return nil
}

// Load returns a copy so the caller can't mutate the stored tree by pointer.
func (s *Store) Load(ctx context.Context) (*domain.Node, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.root == nil {
		return nil, domain.ErrDocumentNotFound
	}
	return domain.Clone(s.root), nil
}

// Location implements ports.TreeStore.
func (s *Store) Location() string {
	return "memory"
}
