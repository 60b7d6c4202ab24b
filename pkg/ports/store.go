package ports

import (
	"context"

	"github.com/aretw0/ttp/pkg/domain"
)

// TreeStore defines how a framework tree is persisted.
// Implementations read and write the whole tree at once; nothing is held open
// between calls.
type TreeStore interface {
	// Load returns the stored tree.
	// Returns domain.ErrDocumentNotFound if nothing has been stored yet and an
	// error wrapping domain.ErrMalformedDocument if the stored data is unusable.
	Load(ctx context.Context) (*domain.Node, error)

	// Save replaces the stored tree with root.
	Save(ctx context.Context, root *domain.Node) error

	// Location describes where the tree lives, for user-facing messages.
	Location() string
}

// LoadOrSkeleton loads the tree from store and falls back to a fresh skeleton
// when loading fails for any reason. The returned tree is never nil; the error,
// if any, is the diagnostic explaining why the skeleton was used.
func LoadOrSkeleton(ctx context.Context, store TreeStore) (*domain.Node, error) {
	root, err := store.Load(ctx)
	if err != nil {
		return domain.NewSkeleton(), err
	}
	if root == nil {
		return domain.NewSkeleton(), domain.ErrMalformedDocument
	}
	return root, nil
}
