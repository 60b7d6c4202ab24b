package ttp

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"strings"

	"github.com/aretw0/ttp/internal/adapters/file"
	"github.com/aretw0/ttp/internal/logging"
	"github.com/aretw0/ttp/pkg/domain"
	"github.com/aretw0/ttp/pkg/ports"
)

// Framework is the high-level entry point for programmatic edits.
// It pairs a tree with the store it came from.
type Framework struct {
	Root   *domain.Node
	store  ports.TreeStore
	logger *slog.Logger
}

// Option defines a functional option for configuring a Framework.
type Option func(*Framework)

// WithStore injects a custom TreeStore, bypassing the file adapter.
func WithStore(store ports.TreeStore) Option {
	return func(f *Framework) {
		f.store = store
	}
}

// WithLogger sets a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Framework) {
		f.logger = logger
	}
}

// Open loads the framework at path (or from the injected store).
// A missing document yields the skeleton; an unreadable one is an error,
// unlike the interactive editor which falls back silently.
func Open(ctx context.Context, path string, opts ...Option) (*Framework, error) {
	f := &Framework{}
	for _, opt := range opts {
		opt(f)
	}
	if f.store == nil {
		f.store = file.New(path)
	}
	if f.logger == nil {
		f.logger = logging.NewNop()
	}

	root, err := ports.LoadOrSkeleton(ctx, f.store)
	if err != nil && !errors.Is(err, domain.ErrDocumentNotFound) {
		return nil, fmt.Errorf("failed to open framework: %w", err)
	}
	f.Root = root
	f.logger.Debug("Framework Opened", "location", f.store.Location(), "nodes", domain.Size(root))
	return f, nil
}

// Find returns the node with the given id, or nil.
func (f *Framework) Find(id string) *domain.Node {
	return domain.Find(f.Root, id)
}

// Add appends node under the parent named by parentRef, which is either an
// existing id or "root".
func (f *Framework) Add(parentRef string, node *domain.Node) error {
	parent := f.Root
	if !strings.EqualFold(parentRef, domain.RootSentinel) {
		parent = f.Find(parentRef)
	}
	if parent == nil {
		return fmt.Errorf("parent '%s': %w", parentRef, domain.ErrNodeNotFound)
	}
	domain.Append(parent, node)
	return nil
}

// Delete removes the node with the given id and its subtree.
func (f *Framework) Delete(id string) error {
	if domain.IsRootRef(id) {
		return domain.ErrRootDeletion
	}
	if !domain.Remove(f.Root, id) {
		return fmt.Errorf("'%s': %w", id, domain.ErrNodeNotFound)
	}
	return nil
}

// Lines renders the hierarchy one line per node.
func (f *Framework) Lines() iter.Seq[string] {
	return domain.Render(f.Root)
}

// Save persists the tree to its store.
func (f *Framework) Save(ctx context.Context) error {
	return f.store.Save(ctx, f.Root)
}

// Location describes where Save writes.
func (f *Framework) Location() string {
	return f.store.Location()
}
