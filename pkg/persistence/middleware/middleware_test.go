package middleware_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/aretw0/ttp/pkg/adapters/memory"
	"github.com/aretw0/ttp/pkg/domain"
	"github.com/aretw0/ttp/pkg/persistence/middleware"
	"github.com/aretw0/ttp/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type brokenStore struct{ err error }

func (b brokenStore) Load(ctx context.Context) (*domain.Node, error) {
	return nil, b.err
}

func (b brokenStore) Save(ctx context.Context, root *domain.Node) error {
	return b.err
}

func (b brokenStore) Location() string {
	return "broken"
}

func tree(ids ...string) *domain.Node {
	root := domain.NewSkeleton()
	for _, id := range ids {
		domain.Append(root, domain.NewNode(id, id, ""))
	}
	return root
}

func TestLoggingMiddleware_Contract(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	ports.RunTreeStoreContract(t, middleware.NewLoggingMiddleware(logger)(memory.NewStore()))
}

func TestLoggingMiddleware_Records(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	store := middleware.NewLoggingMiddleware(logger)(memory.NewStore())
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, tree("T1", "T2")))
	_, err := store.Load(ctx)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Saved framework")
	assert.Contains(t, out, "Loaded framework")
	assert.Contains(t, out, "nodes=3")
	assert.Contains(t, out, "location=memory")
}

func TestLoggingMiddleware_PassesErrorsThrough(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, nil))
	boom := errors.New("disk full")
	store := middleware.NewLoggingMiddleware(logger)(brokenStore{err: boom})

	assert.ErrorIs(t, store.Save(context.Background(), tree()), boom)
	assert.Contains(t, buf.String(), "Save failed")

	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestBackupMiddleware_Contract(t *testing.T) {
	ports.RunTreeStoreContract(t, middleware.NewBackupMiddleware(memory.NewStore())(memory.NewStore()))
}

func TestBackupMiddleware_KeepsPreviousVersion(t *testing.T) {
	ctx := context.Background()
	backup := memory.NewStore()
	primary := memory.NewStoreWith(tree("T1"))
	store := middleware.NewBackupMiddleware(backup)(primary)

	require.NoError(t, store.Save(ctx, tree("T1", "T2")))

	saved, err := primary.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, saved.Children, 2)

	previous, err := backup.Load(ctx)
	require.NoError(t, err)
	assert.True(t, domain.Equal(tree("T1"), previous))
}

func TestBackupMiddleware_NothingToBackUp(t *testing.T) {
	ctx := context.Background()
	backup := memory.NewStore()
	store := middleware.NewBackupMiddleware(backup)(memory.NewStore())

	require.NoError(t, store.Save(ctx, tree("T1")))

	_, err := backup.Load(ctx)
	assert.ErrorIs(t, err, domain.ErrDocumentNotFound)
}

func TestBackupMiddleware_BackupFailureAbortsSave(t *testing.T) {
	ctx := context.Background()
	primary := memory.NewStoreWith(tree("T1"))
	store := middleware.NewBackupMiddleware(brokenStore{err: errors.New("read-only")})(primary)

	err := store.Save(ctx, tree("T1", "T2"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write backup to broken")

	saved, err := primary.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, saved.Children, 1, "primary must be untouched")
}

func TestChain_Order(t *testing.T) {
	var calls []string
	trace := func(name string) middleware.Middleware {
		return func(next ports.TreeStore) ports.TreeStore {
			return tracingStore{TreeStore: next, name: name, calls: &calls}
		}
	}

	store := middleware.Chain(memory.NewStore(), trace("outer"), trace("inner"))
	require.NoError(t, store.Save(context.Background(), tree()))
	assert.Equal(t, []string{"outer", "inner"}, calls)
}

type tracingStore struct {
	ports.TreeStore
	name  string
	calls *[]string
}

func (s tracingStore) Save(ctx context.Context, root *domain.Node) error {
	*s.calls = append(*s.calls, s.name)
	return s.TreeStore.Save(ctx, root)
}
