package ports_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/ttp/pkg/domain"
	"github.com/aretw0/ttp/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubStore returns a fixed result from Load.
type stubStore struct {
	root *domain.Node
	err  error
}

func (s *stubStore) Load(ctx context.Context) (*domain.Node, error) { return s.root, s.err }
func (s *stubStore) Save(ctx context.Context, root *domain.Node) error {
	s.root = root
	return nil
}
func (s *stubStore) Location() string { return "stub" }

func TestLoadOrSkeleton(t *testing.T) {
	ctx := context.Background()

	t.Run("Loaded", func(t *testing.T) {
		want := domain.NewSkeleton()
		domain.Append(want, domain.NewNode("T1", "One", ""))

		root, err := ports.LoadOrSkeleton(ctx, &stubStore{root: want})
		require.NoError(t, err)
		assert.Same(t, want, root)
	})

	t.Run("Malformed falls back", func(t *testing.T) {
		cause := errors.Join(domain.ErrMalformedDocument, errors.New("unexpected EOF"))
		root, err := ports.LoadOrSkeleton(ctx, &stubStore{err: cause})
		assert.ErrorIs(t, err, domain.ErrMalformedDocument)
		assert.True(t, domain.Equal(domain.NewSkeleton(), root))
	})

	t.Run("IO failure falls back", func(t *testing.T) {
		root, err := ports.LoadOrSkeleton(ctx, &stubStore{err: errors.New("permission denied")})
		assert.Error(t, err)
		require.NotNil(t, root)
		assert.Equal(t, domain.RootID, root.ID)
	})

	t.Run("Nil tree counts as malformed", func(t *testing.T) {
		root, err := ports.LoadOrSkeleton(ctx, &stubStore{})
		assert.ErrorIs(t, err, domain.ErrMalformedDocument)
		assert.Equal(t, domain.RootID, root.ID)
	})
}
