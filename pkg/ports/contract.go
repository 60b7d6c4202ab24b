package ports

import (
	"context"
	"testing"

	"github.com/aretw0/ttp/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunTreeStoreContract runs a suite of tests to verify that a TreeStore
// implementation adheres to the interface contract. The store must start empty.
func RunTreeStoreContract(t *testing.T, store TreeStore) {
	t.Helper()
	ctx := context.Background()

	t.Run("Load Empty", func(t *testing.T) {
		_, err := store.Load(ctx)
		assert.ErrorIs(t, err, domain.ErrDocumentNotFound)

		root, err := LoadOrSkeleton(ctx, store)
		assert.ErrorIs(t, err, domain.ErrDocumentNotFound)
		assert.True(t, domain.Equal(domain.NewSkeleton(), root))
	})

	t.Run("Save and Load", func(t *testing.T) {
		root := domain.NewSkeleton()
		tactic := domain.NewNode("T1", "Initial Access", "First foothold")
		domain.Append(tactic, domain.NewNode("TQ1", "Phishing", "Lure emails"))
		domain.Append(root, tactic)
		domain.Append(root, domain.NewNode("T2", "Cash Out", "Moving funds"))

		require.NoError(t, store.Save(ctx, root), "Save should not return error")

		loaded, err := store.Load(ctx)
		require.NoError(t, err, "Load should not return error")
		assert.True(t, domain.Equal(root, loaded), "round trip should preserve structure and order")
	})

	t.Run("Save Overwrites", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, domain.NewSkeleton()))

		loaded, err := LoadOrSkeleton(ctx, store)
		require.NoError(t, err)
		assert.Empty(t, loaded.Children)
	})

	t.Run("Loaded Tree Is Independent", func(t *testing.T) {
		root := domain.NewSkeleton()
		domain.Append(root, domain.NewNode("T1", "One", ""))
		require.NoError(t, store.Save(ctx, root))

		root.Children[0].Title = "mutated after save"

		loaded, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, "One", loaded.Children[0].Title)
	})

	t.Run("Location", func(t *testing.T) {
		assert.NotEmpty(t, store.Location())
	})
}
