package ports

import (
	"context"
	"testing"

	"github.com/aretw0/gamut/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunPaletteStoreContract runs a suite of tests verifying that a
// PaletteStore implementation adheres to the interface contract.
func RunPaletteStoreContract(t *testing.T, store PaletteStore) {
	ctx := context.Background()

	t.Run("Save and Lookup", func(t *testing.T) {
		err := store.Save(ctx, "contract-rose", "rgb(255 0 127)")
		require.NoError(t, err, "Save should not return error")

		got, err := store.Lookup(ctx, "contract-rose")
		require.NoError(t, err, "Lookup should not return error")
		assert.Equal(t, "rgb(255 0 127)", got)
	})

	t.Run("Lookup Non-Existent", func(t *testing.T) {
		_, err := store.Lookup(ctx, "contract-no-such-name")
		assert.ErrorIs(t, err, domain.ErrNameNotFound)
	})

	t.Run("Save Replaces", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, "contract-rose", "rgb(250 0 120)"))
		got, err := store.Lookup(ctx, "contract-rose")
		require.NoError(t, err)
		assert.Equal(t, "rgb(250 0 120)", got)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, "contract-doomed", "rgb(0 0 0)"))
		require.NoError(t, store.Delete(ctx, "contract-doomed"))

		_, err := store.Lookup(ctx, "contract-doomed")
		assert.ErrorIs(t, err, domain.ErrNameNotFound, "Lookup after Delete should return ErrNameNotFound")

		assert.NoError(t, store.Delete(ctx, "contract-doomed"), "Delete should be idempotent")
	})
}
