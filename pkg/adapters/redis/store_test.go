package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/gamut/pkg/adapters/redis"
	"github.com/aretw0/gamut/pkg/domain"
	"github.com/aretw0/gamut/pkg/ports"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *backend.Client {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")
	t.Cleanup(mr.Close)
	return backend.NewClient(&backend.Options{Addr: mr.Addr()})
}

func TestRedisStore_Contract(t *testing.T) {
	store := redis.NewFromClient(newTestClient(t))
	ports.RunPaletteStoreContract(t, store)
}

func TestRedisStore_TTL_Expiration(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	store := redis.NewFromClient(client, redis.WithTTL(1*time.Second))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "ephemeral", "rgb(1 2 3)"))

	got, err := store.Lookup(ctx, "ephemeral")
	require.NoError(t, err)
	assert.Equal(t, "rgb(1 2 3)", got)

	// Fast forward past the TTL.
	mr.FastForward(2 * time.Second)

	_, err = store.Lookup(ctx, "ephemeral")
	assert.ErrorIs(t, err, domain.ErrNameNotFound)
}

func TestRedisStore_CaseInsensitive(t *testing.T) {
	store := redis.NewFromClient(newTestClient(t))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "BrandBlue", "rgb(0 82 204)"))

	got, err := store.Lookup(ctx, "brandblue")
	require.NoError(t, err)
	assert.Equal(t, "rgb(0 82 204)", got)
}
