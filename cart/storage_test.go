package cart

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestStorage creates a miniredis server and a RedisStorage on top of it
func setupTestStorage(t *testing.T) (*RedisStorage, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { client.Close() })

	return NewRedisStorage(client), mr
}

func TestStorage_RoundTrip(t *testing.T) {
	storage, _ := setupTestStorage(t)
	ctx := context.Background()

	items := []Item{
		{ID: "p1", Name: "Website Basic", Description: "5 Seiten", Price: 499, Quantity: 2, Image: "https://ct-studio.store/img/basic.png"},
		{ID: "p2", Name: "Online-Shop", Price: 1499, Quantity: 1},
	}

	require.NoError(t, storage.Save(ctx, "guest-1", items))

	loaded, err := storage.Load(ctx, "guest-1")
	require.NoError(t, err)
	assert.Equal(t, items, loaded, "round-trip must reproduce the identical item list")
}

func TestStorage_LoadMissing(t *testing.T) {
	storage, _ := setupTestStorage(t)

	_, err := storage.Load(context.Background(), "unknown")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStorage_LoadCorrupt(t *testing.T) {
	storage, mr := setupTestStorage(t)

	require.NoError(t, mr.Set("cart-storage:guest-1", "{not json"))

	_, err := storage.Load(context.Background(), "guest-1")
	assert.Error(t, err)
}

func TestStorage_Delete(t *testing.T) {
	storage, _ := setupTestStorage(t)
	ctx := context.Background()

	require.NoError(t, storage.Save(ctx, "guest-1", []Item{{ID: "p1", Name: "Website Basic", Price: 499, Quantity: 1}}))
	require.NoError(t, storage.Delete(ctx, "guest-1"))

	_, err := storage.Load(ctx, "guest-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadStore_SwallowsCorruptData(t *testing.T) {
	storage, mr := setupTestStorage(t)

	require.NoError(t, mr.Set("cart-storage:guest-1", "garbage"))

	store := LoadStore(context.Background(), storage, "guest-1")
	assert.Empty(t, store.Items(), "corrupt blob must yield an empty cart, not an error")
}

func TestLoadStore_RestoresItems(t *testing.T) {
	storage, _ := setupTestStorage(t)
	ctx := context.Background()

	items := []Item{{ID: "p1", Name: "Website Basic", Price: 499, Quantity: 4}}
	require.NoError(t, storage.Save(ctx, "guest-1", items))

	store := LoadStore(ctx, storage, "guest-1")
	assert.Equal(t, items, store.Items())
	assert.Equal(t, 4, store.TotalItems())
}
