package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// ErrNotFound is returned by Storage.Load when no cart exists under the key.
var ErrNotFound = errors.New("cart not found")

// Storage persists the full item list of a cart as one JSON blob under a
// fixed key. Every mutation writes the whole list; last write wins.
type Storage interface {
	Load(ctx context.Context, key string) ([]Item, error)
	Save(ctx context.Context, key string, items []Item) error
	Delete(ctx context.Context, key string) error
}

func NewRedisStorage(client *redis.Client) *RedisStorage {
	return &RedisStorage{client: client}
}

// RedisStorage keeps cart blobs in Redis without expiry. Carts survive
// restarts; stale guest carts are cleaned up by the shop operator, not here.
type RedisStorage struct {
	client *redis.Client
}

func (r *RedisStorage) Load(ctx context.Context, key string) ([]Item, error) {
	data, err := r.client.Get(ctx, storageKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("unmarshal cart failed: %w", err)
	}
	return items, nil
}

func (r *RedisStorage) Save(ctx context.Context, key string, items []Item) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal cart failed: %w", err)
	}
	if err := r.client.Set(ctx, storageKey(key), data, 0).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (r *RedisStorage) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, storageKey(key)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func storageKey(key string) string {
	return fmt.Sprintf("cart-storage:%s", key)
}

// LoadStore restores a cart from storage. A missing or corrupt blob yields
// an empty cart; the shopper never sees a deserialization failure.
func LoadStore(ctx context.Context, storage Storage, key string) *Store {
	items, err := storage.Load(ctx, key)
	if err != nil {
		return NewStore()
	}
	return NewStoreWith(items)
}
