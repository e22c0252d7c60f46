package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisSnapshotter persists the store snapshot as a single JSON value under
// one namespaced key. Every Save replaces the whole value, so the last writer
// wins if several instances share the key.
type RedisSnapshotter struct {
	client *redis.Client
	key    string
}

// NewRedisSnapshotter creates a snapshotter writing to the given key.
func NewRedisSnapshotter(client *redis.Client, key string) *RedisSnapshotter {
	return &RedisSnapshotter{client: client, key: key}
}

// Load reads and decodes the stored snapshot. A missing key yields (nil, nil).
func (r *RedisSnapshotter) Load(ctx context.Context) (*Snapshot, error) {
	payload, err := r.client.Get(ctx, r.key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(payload, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}

	return &snapshot, nil
}

// Save encodes the snapshot and replaces the stored value.
func (r *RedisSnapshotter) Save(ctx context.Context, snapshot Snapshot) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	if err := r.client.Set(ctx, r.key, payload, 0).Err(); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	return nil
}
