package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redislib "github.com/redis/go-redis/v9"

	redisclient "github.com/muhammadheryan/inventory-tracker/cmd/redis"
	"github.com/muhammadheryan/inventory-tracker/model"
)

// SnapshotCache caches ledger snapshot read models. Every method degrades to
// a no-op cache miss when Redis is unavailable, the database stays
// authoritative.
type SnapshotCache interface {
	GetSnapshot(ctx context.Context, filter *model.SnapshotFilter) ([]model.SnapshotEntry, bool, error)
	SetSnapshot(ctx context.Context, filter *model.SnapshotFilter, entries []model.SnapshotEntry, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}

type cache struct {
}

// NewSnapshotCache returns a Redis-backed SnapshotCache
func NewSnapshotCache() SnapshotCache {
	return &cache{}
}

const snapshotKeyPrefix = "snapshot:"

func snapshotKey(filter *model.SnapshotFilter) string {
	product, location := "all", "all"
	if filter != nil && filter.ProductID != nil {
		product = fmt.Sprintf("%d", *filter.ProductID)
	}
	if filter != nil && filter.LocationID != nil {
		location = fmt.Sprintf("%d", *filter.LocationID)
	}
	return snapshotKeyPrefix + product + ":" + location
}

func (c *cache) GetSnapshot(ctx context.Context, filter *model.SnapshotFilter) ([]model.SnapshotEntry, bool, error) {
	client := redisclient.Get()
	if client == nil {
		return nil, false, nil
	}
	raw, err := client.Get(ctx, snapshotKey(filter)).Result()
	if err != nil {
		if err == redislib.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}

	var entries []model.SnapshotEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, false, err
	}
	return entries, true, nil
}

func (c *cache) SetSnapshot(ctx context.Context, filter *model.SnapshotFilter, entries []model.SnapshotEntry, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	raw, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return client.Set(ctx, snapshotKey(filter), raw, ttl).Err()
}

// Invalidate drops every cached snapshot view. Mutations are rare relative
// to reads, a full sweep keeps the keying simple.
func (c *cache) Invalidate(ctx context.Context) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}

	iter := client.Scan(ctx, 0, snapshotKeyPrefix+"*", 100).Iterator()
	keys := make([]string, 0)
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return client.Del(ctx, keys...).Err()
}
