package utils

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// CacheInvalidator purges cached event responses after a write so readers
// never see a stale list while a registration or edit is in flight.
type CacheInvalidator struct{ rdb *redis.Client }

func NewCacheInvalidator(rdb *redis.Client) *CacheInvalidator { return &CacheInvalidator{rdb} }

func (ci *CacheInvalidator) PurgeEventsList(ctx context.Context) {
	ci.purge(ctx, "cache:events:list:*")
}

// PurgeEventItems drops all cached single-event responses. Item keys embed a
// hash of the request, so invalidation goes by prefix rather than id.
func (ci *CacheInvalidator) PurgeEventItems(ctx context.Context) {
	ci.purge(ctx, "cache:events:item:*")
}

func (ci *CacheInvalidator) purge(ctx context.Context, pattern string) {
	iter := ci.rdb.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		_ = ci.rdb.Del(ctx, iter.Val()).Err()
	}
}
