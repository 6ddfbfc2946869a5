// file: service/cache.go

package service

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// ICacheClient defines the contract for a cache client.
// This abstraction allows us to decouple the services from a concrete
// Redis implementation, enabling easier testing and future flexibility.
type ICacheClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

const (
	categoriesCacheKey = "categories:active"
	categoriesCacheTTL = 10 * time.Minute
)

// invalidateCategoryCache drops the cached active-category list. Blog writes
// call this too because the list carries per-category published counts.
func invalidateCategoryCache(cache ICacheClient) {
	if cache == nil {
		return
	}
	cache.Del(context.Background(), categoriesCacheKey)
}
