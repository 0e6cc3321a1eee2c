package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// ProductCache keeps rendered product-list pages in Redis so the hot,
// unfiltered listing does not hit the database on every request. Entries
// expire on a short TTL; the catalog has no write path through the API, so
// TTL expiry is the only invalidation needed.
type ProductCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// New returns a cache over the client. A nil client yields a nil cache, and
// a nil *ProductCache is safe to call: every method degrades to a miss.
func New(rdb *redis.Client) *ProductCache {
	if rdb == nil {
		return nil
	}
	return &ProductCache{rdb: rdb, ttl: 5 * time.Minute}
}

func (pc *ProductCache) key(page, pageSize int) string {
	return fmt.Sprintf("products:%d:%d", page, pageSize)
}

// Get returns the cached JSON payload for the page, if present.
func (pc *ProductCache) Get(ctx context.Context, page, pageSize int) ([]byte, bool) {
	if pc == nil {
		return nil, false
	}
	raw, err := pc.rdb.Get(ctx, pc.key(page, pageSize)).Bytes()
	if err != nil {
		return nil, false
	}
	return raw, true
}

// Set stores the rendered page. Cache write failures only cost the next
// reader a database query, so they are logged and dropped.
func (pc *ProductCache) Set(ctx context.Context, page, pageSize int, payload interface{}) {
	if pc == nil {
		return
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return
	}
	if err := pc.rdb.Set(ctx, pc.key(page, pageSize), raw, pc.ttl).Err(); err != nil {
		log.Printf("product cache write failed: %v", err)
	}
}
