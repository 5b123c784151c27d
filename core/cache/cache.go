// Package cache is a small JSON cache over Redis. A Cache built with a nil
// client is a no-op, so callers never branch on whether Redis is configured.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

type Cache struct {
	client *redis.Client
	prefix string
}

// New returns a cache namespaced by prefix. client may be nil.
func New(client *redis.Client, prefix string) *Cache {
	return &Cache{client: client, prefix: prefix}
}

// Enabled reports whether a Redis client backs the cache.
func (c *Cache) Enabled() bool {
	return c != nil && c.client != nil
}

// Key joins parts into a namespaced key.
func (c *Cache) Key(parts ...interface{}) string {
	s := make([]string, 0, len(parts)+1)
	s = append(s, c.prefix)
	for _, p := range parts {
		s = append(s, fmt.Sprintf("%v", p))
	}
	return strings.Join(s, ":")
}

// GetJSON decodes the value stored at key into dst. Misses and Redis
// errors both report false; errors are logged.
func (c *Cache) GetJSON(ctx context.Context, key string, dst interface{}) bool {
	if !c.Enabled() {
		return false
	}
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("cache get %s: %v", key, err)
		}
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		log.Printf("cache decode %s: %v", key, err)
		return false
	}
	return true
}

// SetJSON stores v at key with ttl (0 = no expiry).
func (c *Cache) SetJSON(ctx context.Context, key string, v interface{}, ttl time.Duration) {
	if !c.Enabled() {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		log.Printf("cache encode %s: %v", key, err)
		return
	}
	if err := c.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		log.Printf("cache set %s: %v", key, err)
	}
}

// DeletePrefix removes every key under the cache namespace. Used after a reindex.
func (c *Cache) DeletePrefix(ctx context.Context) error {
	if !c.Enabled() {
		return nil
	}
	iter := c.client.Scan(ctx, 0, c.prefix+":*", 200).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}
