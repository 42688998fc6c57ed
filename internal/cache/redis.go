// Package cache wires an optional Redis client used to memoize dashboard
// aggregates. A missing or unreachable Redis never fails a request; callers
// treat a nil client as "caching disabled".
package cache

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewClient connects to Redis at addr. Returns nil when addr is empty or
// the server cannot be reached within a short timeout.
func NewClient(addr, password string) *redis.Client {
	if addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("redis: ping %s failed, caching disabled: %v", addr, err)
		return nil
	}
	return client
}
