package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"go-measlesmonitor/simulation"
)

// Cached outcomes only go stale when the model constants change, but a
// TTL keeps the keyspace from growing without bound across sweeps.
const redisTTL = 24 * time.Hour

type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(addr string) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisCache{client: rdb}
}

func (c *RedisCache) Get(ctx context.Context, key string) (simulation.Outcome, bool) {
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("Redis get failed for %s: %v", key, err)
		}
		return simulation.Outcome{}, false
	}

	var out simulation.Outcome
	if err := json.Unmarshal([]byte(val), &out); err != nil {
		log.Printf("Dropping malformed cache entry %s: %v", key, err)
		return simulation.Outcome{}, false
	}
	return out, true
}

func (c *RedisCache) Set(ctx context.Context, key string, out simulation.Outcome) error {
	b, err := json.Marshal(out)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, b, redisTTL).Err()
}
