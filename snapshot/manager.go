// Package snapshot caches the derived dataset summary in redis so the
// JSON API and repeated page loads skip recomputation. Reads prefer
// redis and fall back to a local recompute; a degraded redis never
// surfaces to the page.
package snapshot

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"econdash/dataset"
)

const keyPrefix = "econdash:summary:"

type Manager struct {
	redis *redis.Client
	ttl   time.Duration
}

// NewManager wraps client; a nil client disables the cache and every
// read computes locally.
func NewManager(client *redis.Client, ttl time.Duration) *Manager {
	return &Manager{redis: client, ttl: ttl}
}

// Summary returns the cached summary for path, recomputing from t and
// writing through on a miss.
func (m *Manager) Summary(ctx context.Context, path string, t *dataset.Table) dataset.Summary {
	if m.redis != nil {
		data, err := m.redis.Get(ctx, keyPrefix+path).Bytes()
		if err == nil {
			var sum dataset.Summary
			if err := json.Unmarshal(data, &sum); err == nil {
				return sum
			}
			log.Printf("snapshot: corrupt cache entry for %s, recomputing", path)
		}
	}

	sum := dataset.Summarize(t)

	if m.redis != nil {
		if data, err := json.Marshal(sum); err == nil {
			if err := m.redis.Set(ctx, keyPrefix+path, data, m.ttl).Err(); err != nil {
				log.Printf("snapshot: cache write for %s: %v", path, err)
			}
		}
	}
	return sum
}

// Invalidate drops the cached summary for path. Called on cache busts
// and ETL refresh notifications.
func (m *Manager) Invalidate(ctx context.Context, path string) {
	if m.redis == nil {
		return
	}
	if err := m.redis.Del(ctx, keyPrefix+path).Err(); err != nil {
		log.Printf("snapshot: invalidate %s: %v", path, err)
	}
}

// Ping reports redis availability for health checks.
func (m *Manager) Ping(ctx context.Context) error {
	if m.redis == nil {
		return redis.ErrClosed
	}
	return m.redis.Ping(ctx).Err()
}

// Enabled reports whether a redis backend is configured.
func (m *Manager) Enabled() bool { return m.redis != nil }
