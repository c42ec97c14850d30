// Package redis caches read-mostly documents in Redis.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/goodnatureofminers/glyphindexer/internal/glyph/model"
)

const (
	DefaultStatsKey = "glyphindexer:stats"
	DefaultStatsTTL = 30 * time.Second
)

type Metrics interface {
	Observe(operation string, err error, started time.Time)
}

// StatsCache keeps the stats document under one key with a TTL.
type StatsCache struct {
	client  goredis.UniversalClient
	key     string
	ttl     time.Duration
	metrics Metrics
}

// Options configures a Redis connection.
type Options struct {
	Addrs    []string
	Password string
	DB       int
}

// NewClient opens a universal client and pings it. More than one address
// selects cluster mode.
func NewClient(ctx context.Context, opts Options) (goredis.UniversalClient, error) {
	if len(opts.Addrs) == 0 {
		return nil, errors.New("redis address is required")
	}
	client := goredis.NewUniversalClient(&goredis.UniversalOptions{
		Addrs:    opts.Addrs,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// NewStatsCache builds a StatsCache. Empty key and non-positive ttl fall back
// to the defaults.
func NewStatsCache(client goredis.UniversalClient, key string, ttl time.Duration, metrics Metrics) (*StatsCache, error) {
	if client == nil {
		return nil, errors.New("redis client is required")
	}
	if key == "" {
		key = DefaultStatsKey
	}
	if ttl <= 0 {
		ttl = DefaultStatsTTL
	}
	return &StatsCache{client: client, key: key, ttl: ttl, metrics: metrics}, nil
}

// Get returns the cached stats and whether the key was present.
func (c *StatsCache) Get(ctx context.Context) (model.Stats, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		c.metrics.Observe("get_stats", err, start)
	}()

	raw, err := c.client.Get(ctx, c.key).Bytes()
	if errors.Is(err, goredis.Nil) {
		err = nil
		return model.Stats{}, false, nil
	}
	if err != nil {
		return model.Stats{}, false, fmt.Errorf("get stats: %w", err)
	}

	var stats model.Stats
	if err = json.Unmarshal(raw, &stats); err != nil {
		return model.Stats{}, false, fmt.Errorf("decode cached stats: %w", err)
	}
	return stats, true, nil
}

// Set stores stats with the cache TTL.
func (c *StatsCache) Set(ctx context.Context, stats model.Stats) error {
	start := time.Now()
	var err error
	defer func() {
		c.metrics.Observe("set_stats", err, start)
	}()

	raw, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("encode stats: %w", err)
	}
	if err = c.client.Set(ctx, c.key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("set stats: %w", err)
	}
	return nil
}

// Invalidate drops the cached stats.
func (c *StatsCache) Invalidate(ctx context.Context) error {
	start := time.Now()
	var err error
	defer func() {
		c.metrics.Observe("invalidate_stats", err, start)
	}()

	if err = c.client.Del(ctx, c.key).Err(); err != nil {
		return fmt.Errorf("delete stats: %w", err)
	}
	return nil
}
