// Package cache is an optional Redis read cache for the job catalogue. The
// catalogue is the one collection every signed-in user fetches on the jobs
// screen, and it only changes when the backend re-scrapes.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"jobdeck_gateway/internal/logger"
	"jobdeck_gateway/internal/models"
)

const catalogKey = "jobdeck:catalog"

type Catalog struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewCatalog connects to Redis and verifies connectivity. An empty addr
// returns nil: a nil *Catalog is a valid always-miss cache.
func NewCatalog(ctx context.Context, addr, password string, db int, ttl time.Duration) (*Catalog, error) {
	if addr == "" {
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Catalog{rdb: rdb, ttl: ttl}, nil
}

// GetJobs returns the cached catalogue, or false on miss, decode failure or
// disabled cache.
func (c *Catalog) GetJobs(ctx context.Context) ([]models.Job, bool) {
	if c == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, catalogKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.CtxWarn(ctx, "catalog cache read failed", "error", err)
		}
		return nil, false
	}

	var jobs []models.Job
	if err := json.Unmarshal(raw, &jobs); err != nil {
		logger.CtxWarn(ctx, "catalog cache decode failed", "error", err)
		return nil, false
	}
	return jobs, true
}

// SetJobs stores the catalogue for the configured TTL. Failures only log;
// the cache never blocks a response.
func (c *Catalog) SetJobs(ctx context.Context, jobs []models.Job) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(jobs)
	if err != nil {
		logger.CtxWarn(ctx, "catalog cache encode failed", "error", err)
		return
	}
	if err := c.rdb.Set(ctx, catalogKey, raw, c.ttl).Err(); err != nil {
		logger.CtxWarn(ctx, "catalog cache write failed", "error", err)
	}
}
