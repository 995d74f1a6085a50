package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/vigilance-service/internal/domain"
)

// StatsCache caches per-user report statistics. A nil cache is a valid
// no-op for deployments without Redis.
type StatsCache interface {
	Get(ctx context.Context, userID int64) (*domain.ReportStats, bool)
	Set(ctx context.Context, userID int64, stats *domain.ReportStats)
	Invalidate(ctx context.Context, userID int64)
}

const statsCacheTTL = 60 * time.Second

type redisStatsCache struct {
	client *redis.Client
}

// NewRedisStatsCache returns a Redis-backed stats cache. Cache failures are
// swallowed: a miss only costs a store query.
func NewRedisStatsCache(client *redis.Client) StatsCache {
	if client == nil {
		return nil
	}
	return &redisStatsCache{client: client}
}

func statsKey(userID int64) string {
	return fmt.Sprintf("report_stats:%d", userID)
}

func (c *redisStatsCache) Get(ctx context.Context, userID int64) (*domain.ReportStats, bool) {
	raw, err := c.client.Get(ctx, statsKey(userID)).Bytes()
	if err != nil {
		return nil, false
	}
	var stats domain.ReportStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, false
	}
	return &stats, true
}

func (c *redisStatsCache) Set(ctx context.Context, userID int64, stats *domain.ReportStats) {
	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, statsKey(userID), raw, statsCacheTTL).Err()
}

func (c *redisStatsCache) Invalidate(ctx context.Context, userID int64) {
	_ = c.client.Del(ctx, statsKey(userID)).Err()
}
