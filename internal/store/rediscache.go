package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/filemytax/tax-engine/internal/calculation"
	"github.com/filemytax/tax-engine/internal/domain"
)

// DefaultSummaryTTL bounds staleness of cached summaries. The summary is
// recomputed on every income change anyway; the TTL only covers writes that
// bypass this engine.
const DefaultSummaryTTL = 24 * time.Hour

// SummaryCache keeps JSON-serialized summaries in Redis keyed by taxpayer
// and financial year.
type SummaryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// OpenSummaryCache connects using REDIS_URL (or the given address if
// non-empty) and verifies the connection.
func OpenSummaryCache(redisURL string) (*SummaryCache, error) {
	if redisURL == "" {
		redisURL = os.Getenv("REDIS_URL")
	}
	if redisURL == "" {
		redisURL = "localhost:6379"
	}

	opt, err := redis.ParseURL(fmt.Sprintf("redis://%s", redisURL))
	if err != nil {
		// Fallback to simple connection
		opt = &redis.Options{Addr: redisURL}
	}
	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &SummaryCache{client: client, ttl: DefaultSummaryTTL}, nil
}

// Close releases the Redis client
func (c *SummaryCache) Close() error {
	return c.client.Close()
}

func summaryKey(taxpayerID string, fy domain.FinancialYear) string {
	return fmt.Sprintf("tax_summary:%s:%s", taxpayerID, fy)
}

// Put stores a summary, replacing any previous one for the same key
func (c *SummaryCache) Put(ctx context.Context, s *domain.TaxSummary) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, summaryKey(s.TaxpayerID, s.FinancialYear), data, c.ttl).Err()
}

// Get returns the cached summary, or (nil, nil) on a miss
func (c *SummaryCache) Get(ctx context.Context, taxpayerID string, fy domain.FinancialYear) (*domain.TaxSummary, error) {
	data, err := c.client.Get(ctx, summaryKey(taxpayerID, fy)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var s domain.TaxSummary
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// CachedSummaryStore writes summaries through to the durable store and then
// refreshes the cache best-effort: a cache failure is logged, never
// surfaced, so the recompute still commits.
type CachedSummaryStore struct {
	Durable calculation.SummaryWriter
	Cache   *SummaryCache
	Logger  calculation.Logger
}

func (cs *CachedSummaryStore) SaveSummary(ctx context.Context, s *domain.TaxSummary) error {
	if err := cs.Durable.SaveSummary(ctx, s); err != nil {
		return err
	}
	if cs.Cache != nil {
		if err := cs.Cache.Put(ctx, s); err != nil && cs.Logger != nil {
			cs.Logger.Warnf("summary cache refresh failed for taxpayer %s: %v", s.TaxpayerID, err)
		}
	}
	return nil
}
