package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"github.com/Nithish-ponnusamy/final-devops/internal/model"
)

// ChannelCacheTTL bounds how stale a served channel aggregate can be. Channel
// statistics move slowly and every cold aggregation costs 7+ upstream quota
// units, so short-lived caching pays for itself quickly.
const ChannelCacheTTL = 15 * time.Minute

// CacheService is a Redis cache-aside layer for channel aggregates. Profiles
// are deliberately not cached: a scrape request means "fetch it fresh now".
type CacheService struct {
	rdb    *redis.Client
	hits   prometheus.Counter
	misses prometheus.Counter
}

// NewCacheService creates a CacheService. If redisURL is empty or the
// connection fails, caching degrades to a no-op rather than blocking startup.
func NewCacheService(redisURL string) *CacheService {
	if redisURL == "" {
		log.Println("redis: no URL configured, caching disabled")
		return &CacheService{}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("redis: invalid URL %q, caching disabled: %v", redisURL, err)
		return &CacheService{}
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis: connection failed, caching disabled: %v", err)
		return &CacheService{}
	}

	log.Println("redis: connected, caching enabled")
	return &CacheService{rdb: rdb}
}

// WithCounters attaches hit/miss counters. Either may be nil.
func (c *CacheService) WithCounters(hits, misses prometheus.Counter) *CacheService {
	c.hits = hits
	c.misses = misses
	return c
}

// Client returns the underlying Redis client (for health checks). May be nil.
func (c *CacheService) Client() *redis.Client {
	return c.rdb
}

// GetChannel returns the cached aggregate for a display name, or nil on miss
// or when caching is disabled.
func (c *CacheService) GetChannel(ctx context.Context, channelName string) (*model.ChannelRecord, error) {
	if c.rdb == nil {
		return nil, nil
	}
	data, err := c.rdb.Get(ctx, channelKey(channelName)).Bytes()
	if err == redis.Nil {
		if c.misses != nil {
			c.misses.Inc()
		}
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var rec model.ChannelRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	if c.hits != nil {
		c.hits.Inc()
	}
	return &rec, nil
}

// SetChannel stores an aggregate under the display name it was requested by.
func (c *CacheService) SetChannel(ctx context.Context, channelName string, rec *model.ChannelRecord) error {
	if c.rdb == nil {
		return nil
	}
	b, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, channelKey(channelName), b, ChannelCacheTTL).Err()
}

// Close shuts down the Redis connection.
func (c *CacheService) Close() error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

func channelKey(channelName string) string {
	return fmt.Sprintf("channel:%s", channelName)
}
