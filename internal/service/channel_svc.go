package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Nithish-ponnusamy/final-devops/internal/model"
)

// Aggregator assembles one ChannelRecord from the upstream API.
type Aggregator interface {
	Aggregate(ctx context.Context, displayName string) (*model.ChannelRecord, error)
}

// ChannelStore persists channel aggregates keyed by channel name.
type ChannelStore interface {
	Upsert(ctx context.Context, rec *model.ChannelRecord) error
	FindByName(ctx context.Context, channelName string) (*model.ChannelRecord, error)
}

// ChannelService fronts the aggregator with a two-tier cache (Redis, then the
// persisted row if still fresh) and persists fresh aggregates. As with
// profiles, persistence failure is logged and the fetched data still returned.
type ChannelService struct {
	agg   Aggregator
	store ChannelStore
	cache *CacheService
}

func NewChannelService(agg Aggregator, store ChannelStore, cache *CacheService) *ChannelService {
	return &ChannelService{agg: agg, store: store, cache: cache}
}

// Fetch returns the aggregate for displayName, served from cache when a
// recent one exists. Cache errors degrade to a cold fetch.
func (s *ChannelService) Fetch(ctx context.Context, displayName string) (*model.ChannelRecord, error) {
	if s.cache != nil {
		cached, err := s.cache.GetChannel(ctx, displayName)
		if err != nil {
			log.Printf("cache: channel get error: %v", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	// Second tier: a persisted aggregate fresher than the cache TTL is served
	// before spending upstream quota. Covers Redis being down or cold.
	if stored, err := s.store.FindByName(ctx, displayName); err == nil && stored != nil {
		if time.Since(stored.FetchedAt) < ChannelCacheTTL {
			if s.cache != nil {
				if err := s.cache.SetChannel(ctx, displayName, stored); err != nil {
					log.Printf("cache: channel backfill error: %v", err)
				}
			}
			return stored, nil
		}
	} else if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		log.Printf("channel: stored lookup %q failed: %v", displayName, err)
	}

	rec, err := s.agg.Aggregate(ctx, displayName)
	if err != nil {
		return nil, err
	}

	rec.FetchedAt = time.Now().UTC()

	if err := s.store.Upsert(ctx, rec); err != nil {
		log.Printf("channel: upsert %q failed, returning unpersisted result: %v", displayName, err)
	}

	if s.cache != nil {
		if err := s.cache.SetChannel(ctx, displayName, rec); err != nil {
			log.Printf("cache: channel set error: %v", err)
		}
	}

	return rec, nil
}
