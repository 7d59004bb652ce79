package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nithish-ponnusamy/final-devops/internal/model"
	"github.com/Nithish-ponnusamy/final-devops/internal/repository"
	"github.com/Nithish-ponnusamy/final-devops/internal/youtube"
)

func sampleChannel() *model.ChannelRecord {
	return &model.ChannelRecord{
		ChannelName:      "Fixture Channel",
		ThumbnailURL:     "https://yt.example/t.jpg",
		TotalViews:       "1000000",
		TotalSubscribers: "5000",
		TotalVideoCount:  "120",
		RecentVideos: []model.VideoSummary{
			{Title: "v1", PublishedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), ViewCount: "10"},
		},
	}
}

// noopCache returns a CacheService with no Redis client, the same degraded
// mode production falls into when Redis is absent.
func noopCache() *CacheService {
	return &CacheService{}
}

func TestChannelFetch_PersistsAndReturns(t *testing.T) {
	store := newMemChannelStore()
	svc := NewChannelService(&fakeAggregator{record: sampleChannel()}, store, noopCache())

	rec, err := svc.Fetch(context.Background(), "Fixture Channel")
	require.NoError(t, err)

	assert.Equal(t, "Fixture Channel", rec.ChannelName)
	assert.False(t, rec.FetchedAt.IsZero())
	assert.Len(t, store.records, 1)
}

func TestChannelFetch_NotFoundDoesNotWrite(t *testing.T) {
	store := newMemChannelStore()
	svc := NewChannelService(&fakeAggregator{err: youtube.ErrNotFound}, store, noopCache())

	_, err := svc.Fetch(context.Background(), "nobody")
	require.ErrorIs(t, err, youtube.ErrNotFound)
	assert.Zero(t, store.writes)
}

func TestChannelFetch_UpstreamErrorDoesNotWrite(t *testing.T) {
	store := newMemChannelStore()
	upstream := &youtube.UpstreamError{Endpoint: "videos", Status: 403}
	svc := NewChannelService(&fakeAggregator{err: upstream}, store, noopCache())

	_, err := svc.Fetch(context.Background(), "Fixture Channel")

	var ue *youtube.UpstreamError
	require.ErrorAs(t, err, &ue)
	assert.Zero(t, store.writes, "no persistence write when the aggregation failed")
}

func TestChannelFetch_StoreFailureStillReturnsRecord(t *testing.T) {
	store := newMemChannelStore()
	store.failErr = &repository.PersistenceError{Op: "channel upsert", Err: errors.New("connection refused")}
	svc := NewChannelService(&fakeAggregator{record: sampleChannel()}, store, noopCache())

	rec, err := svc.Fetch(context.Background(), "Fixture Channel")
	require.NoError(t, err, "persistence is a side effect, not the deliverable")
	assert.Equal(t, "1000000", rec.TotalViews)
	assert.Equal(t, 1, store.writes, "the write completed (failed loudly) before the response")
}

func TestChannelFetch_NilCacheServiceIsSafe(t *testing.T) {
	store := newMemChannelStore()
	svc := NewChannelService(&fakeAggregator{record: sampleChannel()}, store, nil)

	_, err := svc.Fetch(context.Background(), "Fixture Channel")
	require.NoError(t, err)
}

func TestChannelFetch_FreshStoredRecordSkipsAggregation(t *testing.T) {
	agg := &fakeAggregator{record: sampleChannel()}
	store := newMemChannelStore()
	svc := NewChannelService(agg, store, noopCache())

	// First call aggregates and persists; the second is served from the
	// stored row while it is fresher than the cache TTL.
	_, err := svc.Fetch(context.Background(), "Fixture Channel")
	require.NoError(t, err)
	rec, err := svc.Fetch(context.Background(), "Fixture Channel")
	require.NoError(t, err)

	assert.Equal(t, 1, agg.calls, "fresh persisted aggregate serves as second cache tier")
	assert.Equal(t, "Fixture Channel", rec.ChannelName)
	assert.Len(t, store.records, 1, "upsert keyed by name stays a single row")
}

func TestChannelFetch_StaleStoredRecordReaggregates(t *testing.T) {
	agg := &fakeAggregator{record: sampleChannel()}
	store := newMemChannelStore()

	stale := *sampleChannel()
	stale.FetchedAt = time.Now().UTC().Add(-2 * ChannelCacheTTL)
	store.records["Fixture Channel"] = stale

	svc := NewChannelService(agg, store, noopCache())

	rec, err := svc.Fetch(context.Background(), "Fixture Channel")
	require.NoError(t, err)

	assert.Equal(t, 1, agg.calls, "stale stored record does not satisfy the request")
	assert.True(t, rec.FetchedAt.After(stale.FetchedAt))
}
