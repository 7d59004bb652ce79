package youtube

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/Nithish-ponnusamy/final-devops/internal/model"
)

// Aggregator assembles a ChannelRecord through the three-stage pipeline:
// resolve name → (statistics ∥ recent-video search) → per-video detail
// fan-out. Stages 2A and 2B run concurrently; stage 3 runs fully parallel but
// only after 2B resolves.
type Aggregator struct {
	client    *Client
	maxVideos int
	logger    zerolog.Logger
}

// NewAggregator creates an Aggregator. maxVideos caps stage 2B/3; zero means 5.
func NewAggregator(client *Client, maxVideos int, logger zerolog.Logger) *Aggregator {
	if maxVideos <= 0 {
		maxVideos = 5
	}
	return &Aggregator{client: client, maxVideos: maxVideos, logger: logger}
}

// Aggregate builds the record for displayName. ErrNotFound short-circuits
// before any further upstream call. Individual video-detail failures are
// tolerated: successes are kept in publish order, and only when every detail
// call fails does the whole aggregation surface an UpstreamError.
func (a *Aggregator) Aggregate(ctx context.Context, displayName string) (*model.ChannelRecord, error) {
	channelID, err := a.client.ResolveChannelID(ctx, displayName)
	if err != nil {
		return nil, err
	}

	var (
		wg      sync.WaitGroup
		info    *channelItem
		infoErr error
		ids     []string
		idsErr  error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		info, infoErr = a.client.ChannelDetails(ctx, channelID)
	}()
	go func() {
		defer wg.Done()
		ids, idsErr = a.client.RecentVideoIDs(ctx, channelID, a.maxVideos)
	}()
	wg.Wait()

	if infoErr != nil {
		return nil, infoErr
	}
	if idsErr != nil {
		return nil, idsErr
	}

	videos, err := a.fetchVideoDetails(ctx, ids)
	if err != nil {
		return nil, err
	}

	return &model.ChannelRecord{
		ChannelName:      info.Snippet.Title,
		ThumbnailURL:     info.Snippet.Thumbnails.Default.URL,
		TotalViews:       info.Statistics.ViewCount,
		TotalSubscribers: info.Statistics.SubscriberCount,
		TotalVideoCount:  info.Statistics.VideoCount,
		RecentVideos:     videos,
	}, nil
}

// fetchVideoDetails fans out one detail call per id, all in parallel,
// preserving the input (publish) order in the result.
func (a *Aggregator) fetchVideoDetails(ctx context.Context, ids []string) ([]model.VideoSummary, error) {
	if len(ids) == 0 {
		return []model.VideoSummary{}, nil
	}

	results := make([]*videoItem, len(ids))
	errs := make([]error, len(ids))

	var wg sync.WaitGroup
	wg.Add(len(ids))
	for i, id := range ids {
		go func(i int, id string) {
			defer wg.Done()
			results[i], errs[i] = a.client.VideoDetails(ctx, id)
		}(i, id)
	}
	wg.Wait()

	videos := make([]model.VideoSummary, 0, len(ids))
	var firstErr error
	for i, item := range results {
		if errs[i] != nil {
			if firstErr == nil {
				firstErr = errs[i]
			}
			a.logger.Warn().Err(errs[i]).Str("video_id", ids[i]).
				Msg("video detail fetch failed, dropping from aggregate")
			continue
		}
		videos = append(videos, model.VideoSummary{
			Title:        item.Snippet.Title,
			Description:  item.Snippet.Description,
			PublishedAt:  item.Snippet.PublishedAt,
			LikeCount:    item.Statistics.LikeCount,
			CommentCount: item.Statistics.CommentCount,
			ViewCount:    item.Statistics.ViewCount,
		})
	}

	// Partial success is a success; total failure is not.
	if len(videos) == 0 {
		if ue, ok := firstErr.(*UpstreamError); ok {
			return nil, ue
		}
		return nil, &UpstreamError{Endpoint: "videos", Err: firstErr}
	}
	return videos, nil
}
