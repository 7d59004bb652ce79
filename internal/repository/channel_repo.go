package repository

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Nithish-ponnusamy/final-devops/internal/model"
)

// ChannelRepo persists aggregated channel records. Keyed by display name —
// the upstream lookup is by name, not by stable channel id, so a repeat
// aggregation may legitimately overwrite with data from a different
// underlying channel if the platform's search ranking moved.
type ChannelRepo struct {
	pool *pgxpool.Pool
}

func NewChannelRepo(pool *pgxpool.Pool) *ChannelRepo {
	return &ChannelRepo{pool: pool}
}

// Upsert writes the record keyed on channel name. Last write wins, no merge.
func (r *ChannelRepo) Upsert(ctx context.Context, rec *model.ChannelRecord) error {
	videos, err := json.Marshal(rec.RecentVideos)
	if err != nil {
		return &PersistenceError{Op: "channel marshal", Err: err}
	}

	query := `
		INSERT INTO channels (channel_name, thumbnail_url, total_views,
		                      total_subscribers, total_video_count, recent_videos, fetched_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (channel_name) DO UPDATE SET
			thumbnail_url     = EXCLUDED.thumbnail_url,
			total_views       = EXCLUDED.total_views,
			total_subscribers = EXCLUDED.total_subscribers,
			total_video_count = EXCLUDED.total_video_count,
			recent_videos     = EXCLUDED.recent_videos,
			fetched_at        = EXCLUDED.fetched_at`

	_, err = r.pool.Exec(ctx, query,
		rec.ChannelName, rec.ThumbnailURL, rec.TotalViews,
		rec.TotalSubscribers, rec.TotalVideoCount, videos, rec.FetchedAt,
	)
	if err != nil {
		return &PersistenceError{Op: "channel upsert", Err: err}
	}
	return nil
}

// FindByName returns the last persisted aggregate for a channel name.
func (r *ChannelRepo) FindByName(ctx context.Context, channelName string) (*model.ChannelRecord, error) {
	query := `
		SELECT channel_name, thumbnail_url, total_views,
		       total_subscribers, total_video_count, recent_videos, fetched_at
		FROM channels
		WHERE channel_name = $1`

	var rec model.ChannelRecord
	var videos []byte
	err := r.pool.QueryRow(ctx, query, channelName).Scan(
		&rec.ChannelName, &rec.ThumbnailURL, &rec.TotalViews,
		&rec.TotalSubscribers, &rec.TotalVideoCount, &videos, &rec.FetchedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(videos, &rec.RecentVideos); err != nil {
		return nil, &PersistenceError{Op: "channel unmarshal", Err: err}
	}
	return &rec, nil
}
