package repository

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Nithish-ponnusamy/final-devops/internal/model"
)

// ProfileRepo persists scraped profile aggregates. One row per username,
// last write wins; scrape history is deliberately not retained.
type ProfileRepo struct {
	pool *pgxpool.Pool
}

func NewProfileRepo(pool *pgxpool.Pool) *ProfileRepo {
	return &ProfileRepo{pool: pool}
}

// Upsert writes the record keyed on username. The post list is stored as
// JSONB alongside the summary columns. Concurrent upserts to the same
// username need no locking: the row write is atomic and last-write-wins.
func (r *ProfileRepo) Upsert(ctx context.Context, rec *model.ProfileRecord) error {
	posts, err := json.Marshal(rec.Posts)
	if err != nil {
		return &PersistenceError{Op: "profile marshal", Err: err}
	}

	query := `
		INSERT INTO profiles (username, post_count, avatar_url, following_count,
		                      follower_count, joined_label, bio, posts, fetched_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (username) DO UPDATE SET
			post_count      = EXCLUDED.post_count,
			avatar_url      = EXCLUDED.avatar_url,
			following_count = EXCLUDED.following_count,
			follower_count  = EXCLUDED.follower_count,
			joined_label    = EXCLUDED.joined_label,
			bio             = EXCLUDED.bio,
			posts           = EXCLUDED.posts,
			fetched_at      = EXCLUDED.fetched_at`

	_, err = r.pool.Exec(ctx, query,
		rec.Username, rec.PostCount, rec.AvatarURL, rec.FollowingCount,
		rec.FollowerCount, rec.JoinedLabel, rec.Bio, posts, rec.FetchedAt,
	)
	if err != nil {
		return &PersistenceError{Op: "profile upsert", Err: err}
	}
	return nil
}
