package db

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	maxRetries    = 5
	retryInterval = 2 * time.Second
)

// NewPool connects to Postgres with a small retry loop (the database container
// often comes up a few seconds after the service in development).
func NewPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour
	config.MaxConnIdleTime = 30 * time.Minute
	config.HealthCheckPeriod = time.Minute

	var pool *pgxpool.Pool
	for attempt := 1; attempt <= maxRetries; attempt++ {
		pool, err = pgxpool.NewWithConfig(ctx, config)
		if err == nil {
			if pingErr := pool.Ping(ctx); pingErr == nil {
				log.Println("database connected")
				return pool, nil
			} else {
				pool.Close()
				err = pingErr
			}
		}

		log.Printf("database connection attempt %d/%d failed: %v", attempt, maxRetries, err)
		if attempt < maxRetries {
			time.Sleep(retryInterval)
		}
	}

	return nil, fmt.Errorf("database connection failed after %d attempts: %w", maxRetries, err)
}

// Bootstrap creates the tables the service writes to. Idempotent; no
// migration tooling, the schema is small enough to own inline.
func Bootstrap(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS profiles (
			username        TEXT PRIMARY KEY,
			post_count      TEXT        NOT NULL DEFAULT '',
			avatar_url      TEXT        NOT NULL DEFAULT '',
			following_count TEXT        NOT NULL DEFAULT '',
			follower_count  TEXT        NOT NULL DEFAULT '',
			joined_label    TEXT        NOT NULL DEFAULT '',
			bio             TEXT        NOT NULL DEFAULT '',
			posts           JSONB       NOT NULL DEFAULT '[]',
			fetched_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS channels (
			channel_name      TEXT PRIMARY KEY,
			thumbnail_url     TEXT        NOT NULL DEFAULT '',
			total_views       TEXT        NOT NULL DEFAULT '',
			total_subscribers TEXT        NOT NULL DEFAULT '',
			total_video_count TEXT        NOT NULL DEFAULT '',
			recent_videos     JSONB       NOT NULL DEFAULT '[]',
			fetched_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS users (
			id            BIGSERIAL PRIMARY KEY,
			username      TEXT        UNIQUE NOT NULL,
			password_hash TEXT        NOT NULL,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
	`)
	if err != nil {
		return fmt.Errorf("bootstrap schema: %w", err)
	}
	return nil
}
