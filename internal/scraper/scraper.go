// Package scraper turns one browser session into one ProfileRecord. The
// orchestration is adapter-agnostic; everything markup-specific lives behind
// SiteAdapter.
package scraper

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/Nithish-ponnusamy/final-devops/internal/model"
	"github.com/Nithish-ponnusamy/final-devops/pkg/sentiment"
)

// Session is the slice of a browser session the scraper drives. Production
// code passes *browser.Session; tests pass a fixture.
type Session interface {
	Navigate(url string) error
	WaitForElement(selector string, timeout time.Duration) error
	Extract(script string, out interface{}) error
	Close()
}

// SessionFactory opens a fresh isolated session for one request. Sessions are
// deliberately not pooled: shared DOM state between concurrent scrapes is
// worse than the launch cost.
type SessionFactory func(ctx context.Context) (Session, error)

// Options configures a ProfileScraper.
type Options struct {
	// MaxPosts caps how many posts are extracted. Zero means 10.
	MaxPosts int
	// WaitTimeout bounds each selector wait. Zero means 10s.
	WaitTimeout time.Duration
}

// ProfileScraper orchestrates a scoped browser session against one profile
// page and enriches each extracted post with a sentiment score.
type ProfileScraper struct {
	open    SessionFactory
	adapter SiteAdapter
	opts    Options
	logger  zerolog.Logger
}

// New creates a ProfileScraper.
func New(open SessionFactory, adapter SiteAdapter, opts Options, logger zerolog.Logger) *ProfileScraper {
	if opts.MaxPosts <= 0 {
		opts.MaxPosts = 10
	}
	if opts.WaitTimeout <= 0 {
		opts.WaitTimeout = 10 * time.Second
	}
	return &ProfileScraper{open: open, adapter: adapter, opts: opts, logger: logger}
}

// ScrapeProfile fetches the profile summary and the most recent posts for
// username. The summary is mandatory; posts are best-effort — if the feed
// never renders, the record comes back with an empty post list rather than an
// error. The session is closed on every path before any error propagates.
func (s *ProfileScraper) ScrapeProfile(ctx context.Context, username string) (*model.ProfileRecord, error) {
	sess, err := s.open(ctx)
	if err != nil {
		return nil, &ScrapeError{Username: username, Reason: ReasonLaunch, Err: err}
	}
	defer sess.Close()

	url := s.adapter.ProfileURL(username)
	if err := sess.Navigate(url); err != nil {
		return nil, &ScrapeError{Username: username, Reason: ReasonNavigation, Err: err}
	}

	if err := sess.WaitForElement(s.adapter.SummarySelector(), s.opts.WaitTimeout); err != nil {
		return nil, &ScrapeError{Username: username, Reason: ReasonLayout, Err: err}
	}

	var summary profileSummary
	if err := sess.Extract(s.adapter.SummaryScript(username), &summary); err != nil {
		return nil, &ScrapeError{Username: username, Reason: ReasonExtraction, Err: err}
	}

	record := &model.ProfileRecord{
		Username:       username,
		PostCount:      summary.PostCount,
		AvatarURL:      summary.AvatarURL,
		FollowingCount: summary.FollowingCount,
		FollowerCount:  summary.FollowerCount,
		JoinedLabel:    summary.JoinedLabel,
		Bio:            summary.Bio,
		Posts:          []model.Post{},
	}

	record.Posts = s.scrapePosts(sess, username)
	return record, nil
}

// scrapePosts extracts and enriches the post feed. Any failure here degrades
// to an empty list: the summary alone is still a meaningful result.
func (s *ProfileScraper) scrapePosts(sess Session, username string) []model.Post {
	if err := sess.WaitForElement(s.adapter.PostsSelector(), s.opts.WaitTimeout); err != nil {
		s.logger.Warn().Err(err).Str("username", username).
			Str("adapter", s.adapter.Name()).
			Msg("post feed never rendered, returning summary only")
		return []model.Post{}
	}

	var raw []rawPost
	if err := sess.Extract(s.adapter.PostsScript(s.opts.MaxPosts), &raw); err != nil {
		s.logger.Warn().Err(err).Str("username", username).
			Msg("post extraction failed, returning summary only")
		return []model.Post{}
	}

	posts := make([]model.Post, 0, len(raw))
	for _, r := range raw {
		res := sentiment.Score(r.Text)

		var postedAt *string
		if r.PostedAt != "" {
			v := r.PostedAt
			postedAt = &v
		}

		posts = append(posts, model.Post{
			Text:                 r.Text,
			PostedAt:             postedAt,
			LikeCount:            r.LikeCount,
			SentimentScore:       res.Score,
			SentimentComparative: res.Comparative,
		})
	}
	return posts
}
