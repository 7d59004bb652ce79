package model

import "time"

// Post is a single scraped post with its sentiment enrichment. LikeCount is
// kept as the raw display text ("1.2K") — the source formats counters in a
// locale-dependent way that is lossy to parse.
type Post struct {
	Text                 string  `json:"text"`
	PostedAt             *string `json:"postedAt"`
	LikeCount            string  `json:"likeCount"`
	SentimentScore       int     `json:"sentimentScore"`
	SentimentComparative float64 `json:"sentimentComparative"`
}

// ProfileRecord is the aggregate produced by one scrape of a public profile.
// Counter fields mirror whatever display text the page renders. Posts are
// most-recent-first, at most the configured maximum.
type ProfileRecord struct {
	Username       string    `json:"username"`
	PostCount      string    `json:"postCount"`
	AvatarURL      string    `json:"avatarUrl"`
	FollowingCount string    `json:"followingCount"`
	FollowerCount  string    `json:"followerCount"`
	JoinedLabel    string    `json:"joinedLabel"`
	Bio            string    `json:"bio"`
	Posts          []Post    `json:"posts"`
	FetchedAt      time.Time `json:"fetchedAt"`
}

// ProfileRequest is the API request body for POST /get_profile.
type ProfileRequest struct {
	Username string `json:"username"`
}
