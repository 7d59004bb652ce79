package model

import "time"

// VideoSummary is one recent video's snippet plus counters. The counters stay
// decimal strings exactly as the upstream API returns them — large channels
// overflow float-safe integers, so there is nothing to gain by parsing.
type VideoSummary struct {
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	PublishedAt  time.Time `json:"publishedAt"`
	LikeCount    string    `json:"likeCount"`
	CommentCount string    `json:"commentCount"`
	ViewCount    string    `json:"viewCount"`
}

// ChannelRecord is the aggregate assembled from the channel-statistics call
// and the recent-video detail fan-out. Keyed by display name: lookups go
// through the platform's search ranking, so the same name may resolve to a
// different underlying channel over time. That ambiguity is accepted.
type ChannelRecord struct {
	ChannelName      string         `json:"channelName"`
	ThumbnailURL     string         `json:"thumbnailUrl"`
	TotalViews       string         `json:"totalViews"`
	TotalSubscribers string         `json:"totalSubscribers"`
	TotalVideoCount  string         `json:"totalVideoCount"`
	RecentVideos     []VideoSummary `json:"recentVideos"`
	FetchedAt        time.Time      `json:"fetchedAt"`
}
