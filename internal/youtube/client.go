// Package youtube aggregates one channel record from the Data API v3:
// resolve display name to channel id, fetch channel statistics, then fan out
// over the most recent videos.
package youtube

import (
	"context"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultBaseURL = "https://www.googleapis.com/youtube/v3"

// Client is a thin typed wrapper over the Data API v3 endpoints the
// aggregator needs. Safe for concurrent use; the underlying resty client
// pools connections.
type Client struct {
	http *resty.Client
	key  string
}

// NewClient builds a Client. baseURL is overridable so tests can point at a
// fixture server; empty means the real API.
func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	http := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(15 * time.Second)

	return &Client{http: http, key: apiKey}
}

type searchResponse struct {
	Items []struct {
		ID struct {
			ChannelID string `json:"channelId"`
			VideoID   string `json:"videoId"`
		} `json:"id"`
	} `json:"items"`
}

type channelListResponse struct {
	Items []channelItem `json:"items"`
}

type channelItem struct {
	Snippet struct {
		Title      string `json:"title"`
		Thumbnails struct {
			Default struct {
				URL string `json:"url"`
			} `json:"default"`
		} `json:"thumbnails"`
	} `json:"snippet"`
	Statistics struct {
		ViewCount       string `json:"viewCount"`
		SubscriberCount string `json:"subscriberCount"`
		VideoCount      string `json:"videoCount"`
	} `json:"statistics"`
}

type videoListResponse struct {
	Items []videoItem `json:"items"`
}

type videoItem struct {
	Snippet struct {
		Title       string    `json:"title"`
		Description string    `json:"description"`
		PublishedAt time.Time `json:"publishedAt"`
	} `json:"snippet"`
	Statistics struct {
		ViewCount    string `json:"viewCount"`
		LikeCount    string `json:"likeCount"`
		CommentCount string `json:"commentCount"`
	} `json:"statistics"`
}

// ResolveChannelID searches the channel index by display name and returns the
// first hit's id. Empty result set maps to ErrNotFound. Which channel a name
// resolves to is at the mercy of the platform's search ranking.
func (c *Client) ResolveChannelID(ctx context.Context, displayName string) (string, error) {
	var out searchResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"part": "snippet",
			"q":    displayName,
			"type": "channel",
			"key":  c.key,
		}).
		SetResult(&out).
		Get("/search")
	if err := c.check("search", resp, err); err != nil {
		return "", err
	}

	if len(out.Items) == 0 || out.Items[0].ID.ChannelID == "" {
		return "", ErrNotFound
	}
	return out.Items[0].ID.ChannelID, nil
}

// ChannelDetails fetches statistics and snippet for a channel id.
func (c *Client) ChannelDetails(ctx context.Context, channelID string) (*channelItem, error) {
	var out channelListResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"part": "statistics,snippet",
			"id":   channelID,
			"key":  c.key,
		}).
		SetResult(&out).
		Get("/channels")
	if err := c.check("channels", resp, err); err != nil {
		return nil, err
	}

	if len(out.Items) == 0 {
		return nil, &UpstreamError{Endpoint: "channels", Status: resp.StatusCode(), Err: ErrNotFound}
	}
	return &out.Items[0], nil
}

// RecentVideoIDs returns the ids of the channel's most recently published
// videos, newest first, at most max.
func (c *Client) RecentVideoIDs(ctx context.Context, channelID string, max int) ([]string, error) {
	var out searchResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"part":       "snippet",
			"channelId":  channelID,
			"maxResults": strconv.Itoa(max),
			"order":      "date",
			"type":       "video",
			"key":        c.key,
		}).
		SetResult(&out).
		Get("/search")
	if err := c.check("search", resp, err); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(out.Items))
	for _, item := range out.Items {
		if item.ID.VideoID != "" {
			ids = append(ids, item.ID.VideoID)
		}
	}
	return ids, nil
}

// VideoDetails fetches statistics and snippet for one video id.
func (c *Client) VideoDetails(ctx context.Context, videoID string) (*videoItem, error) {
	var out videoListResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"part": "statistics,snippet",
			"id":   videoID,
			"key":  c.key,
		}).
		SetResult(&out).
		Get("/videos")
	if err := c.check("videos", resp, err); err != nil {
		return nil, err
	}

	if len(out.Items) == 0 {
		return nil, &UpstreamError{Endpoint: "videos", Status: resp.StatusCode(), Err: ErrNotFound}
	}
	return &out.Items[0], nil
}

// check folds transport errors and non-2xx statuses into UpstreamError.
func (c *Client) check(endpoint string, resp *resty.Response, err error) error {
	if err != nil {
		return &UpstreamError{Endpoint: endpoint, Err: err}
	}
	if resp.IsError() {
		return &UpstreamError{Endpoint: endpoint, Status: resp.StatusCode()}
	}
	return nil
}
