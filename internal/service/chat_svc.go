package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com"

const geminiModel = "gemini-1.5-flash"

// ErrEmptyReply means the upstream answered but produced no candidate text.
var ErrEmptyReply = errors.New("chat: upstream returned no reply")

// ChatService forwards one message to the generative-text API and returns its
// reply verbatim. No conversation state, no retries — the contract is a pure
// pass-through.
type ChatService struct {
	http *resty.Client
	key  string
}

// NewChatService builds the pass-through client. baseURL is overridable for
// tests; empty means the real endpoint.
func NewChatService(apiKey, baseURL string) *ChatService {
	if baseURL == "" {
		baseURL = defaultGeminiBaseURL
	}
	http := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30 * time.Second)

	return &ChatService{http: http, key: apiKey}
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// Send submits one message and returns the model's text reply.
func (s *ChatService) Send(ctx context.Context, message string) (string, error) {
	var out geminiResponse
	resp, err := s.http.R().
		SetContext(ctx).
		SetQueryParam("key", s.key).
		SetBody(geminiRequest{
			Contents: []geminiContent{{Parts: []geminiPart{{Text: message}}}},
		}).
		SetResult(&out).
		Post(fmt.Sprintf("/v1beta/models/%s:generateContent", geminiModel))
	if err != nil {
		return "", fmt.Errorf("chat: request failed: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("chat: upstream returned %d", resp.StatusCode())
	}

	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyReply
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}
