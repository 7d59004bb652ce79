package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func geminiFixture(t *testing.T, reply string, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.True(t, strings.Contains(r.URL.Path, ":generateContent"))
		require.Equal(t, "test-key", r.URL.Query().Get("key"))

		var req geminiRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotEmpty(t, req.Contents)

		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []any{map[string]any{
				"content": map[string]any{
					"parts": []any{map[string]string{"text": reply}},
				},
			}},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestChatSend_PassesMessageThrough(t *testing.T) {
	srv := geminiFixture(t, "hello from the model", http.StatusOK)
	svc := NewChatService("test-key", srv.URL)

	reply, err := svc.Send(context.Background(), "hi")
	require.NoError(t, err)
	assert.Equal(t, "hello from the model", reply)
}

func TestChatSend_UpstreamErrorSurfaces(t *testing.T) {
	srv := geminiFixture(t, "", http.StatusInternalServerError)
	svc := NewChatService("test-key", srv.URL)

	_, err := svc.Send(context.Background(), "hi")
	require.Error(t, err)
}

func TestChatSend_EmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	t.Cleanup(srv.Close)

	svc := NewChatService("test-key", srv.URL)
	_, err := svc.Send(context.Background(), "hi")
	require.ErrorIs(t, err, ErrEmptyReply)
}
