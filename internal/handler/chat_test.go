package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nithish-ponnusamy/final-devops/internal/model"
	"github.com/Nithish-ponnusamy/final-devops/internal/service"
)

func newChatApp(baseURL string) *fiber.App {
	app := fiber.New()
	h := NewChatHandler(service.NewChatService("test-key", baseURL))
	app.Post("/chat", h.Chat)
	return app
}

func geminiFixture(t *testing.T, reply string, status int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]string{{"text": reply}}}},
			},
		})
	}))
}

func TestChat_PassThrough(t *testing.T) {
	upstream := geminiFixture(t, "hello from the model", http.StatusOK)
	defer upstream.Close()
	app := newChatApp(upstream.URL)

	resp, raw := doJSON(t, app, "POST", "/chat", model.ChatRequest{Message: "hi"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got model.ChatResponse
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, "hello from the model", got.Reply)
}

func TestChat_EmptyMessage(t *testing.T) {
	app := newChatApp("http://127.0.0.1:0")

	resp, raw := doJSON(t, app, "POST", "/chat", model.ChatRequest{Message: "   "})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_FIELD", errorCode(t, raw))
}

func TestChat_UpstreamFailure(t *testing.T) {
	upstream := geminiFixture(t, "", http.StatusInternalServerError)
	defer upstream.Close()
	app := newChatApp(upstream.URL)

	resp, raw := doJSON(t, app, "POST", "/chat", model.ChatRequest{Message: "hi"})
	require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "INTERNAL_ERROR", errorCode(t, raw))
}
