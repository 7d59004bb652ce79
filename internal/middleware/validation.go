package middleware

import (
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v3"
)

// Field length limits. Username follows the x.com handle rules; the
// channel name is a free-text search query so it only gets a sanity cap.
const (
	MaxUsernameLen    = 15
	MaxChannelNameLen = 100
	MaxChatMessageLen = 4000
)

// usernameRe matches x.com handles: alphanumeric and underscore only.
// The handle is interpolated into browser-side scripts, so anything
// outside this set is rejected outright.
var usernameRe = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// ErrorResponse is a helper that returns a standard API error response.
func ErrorResponse(c fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    code,
			"message": message,
		},
	})
}

// ValidateUsername checks that a profile handle is well-formed.
// A leading "@" is stripped before validation.
func ValidateUsername(name string) (string, string) {
	name = strings.TrimSpace(name)
	name = strings.TrimPrefix(name, "@")
	if name == "" {
		return "", "username is required"
	}
	if len(name) > MaxUsernameLen {
		return "", "username must be at most 15 characters"
	}
	if !usernameRe.MatchString(name) {
		return "", "username may only contain letters, digits and underscores"
	}
	return name, ""
}

// ValidateChannelName checks a channel search query. It is sent as-is to
// the upstream search endpoint, so only emptiness, length and control
// characters are rejected.
func ValidateChannelName(name string) (string, string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", "channelName is required"
	}
	if len(name) > MaxChannelNameLen {
		return "", "channelName must be at most 100 characters"
	}
	for _, r := range name {
		if r < 0x20 || r == 0x7f {
			return "", "channelName contains invalid characters"
		}
	}
	return name, ""
}

// ValidateChatMessage checks a chat prompt.
func ValidateChatMessage(msg string) (string, string) {
	msg = strings.TrimSpace(msg)
	if msg == "" {
		return "", "message is required"
	}
	if len(msg) > MaxChatMessageLen {
		return "", "message must be at most 4000 characters"
	}
	return msg, ""
}
