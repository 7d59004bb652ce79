package middleware

import (
	"strings"
	"testing"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid", "jack", "jack", false},
		{"valid with underscore", "news_feed01", "news_feed01", false},
		{"strips at sign", "@jack", "jack", false},
		{"trims whitespace", "  jack  ", "jack", false},
		{"empty", "", "", true},
		{"only at sign", "@", "", true},
		{"too long 16", "abcdefghij123456", "", true},
		{"exactly 15", "abcdefghij12345", "abcdefghij12345", false},
		{"dash rejected", "some-user", "", true},
		{"script injection", `x"]');alert(1`, "", true},
		{"unicode", "usér", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateUsername(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateChannelName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid", "MrBeast", "MrBeast", false},
		{"spaces allowed", "Linus Tech Tips", "Linus Tech Tips", false},
		{"unicode allowed", "café channel", "café channel", false},
		{"trims whitespace", "  veritasium ", "veritasium", false},
		{"empty", "", "", true},
		{"whitespace only", "   ", "", true},
		{"too long", strings.Repeat("a", 101), "", true},
		{"exactly 100", strings.Repeat("a", 100), strings.Repeat("a", 100), false},
		{"control chars", "abc\x00def", "", true},
		{"newline", "abc\ndef", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateChannelName(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateChatMessage(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid", "summarize this profile", "summarize this profile", false},
		{"empty", "", "", true},
		{"whitespace only", "  \n ", "", true},
		{"too long", strings.Repeat("x", 4001), "", true},
		{"exactly max", strings.Repeat("x", 4000), strings.Repeat("x", 4000), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateChatMessage(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
