package logger

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestNewLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"info", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel}, // unrecognized falls back to info
	}

	for _, tt := range tests {
		t.Run("level "+tt.level, func(t *testing.T) {
			if got := New(tt.level, "json").GetLevel(); got != tt.expected {
				t.Errorf("New(%q).GetLevel() = %v, want %v", tt.level, got, tt.expected)
			}
		})
	}
}

func TestNewPrettyFormat(t *testing.T) {
	// Format only changes the writer; level handling is shared.
	if got := New("debug", "pretty").GetLevel(); got != zerolog.DebugLevel {
		t.Errorf("New(debug, pretty).GetLevel() = %v, want debug", got)
	}
}
