package slug

import (
	"testing"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple name",
			input:    "Bondi Beach Runners",
			expected: "bondi-beach-runners",
		},
		{
			name:     "punctuation collapsed",
			input:    "5AM Rise & Run!!",
			expected: "5am-rise-run",
		},
		{
			name:     "leading and trailing punctuation stripped",
			input:    "  (The) Harriers  ",
			expected: "the-harriers",
		},
		{
			name:     "multiple separator runs collapse to one hyphen",
			input:    "North -- South // Club",
			expected: "north-south-club",
		},
		{
			name:     "already a slug",
			input:    "darebin-parklands-pacers",
			expected: "darebin-parklands-pacers",
		},
		{
			name:     "digits kept",
			input:    "Run 4 Fun 2024",
			expected: "run-4-fun-2024",
		},
		{
			name:     "all punctuation yields empty",
			input:    "!!! ???",
			expected: "",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Make(tt.input)
			if got != tt.expected {
				t.Errorf("Make(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
