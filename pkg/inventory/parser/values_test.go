package parser

import (
	"testing"
	"time"
)

func TestParseInt(t *testing.T) {
	tests := []struct {
		input    string
		expected int
		wantErr  bool
	}{
		{"123", 123, false},
		{" 42 ", 42, false},
		{"-100", -100, false},
		{"12.0", 12, false},
		{"", 0, false},
		{"12.5", 0, true},
		{"hello", 0, true},
	}

	for _, tt := range tests {
		result, err := parseInt(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseInt(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if result != tt.expected {
			t.Errorf("parseInt(%q) = %d, expected %d", tt.input, result, tt.expected)
		}
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Time
		wantErr  bool
	}{
		{"2024-05-06 07:08:09", time.Date(2024, 5, 6, 7, 8, 9, 0, time.Local), false},
		{"2024-05-06T07:08:09", time.Date(2024, 5, 6, 7, 8, 9, 0, time.Local), false},
		{"2024-05-06", time.Date(2024, 5, 6, 0, 0, 0, 0, time.Local), false},
		{"45352.5", time.Date(2024, 3, 1, 12, 0, 0, 0, time.Local), false},
		{"06/05/2024", time.Time{}, true},
		{"-3", time.Time{}, true},
		{"", time.Time{}, true},
	}

	for _, tt := range tests {
		result, err := parseDate(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && !result.Equal(tt.expected) {
			t.Errorf("parseDate(%q) = %v, expected %v", tt.input, result, tt.expected)
		}
	}
}
