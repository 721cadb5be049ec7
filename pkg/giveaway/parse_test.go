package giveaway

import (
	"testing"
	"time"
)

// TestParseDuration verifies the accepted duration formats
func TestParseDuration(t *testing.T) {
	cases := []struct {
		raw  string
		want time.Duration
	}{
		{"30s", 30 * time.Second},
		{"45secs", 45 * time.Second},
		{"10m", 10 * time.Minute},
		{"5min", 5 * time.Minute},
		{"2h", 2 * time.Hour},
		{"1hr", time.Hour},
		{"2hours", 2 * time.Hour},
		{"1d", 24 * time.Hour},
		{"3days", 72 * time.Hour},
		{"10M", 10 * time.Minute},  // case insensitive
		{" 10m ", 10 * time.Minute}, // trimmed
	}

	for _, c := range cases {
		got, err := ParseDuration(c.raw)
		if err != nil {
			t.Errorf("ParseDuration(%q) error: %v", c.raw, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseDuration(%q) = %v, want %v", c.raw, got, c.want)
		}
	}
}

// TestParseDurationRejects verifies malformed input is rejected
func TestParseDurationRejects(t *testing.T) {
	for _, raw := range []string{
		"", "10", "h", "2x", "1.5h", "-5m", "0s", "2h30m", "10 m", "m10",
	} {
		if _, err := ParseDuration(raw); err == nil {
			t.Errorf("ParseDuration(%q) should fail", raw)
		} else if !IsValidation(err) {
			t.Errorf("ParseDuration(%q) error should be a validation error, got %v", raw, err)
		}
	}
}

// TestFormatDuration verifies the compact rendering
func TestFormatDuration(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{0, "0s"},
		{-5 * time.Second, "0s"},
		{45 * time.Second, "45s"},
		{61 * time.Second, "1m 1s"},
		{10 * time.Minute, "10m"},
		{2 * time.Hour, "2h"},
		{51 * time.Hour, "2d 3h"},
		{24*time.Hour + time.Minute + time.Second, "1d 1m 1s"},
	}

	for _, c := range cases {
		if got := FormatDuration(c.d); got != c.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", c.d, got, c.want)
		}
	}
}
