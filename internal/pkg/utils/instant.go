package utils

import (
	"fmt"
	"strings"
	"time"
)

// NormalizeInstant brings a timestamp to UTC at millisecond precision.
// Departure instants are compared for exact equality in the store, so every
// write and every query goes through here.
func NormalizeInstant(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

// ParseInstant accepts RFC 3339 (with or without fractional seconds).
func ParseInstant(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	return NormalizeInstant(t), nil
}

// ParseDay parses a YYYY-MM-DD date as midnight UTC.
func ParseDay(s string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return d.UTC(), nil
}
