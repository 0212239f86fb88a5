package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeInstant(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	in := time.Date(2025, 12, 15, 11, 30, 0, 123456789, loc)

	got := NormalizeInstant(in)

	assert.Equal(t, time.UTC, got.Location())
	assert.Equal(t, time.Date(2025, 12, 15, 6, 0, 0, 123000000, time.UTC), got)
	assert.True(t, got.Equal(NormalizeInstant(got)))
}

func TestParseInstant(t *testing.T) {
	a, err := ParseInstant("2025-12-15T06:00:00Z")
	require.NoError(t, err)
	b, err := ParseInstant(" 2025-12-15T11:30:00+05:30 ")
	require.NoError(t, err)
	assert.Equal(t, a, b)

	_, err = ParseInstant("")
	assert.Error(t, err)
	_, err = ParseInstant("15/12/2025")
	assert.Error(t, err)
}

func TestParseDay(t *testing.T) {
	d, err := ParseDay("2025-12-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 12, 15, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDay("2025-13-01")
	assert.Error(t, err)
}
