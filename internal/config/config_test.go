package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"APP_ENV", "API_PORT", "DATABASE_URL", "JWT_SECRET", "JWT_TTL",
		"DEFAULT_SEAT_CAPACITY", "SEAT_UNIQUENESS_SCOPE", "CORS_ALLOWED_ORIGINS", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 48, cfg.DefaultSeatCapacity)
	assert.Equal(t, SeatScopeBooking, cfg.SeatUniquenessScope)
	assert.False(t, cfg.FlightWideSeatCheck())
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Empty(t, cfg.CORSAllowedOrigins)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DEFAULT_SEAT_CAPACITY", "180")
	t.Setenv("SEAT_UNIQUENESS_SCOPE", "Flight")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 180, cfg.DefaultSeatCapacity)
	assert.True(t, cfg.FlightWideSeatCheck())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string][2]string{
		"zero capacity":    {"DEFAULT_SEAT_CAPACITY", "0"},
		"non-int capacity": {"DEFAULT_SEAT_CAPACITY", "many"},
		"unknown scope":    {"SEAT_UNIQUENESS_SCOPE", "airline"},
		"bad ttl":          {"JWT_TTL", "forever"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv(kv[0], kv[1])
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadProdRequiresSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("JWT_SECRET", "a-real-secret")
	_, err = Load()
	assert.NoError(t, err)
}
