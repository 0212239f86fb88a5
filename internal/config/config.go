package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	SeatScopeBooking = "booking"
	SeatScopeFlight  = "flight"
)

const (
	defaultAppEnv          = "dev"
	defaultPort            = "8080"
	defaultDatabaseURL     = "flightbooking.db"
	defaultJWTSecret       = "change-me-jwt-secret"
	defaultJWTTTL          = "24h"
	defaultSeatCapacity    = "48"
	defaultSeatScope       = SeatScopeBooking
	defaultShutdownTimeout = "15s"
)

type Config struct {
	AppEnv      string
	Port        string
	DatabaseURL string
	JWTSecret   string
	JWTTTL      time.Duration

	// DefaultSeatCapacity is used whenever a flight's capacity cannot be
	// resolved, so seat validation still runs instead of failing the request.
	DefaultSeatCapacity int
	// SeatUniquenessScope selects the write-path duplicate check: "booking"
	// only rejects a seat repeated within one booking, "flight" also rejects
	// seats already occupied on the same flight instance.
	SeatUniquenessScope string

	CORSAllowedOrigins []string
	ShutdownTimeout    time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{}
	cfg.AppEnv = strings.ToLower(strings.TrimSpace(getEnv("APP_ENV", defaultAppEnv)))
	cfg.Port = strings.TrimSpace(getEnv("API_PORT", defaultPort))
	cfg.DatabaseURL = strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL))
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))
	cfg.SeatUniquenessScope = strings.ToLower(strings.TrimSpace(getEnv("SEAT_UNIQUENESS_SCOPE", defaultSeatScope)))
	cfg.CORSAllowedOrigins = splitList(os.Getenv("CORS_ALLOWED_ORIGINS"))

	var err error
	cfg.JWTTTL, err = parseDurationEnv("JWT_TTL", defaultJWTTTL)
	if err != nil {
		return nil, err
	}
	cfg.ShutdownTimeout, err = parseDurationEnv("SHUTDOWN_TIMEOUT", defaultShutdownTimeout)
	if err != nil {
		return nil, err
	}
	cfg.DefaultSeatCapacity, err = parseIntEnv("DEFAULT_SEAT_CAPACITY", defaultSeatCapacity)
	if err != nil {
		return nil, err
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	log.Printf("config loaded: env=%s port=%s default_seat_capacity=%d seat_scope=%s",
		cfg.AppEnv, cfg.Port, cfg.DefaultSeatCapacity, cfg.SeatUniquenessScope)

	return cfg, nil
}

// FlightWideSeatCheck reports whether seat uniqueness is enforced across the
// whole flight instance on the write path.
func (c *Config) FlightWideSeatCheck() bool {
	return c.SeatUniquenessScope == SeatScopeFlight
}

func validateConfig(cfg *Config) error {
	if cfg.Port == "" {
		return fmt.Errorf("API_PORT must not be empty")
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must not be empty")
	}
	if cfg.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be > 0")
	}
	if cfg.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be > 0")
	}
	if cfg.DefaultSeatCapacity <= 0 {
		return fmt.Errorf("DEFAULT_SEAT_CAPACITY must be > 0")
	}
	if cfg.SeatUniquenessScope != SeatScopeBooking && cfg.SeatUniquenessScope != SeatScopeFlight {
		return fmt.Errorf("SEAT_UNIQUENESS_SCOPE must be one of: booking, flight")
	}

	if isProdLike(cfg.AppEnv) && isEmptyOrDefault(cfg.JWTSecret, defaultJWTSecret) {
		return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
	}

	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func parseIntEnv(name, fallback string) (int, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return n, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
