package config

import (
	"os"
	"strconv"
	"time"
)

// Config captures everything the server needs from the environment so main
// stays lean.
type Config struct {
	Addr string

	// PostgresURL is the DSN for the staging and public salary stores.
	// When empty the server falls back to in-memory stores (dev mode).
	PostgresURL string

	// RedisURL enables the cross-process denylist snapshot cache.
	// Empty disables caching; the feed is then fetched directly.
	RedisURL string

	// Identity service (one-time link issuance and token exchange).
	IdentityURL       string
	IdentityJWTSecret string

	// ConfirmReturnURL is where the one-time link sends the browser back.
	ConfirmReturnURL string

	// DenylistFeedURL is the plain-text list of free/personal email domains.
	DenylistFeedURL string
	DenylistTTL     time.Duration

	// PendingRetention bounds how long an unconfirmed submission may live
	// before the sweeper purges it.
	PendingRetention time.Duration
}

const (
	defaultDenylistFeedURL = "https://raw.githubusercontent.com/willwhite/freemail/master/data/free.txt"
	defaultRetention       = 6 * 24 * time.Hour
)

// FromEnv builds a Config from environment variables, applying development
// defaults where unset.
func FromEnv() Config {
	cfg := Config{
		Addr:              envOr("SALAIRE_ADDR", ":8080"),
		PostgresURL:       os.Getenv("SALAIRE_POSTGRES_URL"),
		RedisURL:          os.Getenv("SALAIRE_REDIS_URL"),
		IdentityURL:       envOr("SALAIRE_IDENTITY_URL", "http://localhost:9999"),
		IdentityJWTSecret: envOr("SALAIRE_IDENTITY_JWT_SECRET", "dev-secret-change-in-production"),
		ConfirmReturnURL:  envOr("SALAIRE_CONFIRM_RETURN_URL", "http://localhost:8080/confirm"),
		DenylistFeedURL:   envOr("SALAIRE_DENYLIST_FEED_URL", defaultDenylistFeedURL),
		DenylistTTL:       envDurationOr("SALAIRE_DENYLIST_TTL", 24*time.Hour),
		PendingRetention:  envDurationOr("SALAIRE_PENDING_RETENTION", defaultRetention),
	}
	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if hours, err := strconv.Atoi(v); err == nil {
		return time.Duration(hours) * time.Hour
	}
	return fallback
}
