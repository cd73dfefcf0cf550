// Package config loads environment configuration, the database connection
// and the process logger.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port        string
	DatabaseURL string
	GinMode     string
	LogLevel    string
	CORSOrigins []string

	CronSecret    string
	AuthJWTSecret string

	RedisURL     string
	PageCacheTTL time.Duration

	FetchTimeout    time.Duration
	ITFFetchTimeout time.Duration
	FetchDelay      time.Duration
	FetchUserAgent  string
	BrowserFetch    bool
	ChromeWSURL     string

	SyncRankingsSchedule string // cron spec with seconds, empty = off
	SyncITFSchedule      string
}

// Load reads the environment. DATABASE_URL is required, everything else
// has a default.
func Load() (*Config, error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	cfg := &Config{
		Port:                 getEnv("PORT", "8080"),
		DatabaseURL:          dbURL,
		GinMode:              os.Getenv("GIN_MODE"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		CORSOrigins:          splitList(getEnv("CORS_ORIGINS", "*")),
		CronSecret:           os.Getenv("CRON_SECRET"),
		AuthJWTSecret:        os.Getenv("AUTH_JWT_SECRET"),
		RedisURL:             os.Getenv("REDIS_URL"),
		FetchUserAgent:       os.Getenv("FETCH_USER_AGENT"),
		ChromeWSURL:          os.Getenv("CHROME_WS_URL"),
		SyncRankingsSchedule: os.Getenv("SYNC_RANKINGS_SCHEDULE"),
		SyncITFSchedule:      os.Getenv("SYNC_ITF_SCHEDULE"),
	}

	var err error
	if cfg.PageCacheTTL, err = getDuration("PAGE_CACHE_TTL", 10*time.Minute); err != nil {
		return nil, err
	}
	if cfg.FetchTimeout, err = getDuration("FETCH_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.ITFFetchTimeout, err = getDuration("ITF_FETCH_TIMEOUT", 15*time.Second); err != nil {
		return nil, err
	}
	if cfg.FetchDelay, err = getDuration("FETCH_DELAY", 500*time.Millisecond); err != nil {
		return nil, err
	}

	if s := os.Getenv("BROWSER_FETCH"); s != "" {
		v, err := strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("BROWSER_FETCH must be a boolean, got %q", s)
		}
		cfg.BrowserFetch = v
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("%s must be a non-negative duration, got %q", key, s)
	}
	return d, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
