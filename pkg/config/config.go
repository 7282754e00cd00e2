package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/portfolio-site/pkg/format"
	"github.com/portfolio-site/pkg/snapshot"
)

type Config struct {
	// Token dashboard
	SnapshotURL  string
	PollInterval time.Duration
	FetchTimeout time.Duration
	DropStale    bool // discard responses older than the last applied one

	// RefreshCooldown is the minimum gap between manual refreshes across
	// all visitors.
	RefreshCooldown time.Duration

	// Outbound links
	ExplorerURL string
	ChartURL    string

	// Display
	DisplayLocation *time.Location

	// Site server
	Port int
	// TrustForwarded keys per-client limits on X-Forwarded-For. Only set it
	// behind a proxy that overwrites the header.
	TrustForwarded bool

	// Contact form
	DBPath            string
	ContactDelay      time.Duration
	ContactRatePerMin int

	// Logging
	LogLevel zerolog.Level
	LogFile  string // terminal dashboard only
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		SnapshotURL:  envOr("TOKEN_SNAPSHOT_URL", snapshot.DefaultURL),
		PollInterval: time.Duration(envInt("TOKEN_POLL_INTERVAL", 30)) * time.Second,
		FetchTimeout: time.Duration(envInt("TOKEN_FETCH_TIMEOUT", 20)) * time.Second,
		DropStale:    envBool("TOKEN_DROP_STALE", true),

		RefreshCooldown: time.Duration(envInt("TOKEN_REFRESH_COOLDOWN", 5)) * time.Second,

		ExplorerURL: envOr("EXPLORER_URL", format.DefaultExplorerURL),
		ChartURL:    envOr("CHART_URL", format.DefaultChartURL),

		Port:           envInt("PORT", 8080),
		TrustForwarded: envBool("TRUST_FORWARDED", false),

		DBPath:            envOr("DB_PATH", "portfolio.db"),
		ContactDelay:      time.Duration(envInt("CONTACT_DELAY_MS", 1000)) * time.Millisecond,
		ContactRatePerMin: envInt("CONTACT_RATE_PER_MIN", 5),

		LogFile: envOr("LOG_FILE", "tokenwatch.log"),
	}

	loc, err := loadLocation(os.Getenv("DISPLAY_TZ"))
	if err != nil {
		return nil, err
	}
	cfg.DisplayLocation = loc

	lvl, err := zerolog.ParseLevel(strings.ToLower(envOr("LOG_LEVEL", "info")))
	if err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	cfg.LogLevel = lvl

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.PollInterval <= 0 {
		return fmt.Errorf("poll interval must be positive, got %s", c.PollInterval)
	}
	u, err := url.Parse(c.SnapshotURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid snapshot url %q", c.SnapshotURL)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	return nil
}

func (c *Config) Links() format.Links {
	return format.Links{ExplorerBase: c.ExplorerURL, ChartBase: c.ChartURL}
}

func loadLocation(name string) (*time.Location, error) {
	if name == "" || strings.EqualFold(name, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("DISPLAY_TZ: %w", err)
	}
	return loc, nil
}

// helpers
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
