package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // zone lookups must not depend on the host having zoneinfo

	"github.com/bililens/backend/internal/videos"
)

// Config captures the runtime configuration for the BiliLens backend service.
type Config struct {
	AppPort        int
	LogLevel       string
	HTTPTimeout    time.Duration
	APIBaseURL     string
	TimeZone       string
	Location       *time.Location
	UserAgent      string
	Referer        string
	AllowedOrigins []string
}

// Load reads configuration from environment variables, applying sensible defaults
// for local development. Only an unknown time zone is treated as an error.
func Load() (Config, error) {
	cfg := Config{
		AppPort:        getInt("BILILENS_PORT", 8000),
		LogLevel:       getString("BILILENS_LOG_LEVEL", "info"),
		HTTPTimeout:    getDuration("BILILENS_HTTP_TIMEOUT", 10*time.Second),
		APIBaseURL:     getString("BILILENS_API_BASE_URL", videos.DefaultAPIBaseURL),
		TimeZone:       getString("BILILENS_TIMEZONE", videos.DefaultTimeZone),
		UserAgent:      getString("BILILENS_USER_AGENT", videos.DefaultUserAgent),
		Referer:        getString("BILILENS_REFERER", videos.DefaultReferer),
		AllowedOrigins: getList("BILILENS_ALLOWED_ORIGINS", []string{"*"}),
	}

	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		return Config{}, fmt.Errorf("load time zone %q: %w", cfg.TimeZone, err)
	}
	cfg.Location = loc

	return cfg, nil
}

func getString(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	i, err := strconv.Atoi(value)
	if err != nil || i <= 0 {
		return fallback
	}
	return i
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func getList(key string, fallback []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
