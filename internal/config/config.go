// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // TRAININGPANEL_TIMEZONE must resolve on hosts without a zoneinfo database.
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	RecordsPath   string
	Location      *time.Location
	UpcomingDays  int
	LogLevel      slog.Level
	WatchDebounce time.Duration
}

// Load reads configuration from environment variables and returns a validated Config.
// All variables are optional: TRAININGPANEL_RECORDS_PATH (records.yaml),
// TRAININGPANEL_TIMEZONE (UTC), TRAININGPANEL_UPCOMING_DAYS (30),
// TRAININGPANEL_LOG_LEVEL (info), TRAININGPANEL_WATCH_DEBOUNCE (250ms).
func Load() (*Config, error) {
	recordsPath := "records.yaml"
	if v, ok := os.LookupEnv("TRAININGPANEL_RECORDS_PATH"); ok && v != "" {
		recordsPath = v
	}

	loc := time.UTC
	if v, ok := os.LookupEnv("TRAININGPANEL_TIMEZONE"); ok && v != "" {
		parsed, err := time.LoadLocation(v)
		if err != nil {
			return nil, fmt.Errorf("TRAININGPANEL_TIMEZONE has invalid location %q: %w", v, err)
		}
		loc = parsed
	}

	upcomingDays := 30
	if v, ok := os.LookupEnv("TRAININGPANEL_UPCOMING_DAYS"); ok {
		parsed, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return nil, fmt.Errorf("TRAININGPANEL_UPCOMING_DAYS has invalid number %q: %w", v, err)
		}
		if parsed < 0 {
			return nil, fmt.Errorf("TRAININGPANEL_UPCOMING_DAYS must not be negative, got %d", parsed)
		}
		upcomingDays = parsed
	}

	logLevel := slog.LevelInfo
	if v, ok := os.LookupEnv("TRAININGPANEL_LOG_LEVEL"); ok && v != "" {
		if err := logLevel.UnmarshalText([]byte(v)); err != nil {
			return nil, fmt.Errorf("TRAININGPANEL_LOG_LEVEL has invalid level %q: %w", v, err)
		}
	}

	watchDebounce := 250 * time.Millisecond
	if v, ok := os.LookupEnv("TRAININGPANEL_WATCH_DEBOUNCE"); ok {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("TRAININGPANEL_WATCH_DEBOUNCE has invalid duration %q: %w", v, err)
		}
		if parsed <= 0 {
			return nil, fmt.Errorf("TRAININGPANEL_WATCH_DEBOUNCE must be positive, got %s", parsed)
		}
		watchDebounce = parsed
	}

	return &Config{
		RecordsPath:   recordsPath,
		Location:      loc,
		UpcomingDays:  upcomingDays,
		LogLevel:      logLevel,
		WatchDebounce: watchDebounce,
	}, nil
}
