// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/HendryAvila/briefcheck/internal/analyzer"
	"github.com/HendryAvila/briefcheck/internal/briefs"
	"github.com/joho/godotenv"
)

// Config holds every setting the binaries read at startup.
type Config struct {
	DataDir          string
	HTTPAddr         string
	AnalysisDelay    time.Duration
	LogLevel         string
	DefaultMode      analyzer.Mode
	MaxSearchResults int
}

// Load reads an optional .env file from the working directory, then the
// BRIEFCHECK_* environment variables. Variables already set in the
// environment win over .env entries.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (*Config, error) {
	delay, err := envDuration("BRIEFCHECK_ANALYSIS_DELAY", 0)
	if err != nil {
		return nil, err
	}
	maxResults, err := envInt("BRIEFCHECK_MAX_SEARCH_RESULTS", 20)
	if err != nil {
		return nil, err
	}
	mode, err := analyzer.ParseMode(strings.ToLower(envString("BRIEFCHECK_DEFAULT_MODE", "")))
	if err != nil {
		return nil, fmt.Errorf("BRIEFCHECK_DEFAULT_MODE: %w", err)
	}

	cfg := &Config{
		DataDir:          envString("BRIEFCHECK_DATA_DIR", defaultDataDir()),
		HTTPAddr:         envString("BRIEFCHECK_HTTP_ADDR", ":8080"),
		AnalysisDelay:    delay,
		LogLevel:         envString("BRIEFCHECK_LOG_LEVEL", "info"),
		DefaultMode:      mode,
		MaxSearchResults: maxResults,
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Store returns the briefs store configuration.
func (c *Config) Store() briefs.Config {
	return briefs.Config{
		DataDir:          c.DataDir,
		MaxSearchResults: c.MaxSearchResults,
	}
}

func (c *Config) validate() error {
	if c.AnalysisDelay < 0 {
		return fmt.Errorf("BRIEFCHECK_ANALYSIS_DELAY must not be negative, got %s", c.AnalysisDelay)
	}
	if c.MaxSearchResults <= 0 {
		return fmt.Errorf("BRIEFCHECK_MAX_SEARCH_RESULTS must be positive, got %d", c.MaxSearchResults)
	}
	if c.DataDir == "" {
		return fmt.Errorf("BRIEFCHECK_DATA_DIR is empty and no home directory is available")
	}
	return nil
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".briefcheck")
}

func envString(key, defaultVal string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return defaultVal
}

func envInt(key string, defaultVal int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return defaultVal, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, v)
	}
	return i, nil
}

func envDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration like 2s, got %q", key, v)
	}
	return d, nil
}
