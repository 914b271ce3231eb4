package config_test

import (
	"testing"
	"time"

	"github.com/HendryAvila/briefcheck/internal/analyzer"
	"github.com/HendryAvila/briefcheck/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Load reads so the host environment cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"BRIEFCHECK_DATA_DIR",
		"BRIEFCHECK_HTTP_ADDR",
		"BRIEFCHECK_ANALYSIS_DELAY",
		"BRIEFCHECK_LOG_LEVEL",
		"BRIEFCHECK_DEFAULT_MODE",
		"BRIEFCHECK_MAX_SEARCH_RESULTS",
	} {
		t.Setenv(k, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("BRIEFCHECK_DATA_DIR", t.TempDir())

	cfg, err := config.FromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, time.Duration(0), cfg.AnalysisDelay)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, analyzer.ModeQuick, cfg.DefaultMode.Type)
	assert.Equal(t, 20, cfg.MaxSearchResults)
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv("BRIEFCHECK_DATA_DIR", dir)
	t.Setenv("BRIEFCHECK_HTTP_ADDR", "127.0.0.1:9090")
	t.Setenv("BRIEFCHECK_ANALYSIS_DELAY", "2s")
	t.Setenv("BRIEFCHECK_LOG_LEVEL", "debug")
	t.Setenv("BRIEFCHECK_DEFAULT_MODE", "Deep")
	t.Setenv("BRIEFCHECK_MAX_SEARCH_RESULTS", "5")

	cfg, err := config.FromEnv()
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.DataDir)
	assert.Equal(t, "127.0.0.1:9090", cfg.HTTPAddr)
	assert.Equal(t, 2*time.Second, cfg.AnalysisDelay)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, analyzer.ModeDeep, cfg.DefaultMode.Type)

	store := cfg.Store()
	assert.Equal(t, dir, store.DataDir)
	assert.Equal(t, 5, store.MaxSearchResults)
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		key, value, wantErr string
	}{
		{"BRIEFCHECK_ANALYSIS_DELAY", "soon", "BRIEFCHECK_ANALYSIS_DELAY"},
		{"BRIEFCHECK_ANALYSIS_DELAY", "-1s", "must not be negative"},
		{"BRIEFCHECK_MAX_SEARCH_RESULTS", "many", "must be an integer"},
		{"BRIEFCHECK_MAX_SEARCH_RESULTS", "0", "must be positive"},
		{"BRIEFCHECK_DEFAULT_MODE", "thorough", "unknown analysis mode"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("BRIEFCHECK_DATA_DIR", t.TempDir())
			t.Setenv(tt.key, tt.value)

			_, err := config.FromEnv()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
