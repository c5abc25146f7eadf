package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/storekeeper/internal/common"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() *Config {
	c := &Config{}
	c.LoadDefaults()
	return c
}

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.Equal(t, "sqlite", c.DatabaseDriver)
	assert.Equal(t, 5, c.PageSize)
	assert.EqualValues(t, 1000, c.TaxRateBasisPoints)
	assert.Equal(t, 5*time.Second, c.QueryTimeout)
	assert.Equal(t, "slog", c.LogBackend)
	assert.Equal(t, "storekeeper.log", c.LogFile)
	assert.False(t, c.Seed)
	require.NoError(t, c.Validate())
}

func TestLoadConfig_NoArgs(t *testing.T) {
	assert.Empty(t, cmp.Diff(defaults(), LoadConfig(nil)))
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		expected    func(c *Config)
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"-d", "pgx", "-dsn", "postgres://u@h/db", "-p", "3", "-tax", "750", "-timeout", "2s",
				"-log-level", "debug", "-log-backend", "logrus", "-log-file", "-", "-metrics-file", "sk.prom", "-seed"},
			expected: func(c *Config) {
				c.DatabaseDriver = "pgx"
				c.DatabaseDSN = "postgres://u@h/db"
				c.PageSize = 3
				c.TaxRateBasisPoints = 750
				c.QueryTimeout = 2 * time.Second
				c.LogLevel = "debug"
				c.LogBackend = "logrus"
				c.LogFile = "-"
				c.MetricsFile = "sk.prom"
				c.Seed = true
			},
		},
		{
			name:     "config flag is skipped",
			args:     []string{"-c", "ignored.json", "-p", "9"},
			expected: func(c *Config) { c.PageSize = 9 },
		},
		{name: "bad page size", args: []string{"-p", "many"}, expectPanic: true},
		{name: "bad timeout", args: []string{"-timeout", "soon"}, expectPanic: true},
		{name: "unknown flag", args: []string{"-z"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()
			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(cfg, tt.args) })
				return
			}

			require.NotPanics(t, func() { parseFlags(cfg, tt.args) })
			want := defaults()
			tt.expected(want)
			assert.Empty(t, cmp.Diff(want, cfg))
		})
	}
}

func TestParseJson(t *testing.T) {
	path := writeTempJSON(t, map[string]any{
		"database_driver": "pgx",
		"database_dsn":    "postgres://localhost/sk",
		"page_size":       2,
		"tax_rate_bps":    0,
		"query_timeout":   "750ms",
		"log_backend":     "logrus",
		"seed":            true,
	})

	cfg := defaults()
	parseJson(cfg, []string{"-config", path})

	want := defaults()
	want.DatabaseDriver = "pgx"
	want.DatabaseDSN = "postgres://localhost/sk"
	want.PageSize = 2
	want.TaxRateBasisPoints = 0
	want.QueryTimeout = 750 * time.Millisecond
	want.LogBackend = "logrus"
	want.Seed = true
	assert.Empty(t, cmp.Diff(want, cfg))
}

func TestParseJson_NoFlagNoChange(t *testing.T) {
	cfg := defaults()
	parseJson(cfg, []string{"-p", "3"})
	assert.Empty(t, cmp.Diff(defaults(), cfg))
}

func TestParseJson_Panics(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.json")
	require.Panics(t, func() { parseJson(defaults(), []string{"-c", missing}) })

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"page_size": "five"}`), 0o600))
	require.Panics(t, func() { parseJson(defaults(), []string{"-c", bad}) })
}

func TestLoadConfig_FlagsOverrideJson(t *testing.T) {
	path := writeTempJSON(t, map[string]any{"page_size": 2, "log_level": "warn"})

	cfg := LoadConfig([]string{"-c", path, "-p", "7"})
	assert.Equal(t, 7, cfg.PageSize)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{name: "driver", mutate: func(c *Config) { c.DatabaseDriver = "oracle" }},
		{name: "dsn", mutate: func(c *Config) { c.DatabaseDSN = "" }},
		{name: "zero page size", mutate: func(c *Config) { c.PageSize = 0 }},
		{name: "negative page size", mutate: func(c *Config) { c.PageSize = -2 }},
		{name: "negative tax", mutate: func(c *Config) { c.TaxRateBasisPoints = -1 }},
		{name: "negative timeout", mutate: func(c *Config) { c.QueryTimeout = -time.Second }},
		{name: "log backend", mutate: func(c *Config) { c.LogBackend = "zap" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := defaults()
			tt.mutate(c)
			require.ErrorIs(t, c.Validate(), common.ErrInvalidConfiguration)
		})
	}
}
