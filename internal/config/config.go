package config

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/storekeeper/internal/common"
	"github.com/dmitrijs2005/storekeeper/internal/dbx"
	"github.com/dmitrijs2005/storekeeper/internal/logging"
)

// Config holds the runtime settings of one storekeeper session.
type Config struct {
	DatabaseDriver     string
	DatabaseDSN        string
	PageSize           int
	TaxRateBasisPoints int64
	QueryTimeout       time.Duration
	LogLevel           string
	LogBackend         string
	LogFile            string
	MetricsFile        string
	Seed               bool
}

// LoadDefaults populates c with the defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDriver = string(dbx.SQLite)
	c.DatabaseDSN = "file:storekeeper.db?_pragma=foreign_keys(1)&_txlock=immediate"
	c.PageSize = 5
	c.TaxRateBasisPoints = 1000
	c.QueryTimeout = 5 * time.Second
	c.LogLevel = "info"
	c.LogBackend = logging.BackendSlog
	c.LogFile = "storekeeper.log"
	c.MetricsFile = ""
	c.Seed = false
}

// Validate reports settings the session cannot start with. The returned
// error wraps common.ErrInvalidConfiguration.
func (c *Config) Validate() error {
	if _, err := dbx.ParseDialect(c.DatabaseDriver); err != nil {
		return fmt.Errorf("%w: %v", common.ErrInvalidConfiguration, err)
	}
	if c.DatabaseDSN == "" {
		return fmt.Errorf("%w: empty database dsn", common.ErrInvalidConfiguration)
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("%w: page size must be positive, got %d", common.ErrInvalidConfiguration, c.PageSize)
	}
	if c.TaxRateBasisPoints < 0 {
		return fmt.Errorf("%w: negative tax rate %d", common.ErrInvalidConfiguration, c.TaxRateBasisPoints)
	}
	if c.QueryTimeout < 0 {
		return fmt.Errorf("%w: negative query timeout %s", common.ErrInvalidConfiguration, c.QueryTimeout)
	}
	switch c.LogBackend {
	case logging.BackendSlog, logging.BackendLogrus:
	default:
		return fmt.Errorf("%w: unknown log backend %q", common.ErrInvalidConfiguration, c.LogBackend)
	}
	return nil
}

// LoadConfig builds a Config from defaults, then the JSON file named by
// -c/-config in args (if any), then the remaining flags in args. It panics
// on an unreadable file or a malformed flag, like flag.ExitOnError would
// exit; main recovers and reports it.
func LoadConfig(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
