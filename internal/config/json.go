package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/storekeeper/internal/flagx"
	"github.com/dmitrijs2005/storekeeper/internal/timex"
)

// JsonConfig is the on-disk form of Config. Pointer fields tell an absent
// key apart from a zero value.
type JsonConfig struct {
	DatabaseDriver     *string         `json:"database_driver"`
	DatabaseDSN        *string         `json:"database_dsn"`
	PageSize           *int            `json:"page_size"`
	TaxRateBasisPoints *int64          `json:"tax_rate_bps"`
	QueryTimeout       *timex.Duration `json:"query_timeout"`
	LogLevel           *string         `json:"log_level"`
	LogBackend         *string         `json:"log_backend"`
	LogFile            *string         `json:"log_file"`
	MetricsFile        *string         `json:"metrics_file"`
	Seed               *bool           `json:"seed"`
}

// parseJson overlays cfg with the JSON file named by -c/-config. Without
// the flag nothing happens. Read or decode failures panic.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigPath(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	jc := &JsonConfig{}
	if err := json.Unmarshal(data, jc); err != nil {
		panic(err)
	}

	set(&cfg.DatabaseDriver, jc.DatabaseDriver)
	set(&cfg.DatabaseDSN, jc.DatabaseDSN)
	set(&cfg.PageSize, jc.PageSize)
	set(&cfg.TaxRateBasisPoints, jc.TaxRateBasisPoints)
	if jc.QueryTimeout != nil {
		cfg.QueryTimeout = jc.QueryTimeout.Duration
	}
	set(&cfg.LogLevel, jc.LogLevel)
	set(&cfg.LogBackend, jc.LogBackend)
	set(&cfg.LogFile, jc.LogFile)
	set(&cfg.MetricsFile, jc.MetricsFile)
	set(&cfg.Seed, jc.Seed)
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
