// Package config loads runtime configuration for storekeeper.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-d string        database driver: sqlite or pgx
//	-dsn string      database DSN (file path for sqlite, URL for pgx)
//	-p int           entries per page when browsing
//	-tax int         tax rate in basis points (1000 == 10%)
//	-timeout string  per-operation store timeout, e.g. "5s"
//	-log-level       debug, info, warn or error
//	-log-backend     slog or logrus
//	-log-file        where logs go ("-" for stderr)
//	-metrics-file    Prometheus textfile written at exit ("" disables)
//	-seed            load the demo fleet and customers
//
// # JSON schema
//
// Durations use timex.Duration, so they can be strings like "5s" or integer
// nanoseconds. Keys that are absent leave the current value untouched:
//
//	{
//	  "database_driver": "sqlite",
//	  "database_dsn": "storekeeper.db",
//	  "page_size": 5,
//	  "tax_rate_bps": 1000,
//	  "query_timeout": "5s",
//	  "log_level": "info",
//	  "log_backend": "slog",
//	  "log_file": "storekeeper.log",
//	  "metrics_file": "",
//	  "seed": false
//	}
package config
