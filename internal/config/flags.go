package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/storekeeper/internal/flagx"
)

// parseFlags overlays cfg with command-line flags. The config-file flag is
// handled by parseJson and skipped here. Unknown or malformed flags panic.
func parseFlags(cfg *Config, args []string) {
	fs := flag.NewFlagSet("storekeeper", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DatabaseDriver, "d", cfg.DatabaseDriver, "database driver (sqlite or pgx)")
	fs.StringVar(&cfg.DatabaseDSN, "dsn", cfg.DatabaseDSN, "database DSN")
	fs.IntVar(&cfg.PageSize, "p", cfg.PageSize, "entries per page")
	fs.Int64Var(&cfg.TaxRateBasisPoints, "tax", cfg.TaxRateBasisPoints, "tax rate in basis points")
	fs.DurationVar(&cfg.QueryTimeout, "timeout", cfg.QueryTimeout, "per-operation store timeout")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogBackend, "log-backend", cfg.LogBackend, "log backend (slog or logrus)")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "log file, - for stderr")
	fs.StringVar(&cfg.MetricsFile, "metrics-file", cfg.MetricsFile, "Prometheus textfile written at exit")
	fs.BoolVar(&cfg.Seed, "seed", cfg.Seed, "load demo data")

	if err := fs.Parse(flagx.DropArgs(args, flagx.ConfigFlags)); err != nil {
		panic(err)
	}
}
