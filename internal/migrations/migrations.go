// Package migrations embeds the goose schema migrations for every supported
// dialect, plus the optional demo data set.
package migrations

import "embed"

// Migrations holds one directory of goose files per dialect: "sqlite" and "postgres".
//
//go:embed sqlite/*.sql postgres/*.sql
var Migrations embed.FS

// DemoData inserts a small fleet and a few customers. Every statement is
// idempotent so it can be applied on each start.
//
//go:embed seed/demo.sql
var DemoData string
