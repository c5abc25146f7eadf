// Package storage opens the relational store, applies the embedded schema
// migrations and optionally loads the demo data set.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/storekeeper/internal/common"
	"github.com/dmitrijs2005/storekeeper/internal/dbx"
	"github.com/dmitrijs2005/storekeeper/internal/migrations"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// migrationDir returns the embedded directory holding the dialect's migrations.
func migrationDir(d dbx.Dialect) string {
	if d == dbx.Postgres {
		return "postgres"
	}
	return "sqlite"
}

// RunMigrations applies all pending goose migrations for the dialect.
// It is safe to call on an up-to-date database.
func RunMigrations(ctx context.Context, db *sql.DB, dialect dbx.Dialect) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect.GooseDialect()); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := gooseUpContext(ctx, db, migrationDir(dialect)); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

// Open connects to the store named by driver and dsn, verifies the
// connection and brings the schema up to date.
//
// An unknown driver yields common.ErrInvalidConfiguration; a store that
// cannot be reached yields common.ErrStoreUnavailable.
func Open(ctx context.Context, driver, dsn string) (*sql.DB, dbx.Dialect, error) {
	dialect, err := dbx.ParseDialect(driver)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", common.ErrInvalidConfiguration, err)
	}

	db, err := sql.Open(string(dialect), dsn)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", common.ErrInvalidConfiguration, err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, "", fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
	}

	if err := RunMigrations(ctx, db, dialect); err != nil {
		_ = db.Close()
		return nil, "", err
	}

	if dialect == dbx.SQLite {
		// one interactive session, one writer
		db.SetMaxOpenConns(1)
	}

	return db, dialect, nil
}

// Seed loads the demo fleet and customers. Rows that already exist are kept.
func Seed(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, migrations.DemoData); err != nil {
		return fmt.Errorf("seed demo data: %w", err)
	}
	return nil
}
