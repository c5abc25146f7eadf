package storage

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/storekeeper/internal/common"
	"github.com/dmitrijs2005/storekeeper/internal/dbx"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
)

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, name).Scan(&n)
	require.NoError(t, err)
	return n > 0
}

func count(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM `+table).Scan(&n))
	return n
}

func TestOpen_SQLiteCreatesSchema(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "store.db")

	db, dialect, err := Open(ctx, "sqlite", dsn)
	require.NoError(t, err)
	defer db.Close()

	require.Equal(t, dbx.SQLite, dialect)
	for _, name := range []string{"goose_db_version", "customers", "spaceships", "orders"} {
		require.True(t, tableExists(t, db, name), name)
	}
}

func TestOpen_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "store.db")

	db, _, err := Open(ctx, "sqlite", dsn)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, _, err = Open(ctx, "sqlite", dsn)
	require.NoError(t, err)
	defer db.Close()

	require.True(t, tableExists(t, db, "orders"))
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, _, err := Open(context.Background(), "oracle", "whatever")
	require.ErrorIs(t, err, common.ErrInvalidConfiguration)
}

func TestOpen_UnreachableStore(t *testing.T) {
	// nonexistent directory: sqlite cannot create the file
	dsn := filepath.Join(t.TempDir(), "missing", "dir", "store.db")

	_, _, err := Open(context.Background(), "sqlite", dsn)
	require.ErrorIs(t, err, common.ErrStoreUnavailable)
}

func TestSeed_LoadsDemoDataOnce(t *testing.T) {
	ctx := context.Background()
	db, _, err := Open(ctx, "sqlite", filepath.Join(t.TempDir(), "store.db"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Seed(ctx, db))
	require.NoError(t, Seed(ctx, db))

	require.Equal(t, 5, count(t, db, "spaceships"))
	require.Equal(t, 3, count(t, db, "customers"))
	require.Equal(t, 0, count(t, db, "orders"))
}

func TestRunMigrations_PostgresUsesPostgresDir(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	orig := gooseUpContext
	defer func() { gooseUpContext = orig }()

	var gotDir string
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		gotDir = dir
		return nil
	}

	require.NoError(t, RunMigrations(context.Background(), db, dbx.Postgres))
	require.Equal(t, "postgres", gotDir)
}

func TestRunMigrations_Error(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	orig := gooseUpContext
	defer func() { gooseUpContext = orig }()
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return errors.New("boom")
	}

	err = RunMigrations(context.Background(), db, dbx.SQLite)
	require.ErrorContains(t, err, "boom")
}
