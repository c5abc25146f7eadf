// Package dbx provides the small database/sql abstractions shared by the
// repositories: the DBTX interface implemented by both *sql.DB and *sql.Tx,
// transaction helpers with commit/rollback handling, dialect-aware
// placeholder rebinding and unique-constraint detection.
package dbx

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"
)

// DBTX is the subset of database/sql used by the repositories.
// Both *sql.DB and *sql.Tx satisfy this interface.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// WithTx runs fn inside one transaction: commit when fn returns nil,
// rollback when it fails or panics (the panic is rethrown). Begin and
// commit failures are wrapped; fn's own error is returned as is.
//
//	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
//	    _, err := tx.ExecContext(ctx, "UPDATE spaceships SET available = 0 WHERE id = ?", id)
//	    return err
//	})
func WithTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		if cErr := tx.Commit(); cErr != nil {
			err = fmt.Errorf("commit tx: %w", cErr)
		}
	}()

	return fn(ctx, tx)
}

// retryDelay is the pause between two attempts of WithTxRetry.
var retryDelay = 10 * time.Millisecond

// WithTxRetry runs fn through WithTx and starts a fresh transaction when it
// fails on a unique constraint, up to maxRetries extra attempts. It is meant
// for read-then-insert sequences (e.g. MAX(id)+1) where the primary key is
// the final guard against a duplicate. Any other error is returned at once.
func WithTxRetry(ctx context.Context, db *sql.DB, maxRetries uint64, fn func(ctx context.Context, tx DBTX) error) error {
	backoff := retry.WithMaxRetries(maxRetries, retry.NewConstant(retryDelay))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := WithTx(ctx, db, nil, fn)
		if IsUniqueViolation(err) {
			return retry.RetryableError(err)
		}
		return err
	})
}
