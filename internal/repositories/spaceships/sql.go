package spaceships

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/storekeeper/internal/common"
	"github.com/dmitrijs2005/storekeeper/internal/dbx"
	"github.com/dmitrijs2005/storekeeper/internal/models"
)

type SQLRepository struct {
	db      dbx.DBTX
	dialect dbx.Dialect
}

func NewSQLRepository(db dbx.DBTX, dialect dbx.Dialect) *SQLRepository {
	return &SQLRepository{db: db, dialect: dialect}
}

func (r *SQLRepository) ListAvailable(ctx context.Context) ([]models.SpaceshipSummary, error) {
	query := `SELECT id, make, model, ship_name, price_cents FROM spaceships WHERE available <> 0 ORDER BY id ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.SpaceshipSummary
	for rows.Next() {
		var s models.SpaceshipSummary
		if err := rows.Scan(&s.ID, &s.Make, &s.Model, &s.Name, &s.Price); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *SQLRepository) GetByID(ctx context.Context, id int64) (*models.Spaceship, error) {
	query := `SELECT id, serial_number, make, model, ship_name, model_year, ship_condition,
		modifications, price_cents, last_maintenance, available
		FROM spaceships WHERE id = ?`

	s := &models.Spaceship{}
	err := r.db.QueryRowContext(ctx, r.dialect.Rebind(query), id).Scan(
		&s.ID, &s.SerialNumber, &s.Make, &s.Model, &s.Name, &s.ModelYear, &s.Condition,
		&s.Modifications, &s.Price, &s.LastMaintenance, &s.Available)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return s, nil
}

func (r *SQLRepository) Reserve(ctx context.Context, id int64) (bool, error) {
	query := `UPDATE spaceships SET available = 0 WHERE id = ? AND available > 0`
	return r.execOne(ctx, r.dialect.Rebind(query), id)
}

func (r *SQLRepository) Restore(ctx context.Context, id int64, qty int64) (bool, error) {
	query := `UPDATE spaceships SET available = ? WHERE id = ? AND available = 0`
	return r.execOne(ctx, r.dialect.Rebind(query), qty, id)
}

func (r *SQLRepository) Create(ctx context.Context, s *models.Spaceship) error {
	query := `INSERT INTO spaceships (id, serial_number, make, model, ship_name, model_year, ship_condition,
		modifications, price_cents, last_maintenance, available)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, r.dialect.Rebind(query),
		s.ID, s.SerialNumber, s.Make, s.Model, s.Name, s.ModelYear, s.Condition,
		s.Modifications, s.Price.Cents(), s.LastMaintenance, s.Available)
	if err != nil {
		return fmt.Errorf("failed to insert spaceship: %w", err)
	}
	return nil
}

// execOne runs a single-row update and reports whether a row matched.
func (r *SQLRepository) execOne(ctx context.Context, query string, args ...any) (bool, error) {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return ra == 1, nil
}
