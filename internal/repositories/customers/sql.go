package customers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/storekeeper/internal/common"
	"github.com/dmitrijs2005/storekeeper/internal/dbx"
	"github.com/dmitrijs2005/storekeeper/internal/models"
)

// SQLRepository implements Repository over a DBTX (either *sql.DB or *sql.Tx).
type SQLRepository struct {
	db      dbx.DBTX
	dialect dbx.Dialect
}

// NewSQLRepository returns a SQLRepository bound to db.
func NewSQLRepository(db dbx.DBTX, dialect dbx.Dialect) *SQLRepository {
	return &SQLRepository{db: db, dialect: dialect}
}

func (r *SQLRepository) ListSummaries(ctx context.Context) ([]models.CustomerSummary, error) {
	query := `SELECT id, last_name, first_name FROM customers ORDER BY id ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.CustomerSummary
	for rows.Next() {
		var c models.CustomerSummary
		if err := rows.Scan(&c.ID, &c.LastName, &c.FirstName); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *SQLRepository) GetByID(ctx context.Context, id int64) (*models.Customer, error) {
	query := `SELECT id, last_name, first_name, company, phone, email, address, date_of_birth, identity_verified
		FROM customers WHERE id = ?`

	c := &models.Customer{}
	err := r.db.QueryRowContext(ctx, r.dialect.Rebind(query), id).Scan(
		&c.ID, &c.LastName, &c.FirstName, &c.Company, &c.Phone,
		&c.Email, &c.Address, &c.DateOfBirth, &c.IdentityVerified)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

func (r *SQLRepository) Exists(ctx context.Context, id int64) (bool, error) {
	query := `SELECT 1 FROM customers WHERE id = ?`

	var one int
	err := r.db.QueryRowContext(ctx, r.dialect.Rebind(query), id).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("db error: %w", err)
	}
	return true, nil
}

func (r *SQLRepository) NextID(ctx context.Context) (int64, error) {
	query := `SELECT COALESCE(MAX(id), 0) + 1 FROM customers`

	var id int64
	if err := r.db.QueryRowContext(ctx, query).Scan(&id); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return id, nil
}

func (r *SQLRepository) Create(ctx context.Context, c *models.Customer) error {
	query := `INSERT INTO customers (id, last_name, first_name, company, phone, email, address, date_of_birth, identity_verified)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, r.dialect.Rebind(query),
		c.ID, c.LastName, c.FirstName, c.Company, c.Phone, c.Email, c.Address, c.DateOfBirth, c.IdentityVerified)
	if err != nil {
		return fmt.Errorf("failed to insert customer: %w", err)
	}
	return nil
}

func (r *SQLRepository) UpdateField(ctx context.Context, id int64, field models.CustomerField, value any) error {
	// the column name only ever comes from the whitelist
	column, ok := models.ParseCustomerField(string(field))
	if !ok {
		return fmt.Errorf("%w: %q", common.ErrInvalidField, field)
	}

	query := `UPDATE customers SET ` + string(column) + ` = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, r.dialect.Rebind(query), value, id)
	if err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra == 0 {
		return common.ErrorNotFound
	}
	return nil
}
