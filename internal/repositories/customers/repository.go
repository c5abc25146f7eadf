// Package customers provides persistence for customer records.
//
// The SQL implementation (SQLRepository) works over a dbx.DBTX, so the same
// code runs against *sql.DB or inside a *sql.Tx, and against SQLite or
// PostgreSQL depending on the dbx.Dialect it was built with.
package customers

import (
	"context"

	"github.com/dmitrijs2005/storekeeper/internal/models"
)

// Repository describes the customer queries used by the services.
type Repository interface {
	// ListSummaries returns every customer ordered by id. The order is stable
	// for the lifetime of a browsing session.
	ListSummaries(ctx context.Context) ([]models.CustomerSummary, error)

	// GetByID returns the full record or common.ErrorNotFound.
	GetByID(ctx context.Context, id int64) (*models.Customer, error)

	// Exists reports whether a customer with the given id is registered.
	Exists(ctx context.Context, id int64) (bool, error)

	// NextID returns max(id)+1, or 1 for an empty table.
	NextID(ctx context.Context) (int64, error)

	// Create inserts c with its ID already allocated.
	Create(ctx context.Context, c *models.Customer) error

	// UpdateField sets one whitelisted field. It returns common.ErrorNotFound
	// if no customer has the id.
	UpdateField(ctx context.Context, id int64, field models.CustomerField, value any) error
}
