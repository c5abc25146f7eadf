// Package orders provides persistence for confirmed spaceship orders.
package orders

import (
	"context"

	"github.com/dmitrijs2005/storekeeper/internal/models"
)

type Repository interface {
	// NextID returns max(id)+1, or 1 for an empty table. Gaps below the
	// maximum are never reused.
	NextID(ctx context.Context) (int64, error)

	// Insert writes o. A duplicate ID fails with a unique-constraint error.
	Insert(ctx context.Context, o *models.Order) error

	// ListByCustomer returns the customer's orders, oldest first.
	ListByCustomer(ctx context.Context, customerID int64) ([]models.Order, error)

	// GetByID returns a single order or common.ErrorNotFound.
	GetByID(ctx context.Context, id int64) (*models.Order, error)

	// Count returns the number of stored orders.
	Count(ctx context.Context) (int64, error)
}
