// Package spaceships provides persistence for the ship catalogue and the
// availability counter that orders reserve against.
package spaceships

import (
	"context"

	"github.com/dmitrijs2005/storekeeper/internal/models"
)

type Repository interface {
	// ListAvailable returns ships with a non-zero quantity, ordered by id.
	ListAvailable(ctx context.Context) ([]models.SpaceshipSummary, error)

	// GetByID returns the full record or common.ErrorNotFound.
	GetByID(ctx context.Context, id int64) (*models.Spaceship, error)

	// Reserve sets the quantity to zero if, and only if, it is currently
	// positive. It reports whether a row was reserved.
	Reserve(ctx context.Context, id int64) (bool, error)

	// Restore puts qty back on a reserved ship. It only touches rows still
	// held at zero and reports whether one was restored.
	Restore(ctx context.Context, id int64, qty int64) (bool, error)

	// Create inserts a catalogue entry.
	Create(ctx context.Context, s *models.Spaceship) error
}
