package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/storekeeper/internal/common"
	"github.com/dmitrijs2005/storekeeper/internal/models"
	"github.com/dmitrijs2005/storekeeper/internal/repositories/repomanager"
)

// CatalogService reads the spaceship catalogue.
type CatalogService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewCatalogService(db *sql.DB, m repomanager.RepositoryManager) *CatalogService {
	return &CatalogService{db: db, repomanager: m}
}

// ListAvailable returns the ships in stock, ordered by ID.
func (s *CatalogService) ListAvailable(ctx context.Context) ([]models.SpaceshipSummary, error) {
	list, err := s.repomanager.Spaceships(s.db).ListAvailable(ctx)
	if err != nil {
		return nil, storeError("list spaceships", err)
	}
	return list, nil
}

// Get returns the ship or common.ErrUnknownResource.
func (s *CatalogService) Get(ctx context.Context, id int64) (*models.Spaceship, error) {
	ship, err := s.repomanager.Spaceships(s.db).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, fmt.Errorf("%w: %d", common.ErrUnknownResource, id)
		}
		return nil, storeError("get spaceship", err)
	}
	return ship, nil
}
