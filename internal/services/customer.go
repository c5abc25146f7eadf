package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/storekeeper/internal/common"
	"github.com/dmitrijs2005/storekeeper/internal/dbx"
	"github.com/dmitrijs2005/storekeeper/internal/logging"
	"github.com/dmitrijs2005/storekeeper/internal/models"
	"github.com/dmitrijs2005/storekeeper/internal/repositories/repomanager"
)

// CustomerService registers, looks up and edits customers.
type CustomerService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	idRetries   uint64
	log         logging.Logger
}

func NewCustomerService(db *sql.DB, m repomanager.RepositoryManager, log logging.Logger) *CustomerService {
	if log == nil {
		log = logging.Nop()
	}
	return &CustomerService{db: db, repomanager: m, idRetries: DefaultIDRetries, log: log.With("component", "customers")}
}

// Register stores c under a freshly allocated ID and returns that ID.
// Last and first name are required.
func (s *CustomerService) Register(ctx context.Context, c models.Customer) (int64, error) {
	c.LastName = strings.TrimSpace(c.LastName)
	c.FirstName = strings.TrimSpace(c.FirstName)
	if c.LastName == "" || c.FirstName == "" {
		return 0, fmt.Errorf("%w: first and last name are required", common.ErrInvalidField)
	}

	err := dbx.WithTxRetry(ctx, s.db, s.idRetries, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Customers(tx)
		id, err := repo.NextID(ctx)
		if err != nil {
			return err
		}
		c.ID = id
		return repo.Create(ctx, &c)
	})
	if err != nil {
		return 0, storeError("register customer", err)
	}

	s.log.Info(ctx, "customer registered", "customer_id", c.ID)
	return c.ID, nil
}

// Get returns the customer or common.ErrUnknownCustomer.
func (s *CustomerService) Get(ctx context.Context, id int64) (*models.Customer, error) {
	c, err := s.repomanager.Customers(s.db).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, fmt.Errorf("%w: %d", common.ErrUnknownCustomer, id)
		}
		return nil, storeError("get customer", err)
	}
	return c, nil
}

// Exists reports whether id is a registered customer.
func (s *CustomerService) Exists(ctx context.Context, id int64) (bool, error) {
	ok, err := s.repomanager.Customers(s.db).Exists(ctx, id)
	if err != nil {
		return false, storeError("check customer", err)
	}
	return ok, nil
}

// List returns all customers ordered by ID.
func (s *CustomerService) List(ctx context.Context) ([]models.CustomerSummary, error) {
	list, err := s.repomanager.Customers(s.db).ListSummaries(ctx)
	if err != nil {
		return nil, storeError("list customers", err)
	}
	return list, nil
}

// Update sets one field, named by its column (see models.CustomerFields), to
// the raw user input. identity_verified accepts anything strconv.ParseBool
// does, plus "y"/"n".
func (s *CustomerService) Update(ctx context.Context, id int64, field, raw string) error {
	f, ok := models.ParseCustomerField(strings.TrimSpace(field))
	if !ok {
		return fmt.Errorf("%w: %q", common.ErrInvalidField, field)
	}

	value, err := fieldValue(f, raw)
	if err != nil {
		return err
	}

	if err := s.repomanager.Customers(s.db).UpdateField(ctx, id, f, value); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return fmt.Errorf("%w: %d", common.ErrUnknownCustomer, id)
		}
		return storeError("update customer", err)
	}

	s.log.Info(ctx, "customer updated", "customer_id", id, "field", string(f))
	return nil
}

func fieldValue(f models.CustomerField, raw string) (any, error) {
	raw = strings.TrimSpace(raw)
	switch f {
	case models.CustomerIdentityVerified:
		switch strings.ToLower(raw) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s expects yes or no, got %q", common.ErrInvalidField, f, raw)
		}
		return b, nil
	case models.CustomerLastName, models.CustomerFirstName:
		if raw == "" {
			return nil, fmt.Errorf("%w: %s cannot be empty", common.ErrInvalidField, f)
		}
	}
	return raw, nil
}
