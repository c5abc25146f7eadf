// Package services contains storekeeper's business logic. This file
// implements OrderService: reserve a spaceship for a customer, then confirm
// the purchase (pricing it and writing the order) or release the hold.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/storekeeper/internal/common"
	"github.com/dmitrijs2005/storekeeper/internal/dbx"
	"github.com/dmitrijs2005/storekeeper/internal/logging"
	"github.com/dmitrijs2005/storekeeper/internal/models"
	"github.com/dmitrijs2005/storekeeper/internal/repositories/repomanager"
	"github.com/google/uuid"
)

// DefaultIDRetries bounds how often an order insert is retried after losing
// the MAX(id)+1 race to another writer.
const DefaultIDRetries = 5

// OrderRecorder receives order-flow outcomes. *metrics.OrderMetrics
// implements it.
type OrderRecorder interface {
	RecordReserved()
	RecordPlaced(totalCents int64, elapsed time.Duration)
	RecordReleased(elapsed time.Duration)
	RecordRejected(reason string)
}

type nopRecorder struct{}

func (nopRecorder) RecordReserved()                   {}
func (nopRecorder) RecordPlaced(int64, time.Duration) {}
func (nopRecorder) RecordReleased(time.Duration)      {}
func (nopRecorder) RecordRejected(string)             {}

// OrderService places spaceship orders.
type OrderService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	taxRateBPS  int64
	idRetries   uint64
	log         logging.Logger
	metrics     OrderRecorder

	now          func() time.Time
	newInvoiceID func() string
}

// NewOrderService builds an OrderService. taxRateBPS is the tax added on
// top of the discounted price, in basis points (1000 == 10%). A nil
// recorder disables metrics.
func NewOrderService(db *sql.DB, m repomanager.RepositoryManager, taxRateBPS int64, log logging.Logger, rec OrderRecorder) *OrderService {
	if rec == nil {
		rec = nopRecorder{}
	}
	if log == nil {
		log = logging.Nop()
	}
	return &OrderService{
		db:           db,
		repomanager:  m,
		taxRateBPS:   taxRateBPS,
		idRetries:    DefaultIDRetries,
		log:          log.With("component", "orders"),
		metrics:      rec,
		now:          time.Now,
		newInvoiceID: uuid.NewString,
	}
}

// PlaceOrderRequest is the input of PlaceOrder.
type PlaceOrderRequest struct {
	CustomerID  int64
	SpaceshipID int64
	Destination string
	Discount    models.Money
	Confirm     bool
}

// PlaceOrder runs the whole flow in one call: reserve, then confirm or
// (when req.Confirm is false) release and return common.ErrCancelled.
func (s *OrderService) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*models.Order, error) {
	res, err := s.Reserve(ctx, req.CustomerID, req.SpaceshipID)
	if err != nil {
		return nil, err
	}

	if !req.Confirm {
		return nil, res.Cancel(ctx)
	}

	o, err := res.Confirm(ctx, req.Destination, req.Discount)
	if err != nil {
		if !res.Closed() {
			if relErr := res.Release(ctx); relErr != nil {
				return nil, errors.Join(err, relErr)
			}
		}
		return nil, err
	}
	return o, nil
}

// Reserve checks the customer and the spaceship and takes the ship out of
// stock, all in one transaction. The returned Reservation must be either
// confirmed or released.
//
// Rejections: common.ErrUnknownCustomer, common.ErrUnknownResource,
// common.ErrResourceUnavailable. Nothing is written when they are returned.
func (s *OrderService) Reserve(ctx context.Context, customerID, spaceshipID int64) (*Reservation, error) {
	var ship *models.Spaceship

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		ok, err := s.repomanager.Customers(tx).Exists(ctx, customerID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: %d", common.ErrUnknownCustomer, customerID)
		}

		ships := s.repomanager.Spaceships(tx)
		ship, err = ships.GetByID(ctx, spaceshipID)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return fmt.Errorf("%w: %d", common.ErrUnknownResource, spaceshipID)
			}
			return err
		}
		if !ship.IsAvailable() {
			return fmt.Errorf("%w: %d", common.ErrResourceUnavailable, spaceshipID)
		}

		reserved, err := ships.Reserve(ctx, spaceshipID)
		if err != nil {
			return err
		}
		if !reserved {
			return fmt.Errorf("%w: %d", common.ErrResourceUnavailable, spaceshipID)
		}
		return nil
	})
	if err != nil {
		err = storeError("reserve", err)
		s.reject(ctx, err, "customer_id", customerID, "spaceship_id", spaceshipID)
		return nil, err
	}

	s.metrics.RecordReserved()
	s.log.Info(ctx, "spaceship reserved", "customer_id", customerID, "spaceship_id", spaceshipID, "previous_available", ship.Available)

	return &Reservation{
		svc:        s,
		customerID: customerID,
		ship:       *ship,
		startedAt:  s.now(),
	}, nil
}

// Quote returns what the customer pays for ship with the given discount:
// (price - discount) plus tax, rounded half up to the cent. A price whose
// total does not fit in Money yields models.ErrAmountOutOfRange.
func (s *OrderService) Quote(ship models.Spaceship, discount models.Money) (models.Money, error) {
	if discount < 0 || discount > ship.Price {
		return 0, fmt.Errorf("%w: %s on a price of %s", common.ErrInvalidDiscount, discount, ship.Price)
	}
	total, err := (ship.Price - discount).ApplyRate(s.taxRateBPS)
	if err != nil {
		return 0, fmt.Errorf("price of spaceship %d: %w", ship.ID, err)
	}
	return total, nil
}

// ListByCustomer returns the customer's orders, oldest first.
func (s *OrderService) ListByCustomer(ctx context.Context, customerID int64) ([]models.Order, error) {
	list, err := s.repomanager.Orders(s.db).ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, storeError("list orders", err)
	}
	return list, nil
}

// Get returns a single order.
func (s *OrderService) Get(ctx context.Context, id int64) (*models.Order, error) {
	o, err := s.repomanager.Orders(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, storeError("get order", err)
	}
	return o, nil
}

func (s *OrderService) reject(ctx context.Context, err error, args ...any) {
	reason := rejectReason(err)
	s.metrics.RecordRejected(reason)

	args = append(args, "reason", reason, "error", err)
	if errors.Is(err, common.ErrStoreUnavailable) {
		s.log.Error(ctx, "order failed", args...)
		return
	}
	s.log.Info(ctx, "order rejected", args...)
}
