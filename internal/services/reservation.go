package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/storekeeper/internal/common"
	"github.com/dmitrijs2005/storekeeper/internal/dbx"
	"github.com/dmitrijs2005/storekeeper/internal/models"
)

// Reservation is a spaceship taken out of stock for one customer while the
// purchase is being confirmed. It is closed by Confirm, Release or Cancel;
// after that every call returns common.ErrReservationClosed.
//
// A Reservation is not safe for concurrent use.
type Reservation struct {
	svc        *OrderService
	customerID int64
	ship       models.Spaceship
	startedAt  time.Time
	closed     bool
}

// CustomerID returns the customer the ship is held for.
func (r *Reservation) CustomerID() int64 { return r.customerID }

// Spaceship returns the ship as it was read before the reservation; its
// Available field is the quantity Release puts back.
func (r *Reservation) Spaceship() models.Spaceship { return r.ship }

// Closed reports whether the reservation has been confirmed or released.
func (r *Reservation) Closed() bool { return r.closed }

// Quote prices the reserved ship with discount. See OrderService.Quote.
func (r *Reservation) Quote(discount models.Money) (models.Money, error) {
	return r.svc.Quote(r.ship, discount)
}

// Confirm prices the order and writes it. The order ID is MAX(id)+1 read in
// the same transaction as the insert; if another writer takes that ID first
// the transaction is retried.
//
// An invalid discount returns common.ErrInvalidDiscount and leaves the
// reservation open. Any store failure releases the reservation and returns
// an error wrapping common.ErrStoreUnavailable.
func (r *Reservation) Confirm(ctx context.Context, destination string, discount models.Money) (*models.Order, error) {
	if r.closed {
		return nil, common.ErrReservationClosed
	}

	s := r.svc
	total, err := r.Quote(discount)
	if err != nil {
		return nil, err
	}

	var order *models.Order
	err = dbx.WithTxRetry(ctx, s.db, s.idRetries, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Orders(tx)

		id, err := repo.NextID(ctx)
		if err != nil {
			return err
		}

		o := &models.Order{
			ID:          id,
			InvoiceID:   s.newInvoiceID(),
			CustomerID:  r.customerID,
			SpaceshipID: r.ship.ID,
			OrderedAt:   s.now().UTC(),
			Destination: destination,
			Status:      models.OrderStatusProcessing,
			Discount:    discount,
			Total:       total,
		}
		if err := repo.Insert(ctx, o); err != nil {
			return err
		}
		order = o
		return nil
	})
	if err != nil {
		err = storeError("confirm", err)
		s.reject(ctx, err, "customer_id", r.customerID, "spaceship_id", r.ship.ID)

		// the caller's context may be what failed; compensate regardless
		if relErr := r.Release(context.WithoutCancel(ctx)); relErr != nil {
			return nil, errors.Join(err, relErr)
		}
		return nil, err
	}

	r.closed = true
	s.metrics.RecordPlaced(total.Cents(), s.now().Sub(r.startedAt))
	s.log.Info(ctx, "order placed",
		"order_id", order.ID, "invoice_id", order.InvoiceID,
		"customer_id", order.CustomerID, "spaceship_id", order.SpaceshipID,
		"total", order.Total.String())

	return order, nil
}

// Release puts the ship back in stock with its pre-reservation quantity. If
// the stock row was changed by someone else meanwhile it is left as is.
// A store failure keeps the reservation open so Release can be retried.
func (r *Reservation) Release(ctx context.Context) error {
	if r.closed {
		return common.ErrReservationClosed
	}

	s := r.svc
	restored, err := s.repomanager.Spaceships(s.db).Restore(ctx, r.ship.ID, r.ship.Available)
	if err != nil {
		err = storeError("release", err)
		s.log.Error(ctx, "reservation release failed", "spaceship_id", r.ship.ID, "error", err)
		return err
	}

	r.closed = true
	s.metrics.RecordReleased(s.now().Sub(r.startedAt))
	if !restored {
		s.log.Warn(ctx, "reserved spaceship changed before release", "spaceship_id", r.ship.ID)
		return nil
	}
	s.log.Info(ctx, "reservation released", "spaceship_id", r.ship.ID, "available", r.ship.Available)
	return nil
}

// Cancel releases the reservation because the customer declined. It
// returns common.ErrCancelled once the ship is back in stock.
func (r *Reservation) Cancel(ctx context.Context) error {
	if err := r.Release(ctx); err != nil {
		return err
	}
	r.svc.reject(ctx, common.ErrCancelled, "customer_id", r.customerID, "spaceship_id", r.ship.ID)
	return fmt.Errorf("%w: order for spaceship %d declined", common.ErrCancelled, r.ship.ID)
}
