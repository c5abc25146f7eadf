package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/storekeeper/internal/common"
	"github.com/dmitrijs2005/storekeeper/internal/models"
	"github.com/dmitrijs2005/storekeeper/internal/services"
)

// OrderSpaceship walks the customer through a purchase. The ship is held
// from the moment it is chosen until the order is confirmed or declined;
// leaving the command any other way puts it back in stock.
func (a *App) OrderSpaceship(ctx context.Context) error {
	a.println("=== Order Spaceship ===")

	customerID, ok, err := a.askCustomerID(ctx)
	if err != nil || !ok {
		return err
	}

	res, err := a.reserveSpaceship(ctx, customerID)
	if err != nil || res == nil {
		return err
	}
	defer func() {
		if res.Closed() {
			return
		}
		if err := res.Release(context.WithoutCancel(ctx)); err != nil {
			a.log.Error(ctx, "release on exit failed", "error", err)
		}
	}()

	ship := res.Spaceship()
	a.printf("\nSpaceship %d (%s %s \"%s\")\n", ship.ID, ship.Make, ship.Model, ship.Name)
	a.printf("Sale price: %s\n", ship.Price)

	var discount, total models.Money
	for {
		discount, err = GetMoney(a.reader, "Enter discount amount (press Enter for none)", a.out, 0)
		if err != nil {
			return err
		}
		total, err = res.Quote(discount)
		if err == nil {
			break
		}
		if !errors.Is(err, common.ErrInvalidDiscount) {
			return err
		}
		a.println(userMessage(err))
	}
	a.printf("Total amount including tax: %s\n", total)

	confirm, err := GetYesNo(a.reader, "Confirm purchase?", a.out)
	if err != nil {
		return err
	}
	if !confirm {
		err := do(ctx, a, res.Cancel)
		if errors.Is(err, common.ErrCancelled) {
			a.println("Purchase cancelled.")
			return nil
		}
		return err
	}

	destination, err := GetSimpleText(a.reader, "Enter destination", a.out)
	if err != nil {
		return err
	}

	order, err := call(ctx, a, func(ctx context.Context) (*models.Order, error) {
		return res.Confirm(ctx, destination, discount)
	})
	if err != nil {
		return err
	}

	a.printf("\nOrder placed. Order ID: %d, Invoice: %s\n", order.ID, order.InvoiceID)
	a.printOrder(order)
	a.pause()
	return nil
}

// askCustomerID re-prompts until the ID names a registered customer or the
// user enters nothing.
func (a *App) askCustomerID(ctx context.Context) (int64, bool, error) {
	for {
		id, ok, err := GetID(a.reader, "Enter your customer ID (press Enter to go back)", a.out)
		if err != nil || !ok {
			return 0, false, err
		}
		exists, err := call(ctx, a, func(ctx context.Context) (bool, error) {
			return a.customers.Exists(ctx, id)
		})
		if err != nil {
			return 0, false, err
		}
		if exists {
			return id, true, nil
		}
		a.println(userMessage(common.ErrUnknownCustomer))
	}
}

// reserveSpaceship lets the user pick ships until one can be reserved. A nil
// reservation with a nil error means the user backed out.
func (a *App) reserveSpaceship(ctx context.Context, customerID int64) (*services.Reservation, error) {
	for {
		shipID, ok, err := a.chooseSpaceship(ctx)
		if errors.Is(err, common.ErrEmptyResultSet) {
			a.println("No spaceships available.")
			return nil, nil
		}
		if err != nil || !ok {
			return nil, err
		}

		res, err := call(ctx, a, func(ctx context.Context) (*services.Reservation, error) {
			return a.orders.Reserve(ctx, customerID, shipID)
		})
		switch {
		case err == nil:
			return res, nil
		case errors.Is(err, common.ErrResourceUnavailable), errors.Is(err, common.ErrUnknownResource):
			a.println(userMessage(err))
		default:
			return nil, err
		}
	}
}
