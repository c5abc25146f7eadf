package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/storekeeper/internal/browser"
	"github.com/dmitrijs2005/storekeeper/internal/models"
)

const orderTimeLayout = "2006-01-02 15:04:05"

// CustomerOrders pages through one customer's orders.
func (a *App) CustomerOrders(ctx context.Context) error {
	a.println("=== View Customer Orders ===")

	customerID, ok, err := a.askCustomerID(ctx)
	if err != nil || !ok {
		return err
	}

	list, err := call(ctx, a, func(ctx context.Context) ([]models.Order, error) {
		return a.orders.ListByCustomer(ctx, customerID)
	})
	if err != nil {
		return err
	}
	if len(list) == 0 {
		a.printf("Customer %d has no orders yet.\n", customerID)
		return nil
	}

	records := browser.Summaries(list, func(o models.Order) browser.Summary {
		return browser.Summary{ID: o.ID, Fields: []string{
			"Date: " + o.OrderedAt.Local().Format(orderTimeLayout),
			fmt.Sprintf("Spaceship: %d", o.SpaceshipID),
			"Total: " + o.Total.String(),
		}}
	})
	_, _, err = browse(ctx, a, fmt.Sprintf("Orders of customer %d", customerID), records, a.orders.Get, a.printOrder)
	return err
}

func (a *App) printOrder(o *models.Order) {
	a.printf("\nDetails for Order ID %d:\n", o.ID)
	a.printf("Invoice: %s, Customer ID: %d, Spaceship ID: %d\n", o.InvoiceID, o.CustomerID, o.SpaceshipID)
	a.printf("Date: %s, Destination: %s, Status: %s\n", o.OrderedAt.Local().Format(orderTimeLayout), o.Destination, o.Status)
	a.printf("Discount: %s, Total: %s\n", o.Discount, o.Total)
}
