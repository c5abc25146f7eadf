package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/storekeeper/internal/browser"
	"github.com/dmitrijs2005/storekeeper/internal/models"
)

// Register prompts for the customer fields and stores a new customer.
func (a *App) Register(ctx context.Context) error {
	a.println("=== Register New Customer ===")

	var c models.Customer
	prompts := []struct {
		label string
		dst   *string
	}{
		{"Enter last name", &c.LastName},
		{"Enter first name", &c.FirstName},
		{"Enter company name (optional)", &c.Company},
		{"Enter phone number", &c.Phone},
		{"Enter email", &c.Email},
		{"Enter address", &c.Address},
		{"Enter date of birth (YYYY-MM-DD)", &c.DateOfBirth},
	}
	for _, p := range prompts {
		v, err := GetSimpleText(a.reader, p.label, a.out)
		if err != nil {
			return err
		}
		*p.dst = v
	}

	id, err := call(ctx, a, func(ctx context.Context) (int64, error) {
		return a.customers.Register(ctx, c)
	})
	if err != nil {
		return err
	}

	a.printf("Customer registered with ID %d.\n", id)
	a.pause()
	return nil
}

// ViewCustomer shows one customer, either by a known ID or picked from the
// paginated list.
func (a *App) ViewCustomer(ctx context.Context) error {
	a.println("=== View Customer Info ===")

	known, err := GetYesNo(a.reader, "Do you know the customer ID?", a.out)
	if err != nil {
		return err
	}

	if known {
		id, ok, err := GetID(a.reader, "Enter customer ID", a.out)
		if err != nil || !ok {
			return err
		}
		c, err := call(ctx, a, func(ctx context.Context) (*models.Customer, error) {
			return a.customers.Get(ctx, id)
		})
		if err != nil {
			return err
		}
		a.printCustomer(c)
		a.pause()
		return nil
	}

	_, _, err = a.browseCustomers(ctx)
	return err
}

func (a *App) browseCustomers(ctx context.Context) (int64, bool, error) {
	list, err := call(ctx, a, a.customers.List)
	if err != nil {
		return 0, false, err
	}

	records := browser.Summaries(list, func(c models.CustomerSummary) browser.Summary {
		return browser.Summary{ID: c.ID, Fields: []string{"Name: " + c.FullName()}}
	})
	return browse(ctx, a, "Customers", records, a.customers.Get, a.printCustomer)
}

// UpdateCustomer changes one whitelisted field of a customer.
func (a *App) UpdateCustomer(ctx context.Context) error {
	a.println("=== Update Customer Info ===")

	id, ok, err := GetID(a.reader, "Enter customer ID to update", a.out)
	if err != nil || !ok {
		return err
	}

	c, err := call(ctx, a, func(ctx context.Context) (*models.Customer, error) {
		return a.customers.Get(ctx, id)
	})
	if err != nil {
		return err
	}
	a.printCustomer(c)

	a.println("\nFields that can be updated:")
	for i, f := range models.CustomerFields {
		a.printf("%d. %s\n", i+1, f)
	}

	choice, err := GetSimpleText(a.reader, "Enter the field to update (number or name)", a.out)
	if err != nil {
		return err
	}
	field := choice
	if n, convErr := strconv.Atoi(choice); convErr == nil && n >= 1 && n <= len(models.CustomerFields) {
		field = string(models.CustomerFields[n-1])
	}

	value, err := GetSimpleText(a.reader, "Enter the new value", a.out)
	if err != nil {
		return err
	}

	if err := do(ctx, a, func(ctx context.Context) error {
		return a.customers.Update(ctx, id, field, value)
	}); err != nil {
		return err
	}

	a.printf("Customer %d updated: %s = %s\n", id, field, value)
	a.pause()
	return nil
}

func (a *App) printCustomer(c *models.Customer) {
	verified := "no"
	if c.IdentityVerified {
		verified = "yes"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "\nDetails for Customer ID %d:\n", c.ID)
	fmt.Fprintf(&b, "Name: %s, %s\n", c.LastName, c.FirstName)
	fmt.Fprintf(&b, "Company Name: %s\n", c.Company)
	fmt.Fprintf(&b, "Phone: %s, Address: %s\n", c.Phone, c.Address)
	fmt.Fprintf(&b, "Email: %s, Date of Birth: %s, Identity Verified: %s\n", c.Email, c.DateOfBirth, verified)
	fmt.Fprint(a.out, b.String())
}
