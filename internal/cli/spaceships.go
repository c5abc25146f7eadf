package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/storekeeper/internal/browser"
	"github.com/dmitrijs2005/storekeeper/internal/common"
	"github.com/dmitrijs2005/storekeeper/internal/models"
)

// ViewSpaceships pages through the ships in stock.
func (a *App) ViewSpaceships(ctx context.Context) error {
	a.println("=== Available Spaceships ===")
	_, _, err := a.browseSpaceships(ctx)
	if errors.Is(err, common.ErrEmptyResultSet) {
		a.println("No spaceships available.")
		return nil
	}
	return err
}

func (a *App) browseSpaceships(ctx context.Context) (int64, bool, error) {
	list, err := call(ctx, a, a.catalog.ListAvailable)
	if err != nil {
		return 0, false, err
	}

	records := browser.Summaries(list, func(s models.SpaceshipSummary) browser.Summary {
		return browser.Summary{ID: s.ID, Fields: []string{
			s.Make + " " + s.Model,
			"Name: " + s.Name,
			"Price: " + s.Price.String(),
		}}
	})
	return browse(ctx, a, "Spaceships", records, a.catalog.Get, a.printSpaceship)
}

// chooseSpaceship asks for a ship ID directly or lets the user browse for
// one. ok is false when the user backed out.
func (a *App) chooseSpaceship(ctx context.Context) (int64, bool, error) {
	known, err := GetYesNo(a.reader, "Do you know the spaceship ID you would like to purchase?", a.out)
	if err != nil {
		return 0, false, err
	}
	if known {
		return GetID(a.reader, "Enter spaceship ID", a.out)
	}
	return a.browseSpaceships(ctx)
}

func (a *App) printSpaceship(s *models.Spaceship) {
	a.printf("\nDetails for Spaceship ID %d:\n", s.ID)
	a.printf("Make: %s, Model: %s, Ship Name: %s, Serial Number: %s\n", s.Make, s.Model, s.Name, s.SerialNumber)
	a.printf("Model Year: %d, Condition: %s, Last Maintenance Date: %s\n", s.ModelYear, s.Condition, s.LastMaintenance)
	a.printf("Modifications: %s, Sale Price: %s, Stock Available: %d\n", s.Modifications, s.Price, s.Available)
}
