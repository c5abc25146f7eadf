package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/storekeeper/internal/common"
	"github.com/dmitrijs2005/storekeeper/internal/models"
)

// userMessage turns an error into the line shown at the menu.
func userMessage(err error) string {
	switch {
	case errors.Is(err, common.ErrStoreUnavailable) && errors.Is(err, context.DeadlineExceeded):
		return "The store did not answer in time. Nothing was changed."
	case errors.Is(err, common.ErrStoreUnavailable):
		return "The store is unavailable right now. Nothing was changed."
	case errors.Is(err, context.DeadlineExceeded):
		return "The store did not answer in time."
	case errors.Is(err, common.ErrUnknownCustomer):
		return "Invalid Customer ID. Please register as a new customer if you don't have an ID."
	case errors.Is(err, common.ErrUnknownResource):
		return "Invalid Spaceship ID."
	case errors.Is(err, common.ErrResourceUnavailable):
		return "Sorry, this spaceship is not available. Please choose another spaceship."
	case errors.Is(err, common.ErrInvalidDiscount):
		return "The discount must be between 0 and the sale price."
	case errors.Is(err, models.ErrAmountOutOfRange):
		return "The amount is too large."
	case errors.Is(err, common.ErrInvalidField):
		return fmt.Sprintf("Invalid input: %v.", err)
	case errors.Is(err, common.ErrCancelled):
		return "Purchase cancelled."
	case errors.Is(err, common.ErrEmptyResultSet):
		return "Nothing to show."
	case errors.Is(err, common.ErrSelectionOutOfRange):
		return "Invalid selection."
	case errors.Is(err, common.ErrInvalidCommand):
		return "Unrecognised input."
	case errors.Is(err, common.ErrorNotFound):
		return "Not found."
	case errors.Is(err, common.ErrInvalidConfiguration):
		return fmt.Sprintf("Configuration error: %v", err)
	}
	return fmt.Sprintf("Error: %v", err)
}

// isFatalToOperation reports errors that aborted an operation for reasons
// the user cannot correct.
func isFatalToOperation(err error) bool {
	return errors.Is(err, common.ErrStoreUnavailable) || errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, common.ErrInvalidConfiguration)
}
