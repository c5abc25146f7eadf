// Package common defines sentinel errors shared by the storekeeper layers.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Setup errors. Fatal: the program or the session cannot start.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// Navigation errors. Recoverable: re-render the page and re-prompt.
	ErrEmptyResultSet      = errors.New("empty result set")
	ErrSelectionOutOfRange = errors.New("selection out of range")
	ErrInvalidCommand      = errors.New("invalid command")

	// Business-rule validation errors. Recoverable: return to the menu.
	ErrUnknownCustomer     = errors.New("unknown customer")
	ErrUnknownResource     = errors.New("unknown spaceship")
	ErrResourceUnavailable = errors.New("spaceship unavailable")
	ErrInvalidDiscount     = errors.New("invalid discount")
	ErrInvalidField        = errors.New("invalid field")

	// Order flow.
	ErrCancelled         = errors.New("cancelled")
	ErrReservationClosed = errors.New("reservation already closed")

	// Store failures. Fatal to the current operation.
	ErrStoreUnavailable = errors.New("store unavailable")
)
