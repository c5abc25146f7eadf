package services

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/storekeeper/internal/common"
)

// rejections are the user-correctable outcomes. They are returned as is;
// every other error from the store is reported as common.ErrStoreUnavailable.
var rejections = []error{
	common.ErrUnknownCustomer,
	common.ErrUnknownResource,
	common.ErrResourceUnavailable,
	common.ErrInvalidDiscount,
	common.ErrInvalidField,
	common.ErrCancelled,
	common.ErrReservationClosed,
}

func isRejection(err error) bool {
	for _, r := range rejections {
		if errors.Is(err, r) {
			return true
		}
	}
	return false
}

// storeError wraps err with common.ErrStoreUnavailable unless it already is a
// rejection, a lookup miss or a store error.
func storeError(op string, err error) error {
	if err == nil || isRejection(err) || errors.Is(err, common.ErrorNotFound) || errors.Is(err, common.ErrStoreUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %s: %w", common.ErrStoreUnavailable, op, err)
}

// rejectReason is the metrics label for err.
func rejectReason(err error) string {
	switch {
	case errors.Is(err, common.ErrUnknownCustomer):
		return "unknown_customer"
	case errors.Is(err, common.ErrUnknownResource):
		return "unknown_spaceship"
	case errors.Is(err, common.ErrResourceUnavailable):
		return "unavailable"
	case errors.Is(err, common.ErrInvalidDiscount):
		return "invalid_discount"
	case errors.Is(err, common.ErrCancelled):
		return "cancelled"
	case errors.Is(err, common.ErrStoreUnavailable):
		return "store_unavailable"
	}
	return "other"
}
