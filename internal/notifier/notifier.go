package notifier

import (
	"context"
	"errors"

	"supplychain-core/internal/domain"
)

var (
	// ErrIncompleteOrder is returned when the order is missing the product
	// or supplier data required to address a notification.
	ErrIncompleteOrder = errors.New("order is missing product or supplier data")
)

// SupplierNotifier delivers a purchase order to the product's supplier.
// Implementations must honor the context deadline; a timeout is reported
// as an ordinary error and the caller decides what it means.
type SupplierNotifier interface {
	NotifySupplier(ctx context.Context, order *domain.PurchaseOrder) error
}
