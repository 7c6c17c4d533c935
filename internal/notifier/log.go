package notifier

import (
	"context"

	"supplychain-core/internal/domain"

	"go.uber.org/zap"
)

// LogNotifier logs dispatched orders instead of delivering them.
// Used in development where no SMTP server is available.
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier creates a logging SupplierNotifier
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// NotifySupplier records the notification and reports success
func (n *LogNotifier) NotifySupplier(ctx context.Context, order *domain.PurchaseOrder) error {
	if order.Product == nil || order.Product.Supplier == nil {
		return ErrIncompleteOrder
	}

	n.logger.Info("Supplier notified",
		zap.String("order_id", order.ID.String()),
		zap.String("supplier", order.Product.Supplier.Name),
		zap.String("supplier_email", order.Product.Supplier.Email),
		zap.String("sku", order.Product.SKU),
		zap.Int("quantity", order.Quantity),
		zap.Float64("total_cost", order.TotalCost),
	)

	return nil
}
