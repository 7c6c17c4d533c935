package domain

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus enumerates the purchase order lifecycle states
type OrderStatus string

const (
	StatusPendingApproval OrderStatus = "PENDING_APPROVAL"
	StatusApproved        OrderStatus = "APPROVED"
	StatusRejected        OrderStatus = "REJECTED"
	StatusSentToSupplier  OrderStatus = "SENT_TO_SUPPLIER"
)

// OrderStatuses lists every valid status
var OrderStatuses = []OrderStatus{
	StatusPendingApproval,
	StatusApproved,
	StatusRejected,
	StatusSentToSupplier,
}

// Valid reports whether s is a known status
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPendingApproval, StatusApproved, StatusRejected, StatusSentToSupplier:
		return true
	}
	return false
}

// Terminal reports whether no further transition is permitted from s
func (s OrderStatus) Terminal() bool {
	return s == StatusRejected || s == StatusSentToSupplier
}

// CanTransitionTo reports whether the move from s to next is a legal
// lifecycle step. Exactly three edges exist: pending orders can be
// approved or rejected, approved orders can be sent to the supplier.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch s {
	case StatusPendingApproval:
		return next == StatusApproved || next == StatusRejected
	case StatusApproved:
		return next == StatusSentToSupplier
	}
	return false
}

// PurchaseOrder represents a replenishment request for a single product.
// TotalCost is computed from the product price at creation time and never
// recomputed afterwards, even if the price changes.
type PurchaseOrder struct {
	ID        uuid.UUID   `json:"id" db:"id"`
	ProductID uuid.UUID   `json:"productId" db:"product_id"`
	Product   *Product    `json:"product,omitempty" db:"-"`
	Quantity  int         `json:"quantity" db:"quantity"`
	TotalCost float64     `json:"totalCost" db:"total_cost"`
	Status    OrderStatus `json:"status" db:"status"`
	CreatedAt time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time   `json:"updatedAt" db:"updated_at"`
}
