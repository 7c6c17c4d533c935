package domain

import (
	"time"

	"github.com/google/uuid"
)

// Supplier represents a company that replenishes products
type Supplier struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Email       string    `json:"email" db:"email"`
	ContactInfo string    `json:"contactInfo" db:"contact_info"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// Product represents a warehouse item supplied by exactly one Supplier
type Product struct {
	ID            uuid.UUID `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	SKU           string    `json:"sku" db:"sku"`
	Price         float64   `json:"price" db:"price"`
	Description   string    `json:"description" db:"description"`
	StockQuantity int       `json:"stockQuantity" db:"stock_quantity"`
	MinStockLevel int       `json:"minStockLevel" db:"min_stock_level"`
	SupplierID    uuid.UUID `json:"supplierId" db:"supplier_id"`
	Supplier      *Supplier `json:"supplier,omitempty" db:"-"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`
}

// IsLow reports whether the product needs replenishment. The boundary
// counts: stock exactly at the minimum level is low.
func (p *Product) IsLow() bool {
	return p.StockQuantity <= p.MinStockLevel
}
