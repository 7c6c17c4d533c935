package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"supplychain-core/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound = errors.New("purchase order not found")
	// ErrStatusConflict is returned when a status transition finds the order
	// in a different state than expected (lost race or illegal transition).
	ErrStatusConflict = errors.New("purchase order status conflict")
)

// PurchaseOrderRepository defines the interface for purchase order data access
type PurchaseOrderRepository interface {
	Create(ctx context.Context, order *domain.PurchaseOrder) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.PurchaseOrder, error)
	FindAll(ctx context.Context) ([]*domain.PurchaseOrder, error)
	UpdateStatusFrom(ctx context.Context, id uuid.UUID, from, to domain.OrderStatus, updatedAt time.Time) error
}

type purchaseOrderRepository struct {
	db *sql.DB
}

// NewPurchaseOrderRepository creates a new instance of PurchaseOrderRepository
func NewPurchaseOrderRepository(db *sql.DB) PurchaseOrderRepository {
	return &purchaseOrderRepository{db: db}
}

const orderColumns = `
	o.id, o.product_id, o.quantity, o.total_cost, o.status, o.created_at, o.updated_at,
	p.id, p.name, p.sku, p.price, p.description, p.stock_quantity,
	p.min_stock_level, p.supplier_id, p.created_at, p.updated_at,
	s.id, s.name, s.email, s.contact_info, s.created_at
`

func scanOrder(row interface{ Scan(...any) error }) (*domain.PurchaseOrder, error) {
	order := &domain.PurchaseOrder{
		Product: &domain.Product{Supplier: &domain.Supplier{}},
	}
	err := row.Scan(
		&order.ID,
		&order.ProductID,
		&order.Quantity,
		&order.TotalCost,
		&order.Status,
		&order.CreatedAt,
		&order.UpdatedAt,
		&order.Product.ID,
		&order.Product.Name,
		&order.Product.SKU,
		&order.Product.Price,
		&order.Product.Description,
		&order.Product.StockQuantity,
		&order.Product.MinStockLevel,
		&order.Product.SupplierID,
		&order.Product.CreatedAt,
		&order.Product.UpdatedAt,
		&order.Product.Supplier.ID,
		&order.Product.Supplier.Name,
		&order.Product.Supplier.Email,
		&order.Product.Supplier.ContactInfo,
		&order.Product.Supplier.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return order, nil
}

// Create inserts a new purchase order using parameterized queries
func (r *purchaseOrderRepository) Create(ctx context.Context, order *domain.PurchaseOrder) error {
	query := `
		INSERT INTO purchase_orders (id, product_id, quantity, total_cost, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		order.ID,
		order.ProductID,
		order.Quantity,
		order.TotalCost,
		order.Status,
		order.CreatedAt,
		order.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create purchase order: %w", err)
	}

	return nil
}

// FindByID retrieves a purchase order with its product and supplier
func (r *purchaseOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.PurchaseOrder, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM purchase_orders o
		JOIN products p ON p.id = o.product_id
		JOIN suppliers s ON s.id = p.supplier_id
		WHERE o.id = $1
	`, orderColumns)

	order, err := scanOrder(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to find purchase order by ID: %w", err)
	}

	return order, nil
}

// FindAll retrieves every purchase order, newest first
func (r *purchaseOrderRepository) FindAll(ctx context.Context) ([]*domain.PurchaseOrder, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM purchase_orders o
		JOIN products p ON p.id = o.product_id
		JOIN suppliers s ON s.id = p.supplier_id
		ORDER BY o.created_at DESC, o.id
	`, orderColumns)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchase orders: %w", err)
	}
	defer rows.Close()

	orders := []*domain.PurchaseOrder{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan purchase order: %w", err)
		}
		orders = append(orders, order)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating purchase orders: %w", err)
	}

	return orders, nil
}

// UpdateStatusFrom performs an atomic compare-and-set on the order status.
// The UPDATE only matches when the order is still in the expected source
// state, which serializes concurrent transitions on the same order.
func (r *purchaseOrderRepository) UpdateStatusFrom(ctx context.Context, id uuid.UUID, from, to domain.OrderStatus, updatedAt time.Time) error {
	query := `
		UPDATE purchase_orders
		SET status = $3, updated_at = $4
		WHERE id = $1 AND status = $2
	`

	result, err := r.db.ExecContext(ctx, query, id, from, to, updatedAt)
	if err != nil {
		return fmt.Errorf("failed to update purchase order status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		// Distinguish a missing order from one in the wrong state
		var exists bool
		err := r.db.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM purchase_orders WHERE id = $1)`, id,
		).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check purchase order existence: %w", err)
		}
		if !exists {
			return ErrOrderNotFound
		}
		return ErrStatusConflict
	}

	return nil
}
