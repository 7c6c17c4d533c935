package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"supplychain-core/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrDuplicateSKU    = errors.New("product with this SKU already exists")
)

const pgUniqueViolation = "23505"

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	FindAll(ctx context.Context) ([]*domain.Product, error)
	UpdateStock(ctx context.Context, id uuid.UUID, quantity int, updatedAt time.Time) error
	FindByStockAtOrBelowMin(ctx context.Context) ([]*domain.Product, error)
}

type productRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new instance of ProductRepository
func NewProductRepository(db *sql.DB) ProductRepository {
	return &productRepository{db: db}
}

const productColumns = `
	p.id, p.name, p.sku, p.price, p.description, p.stock_quantity,
	p.min_stock_level, p.supplier_id, p.created_at, p.updated_at,
	s.id, s.name, s.email, s.contact_info, s.created_at
`

func scanProduct(row interface{ Scan(...any) error }) (*domain.Product, error) {
	product := &domain.Product{Supplier: &domain.Supplier{}}
	err := row.Scan(
		&product.ID,
		&product.Name,
		&product.SKU,
		&product.Price,
		&product.Description,
		&product.StockQuantity,
		&product.MinStockLevel,
		&product.SupplierID,
		&product.CreatedAt,
		&product.UpdatedAt,
		&product.Supplier.ID,
		&product.Supplier.Name,
		&product.Supplier.Email,
		&product.Supplier.ContactInfo,
		&product.Supplier.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return product, nil
}

// Create inserts a new product using parameterized queries
func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	query := `
		INSERT INTO products (id, name, sku, price, description, stock_quantity,
		                      min_stock_level, supplier_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		product.ID,
		product.Name,
		product.SKU,
		product.Price,
		product.Description,
		product.StockQuantity,
		product.MinStockLevel,
		product.SupplierID,
		product.CreatedAt,
		product.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return ErrDuplicateSKU
		}
		return fmt.Errorf("failed to create product: %w", err)
	}

	return nil
}

// FindByID retrieves a product with its supplier eagerly loaded
func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM products p
		JOIN suppliers s ON s.id = p.supplier_id
		WHERE p.id = $1
	`, productColumns)

	product, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}

	return product, nil
}

// FindAll retrieves every product with its supplier, ordered by SKU for
// deterministic output
func (r *productRepository) FindAll(ctx context.Context) ([]*domain.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM products p
		JOIN suppliers s ON s.id = p.supplier_id
		ORDER BY p.sku
	`, productColumns)

	return r.queryProducts(ctx, query)
}

// UpdateStock sets the stock quantity of a single product
func (r *productRepository) UpdateStock(ctx context.Context, id uuid.UUID, quantity int, updatedAt time.Time) error {
	query := `
		UPDATE products
		SET stock_quantity = $2, updated_at = $3
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, id, quantity, updatedAt)
	if err != nil {
		return fmt.Errorf("failed to update product stock: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrProductNotFound
	}

	return nil
}

// FindByStockAtOrBelowMin retrieves products whose stock quantity is at or
// below their minimum stock level, ordered by SKU
func (r *productRepository) FindByStockAtOrBelowMin(ctx context.Context) ([]*domain.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM products p
		JOIN suppliers s ON s.id = p.supplier_id
		WHERE p.stock_quantity <= p.min_stock_level
		ORDER BY p.sku
	`, productColumns)

	return r.queryProducts(ctx, query)
}

func (r *productRepository) queryProducts(ctx context.Context, query string, args ...any) ([]*domain.Product, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := []*domain.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}
