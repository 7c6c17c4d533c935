package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"supplychain-core/internal/domain"
	"supplychain-core/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrInvalidPrice = errors.New("product price must not be negative")
	ErrInvalidStock = errors.New("stock quantities must not be negative")
)

// CreateSupplierInput carries the fields for supplier onboarding
type CreateSupplierInput struct {
	Name        string
	Email       string
	ContactInfo string
}

// CreateProductInput carries the fields for catalog registration
type CreateProductInput struct {
	Name          string
	SKU           string
	Price         float64
	Description   string
	StockQuantity int
	MinStockLevel int
	SupplierID    uuid.UUID
}

// CatalogService defines supplier and product catalog management
type CatalogService interface {
	CreateSupplier(ctx context.Context, input CreateSupplierInput) (*domain.Supplier, error)
	ListSuppliers(ctx context.Context) ([]*domain.Supplier, error)
	CreateProduct(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]*domain.Product, error)
}

type catalogService struct {
	supplierRepo repository.SupplierRepository
	productRepo  repository.ProductRepository
}

// NewCatalogService creates a new instance of CatalogService
func NewCatalogService(
	supplierRepo repository.SupplierRepository,
	productRepo repository.ProductRepository,
) CatalogService {
	return &catalogService{
		supplierRepo: supplierRepo,
		productRepo:  productRepo,
	}
}

// CreateSupplier registers a new supplier
func (s *catalogService) CreateSupplier(ctx context.Context, input CreateSupplierInput) (*domain.Supplier, error) {
	supplier := &domain.Supplier{
		ID:          uuid.New(),
		Name:        input.Name,
		Email:       input.Email,
		ContactInfo: input.ContactInfo,
		CreatedAt:   time.Now(),
	}

	if err := s.supplierRepo.Create(ctx, supplier); err != nil {
		return nil, fmt.Errorf("failed to create supplier: %w", err)
	}

	return supplier, nil
}

// ListSuppliers returns every registered supplier
func (s *catalogService) ListSuppliers(ctx context.Context) ([]*domain.Supplier, error) {
	return s.supplierRepo.FindAll(ctx)
}

// CreateProduct registers a new product under an existing supplier
func (s *catalogService) CreateProduct(ctx context.Context, input CreateProductInput) (*domain.Product, error) {
	if input.Price < 0 {
		return nil, ErrInvalidPrice
	}
	if input.StockQuantity < 0 || input.MinStockLevel < 0 {
		return nil, ErrInvalidStock
	}

	// Referential integrity: every product belongs to a known supplier
	supplier, err := s.supplierRepo.FindByID(ctx, input.SupplierID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	product := &domain.Product{
		ID:            uuid.New(),
		Name:          input.Name,
		SKU:           input.SKU,
		Price:         input.Price,
		Description:   input.Description,
		StockQuantity: input.StockQuantity,
		MinStockLevel: input.MinStockLevel,
		SupplierID:    supplier.ID,
		Supplier:      supplier,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// GetProduct loads a single product with its supplier
func (s *catalogService) GetProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	return s.productRepo.FindByID(ctx, id)
}

// ListProducts returns the full catalog
func (s *catalogService) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	return s.productRepo.FindAll(ctx)
}
