package service

import (
	"context"
	"errors"
	"time"

	"supplychain-core/internal/domain"
	"supplychain-core/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrInvalidQuantity = errors.New("quantity is out of range")
)

// InventoryService mutates stock levels and evaluates low-stock status
type InventoryService interface {
	SetStock(ctx context.Context, productID uuid.UUID, quantity int) (*domain.Product, error)
	ListLowStock(ctx context.Context) ([]*domain.Product, error)
}

type inventoryService struct {
	productRepo repository.ProductRepository
}

// NewInventoryService creates a new instance of InventoryService
func NewInventoryService(productRepo repository.ProductRepository) InventoryService {
	return &inventoryService{productRepo: productRepo}
}

// SetStock sets a product's stock quantity. Zero is a valid level; negative
// quantities are rejected before any write. The returned product carries the
// new quantity so callers can re-evaluate its low-stock status.
func (s *inventoryService) SetStock(ctx context.Context, productID uuid.UUID, quantity int) (*domain.Product, error) {
	if quantity < 0 {
		return nil, ErrInvalidQuantity
	}

	now := time.Now()
	if err := s.productRepo.UpdateStock(ctx, productID, quantity, now); err != nil {
		return nil, err
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	return product, nil
}

// ListLowStock returns every product at or below its minimum stock level
func (s *inventoryService) ListLowStock(ctx context.Context) ([]*domain.Product, error) {
	return s.productRepo.FindByStockAtOrBelowMin(ctx)
}
