package service

import (
	"context"
	"sort"
	"time"

	"supplychain-core/internal/domain"
	"supplychain-core/internal/repository"

	"github.com/google/uuid"
)

// Mock repositories for testing

type mockSupplierRepository struct {
	suppliers map[uuid.UUID]*domain.Supplier
}

func newMockSupplierRepository() *mockSupplierRepository {
	return &mockSupplierRepository{
		suppliers: make(map[uuid.UUID]*domain.Supplier),
	}
}

func (m *mockSupplierRepository) Create(ctx context.Context, supplier *domain.Supplier) error {
	m.suppliers[supplier.ID] = supplier
	return nil
}

func (m *mockSupplierRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Supplier, error) {
	supplier, exists := m.suppliers[id]
	if !exists {
		return nil, repository.ErrSupplierNotFound
	}
	return supplier, nil
}

func (m *mockSupplierRepository) FindAll(ctx context.Context) ([]*domain.Supplier, error) {
	suppliers := []*domain.Supplier{}
	for _, s := range m.suppliers {
		suppliers = append(suppliers, s)
	}
	sort.Slice(suppliers, func(i, j int) bool { return suppliers[i].Name < suppliers[j].Name })
	return suppliers, nil
}

func (m *mockSupplierRepository) Count(ctx context.Context) (int, error) {
	return len(m.suppliers), nil
}

type mockProductRepository struct {
	products map[uuid.UUID]*domain.Product
}

func newMockProductRepository() *mockProductRepository {
	return &mockProductRepository{
		products: make(map[uuid.UUID]*domain.Product),
	}
}

func (m *mockProductRepository) Create(ctx context.Context, product *domain.Product) error {
	for _, p := range m.products {
		if p.SKU == product.SKU {
			return repository.ErrDuplicateSKU
		}
	}
	copied := *product
	m.products[product.ID] = &copied
	return nil
}

func (m *mockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	product, exists := m.products[id]
	if !exists {
		return nil, repository.ErrProductNotFound
	}
	copied := *product
	return &copied, nil
}

func (m *mockProductRepository) FindAll(ctx context.Context) ([]*domain.Product, error) {
	products := []*domain.Product{}
	for _, p := range m.products {
		copied := *p
		products = append(products, &copied)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].SKU < products[j].SKU })
	return products, nil
}

func (m *mockProductRepository) UpdateStock(ctx context.Context, id uuid.UUID, quantity int, updatedAt time.Time) error {
	product, exists := m.products[id]
	if !exists {
		return repository.ErrProductNotFound
	}
	product.StockQuantity = quantity
	product.UpdatedAt = updatedAt
	return nil
}

func (m *mockProductRepository) FindByStockAtOrBelowMin(ctx context.Context) ([]*domain.Product, error) {
	products := []*domain.Product{}
	for _, p := range m.products {
		if p.StockQuantity <= p.MinStockLevel {
			copied := *p
			products = append(products, &copied)
		}
	}
	sort.Slice(products, func(i, j int) bool { return products[i].SKU < products[j].SKU })
	return products, nil
}

type mockOrderRepository struct {
	orders map[uuid.UUID]*domain.PurchaseOrder
}

func newMockOrderRepository() *mockOrderRepository {
	return &mockOrderRepository{
		orders: make(map[uuid.UUID]*domain.PurchaseOrder),
	}
}

func (m *mockOrderRepository) Create(ctx context.Context, order *domain.PurchaseOrder) error {
	copied := *order
	m.orders[order.ID] = &copied
	return nil
}

func (m *mockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.PurchaseOrder, error) {
	order, exists := m.orders[id]
	if !exists {
		return nil, repository.ErrOrderNotFound
	}
	copied := *order
	return &copied, nil
}

func (m *mockOrderRepository) FindAll(ctx context.Context) ([]*domain.PurchaseOrder, error) {
	orders := []*domain.PurchaseOrder{}
	for _, o := range m.orders {
		copied := *o
		orders = append(orders, &copied)
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].CreatedAt.After(orders[j].CreatedAt) })
	return orders, nil
}

func (m *mockOrderRepository) UpdateStatusFrom(ctx context.Context, id uuid.UUID, from, to domain.OrderStatus, updatedAt time.Time) error {
	order, exists := m.orders[id]
	if !exists {
		return repository.ErrOrderNotFound
	}
	if order.Status != from {
		return repository.ErrStatusConflict
	}
	order.Status = to
	order.UpdatedAt = updatedAt
	return nil
}

// mockNotifier simulates the supplier notification collaborator
type mockNotifier struct {
	err   error
	block bool
	calls int
}

func (m *mockNotifier) NotifySupplier(ctx context.Context, order *domain.PurchaseOrder) error {
	m.calls++
	if m.block {
		<-ctx.Done()
		return ctx.Err()
	}
	return m.err
}
