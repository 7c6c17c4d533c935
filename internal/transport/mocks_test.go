package transport

import (
	"context"
	"sort"
	"time"

	"supplychain-core/internal/domain"
	"supplychain-core/internal/repository"
	"supplychain-core/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Mock repositories for testing

type mockSupplierRepository struct {
	suppliers map[uuid.UUID]*domain.Supplier
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

func (m *mockProductRepository) Create(ctx context.Context, product *domain.Product) error {
	for _, p := range m.products {
		if p.SKU == product.SKU {
			return repository.ErrDuplicateSKU
		}
	}
	m.products[product.ID] = product
	return nil
}

func (m *mockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	product, exists := m.products[id]
	if !exists {
		return nil, repository.ErrProductNotFound
	}
	return product, nil
}

func (m *mockProductRepository) FindAll(ctx context.Context) ([]*domain.Product, error) {
	products := []*domain.Product{}
	for _, p := range m.products {
		products = append(products, p)
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
			products = append(products, p)
		}
	}
	sort.Slice(products, func(i, j int) bool { return products[i].SKU < products[j].SKU })
	return products, nil
}

type mockOrderRepository struct {
	orders map[uuid.UUID]*domain.PurchaseOrder
}

func (m *mockOrderRepository) Create(ctx context.Context, order *domain.PurchaseOrder) error {
	m.orders[order.ID] = order
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
		orders = append(orders, o)
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

type mockNotifier struct {
	err   error
	calls int
}

func (m *mockNotifier) NotifySupplier(ctx context.Context, order *domain.PurchaseOrder) error {
	m.calls++
	return m.err
}

// testAPI wires real services over mock repositories behind a chi router
type testAPI struct {
	router       *chi.Mux
	supplierRepo *mockSupplierRepository
	productRepo  *mockProductRepository
	orderRepo    *mockOrderRepository
	notifier     *mockNotifier
}

func newTestAPI() *testAPI {
	supplierRepo := &mockSupplierRepository{suppliers: make(map[uuid.UUID]*domain.Supplier)}
	productRepo := &mockProductRepository{products: make(map[uuid.UUID]*domain.Product)}
	orderRepo := &mockOrderRepository{orders: make(map[uuid.UUID]*domain.PurchaseOrder)}
	notifier := &mockNotifier{}

	logger := zap.NewNop()

	catalogService := service.NewCatalogService(supplierRepo, productRepo)
	inventoryService := service.NewInventoryService(productRepo)
	orderService := service.NewOrderService(orderRepo, productRepo, notifier, time.Second)

	router := chi.NewRouter()
	NewCatalogHandler(catalogService, inventoryService, logger).RegisterRoutes(router)
	NewOrderHandler(orderService, logger).RegisterRoutes(router)

	return &testAPI{
		router:       router,
		supplierRepo: supplierRepo,
		productRepo:  productRepo,
		orderRepo:    orderRepo,
		notifier:     notifier,
	}
}

func (api *testAPI) seedProduct(sku string, price float64, stock, minLevel int) *domain.Product {
	supplier := &domain.Supplier{
		ID:        uuid.New(),
		Name:      "Apex Furniture",
		Email:     "apex_orders@example.com",
		CreatedAt: time.Now(),
	}
	api.supplierRepo.suppliers[supplier.ID] = supplier

	product := &domain.Product{
		ID:            uuid.New(),
		Name:          "Test Product " + sku,
		SKU:           sku,
		Price:         price,
		StockQuantity: stock,
		MinStockLevel: minLevel,
		SupplierID:    supplier.ID,
		Supplier:      supplier,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	api.productRepo.products[product.ID] = product
	return product
}
