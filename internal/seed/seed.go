package seed

import (
	"context"
	"fmt"

	"supplychain-core/internal/service"

	"go.uber.org/zap"
)

// Seeder populates a demo catalog through the same service operations any
// other caller uses, so every invariant applies to seeded data too.
type Seeder struct {
	catalog service.CatalogService
	logger  *zap.Logger
}

// New creates a Seeder
func New(catalog service.CatalogService, logger *zap.Logger) *Seeder {
	return &Seeder{catalog: catalog, logger: logger}
}

// Run seeds the demo suppliers and products. It is idempotent: when any
// supplier already exists it performs no writes.
func (s *Seeder) Run(ctx context.Context) error {
	suppliers, err := s.catalog.ListSuppliers(ctx)
	if err != nil {
		return fmt.Errorf("failed to check existing suppliers: %w", err)
	}

	if len(suppliers) > 0 {
		s.logger.Info("Demo data already present, skipping seeding",
			zap.Int("suppliers", len(suppliers)),
		)
		return nil
	}

	s.logger.Info("Seeding demo data")

	apex, err := s.catalog.CreateSupplier(ctx, service.CreateSupplierInput{
		Name:        "Apex Furniture",
		Email:       "apex_orders@example.com",
		ContactInfo: "123 Industrial Blvd, NY",
	})
	if err != nil {
		return fmt.Errorf("failed to seed supplier: %w", err)
	}

	techGadget, err := s.catalog.CreateSupplier(ctx, service.CreateSupplierInput{
		Name:        "TechGadget Inc",
		Email:       "sales@techgadget.com",
		ContactInfo: "456 Silicon Ave, CA",
	})
	if err != nil {
		return fmt.Errorf("failed to seed supplier: %w", err)
	}

	products := []service.CreateProductInput{
		{
			Name:          "Ergonomic Office Chair",
			SKU:           "FURN-001",
			Price:         150.00,
			Description:   "Mesh back support, adjustable height.",
			StockQuantity: 50,
			MinStockLevel: 10,
			SupplierID:    apex.ID,
		},
		{
			// Seeded below its minimum level so the low-stock report has
			// something to show out of the box
			Name:          "Standing Desk Pro",
			SKU:           "FURN-002",
			Price:         450.00,
			Description:   "Dual motor electric standing desk.",
			StockQuantity: 5,
			MinStockLevel: 10,
			SupplierID:    apex.ID,
		},
		{
			Name:          "4K Monitor 27-inch",
			SKU:           "TECH-001",
			Price:         299.99,
			Description:   "IPS Panel, 144Hz refresh rate.",
			StockQuantity: 100,
			MinStockLevel: 15,
			SupplierID:    techGadget.ID,
		},
	}

	for _, input := range products {
		if _, err := s.catalog.CreateProduct(ctx, input); err != nil {
			return fmt.Errorf("failed to seed product %s: %w", input.SKU, err)
		}
	}

	s.logger.Info("Demo data seeded",
		zap.Int("suppliers", 2),
		zap.Int("products", len(products)),
	)

	return nil
}
