package transport

import (
	"net/http"
	"strconv"

	"supplychain-core/internal/middleware"
	"supplychain-core/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateSupplierRequest represents the supplier onboarding payload
type CreateSupplierRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	ContactInfo string `json:"contactInfo"`
}

// CreateProductRequest represents the catalog registration payload
type CreateProductRequest struct {
	Name          string  `json:"name" validate:"required"`
	SKU           string  `json:"sku" validate:"required"`
	Price         float64 `json:"price" validate:"gte=0"`
	Description   string  `json:"description"`
	StockQuantity int     `json:"stockQuantity" validate:"gte=0"`
	MinStockLevel int     `json:"minStockLevel" validate:"gte=0"`
	SupplierID    string  `json:"supplierId" validate:"required,uuid"`
}

// CatalogHandler handles HTTP requests for suppliers, products and stock
type CatalogHandler struct {
	catalog   service.CatalogService
	inventory service.InventoryService
	logger    *zap.Logger
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(catalog service.CatalogService, inventory service.InventoryService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalog:   catalog,
		inventory: inventory,
		logger:    logger,
	}
}

// RegisterRoutes registers all catalog routes
func (h *CatalogHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/suppliers", func(r chi.Router) {
		r.Get("/", h.ListSuppliers)
		r.Post("/", h.CreateSupplier)
	})

	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", h.ListProducts)
		r.Post("/", h.CreateProduct)
		r.Get("/low-stock", h.ListLowStock)
		r.Get("/{id}", h.GetProduct)
		r.Put("/{id}/stock", h.UpdateStock)
	})
}

// ListSuppliers returns every supplier
func (h *CatalogHandler) ListSuppliers(w http.ResponseWriter, r *http.Request) {
	suppliers, err := h.catalog.ListSuppliers(r.Context())
	if err != nil {
		h.logger.Error("Failed to list suppliers", zap.Error(err))
		respondServiceError(w, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, suppliers)
}

// CreateSupplier handles supplier onboarding
func (h *CatalogHandler) CreateSupplier(w http.ResponseWriter, r *http.Request) {
	var req CreateSupplierRequest

	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Supplier validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	supplier, err := h.catalog.CreateSupplier(r.Context(), service.CreateSupplierInput{
		Name:        req.Name,
		Email:       req.Email,
		ContactInfo: req.ContactInfo,
	})
	if err != nil {
		h.logger.Error("Failed to create supplier", zap.Error(err))
		respondServiceError(w, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusCreated, supplier)
}

// ListProducts returns the full catalog with suppliers embedded
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.ListProducts(r.Context())
	if err != nil {
		h.logger.Error("Failed to list products", zap.Error(err))
		respondServiceError(w, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, products)
}

// CreateProduct handles catalog registration
func (h *CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest

	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Product validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	supplierID, err := uuid.Parse(req.SupplierID)
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid supplier id")
		return
	}

	product, err := h.catalog.CreateProduct(r.Context(), service.CreateProductInput{
		Name:          req.Name,
		SKU:           req.SKU,
		Price:         req.Price,
		Description:   req.Description,
		StockQuantity: req.StockQuantity,
		MinStockLevel: req.MinStockLevel,
		SupplierID:    supplierID,
	})
	if err != nil {
		h.logger.Error("Failed to create product", zap.Error(err))
		respondServiceError(w, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusCreated, product)
}

// GetProduct returns a single product
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	product, err := h.catalog.GetProduct(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, product)
}

// UpdateStock sets a product's stock quantity from the quantity query param
func (h *CatalogHandler) UpdateStock(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	quantity, err := strconv.Atoi(r.URL.Query().Get("quantity"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "quantity must be an integer")
		return
	}

	product, err := h.inventory.SetStock(r.Context(), id, quantity)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	if product.IsLow() {
		h.logger.Warn("Product at or below minimum stock level",
			zap.String("sku", product.SKU),
			zap.Int("stock_quantity", product.StockQuantity),
			zap.Int("min_stock_level", product.MinStockLevel),
		)
	}

	middleware.RespondWithJSON(w, http.StatusOK, product)
}

// ListLowStock returns products at or below their minimum stock level
func (h *CatalogHandler) ListLowStock(w http.ResponseWriter, r *http.Request) {
	products, err := h.inventory.ListLowStock(r.Context())
	if err != nil {
		h.logger.Error("Failed to list low-stock products", zap.Error(err))
		respondServiceError(w, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, products)
}
