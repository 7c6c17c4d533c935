package transport

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"supplychain-core/internal/domain"

	"github.com/google/uuid"
)

func TestListProductsEmbedsSuppliers(t *testing.T) {
	api := newTestAPI()
	api.seedProduct("FURN-001", 150.00, 50, 10)

	req := httptest.NewRequest("GET", "/api/products", nil)
	w := httptest.NewRecorder()
	api.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var products []domain.Product
	if err := json.Unmarshal(w.Body.Bytes(), &products); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if len(products) != 1 {
		t.Fatalf("expected 1 product, got %d", len(products))
	}

	if products[0].Supplier == nil || products[0].Supplier.Name != "Apex Furniture" {
		t.Error("product JSON must embed its supplier")
	}
}

func TestUpdateStock(t *testing.T) {
	api := newTestAPI()
	product := api.seedProduct("FURN-002", 450.00, 5, 10)

	url := fmt.Sprintf("/api/products/%s/stock?quantity=20", product.ID)
	req := httptest.NewRequest("PUT", url, nil)
	w := httptest.NewRecorder()
	api.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var updated domain.Product
	if err := json.Unmarshal(w.Body.Bytes(), &updated); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if updated.StockQuantity != 20 {
		t.Errorf("expected stock 20, got %d", updated.StockQuantity)
	}

	if api.productRepo.products[product.ID].StockQuantity != 20 {
		t.Error("stock update was not persisted")
	}
}

func TestUpdateStockUnknownProductIs404(t *testing.T) {
	api := newTestAPI()

	url := fmt.Sprintf("/api/products/%s/stock?quantity=20", uuid.New())
	req := httptest.NewRequest("PUT", url, nil)
	w := httptest.NewRecorder()
	api.router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestUpdateStockNegativeQuantityIs422(t *testing.T) {
	api := newTestAPI()
	product := api.seedProduct("FURN-001", 150.00, 50, 10)

	url := fmt.Sprintf("/api/products/%s/stock?quantity=-5", product.ID)
	req := httptest.NewRequest("PUT", url, nil)
	w := httptest.NewRecorder()
	api.router.ServeHTTP(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", w.Code)
	}

	if api.productRepo.products[product.ID].StockQuantity != 50 {
		t.Error("rejected update must not change stock")
	}
}

func TestUpdateStockNonIntegerQuantityIs400(t *testing.T) {
	api := newTestAPI()
	product := api.seedProduct("FURN-001", 150.00, 50, 10)

	url := fmt.Sprintf("/api/products/%s/stock?quantity=lots", product.ID)
	req := httptest.NewRequest("PUT", url, nil)
	w := httptest.NewRecorder()
	api.router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestListLowStock(t *testing.T) {
	api := newTestAPI()
	api.seedProduct("FURN-001", 150.00, 50, 10)
	api.seedProduct("FURN-002", 450.00, 5, 10)

	req := httptest.NewRequest("GET", "/api/products/low-stock", nil)
	w := httptest.NewRecorder()
	api.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var products []domain.Product
	if err := json.Unmarshal(w.Body.Bytes(), &products); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if len(products) != 1 || products[0].SKU != "FURN-002" {
		t.Errorf("expected only FURN-002, got %v", products)
	}
}

func TestCreateSupplier(t *testing.T) {
	api := newTestAPI()

	body, _ := json.Marshal(map[string]string{
		"name":        "TechGadget Inc",
		"email":       "sales@techgadget.com",
		"contactInfo": "456 Silicon Ave, CA",
	})
	req := httptest.NewRequest("POST", "/api/suppliers", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	api.router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	if len(api.supplierRepo.suppliers) != 1 {
		t.Error("supplier was not persisted")
	}
}

func TestCreateSupplierInvalidEmailIs400(t *testing.T) {
	api := newTestAPI()

	body, _ := json.Marshal(map[string]string{
		"name":  "TechGadget Inc",
		"email": "not-an-email",
	})
	req := httptest.NewRequest("POST", "/api/suppliers", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	api.router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestCreateProduct(t *testing.T) {
	api := newTestAPI()
	seeded := api.seedProduct("FURN-001", 150.00, 50, 10)

	body, _ := json.Marshal(map[string]interface{}{
		"name":          "Standing Desk Pro",
		"sku":           "FURN-002",
		"price":         450.00,
		"description":   "Dual motor electric standing desk.",
		"stockQuantity": 5,
		"minStockLevel": 10,
		"supplierId":    seeded.SupplierID.String(),
	})
	req := httptest.NewRequest("POST", "/api/products", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	api.router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	if len(api.productRepo.products) != 2 {
		t.Error("product was not persisted")
	}
}

func TestCreateProductDuplicateSKUIs409(t *testing.T) {
	api := newTestAPI()
	seeded := api.seedProduct("FURN-001", 150.00, 50, 10)

	body, _ := json.Marshal(map[string]interface{}{
		"name":       "Clone Chair",
		"sku":        "FURN-001",
		"price":      99.00,
		"supplierId": seeded.SupplierID.String(),
	})
	req := httptest.NewRequest("POST", "/api/products", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	api.router.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", w.Code)
	}
}

func TestGetProduct(t *testing.T) {
	api := newTestAPI()
	product := api.seedProduct("TECH-001", 299.99, 100, 15)

	req := httptest.NewRequest("GET", "/api/products/"+product.ID.String(), nil)
	w := httptest.NewRecorder()
	api.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var got domain.Product
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if got.SKU != "TECH-001" {
		t.Errorf("expected TECH-001, got %s", got.SKU)
	}
}

func TestGetProductBadIDIs400(t *testing.T) {
	api := newTestAPI()

	req := httptest.NewRequest("GET", "/api/products/not-a-uuid", nil)
	w := httptest.NewRecorder()
	api.router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}
