package transport

import (
	"context"
	"net/http"

	"supplychain-core/internal/domain"
	"supplychain-core/internal/middleware"
	"supplychain-core/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateOrderRequest represents the purchase order creation payload
type CreateOrderRequest struct {
	ProductID string `json:"productId" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// OrderHandler handles HTTP requests for the purchase order lifecycle
type OrderHandler struct {
	orders service.OrderService
	logger *zap.Logger
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orders service.OrderService, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		orders: orders,
		logger: logger,
	}
}

// RegisterRoutes registers all order routes
func (h *OrderHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/orders", func(r chi.Router) {
		r.Get("/", h.ListOrders)
		r.Post("/", h.CreateOrder)
		r.Get("/{id}", h.GetOrder)
		r.Post("/{id}/approve", h.ApproveOrder)
		r.Post("/{id}/reject", h.RejectOrder)
		r.Post("/{id}/dispatch", h.DispatchOrder)
	})
}

// ListOrders returns the full order audit trail
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.ListOrders(r.Context())
	if err != nil {
		h.logger.Error("Failed to list orders", zap.Error(err))
		respondServiceError(w, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, orders)
}

// CreateOrder drafts a purchase order in PENDING_APPROVAL
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest

	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Order validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	order, err := h.orders.CreateOrder(r.Context(), productID, req.Quantity)
	if err != nil {
		h.logger.Error("Failed to create order", zap.Error(err))
		respondServiceError(w, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusCreated, order)
}

// GetOrder returns a single purchase order
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	order, err := h.orders.GetOrder(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, order)
}

// ApproveOrder advances a pending order to APPROVED
func (h *OrderHandler) ApproveOrder(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.orders.Approve, "approve")
}

// RejectOrder moves a pending order to REJECTED
func (h *OrderHandler) RejectOrder(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.orders.Reject, "reject")
}

// DispatchOrder notifies the supplier and marks the order sent
func (h *OrderHandler) DispatchOrder(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.orders.Dispatch, "dispatch")
}

func (h *OrderHandler) transition(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, id uuid.UUID) (*domain.PurchaseOrder, error),
	name string,
) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	order, err := op(r.Context(), id)
	if err != nil {
		h.logger.Warn("Order transition failed",
			zap.String("operation", name),
			zap.String("order_id", id.String()),
			zap.Error(err),
		)
		respondServiceError(w, err)
		return
	}

	h.logger.Info("Order transitioned",
		zap.String("operation", name),
		zap.String("order_id", order.ID.String()),
		zap.String("status", string(order.Status)),
	)

	middleware.RespondWithJSON(w, http.StatusOK, order)
}
