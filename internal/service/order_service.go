package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"supplychain-core/internal/domain"
	"supplychain-core/internal/notifier"
	"supplychain-core/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrInvalidTransition = errors.New("invalid order status transition")
	ErrDispatchFailed    = errors.New("failed to notify supplier")
)

// OrderService owns the purchase order lifecycle
type OrderService interface {
	CreateOrder(ctx context.Context, productID uuid.UUID, quantity int) (*domain.PurchaseOrder, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*domain.PurchaseOrder, error)
	ListOrders(ctx context.Context) ([]*domain.PurchaseOrder, error)
	Approve(ctx context.Context, id uuid.UUID) (*domain.PurchaseOrder, error)
	Reject(ctx context.Context, id uuid.UUID) (*domain.PurchaseOrder, error)
	Dispatch(ctx context.Context, id uuid.UUID) (*domain.PurchaseOrder, error)
}

type orderService struct {
	orderRepo       repository.PurchaseOrderRepository
	productRepo     repository.ProductRepository
	notifier        notifier.SupplierNotifier
	dispatchTimeout time.Duration
}

// NewOrderService creates a new instance of OrderService
func NewOrderService(
	orderRepo repository.PurchaseOrderRepository,
	productRepo repository.ProductRepository,
	supplierNotifier notifier.SupplierNotifier,
	dispatchTimeout time.Duration,
) OrderService {
	return &orderService{
		orderRepo:       orderRepo,
		productRepo:     productRepo,
		notifier:        supplierNotifier,
		dispatchTimeout: dispatchTimeout,
	}
}

// CreateOrder drafts a purchase order in PENDING_APPROVAL. The total cost is
// computed from the product price at this moment and never recomputed.
func (s *orderService) CreateOrder(ctx context.Context, productID uuid.UUID, quantity int) (*domain.PurchaseOrder, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	order := &domain.PurchaseOrder{
		ID:        uuid.New(),
		ProductID: product.ID,
		Product:   product,
		Quantity:  quantity,
		TotalCost: product.Price * float64(quantity),
		Status:    domain.StatusPendingApproval,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

// GetOrder loads a single purchase order
func (s *orderService) GetOrder(ctx context.Context, id uuid.UUID) (*domain.PurchaseOrder, error) {
	return s.orderRepo.FindByID(ctx, id)
}

// ListOrders returns the full order audit trail, newest first
func (s *orderService) ListOrders(ctx context.Context) ([]*domain.PurchaseOrder, error) {
	return s.orderRepo.FindAll(ctx)
}

// Approve advances a pending order to APPROVED
func (s *orderService) Approve(ctx context.Context, id uuid.UUID) (*domain.PurchaseOrder, error) {
	return s.transition(ctx, id, domain.StatusApproved)
}

// Reject moves a pending order to the terminal REJECTED state
func (s *orderService) Reject(ctx context.Context, id uuid.UUID) (*domain.PurchaseOrder, error) {
	return s.transition(ctx, id, domain.StatusRejected)
}

// Dispatch notifies the supplier and, only on success, marks an approved
// order SENT_TO_SUPPLIER. On notifier failure or timeout the order stays
// APPROVED and Dispatch is safe to retry.
func (s *orderService) Dispatch(ctx context.Context, id uuid.UUID) (*domain.PurchaseOrder, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransitionTo(domain.StatusSentToSupplier) {
		return nil, ErrInvalidTransition
	}

	notifyCtx, cancel := context.WithTimeout(ctx, s.dispatchTimeout)
	defer cancel()

	if err := s.notifier.NotifySupplier(notifyCtx, order); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDispatchFailed, err)
	}

	now := time.Now()
	if err := s.orderRepo.UpdateStatusFrom(ctx, id, order.Status, domain.StatusSentToSupplier, now); err != nil {
		if errors.Is(err, repository.ErrStatusConflict) {
			return nil, ErrInvalidTransition
		}
		return nil, err
	}

	order.Status = domain.StatusSentToSupplier
	order.UpdatedAt = now
	return order, nil
}

// transition performs a guarded status change, refreshing updated_at
func (s *orderService) transition(ctx context.Context, id uuid.UUID, to domain.OrderStatus) (*domain.PurchaseOrder, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransitionTo(to) {
		return nil, ErrInvalidTransition
	}

	now := time.Now()
	if err := s.orderRepo.UpdateStatusFrom(ctx, id, order.Status, to, now); err != nil {
		if errors.Is(err, repository.ErrStatusConflict) {
			return nil, ErrInvalidTransition
		}
		return nil, err
	}

	order.Status = to
	order.UpdatedAt = now
	return order, nil
}
