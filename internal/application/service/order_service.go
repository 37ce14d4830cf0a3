package service

import (
	"context"
	"time"

	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/billing"
	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/entity"
	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/enum"
	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/repository"
	"github.com/Haiderali27-hub/hotel-manager-sub001/pkg/apperror"
	"github.com/Haiderali27-hub/hotel-manager-sub001/pkg/utils"
	"github.com/google/uuid"
)

// OrderService handles food order operations. Food orders use the
// toggle payment model: paid or unpaid, nothing in between.
type OrderService struct {
	orderRepo     repository.FoodOrderRepository
	orderItemRepo repository.FoodOrderItemRepository
	guestRepo     repository.GuestRepository
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repository.FoodOrderRepository,
	orderItemRepo repository.FoodOrderItemRepository,
	guestRepo repository.GuestRepository,
) *OrderService {
	return &OrderService{
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		guestRepo:     guestRepo,
	}
}

// OrderItemInput represents an item in a food order
type OrderItemInput struct {
	Name      string
	Quantity  int
	UnitPrice float64
}

// CreateOrderInput represents the create food order input
type CreateOrderInput struct {
	UserID  uuid.UUID
	GuestID uuid.UUID
	Items   []OrderItemInput
	Method  enum.PaymentMethod
	PayNow  bool
}

// CreateOrder creates a food order for a checked-in guest
func (s *OrderService) CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.FoodOrder, error) {
	guest, err := s.guestRepo.GetByID(ctx, input.GuestID)
	if err != nil {
		return nil, err
	}
	if guest == nil {
		return nil, apperror.NewNotFoundError("Guest")
	}
	if guest.Status != enum.StayStatusCheckedIn {
		return nil, apperror.NewConflictError("Cannot order for a checked-out guest")
	}

	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Order must have at least one item")
	}

	method := input.Method
	if method == "" {
		method = enum.PaymentMethodCash
	}
	if !method.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid payment method")
	}

	var total int64
	items := make([]entity.FoodOrderItem, 0, len(input.Items))
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, apperror.NewBadRequestError("Item quantity must be positive")
		}
		if item.UnitPrice < 0 {
			return nil, apperror.NewBadRequestError("Item price cannot be negative")
		}
		unitPrice := billing.CentsFromFloat(item.UnitPrice)
		lineTotal := billing.LineTotal(item.Quantity, unitPrice)
		total += lineTotal
		items = append(items, entity.FoodOrderItem{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: unitPrice,
			Total:     lineTotal,
		})
	}

	now := time.Now()
	order := &entity.FoodOrder{
		UserID:    input.UserID,
		GuestID:   input.GuestID,
		OrderNo:   utils.GenerateOrderNo(),
		OrderDate: now,
		Total:     total,
		Method:    method,
	}
	if input.PayNow {
		order.Paid = true
		order.PaidAt = &now
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	for i := range items {
		items[i].OrderID = order.ID
	}
	if err := s.orderItemRepo.CreateBatch(ctx, items); err != nil {
		// Compensate: remove the order header so no empty order lingers.
		_ = s.orderRepo.Delete(ctx, order.ID)
		return nil, err
	}
	order.Items = items

	return order, nil
}

// GetOrder returns a food order with its items
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.FoodOrder, error) {
	order, err := s.orderRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// ListOrders returns food orders matching the filter
func (s *OrderService) ListOrders(ctx context.Context, params *repository.FoodOrderFilterParams) ([]entity.FoodOrder, int64, error) {
	return s.orderRepo.List(ctx, params)
}

// TogglePayment flips an order between paid and unpaid and returns the
// new state. The flip is atomic at the repository, so two operators
// toggling at once serialize instead of losing an update.
func (s *OrderService) TogglePayment(ctx context.Context, id uuid.UUID) (*entity.FoodOrder, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	if _, err := s.orderRepo.TogglePaid(ctx, id, time.Now()); err != nil {
		if err == repository.ErrBillableNotFound {
			return nil, apperror.NewNotFoundError("Order")
		}
		return nil, err
	}

	return s.orderRepo.GetWithItems(ctx, id)
}

// DeleteOrder removes an order and its items
func (s *OrderService) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return apperror.NewNotFoundError("Order")
	}

	if err := s.orderItemRepo.DeleteByOrderID(ctx, id); err != nil {
		return err
	}
	return s.orderRepo.Delete(ctx, id)
}
