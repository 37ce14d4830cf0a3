package repository

import (
	"context"
	"time"

	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/entity"
	"github.com/Haiderali27-hub/hotel-manager-sub001/pkg/pagination"
	"github.com/google/uuid"
)

// FoodOrderFilterParams contains filtering parameters for food order queries
type FoodOrderFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	GuestID    *uuid.UUID
	Paid       *bool
	StartDate  *time.Time
	EndDate    *time.Time
}

// FoodOrderRepository defines the interface for food order data operations
type FoodOrderRepository interface {
	Create(ctx context.Context, order *entity.FoodOrder) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.FoodOrder, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.FoodOrder, error)
	Update(ctx context.Context, order *entity.FoodOrder) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *FoodOrderFilterParams) ([]entity.FoodOrder, int64, error)
	ListUnpaidByGuest(ctx context.Context, guestID uuid.UUID) ([]entity.FoodOrder, error)
	// TogglePaid atomically flips the paid flag inside a row lock and
	// returns the new state. Conflicting toggles from two operators
	// serialize instead of overwriting each other.
	TogglePaid(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
	// MarkOrdersPaid settles the given orders, used when food charges
	// are folded into a checkout bill. Only the orders captured when
	// the bill was computed are settled; an order placed after that
	// read stays unpaid and unbilled.
	MarkOrdersPaid(ctx context.Context, ids []uuid.UUID, at time.Time) error
}

// FoodOrderItemRepository defines the interface for food order line items
type FoodOrderItemRepository interface {
	CreateBatch(ctx context.Context, items []entity.FoodOrderItem) error
	GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]entity.FoodOrderItem, error)
	DeleteByOrderID(ctx context.Context, orderID uuid.UUID) error
}
