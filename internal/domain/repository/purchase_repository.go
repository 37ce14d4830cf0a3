package repository

import (
	"context"
	"time"

	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/entity"
	"github.com/Haiderali27-hub/hotel-manager-sub001/pkg/pagination"
	"github.com/google/uuid"
)

// PurchaseFilterParams contains filtering parameters for purchase queries
type PurchaseFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	SupplierID *uuid.UUID
	DueOnly    bool
	StartDate  *time.Time
	EndDate    *time.Time
	SortBy     string
	SortOrder  string
}

// PurchaseRepository defines the interface for purchase data operations
type PurchaseRepository interface {
	Create(ctx context.Context, purchase *entity.Purchase) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Purchase, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Purchase, error)
	Update(ctx context.Context, purchase *entity.Purchase) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *PurchaseFilterParams) ([]entity.Purchase, int64, error)
	ListBySupplier(ctx context.Context, supplierID uuid.UUID) ([]entity.Purchase, error)
	SumDue(ctx context.Context) (int64, error)
}

// PurchaseItemRepository defines the interface for purchase line items
type PurchaseItemRepository interface {
	CreateBatch(ctx context.Context, items []entity.PurchaseItem) error
	GetByPurchaseID(ctx context.Context, purchaseID uuid.UUID) ([]entity.PurchaseItem, error)
	DeleteByPurchaseID(ctx context.Context, purchaseID uuid.UUID) error
}
