package repository

import (
	"context"
	"time"

	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/entity"
	"github.com/Haiderali27-hub/hotel-manager-sub001/pkg/pagination"
	"github.com/google/uuid"
)

// SaleFilterParams contains filtering parameters for sale queries
type SaleFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	CustomerID *uuid.UUID
	DueOnly    bool
	StartDate  *time.Time
	EndDate    *time.Time
	SortBy     string
	SortOrder  string
}

// SaleRepository defines the interface for sale data operations
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	Update(ctx context.Context, sale *entity.Sale) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *SaleFilterParams) ([]entity.Sale, int64, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.Sale, error)
	SumTotalsSince(ctx context.Context, since time.Time) (int64, error)
	SumDue(ctx context.Context) (int64, error)
}

// SaleItemRepository defines the interface for sale line items
type SaleItemRepository interface {
	CreateBatch(ctx context.Context, items []entity.SaleItem) error
	GetBySaleID(ctx context.Context, saleID uuid.UUID) ([]entity.SaleItem, error)
	DeleteBySaleID(ctx context.Context, saleID uuid.UUID) error
}
