package repository

import (
	"context"
	"time"

	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/entity"
	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/enum"
	"github.com/Haiderali27-hub/hotel-manager-sub001/pkg/pagination"
	"github.com/google/uuid"
)

// GuestFilterParams contains filtering parameters for guest queries
type GuestFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.StayStatus
	RoomID     *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	SortBy     string
	SortOrder  string
}

// GuestRepository defines the interface for guest stay data operations
type GuestRepository interface {
	Create(ctx context.Context, guest *entity.Guest) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Guest, error)
	GetWithRoom(ctx context.Context, id uuid.UUID) (*entity.Guest, error)
	Update(ctx context.Context, guest *entity.Guest) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *GuestFilterParams) ([]entity.Guest, int64, error)
	CountByStatus(ctx context.Context, status enum.StayStatus) (int64, error)
}
