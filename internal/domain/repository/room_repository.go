package repository

import (
	"context"

	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/entity"
	"github.com/Haiderali27-hub/hotel-manager-sub001/pkg/pagination"
	"github.com/google/uuid"
)

// RoomRepository defines the interface for room data operations
type RoomRepository interface {
	Create(ctx context.Context, room *entity.Room) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Room, error)
	GetByNumber(ctx context.Context, number string) (*entity.Room, error)
	Update(ctx context.Context, room *entity.Room) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, availableOnly bool) ([]entity.Room, int64, error)
	SetOccupied(ctx context.Context, id uuid.UUID, occupied bool) error
	CountOccupied(ctx context.Context) (int64, int64, error)
}
