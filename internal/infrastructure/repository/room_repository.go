package repository

import (
	"context"
	"errors"

	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/entity"
	domainRepo "github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/repository"
	"github.com/Haiderali27-hub/hotel-manager-sub001/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type roomRepository struct {
	db *gorm.DB
}

// NewRoomRepository creates a new room repository
func NewRoomRepository(db *gorm.DB) domainRepo.RoomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) Create(ctx context.Context, room *entity.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

func (r *roomRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	var room entity.Room
	err := r.db.WithContext(ctx).First(&room, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &room, err
}

func (r *roomRepository) GetByNumber(ctx context.Context, number string) (*entity.Room, error) {
	var room entity.Room
	err := r.db.WithContext(ctx).First(&room, "number = ?", number).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &room, err
}

func (r *roomRepository) Update(ctx context.Context, room *entity.Room) error {
	return r.db.WithContext(ctx).Save(room).Error
}

func (r *roomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Room{}, "id = ?", id).Error
}

func (r *roomRepository) List(ctx context.Context, params *pagination.PaginationParams, availableOnly bool) ([]entity.Room, int64, error) {
	var rooms []entity.Room
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Room{})
	if availableOnly {
		query = query.Where("occupied = ?", false)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("number ASC").
		Find(&rooms).Error

	return rooms, total, err
}

func (r *roomRepository) SetOccupied(ctx context.Context, id uuid.UUID, occupied bool) error {
	return r.db.WithContext(ctx).Model(&entity.Room{}).
		Where("id = ?", id).
		Update("occupied", occupied).Error
}

// CountOccupied returns (occupied, total) room counts.
func (r *roomRepository) CountOccupied(ctx context.Context) (int64, int64, error) {
	var occupied, total int64
	if err := r.db.WithContext(ctx).Model(&entity.Room{}).Count(&total).Error; err != nil {
		return 0, 0, err
	}
	err := r.db.WithContext(ctx).Model(&entity.Room{}).
		Where("occupied = ?", true).
		Count(&occupied).Error
	return occupied, total, err
}
