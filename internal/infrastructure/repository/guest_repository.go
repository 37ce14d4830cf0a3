package repository

import (
	"context"
	"errors"

	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/entity"
	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/enum"
	domainRepo "github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type guestRepository struct {
	db *gorm.DB
}

// NewGuestRepository creates a new guest repository
func NewGuestRepository(db *gorm.DB) domainRepo.GuestRepository {
	return &guestRepository{db: db}
}

func (r *guestRepository) Create(ctx context.Context, guest *entity.Guest) error {
	return r.db.WithContext(ctx).Create(guest).Error
}

func (r *guestRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Guest, error) {
	var guest entity.Guest
	err := r.db.WithContext(ctx).First(&guest, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &guest, err
}

func (r *guestRepository) GetWithRoom(ctx context.Context, id uuid.UUID) (*entity.Guest, error) {
	var guest entity.Guest
	err := r.db.WithContext(ctx).
		Preload("Room").
		First(&guest, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &guest, err
}

func (r *guestRepository) Update(ctx context.Context, guest *entity.Guest) error {
	return r.db.WithContext(ctx).Save(guest).Error
}

func (r *guestRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Guest{}, "id = ?", id).Error
}

func (r *guestRepository) List(ctx context.Context, params *domainRepo.GuestFilterParams) ([]entity.Guest, int64, error) {
	var guests []entity.Guest
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Guest{})

	if params.Search != "" {
		query = query.Where("name ILIKE ? OR phone ILIKE ?", "%"+params.Search+"%", "%"+params.Search+"%")
	}

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if params.RoomID != nil {
		query = query.Where("room_id = ?", *params.RoomID)
	}

	if params.StartDate != nil {
		query = query.Where("check_in >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("check_in <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := "created_at"
	sortOrder := "DESC"
	if params.SortBy != "" {
		sortBy = params.SortBy
	}
	if params.SortOrder == "ASC" || params.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Room").
		Order(sortBy + " " + sortOrder).
		Find(&guests).Error

	return guests, total, err
}

func (r *guestRepository) CountByStatus(ctx context.Context, status enum.StayStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Guest{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}
