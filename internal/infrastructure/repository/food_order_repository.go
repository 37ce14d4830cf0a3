package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/entity"
	domainRepo "github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type foodOrderRepository struct {
	db *gorm.DB
}

// NewFoodOrderRepository creates a new food order repository
func NewFoodOrderRepository(db *gorm.DB) domainRepo.FoodOrderRepository {
	return &foodOrderRepository{db: db}
}

func (r *foodOrderRepository) Create(ctx context.Context, order *entity.FoodOrder) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *foodOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.FoodOrder, error) {
	var order entity.FoodOrder
	err := r.db.WithContext(ctx).First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *foodOrderRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.FoodOrder, error) {
	var order entity.FoodOrder
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *foodOrderRepository) Update(ctx context.Context, order *entity.FoodOrder) error {
	return r.db.WithContext(ctx).Save(order).Error
}

func (r *foodOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.FoodOrder{}, "id = ?", id).Error
}

func (r *foodOrderRepository) List(ctx context.Context, params *domainRepo.FoodOrderFilterParams) ([]entity.FoodOrder, int64, error) {
	var orders []entity.FoodOrder
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.FoodOrder{})

	if params.Search != "" {
		query = query.Where("order_no ILIKE ?", "%"+params.Search+"%")
	}

	if params.GuestID != nil {
		query = query.Where("guest_id = ?", *params.GuestID)
	}

	if params.Paid != nil {
		query = query.Where("paid = ?", *params.Paid)
	}

	if params.StartDate != nil {
		query = query.Where("order_date >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("order_date <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Items").
		Order("created_at DESC").
		Find(&orders).Error

	return orders, total, err
}

func (r *foodOrderRepository) ListUnpaidByGuest(ctx context.Context, guestID uuid.UUID) ([]entity.FoodOrder, error) {
	var orders []entity.FoodOrder
	err := r.db.WithContext(ctx).
		Where("guest_id = ? AND paid = ?", guestID, false).
		Order("order_date ASC").
		Find(&orders).Error
	return orders, err
}

// TogglePaid flips the paid flag under a row lock so two simultaneous
// toggles serialize rather than both reading the same prior state.
func (r *foodOrderRepository) TogglePaid(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	var nowPaid bool

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order entity.FoodOrder
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&order, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domainRepo.ErrBillableNotFound
		}
		if err != nil {
			return err
		}

		nowPaid = !order.Paid
		updates := map[string]interface{}{"paid": nowPaid}
		if nowPaid {
			updates["paid_at"] = at
		} else {
			updates["paid_at"] = nil
		}

		return tx.Model(&entity.FoodOrder{}).
			Where("id = ?", id).
			Updates(updates).Error
	})

	return nowPaid, err
}

func (r *foodOrderRepository) MarkOrdersPaid(ctx context.Context, ids []uuid.UUID, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&entity.FoodOrder{}).
		Where("id IN ? AND paid = ?", ids, false).
		Updates(map[string]interface{}{"paid": true, "paid_at": at}).Error
}

type foodOrderItemRepository struct {
	db *gorm.DB
}

// NewFoodOrderItemRepository creates a new food order item repository
func NewFoodOrderItemRepository(db *gorm.DB) domainRepo.FoodOrderItemRepository {
	return &foodOrderItemRepository{db: db}
}

func (r *foodOrderItemRepository) CreateBatch(ctx context.Context, items []entity.FoodOrderItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *foodOrderItemRepository) GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]entity.FoodOrderItem, error) {
	var items []entity.FoodOrderItem
	err := r.db.WithContext(ctx).Where("order_id = ?", orderID).Find(&items).Error
	return items, err
}

func (r *foodOrderItemRepository) DeleteByOrderID(ctx context.Context, orderID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.FoodOrderItem{}, "order_id = ?", orderID).Error
}
