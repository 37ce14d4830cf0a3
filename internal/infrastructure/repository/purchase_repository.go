package repository

import (
	"context"
	"errors"

	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/entity"
	domainRepo "github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type purchaseRepository struct {
	db *gorm.DB
}

// NewPurchaseRepository creates a new purchase repository
func NewPurchaseRepository(db *gorm.DB) domainRepo.PurchaseRepository {
	return &purchaseRepository{db: db}
}

func (r *purchaseRepository) Create(ctx context.Context, purchase *entity.Purchase) error {
	return r.db.WithContext(ctx).Create(purchase).Error
}

func (r *purchaseRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Purchase, error) {
	var purchase entity.Purchase
	err := r.db.WithContext(ctx).
		Preload("Supplier").
		First(&purchase, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &purchase, err
}

func (r *purchaseRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Purchase, error) {
	var purchase entity.Purchase
	err := r.db.WithContext(ctx).
		Preload("Supplier").
		Preload("Items").
		First(&purchase, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &purchase, err
}

func (r *purchaseRepository) Update(ctx context.Context, purchase *entity.Purchase) error {
	return r.db.WithContext(ctx).Save(purchase).Error
}

func (r *purchaseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Purchase{}, "id = ?", id).Error
}

func (r *purchaseRepository) List(ctx context.Context, params *domainRepo.PurchaseFilterParams) ([]entity.Purchase, int64, error) {
	var purchases []entity.Purchase
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Purchase{})

	if params.Search != "" {
		query = query.Where("purchase_no ILIKE ?", "%"+params.Search+"%")
	}

	if params.SupplierID != nil {
		query = query.Where("supplier_id = ?", *params.SupplierID)
	}

	if params.DueOnly {
		query = query.Where("due > 0")
	}

	if params.StartDate != nil {
		query = query.Where("purchase_date >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("purchase_date <= ?", *params.EndDate)
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
		Preload("Supplier").
		Order(sortBy + " " + sortOrder).
		Find(&purchases).Error

	return purchases, total, err
}

func (r *purchaseRepository) ListBySupplier(ctx context.Context, supplierID uuid.UUID) ([]entity.Purchase, error) {
	var purchases []entity.Purchase
	err := r.db.WithContext(ctx).
		Where("supplier_id = ?", supplierID).
		Order("purchase_date ASC").
		Find(&purchases).Error
	return purchases, err
}

func (r *purchaseRepository) SumDue(ctx context.Context) (int64, error) {
	var sum int64
	err := r.db.WithContext(ctx).Model(&entity.Purchase{}).
		Select("COALESCE(SUM(due), 0)").
		Scan(&sum).Error
	return sum, err
}

type purchaseItemRepository struct {
	db *gorm.DB
}

// NewPurchaseItemRepository creates a new purchase item repository
func NewPurchaseItemRepository(db *gorm.DB) domainRepo.PurchaseItemRepository {
	return &purchaseItemRepository{db: db}
}

func (r *purchaseItemRepository) CreateBatch(ctx context.Context, items []entity.PurchaseItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *purchaseItemRepository) GetByPurchaseID(ctx context.Context, purchaseID uuid.UUID) ([]entity.PurchaseItem, error) {
	var items []entity.PurchaseItem
	err := r.db.WithContext(ctx).Where("purchase_id = ?", purchaseID).Find(&items).Error
	return items, err
}

func (r *purchaseItemRepository) DeleteByPurchaseID(ctx context.Context, purchaseID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.PurchaseItem{}, "purchase_id = ?", purchaseID).Error
}
