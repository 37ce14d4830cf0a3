package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/entity"
	domainRepo "github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *gorm.DB) domainRepo.ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

func (r *expenseRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	var expense entity.Expense
	err := r.db.WithContext(ctx).First(&expense, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &expense, err
}

func (r *expenseRepository) Update(ctx context.Context, expense *entity.Expense) error {
	return r.db.WithContext(ctx).Save(expense).Error
}

func (r *expenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Expense{}, "id = ?", id).Error
}

func (r *expenseRepository) List(ctx context.Context, params *domainRepo.ExpenseFilterParams) ([]entity.Expense, int64, error) {
	var expenses []entity.Expense
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Expense{})

	if params.Search != "" {
		query = query.Where("description ILIKE ?", "%"+params.Search+"%")
	}

	if params.Category != nil {
		query = query.Where("category = ?", *params.Category)
	}

	if params.StartDate != nil {
		query = query.Where("expense_date >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("expense_date <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("expense_date DESC").
		Find(&expenses).Error

	return expenses, total, err
}

func (r *expenseRepository) SumForPeriod(ctx context.Context, start, end time.Time) (int64, error) {
	var sum int64
	err := r.db.WithContext(ctx).Model(&entity.Expense{}).
		Where("expense_date >= ? AND expense_date <= ?", start, end).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&sum).Error
	return sum, err
}
