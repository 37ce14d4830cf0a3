package service

import (
	"context"
	"time"

	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/billing"
	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/entity"
	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/enum"
	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/repository"
	"github.com/Haiderali27-hub/hotel-manager-sub001/pkg/apperror"
	"github.com/google/uuid"
)

// ExpenseService handles operating expense bookkeeping
type ExpenseService struct {
	expenseRepo repository.ExpenseRepository
}

// NewExpenseService creates a new expense service
func NewExpenseService(expenseRepo repository.ExpenseRepository) *ExpenseService {
	return &ExpenseService{expenseRepo: expenseRepo}
}

// CreateExpenseInput represents the create expense input
type CreateExpenseInput struct {
	UserID      uuid.UUID
	Category    enum.ExpenseCategory
	Description string
	Amount      float64
	Method      enum.PaymentMethod
	ExpenseDate *time.Time
}

// CreateExpense records an operating expense
func (s *ExpenseService) CreateExpense(ctx context.Context, input *CreateExpenseInput) (*entity.Expense, error) {
	category := input.Category
	if category == "" {
		category = enum.ExpenseCategoryOther
	}
	if !category.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid expense category")
	}

	method := input.Method
	if method == "" {
		method = enum.PaymentMethodCash
	}
	if !method.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid payment method")
	}

	if input.Amount <= 0 {
		return nil, apperror.NewBadRequestError("Expense amount must be positive")
	}

	expenseDate := time.Now()
	if input.ExpenseDate != nil {
		expenseDate = *input.ExpenseDate
	}

	expense := &entity.Expense{
		UserID:      input.UserID,
		Category:    category,
		Description: input.Description,
		Amount:      billing.CentsFromFloat(input.Amount),
		Method:      method,
		ExpenseDate: expenseDate,
	}

	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}

	return expense, nil
}

// GetExpense returns an expense by ID
func (s *ExpenseService) GetExpense(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, apperror.NewNotFoundError("Expense")
	}
	return expense, nil
}

// UpdateExpenseInput represents the update expense input
type UpdateExpenseInput struct {
	Category    *enum.ExpenseCategory
	Description *string
	Amount      *float64
	Method      *enum.PaymentMethod
	ExpenseDate *time.Time
}

// UpdateExpense updates an expense record
func (s *ExpenseService) UpdateExpense(ctx context.Context, id uuid.UUID, input *UpdateExpenseInput) (*entity.Expense, error) {
	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, apperror.NewNotFoundError("Expense")
	}

	if input.Category != nil {
		if !input.Category.IsValid() {
			return nil, apperror.NewBadRequestError("Invalid expense category")
		}
		expense.Category = *input.Category
	}
	if input.Description != nil {
		expense.Description = *input.Description
	}
	if input.Amount != nil {
		if *input.Amount <= 0 {
			return nil, apperror.NewBadRequestError("Expense amount must be positive")
		}
		expense.Amount = billing.CentsFromFloat(*input.Amount)
	}
	if input.Method != nil {
		if !input.Method.IsValid() {
			return nil, apperror.NewBadRequestError("Invalid payment method")
		}
		expense.Method = *input.Method
	}
	if input.ExpenseDate != nil {
		expense.ExpenseDate = *input.ExpenseDate
	}

	if err := s.expenseRepo.Update(ctx, expense); err != nil {
		return nil, err
	}

	return expense, nil
}

// DeleteExpense removes an expense record
func (s *ExpenseService) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if expense == nil {
		return apperror.NewNotFoundError("Expense")
	}
	return s.expenseRepo.Delete(ctx, id)
}

// ListExpenses returns expenses matching the filter
func (s *ExpenseService) ListExpenses(ctx context.Context, params *repository.ExpenseFilterParams) ([]entity.Expense, int64, error) {
	return s.expenseRepo.List(ctx, params)
}
