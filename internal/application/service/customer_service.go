package service

import (
	"context"

	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/entity"
	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/repository"
	"github.com/Haiderali27-hub/hotel-manager-sub001/pkg/apperror"
	"github.com/Haiderali27-hub/hotel-manager-sub001/pkg/pagination"
	"github.com/google/uuid"
)

// CustomerService handles customer-related operations
type CustomerService struct {
	customerRepo repository.CustomerRepository
	saleRepo     repository.SaleRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository, saleRepo repository.SaleRepository) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		saleRepo:     saleRepo,
	}
}

// CreateCustomerInput represents the create customer input
type CreateCustomerInput struct {
	UserID  uuid.UUID
	Name    string
	Email   *string
	Phone   *string
	Address *string
}

// CreateCustomer creates a new customer
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error) {
	customer := &entity.Customer{
		UserID:  input.UserID,
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Address: input.Address,
		Active:  true,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// GetCustomer returns a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// UpdateCustomerInput represents the update customer input
type UpdateCustomerInput struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
	Active  *bool
}

// UpdateCustomer updates a customer
func (s *CustomerService) UpdateCustomer(ctx context.Context, id uuid.UUID, input *UpdateCustomerInput) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Email != nil {
		customer.Email = input.Email
	}
	if input.Phone != nil {
		customer.Phone = input.Phone
	}
	if input.Address != nil {
		customer.Address = input.Address
	}
	if input.Active != nil {
		customer.Active = *input.Active
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// DeleteCustomer removes a customer unless they still owe on any sale
func (s *CustomerService) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if customer == nil {
		return apperror.NewNotFoundError("Customer")
	}

	sales, err := s.saleRepo.ListByCustomer(ctx, id)
	if err != nil {
		return err
	}
	for _, sale := range sales {
		if !sale.Settled() {
			return apperror.NewConflictError("Cannot delete a customer with an outstanding balance")
		}
	}

	return s.customerRepo.Delete(ctx, id)
}

// ListCustomers returns customers with pagination
func (s *CustomerService) ListCustomers(ctx context.Context, params *pagination.PaginationParams, search string, includeInactive bool) ([]entity.Customer, int64, error) {
	return s.customerRepo.List(ctx, params, search, includeInactive)
}
