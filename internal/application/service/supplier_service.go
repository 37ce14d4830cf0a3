package service

import (
	"context"

	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/entity"
	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/repository"
	"github.com/Haiderali27-hub/hotel-manager-sub001/pkg/apperror"
	"github.com/Haiderali27-hub/hotel-manager-sub001/pkg/pagination"
	"github.com/google/uuid"
)

// SupplierService handles supplier-related operations
type SupplierService struct {
	supplierRepo repository.SupplierRepository
	purchaseRepo repository.PurchaseRepository
}

// NewSupplierService creates a new supplier service
func NewSupplierService(supplierRepo repository.SupplierRepository, purchaseRepo repository.PurchaseRepository) *SupplierService {
	return &SupplierService{
		supplierRepo: supplierRepo,
		purchaseRepo: purchaseRepo,
	}
}

// CreateSupplierInput represents the create supplier input
type CreateSupplierInput struct {
	UserID   uuid.UUID
	Name     string
	Email    *string
	Phone    *string
	Address  *string
	ShopName *string
}

// CreateSupplier creates a new supplier
func (s *SupplierService) CreateSupplier(ctx context.Context, input *CreateSupplierInput) (*entity.Supplier, error) {
	supplier := &entity.Supplier{
		UserID:   input.UserID,
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Address:  input.Address,
		ShopName: input.ShopName,
		Active:   true,
	}

	if err := s.supplierRepo.Create(ctx, supplier); err != nil {
		return nil, err
	}

	return supplier, nil
}

// GetSupplier returns a supplier by ID
func (s *SupplierService) GetSupplier(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apperror.NewNotFoundError("Supplier")
	}
	return supplier, nil
}

// UpdateSupplierInput represents the update supplier input
type UpdateSupplierInput struct {
	Name     *string
	Email    *string
	Phone    *string
	Address  *string
	ShopName *string
	Active   *bool
}

// UpdateSupplier updates a supplier
func (s *SupplierService) UpdateSupplier(ctx context.Context, id uuid.UUID, input *UpdateSupplierInput) (*entity.Supplier, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apperror.NewNotFoundError("Supplier")
	}

	if input.Name != nil {
		supplier.Name = *input.Name
	}
	if input.Email != nil {
		supplier.Email = input.Email
	}
	if input.Phone != nil {
		supplier.Phone = input.Phone
	}
	if input.Address != nil {
		supplier.Address = input.Address
	}
	if input.ShopName != nil {
		supplier.ShopName = input.ShopName
	}
	if input.Active != nil {
		supplier.Active = *input.Active
	}

	if err := s.supplierRepo.Update(ctx, supplier); err != nil {
		return nil, err
	}

	return supplier, nil
}

// DeleteSupplier removes a supplier unless a purchase is still owed
func (s *SupplierService) DeleteSupplier(ctx context.Context, id uuid.UUID) error {
	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if supplier == nil {
		return apperror.NewNotFoundError("Supplier")
	}

	purchases, err := s.purchaseRepo.ListBySupplier(ctx, id)
	if err != nil {
		return err
	}
	for _, p := range purchases {
		if !p.Settled() {
			return apperror.NewConflictError("Cannot delete a supplier with an outstanding balance")
		}
	}

	return s.supplierRepo.Delete(ctx, id)
}

// ListSuppliers returns suppliers with pagination
func (s *SupplierService) ListSuppliers(ctx context.Context, params *pagination.PaginationParams, search string, includeInactive bool) ([]entity.Supplier, int64, error) {
	return s.supplierRepo.List(ctx, params, search, includeInactive)
}
