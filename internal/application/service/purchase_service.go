package service

import (
	"context"
	"time"

	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/billing"
	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/entity"
	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/enum"
	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/repository"
	"github.com/Haiderali27-hub/hotel-manager-sub001/pkg/apperror"
	"github.com/Haiderali27-hub/hotel-manager-sub001/pkg/utils"
	"github.com/google/uuid"
)

// PurchaseService handles purchase operations. Purchases mirror sales:
// payments accumulate against the total in the ledger.
type PurchaseService struct {
	purchaseRepo     repository.PurchaseRepository
	purchaseItemRepo repository.PurchaseItemRepository
	supplierRepo     repository.SupplierRepository
	paymentRepo      repository.PaymentRepository
}

// NewPurchaseService creates a new purchase service
func NewPurchaseService(
	purchaseRepo repository.PurchaseRepository,
	purchaseItemRepo repository.PurchaseItemRepository,
	supplierRepo repository.SupplierRepository,
	paymentRepo repository.PaymentRepository,
) *PurchaseService {
	return &PurchaseService{
		purchaseRepo:     purchaseRepo,
		purchaseItemRepo: purchaseItemRepo,
		supplierRepo:     supplierRepo,
		paymentRepo:      paymentRepo,
	}
}

// PurchaseItemInput represents an item in a purchase
type PurchaseItemInput struct {
	Name     string
	Quantity int
	UnitCost float64
}

// CreatePurchaseInput represents the create purchase input
type CreatePurchaseInput struct {
	UserID       uuid.UUID
	SupplierID   *uuid.UUID
	PurchaseDate *time.Time
	PaymentMode  enum.PaymentMode
	PaidAmount   float64
	Method       enum.PaymentMethod
	Note         *string
	Items        []PurchaseItemInput
}

// CreatePurchase creates a purchase with its items and the opening
// payment implied by the payment mode
func (s *PurchaseService) CreatePurchase(ctx context.Context, input *CreatePurchaseInput) (*entity.Purchase, error) {
	if input.SupplierID != nil {
		supplier, err := s.supplierRepo.GetByID(ctx, *input.SupplierID)
		if err != nil {
			return nil, err
		}
		if supplier == nil {
			return nil, apperror.NewNotFoundError("Supplier")
		}
	}

	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Purchase must have at least one item")
	}

	mode := input.PaymentMode
	if mode == "" {
		mode = enum.PaymentModePayLater
	}
	if !mode.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid payment mode")
	}

	method := input.Method
	if method == "" {
		method = enum.PaymentMethodCash
	}
	if !method.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid payment method")
	}

	var total int64
	items := make([]entity.PurchaseItem, 0, len(input.Items))
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, apperror.NewBadRequestError("Item quantity must be positive")
		}
		if item.UnitCost < 0 {
			return nil, apperror.NewBadRequestError("Item cost cannot be negative")
		}
		unitCost := billing.CentsFromFloat(item.UnitCost)
		lineTotal := billing.LineTotal(item.Quantity, unitCost)
		total += lineTotal
		items = append(items, entity.PurchaseItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			UnitCost: unitCost,
			Total:    lineTotal,
		})
	}

	var paid int64
	switch mode {
	case enum.PaymentModePayNow:
		paid = total
	case enum.PaymentModePayPartial:
		paid = billing.CentsFromFloat(input.PaidAmount)
		if paid <= 0 {
			return nil, apperror.NewBadRequestError("Partial payment must be positive")
		}
		if paid > total {
			return nil, apperror.NewConflictError("Payment exceeds purchase total")
		}
	}

	purchaseDate := time.Now()
	if input.PurchaseDate != nil {
		purchaseDate = *input.PurchaseDate
	}

	purchase := &entity.Purchase{
		UserID:       input.UserID,
		SupplierID:   input.SupplierID,
		PurchaseNo:   utils.GeneratePurchaseNo(),
		PurchaseDate: purchaseDate,
		PaymentMode:  mode,
		Total:        total,
		Paid:         paid,
		Due:          total - paid,
		Note:         input.Note,
	}

	if err := s.purchaseRepo.Create(ctx, purchase); err != nil {
		return nil, err
	}

	for i := range items {
		items[i].PurchaseID = purchase.ID
	}
	if err := s.purchaseItemRepo.CreateBatch(ctx, items); err != nil {
		// Compensate: remove the purchase header so no empty purchase
		// lingers.
		_ = s.purchaseRepo.Delete(ctx, purchase.ID)
		return nil, err
	}
	purchase.Items = items

	if paid > 0 {
		payment := &entity.PaymentRecord{
			UserID:     input.UserID,
			BillableID: purchase.ID,
			Kind:       enum.BillableKindPurchase,
			Amount:     paid,
			Method:     method,
		}
		if err := s.paymentRepo.Create(ctx, payment); err != nil {
			_ = s.purchaseItemRepo.DeleteByPurchaseID(ctx, purchase.ID)
			_ = s.purchaseRepo.Delete(ctx, purchase.ID)
			return nil, err
		}
	}

	return purchase, nil
}

// GetPurchase returns a purchase with its items
func (s *PurchaseService) GetPurchase(ctx context.Context, id uuid.UUID) (*entity.Purchase, error) {
	purchase, err := s.purchaseRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, apperror.NewNotFoundError("Purchase")
	}
	return purchase, nil
}

// ListPurchases returns purchases matching the filter
func (s *PurchaseService) ListPurchases(ctx context.Context, params *repository.PurchaseFilterParams) ([]entity.Purchase, int64, error) {
	return s.purchaseRepo.List(ctx, params)
}

// DeletePurchase removes a purchase and its items, rejected when
// payments have already been recorded against it
func (s *PurchaseService) DeletePurchase(ctx context.Context, id uuid.UUID) error {
	purchase, err := s.purchaseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if purchase == nil {
		return apperror.NewNotFoundError("Purchase")
	}

	paid, err := s.paymentRepo.SumByBillable(ctx, enum.BillableKindPurchase, id)
	if err != nil {
		return err
	}
	if paid > 0 {
		return apperror.NewConflictError("Cannot delete a purchase with recorded payments")
	}

	if err := s.purchaseItemRepo.DeleteByPurchaseID(ctx, id); err != nil {
		return err
	}
	return s.purchaseRepo.Delete(ctx, id)
}
