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

// SaleService handles sale operations. Sales use the accumulating
// payment model: payments stack up against the total until it is
// settled.
type SaleService struct {
	saleRepo     repository.SaleRepository
	saleItemRepo repository.SaleItemRepository
	customerRepo repository.CustomerRepository
	paymentRepo  repository.PaymentRepository
}

// NewSaleService creates a new sale service
func NewSaleService(
	saleRepo repository.SaleRepository,
	saleItemRepo repository.SaleItemRepository,
	customerRepo repository.CustomerRepository,
	paymentRepo repository.PaymentRepository,
) *SaleService {
	return &SaleService{
		saleRepo:     saleRepo,
		saleItemRepo: saleItemRepo,
		customerRepo: customerRepo,
		paymentRepo:  paymentRepo,
	}
}

// SaleItemInput represents an item in a sale
type SaleItemInput struct {
	Name      string
	Quantity  int
	UnitPrice float64
}

// CreateSaleInput represents the create sale input
type CreateSaleInput struct {
	UserID      uuid.UUID
	CustomerID  *uuid.UUID
	SaleDate    *time.Time
	PaymentMode enum.PaymentMode
	PaidAmount  float64
	Method      enum.PaymentMethod
	Note        *string
	Items       []SaleItemInput
}

// CreateSale creates a sale with its items and the opening payment
// implied by the payment mode: pay_now settles the full total,
// pay_later records nothing, pay_partial records the given amount.
func (s *SaleService) CreateSale(ctx context.Context, input *CreateSaleInput) (*entity.Sale, error) {
	if input.CustomerID != nil {
		customer, err := s.customerRepo.GetByID(ctx, *input.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, apperror.NewNotFoundError("Customer")
		}
	}

	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Sale must have at least one item")
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
	items := make([]entity.SaleItem, 0, len(input.Items))
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, apperror.NewBadRequestError("Item quantity must be positive")
		}
		if item.UnitPrice < 0 {
			return nil, apperror.NewBadRequestError("Item price cannot be negative")
		}
		unitPrice := billing.CentsFromFloat(item.UnitPrice)
		lineTotal := billing.LineTotal(item.Quantity, unitPrice)
		total += lineTotal
		items = append(items, entity.SaleItem{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: unitPrice,
			Total:     lineTotal,
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
			return nil, apperror.NewConflictError("Payment exceeds sale total")
		}
	}

	saleDate := time.Now()
	if input.SaleDate != nil {
		saleDate = *input.SaleDate
	}

	sale := &entity.Sale{
		UserID:      input.UserID,
		CustomerID:  input.CustomerID,
		InvoiceNo:   utils.GenerateInvoiceNo(),
		SaleDate:    saleDate,
		PaymentMode: mode,
		Total:       total,
		Paid:        paid,
		Due:         total - paid,
		Note:        input.Note,
	}

	if err := s.saleRepo.Create(ctx, sale); err != nil {
		return nil, err
	}

	for i := range items {
		items[i].SaleID = sale.ID
	}
	if err := s.saleItemRepo.CreateBatch(ctx, items); err != nil {
		// Compensate: remove the sale header so no empty sale lingers.
		_ = s.saleRepo.Delete(ctx, sale.ID)
		return nil, err
	}
	sale.Items = items

	if paid > 0 {
		payment := &entity.PaymentRecord{
			UserID:     input.UserID,
			BillableID: sale.ID,
			Kind:       enum.BillableKindSale,
			Amount:     paid,
			Method:     method,
		}
		if err := s.paymentRepo.Create(ctx, payment); err != nil {
			_ = s.saleItemRepo.DeleteBySaleID(ctx, sale.ID)
			_ = s.saleRepo.Delete(ctx, sale.ID)
			return nil, err
		}
	}

	return sale, nil
}

// GetSale returns a sale with its items
func (s *SaleService) GetSale(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sale, nil
}

// ListSales returns sales matching the filter
func (s *SaleService) ListSales(ctx context.Context, params *repository.SaleFilterParams) ([]entity.Sale, int64, error) {
	return s.saleRepo.List(ctx, params)
}

// DeleteSale removes a sale, its items and is rejected when payments
// have already been recorded against it
func (s *SaleService) DeleteSale(ctx context.Context, id uuid.UUID) error {
	sale, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if sale == nil {
		return apperror.NewNotFoundError("Sale")
	}

	paid, err := s.paymentRepo.SumByBillable(ctx, enum.BillableKindSale, id)
	if err != nil {
		return err
	}
	if paid > 0 {
		return apperror.NewConflictError("Cannot delete a sale with recorded payments")
	}

	if err := s.saleItemRepo.DeleteBySaleID(ctx, id); err != nil {
		return err
	}
	return s.saleRepo.Delete(ctx, id)
}
