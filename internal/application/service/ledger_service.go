package service

import (
	"context"
	"errors"

	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/billing"
	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/entity"
	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/enum"
	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/repository"
	"github.com/Haiderali27-hub/hotel-manager-sub001/pkg/apperror"
	"github.com/Haiderali27-hub/hotel-manager-sub001/pkg/pagination"
	"github.com/google/uuid"
)

// LedgerService records follow-up payments against sales and purchases.
// Amounts only accumulate; a payment that would overshoot the balance
// is rejected, never clamped.
type LedgerService struct {
	paymentRepo repository.PaymentRepository
}

// NewLedgerService creates a new ledger service
func NewLedgerService(paymentRepo repository.PaymentRepository) *LedgerService {
	return &LedgerService{paymentRepo: paymentRepo}
}

// RecordPaymentInput represents the record payment input
type RecordPaymentInput struct {
	UserID     uuid.UUID
	BillableID uuid.UUID
	Kind       enum.BillableKind
	Amount     float64
	Method     enum.PaymentMethod
	Note       *string
}

// RecordPaymentOutput represents the record payment output
type RecordPaymentOutput struct {
	Payment    *entity.PaymentRecord
	NewBalance int64 // Cents
}

// RecordPayment appends a payment against a sale or purchase. The
// balance check and insert happen atomically in the repository, so
// concurrent payments against the same record cannot overshoot
// together.
func (s *LedgerService) RecordPayment(ctx context.Context, input *RecordPaymentInput) (*RecordPaymentOutput, error) {
	if !input.Kind.Ledgered() {
		return nil, apperror.NewBadRequestError("Payments can only be recorded against sales and purchases")
	}

	method := input.Method
	if method == "" {
		method = enum.PaymentMethodCash
	}
	if !method.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid payment method")
	}

	amount := billing.CentsFromFloat(input.Amount)
	if amount <= 0 {
		return nil, apperror.NewBadRequestError("Payment amount must be positive")
	}

	payment := &entity.PaymentRecord{
		UserID:     input.UserID,
		BillableID: input.BillableID,
		Kind:       input.Kind,
		Amount:     amount,
		Method:     method,
		Note:       input.Note,
	}

	var newBalance int64
	var err error
	switch input.Kind {
	case enum.BillableKindSale:
		newBalance, err = s.paymentRepo.AddToSale(ctx, input.BillableID, payment)
	case enum.BillableKindPurchase:
		newBalance, err = s.paymentRepo.AddToPurchase(ctx, input.BillableID, payment)
	}

	if err != nil {
		if errors.Is(err, repository.ErrBillableNotFound) {
			return nil, apperror.NewNotFoundError("Billable record")
		}
		if errors.Is(err, repository.ErrBalanceExceeded) {
			return nil, apperror.NewConflictError("Payment exceeds outstanding balance")
		}
		return nil, err
	}

	return &RecordPaymentOutput{
		Payment:    payment,
		NewBalance: newBalance,
	}, nil
}

// ListPayments returns payments, optionally filtered by billable kind
func (s *LedgerService) ListPayments(ctx context.Context, params *pagination.PaginationParams, kind *enum.BillableKind) ([]entity.PaymentRecord, int64, error) {
	if kind != nil && !kind.IsValid() {
		return nil, 0, apperror.NewBadRequestError("Invalid billable kind")
	}
	return s.paymentRepo.List(ctx, params, kind)
}

// ListPaymentsForBillable returns the payment history of one record
func (s *LedgerService) ListPaymentsForBillable(ctx context.Context, kind enum.BillableKind, billableID uuid.UUID) ([]entity.PaymentRecord, error) {
	if !kind.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid billable kind")
	}
	return s.paymentRepo.ListByBillable(ctx, kind, billableID)
}
