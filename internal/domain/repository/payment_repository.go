package repository

import (
	"context"
	"errors"

	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/entity"
	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/enum"
	"github.com/Haiderali27-hub/hotel-manager-sub001/pkg/pagination"
	"github.com/google/uuid"
)

// Sentinel errors returned by conditionally-checked ledger writes.
// Services translate these into API-facing errors.
var (
	// ErrBillableNotFound means the target record vanished between the
	// caller's read and the locked write.
	ErrBillableNotFound = errors.New("billable record not found")
	// ErrBalanceExceeded means the payment would drive the balance
	// negative; the caller should re-fetch and retry.
	ErrBalanceExceeded = errors.New("payment exceeds outstanding balance")
)

// PaymentRepository defines the interface for payment ledger operations
type PaymentRepository interface {
	// AddToSale appends a payment to a sale inside a row lock. The
	// current balance is recomputed before the insert and the write is
	// rejected when the amount exceeds it, so concurrent operators
	// cannot drive the balance negative. Returns the new balance in
	// cents.
	AddToSale(ctx context.Context, saleID uuid.UUID, payment *entity.PaymentRecord) (int64, error)
	// AddToPurchase behaves like AddToSale for purchases.
	AddToPurchase(ctx context.Context, purchaseID uuid.UUID, payment *entity.PaymentRecord) (int64, error)
	// Create inserts a payment with no balance check, used for guest
	// stay settlements recorded at checkout.
	Create(ctx context.Context, payment *entity.PaymentRecord) error
	ListByBillable(ctx context.Context, kind enum.BillableKind, billableID uuid.UUID) ([]entity.PaymentRecord, error)
	List(ctx context.Context, params *pagination.PaginationParams, kind *enum.BillableKind) ([]entity.PaymentRecord, int64, error)
	SumByBillable(ctx context.Context, kind enum.BillableKind, billableID uuid.UUID) (int64, error)
}
