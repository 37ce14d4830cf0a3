package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/entity"
	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/enum"
	"github.com/Haiderali27-hub/hotel-manager-sub001/pkg/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedSale(t *testing.T, repo *fakeSaleRepo, totalCents int64) *entity.Sale {
	t.Helper()
	sale := &entity.Sale{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		InvoiceNo: "INV-TEST",
		Total:     totalCents,
		Due:       totalCents,
	}
	require.NoError(t, repo.Create(context.Background(), sale))
	return sale
}

func TestLedgerService_RecordPayment_Accumulates(t *testing.T) {
	saleRepo := newFakeSaleRepo()
	paymentRepo := newFakePaymentRepo(saleRepo, newFakePurchaseRepo())
	svc := NewLedgerService(paymentRepo)
	ctx := context.Background()

	sale := seedSale(t, saleRepo, 50000) // 500.00

	out, err := svc.RecordPayment(ctx, &RecordPaymentInput{
		UserID:     uuid.New(),
		BillableID: sale.ID,
		Kind:       enum.BillableKindSale,
		Amount:     200,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(30000), out.NewBalance)

	out, err = svc.RecordPayment(ctx, &RecordPaymentInput{
		UserID:     uuid.New(),
		BillableID: sale.ID,
		Kind:       enum.BillableKindSale,
		Amount:     300,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), out.NewBalance)

	stored, err := saleRepo.GetByID(ctx, sale.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(50000), stored.Paid)
	assert.True(t, stored.Settled())
}

func TestLedgerService_RecordPayment_RejectsOverpayment(t *testing.T) {
	saleRepo := newFakeSaleRepo()
	paymentRepo := newFakePaymentRepo(saleRepo, newFakePurchaseRepo())
	svc := NewLedgerService(paymentRepo)
	ctx := context.Background()

	sale := seedSale(t, saleRepo, 50000)

	_, err := svc.RecordPayment(ctx, &RecordPaymentInput{
		UserID:     uuid.New(),
		BillableID: sale.ID,
		Kind:       enum.BillableKindSale,
		Amount:     200,
	})
	require.NoError(t, err)

	// Remaining balance is 300.00; 300.01 must be rejected, not clamped.
	_, err = svc.RecordPayment(ctx, &RecordPaymentInput{
		UserID:     uuid.New(),
		BillableID: sale.ID,
		Kind:       enum.BillableKindSale,
		Amount:     300.01,
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, apperror.GetAppError(err).Code)

	// The rejected payment must not have touched the ledger.
	paid, err := paymentRepo.SumByBillable(ctx, enum.BillableKindSale, sale.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(20000), paid)
}

func TestLedgerService_RecordPayment_SettledRejectsAnything(t *testing.T) {
	saleRepo := newFakeSaleRepo()
	paymentRepo := newFakePaymentRepo(saleRepo, newFakePurchaseRepo())
	svc := NewLedgerService(paymentRepo)
	ctx := context.Background()

	sale := seedSale(t, saleRepo, 50000)

	_, err := svc.RecordPayment(ctx, &RecordPaymentInput{
		UserID:     uuid.New(),
		BillableID: sale.ID,
		Kind:       enum.BillableKindSale,
		Amount:     500,
	})
	require.NoError(t, err)

	_, err = svc.RecordPayment(ctx, &RecordPaymentInput{
		UserID:     uuid.New(),
		BillableID: sale.ID,
		Kind:       enum.BillableKindSale,
		Amount:     0.01,
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, apperror.GetAppError(err).Code)
}

func TestLedgerService_RecordPayment_Validation(t *testing.T) {
	saleRepo := newFakeSaleRepo()
	paymentRepo := newFakePaymentRepo(saleRepo, newFakePurchaseRepo())
	svc := NewLedgerService(paymentRepo)
	ctx := context.Background()

	sale := seedSale(t, saleRepo, 50000)

	// Zero and negative amounts are rejected.
	for _, amount := range []float64{0, -10} {
		_, err := svc.RecordPayment(ctx, &RecordPaymentInput{
			UserID:     uuid.New(),
			BillableID: sale.ID,
			Kind:       enum.BillableKindSale,
			Amount:     amount,
		})
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
	}

	// Only ledgered kinds accept follow-up payments.
	_, err := svc.RecordPayment(ctx, &RecordPaymentInput{
		UserID:     uuid.New(),
		BillableID: sale.ID,
		Kind:       enum.BillableKindFoodOrder,
		Amount:     100,
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)

	// Missing billable record maps to 404.
	_, err = svc.RecordPayment(ctx, &RecordPaymentInput{
		UserID:     uuid.New(),
		BillableID: uuid.New(),
		Kind:       enum.BillableKindSale,
		Amount:     100,
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
}

func TestLedgerService_RecordPayment_Purchase(t *testing.T) {
	purchaseRepo := newFakePurchaseRepo()
	paymentRepo := newFakePaymentRepo(newFakeSaleRepo(), purchaseRepo)
	svc := NewLedgerService(paymentRepo)
	ctx := context.Background()

	purchase := &entity.Purchase{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		PurchaseNo: "PUR-TEST",
		Total:      120000,
		Due:        120000,
	}
	require.NoError(t, purchaseRepo.Create(ctx, purchase))

	out, err := svc.RecordPayment(ctx, &RecordPaymentInput{
		UserID:     uuid.New(),
		BillableID: purchase.ID,
		Kind:       enum.BillableKindPurchase,
		Amount:     1200,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), out.NewBalance)

	stored, err := purchaseRepo.GetByID(ctx, purchase.ID)
	require.NoError(t, err)
	assert.True(t, stored.Settled())
}
