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

type saleFixture struct {
	svc          *SaleService
	saleRepo     *fakeSaleRepo
	customerRepo *fakeCustomerRepo
	paymentRepo  *fakePaymentRepo
}

func newSaleFixture() *saleFixture {
	saleRepo := newFakeSaleRepo()
	customerRepo := newFakeCustomerRepo()
	paymentRepo := newFakePaymentRepo(saleRepo, newFakePurchaseRepo())
	return &saleFixture{
		svc:          NewSaleService(saleRepo, newFakeSaleItemRepo(), customerRepo, paymentRepo),
		saleRepo:     saleRepo,
		customerRepo: customerRepo,
		paymentRepo:  paymentRepo,
	}
}

func TestSaleService_CreateSale_PayNow(t *testing.T) {
	f := newSaleFixture()
	ctx := context.Background()

	sale, err := f.svc.CreateSale(ctx, &CreateSaleInput{
		UserID:      uuid.New(),
		PaymentMode: enum.PaymentModePayNow,
		Items: []SaleItemInput{
			{Name: "Towels", Quantity: 10, UnitPrice: 5},
			{Name: "Soap", Quantity: 20, UnitPrice: 1.25},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7500), sale.Total) // 50.00 + 25.00
	assert.Equal(t, int64(7500), sale.Paid)
	assert.Equal(t, int64(0), sale.Due)
	assert.True(t, sale.Settled())

	paid, err := f.paymentRepo.SumByBillable(ctx, enum.BillableKindSale, sale.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(7500), paid)
}

func TestSaleService_CreateSale_PayLater(t *testing.T) {
	f := newSaleFixture()
	ctx := context.Background()

	sale, err := f.svc.CreateSale(ctx, &CreateSaleInput{
		UserID:      uuid.New(),
		PaymentMode: enum.PaymentModePayLater,
		Items:       []SaleItemInput{{Name: "Linen", Quantity: 1, UnitPrice: 100}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), sale.Paid)
	assert.Equal(t, int64(10000), sale.Due)

	// No opening payment hits the ledger.
	paid, err := f.paymentRepo.SumByBillable(ctx, enum.BillableKindSale, sale.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), paid)
}

func TestSaleService_CreateSale_PayPartial(t *testing.T) {
	f := newSaleFixture()
	ctx := context.Background()

	sale, err := f.svc.CreateSale(ctx, &CreateSaleInput{
		UserID:      uuid.New(),
		PaymentMode: enum.PaymentModePayPartial,
		PaidAmount:  40,
		Items:       []SaleItemInput{{Name: "Linen", Quantity: 1, UnitPrice: 100}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4000), sale.Paid)
	assert.Equal(t, int64(6000), sale.Due)
	assert.False(t, sale.Settled())
}

func TestSaleService_CreateSale_PartialValidation(t *testing.T) {
	f := newSaleFixture()
	ctx := context.Background()

	// Zero partial payment is rejected.
	_, err := f.svc.CreateSale(ctx, &CreateSaleInput{
		UserID:      uuid.New(),
		PaymentMode: enum.PaymentModePayPartial,
		PaidAmount:  0,
		Items:       []SaleItemInput{{Name: "Linen", Quantity: 1, UnitPrice: 100}},
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)

	// Over the total is a conflict, never clamped.
	_, err = f.svc.CreateSale(ctx, &CreateSaleInput{
		UserID:      uuid.New(),
		PaymentMode: enum.PaymentModePayPartial,
		PaidAmount:  100.01,
		Items:       []SaleItemInput{{Name: "Linen", Quantity: 1, UnitPrice: 100}},
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, apperror.GetAppError(err).Code)
}

func TestSaleService_CreateSale_UnknownCustomer(t *testing.T) {
	f := newSaleFixture()
	ctx := context.Background()

	missing := uuid.New()
	_, err := f.svc.CreateSale(ctx, &CreateSaleInput{
		UserID:     uuid.New(),
		CustomerID: &missing,
		Items:      []SaleItemInput{{Name: "Linen", Quantity: 1, UnitPrice: 100}},
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
}

func TestSaleService_DeleteSale_RejectsWithPayments(t *testing.T) {
	f := newSaleFixture()
	ctx := context.Background()

	sale, err := f.svc.CreateSale(ctx, &CreateSaleInput{
		UserID:      uuid.New(),
		PaymentMode: enum.PaymentModePayPartial,
		PaidAmount:  10,
		Items:       []SaleItemInput{{Name: "Linen", Quantity: 1, UnitPrice: 100}},
	})
	require.NoError(t, err)

	err = f.svc.DeleteSale(ctx, sale.ID)
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, apperror.GetAppError(err).Code)
}

func TestSaleService_FollowUpPaymentsSettle(t *testing.T) {
	f := newSaleFixture()
	ledger := NewLedgerService(f.paymentRepo)
	ctx := context.Background()

	customer := &entity.Customer{ID: uuid.New(), UserID: uuid.New(), Name: "Acme", Active: true}
	require.NoError(t, f.customerRepo.Create(ctx, customer))

	sale, err := f.svc.CreateSale(ctx, &CreateSaleInput{
		UserID:      uuid.New(),
		CustomerID:  &customer.ID,
		PaymentMode: enum.PaymentModePayPartial,
		PaidAmount:  30,
		Items:       []SaleItemInput{{Name: "Linen", Quantity: 1, UnitPrice: 100}},
	})
	require.NoError(t, err)

	out, err := ledger.RecordPayment(ctx, &RecordPaymentInput{
		UserID:     uuid.New(),
		BillableID: sale.ID,
		Kind:       enum.BillableKindSale,
		Amount:     70,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), out.NewBalance)

	stored, err := f.saleRepo.GetByID(ctx, sale.ID)
	require.NoError(t, err)
	assert.True(t, stored.Settled())
}
