package service

import (
	"context"
	"testing"
	"time"

	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/billing"
	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/entity"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type balanceFixture struct {
	svc          *BalanceService
	customerRepo *fakeCustomerRepo
	supplierRepo *fakeSupplierRepo
	saleRepo     *fakeSaleRepo
	purchaseRepo *fakePurchaseRepo
}

func newBalanceFixture() *balanceFixture {
	customerRepo := newFakeCustomerRepo()
	supplierRepo := newFakeSupplierRepo()
	saleRepo := newFakeSaleRepo()
	purchaseRepo := newFakePurchaseRepo()
	return &balanceFixture{
		svc:          NewBalanceService(customerRepo, supplierRepo, saleRepo, purchaseRepo),
		customerRepo: customerRepo,
		supplierRepo: supplierRepo,
		saleRepo:     saleRepo,
		purchaseRepo: purchaseRepo,
	}
}

func (f *balanceFixture) seedCustomerSale(t *testing.T, customerID uuid.UUID, total, paid int64) {
	t.Helper()
	require.NoError(t, f.saleRepo.Create(context.Background(), &entity.Sale{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		CustomerID: &customerID,
		InvoiceNo:  "INV-" + uuid.New().String()[:8],
		SaleDate:   time.Now(),
		Total:      total,
		Paid:       paid,
		Due:        total - paid,
	}))
}

func TestBalanceService_CustomerBalances(t *testing.T) {
	f := newBalanceFixture()
	ctx := context.Background()

	customer := &entity.Customer{ID: uuid.New(), UserID: uuid.New(), Name: "Acme", Active: true}
	require.NoError(t, f.customerRepo.Create(ctx, customer))

	f.seedCustomerSale(t, customer.ID, 100000, 40000) // owes 600.00
	f.seedCustomerSale(t, customer.ID, 50000, 50000)  // settled
	f.seedCustomerSale(t, customer.ID, 20000, 0)      // owes 200.00

	summaries, err := f.svc.CustomerBalances(ctx, false)
	require.NoError(t, err)
	require.Len(t, summaries, 1)

	s := summaries[0]
	assert.Equal(t, customer.ID, s.OwnerID)
	assert.Equal(t, "Acme", s.OwnerName)
	assert.Equal(t, 3, s.Entities)
	assert.Equal(t, int64(170000), s.TotalBilled)
	assert.Equal(t, int64(90000), s.AmountPaid)
	assert.Equal(t, int64(80000), s.BalanceDue)
}

func TestBalanceService_OverpaymentDoesNotOffset(t *testing.T) {
	f := newBalanceFixture()
	ctx := context.Background()

	customer := &entity.Customer{ID: uuid.New(), UserID: uuid.New(), Name: "Acme", Active: true}
	require.NoError(t, f.customerRepo.Create(ctx, customer))

	// One record over-paid by 100.00, another owing 50.00. The
	// over-payment floors to zero instead of hiding the debt.
	f.seedCustomerSale(t, customer.ID, 10000, 20000)
	f.seedCustomerSale(t, customer.ID, 5000, 0)

	summaries, err := f.svc.CustomerBalances(ctx, false)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, int64(5000), summaries[0].BalanceDue)
}

func TestBalanceService_InactiveFiltered(t *testing.T) {
	f := newBalanceFixture()
	ctx := context.Background()

	active := &entity.Customer{ID: uuid.New(), UserID: uuid.New(), Name: "Active", Active: true}
	inactive := &entity.Customer{ID: uuid.New(), UserID: uuid.New(), Name: "Gone", Active: false}
	require.NoError(t, f.customerRepo.Create(ctx, active))
	require.NoError(t, f.customerRepo.Create(ctx, inactive))

	summaries, err := f.svc.CustomerBalances(ctx, false)
	require.NoError(t, err)
	assert.Len(t, summaries, 1)

	summaries, err = f.svc.CustomerBalances(ctx, true)
	require.NoError(t, err)
	assert.Len(t, summaries, 2)
}

func TestBalanceService_SupplierStatement(t *testing.T) {
	f := newBalanceFixture()
	ctx := context.Background()

	supplier := &entity.Supplier{ID: uuid.New(), UserID: uuid.New(), Name: "Metro", Active: true}
	require.NoError(t, f.supplierRepo.Create(ctx, supplier))

	require.NoError(t, f.purchaseRepo.Create(ctx, &entity.Purchase{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		SupplierID:   &supplier.ID,
		PurchaseNo:   "PUR-1",
		PurchaseDate: time.Now(),
		Total:        80000,
		Paid:         30000,
		Due:          50000,
	}))

	statement, err := f.svc.SupplierStatement(ctx, supplier.ID)
	require.NoError(t, err)
	assert.Equal(t, "Metro", statement.Summary.OwnerName)
	require.Len(t, statement.Rows, 1)
	assert.Equal(t, int64(50000), statement.Rows[0].Balance())
	assert.Equal(t, int64(50000), statement.Summary.BalanceDue)

	// Per-row balances always add up to the summary figure.
	var sum int64
	for _, row := range statement.Rows {
		sum += row.Balance()
	}
	assert.Equal(t, statement.Summary.BalanceDue, sum)
}

func TestBalanceService_EmptyOwner(t *testing.T) {
	f := newBalanceFixture()
	ctx := context.Background()

	customer := &entity.Customer{ID: uuid.New(), UserID: uuid.New(), Name: "Fresh", Active: true}
	require.NoError(t, f.customerRepo.Create(ctx, customer))

	statement, err := f.svc.CustomerStatement(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, billing.OwnerSummary{
		OwnerID:   customer.ID,
		OwnerName: "Fresh",
	}, statement.Summary)
	assert.Empty(t, statement.Rows)
}
