package billing

import (
	"testing"

	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestEntityBalance(t *testing.T) {
	e := EntityBalance{Total: 50000, Paid: 20000}
	assert.Equal(t, int64(30000), e.Balance())
	assert.False(t, e.Settled())

	e.Paid = 50000
	assert.Equal(t, int64(0), e.Balance())
	assert.True(t, e.Settled())

	// Over-payment displays as zero, not negative.
	e.Paid = 60000
	assert.Equal(t, int64(0), e.Balance())
	assert.True(t, e.Settled())
}

func TestSummarize(t *testing.T) {
	rows := []EntityBalance{
		{ID: uuid.New(), Kind: enum.BillableKindSale, Total: 50000, Paid: 20000},
		{ID: uuid.New(), Kind: enum.BillableKindSale, Total: 30000, Paid: 30000},
		{ID: uuid.New(), Kind: enum.BillableKindSale, Total: 100000, Paid: 0},
	}

	s := Summarize(rows)
	assert.Equal(t, 3, s.Entities)
	assert.Equal(t, int64(180000), s.TotalBilled)
	assert.Equal(t, int64(50000), s.AmountPaid)

	// The owner balance is the sum of per-entity balances.
	var perEntity int64
	for _, r := range rows {
		perEntity += r.Balance()
	}
	assert.Equal(t, perEntity, s.BalanceDue)
	assert.Equal(t, int64(130000), s.BalanceDue)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.Zero(t, s.Entities)
	assert.Zero(t, s.TotalBilled)
	assert.Zero(t, s.BalanceDue)
}

func TestSummarize_OverpaymentDoesNotHideOtherBalances(t *testing.T) {
	rows := []EntityBalance{
		{Total: 50000, Paid: 70000}, // over-paid by 200.00
		{Total: 40000, Paid: 0},
	}

	s := Summarize(rows)
	assert.Equal(t, int64(40000), s.BalanceDue, "overpayment on one record must not offset another")
	assert.Equal(t, int64(90000), s.TotalBilled)
	assert.Equal(t, int64(70000), s.AmountPaid)
}
