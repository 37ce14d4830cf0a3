package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/entity"
	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/enum"
	"github.com/Haiderali27-hub/hotel-manager-sub001/pkg/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type guestFixture struct {
	svc           *GuestService
	guestRepo     *fakeGuestRepo
	roomRepo      *fakeRoomRepo
	foodOrderRepo *fakeFoodOrderRepo
	paymentRepo   *fakePaymentRepo
	settingsRepo  *fakeSettingsRepo
}

func newGuestFixture() *guestFixture {
	guestRepo := newFakeGuestRepo()
	roomRepo := newFakeRoomRepo()
	foodOrderRepo := newFakeFoodOrderRepo()
	paymentRepo := newFakePaymentRepo(newFakeSaleRepo(), newFakePurchaseRepo())
	settingsRepo := &fakeSettingsRepo{settings: &entity.BusinessSettings{
		ID:       uuid.New(),
		Currency: "PKR",
	}}
	return &guestFixture{
		svc:           NewGuestService(guestRepo, roomRepo, foodOrderRepo, paymentRepo, settingsRepo),
		guestRepo:     guestRepo,
		roomRepo:      roomRepo,
		foodOrderRepo: foodOrderRepo,
		paymentRepo:   paymentRepo,
		settingsRepo:  settingsRepo,
	}
}

func (f *guestFixture) seedRoom(t *testing.T, dailyRateCents int64) *entity.Room {
	t.Helper()
	room := &entity.Room{ID: uuid.New(), Number: "101", DailyRate: dailyRateCents}
	require.NoError(t, f.roomRepo.Create(context.Background(), room))
	return room
}

func TestGuestService_CheckIn(t *testing.T) {
	f := newGuestFixture()
	ctx := context.Background()
	room := f.seedRoom(t, 200000)

	guest, err := f.svc.CheckIn(ctx, &CheckInInput{
		UserID: uuid.New(),
		RoomID: &room.ID,
		Name:   "Ali",
	})
	require.NoError(t, err)
	assert.Equal(t, enum.StayStatusCheckedIn, guest.Status)

	stored, err := f.roomRepo.GetByID(ctx, room.ID)
	require.NoError(t, err)
	assert.True(t, stored.Occupied)

	// Second check-in to the same room is rejected.
	_, err = f.svc.CheckIn(ctx, &CheckInInput{UserID: uuid.New(), RoomID: &room.ID, Name: "Bilal"})
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, apperror.GetAppError(err).Code)
}

func TestGuestService_Checkout_FullPipeline(t *testing.T) {
	f := newGuestFixture()
	ctx := context.Background()

	// 2000.00/day, stay spans just under 3 days so it bills 3.
	room := f.seedRoom(t, 200000)
	f.settingsRepo.settings.TaxEnabled = true
	f.settingsRepo.settings.TaxRate = 5

	userID := uuid.New()
	checkIn := time.Now().Add(-62 * time.Hour)
	guest, err := f.svc.CheckIn(ctx, &CheckInInput{
		UserID:  userID,
		RoomID:  &room.ID,
		Name:    "Ali",
		CheckIn: &checkIn,
	})
	require.NoError(t, err)

	// 500.00 of unpaid food. A paid order must not contribute.
	require.NoError(t, f.foodOrderRepo.Create(ctx, &entity.FoodOrder{
		GuestID: guest.ID, OrderNo: "ORD-1", Total: 50000,
	}))
	require.NoError(t, f.foodOrderRepo.Create(ctx, &entity.FoodOrder{
		GuestID: guest.ID, OrderNo: "ORD-2", Total: 99900, Paid: true,
	}))

	// (3*2000 + 500) = 6500, -10% = 5850, +5% tax = 6142.50
	out, err := f.svc.Checkout(ctx, &CheckoutInput{
		UserID:  userID,
		GuestID: guest.ID,
		Discount: &DiscountInput{
			Type:   enum.DiscountTypePercentage,
			Amount: 10,
		},
	})
	require.NoError(t, err)

	assert.Equal(t, enum.StayStatusCheckedOut, out.Status)
	assert.Equal(t, 3, out.StayDays)
	assert.Equal(t, int64(600000), out.RoomCharges)
	assert.Equal(t, int64(50000), out.FoodCharges)
	assert.Equal(t, int64(65000), out.DiscountAmount)
	assert.Equal(t, int64(29250), out.TaxAmount)
	assert.Equal(t, int64(614250), out.Total)
	assert.True(t, out.Paid)

	// Settlement recorded in the payment ledger.
	paid, err := f.paymentRepo.SumByBillable(ctx, enum.BillableKindGuestStay, guest.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(614250), paid)

	// Folded-in food orders are settled, the room is freed.
	unpaid, err := f.foodOrderRepo.ListUnpaidByGuest(ctx, guest.ID)
	require.NoError(t, err)
	assert.Empty(t, unpaid)

	stored, err := f.roomRepo.GetByID(ctx, room.ID)
	require.NoError(t, err)
	assert.False(t, stored.Occupied)
}

func TestGuestService_Checkout_TaxDisabled(t *testing.T) {
	f := newGuestFixture()
	ctx := context.Background()
	room := f.seedRoom(t, 100000)

	checkIn := time.Now().Add(-1 * time.Hour)
	guest, err := f.svc.CheckIn(ctx, &CheckInInput{
		UserID:  uuid.New(),
		RoomID:  &room.ID,
		Name:    "Sana",
		CheckIn: &checkIn,
	})
	require.NoError(t, err)

	// Same-day stay bills one full day; no tax, no discount.
	out, err := f.svc.Checkout(ctx, &CheckoutInput{UserID: uuid.New(), GuestID: guest.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, out.StayDays)
	assert.Equal(t, int64(100000), out.Total)
	assert.Equal(t, int64(0), out.TaxAmount)
	assert.Equal(t, float64(0), out.TaxRate)
}

func TestGuestService_Checkout_WalkIn(t *testing.T) {
	f := newGuestFixture()
	ctx := context.Background()

	guest, err := f.svc.CheckIn(ctx, &CheckInInput{UserID: uuid.New(), Name: "Walk In"})
	require.NoError(t, err)
	assert.True(t, guest.IsWalkIn())

	require.NoError(t, f.foodOrderRepo.Create(ctx, &entity.FoodOrder{
		GuestID: guest.ID, OrderNo: "ORD-3", Total: 1500,
	}))

	// No room, so the bill is food only and stay days stay zero.
	out, err := f.svc.Checkout(ctx, &CheckoutInput{UserID: uuid.New(), GuestID: guest.ID})
	require.NoError(t, err)
	assert.Equal(t, 0, out.StayDays)
	assert.Equal(t, int64(0), out.RoomCharges)
	assert.Equal(t, int64(1500), out.Total)
}

func TestGuestService_Checkout_PaymentFailureReopensStay(t *testing.T) {
	f := newGuestFixture()
	ctx := context.Background()
	room := f.seedRoom(t, 100000)

	checkIn := time.Now().Add(-1 * time.Hour)
	guest, err := f.svc.CheckIn(ctx, &CheckInInput{
		UserID:  uuid.New(),
		RoomID:  &room.ID,
		Name:    "Ali",
		CheckIn: &checkIn,
	})
	require.NoError(t, err)

	require.NoError(t, f.foodOrderRepo.Create(ctx, &entity.FoodOrder{
		GuestID: guest.ID, OrderNo: "ORD-1", Total: 50000,
	}))

	f.paymentRepo.createErr = errors.New("insert failed")
	_, err = f.svc.Checkout(ctx, &CheckoutInput{UserID: uuid.New(), GuestID: guest.ID})
	require.Error(t, err)

	// The stay is reopened: no closed, paid bill without its
	// settlement payment in the ledger.
	stored, err := f.guestRepo.GetByID(ctx, guest.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.StayStatusCheckedIn, stored.Status)
	assert.False(t, stored.Paid)
	assert.Nil(t, stored.PaidAt)
	assert.Equal(t, int64(0), stored.Total)

	paid, err := f.paymentRepo.SumByBillable(ctx, enum.BillableKindGuestStay, guest.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), paid)

	// Food orders stay unpaid and the room stays occupied.
	unpaid, err := f.foodOrderRepo.ListUnpaidByGuest(ctx, guest.ID)
	require.NoError(t, err)
	assert.Len(t, unpaid, 1)

	storedRoom, err := f.roomRepo.GetByID(ctx, room.ID)
	require.NoError(t, err)
	assert.True(t, storedRoom.Occupied)

	// A retry after the ledger recovers completes the checkout.
	f.paymentRepo.createErr = nil
	out, err := f.svc.Checkout(ctx, &CheckoutInput{UserID: uuid.New(), GuestID: guest.ID})
	require.NoError(t, err)
	assert.Equal(t, enum.StayStatusCheckedOut, out.Status)
	assert.True(t, out.Paid)
}

func TestGuestService_Checkout_LateOrderStaysUnpaid(t *testing.T) {
	f := newGuestFixture()
	ctx := context.Background()
	room := f.seedRoom(t, 100000)

	checkIn := time.Now().Add(-1 * time.Hour)
	guest, err := f.svc.CheckIn(ctx, &CheckInInput{
		UserID:  uuid.New(),
		RoomID:  &room.ID,
		Name:    "Ali",
		CheckIn: &checkIn,
	})
	require.NoError(t, err)

	require.NoError(t, f.foodOrderRepo.Create(ctx, &entity.FoodOrder{
		GuestID: guest.ID, OrderNo: "ORD-1", Total: 50000,
	}))

	// An order lands right after the bill is computed. It must be
	// neither billed nor settled by this checkout.
	lateID := uuid.New()
	f.foodOrderRepo.afterListUnpaid = func() {
		f.foodOrderRepo.afterListUnpaid = nil
		require.NoError(t, f.foodOrderRepo.Create(ctx, &entity.FoodOrder{
			ID: lateID, GuestID: guest.ID, OrderNo: "ORD-2", Total: 9900,
		}))
	}

	out, err := f.svc.Checkout(ctx, &CheckoutInput{UserID: uuid.New(), GuestID: guest.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(50000), out.FoodCharges)
	assert.Equal(t, int64(150000), out.Total)

	unpaid, err := f.foodOrderRepo.ListUnpaidByGuest(ctx, guest.ID)
	require.NoError(t, err)
	require.Len(t, unpaid, 1)
	assert.Equal(t, lateID, unpaid[0].ID)
	assert.False(t, unpaid[0].Paid)
}

func TestGuestService_Checkout_AlreadyCheckedOut(t *testing.T) {
	f := newGuestFixture()
	ctx := context.Background()

	guest, err := f.svc.CheckIn(ctx, &CheckInInput{UserID: uuid.New(), Name: "Ali"})
	require.NoError(t, err)

	_, err = f.svc.Checkout(ctx, &CheckoutInput{UserID: uuid.New(), GuestID: guest.ID})
	require.NoError(t, err)

	_, err = f.svc.Checkout(ctx, &CheckoutInput{UserID: uuid.New(), GuestID: guest.ID})
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, apperror.GetAppError(err).Code)
}

func TestGuestService_PreviewBill_DoesNotPersist(t *testing.T) {
	f := newGuestFixture()
	ctx := context.Background()
	room := f.seedRoom(t, 100000)

	checkIn := time.Now().Add(-1 * time.Hour)
	guest, err := f.svc.CheckIn(ctx, &CheckInInput{
		UserID:  uuid.New(),
		RoomID:  &room.ID,
		Name:    "Ali",
		CheckIn: &checkIn,
	})
	require.NoError(t, err)

	preview, err := f.svc.PreviewBill(ctx, guest.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(100000), preview.Total)

	stored, err := f.guestRepo.GetByID(ctx, guest.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.StayStatusCheckedIn, stored.Status)
	assert.Equal(t, int64(0), stored.Total)
	assert.False(t, stored.Paid)
}

func TestGuestService_Checkout_InvalidDiscount(t *testing.T) {
	f := newGuestFixture()
	ctx := context.Background()

	guest, err := f.svc.CheckIn(ctx, &CheckInInput{UserID: uuid.New(), Name: "Ali"})
	require.NoError(t, err)

	_, err = f.svc.Checkout(ctx, &CheckoutInput{
		UserID:  uuid.New(),
		GuestID: guest.ID,
		Discount: &DiscountInput{
			Type:   enum.DiscountTypePercentage,
			Amount: 150,
		},
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
}
