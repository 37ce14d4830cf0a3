package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/billing"
	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/entity"
	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/enum"
	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/repository"
	"github.com/Haiderali27-hub/hotel-manager-sub001/pkg/apperror"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GuestService handles guest stay operations: check-in, the checkout
// billing pipeline, and bill previews for open stays.
type GuestService struct {
	guestRepo     repository.GuestRepository
	roomRepo      repository.RoomRepository
	foodOrderRepo repository.FoodOrderRepository
	paymentRepo   repository.PaymentRepository
	settingsRepo  repository.SettingsRepository
}

// NewGuestService creates a new guest service
func NewGuestService(
	guestRepo repository.GuestRepository,
	roomRepo repository.RoomRepository,
	foodOrderRepo repository.FoodOrderRepository,
	paymentRepo repository.PaymentRepository,
	settingsRepo repository.SettingsRepository,
) *GuestService {
	return &GuestService{
		guestRepo:     guestRepo,
		roomRepo:      roomRepo,
		foodOrderRepo: foodOrderRepo,
		paymentRepo:   paymentRepo,
		settingsRepo:  settingsRepo,
	}
}

// CheckInInput represents the check-in input
type CheckInInput struct {
	UserID   uuid.UUID
	RoomID   *uuid.UUID
	Name     string
	Phone    *string
	IDNumber *string
	Address  *string
	CheckIn  *time.Time
}

// CheckIn registers a guest stay. A nil RoomID creates a walk-in guest
// that accrues food charges only.
func (s *GuestService) CheckIn(ctx context.Context, input *CheckInInput) (*entity.Guest, error) {
	if input.RoomID != nil {
		room, err := s.roomRepo.GetByID(ctx, *input.RoomID)
		if err != nil {
			return nil, err
		}
		if room == nil {
			return nil, apperror.NewNotFoundError("Room")
		}
		if room.Occupied {
			return nil, apperror.NewConflictError("Room is already occupied")
		}
	}

	checkIn := time.Now()
	if input.CheckIn != nil {
		checkIn = *input.CheckIn
	}

	guest := &entity.Guest{
		UserID:   input.UserID,
		RoomID:   input.RoomID,
		Name:     input.Name,
		Phone:    input.Phone,
		IDNumber: input.IDNumber,
		Address:  input.Address,
		Status:   enum.StayStatusCheckedIn,
		CheckIn:  checkIn,
	}

	if err := s.guestRepo.Create(ctx, guest); err != nil {
		return nil, err
	}

	if input.RoomID != nil {
		if err := s.roomRepo.SetOccupied(ctx, *input.RoomID, true); err != nil {
			// Compensate: remove the guest so the stay and the room
			// flag cannot disagree.
			_ = s.guestRepo.Delete(ctx, guest.ID)
			return nil, err
		}
	}

	return guest, nil
}

// GetGuest returns a guest stay by ID
func (s *GuestService) GetGuest(ctx context.Context, id uuid.UUID) (*entity.Guest, error) {
	guest, err := s.guestRepo.GetWithRoom(ctx, id)
	if err != nil {
		return nil, err
	}
	if guest == nil {
		return nil, apperror.NewNotFoundError("Guest")
	}
	return guest, nil
}

// UpdateGuestInput represents the update guest input
type UpdateGuestInput struct {
	Name     *string
	Phone    *string
	IDNumber *string
	Address  *string
}

// UpdateGuest updates guest contact details
func (s *GuestService) UpdateGuest(ctx context.Context, id uuid.UUID, input *UpdateGuestInput) (*entity.Guest, error) {
	guest, err := s.guestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if guest == nil {
		return nil, apperror.NewNotFoundError("Guest")
	}

	if input.Name != nil {
		guest.Name = *input.Name
	}
	if input.Phone != nil {
		guest.Phone = input.Phone
	}
	if input.IDNumber != nil {
		guest.IDNumber = input.IDNumber
	}
	if input.Address != nil {
		guest.Address = input.Address
	}

	if err := s.guestRepo.Update(ctx, guest); err != nil {
		return nil, err
	}

	return guest, nil
}

// ListGuests returns guest stays matching the filter
func (s *GuestService) ListGuests(ctx context.Context, params *repository.GuestFilterParams) ([]entity.Guest, int64, error) {
	return s.guestRepo.List(ctx, params)
}

// BillPreview is the computed bill for a stay before it is committed
// at checkout. All amounts in cents.
type BillPreview struct {
	StayDays       int     `json:"stay_days"`
	RoomCharges    int64   `json:"-"`
	FoodCharges    int64   `json:"-"`
	Subtotal       int64   `json:"-"`
	DiscountAmount int64   `json:"-"`
	TaxRate        float64 `json:"tax_rate"`
	TaxAmount      int64   `json:"-"`
	Total          int64   `json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (b BillPreview) MarshalJSON() ([]byte, error) {
	type Alias BillPreview
	return json.Marshal(&struct {
		Alias
		RoomCharges    float64 `json:"room_charges"`
		FoodCharges    float64 `json:"food_charges"`
		Subtotal       float64 `json:"subtotal"`
		DiscountAmount float64 `json:"discount_amount"`
		TaxAmount      float64 `json:"tax_amount"`
		Total          float64 `json:"total"`
	}{
		Alias:          Alias(b),
		RoomCharges:    float64(b.RoomCharges) / 100,
		FoodCharges:    float64(b.FoodCharges) / 100,
		Subtotal:       float64(b.Subtotal) / 100,
		DiscountAmount: float64(b.DiscountAmount) / 100,
		TaxAmount:      float64(b.TaxAmount) / 100,
		Total:          float64(b.Total) / 100,
	})
}

// DiscountInput represents a discount supplied at checkout
type DiscountInput struct {
	Type        enum.DiscountType
	Amount      float64
	Description string
}

func (s *GuestService) discountFromInput(input *DiscountInput) (billing.Discount, error) {
	if input == nil {
		return billing.NoDiscount, nil
	}
	if !input.Type.IsValid() {
		return billing.NoDiscount, apperror.NewBadRequestError("Invalid discount type")
	}
	if input.Amount < 0 {
		return billing.NoDiscount, apperror.NewBadRequestError("Discount amount cannot be negative")
	}
	if input.Type == enum.DiscountTypePercentage && input.Amount > 100 {
		return billing.NoDiscount, apperror.NewBadRequestError("Percentage discount cannot exceed 100")
	}
	return billing.Discount{
		Type:        input.Type,
		Amount:      decimal.NewFromFloat(input.Amount),
		Description: input.Description,
	}, nil
}

// computeBill runs the charge aggregation pipeline for a stay and
// returns the IDs of the unpaid food orders it folded in, so checkout
// settles exactly the orders it billed. The tax configuration is read
// fresh from settings on every call.
func (s *GuestService) computeBill(ctx context.Context, guest *entity.Guest, checkOut time.Time, d billing.Discount) (*BillPreview, []uuid.UUID, error) {
	stayDays := 0
	var roomCharges int64
	if guest.RoomID != nil {
		room, err := s.roomRepo.GetByID(ctx, *guest.RoomID)
		if err != nil {
			return nil, nil, err
		}
		if room == nil {
			return nil, nil, apperror.NewNotFoundError("Room")
		}
		stayDays = billing.StayDays(guest.CheckIn, &checkOut, checkOut)
		roomCharges = billing.RoomCharge(stayDays, room.DailyRate)
	}

	orders, err := s.foodOrderRepo.ListUnpaidByGuest(ctx, guest.ID)
	if err != nil {
		return nil, nil, err
	}
	foodCharges := billing.UnpaidFoodTotal(orders)
	orderIDs := make([]uuid.UUID, 0, len(orders))
	for _, o := range orders {
		orderIDs = append(orderIDs, o.ID)
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, nil, err
	}
	snapshot := billing.SnapshotTax(settings)

	subtotal := roomCharges + foodCharges
	afterDiscount := billing.ApplyDiscount(subtotal, d)
	total := billing.ApplyTax(afterDiscount, snapshot)

	preview := &BillPreview{
		StayDays:       stayDays,
		RoomCharges:    roomCharges,
		FoodCharges:    foodCharges,
		Subtotal:       subtotal,
		DiscountAmount: subtotal - afterDiscount,
		TaxAmount:      total - afterDiscount,
		Total:          total,
	}
	if snapshot.Enabled {
		preview.TaxRate, _ = snapshot.Rate.Float64()
	}
	return preview, orderIDs, nil
}

// PreviewBill computes the current bill for an open stay without
// persisting anything.
func (s *GuestService) PreviewBill(ctx context.Context, id uuid.UUID, discount *DiscountInput) (*BillPreview, error) {
	guest, err := s.guestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if guest == nil {
		return nil, apperror.NewNotFoundError("Guest")
	}
	if guest.Status != enum.StayStatusCheckedIn {
		return nil, apperror.NewConflictError("Guest is already checked out")
	}

	d, err := s.discountFromInput(discount)
	if err != nil {
		return nil, err
	}

	preview, _, err := s.computeBill(ctx, guest, time.Now(), d)
	return preview, err
}

// CheckoutInput represents the checkout input
type CheckoutInput struct {
	UserID   uuid.UUID
	GuestID  uuid.UUID
	Discount *DiscountInput
	Method   enum.PaymentMethod
}

// Checkout closes a stay: aggregates room and unpaid food charges,
// applies discount then tax, records the settlement payment, settles
// the folded-in food orders and frees the room. The computed breakdown
// is cached on the guest row so the bill survives later rate or tax
// changes.
func (s *GuestService) Checkout(ctx context.Context, input *CheckoutInput) (*entity.Guest, error) {
	guest, err := s.guestRepo.GetByID(ctx, input.GuestID)
	if err != nil {
		return nil, err
	}
	if guest == nil {
		return nil, apperror.NewNotFoundError("Guest")
	}
	if guest.Status != enum.StayStatusCheckedIn {
		return nil, apperror.NewConflictError("Guest is already checked out")
	}

	d, err := s.discountFromInput(input.Discount)
	if err != nil {
		return nil, err
	}

	method := input.Method
	if method == "" {
		method = enum.PaymentMethodCash
	}
	if !method.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid payment method")
	}

	now := time.Now()
	bill, orderIDs, err := s.computeBill(ctx, guest, now, d)
	if err != nil {
		return nil, err
	}

	prev := *guest

	guest.Status = enum.StayStatusCheckedOut
	guest.CheckOut = &now
	guest.StayDays = bill.StayDays
	guest.RoomCharges = bill.RoomCharges
	guest.FoodCharges = bill.FoodCharges
	guest.DiscountAmount = bill.DiscountAmount
	guest.TaxRate = bill.TaxRate
	guest.TaxAmount = bill.TaxAmount
	guest.Total = bill.Total
	guest.Paid = true
	guest.PaidAt = &now

	if err := s.guestRepo.Update(ctx, guest); err != nil {
		return nil, err
	}

	if bill.Total > 0 {
		payment := &entity.PaymentRecord{
			UserID:     input.UserID,
			BillableID: guest.ID,
			Kind:       enum.BillableKindGuestStay,
			Amount:     bill.Total,
			Method:     method,
		}
		if err := s.paymentRepo.Create(ctx, payment); err != nil {
			// Compensate: reopen the stay so a closed bill never
			// exists without its settlement payment.
			*guest = prev
			_ = s.guestRepo.Update(ctx, guest)
			return nil, err
		}
	}

	// Only the orders folded into the computed bill are settled; an
	// order placed after the bill was read stays unpaid.
	if err := s.foodOrderRepo.MarkOrdersPaid(ctx, orderIDs, now); err != nil {
		return nil, err
	}

	if guest.RoomID != nil {
		if err := s.roomRepo.SetOccupied(ctx, *guest.RoomID, false); err != nil {
			return nil, err
		}
	}

	return guest, nil
}

// DeleteGuest removes a stay record. Open stays free their room first.
func (s *GuestService) DeleteGuest(ctx context.Context, id uuid.UUID) error {
	guest, err := s.guestRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if guest == nil {
		return apperror.NewNotFoundError("Guest")
	}

	if guest.Status == enum.StayStatusCheckedIn && guest.RoomID != nil {
		if err := s.roomRepo.SetOccupied(ctx, *guest.RoomID, false); err != nil {
			return err
		}
	}

	return s.guestRepo.Delete(ctx, id)
}
