package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/enum"
	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/repository"
)

// DashboardService assembles the front-desk overview numbers
type DashboardService struct {
	roomRepo     repository.RoomRepository
	guestRepo    repository.GuestRepository
	saleRepo     repository.SaleRepository
	purchaseRepo repository.PurchaseRepository
	expenseRepo  repository.ExpenseRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	roomRepo repository.RoomRepository,
	guestRepo repository.GuestRepository,
	saleRepo repository.SaleRepository,
	purchaseRepo repository.PurchaseRepository,
	expenseRepo repository.ExpenseRepository,
) *DashboardService {
	return &DashboardService{
		roomRepo:     roomRepo,
		guestRepo:    guestRepo,
		saleRepo:     saleRepo,
		purchaseRepo: purchaseRepo,
		expenseRepo:  expenseRepo,
	}
}

// DashboardStats holds the overview numbers. All money amounts in cents.
type DashboardStats struct {
	TotalRooms      int64 `json:"total_rooms"`
	OccupiedRooms   int64 `json:"occupied_rooms"`
	CheckedInGuests int64 `json:"checked_in_guests"`
	SalesToday      int64 `json:"-"`
	ReceivablesDue  int64 `json:"-"`
	PayablesDue     int64 `json:"-"`
	ExpensesMonth   int64 `json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (d DashboardStats) MarshalJSON() ([]byte, error) {
	type Alias DashboardStats
	return json.Marshal(&struct {
		Alias
		SalesToday     float64 `json:"sales_today"`
		ReceivablesDue float64 `json:"receivables_due"`
		PayablesDue    float64 `json:"payables_due"`
		ExpensesMonth  float64 `json:"expenses_month"`
	}{
		Alias:          Alias(d),
		SalesToday:     float64(d.SalesToday) / 100,
		ReceivablesDue: float64(d.ReceivablesDue) / 100,
		PayablesDue:    float64(d.PayablesDue) / 100,
		ExpensesMonth:  float64(d.ExpensesMonth) / 100,
	})
}

// GetStats computes the dashboard overview
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	occupied, total, err := s.roomRepo.CountOccupied(ctx)
	if err != nil {
		return nil, err
	}
	stats.OccupiedRooms = occupied
	stats.TotalRooms = total

	checkedIn, err := s.guestRepo.CountByStatus(ctx, enum.StayStatusCheckedIn)
	if err != nil {
		return nil, err
	}
	stats.CheckedInGuests = checkedIn

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	salesToday, err := s.saleRepo.SumTotalsSince(ctx, startOfDay)
	if err != nil {
		return nil, err
	}
	stats.SalesToday = salesToday

	receivables, err := s.saleRepo.SumDue(ctx)
	if err != nil {
		return nil, err
	}
	stats.ReceivablesDue = receivables

	payables, err := s.purchaseRepo.SumDue(ctx)
	if err != nil {
		return nil, err
	}
	stats.PayablesDue = payables

	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	expenses, err := s.expenseRepo.SumForPeriod(ctx, startOfMonth, now)
	if err != nil {
		return nil, err
	}
	stats.ExpensesMonth = expenses

	return stats, nil
}
