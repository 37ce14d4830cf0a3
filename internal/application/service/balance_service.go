package service

import (
	"context"

	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/billing"
	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/enum"
	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/repository"
	"github.com/Haiderali27-hub/hotel-manager-sub001/pkg/apperror"
	"github.com/google/uuid"
)

// BalanceService builds read-only balance summaries for customers and
// suppliers. Everything is recomputed from the sale/purchase rows on
// demand; nothing here writes.
type BalanceService struct {
	customerRepo repository.CustomerRepository
	supplierRepo repository.SupplierRepository
	saleRepo     repository.SaleRepository
	purchaseRepo repository.PurchaseRepository
}

// NewBalanceService creates a new balance service
func NewBalanceService(
	customerRepo repository.CustomerRepository,
	supplierRepo repository.SupplierRepository,
	saleRepo repository.SaleRepository,
	purchaseRepo repository.PurchaseRepository,
) *BalanceService {
	return &BalanceService{
		customerRepo: customerRepo,
		supplierRepo: supplierRepo,
		saleRepo:     saleRepo,
		purchaseRepo: purchaseRepo,
	}
}

// CustomerBalances returns one summary per customer. Inactive customers
// are included only on request.
func (s *BalanceService) CustomerBalances(ctx context.Context, includeInactive bool) ([]billing.OwnerSummary, error) {
	customers, err := s.customerRepo.ListAll(ctx, includeInactive)
	if err != nil {
		return nil, err
	}

	summaries := make([]billing.OwnerSummary, 0, len(customers))
	for _, c := range customers {
		sales, err := s.saleRepo.ListByCustomer(ctx, c.ID)
		if err != nil {
			return nil, err
		}

		rows := make([]billing.EntityBalance, 0, len(sales))
		for _, sale := range sales {
			rows = append(rows, billing.EntityBalance{
				ID:        sale.ID,
				Kind:      enum.BillableKindSale,
				Reference: sale.InvoiceNo,
				Date:      sale.SaleDate,
				Total:     sale.Total,
				Paid:      sale.Paid,
			})
		}

		summary := billing.Summarize(rows)
		summary.OwnerID = c.ID
		summary.OwnerName = c.Name
		summaries = append(summaries, summary)
	}

	return summaries, nil
}

// SupplierBalances returns one summary per supplier
func (s *BalanceService) SupplierBalances(ctx context.Context, includeInactive bool) ([]billing.OwnerSummary, error) {
	suppliers, err := s.supplierRepo.ListAll(ctx, includeInactive)
	if err != nil {
		return nil, err
	}

	summaries := make([]billing.OwnerSummary, 0, len(suppliers))
	for _, sup := range suppliers {
		purchases, err := s.purchaseRepo.ListBySupplier(ctx, sup.ID)
		if err != nil {
			return nil, err
		}

		rows := make([]billing.EntityBalance, 0, len(purchases))
		for _, p := range purchases {
			rows = append(rows, billing.EntityBalance{
				ID:        p.ID,
				Kind:      enum.BillableKindPurchase,
				Reference: p.PurchaseNo,
				Date:      p.PurchaseDate,
				Total:     p.Total,
				Paid:      p.Paid,
			})
		}

		summary := billing.Summarize(rows)
		summary.OwnerID = sup.ID
		summary.OwnerName = sup.Name
		summaries = append(summaries, summary)
	}

	return summaries, nil
}

// Statement is an owner's summary together with the per-record rows it
// was rolled up from
type Statement struct {
	Summary billing.OwnerSummary    `json:"summary"`
	Rows    []billing.EntityBalance `json:"rows"`
}

// CustomerStatement returns the per-sale breakdown for one customer
func (s *BalanceService) CustomerStatement(ctx context.Context, customerID uuid.UUID) (*Statement, error) {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	sales, err := s.saleRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	rows := make([]billing.EntityBalance, 0, len(sales))
	for _, sale := range sales {
		rows = append(rows, billing.EntityBalance{
			ID:        sale.ID,
			Kind:      enum.BillableKindSale,
			Reference: sale.InvoiceNo,
			Date:      sale.SaleDate,
			Total:     sale.Total,
			Paid:      sale.Paid,
		})
	}

	summary := billing.Summarize(rows)
	summary.OwnerID = customer.ID
	summary.OwnerName = customer.Name

	return &Statement{Summary: summary, Rows: rows}, nil
}

// SupplierStatement returns the per-purchase breakdown for one supplier
func (s *BalanceService) SupplierStatement(ctx context.Context, supplierID uuid.UUID) (*Statement, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apperror.NewNotFoundError("Supplier")
	}

	purchases, err := s.purchaseRepo.ListBySupplier(ctx, supplierID)
	if err != nil {
		return nil, err
	}

	rows := make([]billing.EntityBalance, 0, len(purchases))
	for _, p := range purchases {
		rows = append(rows, billing.EntityBalance{
			ID:        p.ID,
			Kind:      enum.BillableKindPurchase,
			Reference: p.PurchaseNo,
			Date:      p.PurchaseDate,
			Total:     p.Total,
			Paid:      p.Paid,
		})
	}

	summary := billing.Summarize(rows)
	summary.OwnerID = supplier.ID
	summary.OwnerName = supplier.Name

	return &Statement{Summary: summary, Rows: rows}, nil
}
