package repository

import (
	"context"
	"errors"

	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/entity"
	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/enum"
	domainRepo "github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/repository"
	"github.com/Haiderali27-hub/hotel-manager-sub001/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB) domainRepo.PaymentRepository {
	return &paymentRepository{db: db}
}

// AddToSale locks the sale row, recomputes the outstanding balance from
// the payments table, rejects over-payment and updates the cached paid
// and due columns in the same transaction. Two operators paying the
// same sale serialize on the row lock instead of losing an update.
func (r *paymentRepository) AddToSale(ctx context.Context, saleID uuid.UUID, payment *entity.PaymentRecord) (int64, error) {
	var newDue int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var sale entity.Sale
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&sale, "id = ?", saleID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domainRepo.ErrBillableNotFound
		}
		if err != nil {
			return err
		}

		var paid int64
		if err := tx.Model(&entity.PaymentRecord{}).
			Where("billable_id = ? AND kind = ?", saleID, enum.BillableKindSale).
			Select("COALESCE(SUM(amount), 0)").
			Scan(&paid).Error; err != nil {
			return err
		}

		balance := sale.Total - paid
		if payment.Amount > balance {
			return domainRepo.ErrBalanceExceeded
		}

		payment.BillableID = saleID
		payment.Kind = enum.BillableKindSale
		if err := tx.Create(payment).Error; err != nil {
			return err
		}

		newDue = balance - payment.Amount
		return tx.Model(&entity.Sale{}).
			Where("id = ?", saleID).
			Updates(map[string]interface{}{
				"paid": paid + payment.Amount,
				"due":  newDue,
			}).Error
	})

	return newDue, err
}

// AddToPurchase mirrors AddToSale for supplier purchases.
func (r *paymentRepository) AddToPurchase(ctx context.Context, purchaseID uuid.UUID, payment *entity.PaymentRecord) (int64, error) {
	var newDue int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var purchase entity.Purchase
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&purchase, "id = ?", purchaseID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domainRepo.ErrBillableNotFound
		}
		if err != nil {
			return err
		}

		var paid int64
		if err := tx.Model(&entity.PaymentRecord{}).
			Where("billable_id = ? AND kind = ?", purchaseID, enum.BillableKindPurchase).
			Select("COALESCE(SUM(amount), 0)").
			Scan(&paid).Error; err != nil {
			return err
		}

		balance := purchase.Total - paid
		if payment.Amount > balance {
			return domainRepo.ErrBalanceExceeded
		}

		payment.BillableID = purchaseID
		payment.Kind = enum.BillableKindPurchase
		if err := tx.Create(payment).Error; err != nil {
			return err
		}

		newDue = balance - payment.Amount
		return tx.Model(&entity.Purchase{}).
			Where("id = ?", purchaseID).
			Updates(map[string]interface{}{
				"paid": paid + payment.Amount,
				"due":  newDue,
			}).Error
	})

	return newDue, err
}

func (r *paymentRepository) Create(ctx context.Context, payment *entity.PaymentRecord) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *paymentRepository) ListByBillable(ctx context.Context, kind enum.BillableKind, billableID uuid.UUID) ([]entity.PaymentRecord, error) {
	var payments []entity.PaymentRecord
	err := r.db.WithContext(ctx).
		Where("billable_id = ? AND kind = ?", billableID, kind).
		Order("created_at ASC").
		Find(&payments).Error
	return payments, err
}

func (r *paymentRepository) List(ctx context.Context, params *pagination.PaginationParams, kind *enum.BillableKind) ([]entity.PaymentRecord, int64, error) {
	var payments []entity.PaymentRecord
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.PaymentRecord{})
	if kind != nil {
		query = query.Where("kind = ?", *kind)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("created_at DESC").
		Find(&payments).Error

	return payments, total, err
}

func (r *paymentRepository) SumByBillable(ctx context.Context, kind enum.BillableKind, billableID uuid.UUID) (int64, error) {
	var sum int64
	err := r.db.WithContext(ctx).Model(&entity.PaymentRecord{}).
		Where("billable_id = ? AND kind = ?", billableID, kind).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&sum).Error
	return sum, err
}
