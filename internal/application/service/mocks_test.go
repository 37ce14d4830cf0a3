package service

import (
	"context"
	"time"

	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/entity"
	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/enum"
	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/repository"
	"github.com/Haiderali27-hub/hotel-manager-sub001/pkg/pagination"
	"github.com/google/uuid"
)

// In-memory fakes for the repository interfaces. They reproduce the
// semantics the services rely on, including the checked ledger writes.

type fakeSaleRepo struct {
	sales map[uuid.UUID]*entity.Sale
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{sales: make(map[uuid.UUID]*entity.Sale)}
}

func (r *fakeSaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	if sale.ID == uuid.Nil {
		sale.ID = uuid.New()
	}
	cp := *sale
	r.sales[sale.ID] = &cp
	return nil
}

func (r *fakeSaleRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale, ok := r.sales[id]
	if !ok {
		return nil, nil
	}
	cp := *sale
	return &cp, nil
}

func (r *fakeSaleRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeSaleRepo) Update(ctx context.Context, sale *entity.Sale) error {
	cp := *sale
	r.sales[sale.ID] = &cp
	return nil
}

func (r *fakeSaleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.sales, id)
	return nil
}

func (r *fakeSaleRepo) List(ctx context.Context, params *repository.SaleFilterParams) ([]entity.Sale, int64, error) {
	var out []entity.Sale
	for _, s := range r.sales {
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

func (r *fakeSaleRepo) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.Sale, error) {
	var out []entity.Sale
	for _, s := range r.sales {
		if s.CustomerID != nil && *s.CustomerID == customerID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeSaleRepo) SumTotalsSince(ctx context.Context, since time.Time) (int64, error) {
	var sum int64
	for _, s := range r.sales {
		if !s.CreatedAt.Before(since) {
			sum += s.Total
		}
	}
	return sum, nil
}

func (r *fakeSaleRepo) SumDue(ctx context.Context) (int64, error) {
	var sum int64
	for _, s := range r.sales {
		sum += s.Due
	}
	return sum, nil
}

type fakeSaleItemRepo struct {
	items map[uuid.UUID][]entity.SaleItem
}

func newFakeSaleItemRepo() *fakeSaleItemRepo {
	return &fakeSaleItemRepo{items: make(map[uuid.UUID][]entity.SaleItem)}
}

func (r *fakeSaleItemRepo) CreateBatch(ctx context.Context, items []entity.SaleItem) error {
	for _, item := range items {
		r.items[item.SaleID] = append(r.items[item.SaleID], item)
	}
	return nil
}

func (r *fakeSaleItemRepo) GetBySaleID(ctx context.Context, saleID uuid.UUID) ([]entity.SaleItem, error) {
	return r.items[saleID], nil
}

func (r *fakeSaleItemRepo) DeleteBySaleID(ctx context.Context, saleID uuid.UUID) error {
	delete(r.items, saleID)
	return nil
}

type fakePurchaseRepo struct {
	purchases map[uuid.UUID]*entity.Purchase
}

func newFakePurchaseRepo() *fakePurchaseRepo {
	return &fakePurchaseRepo{purchases: make(map[uuid.UUID]*entity.Purchase)}
}

func (r *fakePurchaseRepo) Create(ctx context.Context, purchase *entity.Purchase) error {
	if purchase.ID == uuid.Nil {
		purchase.ID = uuid.New()
	}
	cp := *purchase
	r.purchases[purchase.ID] = &cp
	return nil
}

func (r *fakePurchaseRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Purchase, error) {
	p, ok := r.purchases[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakePurchaseRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Purchase, error) {
	return r.GetByID(ctx, id)
}

func (r *fakePurchaseRepo) Update(ctx context.Context, purchase *entity.Purchase) error {
	cp := *purchase
	r.purchases[purchase.ID] = &cp
	return nil
}

func (r *fakePurchaseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.purchases, id)
	return nil
}

func (r *fakePurchaseRepo) List(ctx context.Context, params *repository.PurchaseFilterParams) ([]entity.Purchase, int64, error) {
	var out []entity.Purchase
	for _, p := range r.purchases {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *fakePurchaseRepo) ListBySupplier(ctx context.Context, supplierID uuid.UUID) ([]entity.Purchase, error) {
	var out []entity.Purchase
	for _, p := range r.purchases {
		if p.SupplierID != nil && *p.SupplierID == supplierID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePurchaseRepo) SumDue(ctx context.Context) (int64, error) {
	var sum int64
	for _, p := range r.purchases {
		sum += p.Due
	}
	return sum, nil
}

type fakePurchaseItemRepo struct {
	items map[uuid.UUID][]entity.PurchaseItem
}

func newFakePurchaseItemRepo() *fakePurchaseItemRepo {
	return &fakePurchaseItemRepo{items: make(map[uuid.UUID][]entity.PurchaseItem)}
}

func (r *fakePurchaseItemRepo) CreateBatch(ctx context.Context, items []entity.PurchaseItem) error {
	for _, item := range items {
		r.items[item.PurchaseID] = append(r.items[item.PurchaseID], item)
	}
	return nil
}

func (r *fakePurchaseItemRepo) GetByPurchaseID(ctx context.Context, purchaseID uuid.UUID) ([]entity.PurchaseItem, error) {
	return r.items[purchaseID], nil
}

func (r *fakePurchaseItemRepo) DeleteByPurchaseID(ctx context.Context, purchaseID uuid.UUID) error {
	delete(r.items, purchaseID)
	return nil
}

// fakePaymentRepo reproduces the checked-write semantics of the real
// ledger: balance recomputed from stored payments before every insert,
// over-payment rejected.
type fakePaymentRepo struct {
	payments  []entity.PaymentRecord
	saleRepo  *fakeSaleRepo
	purchRepo *fakePurchaseRepo

	// createErr, when set, makes Create fail without storing anything.
	createErr error
}

func newFakePaymentRepo(saleRepo *fakeSaleRepo, purchRepo *fakePurchaseRepo) *fakePaymentRepo {
	return &fakePaymentRepo{saleRepo: saleRepo, purchRepo: purchRepo}
}

func (r *fakePaymentRepo) AddToSale(ctx context.Context, saleID uuid.UUID, payment *entity.PaymentRecord) (int64, error) {
	sale, ok := r.saleRepo.sales[saleID]
	if !ok {
		return 0, repository.ErrBillableNotFound
	}

	paid, _ := r.SumByBillable(ctx, enum.BillableKindSale, saleID)
	balance := sale.Total - paid
	if payment.Amount > balance {
		return 0, repository.ErrBalanceExceeded
	}

	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	r.payments = append(r.payments, *payment)

	sale.Paid = paid + payment.Amount
	sale.Due = sale.Total - sale.Paid
	return sale.Due, nil
}

func (r *fakePaymentRepo) AddToPurchase(ctx context.Context, purchaseID uuid.UUID, payment *entity.PaymentRecord) (int64, error) {
	purchase, ok := r.purchRepo.purchases[purchaseID]
	if !ok {
		return 0, repository.ErrBillableNotFound
	}

	paid, _ := r.SumByBillable(ctx, enum.BillableKindPurchase, purchaseID)
	balance := purchase.Total - paid
	if payment.Amount > balance {
		return 0, repository.ErrBalanceExceeded
	}

	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	r.payments = append(r.payments, *payment)

	purchase.Paid = paid + payment.Amount
	purchase.Due = purchase.Total - purchase.Paid
	return purchase.Due, nil
}

func (r *fakePaymentRepo) Create(ctx context.Context, payment *entity.PaymentRecord) error {
	if r.createErr != nil {
		return r.createErr
	}
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	r.payments = append(r.payments, *payment)
	return nil
}

func (r *fakePaymentRepo) ListByBillable(ctx context.Context, kind enum.BillableKind, billableID uuid.UUID) ([]entity.PaymentRecord, error) {
	var out []entity.PaymentRecord
	for _, p := range r.payments {
		if p.Kind == kind && p.BillableID == billableID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) List(ctx context.Context, params *pagination.PaginationParams, kind *enum.BillableKind) ([]entity.PaymentRecord, int64, error) {
	var out []entity.PaymentRecord
	for _, p := range r.payments {
		if kind == nil || p.Kind == *kind {
			out = append(out, p)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakePaymentRepo) SumByBillable(ctx context.Context, kind enum.BillableKind, billableID uuid.UUID) (int64, error) {
	var sum int64
	for _, p := range r.payments {
		if p.Kind == kind && p.BillableID == billableID {
			sum += p.Amount
		}
	}
	return sum, nil
}

type fakeGuestRepo struct {
	guests map[uuid.UUID]*entity.Guest
}

func newFakeGuestRepo() *fakeGuestRepo {
	return &fakeGuestRepo{guests: make(map[uuid.UUID]*entity.Guest)}
}

func (r *fakeGuestRepo) Create(ctx context.Context, guest *entity.Guest) error {
	if guest.ID == uuid.Nil {
		guest.ID = uuid.New()
	}
	cp := *guest
	r.guests[guest.ID] = &cp
	return nil
}

func (r *fakeGuestRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Guest, error) {
	g, ok := r.guests[id]
	if !ok {
		return nil, nil
	}
	cp := *g
	return &cp, nil
}

func (r *fakeGuestRepo) GetWithRoom(ctx context.Context, id uuid.UUID) (*entity.Guest, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeGuestRepo) Update(ctx context.Context, guest *entity.Guest) error {
	cp := *guest
	r.guests[guest.ID] = &cp
	return nil
}

func (r *fakeGuestRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.guests, id)
	return nil
}

func (r *fakeGuestRepo) List(ctx context.Context, params *repository.GuestFilterParams) ([]entity.Guest, int64, error) {
	var out []entity.Guest
	for _, g := range r.guests {
		out = append(out, *g)
	}
	return out, int64(len(out)), nil
}

func (r *fakeGuestRepo) CountByStatus(ctx context.Context, status enum.StayStatus) (int64, error) {
	var count int64
	for _, g := range r.guests {
		if g.Status == status {
			count++
		}
	}
	return count, nil
}

type fakeRoomRepo struct {
	rooms map[uuid.UUID]*entity.Room
}

func newFakeRoomRepo() *fakeRoomRepo {
	return &fakeRoomRepo{rooms: make(map[uuid.UUID]*entity.Room)}
}

func (r *fakeRoomRepo) Create(ctx context.Context, room *entity.Room) error {
	if room.ID == uuid.Nil {
		room.ID = uuid.New()
	}
	cp := *room
	r.rooms[room.ID] = &cp
	return nil
}

func (r *fakeRoomRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	room, ok := r.rooms[id]
	if !ok {
		return nil, nil
	}
	cp := *room
	return &cp, nil
}

func (r *fakeRoomRepo) GetByNumber(ctx context.Context, number string) (*entity.Room, error) {
	for _, room := range r.rooms {
		if room.Number == number {
			cp := *room
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeRoomRepo) Update(ctx context.Context, room *entity.Room) error {
	cp := *room
	r.rooms[room.ID] = &cp
	return nil
}

func (r *fakeRoomRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.rooms, id)
	return nil
}

func (r *fakeRoomRepo) List(ctx context.Context, params *pagination.PaginationParams, availableOnly bool) ([]entity.Room, int64, error) {
	var out []entity.Room
	for _, room := range r.rooms {
		if availableOnly && room.Occupied {
			continue
		}
		out = append(out, *room)
	}
	return out, int64(len(out)), nil
}

func (r *fakeRoomRepo) SetOccupied(ctx context.Context, id uuid.UUID, occupied bool) error {
	if room, ok := r.rooms[id]; ok {
		room.Occupied = occupied
	}
	return nil
}

func (r *fakeRoomRepo) CountOccupied(ctx context.Context) (int64, int64, error) {
	var occupied int64
	for _, room := range r.rooms {
		if room.Occupied {
			occupied++
		}
	}
	return occupied, int64(len(r.rooms)), nil
}

type fakeFoodOrderRepo struct {
	orders map[uuid.UUID]*entity.FoodOrder

	// afterListUnpaid runs after ListUnpaidByGuest returns its result,
	// letting tests interleave writes with a bill computation.
	afterListUnpaid func()
}

func newFakeFoodOrderRepo() *fakeFoodOrderRepo {
	return &fakeFoodOrderRepo{orders: make(map[uuid.UUID]*entity.FoodOrder)}
}

func (r *fakeFoodOrderRepo) Create(ctx context.Context, order *entity.FoodOrder) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	cp := *order
	r.orders[order.ID] = &cp
	return nil
}

func (r *fakeFoodOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.FoodOrder, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *fakeFoodOrderRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.FoodOrder, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeFoodOrderRepo) Update(ctx context.Context, order *entity.FoodOrder) error {
	cp := *order
	r.orders[order.ID] = &cp
	return nil
}

func (r *fakeFoodOrderRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.orders, id)
	return nil
}

func (r *fakeFoodOrderRepo) List(ctx context.Context, params *repository.FoodOrderFilterParams) ([]entity.FoodOrder, int64, error) {
	var out []entity.FoodOrder
	for _, o := range r.orders {
		out = append(out, *o)
	}
	return out, int64(len(out)), nil
}

func (r *fakeFoodOrderRepo) ListUnpaidByGuest(ctx context.Context, guestID uuid.UUID) ([]entity.FoodOrder, error) {
	var out []entity.FoodOrder
	for _, o := range r.orders {
		if o.GuestID == guestID && !o.Paid {
			out = append(out, *o)
		}
	}
	if r.afterListUnpaid != nil {
		r.afterListUnpaid()
	}
	return out, nil
}

func (r *fakeFoodOrderRepo) TogglePaid(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	o, ok := r.orders[id]
	if !ok {
		return false, repository.ErrBillableNotFound
	}
	o.Paid = !o.Paid
	if o.Paid {
		paidAt := at
		o.PaidAt = &paidAt
	} else {
		o.PaidAt = nil
	}
	return o.Paid, nil
}

func (r *fakeFoodOrderRepo) MarkOrdersPaid(ctx context.Context, ids []uuid.UUID, at time.Time) error {
	for _, id := range ids {
		if o, ok := r.orders[id]; ok && !o.Paid {
			o.Paid = true
			paidAt := at
			o.PaidAt = &paidAt
		}
	}
	return nil
}

type fakeFoodOrderItemRepo struct {
	items map[uuid.UUID][]entity.FoodOrderItem
}

func newFakeFoodOrderItemRepo() *fakeFoodOrderItemRepo {
	return &fakeFoodOrderItemRepo{items: make(map[uuid.UUID][]entity.FoodOrderItem)}
}

func (r *fakeFoodOrderItemRepo) CreateBatch(ctx context.Context, items []entity.FoodOrderItem) error {
	for _, item := range items {
		r.items[item.OrderID] = append(r.items[item.OrderID], item)
	}
	return nil
}

func (r *fakeFoodOrderItemRepo) GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]entity.FoodOrderItem, error) {
	return r.items[orderID], nil
}

func (r *fakeFoodOrderItemRepo) DeleteByOrderID(ctx context.Context, orderID uuid.UUID) error {
	delete(r.items, orderID)
	return nil
}

type fakeSettingsRepo struct {
	settings *entity.BusinessSettings
}

func (r *fakeSettingsRepo) Get(ctx context.Context) (*entity.BusinessSettings, error) {
	if r.settings == nil {
		return nil, nil
	}
	cp := *r.settings
	return &cp, nil
}

func (r *fakeSettingsRepo) Create(ctx context.Context, settings *entity.BusinessSettings) error {
	if settings.ID == uuid.Nil {
		settings.ID = uuid.New()
	}
	cp := *settings
	r.settings = &cp
	return nil
}

func (r *fakeSettingsRepo) Update(ctx context.Context, settings *entity.BusinessSettings) error {
	cp := *settings
	r.settings = &cp
	return nil
}

type fakeExpenseRepo struct {
	expenses map[uuid.UUID]*entity.Expense
}

func newFakeExpenseRepo() *fakeExpenseRepo {
	return &fakeExpenseRepo{expenses: make(map[uuid.UUID]*entity.Expense)}
}

func (r *fakeExpenseRepo) Create(ctx context.Context, expense *entity.Expense) error {
	if expense.ID == uuid.Nil {
		expense.ID = uuid.New()
	}
	cp := *expense
	r.expenses[expense.ID] = &cp
	return nil
}

func (r *fakeExpenseRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	e, ok := r.expenses[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *fakeExpenseRepo) Update(ctx context.Context, expense *entity.Expense) error {
	cp := *expense
	r.expenses[expense.ID] = &cp
	return nil
}

func (r *fakeExpenseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.expenses, id)
	return nil
}

func (r *fakeExpenseRepo) List(ctx context.Context, params *repository.ExpenseFilterParams) ([]entity.Expense, int64, error) {
	var out []entity.Expense
	for _, e := range r.expenses {
		if params.Category != nil && e.Category != *params.Category {
			continue
		}
		out = append(out, *e)
	}
	return out, int64(len(out)), nil
}

func (r *fakeExpenseRepo) SumForPeriod(ctx context.Context, start, end time.Time) (int64, error) {
	var sum int64
	for _, e := range r.expenses {
		if !e.ExpenseDate.Before(start) && e.ExpenseDate.Before(end) {
			sum += e.Amount
		}
	}
	return sum, nil
}

type fakeCustomerRepo struct {
	customers map[uuid.UUID]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[uuid.UUID]*entity.Customer)}
}

func (r *fakeCustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	cp := *customer
	r.customers[customer.ID] = &cp
	return nil
}

func (r *fakeCustomerRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCustomerRepo) Update(ctx context.Context, customer *entity.Customer) error {
	cp := *customer
	r.customers[customer.ID] = &cp
	return nil
}

func (r *fakeCustomerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.customers, id)
	return nil
}

func (r *fakeCustomerRepo) List(ctx context.Context, params *pagination.PaginationParams, search string, includeInactive bool) ([]entity.Customer, int64, error) {
	out, err := r.ListAll(ctx, includeInactive)
	return out, int64(len(out)), err
}

func (r *fakeCustomerRepo) ListAll(ctx context.Context, includeInactive bool) ([]entity.Customer, error) {
	var out []entity.Customer
	for _, c := range r.customers {
		if !includeInactive && !c.Active {
			continue
		}
		out = append(out, *c)
	}
	return out, nil
}

type fakeSupplierRepo struct {
	suppliers map[uuid.UUID]*entity.Supplier
}

func newFakeSupplierRepo() *fakeSupplierRepo {
	return &fakeSupplierRepo{suppliers: make(map[uuid.UUID]*entity.Supplier)}
}

func (r *fakeSupplierRepo) Create(ctx context.Context, supplier *entity.Supplier) error {
	if supplier.ID == uuid.Nil {
		supplier.ID = uuid.New()
	}
	cp := *supplier
	r.suppliers[supplier.ID] = &cp
	return nil
}

func (r *fakeSupplierRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	s, ok := r.suppliers[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSupplierRepo) Update(ctx context.Context, supplier *entity.Supplier) error {
	cp := *supplier
	r.suppliers[supplier.ID] = &cp
	return nil
}

func (r *fakeSupplierRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.suppliers, id)
	return nil
}

func (r *fakeSupplierRepo) List(ctx context.Context, params *pagination.PaginationParams, search string, includeInactive bool) ([]entity.Supplier, int64, error) {
	out, err := r.ListAll(ctx, includeInactive)
	return out, int64(len(out)), err
}

func (r *fakeSupplierRepo) ListAll(ctx context.Context, includeInactive bool) ([]entity.Supplier, error) {
	var out []entity.Supplier
	for _, s := range r.suppliers {
		if !includeInactive && !s.Active {
			continue
		}
		out = append(out, *s)
	}
	return out, nil
}
