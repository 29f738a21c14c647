package billing_test

import (
	"context"
	"maps"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/estate/internal/billing"
	"github.com/MrJamesThe3rd/estate/internal/invoice"
	"github.com/MrJamesThe3rd/estate/internal/offering"
	"github.com/MrJamesThe3rd/estate/internal/subscription"
)

// memDB is an in-memory billing repository. Each transaction works on a
// copy that replaces the committed state on Commit.
type memDB struct {
	subs      map[uuid.UUID]subscription.Subscription
	offerings map[uuid.UUID]offering.Offering
	invoices  map[uuid.UUID]invoice.Invoice
	items     map[uuid.UUID]billing.LineItem
	seq       int
}

func newMemDB() *memDB {
	return &memDB{
		subs:      map[uuid.UUID]subscription.Subscription{},
		offerings: map[uuid.UUID]offering.Offering{},
		invoices:  map[uuid.UUID]invoice.Invoice{},
		items:     map[uuid.UUID]billing.LineItem{},
	}
}

func (db *memDB) clone() *memDB {
	return &memDB{
		subs:      maps.Clone(db.subs),
		offerings: maps.Clone(db.offerings),
		invoices:  maps.Clone(db.invoices),
		items:     maps.Clone(db.items),
		seq:       db.seq,
	}
}

// join fills the fields a line item reads through other tables.
func (db *memDB) join(it billing.LineItem) *billing.LineItem {
	sub := db.subs[it.SubscriptionID]
	it.ServiceID = sub.ServiceID
	it.ServiceName = db.offerings[sub.ServiceID].Name
	it.ApartmentID = db.invoices[it.InvoiceID].ApartmentID

	return &it
}

func (db *memDB) GetLineItem(_ context.Context, id uuid.UUID) (*billing.LineItem, error) {
	it, ok := db.items[id]
	if !ok {
		return nil, billing.ErrNotFound
	}

	return db.join(it), nil
}

func (db *memDB) ListLineItems(_ context.Context, filter billing.ListFilter) ([]*billing.LineItem, error) {
	out := []*billing.LineItem{}

	for _, it := range db.items {
		if filter.InvoiceID == nil || it.InvoiceID == *filter.InvoiceID {
			out = append(out, db.join(it))
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })

	return out, nil
}

func (db *memDB) Begin(context.Context) (billing.Tx, error) {
	return &memTx{parent: db, db: db.clone()}, nil
}

type memTx struct {
	parent *memDB
	db     *memDB
	done   bool
}

func (tx *memTx) Commit() error {
	*tx.parent = *tx.db
	tx.done = true

	return nil
}

func (tx *memTx) Rollback() error {
	tx.done = true
	return nil
}

func (tx *memTx) LockApartment(context.Context, uuid.UUID) error { return nil }

func (tx *memTx) GetSubscription(_ context.Context, id uuid.UUID) (*subscription.Subscription, error) {
	sub, ok := tx.db.subs[id]
	if !ok {
		return nil, billing.ErrSubscriptionNotFound
	}

	return &sub, nil
}

func (tx *memTx) FindSubscription(_ context.Context, apartmentID, serviceID uuid.UUID) (*subscription.Subscription, error) {
	for _, sub := range tx.db.subs {
		if sub.ApartmentID == apartmentID && sub.ServiceID == serviceID {
			return &sub, nil
		}
	}

	return nil, billing.ErrSubscriptionNotFound
}

func (tx *memTx) SetNextBillingDate(_ context.Context, id uuid.UUID, next time.Time) error {
	sub := tx.db.subs[id]
	sub.NextBillingDate = next
	tx.db.subs[id] = sub

	return nil
}

func (tx *memTx) GetOffering(_ context.Context, id uuid.UUID) (*offering.Offering, error) {
	o, ok := tx.db.offerings[id]
	if !ok {
		return nil, billing.ErrServiceNotFound
	}

	return &o, nil
}

func (tx *memTx) GetInvoice(_ context.Context, id uuid.UUID) (*invoice.Invoice, error) {
	inv, ok := tx.db.invoices[id]
	if !ok {
		return nil, billing.ErrInvoiceNotFound
	}

	return &inv, nil
}

func (tx *memTx) FindPendingInvoice(_ context.Context, apartmentID uuid.UUID, from, to time.Time) (*invoice.Invoice, error) {
	for _, inv := range tx.db.invoices {
		if inv.ApartmentID == apartmentID && inv.Status == invoice.StatusPending &&
			!inv.DueDate.Before(from) && inv.DueDate.Before(to) {
			return &inv, nil
		}
	}

	return nil, billing.ErrInvoiceNotFound
}

func (tx *memTx) CreateInvoice(_ context.Context, inv *invoice.Invoice) error {
	inv.ID = uuid.New()
	tx.db.invoices[inv.ID] = *inv

	return nil
}

func (tx *memTx) SetInvoiceTotal(_ context.Context, id uuid.UUID, total decimal.Decimal) error {
	inv, ok := tx.db.invoices[id]
	if !ok {
		return billing.ErrInvoiceNotFound
	}

	inv.TotalAmount = total
	tx.db.invoices[id] = inv

	return nil
}

func (tx *memTx) GetLineItem(ctx context.Context, id uuid.UUID) (*billing.LineItem, error) {
	return tx.db.GetLineItem(ctx, id)
}

func (tx *memTx) ListInvoiceLineItems(ctx context.Context, invoiceID uuid.UUID) ([]*billing.LineItem, error) {
	return tx.db.ListLineItems(ctx, billing.ListFilter{InvoiceID: &invoiceID})
}

func (tx *memTx) CreateLineItem(_ context.Context, item *billing.LineItem) error {
	tx.db.seq++
	item.ID = uuid.New()
	item.CreatedAt = time.Date(2024, 1, 1, 0, 0, tx.db.seq, 0, time.UTC)
	tx.db.items[item.ID] = *item

	return nil
}

func (tx *memTx) UpdateLineItem(ctx context.Context, id uuid.UUID, quantity int, total decimal.Decimal) (*billing.LineItem, error) {
	it, ok := tx.db.items[id]
	if !ok {
		return nil, billing.ErrNotFound
	}

	it.Quantity = quantity
	it.Total = total
	tx.db.items[id] = it

	return tx.db.GetLineItem(ctx, id)
}

func (tx *memTx) DeleteLineItem(_ context.Context, id uuid.UUID) error {
	if _, ok := tx.db.items[id]; !ok {
		return billing.ErrNotFound
	}

	delete(tx.db.items, id)

	return nil
}
