package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/MrJamesThe3rd/estate/internal/apartment"
	"github.com/MrJamesThe3rd/estate/internal/billing"
	"github.com/MrJamesThe3rd/estate/internal/building"
	"github.com/MrJamesThe3rd/estate/internal/invoice"
	"github.com/MrJamesThe3rd/estate/internal/offering"
	"github.com/MrJamesThe3rd/estate/internal/payment"
	"github.com/MrJamesThe3rd/estate/internal/report"
	"github.com/MrJamesThe3rd/estate/internal/resident"
	"github.com/MrJamesThe3rd/estate/internal/subscription"
)

func list[T any](ctx context.Context, c *Client, path string) ([]*T, error) {
	var out []*T
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, fmt.Errorf("listing %s: %w", path, err)
	}

	return out, nil
}

func (c *Client) Profile(ctx context.Context) (*resident.Resident, error) {
	var r resident.Resident
	if err := c.do(ctx, http.MethodGet, "/residents/me/profile", nil, &r); err != nil {
		return nil, fmt.Errorf("fetching profile: %w", err)
	}

	return &r, nil
}

func (c *Client) Residents(ctx context.Context) ([]*resident.Resident, error) {
	return list[resident.Resident](ctx, c, "/residents")
}

func (c *Client) Buildings(ctx context.Context) ([]*building.Building, error) {
	return list[building.Building](ctx, c, "/buildings")
}

func (c *Client) Apartments(ctx context.Context) ([]*apartment.Apartment, error) {
	return list[apartment.Apartment](ctx, c, "/apartments")
}

func (c *Client) Services(ctx context.Context) ([]*offering.Offering, error) {
	return list[offering.Offering](ctx, c, "/services")
}

func (c *Client) Subscriptions(ctx context.Context) ([]*subscription.Subscription, error) {
	return list[subscription.Subscription](ctx, c, "/subscriptions")
}

func (c *Client) Invoices(ctx context.Context) ([]*invoice.Invoice, error) {
	return list[invoice.Invoice](ctx, c, "/invoices")
}

func (c *Client) LineItems(ctx context.Context) ([]*billing.LineItem, error) {
	return list[billing.LineItem](ctx, c, "/invoice-details")
}

func (c *Client) Payments(ctx context.Context) ([]*payment.Payment, error) {
	return list[payment.Payment](ctx, c, "/payments")
}

// AssignResident sets or, with a nil residentID, clears the occupant of an
// apartment.
func (c *Client) AssignResident(ctx context.Context, apartmentID uuid.UUID, residentID *uuid.UUID) (*apartment.Apartment, error) {
	body := map[string]*uuid.UUID{"residentId": residentID}

	var a apartment.Apartment
	if err := c.do(ctx, http.MethodPut, "/apartments/"+apartmentID.String()+"/assign-resident", body, &a); err != nil {
		return nil, fmt.Errorf("assigning resident: %w", err)
	}

	return &a, nil
}

// LineItemRequest bills a quantity of a subscribed service. A nil InvoiceID
// lets the server pick the pending invoice of the current billing month.
type LineItemRequest struct {
	Quantity       int        `json:"quantity"`
	ApartmentID    uuid.UUID  `json:"apartmentId"`
	SubscriptionID uuid.UUID  `json:"subscriptionId"`
	InvoiceID      *uuid.UUID `json:"invoiceId,omitempty"`
}

func (c *Client) CreateLineItem(ctx context.Context, req LineItemRequest) (*billing.LineItem, error) {
	var item billing.LineItem
	if err := c.do(ctx, http.MethodPost, "/invoice-details", req, &item); err != nil {
		return nil, fmt.Errorf("creating line item: %w", err)
	}

	return &item, nil
}

// Dataset fetches every collection the dashboard reports on in parallel. The
// first failure cancels the remaining requests.
func (c *Client) Dataset(ctx context.Context) (report.Dataset, error) {
	var d report.Dataset

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		d.Apartments, err = c.Apartments(ctx)
		return err
	})
	g.Go(func() (err error) {
		d.Buildings, err = c.Buildings(ctx)
		return err
	})
	g.Go(func() (err error) {
		d.Residents, err = c.Residents(ctx)
		return err
	})
	g.Go(func() (err error) {
		d.Subscriptions, err = c.Subscriptions(ctx)
		return err
	})
	g.Go(func() (err error) {
		d.Services, err = c.Services(ctx)
		return err
	})
	g.Go(func() (err error) {
		d.Invoices, err = c.Invoices(ctx)
		return err
	})
	g.Go(func() (err error) {
		d.LineItems, err = c.LineItems(ctx)
		return err
	})
	g.Go(func() (err error) {
		d.Payments, err = c.Payments(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return report.Dataset{}, fmt.Errorf("fetching dataset: %w", err)
	}

	return d, nil
}
