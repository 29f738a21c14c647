package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/estate/internal/database"
	"github.com/MrJamesThe3rd/estate/internal/subscription"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectColumns = `id, apartment_id, service_id, frequency, next_billing_date, status, created_at, updated_at`

func scanSubscription(s scanner) (*subscription.Subscription, error) {
	var (
		sub       subscription.Subscription
		frequency string
		status    string
	)

	if err := s.Scan(
		&sub.ID, &sub.ApartmentID, &sub.ServiceID, &frequency, &sub.NextBillingDate, &status,
		&sub.CreatedAt, &sub.UpdatedAt,
	); err != nil {
		return nil, err
	}

	sub.Frequency = subscription.Frequency(frequency)
	sub.Status = subscription.Status(status)

	return &sub, nil
}

func (s *Store) CreateSubscription(ctx context.Context, sub *subscription.Subscription) error {
	query := `
		INSERT INTO subscriptions (apartment_id, service_id, frequency, next_billing_date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		sub.ApartmentID, sub.ServiceID, string(sub.Frequency), sub.NextBillingDate, string(sub.Status),
	).Scan(&sub.ID, &sub.CreatedAt, &sub.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating subscription: %w", err)
	}

	return nil
}

func (s *Store) GetSubscription(ctx context.Context, id uuid.UUID) (*subscription.Subscription, error) {
	query := `SELECT ` + selectColumns + ` FROM subscriptions WHERE id = $1`

	sub, err := scanSubscription(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, subscription.ErrNotFound
		}

		return nil, fmt.Errorf("getting subscription: %w", err)
	}

	return sub, nil
}

func (s *Store) ListSubscriptions(ctx context.Context, filter subscription.ListFilter) ([]*subscription.Subscription, error) {
	query := `SELECT ` + selectColumns + `
		FROM subscriptions
		WHERE ($1::uuid IS NULL OR apartment_id = $1)
		  AND ($2::uuid IS NULL OR service_id = $2)
		ORDER BY next_billing_date ASC`

	rows, err := s.db.QueryContext(ctx, query, filter.ApartmentID, filter.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("listing subscriptions: %w", err)
	}
	defer rows.Close()

	subs := []*subscription.Subscription{}

	for rows.Next() {
		sub, err := scanSubscription(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning subscription: %w", err)
		}

		subs = append(subs, sub)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating subscriptions: %w", err)
	}

	return subs, nil
}

func (s *Store) UpdateSubscription(ctx context.Context, id uuid.UUID, params subscription.UpdateParams) (*subscription.Subscription, error) {
	query := `
		UPDATE subscriptions
		SET apartment_id = COALESCE($1, apartment_id),
			service_id = COALESCE($2, service_id),
			frequency = COALESCE($3, frequency),
			next_billing_date = COALESCE($4, next_billing_date),
			status = COALESCE($5, status),
			updated_at = NOW()
		WHERE id = $6
		RETURNING ` + selectColumns

	var frequency, status *string
	if params.Frequency != nil {
		frequency = new(string(*params.Frequency))
	}

	if params.Status != nil {
		status = new(string(*params.Status))
	}

	sub, err := scanSubscription(s.db.QueryRowContext(ctx, query,
		params.ApartmentID, params.ServiceID, frequency, params.NextBillingDate, status, id,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, subscription.ErrNotFound
		}

		return nil, fmt.Errorf("updating subscription: %w", err)
	}

	return sub, nil
}

func (s *Store) DeleteSubscription(ctx context.Context, id uuid.UUID) (*subscription.Subscription, error) {
	query := `DELETE FROM subscriptions WHERE id = $1 RETURNING ` + selectColumns

	sub, err := scanSubscription(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, subscription.ErrNotFound
		case database.IsForeignKeyViolation(err):
			return nil, subscription.ErrInUse
		}

		return nil, fmt.Errorf("deleting subscription: %w", err)
	}

	return sub, nil
}

func (s *Store) ApartmentExists(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.exists(ctx, `SELECT EXISTS (SELECT 1 FROM apartments WHERE id = $1)`, id)
}

func (s *Store) ServiceExists(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.exists(ctx, `SELECT EXISTS (SELECT 1 FROM services WHERE id = $1)`, id)
}

func (s *Store) exists(ctx context.Context, query string, id uuid.UUID) (bool, error) {
	var ok bool
	if err := s.db.QueryRowContext(ctx, query, id).Scan(&ok); err != nil {
		return false, fmt.Errorf("checking existence: %w", err)
	}

	return ok, nil
}
