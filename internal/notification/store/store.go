package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/estate/internal/notification"
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

const selectColumns = `id, message, created_at, updated_at`

func scanNotification(s scanner) (*notification.Notification, error) {
	var n notification.Notification
	if err := s.Scan(&n.ID, &n.Message, &n.CreatedAt, &n.UpdatedAt); err != nil {
		return nil, err
	}

	return &n, nil
}

func (s *Store) CreateNotification(ctx context.Context, n *notification.Notification) error {
	query := `
		INSERT INTO notifications (message, created_at, updated_at)
		VALUES ($1, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	if err := s.db.QueryRowContext(ctx, query, n.Message).Scan(&n.ID, &n.CreatedAt, &n.UpdatedAt); err != nil {
		return fmt.Errorf("creating notification: %w", err)
	}

	return nil
}

func (s *Store) GetNotification(ctx context.Context, id uuid.UUID) (*notification.Notification, error) {
	query := `SELECT ` + selectColumns + ` FROM notifications WHERE id = $1`

	return s.one(ctx, "getting notification", query, id)
}

func (s *Store) ListNotifications(ctx context.Context) ([]*notification.Notification, error) {
	query := `SELECT ` + selectColumns + ` FROM notifications ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing notifications: %w", err)
	}
	defer rows.Close()

	notifications := []*notification.Notification{}

	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning notification: %w", err)
		}

		notifications = append(notifications, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating notifications: %w", err)
	}

	return notifications, nil
}

func (s *Store) UpdateNotification(ctx context.Context, id uuid.UUID, message *string) (*notification.Notification, error) {
	query := `
		UPDATE notifications SET message = COALESCE($1, message), updated_at = NOW()
		WHERE id = $2
		RETURNING ` + selectColumns

	return s.one(ctx, "updating notification", query, message, id)
}

func (s *Store) DeleteNotification(ctx context.Context, id uuid.UUID) (*notification.Notification, error) {
	query := `DELETE FROM notifications WHERE id = $1 RETURNING ` + selectColumns

	return s.one(ctx, "deleting notification", query, id)
}

func (s *Store) one(ctx context.Context, op, query string, args ...any) (*notification.Notification, error) {
	n, err := scanNotification(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notification.ErrNotFound
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return n, nil
}
