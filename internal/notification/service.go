package notification

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/estate/internal/apperr"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=notification
type Repository interface {
	CreateNotification(ctx context.Context, n *Notification) error
	GetNotification(ctx context.Context, id uuid.UUID) (*Notification, error)
	ListNotifications(ctx context.Context) ([]*Notification, error)
	UpdateNotification(ctx context.Context, id uuid.UUID, message *string) (*Notification, error)
	DeleteNotification(ctx context.Context, id uuid.UUID) (*Notification, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, message string) (*Notification, error) {
	n := &Notification{Message: message}
	if err := s.repo.CreateNotification(ctx, n); err != nil {
		return nil, err
	}

	return n, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Notification, error) {
	n, err := s.repo.GetNotification(ctx, id)
	if err != nil {
		return nil, mapErr(err)
	}

	return n, nil
}

// List returns notifications newest first.
func (s *Service) List(ctx context.Context) ([]*Notification, error) {
	return s.repo.ListNotifications(ctx)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, message *string) (*Notification, error) {
	n, err := s.repo.UpdateNotification(ctx, id, message)
	if err != nil {
		return nil, mapErr(err)
	}

	return n, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) (*Notification, error) {
	n, err := s.repo.DeleteNotification(ctx, id)
	if err != nil {
		return nil, mapErr(err)
	}

	return n, nil
}

func mapErr(err error) error {
	if errors.Is(err, ErrNotFound) {
		return apperr.Wrap(apperr.CodeNotificationNotFound, err)
	}

	return err
}
