package service

import (
	"context"
	"log"

	"github.com/google/uuid"

	apperrors "helpdesk/internal/errors"
	"helpdesk/internal/model"
	"helpdesk/internal/repository"
)

// NotificationService exposes in-app notification operations.
type NotificationService interface {
	// Notify creates a notification for a user. A write failure is logged and
	// swallowed so the triggering operation never fails on it.
	Notify(ctx context.Context, userID uuid.UUID, ntype, message string)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Notification, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
	MarkRead(ctx context.Context, id uint, userID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
}

type notificationService struct {
	repo repository.NotificationRepository
}

// NewNotificationService creates a new notification service.
func NewNotificationService(repo repository.NotificationRepository) NotificationService {
	return &notificationService{repo: repo}
}

func (s *notificationService) Notify(ctx context.Context, userID uuid.UUID, ntype, message string) {
	n := &model.Notification{
		UserID:  userID,
		Type:    ntype,
		Message: message,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		log.Printf("notification write failed (user=%s type=%s): %v", userID, ntype, err)
	}
}

func (s *notificationService) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Notification, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *notificationService) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.repo.CountUnread(ctx, userID)
}

func (s *notificationService) MarkRead(ctx context.Context, id uint, userID uuid.UUID) error {
	affected, err := s.repo.MarkRead(ctx, id, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.ErrNotificationNotFound
	}
	return nil
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	return s.repo.MarkAllRead(ctx, userID)
}
