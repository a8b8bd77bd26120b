package services

import (
	"context"
	"log/slog"

	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/models"
	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/repositories"
)

type NotificationService interface {
	List(ctx context.Context) ([]models.Notification, error)
	Clear(ctx context.Context) error
}

type notificationService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewNotificationService(repo repositories.Repository, logger *slog.Logger) NotificationService {
	return &notificationService{
		repo:   repo,
		logger: logger,
	}
}

func (s *notificationService) List(ctx context.Context) ([]models.Notification, error) {
	return s.repo.Notifications().List(ctx), nil
}

func (s *notificationService) Clear(ctx context.Context) error {
	return s.repo.Notifications().Clear(ctx)
}
