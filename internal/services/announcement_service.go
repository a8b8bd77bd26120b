package services

import (
	"context"
	"log/slog"

	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/authz"
	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/broadcast"
	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/models"
	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/utils"
)

type AnnouncementService interface {
	Broadcast(ctx context.Context, req *BroadcastRequest, actor models.User) error
	Clear(ctx context.Context, actor models.User) error
	Current(ctx context.Context) (string, error)
	Watch(ctx context.Context) (<-chan string, error)
}

type BroadcastRequest struct {
	Message string `json:"message" validate:"required,max=500"`
}

type announcementService struct {
	announcer *broadcast.Announcer
	logger    *slog.Logger
	validator *utils.Validator
}

func NewAnnouncementService(announcer *broadcast.Announcer, logger *slog.Logger, validator *utils.Validator) AnnouncementService {
	return &announcementService{
		announcer: announcer,
		logger:    logger,
		validator: validator,
	}
}

func (s *announcementService) Broadcast(ctx context.Context, req *BroadcastRequest, actor models.User) error {
	if !authz.CanMutate(actor.Role, authz.ActionBroadcast) {
		return NewPermissionError(actor.ID, "announcement", "broadcast", "requires admin")
	}
	if verrs := s.validator.Struct(req); verrs != nil {
		return verrs
	}
	return s.announcer.Broadcast(ctx, req.Message, actor.ID)
}

func (s *announcementService) Clear(ctx context.Context, actor models.User) error {
	if !authz.CanMutate(actor.Role, authz.ActionBroadcast) {
		return NewPermissionError(actor.ID, "announcement", "clear", "requires admin")
	}
	return s.announcer.Clear(ctx, actor.ID)
}

func (s *announcementService) Current(ctx context.Context) (string, error) {
	msg, ok := s.announcer.Current(ctx)
	if !ok {
		return "", ErrNoAnnouncement
	}
	return msg, nil
}

func (s *announcementService) Watch(ctx context.Context) (<-chan string, error) {
	return s.announcer.Watch(ctx)
}
