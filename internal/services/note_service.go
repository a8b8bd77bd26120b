package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/authz"
	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/models"
	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/repositories"
	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/utils"
)

// Notes have no update path: an edit is a delete followed by a fresh upload.
type NoteService interface {
	List(ctx context.Context) ([]models.Note, error)
	ListByClass(ctx context.Context, classID string) ([]models.Note, error)
	Create(ctx context.Context, req *CreateNoteRequest, actor models.User) (*models.Note, error)
	Delete(ctx context.Context, id string, actor models.User) error
}

type CreateNoteRequest struct {
	Title   string `json:"title" validate:"required,max=200"`
	Subject string `json:"subject" validate:"required,max=100"`
	Content string `json:"content" validate:"required"`
	ClassID string `json:"classId" validate:"required"`
	Date    string `json:"date" validate:"required,datetime=2006-01-02"`
}

type noteService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *utils.Validator
}

func NewNoteService(repo repositories.Repository, logger *slog.Logger, validator *utils.Validator) NoteService {
	return &noteService{
		repo:      repo,
		logger:    logger,
		validator: validator,
	}
}

func (s *noteService) List(ctx context.Context) ([]models.Note, error) {
	return s.repo.Notes().List(ctx), nil
}

func (s *noteService) ListByClass(ctx context.Context, classID string) ([]models.Note, error) {
	return s.repo.Notes().ListByClass(ctx, classID), nil
}

func (s *noteService) Create(ctx context.Context, req *CreateNoteRequest, actor models.User) (*models.Note, error) {
	if !authz.CanMutate(actor.Role, authz.ActionManageNotes) {
		return nil, NewPermissionError(actor.ID, "notes", "create", "requires teacher or admin")
	}
	if verrs := s.validator.Struct(req); verrs != nil {
		return nil, verrs
	}

	note, err := s.repo.Notes().Add(ctx, models.Note{
		Title:      req.Title,
		Subject:    req.Subject,
		Content:    req.Content,
		UploadedBy: actor.ID,
		ClassID:    req.ClassID,
		Date:       req.Date,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	s.logger.Info("Note uploaded", "note_id", note.ID, "uploaded_by", actor.ID)
	return &note, nil
}

func (s *noteService) Delete(ctx context.Context, id string, actor models.User) error {
	if !authz.CanMutate(actor.Role, authz.ActionManageNotes) {
		return NewPermissionError(actor.ID, "notes", "delete", "requires teacher or admin")
	}
	found, err := s.repo.Notes().Remove(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	if !found {
		return ErrNoteNotFound
	}
	return nil
}
