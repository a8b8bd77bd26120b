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

type AssignmentService interface {
	List(ctx context.Context) ([]models.Assignment, error)
	ListByClass(ctx context.Context, classID string) ([]models.Assignment, error)
	Create(ctx context.Context, req *CreateAssignmentRequest, actor models.User) (*models.Assignment, error)
	Update(ctx context.Context, id string, req *UpdateAssignmentRequest, actor models.User) error
	Delete(ctx context.Context, id string, actor models.User) error
}

type CreateAssignmentRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"max=1000"`
	DueDate     string `json:"dueDate" validate:"required,datetime=2006-01-02"`
	ClassID     string `json:"classId" validate:"required"`
}

type UpdateAssignmentRequest struct {
	Title       *string                  `json:"title,omitempty" validate:"omitempty,max=200"`
	Description *string                  `json:"description,omitempty" validate:"omitempty,max=1000"`
	DueDate     *string                  `json:"dueDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Status      *models.AssignmentStatus `json:"status,omitempty" validate:"omitempty,assignment_status"`
}

// isStatusOnly reports whether the update touches nothing but the status
// field. Students may submit (status change) but not edit assignment content.
func (r *UpdateAssignmentRequest) isStatusOnly() bool {
	return r.Title == nil && r.Description == nil && r.DueDate == nil && r.Status != nil
}

type assignmentService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *utils.Validator
}

func NewAssignmentService(repo repositories.Repository, logger *slog.Logger, validator *utils.Validator) AssignmentService {
	return &assignmentService{
		repo:      repo,
		logger:    logger,
		validator: validator,
	}
}

func (s *assignmentService) List(ctx context.Context) ([]models.Assignment, error) {
	return s.repo.Assignments().List(ctx), nil
}

func (s *assignmentService) ListByClass(ctx context.Context, classID string) ([]models.Assignment, error) {
	return s.repo.Assignments().ListByClass(ctx, classID), nil
}

func (s *assignmentService) Create(ctx context.Context, req *CreateAssignmentRequest, actor models.User) (*models.Assignment, error) {
	if !authz.CanMutate(actor.Role, authz.ActionManageWork) {
		return nil, NewPermissionError(actor.ID, "assignments", "create", "requires teacher or admin")
	}
	if verrs := s.validator.Struct(req); verrs != nil {
		return nil, verrs
	}

	assignment, err := s.repo.Assignments().Add(ctx, models.Assignment{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		ClassID:     req.ClassID,
		Status:      models.AssignmentPending,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}

	s.logger.Info("Assignment created", "assignment_id", assignment.ID, "created_by", actor.ID)
	return &assignment, nil
}

func (s *assignmentService) Update(ctx context.Context, id string, req *UpdateAssignmentRequest, actor models.User) error {
	if !authz.CanMutate(actor.Role, authz.ActionManageWork) && !req.isStatusOnly() {
		return NewPermissionError(actor.ID, "assignments", "update", "students may only change status")
	}
	if verrs := s.validator.Struct(req); verrs != nil {
		return verrs
	}

	found, err := s.repo.Assignments().Update(ctx, id, repositories.AssignmentUpdate{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Status:      req.Status,
	})
	if err != nil {
		return fmt.Errorf("failed to update assignment: %w", err)
	}
	if !found {
		return ErrAssignmentNotFound
	}
	return nil
}

func (s *assignmentService) Delete(ctx context.Context, id string, actor models.User) error {
	if !authz.CanMutate(actor.Role, authz.ActionManageWork) {
		return NewPermissionError(actor.ID, "assignments", "delete", "requires teacher or admin")
	}
	found, err := s.repo.Assignments().Remove(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}
	if !found {
		return ErrAssignmentNotFound
	}
	return nil
}
