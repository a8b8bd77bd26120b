package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/models"
	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/repositories"
	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/utils"
)

// Tasks are personal to-dos: every role manages its own list and nobody
// else's. Admin is not special-cased here on purpose; there is no
// cross-user task administration in this system.
type TaskService interface {
	ListMine(ctx context.Context, actor models.User) ([]models.Task, error)
	Create(ctx context.Context, req *CreateTaskRequest, actor models.User) (*models.Task, error)
	Update(ctx context.Context, id string, req *UpdateTaskRequest, actor models.User) error
	Delete(ctx context.Context, id string, actor models.User) error
}

type CreateTaskRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"max=1000"`
	DueDate     string `json:"dueDate" validate:"required,datetime=2006-01-02"`
	ClassID     string `json:"classId"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,max=200"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=1000"`
	DueDate     *string `json:"dueDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Completed   *bool   `json:"completed,omitempty"`
}

type taskService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *utils.Validator
}

func NewTaskService(repo repositories.Repository, logger *slog.Logger, validator *utils.Validator) TaskService {
	return &taskService{
		repo:      repo,
		logger:    logger,
		validator: validator,
	}
}

func (s *taskService) ListMine(ctx context.Context, actor models.User) ([]models.Task, error) {
	return s.repo.Tasks().ListByAssignee(ctx, actor.ID), nil
}

func (s *taskService) Create(ctx context.Context, req *CreateTaskRequest, actor models.User) (*models.Task, error) {
	if verrs := s.validator.Struct(req); verrs != nil {
		return nil, verrs
	}

	task, err := s.repo.Tasks().Add(ctx, models.Task{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		ClassID:     req.ClassID,
		AssignedTo:  actor.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return &task, nil
}

func (s *taskService) Update(ctx context.Context, id string, req *UpdateTaskRequest, actor models.User) error {
	if verrs := s.validator.Struct(req); verrs != nil {
		return verrs
	}
	if err := s.requireOwnership(ctx, id, actor); err != nil {
		return err
	}

	found, err := s.repo.Tasks().Update(ctx, id, repositories.TaskUpdate{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Completed:   req.Completed,
	})
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	if !found {
		return ErrTaskNotFound
	}
	return nil
}

func (s *taskService) Delete(ctx context.Context, id string, actor models.User) error {
	if err := s.requireOwnership(ctx, id, actor); err != nil {
		return err
	}
	found, err := s.repo.Tasks().Remove(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if !found {
		return ErrTaskNotFound
	}
	return nil
}

func (s *taskService) requireOwnership(ctx context.Context, id string, actor models.User) error {
	for _, t := range s.repo.Tasks().List(ctx) {
		if t.ID == id {
			if t.AssignedTo != actor.ID {
				return NewPermissionError(actor.ID, "tasks", "modify", "not the task owner")
			}
			return nil
		}
	}
	return ErrTaskNotFound
}
