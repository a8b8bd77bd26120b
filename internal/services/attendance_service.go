package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/authz"
	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/events"
	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/models"
	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/repositories"
	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/utils"
)

type AttendanceService interface {
	List(ctx context.Context, actor models.User) ([]models.AttendanceRecord, error)
	ListByDate(ctx context.Context, date string, actor models.User) ([]models.AttendanceRecord, error)
	ListForStudent(ctx context.Context, studentID string, actor models.User) ([]models.AttendanceRecord, error)
	Save(ctx context.Context, req *SaveAttendanceRequest, actor models.User) (*models.AttendanceRecord, error)
	MarkAllPresent(ctx context.Context, req *MarkAllPresentRequest, actor models.User) ([]models.AttendanceRecord, error)
}

type SaveAttendanceRequest struct {
	Date      string                  `json:"date" validate:"required,datetime=2006-01-02"`
	ClassID   string                  `json:"classId" validate:"required"`
	StudentID string                  `json:"studentId" validate:"required"`
	Status    models.AttendanceStatus `json:"status" validate:"required,attendance_status"`
}

type MarkAllPresentRequest struct {
	Date       string   `json:"date" validate:"required,datetime=2006-01-02"`
	ClassID    string   `json:"classId" validate:"required"`
	StudentIDs []string `json:"studentIds" validate:"required,min=1"`
}

type attendanceService struct {
	repo      repositories.Repository
	publisher events.EventPublisher
	logger    *slog.Logger
	validator *utils.Validator
}

func NewAttendanceService(repo repositories.Repository, publisher events.EventPublisher, logger *slog.Logger, validator *utils.Validator) AttendanceService {
	return &attendanceService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		validator: validator,
	}
}

// List scopes to the actor: students see their own records, staff see all.
func (s *attendanceService) List(ctx context.Context, actor models.User) ([]models.AttendanceRecord, error) {
	if actor.Role == models.RoleStudent {
		return s.repo.Attendance().ListByStudent(ctx, actor.ID), nil
	}
	return s.repo.Attendance().List(ctx), nil
}

// ListByDate is a staff view; students go through List and see only their own
// records.
func (s *attendanceService) ListByDate(ctx context.Context, date string, actor models.User) ([]models.AttendanceRecord, error) {
	if actor.Role == models.RoleStudent {
		return nil, NewPermissionError(actor.ID, "attendance", "list_by_date", "students see only their own records")
	}
	return s.repo.Attendance().ListByDate(ctx, date), nil
}

func (s *attendanceService) ListForStudent(ctx context.Context, studentID string, actor models.User) ([]models.AttendanceRecord, error) {
	if actor.Role == models.RoleStudent && actor.ID != studentID {
		return nil, NewPermissionError(actor.ID, "attendance", "list_for_student", "not own records")
	}
	return s.repo.Attendance().ListByStudent(ctx, studentID), nil
}

func (s *attendanceService) Save(ctx context.Context, req *SaveAttendanceRequest, actor models.User) (*models.AttendanceRecord, error) {
	if !authz.CanMutate(actor.Role, authz.ActionTakeAttendance) {
		return nil, NewPermissionError(actor.ID, "attendance", "save", "requires teacher or admin")
	}
	if verrs := s.validator.Struct(req); verrs != nil {
		return nil, verrs
	}

	record, err := s.repo.Attendance().Save(ctx, models.AttendanceRecord{
		Date:      req.Date,
		ClassID:   req.ClassID,
		StudentID: req.StudentID,
		Status:    req.Status,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save attendance: %w", err)
	}

	s.publishRecorded(ctx, req.Date, req.ClassID, []string{req.StudentID}, actor.ID)
	return &record, nil
}

func (s *attendanceService) MarkAllPresent(ctx context.Context, req *MarkAllPresentRequest, actor models.User) ([]models.AttendanceRecord, error) {
	if !authz.CanMutate(actor.Role, authz.ActionTakeAttendance) {
		return nil, NewPermissionError(actor.ID, "attendance", "mark_all_present", "requires teacher or admin")
	}
	if verrs := s.validator.Struct(req); verrs != nil {
		return nil, verrs
	}

	records, err := s.repo.Attendance().MarkAllPresent(ctx, req.Date, req.StudentIDs, req.ClassID)
	if err != nil {
		return nil, fmt.Errorf("failed to mark all present: %w", err)
	}

	s.logger.Info("Attendance marked all present",
		"date", req.Date,
		"class_id", req.ClassID,
		"count", len(records))

	s.publishRecorded(ctx, req.Date, req.ClassID, req.StudentIDs, actor.ID)
	return records, nil
}

func (s *attendanceService) publishRecorded(ctx context.Context, date, classID string, studentIDs []string, recordedBy string) {
	event := events.NewEvent(events.EventAttendanceRecorded, events.AttendanceRecordedEvent{
		Date:       date,
		ClassID:    classID,
		StudentIDs: studentIDs,
		RecordedBy: recordedBy,
	})
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("Attendance event not published", "date", date, "error", err)
	}
}
