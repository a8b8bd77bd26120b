package repositories

import (
	"context"

	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/models"
)

// Repositories wrap the record store with typed CRUD. Every read re-fetches
// the full collection and every write re-serializes it; nothing is cached
// across calls. Update and Remove report whether a record matched so callers
// can distinguish "updated" from "nothing found" instead of no-opping
// silently.

type UserRepository interface {
	List(ctx context.Context) []models.User
	GetByID(ctx context.Context, id string) (*models.User, bool)
	ListByRole(ctx context.Context, role models.UserRole) []models.User
	Add(ctx context.Context, user models.User) (models.User, error)
	Update(ctx context.Context, user models.User) (bool, error)
	Remove(ctx context.Context, id string) (bool, error)

	// Login returns the first user whose email and role both match. Emails are
	// not case-normalized.
	Login(ctx context.Context, email string, role models.UserRole) (*models.User, bool)

	// GiveXP adds amount to the user's experience counter, treating a missing
	// counter as zero.
	GiveXP(ctx context.Context, id string, amount int) (bool, error)
}

type AttendanceRepository interface {
	List(ctx context.Context) []models.AttendanceRecord
	ListByDate(ctx context.Context, date string) []models.AttendanceRecord
	ListByStudent(ctx context.Context, studentID string) []models.AttendanceRecord

	// Save replaces any existing record for the same (date, studentId) pair.
	Save(ctx context.Context, record models.AttendanceRecord) (models.AttendanceRecord, error)

	// MarkAllPresent bulk-replaces the given students' records for date,
	// setting every status to present.
	MarkAllPresent(ctx context.Context, date string, studentIDs []string, classID string) ([]models.AttendanceRecord, error)
}

type AssignmentRepository interface {
	List(ctx context.Context) []models.Assignment
	ListByClass(ctx context.Context, classID string) []models.Assignment
	Add(ctx context.Context, a models.Assignment) (models.Assignment, error)
	Update(ctx context.Context, id string, updates AssignmentUpdate) (bool, error)
	Remove(ctx context.Context, id string) (bool, error)
}

type NoteRepository interface {
	List(ctx context.Context) []models.Note
	ListByClass(ctx context.Context, classID string) []models.Note
	Add(ctx context.Context, n models.Note) (models.Note, error)
	Remove(ctx context.Context, id string) (bool, error)
}

type TaskRepository interface {
	List(ctx context.Context) []models.Task
	ListByAssignee(ctx context.Context, userID string) []models.Task
	Add(ctx context.Context, t models.Task) (models.Task, error)
	Update(ctx context.Context, id string, updates TaskUpdate) (bool, error)
	Remove(ctx context.Context, id string) (bool, error)
}

type NotificationRepository interface {
	List(ctx context.Context) []models.Notification
	Add(ctx context.Context, n models.Notification) (models.Notification, error)
	Clear(ctx context.Context) error
}

// ===== PARTIAL UPDATE STRUCTS =====

// Nil fields are left untouched; set fields are merged into the stored record.

type AssignmentUpdate struct {
	Title       *string                  `json:"title,omitempty"`
	Description *string                  `json:"description,omitempty"`
	DueDate     *string                  `json:"dueDate,omitempty"`
	Status      *models.AssignmentStatus `json:"status,omitempty"`
}

type TaskUpdate struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	DueDate     *string `json:"dueDate,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}

// Repository bundles the per-collection repositories for injection into
// services.
type Repository interface {
	Users() UserRepository
	Attendance() AttendanceRepository
	Assignments() AssignmentRepository
	Notes() NoteRepository
	Tasks() TaskRepository
	Notifications() NotificationRepository
}
