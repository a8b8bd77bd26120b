package repositories

import (
	"github.com/google/uuid"

	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/store"
)

// storeRepository is the store-backed Repository implementation. Each
// collection repository carries its own mutex so read-modify-write cycles
// within one process never interleave; races between separate processes
// sharing a medium remain possible, as documented on the store.
type storeRepository struct {
	users         *userRepository
	attendance    *attendanceRepository
	assignments   *assignmentRepository
	notes         *noteRepository
	tasks         *taskRepository
	notifications *notificationRepository
}

func New(s *store.Store) Repository {
	return &storeRepository{
		users:         &userRepository{store: s},
		attendance:    &attendanceRepository{store: s},
		assignments:   &assignmentRepository{store: s},
		notes:         &noteRepository{store: s},
		tasks:         &taskRepository{store: s},
		notifications: &notificationRepository{store: s},
	}
}

func (r *storeRepository) Users() UserRepository { return r.users }

func (r *storeRepository) Attendance() AttendanceRepository { return r.attendance }

func (r *storeRepository) Assignments() AssignmentRepository { return r.assignments }

func (r *storeRepository) Notes() NoteRepository { return r.notes }

func (r *storeRepository) Tasks() TaskRepository { return r.tasks }

func (r *storeRepository) Notifications() NotificationRepository { return r.notifications }

func newID() string {
	return uuid.NewString()
}
