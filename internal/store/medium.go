package store

import "context"

// Storage keys. One key holds one serialized collection (or a single value for
// the session, theme and announcement slots).
const (
	KeyUsers         = "users"
	KeyAttendance    = "attendance"
	KeyTasks         = "tasks"
	KeyAssignments   = "assignments"
	KeyNotes         = "notes"
	KeyNotifications = "notifications"
	KeySession       = "current_session"
	KeyTheme         = "theme"
	KeyAnnouncement  = "global_announcement"
)

// Medium is the persistent key-value surface the store runs on. Set must
// replace the whole value; there is no partial write. Watch delivers the names
// of changed keys to every subscriber in the same storage scope, fire and
// forget, with no ordering or delivery guarantee.
type Medium interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Watch(ctx context.Context) (<-chan string, error)
	Close() error
}
