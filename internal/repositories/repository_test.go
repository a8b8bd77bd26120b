package repositories

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/models"
	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/store"
)

func newTestRepository() Repository {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(store.New(store.NewMemoryMedium(), logger))
}

func TestUserRepository_AddAssignsID(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository()

	added, err := repo.Users().Add(ctx, models.User{Name: "New Student", Email: "new@scms.com", Role: models.RoleStudent})
	require.NoError(t, err)
	assert.NotEmpty(t, added.ID)

	got, ok := repo.Users().GetByID(ctx, added.ID)
	require.True(t, ok)
	assert.Equal(t, "New Student", got.Name)
}

func TestUserRepository_UpdatePreservesRole(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository()

	added, err := repo.Users().Add(ctx, models.User{Name: "Student", Email: "s@scms.com", Role: models.RoleStudent})
	require.NoError(t, err)

	edited := added
	edited.Name = "Renamed Student"
	edited.Role = models.RoleAdmin // must not take effect

	found, err := repo.Users().Update(ctx, edited)
	require.NoError(t, err)
	assert.True(t, found)

	got, ok := repo.Users().GetByID(ctx, added.ID)
	require.True(t, ok)
	assert.Equal(t, "Renamed Student", got.Name)
	assert.Equal(t, models.RoleStudent, got.Role)
}

func TestUserRepository_UpdateMissingIDLeavesCollectionUntouched(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository()

	added, err := repo.Users().Add(ctx, models.User{Name: "Only User", Email: "only@scms.com", Role: models.RoleTeacher})
	require.NoError(t, err)

	found, err := repo.Users().Update(ctx, models.User{ID: "missing", Name: "Ghost", Email: "ghost@scms.com"})
	require.NoError(t, err)
	assert.False(t, found)

	users := repo.Users().List(ctx)
	require.Len(t, users, 1)
	assert.Equal(t, added.ID, users[0].ID)
	assert.Equal(t, "Only User", users[0].Name)
}

func TestUserRepository_Login(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository()

	_, err := repo.Users().Add(ctx, models.User{Name: "Sarah", Email: "sarah@scms.com", Role: models.RoleTeacher})
	require.NoError(t, err)

	tests := []struct {
		name  string
		email string
		role  models.UserRole
		want  bool
	}{
		{"matching pair", "sarah@scms.com", models.RoleTeacher, true},
		{"wrong role", "sarah@scms.com", models.RoleAdmin, false},
		{"unknown email", "nobody@scms.com", models.RoleTeacher, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, ok := repo.Users().Login(ctx, tt.email, tt.role)
			assert.Equal(t, tt.want, ok)
			if tt.want {
				assert.Equal(t, "Sarah", user.Name)
			}
		})
	}
}

func TestUserRepository_GiveXPAccumulates(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository()

	added, err := repo.Users().Add(ctx, models.User{Name: "Student", Email: "s@scms.com", Role: models.RoleStudent})
	require.NoError(t, err)
	require.Zero(t, added.XP)

	found, err := repo.Users().GiveXP(ctx, added.ID, 10)
	require.NoError(t, err)
	assert.True(t, found)

	found, err = repo.Users().GiveXP(ctx, added.ID, 10)
	require.NoError(t, err)
	assert.True(t, found)

	got, ok := repo.Users().GetByID(ctx, added.ID)
	require.True(t, ok)
	assert.Equal(t, 20, got.XP)
}

func TestUserRepository_GiveXPMissingUser(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository()

	found, err := repo.Users().GiveXP(ctx, "missing", 10)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestAttendanceRepository_SaveReplacesSameDayRecord(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository()

	first, err := repo.Attendance().Save(ctx, models.AttendanceRecord{
		Date: "2025-03-01", ClassID: "c1", StudentID: "u3", Status: models.AttendanceAbsent,
	})
	require.NoError(t, err)

	second, err := repo.Attendance().Save(ctx, models.AttendanceRecord{
		Date: "2025-03-01", ClassID: "c1", StudentID: "u3", Status: models.AttendancePresent,
	})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	records := repo.Attendance().ListByDate(ctx, "2025-03-01")
	require.Len(t, records, 1)
	assert.Equal(t, models.AttendancePresent, records[0].Status)
}

func TestAttendanceRepository_SaveKeepsOtherDays(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository()

	_, err := repo.Attendance().Save(ctx, models.AttendanceRecord{
		Date: "2025-03-01", ClassID: "c1", StudentID: "u3", Status: models.AttendancePresent,
	})
	require.NoError(t, err)
	_, err = repo.Attendance().Save(ctx, models.AttendanceRecord{
		Date: "2025-03-02", ClassID: "c1", StudentID: "u3", Status: models.AttendanceAbsent,
	})
	require.NoError(t, err)

	assert.Len(t, repo.Attendance().ListByStudent(ctx, "u3"), 2)
}

func TestAttendanceRepository_MarkAllPresent(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository()

	// One student already marked absent for the day; bulk marking flips them.
	_, err := repo.Attendance().Save(ctx, models.AttendanceRecord{
		Date: "2025-03-01", ClassID: "c1", StudentID: "u3", Status: models.AttendanceAbsent,
	})
	require.NoError(t, err)

	fresh, err := repo.Attendance().MarkAllPresent(ctx, "2025-03-01", []string{"u3", "u4", "u5"}, "c1")
	require.NoError(t, err)
	assert.Len(t, fresh, 3)

	records := repo.Attendance().ListByDate(ctx, "2025-03-01")
	require.Len(t, records, 3)
	for _, rec := range records {
		assert.Equal(t, models.AttendancePresent, rec.Status)
		assert.Equal(t, "c1", rec.ClassID)
	}
}

func TestAssignmentRepository_PartialUpdate(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository()

	added, err := repo.Assignments().Add(ctx, models.Assignment{
		Title: "Essay", Description: "On Go interfaces", DueDate: "2025-04-01",
		ClassID: "c1", Status: models.AssignmentPending,
	})
	require.NoError(t, err)

	status := models.AssignmentSubmitted
	found, err := repo.Assignments().Update(ctx, added.ID, AssignmentUpdate{Status: &status})
	require.NoError(t, err)
	assert.True(t, found)

	all := repo.Assignments().List(ctx)
	require.Len(t, all, 1)
	assert.Equal(t, models.AssignmentSubmitted, all[0].Status)
	assert.Equal(t, "Essay", all[0].Title)
	assert.Equal(t, "On Go interfaces", all[0].Description)
}

func TestAssignmentRepository_RemoveMissing(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository()

	found, err := repo.Assignments().Remove(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestNoteRepository_AddKeepsExisting(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository()

	_, err := repo.Notes().Add(ctx, models.Note{Title: "A", Subject: "Math", Content: "x", UploadedBy: "u2", ClassID: "c1", Date: "2025-01-01"})
	require.NoError(t, err)
	_, err = repo.Notes().Add(ctx, models.Note{Title: "B", Subject: "Math", Content: "y", UploadedBy: "u2", ClassID: "c1", Date: "2025-01-02"})
	require.NoError(t, err)

	assert.Len(t, repo.Notes().List(ctx), 2)
}

func TestTaskRepository_UpdateCompletion(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository()

	added, err := repo.Tasks().Add(ctx, models.Task{Title: "Revise notes", DueDate: "2025-02-01", AssignedTo: "u3"})
	require.NoError(t, err)

	completed := true
	found, err := repo.Tasks().Update(ctx, added.ID, TaskUpdate{Completed: &completed})
	require.NoError(t, err)
	assert.True(t, found)

	mine := repo.Tasks().ListByAssignee(ctx, "u3")
	require.Len(t, mine, 1)
	assert.True(t, mine[0].Completed)
	assert.Equal(t, "Revise notes", mine[0].Title)
}

func TestNotificationRepository_Clear(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository()

	_, err := repo.Notifications().Add(ctx, models.Notification{Title: "Ping", Message: "hello", Time: "Just now"})
	require.NoError(t, err)
	require.Len(t, repo.Notifications().List(ctx), 1)

	require.NoError(t, repo.Notifications().Clear(ctx))
	assert.Empty(t, repo.Notifications().List(ctx))
}
