package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/events"
	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/models"
)

func (f *serviceFixture) attendanceService() AttendanceService {
	return NewAttendanceService(f.repo, f.publisher, f.logger, f.validator)
}

func TestAttendanceService_SaveGatedByRole(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture(t)
	svc := f.attendanceService()

	req := &SaveAttendanceRequest{
		Date: "2025-03-01", ClassID: "c1", StudentID: "u3", Status: models.AttendanceAbsent,
	}

	_, err := svc.Save(ctx, req, f.actor(t, "u3"))
	assert.ErrorIs(t, err, ErrForbidden)

	record, err := svc.Save(ctx, req, f.actor(t, "u2"))
	require.NoError(t, err)
	assert.Equal(t, models.AttendanceAbsent, record.Status)

	published := f.publisher.PublishedEvents()
	require.Len(t, published, 1)
	assert.Equal(t, events.EventAttendanceRecorded, published[0].Type)
}

func TestAttendanceService_SaveValidatesRequest(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture(t)
	svc := f.attendanceService()

	_, err := svc.Save(ctx, &SaveAttendanceRequest{
		Date: "01-03-2025", ClassID: "c1", StudentID: "u3", Status: models.AttendancePresent,
	}, f.actor(t, "u2"))
	assert.Error(t, err)
}

func TestAttendanceService_ListScopesStudentsToOwnRecords(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture(t)
	svc := f.attendanceService()
	teacher := f.actor(t, "u2")

	for _, studentID := range []string{"u3", "u4"} {
		_, err := svc.Save(ctx, &SaveAttendanceRequest{
			Date: "2025-03-01", ClassID: "c1", StudentID: studentID, Status: models.AttendancePresent,
		}, teacher)
		require.NoError(t, err)
	}

	all, err := svc.List(ctx, teacher)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	own, err := svc.List(ctx, f.actor(t, "u3"))
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, "u3", own[0].StudentID)
}

func TestAttendanceService_FilteredListsScopeStudents(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture(t)
	svc := f.attendanceService()
	teacher := f.actor(t, "u2")

	for _, studentID := range []string{"u3", "u4"} {
		_, err := svc.Save(ctx, &SaveAttendanceRequest{
			Date: "2025-03-01", ClassID: "c1", StudentID: studentID, Status: models.AttendancePresent,
		}, teacher)
		require.NoError(t, err)
	}

	student := f.actor(t, "u3")

	t.Run("date view is staff only", func(t *testing.T) {
		byDate, err := svc.ListByDate(ctx, "2025-03-01", teacher)
		require.NoError(t, err)
		assert.Len(t, byDate, 2)

		_, err = svc.ListByDate(ctx, "2025-03-01", student)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("students read only their own records", func(t *testing.T) {
		_, err := svc.ListForStudent(ctx, "u4", student)
		assert.ErrorIs(t, err, ErrForbidden)

		own, err := svc.ListForStudent(ctx, "u3", student)
		require.NoError(t, err)
		require.Len(t, own, 1)
		assert.Equal(t, "u3", own[0].StudentID)

		other, err := svc.ListForStudent(ctx, "u4", teacher)
		require.NoError(t, err)
		assert.Len(t, other, 1)
	})
}

func TestAttendanceService_MarkAllPresent(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture(t)
	svc := f.attendanceService()

	records, err := svc.MarkAllPresent(ctx, &MarkAllPresentRequest{
		Date: "2025-03-01", ClassID: "c1", StudentIDs: []string{"u3", "u4", "u5"},
	}, f.actor(t, "u2"))
	require.NoError(t, err)
	assert.Len(t, records, 3)

	_, err = svc.MarkAllPresent(ctx, &MarkAllPresentRequest{
		Date: "2025-03-01", ClassID: "c1", StudentIDs: []string{"u3"},
	}, f.actor(t, "u3"))
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.MarkAllPresent(ctx, &MarkAllPresentRequest{
		Date: "2025-03-01", ClassID: "c1", StudentIDs: []string{},
	}, f.actor(t, "u2"))
	assert.Error(t, err)
}
