package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/models"
)

func (f *serviceFixture) exportService() ExportService {
	return NewExportService(f.repo, f.logger)
}

func TestExportCSV_Users(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture(t)
	svc := f.exportService()

	data, filename, err := svc.ExportCSV(ctx, "users", f.actor(t, "u1"))
	require.NoError(t, err)
	assert.Equal(t, "users.csv", filename)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 13) // header + 12 seed users

	header := records[0]
	assert.Equal(t, "id", header[0])
	assert.Contains(t, header, "email")
	assert.Contains(t, header, "xp")
}

func TestExportCSV_EscapesEmbeddedDelimiters(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture(t)
	svc := f.exportService()

	_, err := f.repo.Notes().Add(ctx, models.Note{
		Title:      `Reading list: "Go, in practice"`,
		Subject:    "English",
		Content:    "Commas, quotes and\nnewlines",
		UploadedBy: "u2",
		ClassID:    "c1",
		Date:       "2025-01-15",
	})
	require.NoError(t, err)

	data, _, err := svc.ExportCSV(ctx, "notes", f.actor(t, "u2"))
	require.NoError(t, err)

	// A strict reader round-trips the quoted fields intact.
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 6) // header + 4 seed notes + 1 added

	last := records[len(records)-1]
	assert.Equal(t, `Reading list: "Go, in practice"`, last[1])
	assert.Equal(t, "Commas, quotes and\nnewlines", last[3])
}

func TestExportCSV_StudentCannotExportUsers(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture(t)
	svc := f.exportService()

	_, _, err := svc.ExportCSV(ctx, "users", f.actor(t, "u3"))
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestExportCSV_UnknownCollection(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture(t)
	svc := f.exportService()

	_, _, err := svc.ExportCSV(ctx, "grades", f.actor(t, "u1"))
	assert.Error(t, err)
}

func TestExportCSV_TasksScopedToActor(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture(t)
	svc := f.exportService()

	_, err := f.repo.Tasks().Add(ctx, models.Task{Title: "Mine", DueDate: "2025-02-01", AssignedTo: "u3"})
	require.NoError(t, err)
	_, err = f.repo.Tasks().Add(ctx, models.Task{Title: "Theirs", DueDate: "2025-02-01", AssignedTo: "u4"})
	require.NoError(t, err)

	data, _, err := svc.ExportCSV(ctx, "tasks", f.actor(t, "u3"))
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2) // header + own task only
	assert.Equal(t, "Mine", records[1][1])
}

func TestExportExcel_Attendance(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture(t)
	svc := f.exportService()

	_, err := f.repo.Attendance().Save(ctx, models.AttendanceRecord{
		Date: "2025-03-01", ClassID: "c1", StudentID: "u3", Status: models.AttendancePresent,
	})
	require.NoError(t, err)

	data, filename, err := svc.ExportExcel(ctx, "attendance", f.actor(t, "u2"))
	require.NoError(t, err)
	assert.Equal(t, "attendance.xlsx", filename)

	book, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer book.Close()

	rows, err := book.GetRows(book.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "date", rows[0][1])
	assert.Equal(t, "2025-03-01", rows[1][1])
}
