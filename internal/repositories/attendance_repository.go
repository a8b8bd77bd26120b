package repositories

import (
	"context"
	"sync"

	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/models"
	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/store"
)

type attendanceRepository struct {
	store *store.Store
	mu    sync.Mutex
}

func (r *attendanceRepository) List(ctx context.Context) []models.AttendanceRecord {
	return store.GetCollection[models.AttendanceRecord](ctx, r.store, store.KeyAttendance)
}

func (r *attendanceRepository) ListByDate(ctx context.Context, date string) []models.AttendanceRecord {
	var out []models.AttendanceRecord
	for _, rec := range r.List(ctx) {
		if rec.Date == date {
			out = append(out, rec)
		}
	}
	return out
}

func (r *attendanceRepository) ListByStudent(ctx context.Context, studentID string) []models.AttendanceRecord {
	var out []models.AttendanceRecord
	for _, rec := range r.List(ctx) {
		if rec.StudentID == studentID {
			out = append(out, rec)
		}
	}
	return out
}

func (r *attendanceRepository) Save(ctx context.Context, record models.AttendanceRecord) (models.AttendanceRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if record.ID == "" {
		record.ID = newID()
	}

	all := r.List(ctx)
	kept := all[:0]
	for _, rec := range all {
		if !(rec.Date == record.Date && rec.StudentID == record.StudentID) {
			kept = append(kept, rec)
		}
	}
	kept = append(kept, record)
	if err := store.SetCollection(ctx, r.store, store.KeyAttendance, kept); err != nil {
		return models.AttendanceRecord{}, err
	}
	return record, nil
}

func (r *attendanceRepository) MarkAllPresent(ctx context.Context, date string, studentIDs []string, classID string) ([]models.AttendanceRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	marked := make(map[string]bool, len(studentIDs))
	for _, id := range studentIDs {
		marked[id] = true
	}

	all := r.List(ctx)
	kept := all[:0]
	for _, rec := range all {
		if !(rec.Date == date && marked[rec.StudentID]) {
			kept = append(kept, rec)
		}
	}

	fresh := make([]models.AttendanceRecord, 0, len(studentIDs))
	for _, id := range studentIDs {
		fresh = append(fresh, models.AttendanceRecord{
			ID:        newID(),
			Date:      date,
			ClassID:   classID,
			StudentID: id,
			Status:    models.AttendancePresent,
		})
	}

	if err := store.SetCollection(ctx, r.store, store.KeyAttendance, append(kept, fresh...)); err != nil {
		return nil, err
	}
	return fresh, nil
}
