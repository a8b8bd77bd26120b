package repositories

import (
	"context"
	"sync"

	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/models"
	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/store"
)

type assignmentRepository struct {
	store *store.Store
	mu    sync.Mutex
}

func (r *assignmentRepository) List(ctx context.Context) []models.Assignment {
	return store.GetCollection[models.Assignment](ctx, r.store, store.KeyAssignments)
}

func (r *assignmentRepository) ListByClass(ctx context.Context, classID string) []models.Assignment {
	var out []models.Assignment
	for _, a := range r.List(ctx) {
		if a.ClassID == classID {
			out = append(out, a)
		}
	}
	return out
}

func (r *assignmentRepository) Add(ctx context.Context, a models.Assignment) (models.Assignment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if a.ID == "" {
		a.ID = newID()
	}
	if a.Status == "" {
		a.Status = models.AssignmentPending
	}
	all := append(r.List(ctx), a)
	if err := store.SetCollection(ctx, r.store, store.KeyAssignments, all); err != nil {
		return models.Assignment{}, err
	}
	return a, nil
}

func (r *assignmentRepository) Update(ctx context.Context, id string, updates AssignmentUpdate) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := r.List(ctx)
	for i := range all {
		if all[i].ID != id {
			continue
		}
		if updates.Title != nil {
			all[i].Title = *updates.Title
		}
		if updates.Description != nil {
			all[i].Description = *updates.Description
		}
		if updates.DueDate != nil {
			all[i].DueDate = *updates.DueDate
		}
		if updates.Status != nil {
			all[i].Status = *updates.Status
		}
		return true, store.SetCollection(ctx, r.store, store.KeyAssignments, all)
	}
	return false, nil
}

func (r *assignmentRepository) Remove(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := r.List(ctx)
	kept := all[:0]
	for _, a := range all {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	if len(kept) == len(all) {
		return false, nil
	}
	return true, store.SetCollection(ctx, r.store, store.KeyAssignments, kept)
}
