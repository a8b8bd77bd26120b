package repositories

import (
	"context"
	"sync"

	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/models"
	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/store"
)

type taskRepository struct {
	store *store.Store
	mu    sync.Mutex
}

func (r *taskRepository) List(ctx context.Context) []models.Task {
	return store.GetCollection[models.Task](ctx, r.store, store.KeyTasks)
}

func (r *taskRepository) ListByAssignee(ctx context.Context, userID string) []models.Task {
	var out []models.Task
	for _, t := range r.List(ctx) {
		if t.AssignedTo == userID {
			out = append(out, t)
		}
	}
	return out
}

func (r *taskRepository) Add(ctx context.Context, t models.Task) (models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if t.ID == "" {
		t.ID = newID()
	}
	all := append(r.List(ctx), t)
	if err := store.SetCollection(ctx, r.store, store.KeyTasks, all); err != nil {
		return models.Task{}, err
	}
	return t, nil
}

func (r *taskRepository) Update(ctx context.Context, id string, updates TaskUpdate) (bool, error) {
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
		if updates.Completed != nil {
			all[i].Completed = *updates.Completed
		}
		return true, store.SetCollection(ctx, r.store, store.KeyTasks, all)
	}
	return false, nil
}

func (r *taskRepository) Remove(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := r.List(ctx)
	kept := all[:0]
	for _, t := range all {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(all) {
		return false, nil
	}
	return true, store.SetCollection(ctx, r.store, store.KeyTasks, kept)
}
