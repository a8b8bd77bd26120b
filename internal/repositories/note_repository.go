package repositories

import (
	"context"
	"sync"

	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/models"
	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/store"
)

type noteRepository struct {
	store *store.Store
	mu    sync.Mutex
}

func (r *noteRepository) List(ctx context.Context) []models.Note {
	return store.GetCollection[models.Note](ctx, r.store, store.KeyNotes)
}

func (r *noteRepository) ListByClass(ctx context.Context, classID string) []models.Note {
	var out []models.Note
	for _, n := range r.List(ctx) {
		if n.ClassID == classID {
			out = append(out, n)
		}
	}
	return out
}

func (r *noteRepository) Add(ctx context.Context, n models.Note) (models.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n.ID == "" {
		n.ID = newID()
	}
	all := append(r.List(ctx), n)
	if err := store.SetCollection(ctx, r.store, store.KeyNotes, all); err != nil {
		return models.Note{}, err
	}
	return n, nil
}

func (r *noteRepository) Remove(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := r.List(ctx)
	kept := all[:0]
	for _, n := range all {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	if len(kept) == len(all) {
		return false, nil
	}
	return true, store.SetCollection(ctx, r.store, store.KeyNotes, kept)
}
