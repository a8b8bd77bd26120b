package repositories

import (
	"context"
	"sync"

	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/models"
	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/store"
)

type notificationRepository struct {
	store *store.Store
	mu    sync.Mutex
}

func (r *notificationRepository) List(ctx context.Context) []models.Notification {
	return store.GetCollection[models.Notification](ctx, r.store, store.KeyNotifications)
}

func (r *notificationRepository) Add(ctx context.Context, n models.Notification) (models.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n.ID == "" {
		n.ID = newID()
	}
	all := append(r.List(ctx), n)
	if err := store.SetCollection(ctx, r.store, store.KeyNotifications, all); err != nil {
		return models.Notification{}, err
	}
	return n, nil
}

func (r *notificationRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return store.SetCollection(ctx, r.store, store.KeyNotifications, []models.Notification{})
}
