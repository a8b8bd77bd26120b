package repositories

import (
	"context"
	"sync"

	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/models"
	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/store"
)

type userRepository struct {
	store *store.Store
	mu    sync.Mutex
}

func (r *userRepository) List(ctx context.Context) []models.User {
	return store.GetCollection[models.User](ctx, r.store, store.KeyUsers)
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*models.User, bool) {
	for _, u := range r.List(ctx) {
		if u.ID == id {
			return &u, true
		}
	}
	return nil, false
}

func (r *userRepository) ListByRole(ctx context.Context, role models.UserRole) []models.User {
	var out []models.User
	for _, u := range r.List(ctx) {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out
}

func (r *userRepository) Add(ctx context.Context, user models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID == "" {
		user.ID = newID()
	}
	users := r.List(ctx)
	users = append(users, user)
	if err := store.SetCollection(ctx, r.store, store.KeyUsers, users); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Update replaces the stored record wholesale with the given user. The role
// field is carried over from the stored record: role is fixed at creation.
func (r *userRepository) Update(ctx context.Context, user models.User) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := r.List(ctx)
	for i := range users {
		if users[i].ID == user.ID {
			user.Role = users[i].Role
			users[i] = user
			return true, store.SetCollection(ctx, r.store, store.KeyUsers, users)
		}
	}
	return false, nil
}

func (r *userRepository) Remove(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := r.List(ctx)
	kept := users[:0]
	for _, u := range users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	if len(kept) == len(users) {
		return false, nil
	}
	return true, store.SetCollection(ctx, r.store, store.KeyUsers, kept)
}

func (r *userRepository) Login(ctx context.Context, email string, role models.UserRole) (*models.User, bool) {
	for _, u := range r.List(ctx) {
		if u.Email == email && u.Role == role {
			return &u, true
		}
	}
	return nil, false
}

func (r *userRepository) GiveXP(ctx context.Context, id string, amount int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := r.List(ctx)
	for i := range users {
		if users[i].ID == id {
			users[i].XP += amount
			return true, store.SetCollection(ctx, r.store, store.KeyUsers, users)
		}
	}
	return false, nil
}
