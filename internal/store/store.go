package store

import (
	"context"
	"encoding/json"
	"log/slog"
)

// Store serializes named collections to a Medium. Every read deserializes the
// full collection and every write replaces it, so a single logical session
// never loses sequential writes, but two concurrent writers against the same
// medium can race (read, read, write, write drops the first write). That
// lost-update window is an accepted limitation of the whole-collection model;
// callers within one process serialize writes per collection via the
// repositories.
type Store struct {
	medium Medium
	logger *slog.Logger
}

func New(medium Medium, logger *slog.Logger) *Store {
	return &Store{
		medium: medium,
		logger: logger,
	}
}

func (s *Store) Medium() Medium {
	return s.medium
}

// Initialize seeds the demo dataset on first run. Presence of the users
// collection is the marker, so calling it on every start is a no-op once data
// exists.
func (s *Store) Initialize(ctx context.Context) error {
	_, exists, err := s.medium.Get(ctx, KeyUsers)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	s.logger.Info("Empty storage detected, seeding demo data")

	if err := SetCollection(ctx, s, KeyUsers, seedUsers()); err != nil {
		return err
	}
	if err := SetCollection(ctx, s, KeyNotes, seedNotes()); err != nil {
		return err
	}
	if err := SetCollection(ctx, s, KeyNotifications, seedNotifications()); err != nil {
		return err
	}
	for _, key := range []string{KeyAttendance, KeyTasks, KeyAssignments} {
		if err := s.medium.Set(ctx, key, "[]"); err != nil {
			return err
		}
	}
	return nil
}

// GetCollection returns the full deserialized collection under key. An absent
// or corrupt value reads as an empty collection, never as an error.
func GetCollection[T any](ctx context.Context, s *Store, key string) []T {
	raw, ok, err := s.medium.Get(ctx, key)
	if err != nil {
		s.logger.Warn("Collection read failed, treating as empty", "key", key, "error", err)
		return []T{}
	}
	if !ok {
		return []T{}
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.logger.Warn("Collection is corrupt, treating as empty", "key", key, "error", err)
		return []T{}
	}
	if items == nil {
		return []T{}
	}
	return items
}

// SetCollection serializes items and replaces the prior contents of key.
func SetCollection[T any](ctx context.Context, s *Store, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.medium.Set(ctx, key, string(raw))
}
