package session

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/models"
	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/repositories"
	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/store"
)

// Manager owns the persisted session snapshot and the theme preference. The
// snapshot is a copy of the signed-in user, not a live reference; SyncProfile
// keeps it consistent after profile edits without requiring re-login.
type Manager struct {
	store  *store.Store
	users  repositories.UserRepository
	logger *slog.Logger
}

func NewManager(s *store.Store, users repositories.UserRepository, logger *slog.Logger) *Manager {
	return &Manager{
		store:  s,
		users:  users,
		logger: logger,
	}
}

// Login looks the (email, role) pair up in the user directory and, on a match,
// persists a snapshot of that user as the active session. A miss leaves any
// existing session untouched.
func (m *Manager) Login(ctx context.Context, email string, role models.UserRole) (*models.User, bool, error) {
	user, ok := m.users.Login(ctx, email, role)
	if !ok {
		return nil, false, nil
	}

	raw, err := json.Marshal(models.Session{User: *user})
	if err != nil {
		return nil, false, err
	}
	if err := m.store.Medium().Set(ctx, store.KeySession, string(raw)); err != nil {
		return nil, false, err
	}

	m.logger.Info("Session opened", "user_id", user.ID, "role", user.Role)
	return user, true, nil
}

// Logout deletes the session snapshot unconditionally.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.store.Medium().Delete(ctx, store.KeySession); err != nil {
		return err
	}
	m.logger.Info("Session closed")
	return nil
}

// Current reads the persisted snapshot. Absent or malformed reads as "no
// session".
func (m *Manager) Current(ctx context.Context) (*models.User, bool) {
	raw, ok, err := m.store.Medium().Get(ctx, store.KeySession)
	if err != nil || !ok {
		return nil, false
	}
	var sess models.Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		m.logger.Warn("Session snapshot is corrupt, treating as signed out", "error", err)
		return nil, false
	}
	return &sess.User, true
}

// SyncProfile overwrites the snapshot when the edited profile belongs to the
// active session. Callers must sequence this after the user repository write;
// the two writes are not transactional, so repository first keeps the
// inconsistency window as small as the store allows.
func (m *Manager) SyncProfile(ctx context.Context, updated models.User) error {
	current, ok := m.Current(ctx)
	if !ok || current.ID != updated.ID {
		return nil
	}
	raw, err := json.Marshal(models.Session{User: updated})
	if err != nil {
		return err
	}
	return m.store.Medium().Set(ctx, store.KeySession, string(raw))
}

// Theme returns the persisted theme mode, defaulting to light. The preference
// is independent of the session lifecycle and survives logout.
func (m *Manager) Theme(ctx context.Context) models.ThemeMode {
	raw, ok, err := m.store.Medium().Get(ctx, store.KeyTheme)
	if err != nil || !ok {
		return models.ThemeLight
	}
	if models.ThemeMode(raw) == models.ThemeDark {
		return models.ThemeDark
	}
	return models.ThemeLight
}

func (m *Manager) SetTheme(ctx context.Context, mode models.ThemeMode) error {
	return m.store.Medium().Set(ctx, store.KeyTheme, string(mode))
}
