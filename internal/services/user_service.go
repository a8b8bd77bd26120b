package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/authz"
	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/cache"
	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/events"
	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/models"
	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/repositories"
	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/session"
	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/utils"
)

const (
	leaderboardCacheKey = "scms:cache:leaderboard"
	leaderboardCacheTTL = 30 * time.Second
)

type UserService interface {
	List(ctx context.Context, actor models.User) ([]models.User, error)
	Get(ctx context.Context, id string) (*models.User, error)
	Create(ctx context.Context, req *CreateUserRequest, actor models.User) (*models.User, error)
	Update(ctx context.Context, req *UpdateUserRequest, actor models.User) (*models.User, error)
	Delete(ctx context.Context, id string, actor models.User) error
	GiveXP(ctx context.Context, studentID string, amount int, actor models.User) error
	Leaderboard(ctx context.Context) ([]LeaderboardEntry, error)
}

// ===== REQUEST / RESPONSE STRUCTS =====

type CreateUserRequest struct {
	Name       string             `json:"name" validate:"required,max=100"`
	Email      string             `json:"email" validate:"required,email"`
	Role       models.UserRole    `json:"role" validate:"required,user_role"`
	Avatar     string             `json:"avatar"`
	ClassID    string             `json:"classId"`
	RollNo     string             `json:"rollNo"`
	ThemeColor models.AccentColor `json:"themeColor"`
}

type UpdateUserRequest struct {
	ID         string             `json:"id" validate:"required"`
	Name       string             `json:"name" validate:"required,max=100"`
	Email      string             `json:"email" validate:"required,email"`
	Avatar     string             `json:"avatar"`
	ClassID    string             `json:"classId"`
	RollNo     string             `json:"rollNo"`
	ThemeColor models.AccentColor `json:"themeColor"`
}

type LeaderboardEntry struct {
	Rank   int    `json:"rank"`
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
	RollNo string `json:"rollNo,omitempty"`
	XP     int    `json:"xp"`
}

type userService struct {
	repo      repositories.Repository
	sessions  *session.Manager
	cache     cache.CacheService
	publisher events.EventPublisher
	logger    *slog.Logger
	validator *utils.Validator
}

func NewUserService(
	repo repositories.Repository,
	sessions *session.Manager,
	cacheSvc cache.CacheService,
	publisher events.EventPublisher,
	logger *slog.Logger,
	validator *utils.Validator,
) UserService {
	return &userService{
		repo:      repo,
		sessions:  sessions,
		cache:     cacheSvc,
		publisher: publisher,
		logger:    logger,
		validator: validator,
	}
}

func (s *userService) List(ctx context.Context, actor models.User) ([]models.User, error) {
	// Teachers see the student directory, admin sees everyone.
	if actor.Role == models.RoleTeacher {
		return s.repo.Users().ListByRole(ctx, models.RoleStudent), nil
	}
	if actor.Role == models.RoleAdmin {
		return s.repo.Users().List(ctx), nil
	}
	return nil, NewPermissionError(actor.ID, "users", "list", "students cannot browse the directory")
}

func (s *userService) Get(ctx context.Context, id string) (*models.User, error) {
	user, ok := s.repo.Users().GetByID(ctx, id)
	if !ok {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *userService) Create(ctx context.Context, req *CreateUserRequest, actor models.User) (*models.User, error) {
	if !authz.CanMutate(actor.Role, authz.ActionManageUsers) {
		return nil, NewPermissionError(actor.ID, "users", "create", "requires admin")
	}
	if verrs := s.validator.Struct(req); verrs != nil {
		return nil, verrs
	}

	// Login is first-match over (email, role); rejecting duplicates here keeps
	// it unambiguous.
	if _, exists := s.repo.Users().Login(ctx, req.Email, req.Role); exists {
		return nil, ErrDuplicateEmail
	}

	user, err := s.repo.Users().Add(ctx, models.User{
		Name:       req.Name,
		Email:      req.Email,
		Role:       req.Role,
		Avatar:     req.Avatar,
		ClassID:    req.ClassID,
		RollNo:     req.RollNo,
		ThemeColor: req.ThemeColor,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("User created", "user_id", user.ID, "role", user.Role)
	s.invalidateLeaderboard(ctx)
	return &user, nil
}

func (s *userService) Update(ctx context.Context, req *UpdateUserRequest, actor models.User) (*models.User, error) {
	if actor.ID != req.ID && !authz.CanMutate(actor.Role, authz.ActionManageUsers) {
		return nil, NewPermissionError(actor.ID, "users", "update", "not own profile")
	}
	if verrs := s.validator.Struct(req); verrs != nil {
		return nil, verrs
	}

	existing, ok := s.repo.Users().GetByID(ctx, req.ID)
	if !ok {
		return nil, ErrUserNotFound
	}

	// An email change must not collide with another (email, role) pair, or
	// first-match login turns ambiguous again.
	if req.Email != existing.Email {
		if other, exists := s.repo.Users().Login(ctx, req.Email, existing.Role); exists && other.ID != req.ID {
			return nil, ErrDuplicateEmail
		}
	}

	updated := *existing
	updated.Name = req.Name
	updated.Email = req.Email
	updated.Avatar = req.Avatar
	updated.ClassID = req.ClassID
	updated.RollNo = req.RollNo
	updated.ThemeColor = req.ThemeColor

	found, err := s.repo.Users().Update(ctx, updated)
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	if !found {
		return nil, ErrUserNotFound
	}

	// Repository write first, session snapshot second: the snapshot must
	// reflect the edit without re-login when the actor edited themselves.
	if err := s.sessions.SyncProfile(ctx, updated); err != nil {
		s.logger.Warn("Session snapshot not synced after profile edit", "user_id", updated.ID, "error", err)
	}

	s.invalidateLeaderboard(ctx)
	return &updated, nil
}

func (s *userService) Delete(ctx context.Context, id string, actor models.User) error {
	if !authz.CanMutate(actor.Role, authz.ActionManageUsers) {
		return NewPermissionError(actor.ID, "users", "delete", "requires admin")
	}
	found, err := s.repo.Users().Remove(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if !found {
		return ErrUserNotFound
	}
	s.logger.Info("User deleted", "user_id", id, "deleted_by", actor.ID)
	s.invalidateLeaderboard(ctx)
	return nil
}

func (s *userService) GiveXP(ctx context.Context, studentID string, amount int, actor models.User) error {
	if !authz.CanMutate(actor.Role, authz.ActionAwardXP) {
		return NewPermissionError(actor.ID, "users", "award_xp", "requires teacher or admin")
	}
	if amount <= 0 {
		return NewValidationError("amount", "must be greater than zero", amount)
	}

	found, err := s.repo.Users().GiveXP(ctx, studentID, amount)
	if err != nil {
		return fmt.Errorf("failed to award XP: %w", err)
	}
	if !found {
		return ErrUserNotFound
	}

	event := events.NewEvent(events.EventXPAwarded, events.XPAwardedEvent{
		StudentID: studentID,
		Amount:    amount,
		AwardedBy: actor.ID,
	})
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("XP event not published", "student_id", studentID, "error", err)
	}

	s.invalidateLeaderboard(ctx)
	return nil
}

// Leaderboard ranks students by XP, highest first, ties broken by name. The
// result is cached briefly; every directory write invalidates it.
func (s *userService) Leaderboard(ctx context.Context) ([]LeaderboardEntry, error) {
	var cached []LeaderboardEntry
	if err := s.cache.Get(ctx, leaderboardCacheKey, &cached); err == nil {
		return cached, nil
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.Warn("Leaderboard cache read failed", "error", err)
	}

	students := s.repo.Users().ListByRole(ctx, models.RoleStudent)
	sort.Slice(students, func(i, j int) bool {
		if students[i].XP != students[j].XP {
			return students[i].XP > students[j].XP
		}
		return students[i].Name < students[j].Name
	})

	entries := make([]LeaderboardEntry, 0, len(students))
	for i, u := range students {
		entries = append(entries, LeaderboardEntry{
			Rank:   i + 1,
			UserID: u.ID,
			Name:   u.Name,
			Avatar: u.Avatar,
			RollNo: u.RollNo,
			XP:     u.XP,
		})
	}

	if err := s.cache.Set(ctx, leaderboardCacheKey, entries, leaderboardCacheTTL); err != nil {
		s.logger.Warn("Leaderboard cache write failed", "error", err)
	}
	return entries, nil
}

func (s *userService) invalidateLeaderboard(ctx context.Context) {
	if err := s.cache.Delete(ctx, leaderboardCacheKey); err != nil {
		s.logger.Warn("Leaderboard cache invalidation failed", "error", err)
	}
}
