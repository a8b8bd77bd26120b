package services

import (
	"errors"
	"fmt"

	apperrors "github.com/arunkumarcpv007-tech/smart-classroom-app/internal/errors"
)

// ===== COMMON SERVICE ERRORS =====

var (
	// Generic errors
	ErrNotFound         = errors.New("resource not found")
	ErrForbidden        = errors.New("forbidden - insufficient permissions")
	ErrValidationFailed = errors.New("validation failed")

	// User/session errors
	ErrUserNotFound   = errors.New("user not found")
	ErrLoginFailed    = errors.New("no user matches that email and role")
	ErrDuplicateEmail = errors.New("a user with that email and role already exists")
	ErrNoSession      = errors.New("no active session")

	// Assignment errors
	ErrAssignmentNotFound = errors.New("assignment not found")

	// Note/task errors
	ErrNoteNotFound = errors.New("note not found")
	ErrTaskNotFound = errors.New("task not found")

	// Announcement errors
	ErrNoAnnouncement = errors.New("no announcement is set")

	// Assistant errors
	ErrChatBusy        = errors.New("a chat request is already in flight")
	ErrChatUnavailable = errors.New("assistant request failed")
)

// Use shared validation errors from the errors package
type ValidationError = apperrors.ValidationError
type ValidationErrors = apperrors.ValidationErrors

func NewValidationError(field, message string, value interface{}) *ValidationError {
	return apperrors.NewValidationError(field, message, value)
}

// PermissionError carries who tried what on which resource.
type PermissionError struct {
	UserID   string `json:"user_id"`
	Resource string `json:"resource"`
	Action   string `json:"action"`
	Reason   string `json:"reason"`
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("permission denied: user %s cannot %s %s (%s)", e.UserID, e.Action, e.Resource, e.Reason)
}

func (e *PermissionError) Unwrap() error {
	return ErrForbidden
}

func NewPermissionError(userID, resource, action, reason string) *PermissionError {
	return &PermissionError{
		UserID:   userID,
		Resource: resource,
		Action:   action,
		Reason:   reason,
	}
}
