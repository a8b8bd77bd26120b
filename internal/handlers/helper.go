package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "github.com/arunkumarcpv007-tech/smart-classroom-app/internal/errors"
	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/services"
)

func ParseStringIDParam(c *gin.Context, param string) string {
	idStr := strings.TrimSpace(c.Param(param))
	if idStr == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid " + param,
			Details: "ID cannot be empty",
		})
		return ""
	}
	return idStr
}

// handleServiceError maps service errors onto HTTP responses.
func (h *BaseHandler) handleServiceError(c *gin.Context, err error) {
	var verrs apperrors.ValidationErrors
	var verr *apperrors.ValidationError
	var perr *services.PermissionError

	switch {
	case errors.As(err, &verrs):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Validation failed",
			Details: verrs,
		})
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Validation failed",
			Details: apperrors.ValidationErrors{*verr},
		})
	case errors.As(err, &perr), errors.Is(err, services.ErrForbidden):
		h.RespondWithError(c, http.StatusForbidden, "Insufficient permissions", err)
	case errors.Is(err, services.ErrNotFound),
		errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrAssignmentNotFound),
		errors.Is(err, services.ErrNoteNotFound),
		errors.Is(err, services.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Message: err.Error()})
	case errors.Is(err, services.ErrDuplicateEmail):
		c.JSON(http.StatusConflict, ErrorResponse{Message: err.Error()})
	case errors.Is(err, services.ErrChatBusy):
		c.JSON(http.StatusTooManyRequests, ErrorResponse{Message: err.Error()})
	case errors.Is(err, services.ErrChatUnavailable):
		h.RespondWithError(c, http.StatusBadGateway, "Assistant is unavailable", err)
	default:
		h.RespondWithError(c, http.StatusInternalServerError, "Internal server error", err)
	}
}
