package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/authz"
	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/models"
	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/session"
	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/utils"
)

type AuthHandler struct {
	BaseHandler
	sessions  *session.Manager
	validator *utils.Validator
}

func NewAuthHandler(sessions *session.Manager, validator *utils.Validator, logger utils.Logger) *AuthHandler {
	return &AuthHandler{
		BaseHandler: NewBaseHandler(logger),
		sessions:    sessions,
		validator:   validator,
	}
}

type LoginRequest struct {
	Email string          `json:"email" validate:"required,email"`
	Role  models.UserRole `json:"role" validate:"required,user_role"`
}

type SessionResponse struct {
	User  models.User      `json:"user"`
	Pages []authz.PageID   `json:"pages"`
	Theme models.ThemeMode `json:"theme"`
}

// Login signs a user in by (email, role) lookup and opens a session.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}
	if verrs := h.validator.Struct(&req); verrs != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Validation failed",
			Details: verrs,
		})
		return
	}

	user, ok, err := h.sessions.Login(c.Request.Context(), req.Email, req.Role)
	if err != nil {
		h.RespondWithError(c, http.StatusInternalServerError, "Login failed", err)
		return
	}
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Message: "No user matches that email and role",
		})
		return
	}

	c.JSON(http.StatusOK, SessionResponse{
		User:  *user,
		Pages: authz.PagesFor(user.Role),
		Theme: h.sessions.Theme(c.Request.Context()),
	})
}

// Logout destroys the session unconditionally.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.sessions.Logout(c.Request.Context()); err != nil {
		h.RespondWithError(c, http.StatusInternalServerError, "Logout failed", err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Signed out"})
}

// Session returns the active session snapshot plus the role's page menu.
func (h *AuthHandler) Session(c *gin.Context) {
	user, ok := h.sessions.Current(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "Not signed in"})
		return
	}
	c.JSON(http.StatusOK, SessionResponse{
		User:  *user,
		Pages: authz.PagesFor(user.Role),
		Theme: h.sessions.Theme(c.Request.Context()),
	})
}

type ThemeRequest struct {
	Mode models.ThemeMode `json:"mode" validate:"required,theme_mode"`
}

// GetTheme reads the theme preference; defaults to light when unset.
func (h *AuthHandler) GetTheme(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"mode": h.sessions.Theme(c.Request.Context())})
}

// SetTheme stores the theme preference, independent of session lifecycle.
func (h *AuthHandler) SetTheme(c *gin.Context) {
	var req ThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}
	if verrs := h.validator.Struct(&req); verrs != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Validation failed",
			Details: verrs,
		})
		return
	}
	if err := h.sessions.SetTheme(c.Request.Context(), req.Mode); err != nil {
		h.RespondWithError(c, http.StatusInternalServerError, "Failed to save theme", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mode": req.Mode})
}
