package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/broadcast"
	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/cache"
	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/config"
	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/events"
	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/models"
	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/repositories"
	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/services"
	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/session"
	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/store"
	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/utils"
)

func newTestRouter(t *testing.T) (*gin.Engine, *session.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	slogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	logger := utils.NewSlogLogger(slogger)

	s := store.New(store.NewMemoryMedium(), slogger)
	require.NoError(t, s.Initialize(context.Background()))

	repo := repositories.New(s)
	sessions := session.NewManager(s, repo.Users(), slogger)
	publisher := events.NewMockEventPublisher(slogger)
	announcer := broadcast.NewAnnouncer(s, publisher, slogger)
	validator := utils.NewValidator()

	cfg := &config.Config{}
	serviceManager := services.NewServiceManager(cfg, repo, sessions, announcer, cache.NewMemoryCache(), publisher, slogger, validator)

	router := gin.New()
	NewHandlerManager(serviceManager, sessions, validator, logger).SetupRoutes(router)
	return router, sessions
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	router, _ := newTestRouter(t)
	w := doJSON(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoginFlow(t *testing.T) {
	router, _ := newTestRouter(t)

	t.Run("unknown pair is rejected", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", LoginRequest{
			Email: "student@scms.com", Role: models.RoleAdmin,
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("matching pair opens a session with the role menu", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", LoginRequest{
			Email: "teacher@scms.com", Role: models.RoleTeacher,
		})
		require.Equal(t, http.StatusOK, w.Code)

		var resp SessionResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Sarah Wilson", resp.User.Name)
		assert.Equal(t, models.ThemeLight, resp.Theme)
		assert.NotEmpty(t, resp.Pages)
	})

	t.Run("session endpoint reflects the login", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/v1/auth/session", nil)
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("logout closes the session", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/auth/logout", nil)
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, router, http.MethodGet, "/api/v1/auth/session", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, path := range []string{"/api/v1/users", "/api/v1/tasks", "/api/v1/notifications"} {
		w := doJSON(t, router, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestRoleGatedRoutes(t *testing.T) {
	router, _ := newTestRouter(t)

	login := func(t *testing.T, email string, role models.UserRole) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", LoginRequest{Email: email, Role: role})
		require.Equal(t, http.StatusOK, w.Code)
	}

	t.Run("teacher has no leaderboard page", func(t *testing.T) {
		login(t, "teacher@scms.com", models.RoleTeacher)
		w := doJSON(t, router, http.MethodGet, "/api/v1/leaderboard", nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("student reads the leaderboard", func(t *testing.T) {
		login(t, "student@scms.com", models.RoleStudent)
		w := doJSON(t, router, http.MethodGet, "/api/v1/leaderboard", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("student cannot broadcast", func(t *testing.T) {
		login(t, "student@scms.com", models.RoleStudent)
		w := doJSON(t, router, http.MethodPost, "/api/v1/announcement", gin.H{"message": "hi"})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin broadcasts and everyone reads it", func(t *testing.T) {
		login(t, "admin@scms.com", models.RoleAdmin)
		w := doJSON(t, router, http.MethodPost, "/api/v1/announcement", gin.H{"message": "Exam postponed"})
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, router, http.MethodGet, "/api/v1/announcement", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Exam postponed")
	})

	t.Run("announcement reads 204 when cleared", func(t *testing.T) {
		login(t, "admin@scms.com", models.RoleAdmin)
		w := doJSON(t, router, http.MethodDelete, "/api/v1/announcement", nil)
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, router, http.MethodGet, "/api/v1/announcement", nil)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestAttendanceFiltersScopeStudents(t *testing.T) {
	router, _ := newTestRouter(t)

	login := func(t *testing.T, email string, role models.UserRole) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", LoginRequest{Email: email, Role: role})
		require.Equal(t, http.StatusOK, w.Code)
	}

	login(t, "teacher@scms.com", models.RoleTeacher)
	for _, studentID := range []string{"u3", "u4"} {
		w := doJSON(t, router, http.MethodPost, "/api/v1/attendance", gin.H{
			"date": "2025-03-01", "class_id": "c1", "student_id": studentID, "status": models.AttendancePresent,
		})
		require.Equal(t, http.StatusOK, w.Code)
	}

	t.Run("teacher filters by date and student", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/v1/attendance?date=2025-03-01", nil)
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, router, http.MethodGet, "/api/v1/attendance?student_id=u4", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("student cannot read another student's records", func(t *testing.T) {
		login(t, "student@scms.com", models.RoleStudent)
		w := doJSON(t, router, http.MethodGet, "/api/v1/attendance?student_id=u4", nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("student reads their own records", func(t *testing.T) {
		login(t, "student@scms.com", models.RoleStudent)
		w := doJSON(t, router, http.MethodGet, "/api/v1/attendance?student_id=u3", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "u3")
		assert.NotContains(t, w.Body.String(), "u4")
	})

	t.Run("date view is staff only", func(t *testing.T) {
		login(t, "student@scms.com", models.RoleStudent)
		w := doJSON(t, router, http.MethodGet, "/api/v1/attendance?date=2025-03-01", nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestExportEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", LoginRequest{
		Email: "admin@scms.com", Role: models.RoleAdmin,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/export/users?format=csv", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "users.csv")
	assert.Contains(t, w.Body.String(), "admin@scms.com")
}
