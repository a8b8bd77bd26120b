package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/authz"
	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/session"
)

const contextKeyActor = "actor"

// RequireSession loads the active session snapshot and attaches it to the
// request context; requests without a session are rejected. This is the
// dashboard boundary of the view state machine.
func RequireSession(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := sessions.Current(c.Request.Context())
		if !authz.CanTransition(authz.ViewLogin, authz.ViewDashboard, ok) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
				Message: "Not signed in",
			})
			return
		}
		c.Set(contextKeyActor, *user)
		c.Next()
	}
}

// RequirePage rejects requests from roles whose menu does not include the
// page. The menu alone is advisory; this is the server-side check behind it.
func RequirePage(page authz.PageID) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := CurrentActor(c)
		if !ok || !authz.CanView(actor.Role, page) {
			c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{
				Message: "Page not available for this role",
			})
			return
		}
		c.Next()
	}
}
