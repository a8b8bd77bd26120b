package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/services"
	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/utils"
)

type AnnouncementHandler struct {
	BaseHandler
	announcementService services.AnnouncementService
	notificationService services.NotificationService
}

func NewAnnouncementHandler(
	announcementService services.AnnouncementService,
	notificationService services.NotificationService,
	logger utils.Logger,
) *AnnouncementHandler {
	return &AnnouncementHandler{
		BaseHandler:         NewBaseHandler(logger),
		announcementService: announcementService,
		notificationService: notificationService,
	}
}

// GetAnnouncement returns the current global announcement; 204 when unset.
func (h *AnnouncementHandler) GetAnnouncement(c *gin.Context) {
	msg, err := h.announcementService.Current(c.Request.Context())
	if errors.Is(err, services.ErrNoAnnouncement) {
		c.Status(http.StatusNoContent)
		return
	}
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

// Broadcast sets the global announcement visible to every session.
func (h *AnnouncementHandler) Broadcast(c *gin.Context) {
	var req services.BroadcastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	actor, _ := CurrentActor(c)
	if err := h.announcementService.Broadcast(c.Request.Context(), &req, actor); err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Announcement broadcast"})
}

// ClearAnnouncement empties the announcement slot.
func (h *AnnouncementHandler) ClearAnnouncement(c *gin.Context) {
	actor, _ := CurrentActor(c)
	if err := h.announcementService.Clear(c.Request.Context(), actor); err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Announcement cleared"})
}

// WatchAnnouncement streams announcement changes as server-sent events. The
// client reads the current value once via GetAnnouncement, then holds this
// stream open for updates; an empty data field means the slot was cleared.
func (h *AnnouncementHandler) WatchAnnouncement(c *gin.Context) {
	updates, err := h.announcementService.Watch(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		msg, ok := <-updates
		if !ok {
			return false
		}
		c.SSEvent("announcement", msg)
		return true
	})
}

// ListNotifications returns the in-app notification feed.
func (h *AnnouncementHandler) ListNotifications(c *gin.Context) {
	notifications, err := h.notificationService.List(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// ClearNotifications empties the notification feed.
func (h *AnnouncementHandler) ClearNotifications(c *gin.Context) {
	if err := h.notificationService.Clear(c.Request.Context()); err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Notifications cleared"})
}
