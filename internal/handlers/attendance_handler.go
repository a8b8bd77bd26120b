package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/services"
	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/utils"
)

type AttendanceHandler struct {
	BaseHandler
	attendanceService services.AttendanceService
}

func NewAttendanceHandler(attendanceService services.AttendanceService, logger utils.Logger) *AttendanceHandler {
	return &AttendanceHandler{
		BaseHandler:       NewBaseHandler(logger),
		attendanceService: attendanceService,
	}
}

// ListAttendance returns records scoped to the caller, optionally filtered by
// date or student query params.
func (h *AttendanceHandler) ListAttendance(c *gin.Context) {
	ctx := c.Request.Context()
	actor, _ := CurrentActor(c)

	if date := c.Query("date"); date != "" {
		records, err := h.attendanceService.ListByDate(ctx, date, actor)
		if err != nil {
			h.handleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, records)
		return
	}
	if studentID := c.Query("student_id"); studentID != "" {
		records, err := h.attendanceService.ListForStudent(ctx, studentID, actor)
		if err != nil {
			h.handleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, records)
		return
	}

	records, err := h.attendanceService.List(ctx, actor)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// SaveAttendance writes one record, replacing any prior record for the same
// date and student.
func (h *AttendanceHandler) SaveAttendance(c *gin.Context) {
	var req services.SaveAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	actor, _ := CurrentActor(c)
	record, err := h.attendanceService.Save(c.Request.Context(), &req, actor)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// MarkAllPresent bulk-marks the given students present for a date.
func (h *AttendanceHandler) MarkAllPresent(c *gin.Context) {
	var req services.MarkAllPresentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	actor, _ := CurrentActor(c)
	records, err := h.attendanceService.MarkAllPresent(c.Request.Context(), &req, actor)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}
