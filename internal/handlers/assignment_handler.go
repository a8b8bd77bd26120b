package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/services"
	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/utils"
)

type AssignmentHandler struct {
	BaseHandler
	assignmentService services.AssignmentService
}

func NewAssignmentHandler(assignmentService services.AssignmentService, logger utils.Logger) *AssignmentHandler {
	return &AssignmentHandler{
		BaseHandler:       NewBaseHandler(logger),
		assignmentService: assignmentService,
	}
}

func (h *AssignmentHandler) ListAssignments(c *gin.Context) {
	ctx := c.Request.Context()

	if classID := c.Query("class_id"); classID != "" {
		assignments, err := h.assignmentService.ListByClass(ctx, classID)
		if err != nil {
			h.handleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, assignments)
		return
	}

	assignments, err := h.assignmentService.List(ctx)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, assignments)
}

func (h *AssignmentHandler) CreateAssignment(c *gin.Context) {
	var req services.CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	actor, _ := CurrentActor(c)
	assignment, err := h.assignmentService.Create(c.Request.Context(), &req, actor)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, assignment)
}

func (h *AssignmentHandler) UpdateAssignment(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	var req services.UpdateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	actor, _ := CurrentActor(c)
	if err := h.assignmentService.Update(c.Request.Context(), id, &req, actor); err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Assignment updated"})
}

func (h *AssignmentHandler) DeleteAssignment(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	actor, _ := CurrentActor(c)
	if err := h.assignmentService.Delete(c.Request.Context(), id, actor); err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Assignment deleted"})
}
