package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/services"
	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/utils"
)

type NoteHandler struct {
	BaseHandler
	noteService services.NoteService
}

func NewNoteHandler(noteService services.NoteService, logger utils.Logger) *NoteHandler {
	return &NoteHandler{
		BaseHandler: NewBaseHandler(logger),
		noteService: noteService,
	}
}

func (h *NoteHandler) ListNotes(c *gin.Context) {
	ctx := c.Request.Context()

	if classID := c.Query("class_id"); classID != "" {
		notes, err := h.noteService.ListByClass(ctx, classID)
		if err != nil {
			h.handleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, notes)
		return
	}

	notes, err := h.noteService.List(ctx)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, notes)
}

func (h *NoteHandler) CreateNote(c *gin.Context) {
	var req services.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	actor, _ := CurrentActor(c)
	note, err := h.noteService.Create(c.Request.Context(), &req, actor)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, note)
}

func (h *NoteHandler) DeleteNote(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	actor, _ := CurrentActor(c)
	if err := h.noteService.Delete(c.Request.Context(), id, actor); err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Note deleted"})
}
