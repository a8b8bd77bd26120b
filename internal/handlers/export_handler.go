package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/services"
	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/utils"
)

type ExportHandler struct {
	BaseHandler
	exportService services.ExportService
}

func NewExportHandler(exportService services.ExportService, logger utils.Logger) *ExportHandler {
	return &ExportHandler{
		BaseHandler:   NewBaseHandler(logger),
		exportService: exportService,
	}
}

// ExportCollection downloads a collection as CSV (default) or XLSX via the
// format query parameter.
func (h *ExportHandler) ExportCollection(c *gin.Context) {
	collection := ParseStringIDParam(c, "collection")
	if collection == "" {
		return
	}

	actor, _ := CurrentActor(c)
	ctx := c.Request.Context()

	switch c.DefaultQuery("format", "csv") {
	case "csv":
		data, filename, err := h.exportService.ExportCSV(ctx, collection, actor)
		if err != nil {
			h.handleServiceError(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
		c.Data(http.StatusOK, "text/csv", data)
	case "xlsx":
		data, filename, err := h.exportService.ExportExcel(ctx, collection, actor)
		if err != nil {
			h.handleServiceError(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Unsupported format",
			Details: "format must be csv or xlsx",
		})
	}
}
