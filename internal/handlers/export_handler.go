package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/raja-bazar/makhtab-admin-service/internal/services"
	"github.com/raja-bazar/makhtab-admin-service/internal/utils"
)

const (
	contentTypeCSV  = "text/csv"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type ExportHandler struct {
	BaseHandler
	service services.ExportService
}

func NewExportHandler(service services.ExportService, logger utils.Logger) *ExportHandler {
	return &ExportHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// ExportStudents streams the student roster as CSV (default) or XLSX via
// ?format=xlsx.
func (h *ExportHandler) ExportStudents(c *gin.Context) {
	h.LogRequest(c, "Exporting students")
	h.export(c, "students", h.service.Students)
}

func (h *ExportHandler) ExportPayments(c *gin.Context) {
	h.LogRequest(c, "Exporting payments")
	h.export(c, "payments", h.service.Payments)
}

func (h *ExportHandler) export(c *gin.Context, name string, build func(context.Context) (*services.ExportTable, error)) {
	table, err := build(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	format := c.DefaultQuery("format", "csv")
	switch format {
	case "csv":
		data, err := h.service.EncodeCSV(table)
		if err != nil {
			h.handleServiceError(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="`+name+`.csv"`)
		c.Data(http.StatusOK, contentTypeCSV, data)
	case "xlsx":
		data, err := h.service.EncodeXLSX(table)
		if err != nil {
			h.handleServiceError(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="`+name+`.xlsx"`)
		c.Data(http.StatusOK, contentTypeXLSX, data)
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid format",
			Details: "format must be csv or xlsx",
		})
	}
}
