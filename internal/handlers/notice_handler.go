package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/raja-bazar/makhtab-admin-service/internal/models"
	"github.com/raja-bazar/makhtab-admin-service/internal/services"
	"github.com/raja-bazar/makhtab-admin-service/internal/utils"
)

type NoticeHandler struct {
	BaseHandler
	service services.NoticeService
}

func NewNoticeHandler(service services.NoticeService, logger utils.Logger) *NoticeHandler {
	return &NoticeHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// ListNotices returns active notices, pinned first. Filters: ?type=general
// or class-specific, ?class= restricts class-specific notices to one class.
func (h *NoticeHandler) ListNotices(c *gin.Context) {
	filter := services.NoticeFilter{Class: c.Query("class")}
	if t := c.Query("type"); t != "" {
		noticeType := models.NoticeType(t)
		filter.Type = &noticeType
	}

	notices, err := h.service.ListActive(c.Request.Context(), filter)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, notices)
}

func (h *NoticeHandler) CreateNotice(c *gin.Context) {
	h.LogRequest(c, "Creating notice")

	var req services.CreateNoticeRequest
	if !h.bindJSON(c, &req) {
		return
	}

	createdBy := "admin"
	if session := SessionFromContext(c); session != nil {
		createdBy = session.UserID
	}

	notice, err := h.service.Create(c.Request.Context(), &req, createdBy)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, notice)
}

func (h *NoticeHandler) DeleteNotice(c *gin.Context) {
	h.LogRequest(c, "Deleting notice")

	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
