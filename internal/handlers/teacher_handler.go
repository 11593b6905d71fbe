package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/raja-bazar/makhtab-admin-service/internal/services"
	"github.com/raja-bazar/makhtab-admin-service/internal/utils"
)

type TeacherHandler struct {
	BaseHandler
	service services.TeacherService
}

func NewTeacherHandler(service services.TeacherService, logger utils.Logger) *TeacherHandler {
	return &TeacherHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

func (h *TeacherHandler) ListTeachers(c *gin.Context) {
	h.LogRequest(c, "Listing teachers")

	teachers, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, teachers)
}

func (h *TeacherHandler) GetTeacher(c *gin.Context) {
	teacher, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, teacher)
}

func (h *TeacherHandler) CreateTeacher(c *gin.Context) {
	h.LogRequest(c, "Creating teacher")

	var req services.CreateTeacherRequest
	if !h.bindJSON(c, &req) {
		return
	}

	teacher, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, teacher)
}

func (h *TeacherHandler) UpdateTeacher(c *gin.Context) {
	h.LogRequest(c, "Updating teacher")

	var req services.UpdateTeacherRequest
	if !h.bindJSON(c, &req) {
		return
	}

	teacher, err := h.service.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, teacher)
}

func (h *TeacherHandler) DeleteTeacher(c *gin.Context) {
	h.LogRequest(c, "Deleting teacher")

	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ToggleTeacher flips the teacher's enabled flag, which gates their login.
func (h *TeacherHandler) ToggleTeacher(c *gin.Context) {
	h.LogRequest(c, "Toggling teacher")

	teacher, err := h.service.Toggle(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, teacher)
}

func (h *TeacherHandler) GetTeacherOverview(c *gin.Context) {
	h.LogRequest(c, "Getting teacher overview")

	overview, err := h.service.Overview(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}

// GetMyOverview resolves the overview for the logged-in teacher.
func (h *TeacherHandler) GetMyOverview(c *gin.Context) {
	overview, ok := h.myOverview(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, overview)
}

// GetMyStudents returns the students assigned to the logged-in teacher.
func (h *TeacherHandler) GetMyStudents(c *gin.Context) {
	overview, ok := h.myOverview(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, overview.Students)
}

// GetMyAttendance returns the sittings taken by the logged-in teacher.
func (h *TeacherHandler) GetMyAttendance(c *gin.Context) {
	overview, ok := h.myOverview(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, overview.Attendance)
}

func (h *TeacherHandler) myOverview(c *gin.Context) (*services.TeacherOverview, bool) {
	session := SessionFromContext(c)
	if session == nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "Not authenticated"})
		return nil, false
	}

	overview, err := h.service.Overview(c.Request.Context(), session.UserID)
	if err != nil {
		h.handleServiceError(c, err)
		return nil, false
	}
	return overview, true
}
