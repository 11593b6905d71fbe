package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/raja-bazar/makhtab-admin-service/internal/services"
	"github.com/raja-bazar/makhtab-admin-service/internal/utils"
)

type StudentHandler struct {
	BaseHandler
	service services.StudentService
}

func NewStudentHandler(service services.StudentService, logger utils.Logger) *StudentHandler {
	return &StudentHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

func (h *StudentHandler) ListStudents(c *gin.Context) {
	h.LogRequest(c, "Listing students")

	students, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, students)
}

func (h *StudentHandler) GetStudent(c *gin.Context) {
	student, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, student)
}

func (h *StudentHandler) CreateStudent(c *gin.Context) {
	h.LogRequest(c, "Creating student")

	var req services.CreateStudentRequest
	if !h.bindJSON(c, &req) {
		return
	}

	student, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, student)
}

func (h *StudentHandler) UpdateStudent(c *gin.Context) {
	h.LogRequest(c, "Updating student")

	var req services.UpdateStudentRequest
	if !h.bindJSON(c, &req) {
		return
	}

	student, err := h.service.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, student)
}

func (h *StudentHandler) DeleteStudent(c *gin.Context) {
	h.LogRequest(c, "Deleting student")

	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetStudentOverview returns the student's dashboard view: tests for their
// class, attendance percentage and visible notices.
func (h *StudentHandler) GetStudentOverview(c *gin.Context) {
	h.LogRequest(c, "Getting student overview")

	overview, err := h.service.Overview(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}

// GetMyOverview resolves the overview for the logged-in student.
func (h *StudentHandler) GetMyOverview(c *gin.Context) {
	overview, ok := h.myOverview(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, overview)
}

// GetMe returns the logged-in student's record.
func (h *StudentHandler) GetMe(c *gin.Context) {
	overview, ok := h.myOverview(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, overview.Student)
}

// GetMyTests returns the tests for the logged-in student's class.
func (h *StudentHandler) GetMyTests(c *gin.Context) {
	overview, ok := h.myOverview(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, overview.Tests)
}

// GetMyAttendance returns the logged-in student's attendance records and
// presence rate.
func (h *StudentHandler) GetMyAttendance(c *gin.Context) {
	overview, ok := h.myOverview(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"attendance":           overview.Attendance,
		"attendancePercentage": overview.AttendancePercentage,
	})
}

func (h *StudentHandler) myOverview(c *gin.Context) (*services.StudentOverview, bool) {
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
