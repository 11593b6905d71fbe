package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/raja-bazar/makhtab-admin-service/internal/models"
	"github.com/raja-bazar/makhtab-admin-service/internal/services"
	"github.com/raja-bazar/makhtab-admin-service/internal/utils"
)

type HandlerManager struct {
	authHandler      *AuthHandler
	studentHandler   *StudentHandler
	teacherHandler   *TeacherHandler
	noticeHandler    *NoticeHandler
	paymentHandler   *PaymentHandler
	dashboardHandler *DashboardHandler
	exportHandler    *ExportHandler
	authMiddleware   *SessionAuthMiddleware
}

func NewHandlerManager(serviceManager services.ServiceManager, logger utils.Logger) *HandlerManager {
	return &HandlerManager{
		authHandler:      NewAuthHandler(serviceManager.Auth(), serviceManager.OTP(), logger),
		studentHandler:   NewStudentHandler(serviceManager.Student(), logger),
		teacherHandler:   NewTeacherHandler(serviceManager.Teacher(), logger),
		noticeHandler:    NewNoticeHandler(serviceManager.Notice(), logger),
		paymentHandler:   NewPaymentHandler(serviceManager.Payment(), serviceManager.Session(), logger),
		dashboardHandler: NewDashboardHandler(serviceManager.Dashboard(), logger),
		exportHandler:    NewExportHandler(serviceManager.Export(), logger),
		authMiddleware:   NewSessionAuthMiddleware(serviceManager.Session(), logger),
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	{
		auth.POST("/otp/send", hm.authHandler.SendOTP)
		auth.POST("/otp/verify", hm.authHandler.VerifyOTP)
		auth.POST("/admin/login", hm.authHandler.AdminLogin)
		auth.POST("/teacher/login", hm.authHandler.TeacherLogin)
		auth.POST("/demo/login", hm.authHandler.DemoLogin)
	}
	v1.GET("/notices", hm.noticeHandler.ListNotices)
	v1.POST("/payments", hm.paymentHandler.SubmitPayment)

	// Session routes - any authenticated user
	session := v1.Group("/auth")
	session.Use(hm.authMiddleware.AuthMiddleware())
	{
		session.GET("/session", hm.authHandler.Me)
		session.POST("/logout", hm.authHandler.Logout)
	}

	// Admin routes
	admin := v1.Group("")
	admin.Use(hm.authMiddleware.AuthMiddleware(), hm.authMiddleware.RequireRoleMiddleware(models.RoleAdmin))
	{
		students := admin.Group("/students")
		{
			students.GET("", hm.studentHandler.ListStudents)
			students.POST("", hm.studentHandler.CreateStudent)
			students.GET("/:id", hm.studentHandler.GetStudent)
			students.PUT("/:id", hm.studentHandler.UpdateStudent)
			students.DELETE("/:id", hm.studentHandler.DeleteStudent)
			students.GET("/:id/overview", hm.studentHandler.GetStudentOverview)
		}

		teachers := admin.Group("/teachers")
		{
			teachers.GET("", hm.teacherHandler.ListTeachers)
			teachers.POST("", hm.teacherHandler.CreateTeacher)
			teachers.GET("/:id", hm.teacherHandler.GetTeacher)
			teachers.PUT("/:id", hm.teacherHandler.UpdateTeacher)
			teachers.DELETE("/:id", hm.teacherHandler.DeleteTeacher)
			teachers.PUT("/:id/toggle", hm.teacherHandler.ToggleTeacher)
			teachers.GET("/:id/overview", hm.teacherHandler.GetTeacherOverview)
		}

		admin.POST("/notices", hm.noticeHandler.CreateNotice)
		admin.DELETE("/notices/:id", hm.noticeHandler.DeleteNotice)

		admin.GET("/payments", hm.paymentHandler.ListPayments)
		admin.PUT("/payments/:id/verify", hm.paymentHandler.VerifyPayment)

		admin.GET("/dashboard/stats", hm.dashboardHandler.GetDashboardStats)

		admin.GET("/export/students", hm.exportHandler.ExportStudents)
		admin.GET("/export/payments", hm.exportHandler.ExportPayments)

		admin.GET("/admin/otp-demo-mode", hm.authHandler.GetDemoMode)
		admin.POST("/admin/otp-demo-mode/toggle", hm.authHandler.ToggleDemoMode)
	}

	// Teacher routes
	teacherMe := v1.Group("/teachers/me")
	teacherMe.Use(hm.authMiddleware.AuthMiddleware(), hm.authMiddleware.RequireRoleMiddleware(models.RoleTeacher))
	{
		teacherMe.GET("", hm.teacherHandler.GetMyOverview)
		teacherMe.GET("/students", hm.teacherHandler.GetMyStudents)
		teacherMe.GET("/attendance", hm.teacherHandler.GetMyAttendance)
	}

	// Student routes
	studentMe := v1.Group("/students/me")
	studentMe.Use(hm.authMiddleware.AuthMiddleware(), hm.authMiddleware.RequireRoleMiddleware(models.RoleStudent))
	{
		studentMe.GET("", hm.studentHandler.GetMe)
		studentMe.GET("/overview", hm.studentHandler.GetMyOverview)
		studentMe.GET("/tests", hm.studentHandler.GetMyTests)
		studentMe.GET("/attendance", hm.studentHandler.GetMyAttendance)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "makhtab-admin-service",
		})
	})
}
