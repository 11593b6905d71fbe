package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/raja-bazar/makhtab-admin-service/internal/services"
	"github.com/raja-bazar/makhtab-admin-service/internal/utils"
)

type AuthHandler struct {
	BaseHandler
	auth services.AuthService
	otp  services.OTPService
}

func NewAuthHandler(auth services.AuthService, otp services.OTPService, logger utils.Logger) *AuthHandler {
	return &AuthHandler{
		BaseHandler: NewBaseHandler(logger),
		auth:        auth,
		otp:         otp,
	}
}

// SendOTP issues a one-time code for a phone/role pair.
func (h *AuthHandler) SendOTP(c *gin.Context) {
	h.LogRequest(c, "Sending OTP")

	var req services.SendOTPRequest
	if !h.bindJSON(c, &req) {
		return
	}

	resp, err := h.auth.SendOTP(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// VerifyOTP checks a code and creates the session on success.
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	h.LogRequest(c, "Verifying OTP")

	var req services.VerifyOTPRequest
	if !h.bindJSON(c, &req) {
		return
	}

	session, err := h.auth.VerifyOTPLogin(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

func (h *AuthHandler) AdminLogin(c *gin.Context) {
	h.LogRequest(c, "Admin login")

	var req services.AdminLoginRequest
	if !h.bindJSON(c, &req) {
		return
	}

	session, err := h.auth.AdminLogin(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

func (h *AuthHandler) TeacherLogin(c *gin.Context) {
	h.LogRequest(c, "Teacher login")

	var req services.TeacherLoginRequest
	if !h.bindJSON(c, &req) {
		return
	}

	session, err := h.auth.TeacherLogin(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

// DemoLogin creates a throwaway student session without any credential.
func (h *AuthHandler) DemoLogin(c *gin.Context) {
	h.LogRequest(c, "Demo login")

	var req services.DemoLoginRequest
	if !h.bindJSON(c, &req) {
		return
	}

	session, err := h.auth.DemoLogin(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.LogRequest(c, "Logout")

	if err := h.auth.Logout(c.Request.Context()); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}

// Me returns the current session.
func (h *AuthHandler) Me(c *gin.Context) {
	session := SessionFromContext(c)
	if session == nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "Not authenticated"})
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *AuthHandler) GetDemoMode(c *gin.Context) {
	enabled, err := h.otp.DemoModeEnabled(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"otpDemoMode": enabled})
}

func (h *AuthHandler) ToggleDemoMode(c *gin.Context) {
	h.LogRequest(c, "Toggling OTP demo mode")

	enabled, err := h.otp.ToggleDemoMode(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"otpDemoMode": enabled})
}
