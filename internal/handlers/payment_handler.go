package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/raja-bazar/makhtab-admin-service/internal/models"
	"github.com/raja-bazar/makhtab-admin-service/internal/services"
	"github.com/raja-bazar/makhtab-admin-service/internal/utils"
)

type PaymentHandler struct {
	BaseHandler
	service  services.PaymentService
	sessions services.SessionService
}

func NewPaymentHandler(service services.PaymentService, sessions services.SessionService, logger utils.Logger) *PaymentHandler {
	return &PaymentHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
		sessions:    sessions,
	}
}

// SubmitPayment accepts a fee submission. The route is public: a logged-in
// payer is attributed to their session, anyone else submits as a guest.
func (h *PaymentHandler) SubmitPayment(c *gin.Context) {
	h.LogRequest(c, "Submitting payment")

	var req services.CreatePaymentRequest
	if !h.bindJSON(c, &req) {
		return
	}

	var payer *models.Session
	session, err := h.sessions.Get(c.Request.Context())
	switch {
	case err == nil:
		payer = session
	case errors.Is(err, services.ErrNotAuthenticated):
		// guest submission
	default:
		h.handleServiceError(c, err)
		return
	}

	payment, err := h.service.Submit(c.Request.Context(), &req, payer)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, payment)
}

func (h *PaymentHandler) ListPayments(c *gin.Context) {
	h.LogRequest(c, "Listing payments")

	payments, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, payments)
}

// VerifyPayment marks a pending payment verified, stamped with the admin
// performing the action.
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	h.LogRequest(c, "Verifying payment")

	verifiedBy := "admin"
	if session := SessionFromContext(c); session != nil {
		verifiedBy = session.UserID
	}

	payment, err := h.service.Verify(c.Request.Context(), c.Param("id"), verifiedBy)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, payment)
}
