package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/raja-bazar/makhtab-admin-service/internal/models"
	"github.com/raja-bazar/makhtab-admin-service/internal/repositories"
	"github.com/raja-bazar/makhtab-admin-service/internal/validator"
)

// GuestPayerID is recorded when an unauthenticated visitor submits a
// payment.
const GuestPayerID = "guest"

type paymentService struct {
	repo         repositories.Repository
	notification NotificationEventService
	logger       *slog.Logger
	validator    *validator.Validator

	now func() time.Time
}

func NewPaymentService(repo repositories.Repository, notification NotificationEventService, logger *slog.Logger, v *validator.Validator) PaymentService {
	return &paymentService{repo: repo, notification: notification, logger: logger, validator: v, now: time.Now}
}

// Submit records a pending payment. Payer may be nil: guest submissions
// are allowed and attributed to GuestPayerID.
func (s *paymentService) Submit(ctx context.Context, req *CreatePaymentRequest, payer *models.Session) (*models.Payment, error) {
	if errs := s.validator.Validate(req); errs != nil {
		return nil, NewValidationError(errs[0].Field, errs[0].Message, errs[0].Value)
	}

	studentID := GuestPayerID
	if payer != nil {
		studentID = payer.UserID
	}

	method := req.Method
	if method == "" {
		method = "UPI"
	}

	payment := models.Payment{
		ID:              "p-" + uuid.NewString(),
		StudentID:       studentID,
		StudentName:     req.StudentName,
		Class:           req.Class,
		Amount:          req.Amount,
		Date:            s.now().Format("2006-01-02"),
		Method:          method,
		Status:          models.PaymentPending,
		TransactionNote: req.TransactionNote,
	}

	if err := s.repo.Payments().Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}

	if err := s.notification.PaymentSubmitted(ctx, &payment); err != nil {
		s.logger.Warn("publish payment event failed", "error", err)
	}

	s.logger.Info("payment submitted", "payment_id", payment.ID, "amount", payment.Amount, "student_id", studentID)
	return &payment, nil
}

func (s *paymentService) List(ctx context.Context) ([]models.Payment, error) {
	return s.repo.Payments().List(ctx)
}

// Verify transitions a pending payment to verified and stamps the
// verifier. Verifying an already verified payment is a no-op.
func (s *paymentService) Verify(ctx context.Context, id, verifiedBy string) (*models.Payment, error) {
	payment, err := s.repo.Payments().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, NewNotFoundError("payment", id)
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}

	if payment.Status == models.PaymentVerified {
		return payment, nil
	}

	verifiedAt := s.now()
	payment.Status = models.PaymentVerified
	payment.VerifiedBy = verifiedBy
	payment.VerifiedAt = &verifiedAt

	if err := s.repo.Payments().Update(ctx, *payment); err != nil {
		return nil, fmt.Errorf("update payment: %w", err)
	}

	if err := s.notification.PaymentVerified(ctx, payment); err != nil {
		s.logger.Warn("publish payment verified event failed", "error", err)
	}

	s.logger.Info("payment verified", "payment_id", id, "verified_by", verifiedBy)
	return payment, nil
}
