package services

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/raja-bazar/makhtab-admin-service/internal/models"
	"github.com/raja-bazar/makhtab-admin-service/internal/repositories"
)

// DefaultOTPTTL is the validity window of an issued code.
const DefaultOTPTTL = 5 * time.Minute

type otpService struct {
	repo   repositories.Repository
	logger *slog.Logger
	ttl    time.Duration

	// Injectable for tests.
	now      func() time.Time
	generate func() string
}

func NewOTPService(repo repositories.Repository, logger *slog.Logger, ttl time.Duration) OTPService {
	if ttl <= 0 {
		ttl = DefaultOTPTTL
	}
	return &otpService{
		repo:     repo,
		logger:   logger,
		ttl:      ttl,
		now:      time.Now,
		generate: generateCode,
	}
}

// generateCode returns a uniformly random 6-digit code in 100000-999999.
func generateCode() string {
	return fmt.Sprintf("%06d", 100000+rand.IntN(900000))
}

// Issue creates a fresh code for the pair, replacing any prior record so
// only the newest code is ever valid.
func (s *otpService) Issue(ctx context.Context, phone string, role models.Role) (*models.OTPRecord, error) {
	record := models.OTPRecord{
		Phone:     phone,
		OTP:       s.generate(),
		ExpiresAt: s.now().Add(s.ttl),
		Role:      role,
	}

	if err := s.repo.OTP().Put(ctx, record); err != nil {
		return nil, fmt.Errorf("persist otp record: %w", err)
	}

	s.logger.Info("otp issued", "phone", maskPhone(phone), "role", role, "expires_at", record.ExpiresAt)
	return &record, nil
}

// Verify checks a submitted code. The record is consumed on a correct code
// and on expiry; a wrong code leaves it intact so the caller can retry
// until the window closes.
func (s *otpService) Verify(ctx context.Context, phone, code string, role models.Role) (bool, error) {
	record, err := s.repo.OTP().Get(ctx, phone, role)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return false, nil
		}
		return false, fmt.Errorf("lookup otp record: %w", err)
	}

	if record.Expired(s.now()) {
		if err := s.repo.OTP().Delete(ctx, phone, role); err != nil {
			return false, fmt.Errorf("discard expired otp: %w", err)
		}
		s.logger.Info("otp expired", "phone", maskPhone(phone), "role", role)
		return false, nil
	}

	if record.OTP != code {
		return false, nil
	}

	if err := s.repo.OTP().Delete(ctx, phone, role); err != nil {
		return false, fmt.Errorf("consume otp: %w", err)
	}
	s.logger.Info("otp verified", "phone", maskPhone(phone), "role", role)
	return true, nil
}

func (s *otpService) DemoModeEnabled(ctx context.Context) (bool, error) {
	return s.repo.Flags().OTPDemoMode(ctx)
}

func (s *otpService) ToggleDemoMode(ctx context.Context) (bool, error) {
	current, err := s.repo.Flags().OTPDemoMode(ctx)
	if err != nil {
		return false, err
	}
	if err := s.repo.Flags().SetOTPDemoMode(ctx, !current); err != nil {
		return false, err
	}
	return !current, nil
}

// maskPhone keeps the last four digits for log lines.
func maskPhone(phone string) string {
	if len(phone) <= 4 {
		return "****"
	}
	return "******" + phone[len(phone)-4:]
}
