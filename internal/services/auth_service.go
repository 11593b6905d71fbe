package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/raja-bazar/makhtab-admin-service/internal/models"
	"github.com/raja-bazar/makhtab-admin-service/internal/repositories"
	"github.com/raja-bazar/makhtab-admin-service/internal/validator"
)

// AuthConfig carries the demo credentials. They are configuration, not
// compiled-in literals, so deployments can override them.
type AuthConfig struct {
	AdminEmail      string
	AdminPassword   string
	TeacherPassword string
}

type authService struct {
	repo         repositories.Repository
	otp          OTPService
	session      SessionService
	notification NotificationEventService
	logger       *slog.Logger
	validator    *validator.Validator
	config       AuthConfig

	now func() time.Time
}

func NewAuthService(
	repo repositories.Repository,
	otp OTPService,
	session SessionService,
	notification NotificationEventService,
	logger *slog.Logger,
	v *validator.Validator,
	config AuthConfig,
) AuthService {
	return &authService{
		repo:         repo,
		otp:          otp,
		session:      session,
		notification: notification,
		logger:       logger,
		validator:    v,
		config:       config,
		now:          time.Now,
	}
}

// SendOTP issues a code for the pair. The code is echoed in the response
// only while demo mode is on; otherwise delivery is an SMS concern outside
// this service.
func (s *authService) SendOTP(ctx context.Context, req *SendOTPRequest) (*SendOTPResponse, error) {
	if errs := s.validator.Validate(req); errs != nil {
		return nil, NewValidationError(errs[0].Field, errs[0].Message, errs[0].Value)
	}

	record, err := s.otp.Issue(ctx, req.Phone, req.Role)
	if err != nil {
		return nil, err
	}

	resp := &SendOTPResponse{
		Phone:     record.Phone,
		Role:      record.Role,
		ExpiresAt: record.ExpiresAt,
	}

	demoMode, err := s.otp.DemoModeEnabled(ctx)
	if err != nil {
		return nil, err
	}
	if demoMode {
		resp.DemoCode = record.OTP
	}

	return resp, nil
}

// VerifyOTPLogin consumes the code and creates the session. A verified
// student phone with no matching student record returns a NotFoundError so
// the caller can offer the demo fallback.
func (s *authService) VerifyOTPLogin(ctx context.Context, req *VerifyOTPRequest) (*models.Session, error) {
	if errs := s.validator.Validate(req); errs != nil {
		return nil, NewValidationError(errs[0].Field, errs[0].Message, errs[0].Value)
	}

	ok, err := s.otp.Verify(ctx, req.Phone, req.Code, req.Role)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	switch req.Role {
	case models.RoleAdmin:
		return s.createSession(ctx, "admin", models.RoleAdmin, "Administrator", req.Phone, models.LoginOTP)
	default:
		student, err := s.repo.Students().GetByGuardianPhone(ctx, req.Phone)
		if err != nil {
			if repositories.IsNotFoundError(err) {
				return nil, NewNotFoundError("student", req.Phone)
			}
			return nil, fmt.Errorf("lookup student by phone: %w", err)
		}
		return s.createSession(ctx, student.ID, models.RoleStudent, student.Name, req.Phone, models.LoginOTP)
	}
}

func (s *authService) AdminLogin(ctx context.Context, req *AdminLoginRequest) (*models.Session, error) {
	if errs := s.validator.Validate(req); errs != nil {
		return nil, NewValidationError(errs[0].Field, errs[0].Message, errs[0].Value)
	}

	emailOK := strings.EqualFold(req.Email, s.config.AdminEmail)
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(s.config.AdminPassword)) == 1
	if !emailOK || !passOK {
		s.logger.Warn("admin login rejected")
		return nil, ErrInvalidCredentials
	}

	return s.createSession(ctx, "admin", models.RoleAdmin, "Administrator", req.Email, models.LoginCredentials)
}

// TeacherLogin accepts the shared teacher password for any enabled teacher
// found by email. Unknown email, wrong password and a disabled teacher all
// fail the same way.
func (s *authService) TeacherLogin(ctx context.Context, req *TeacherLoginRequest) (*models.Session, error) {
	if errs := s.validator.Validate(req); errs != nil {
		return nil, NewValidationError(errs[0].Field, errs[0].Message, errs[0].Value)
	}

	teacher, err := s.repo.Teachers().GetByEmail(ctx, req.Email)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup teacher by email: %w", err)
	}

	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(s.config.TeacherPassword)) == 1
	if !teacher.IsEnabled || !passOK {
		s.logger.Warn("teacher login rejected", "teacher_id", teacher.ID, "enabled", teacher.IsEnabled)
		return nil, ErrInvalidCredentials
	}

	return s.createSession(ctx, teacher.ID, models.RoleTeacher, teacher.Name, teacher.Contact, models.LoginCredentials)
}

// DemoLogin creates a throwaway student session for visitors without a
// student record.
func (s *authService) DemoLogin(ctx context.Context, req *DemoLoginRequest) (*models.Session, error) {
	if errs := s.validator.Validate(req); errs != nil {
		return nil, NewValidationError(errs[0].Field, errs[0].Message, errs[0].Value)
	}

	userID := fmt.Sprintf("demo-%d", s.now().UnixMilli())
	return s.createSession(ctx, userID, models.RoleStudent, req.Name, req.Phone, models.LoginDemo)
}

func (s *authService) Logout(ctx context.Context) error {
	return s.session.Clear(ctx)
}

func (s *authService) createSession(ctx context.Context, userID string, role models.Role, name, phone string, method models.LoginMethod) (*models.Session, error) {
	session, err := s.session.Create(ctx, userID, role, name, phone, method)
	if err != nil {
		return nil, err
	}

	if err := s.notification.UserLoggedIn(ctx, session); err != nil {
		// Event delivery is best effort; the login itself succeeded.
		s.logger.Warn("publish login event failed", "error", err)
	}

	return session, nil
}
