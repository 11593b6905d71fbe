package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/raja-bazar/makhtab-admin-service/internal/models"
	"github.com/raja-bazar/makhtab-admin-service/internal/repositories"
)

type sessionService struct {
	repo   repositories.Repository
	logger *slog.Logger

	now func() time.Time
}

func NewSessionService(repo repositories.Repository, logger *slog.Logger) SessionService {
	return &sessionService{repo: repo, logger: logger, now: time.Now}
}

// Create persists a session for the authenticated identity, overwriting
// any prior session unconditionally.
func (s *sessionService) Create(ctx context.Context, userID string, role models.Role, name, phone string, method models.LoginMethod) (*models.Session, error) {
	session := models.Session{
		UserID:      userID,
		Role:        role,
		Name:        name,
		Phone:       phone,
		LoginMethod: method,
		LoginTime:   s.now(),
	}

	if err := s.repo.Session().Set(ctx, session); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}

	s.logger.Info("session created", "user_id", userID, "role", role, "method", method)
	return &session, nil
}

func (s *sessionService) Get(ctx context.Context) (*models.Session, error) {
	session, err := s.repo.Session().Get(ctx)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrNotAuthenticated
		}
		return nil, fmt.Errorf("load session: %w", err)
	}
	return session, nil
}

func (s *sessionService) Clear(ctx context.Context) error {
	if err := s.repo.Session().Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	s.logger.Info("session cleared")
	return nil
}

func (s *sessionService) IsAuthenticated(ctx context.Context) (bool, error) {
	_, err := s.Get(ctx)
	if err != nil {
		if err == ErrNotAuthenticated {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *sessionService) HasRole(ctx context.Context, allowed ...models.Role) (bool, error) {
	session, err := s.Get(ctx)
	if err != nil {
		if err == ErrNotAuthenticated {
			return false, nil
		}
		return false, err
	}
	return session.HasRole(allowed...), nil
}
