package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/raja-bazar/makhtab-admin-service/internal/models"
	"github.com/raja-bazar/makhtab-admin-service/internal/repositories"
	"github.com/raja-bazar/makhtab-admin-service/internal/validator"
)

type noticeService struct {
	repo         repositories.Repository
	notification NotificationEventService
	logger       *slog.Logger
	validator    *validator.Validator

	now func() time.Time
}

func NewNoticeService(repo repositories.Repository, notification NotificationEventService, logger *slog.Logger, v *validator.Validator) NoticeService {
	return &noticeService{repo: repo, notification: notification, logger: logger, validator: v, now: time.Now}
}

func (s *noticeService) Create(ctx context.Context, req *CreateNoticeRequest, createdBy string) (*models.Notice, error) {
	if errs := s.validator.Validate(req); errs != nil {
		return nil, NewValidationError(errs[0].Field, errs[0].Message, errs[0].Value)
	}

	notice := models.Notice{
		ID:          "n-" + uuid.NewString(),
		Title:       req.Title,
		Content:     req.Content,
		Type:        req.Type,
		TargetClass: req.TargetClass,
		ExpiryDate:  req.ExpiryDate,
		IsPinned:    req.IsPinned,
		CreatedAt:   s.now(),
		CreatedBy:   createdBy,
	}

	if err := s.repo.Notices().Create(ctx, notice); err != nil {
		return nil, fmt.Errorf("create notice: %w", err)
	}

	if err := s.notification.NoticePublished(ctx, &notice); err != nil {
		s.logger.Warn("publish notice event failed", "error", err)
	}

	s.logger.Info("notice created", "notice_id", notice.ID, "type", notice.Type, "pinned", notice.IsPinned)
	return &notice, nil
}

// ListActive drops expired notices, applies the optional type and class
// filters, and orders pinned-first then newest-first.
func (s *noticeService) ListActive(ctx context.Context, filter NoticeFilter) ([]models.Notice, error) {
	notices, err := s.repo.Notices().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list notices: %w", err)
	}

	now := s.now()
	active := []models.Notice{}
	for _, n := range notices {
		if !n.Active(now) {
			continue
		}
		if filter.Type != nil && n.Type != *filter.Type {
			continue
		}
		if filter.Class != "" && !n.VisibleTo(filter.Class) {
			continue
		}
		active = append(active, n)
	}

	sort.SliceStable(active, func(i, j int) bool {
		if active[i].IsPinned != active[j].IsPinned {
			return active[i].IsPinned
		}
		return active[i].CreatedAt.After(active[j].CreatedAt)
	})

	return active, nil
}

func (s *noticeService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Notices().Delete(ctx, id); err != nil {
		if repositories.IsNotFoundError(err) {
			return NewNotFoundError("notice", id)
		}
		return fmt.Errorf("delete notice: %w", err)
	}
	s.logger.Info("notice removed", "notice_id", id)
	return nil
}
