package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/raja-bazar/makhtab-admin-service/internal/events"
	"github.com/raja-bazar/makhtab-admin-service/internal/models"
)

type notificationEventService struct {
	publisher events.EventPublisher
	logger    *slog.Logger
}

func NewNotificationEventService(publisher events.EventPublisher, logger *slog.Logger) NotificationEventService {
	return &notificationEventService{publisher: publisher, logger: logger}
}

func (s *notificationEventService) publish(ctx context.Context, eventType models.NotificationType, priority models.NotificationPriority, payload map[string]any) error {
	event := events.Event{
		Type:     eventType,
		Priority: priority,
		Payload:  payload,
	}
	if err := s.publisher.Publish(ctx, events.TopicNotifications, event); err != nil {
		return fmt.Errorf("publish %s: %w", eventType, err)
	}
	s.logger.Debug("event published", "type", eventType)
	return nil
}

func (s *notificationEventService) NoticePublished(ctx context.Context, notice *models.Notice) error {
	priority := models.PriorityNormal
	if notice.IsPinned {
		priority = models.PriorityHigh
	}
	return s.publish(ctx, models.NotificationNoticePublished, priority, map[string]any{
		"noticeId":    notice.ID,
		"title":       notice.Title,
		"type":        notice.Type,
		"targetClass": notice.TargetClass,
	})
}

func (s *notificationEventService) PaymentSubmitted(ctx context.Context, payment *models.Payment) error {
	return s.publish(ctx, models.NotificationPaymentSubmitted, models.PriorityNormal, map[string]any{
		"paymentId":   payment.ID,
		"studentName": payment.StudentName,
		"amount":      payment.Amount,
		"method":      payment.Method,
	})
}

func (s *notificationEventService) PaymentVerified(ctx context.Context, payment *models.Payment) error {
	return s.publish(ctx, models.NotificationPaymentVerified, models.PriorityNormal, map[string]any{
		"paymentId":  payment.ID,
		"verifiedBy": payment.VerifiedBy,
		"amount":     payment.Amount,
	})
}

func (s *notificationEventService) TeacherToggled(ctx context.Context, teacher *models.Teacher) error {
	return s.publish(ctx, models.NotificationTeacherToggled, models.PriorityLow, map[string]any{
		"teacherId": teacher.ID,
		"name":      teacher.Name,
		"isEnabled": teacher.IsEnabled,
	})
}

func (s *notificationEventService) UserLoggedIn(ctx context.Context, session *models.Session) error {
	return s.publish(ctx, models.NotificationUserLoggedIn, models.PriorityLow, map[string]any{
		"userId": session.UserID,
		"role":   session.Role,
		"method": session.LoginMethod,
	})
}
