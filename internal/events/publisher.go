package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/raja-bazar/makhtab-admin-service/internal/models"
)

// TopicNotifications carries all admin notification events.
const TopicNotifications = "makhtab.notifications"

// Event is the envelope published for every domain notification.
type Event struct {
	ID         string                      `json:"id"`
	Type       models.NotificationType     `json:"type"`
	Priority   models.NotificationPriority `json:"priority"`
	OccurredAt time.Time                   `json:"occurredAt"`
	Payload    map[string]any              `json:"payload,omitempty"`
}

type EventPublisher interface {
	Publish(ctx context.Context, topic string, event Event) error
	Close() error
}

// watermillPublisher adapts any watermill publisher to EventPublisher.
type watermillPublisher struct {
	publisher message.Publisher
}

func newWatermillPublisher(publisher message.Publisher) EventPublisher {
	return &watermillPublisher{publisher: publisher}
}

func (p *watermillPublisher) Publish(_ context.Context, topic string, event Event) error {
	if event.ID == "" {
		event.ID = watermill.NewUUID()
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now()
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	msg := message.NewMessage(event.ID, data)
	msg.Metadata.Set("event_type", string(event.Type))

	if err := p.publisher.Publish(topic, msg); err != nil {
		return fmt.Errorf("publish %s: %w", event.Type, err)
	}
	return nil
}

func (p *watermillPublisher) Close() error {
	return p.publisher.Close()
}
