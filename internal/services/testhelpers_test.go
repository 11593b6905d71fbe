package services

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/raja-bazar/makhtab-admin-service/internal/events"
	"github.com/raja-bazar/makhtab-admin-service/internal/repositories"
	"github.com/raja-bazar/makhtab-admin-service/internal/repositories/kv"
	"github.com/raja-bazar/makhtab-admin-service/internal/store"
	"github.com/raja-bazar/makhtab-admin-service/internal/validator"
)

// testEnv wires the service dependencies over a miniredis-backed store.
type testEnv struct {
	store     store.Store
	repo      repositories.Repository
	publisher *events.MockEventPublisher
	logger    *slog.Logger
	validator *validator.Validator
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := store.NewRedisStore(client)

	return &testEnv{
		store:     s,
		repo:      kv.NewRepositoryManager(s),
		publisher: events.NewMockEventPublisher(logger),
		logger:    logger,
		validator: validator.New(),
	}
}

func (e *testEnv) notifications() NotificationEventService {
	return NewNotificationEventService(e.publisher, e.logger)
}

// fixedClock returns a deterministic now func starting at base.
func fixedClock(base time.Time) func() time.Time {
	return func() time.Time { return base }
}
