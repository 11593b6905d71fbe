package services

import (
	"context"
	"testing"
	"time"

	"github.com/raja-bazar/makhtab-admin-service/internal/models"
)

func newTestNoticeService(t *testing.T, env *testEnv) *noticeService {
	t.Helper()
	svc := NewNoticeService(env.repo, env.notifications(), env.logger, env.validator).(*noticeService)
	svc.now = fixedClock(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	return svc
}

func TestNoticeService_Create(t *testing.T) {
	env := newTestEnv(t)
	svc := newTestNoticeService(t, env)
	ctx := context.Background()

	notice, err := svc.Create(ctx, &CreateNoticeRequest{
		Title:      "Ramadan Schedule",
		Content:    "Classes shift to the morning block.",
		Type:       models.NoticeGeneral,
		ExpiryDate: "2024-04-15",
		IsPinned:   true,
	}, "admin")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if notice.ID == "" || notice.CreatedBy != "admin" {
		t.Fatalf("unexpected notice: %+v", notice)
	}

	published := env.publisher.GetPublishedEvents()
	if len(published) != 1 || published[0].Type != models.NotificationNoticePublished {
		t.Fatalf("expected notice event, got %+v", published)
	}
	if published[0].Priority != models.PriorityHigh {
		t.Fatalf("pinned notices publish at high priority, got %s", published[0].Priority)
	}
}

func TestNoticeService_CreateValidation(t *testing.T) {
	env := newTestEnv(t)
	svc := newTestNoticeService(t, env)
	ctx := context.Background()

	// Class-specific notices need a target class.
	_, err := svc.Create(ctx, &CreateNoticeRequest{
		Title:      "Fazil-1 exam",
		Content:    "Exam on Friday.",
		Type:       models.NoticeClassSpecific,
		ExpiryDate: "2024-04-15",
	}, "admin")
	if !IsValidationError(err) {
		t.Fatalf("expected validation error for missing target class, got %v", err)
	}

	_, err = svc.Create(ctx, &CreateNoticeRequest{
		Title:      "Bad date",
		Content:    "x",
		Type:       models.NoticeGeneral,
		ExpiryDate: "15-04-2024",
	}, "admin")
	if !IsValidationError(err) {
		t.Fatalf("expected validation error for malformed date, got %v", err)
	}
}

func TestNoticeService_ListActive(t *testing.T) {
	env := newTestEnv(t)
	svc := newTestNoticeService(t, env)
	ctx := context.Background()

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	seed := []models.Notice{
		{ID: "n1", Title: "Old", Type: models.NoticeGeneral, ExpiryDate: "2024-02-01", CreatedAt: base.Add(-40 * 24 * time.Hour)},
		{ID: "n2", Title: "General", Type: models.NoticeGeneral, ExpiryDate: "2024-04-01", CreatedAt: base.Add(-2 * 24 * time.Hour)},
		{ID: "n3", Title: "Pinned", Type: models.NoticeGeneral, ExpiryDate: "2024-04-01", IsPinned: true, CreatedAt: base.Add(-10 * 24 * time.Hour)},
		{ID: "n4", Title: "Fazil only", Type: models.NoticeClassSpecific, TargetClass: "Fazil-1", ExpiryDate: "2024-04-01", CreatedAt: base.Add(-1 * 24 * time.Hour)},
		{ID: "n5", Title: "Garbled", Type: models.NoticeGeneral, ExpiryDate: "soon", CreatedAt: base},
	}
	for _, n := range seed {
		if err := env.repo.Notices().Create(ctx, n); err != nil {
			t.Fatalf("seed notice: %v", err)
		}
	}

	t.Run("drops expired and orders pinned first", func(t *testing.T) {
		notices, err := svc.ListActive(ctx, NoticeFilter{})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		// n1 expired, n5 unparseable; n3 pinned leads, then newest first.
		if len(notices) != 3 {
			t.Fatalf("expected 3 notices, got %d", len(notices))
		}
		if notices[0].ID != "n3" {
			t.Fatalf("pinned notice should lead, got %s", notices[0].ID)
		}
		if notices[1].ID != "n4" || notices[2].ID != "n2" {
			t.Fatalf("unpinned notices should be newest first, got %s, %s", notices[1].ID, notices[2].ID)
		}
	})

	t.Run("class filter", func(t *testing.T) {
		notices, err := svc.ListActive(ctx, NoticeFilter{Class: "Nazra-1"})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		for _, n := range notices {
			if n.ID == "n4" {
				t.Fatal("class-specific notice for another class must be hidden")
			}
		}
		if len(notices) != 2 {
			t.Fatalf("expected 2 notices for Nazra-1, got %d", len(notices))
		}
	})

	t.Run("type filter", func(t *testing.T) {
		classSpecific := models.NoticeClassSpecific
		notices, err := svc.ListActive(ctx, NoticeFilter{Type: &classSpecific})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(notices) != 1 || notices[0].ID != "n4" {
			t.Fatalf("expected only n4, got %+v", notices)
		}
	})
}

func TestNoticeService_Delete(t *testing.T) {
	env := newTestEnv(t)
	svc := newTestNoticeService(t, env)
	ctx := context.Background()

	if err := env.repo.Notices().Create(ctx, models.Notice{ID: "n1", Title: "x", Type: models.NoticeGeneral, ExpiryDate: "2024-04-01"}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := svc.Delete(ctx, "n1"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if err := svc.Delete(ctx, "n1"); !IsNotFoundError(err) {
		t.Fatalf("expected NotFoundError for second delete, got %v", err)
	}
}
