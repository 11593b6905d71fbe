package kv

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/raja-bazar/makhtab-admin-service/internal/models"
	"github.com/raja-bazar/makhtab-admin-service/internal/repositories"
	"github.com/raja-bazar/makhtab-admin-service/internal/store"
)

func newTestRepo(t *testing.T) repositories.Repository {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRepositoryManager(store.NewRedisStore(client))
}

func TestStudentRepository_CRUD(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	// Empty collection lists as empty, not as an error.
	students, err := repo.Students().List(ctx)
	if err != nil {
		t.Fatalf("list empty: %v", err)
	}
	if len(students) != 0 {
		t.Fatalf("expected empty list, got %d", len(students))
	}

	hafsa := models.Student{ID: "s11", Name: "Hafsa Begum", Class: "Fazil-1", GuardianPhone: "9123456790"}
	khalid := models.Student{ID: "s12", Name: "Khalid Ansari", Class: "Fazil-1", GuardianPhone: "9123456791"}
	for _, s := range []models.Student{hafsa, khalid} {
		if err := repo.Students().Create(ctx, s); err != nil {
			t.Fatalf("create %s: %v", s.ID, err)
		}
	}

	got, err := repo.Students().GetByID(ctx, "s12")
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if got.Name != "Khalid Ansari" {
		t.Fatalf("unexpected student: %+v", got)
	}

	got, err = repo.Students().GetByGuardianPhone(ctx, "9123456790")
	if err != nil {
		t.Fatalf("get by phone: %v", err)
	}
	if got.ID != "s11" {
		t.Fatalf("expected s11, got %s", got.ID)
	}

	got.Class = "Fazil-2"
	if err := repo.Students().Update(ctx, *got); err != nil {
		t.Fatalf("update: %v", err)
	}
	updated, err := repo.Students().GetByID(ctx, "s11")
	if err != nil {
		t.Fatalf("get after update: %v", err)
	}
	if updated.Class != "Fazil-2" {
		t.Fatalf("update not persisted: %+v", updated)
	}

	if err := repo.Students().Delete(ctx, "s11"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.Students().GetByID(ctx, "s11"); !errors.Is(err, repositories.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := repo.Students().Delete(ctx, "s11"); !errors.Is(err, repositories.ErrNotFound) {
		t.Fatalf("deleting absent student should report ErrNotFound, got %v", err)
	}
}

func TestTeacherRepository_GetByEmail(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.Teachers().Create(ctx, models.Teacher{
		ID: "t1", Name: "Rahman", Email: "rahman@rajabazar.edu", IsEnabled: true,
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Lookup is case-insensitive.
	got, err := repo.Teachers().GetByEmail(ctx, "RAHMAN@rajabazar.EDU")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if got.ID != "t1" {
		t.Fatalf("expected t1, got %s", got.ID)
	}

	if _, err := repo.Teachers().GetByEmail(ctx, "ghost@rajabazar.edu"); !errors.Is(err, repositories.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestOTPRepository_PutReplacesPair(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	expires := time.Date(2024, 3, 1, 12, 5, 0, 0, time.UTC)

	if err := repo.OTP().Put(ctx, models.OTPRecord{Phone: "9123456790", OTP: "111111", Role: models.RoleStudent, ExpiresAt: expires}); err != nil {
		t.Fatalf("put: %v", err)
	}
	// Same phone, other role: separate record.
	if err := repo.OTP().Put(ctx, models.OTPRecord{Phone: "9123456790", OTP: "222222", Role: models.RoleAdmin, ExpiresAt: expires}); err != nil {
		t.Fatalf("put admin: %v", err)
	}
	// Same pair: replaces.
	if err := repo.OTP().Put(ctx, models.OTPRecord{Phone: "9123456790", OTP: "333333", Role: models.RoleStudent, ExpiresAt: expires}); err != nil {
		t.Fatalf("replace: %v", err)
	}

	got, err := repo.OTP().Get(ctx, "9123456790", models.RoleStudent)
	if err != nil {
		t.Fatalf("get student record: %v", err)
	}
	if got.OTP != "333333" {
		t.Fatalf("expected replaced code, got %s", got.OTP)
	}

	got, err = repo.OTP().Get(ctx, "9123456790", models.RoleAdmin)
	if err != nil {
		t.Fatalf("get admin record: %v", err)
	}
	if got.OTP != "222222" {
		t.Fatalf("admin record should be untouched, got %s", got.OTP)
	}

	if err := repo.OTP().Delete(ctx, "9123456790", models.RoleStudent); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.OTP().Get(ctx, "9123456790", models.RoleStudent); !errors.Is(err, repositories.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestSessionRepository_SingleRecord(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if _, err := repo.Session().Get(ctx); !errors.Is(err, repositories.ErrNotFound) {
		t.Fatalf("expected ErrNotFound with no session, got %v", err)
	}

	if err := repo.Session().Set(ctx, models.Session{UserID: "s11", Role: models.RoleStudent}); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := repo.Session().Set(ctx, models.Session{UserID: "admin", Role: models.RoleAdmin}); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	got, err := repo.Session().Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.UserID != "admin" {
		t.Fatalf("expected latest session, got %s", got.UserID)
	}

	if err := repo.Session().Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := repo.Session().Get(ctx); !errors.Is(err, repositories.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after clear, got %v", err)
	}
}

func TestFlagRepository_Defaults(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	enabled, err := repo.Flags().OTPDemoMode(ctx)
	if err != nil {
		t.Fatalf("demo mode: %v", err)
	}
	if enabled {
		t.Fatal("absent flag reads as false")
	}

	version, err := repo.Flags().CleanupVersion(ctx)
	if err != nil {
		t.Fatalf("cleanup version: %v", err)
	}
	if version != 0 {
		t.Fatalf("absent version reads as 0, got %d", version)
	}

	if err := repo.Flags().SetOTPDemoMode(ctx, true); err != nil {
		t.Fatalf("set demo mode: %v", err)
	}
	if err := repo.Flags().SetCleanupVersion(ctx, 3); err != nil {
		t.Fatalf("set version: %v", err)
	}

	enabled, err = repo.Flags().OTPDemoMode(ctx)
	if err != nil || !enabled {
		t.Fatalf("expected demo mode on, got %v err=%v", enabled, err)
	}
	version, err = repo.Flags().CleanupVersion(ctx)
	if err != nil || version != 3 {
		t.Fatalf("expected version 3, got %d err=%v", version, err)
	}
}
