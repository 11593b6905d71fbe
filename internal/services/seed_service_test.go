package services

import (
	"context"
	"testing"

	"github.com/raja-bazar/makhtab-admin-service/internal/models"
	"github.com/raja-bazar/makhtab-admin-service/internal/store"
)

func TestSeedService_EnsureSeeded(t *testing.T) {
	env := newTestEnv(t)
	svc := NewSeedService(env.store, env.repo, env.logger)
	ctx := context.Background()

	if err := svc.EnsureSeeded(ctx); err != nil {
		t.Fatalf("ensure seeded: %v", err)
	}

	students, err := env.repo.Students().List(ctx)
	if err != nil {
		t.Fatalf("list students: %v", err)
	}
	if len(students) != 15 {
		t.Fatalf("expected 15 seeded students, got %d", len(students))
	}

	teachers, err := env.repo.Teachers().List(ctx)
	if err != nil {
		t.Fatalf("list teachers: %v", err)
	}
	if len(teachers) != 10 {
		t.Fatalf("expected 10 seeded teachers, got %d", len(teachers))
	}

	for _, collection := range store.SeededCollections {
		exists, err := env.store.Exists(ctx, collection)
		if err != nil {
			t.Fatalf("exists %s: %v", collection, err)
		}
		if !exists {
			t.Fatalf("collection %s should be seeded", collection)
		}
	}

	// Demo mode defaults on.
	enabled, err := env.repo.Flags().OTPDemoMode(ctx)
	if err != nil {
		t.Fatalf("demo mode: %v", err)
	}
	if !enabled {
		t.Fatal("otp demo mode should be seeded on")
	}
}

func TestSeedService_SeedingIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	svc := NewSeedService(env.store, env.repo, env.logger)
	ctx := context.Background()

	if err := svc.EnsureSeeded(ctx); err != nil {
		t.Fatalf("first seed: %v", err)
	}

	// Mutate a seeded collection and flip the flag; a re-run must not
	// undo either.
	if err := env.repo.Students().Create(ctx, models.Student{ID: "s-custom", Name: "New Student", Class: "Nazra-1"}); err != nil {
		t.Fatalf("add student: %v", err)
	}
	if err := env.repo.Flags().SetOTPDemoMode(ctx, false); err != nil {
		t.Fatalf("disable demo mode: %v", err)
	}

	if err := svc.EnsureSeeded(ctx); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	students, err := env.repo.Students().List(ctx)
	if err != nil {
		t.Fatalf("list students: %v", err)
	}
	if len(students) != 16 {
		t.Fatalf("reseeding must not touch present collections, got %d students", len(students))
	}

	enabled, err := env.repo.Flags().OTPDemoMode(ctx)
	if err != nil {
		t.Fatalf("demo mode: %v", err)
	}
	if enabled {
		t.Fatal("reseeding must not reset an existing demo mode flag")
	}
}

func TestSeedService_SeedsEmptiedCollection(t *testing.T) {
	env := newTestEnv(t)
	svc := NewSeedService(env.store, env.repo, env.logger)
	ctx := context.Background()

	if err := svc.EnsureSeeded(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}

	// A deleted key reads as absent and gets reseeded; an emptied-but-present
	// collection does not.
	if err := env.store.Delete(ctx, store.CollectionNotices); err != nil {
		t.Fatalf("delete notices: %v", err)
	}

	if err := svc.EnsureSeeded(ctx); err != nil {
		t.Fatalf("reseed: %v", err)
	}

	notices, err := env.repo.Notices().List(ctx)
	if err != nil {
		t.Fatalf("list notices: %v", err)
	}
	if len(notices) == 0 {
		t.Fatal("deleted notices collection should be reseeded")
	}
}

func TestSeedService_MigrateTrimsRoster(t *testing.T) {
	env := newTestEnv(t)
	svc := NewSeedService(env.store, env.repo, env.logger)
	ctx := context.Background()

	if err := svc.EnsureSeeded(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := svc.Migrate(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	students, err := env.repo.Students().List(ctx)
	if err != nil {
		t.Fatalf("list students: %v", err)
	}
	if len(students) != 5 {
		t.Fatalf("expected 5 students after trim, got %d", len(students))
	}
	if students[0].ID != "s21" {
		t.Fatalf("trim removes the first 10, first survivor should be s21, got %s", students[0].ID)
	}

	teachers, err := env.repo.Teachers().List(ctx)
	if err != nil {
		t.Fatalf("list teachers: %v", err)
	}
	if len(teachers) != 5 {
		t.Fatalf("expected 5 teachers after trim, got %d", len(teachers))
	}
	if teachers[0].ID != "t6" {
		t.Fatalf("trim removes the first 5, first survivor should be t6, got %s", teachers[0].ID)
	}

	version, err := env.repo.Flags().CleanupVersion(ctx)
	if err != nil {
		t.Fatalf("cleanup version: %v", err)
	}
	if version != 3 {
		t.Fatalf("expected recorded version 3, got %d", version)
	}
}

func TestSeedService_MigrateIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	svc := NewSeedService(env.store, env.repo, env.logger)
	ctx := context.Background()

	if err := svc.EnsureSeeded(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := svc.Migrate(ctx); err != nil {
		t.Fatalf("first migrate: %v", err)
	}

	// A trimmed roster is at the threshold; a replay must not trim again.
	if err := svc.Migrate(ctx); err != nil {
		t.Fatalf("second migrate: %v", err)
	}

	students, err := env.repo.Students().List(ctx)
	if err != nil {
		t.Fatalf("list students: %v", err)
	}
	if len(students) != 5 {
		t.Fatalf("second migrate must be a no-op, got %d students", len(students))
	}
}

func TestSeedService_MigrateSkipsSmallRoster(t *testing.T) {
	env := newTestEnv(t)
	svc := NewSeedService(env.store, env.repo, env.logger)
	ctx := context.Background()

	// A hand-built roster below the thresholds is never trimmed.
	for _, s := range []models.Student{
		{ID: "a1", Name: "One", Class: "Nazra-1"},
		{ID: "a2", Name: "Two", Class: "Nazra-1"},
	} {
		if err := env.repo.Students().Create(ctx, s); err != nil {
			t.Fatalf("create student: %v", err)
		}
	}

	if err := svc.Migrate(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	students, err := env.repo.Students().List(ctx)
	if err != nil {
		t.Fatalf("list students: %v", err)
	}
	if len(students) != 2 {
		t.Fatalf("small roster must be untouched, got %d", len(students))
	}
}
