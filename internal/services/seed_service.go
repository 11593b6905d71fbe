package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/raja-bazar/makhtab-admin-service/internal/repositories"
	"github.com/raja-bazar/makhtab-admin-service/internal/store"
)

type seedService struct {
	store  store.Store
	repo   repositories.Repository
	logger *slog.Logger

	now func() time.Time
}

func NewSeedService(s store.Store, repo repositories.Repository, logger *slog.Logger) SeedService {
	return &seedService{store: s, repo: repo, logger: logger, now: time.Now}
}

// EnsureSeeded populates every absent collection with its built-in demo
// dataset. Presence is the only check, so a second run is a no-op and
// user-modified collections are never touched.
func (s *seedService) EnsureSeeded(ctx context.Context) error {
	datasets := map[string]any{
		store.CollectionTeachers:   seedTeachers(),
		store.CollectionStudents:   seedStudents(),
		store.CollectionTests:      seedTests(),
		store.CollectionAttendance: seedAttendance(s.now()),
		store.CollectionNotices:    seedNotices(),
		store.CollectionPayments:   seedPayments(),
	}

	for _, collection := range store.SeededCollections {
		exists, err := s.store.Exists(ctx, collection)
		if err != nil {
			return fmt.Errorf("check %s: %w", collection, err)
		}
		if exists {
			continue
		}
		if err := s.store.Save(ctx, collection, datasets[collection]); err != nil {
			return fmt.Errorf("seed %s: %w", collection, err)
		}
		s.logger.Info("collection seeded", "collection", collection)
	}

	demoExists, err := s.store.Exists(ctx, store.KeyOTPDemoMode)
	if err != nil {
		return fmt.Errorf("check otp demo mode: %w", err)
	}
	if !demoExists {
		if err := s.repo.Flags().SetOTPDemoMode(ctx, true); err != nil {
			return fmt.Errorf("seed otp demo mode: %w", err)
		}
		s.logger.Info("otp demo mode enabled by default")
	}

	return nil
}

// migration is one step of the ordered schema migration list. Steps run in
// ascending version order; each must be idempotent because a crash between
// applying a step and recording its version replays it.
type migration struct {
	Version int
	Name    string
	Apply   func(ctx context.Context, repo repositories.Repository) error
}

var migrations = []migration{
	{
		Version: 3,
		Name:    "trim seeded demo roster",
		Apply:   trimDemoRoster,
	},
}

// Migrate applies every migration step newer than the stored version.
func (s *seedService) Migrate(ctx context.Context) error {
	current, err := s.repo.Flags().CleanupVersion(ctx)
	if err != nil {
		return fmt.Errorf("read cleanup version: %w", err)
	}

	for _, m := range migrations {
		if m.Version <= current {
			continue
		}
		if err := m.Apply(ctx, s.repo); err != nil {
			return fmt.Errorf("migration %d (%s): %w", m.Version, m.Name, err)
		}
		if err := s.repo.Flags().SetCleanupVersion(ctx, m.Version); err != nil {
			return fmt.Errorf("record migration %d: %w", m.Version, err)
		}
		current = m.Version
		s.logger.Info("migration applied", "version", m.Version, "name", m.Name)
	}

	return nil
}

// trimDemoRoster removes the first 10 seeded demo students and the first 5
// seeded demo teachers from installs created before the roster was pruned.
// Rosters at or below the threshold are left untouched.
func trimDemoRoster(ctx context.Context, repo repositories.Repository) error {
	students, err := repo.Students().List(ctx)
	if err != nil {
		return err
	}
	if len(students) > 10 {
		if err := repo.Students().ReplaceAll(ctx, students[10:]); err != nil {
			return err
		}
	}

	teachers, err := repo.Teachers().List(ctx)
	if err != nil {
		return err
	}
	if len(teachers) > 5 {
		if err := repo.Teachers().ReplaceAll(ctx, teachers[5:]); err != nil {
			return err
		}
	}

	return nil
}
