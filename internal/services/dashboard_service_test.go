package services

import (
	"context"
	"testing"
	"time"

	"github.com/raja-bazar/makhtab-admin-service/internal/models"
	"github.com/raja-bazar/makhtab-admin-service/internal/store"
)

func TestDashboardService_Stats(t *testing.T) {
	env := newTestEnv(t)
	svc := NewDashboardService(env.repo, env.logger).(*dashboardService)
	svc.now = fixedClock(time.Date(2024, 2, 12, 9, 0, 0, 0, time.UTC))
	ctx := context.Background()

	for _, s := range []models.Student{
		{ID: "s11", Name: "Hafsa", Class: "Fazil-1"},
		{ID: "s12", Name: "Khalid", Class: "Fazil-1"},
		{ID: "s13", Name: "Ruqayyah", Class: "Fazil-1"},
	} {
		if err := env.repo.Students().Create(ctx, s); err != nil {
			t.Fatalf("seed student: %v", err)
		}
	}
	for _, teacher := range []models.Teacher{
		{ID: "t1", Name: "Rahman", IsEnabled: true},
		{ID: "t2", Name: "Zubair", IsEnabled: false},
	} {
		if err := env.repo.Teachers().Create(ctx, teacher); err != nil {
			t.Fatalf("seed teacher: %v", err)
		}
	}
	for _, p := range []models.Payment{
		{ID: "p1", StudentName: "Hafsa", Amount: 1600, Status: models.PaymentPending},
		{ID: "p2", StudentName: "Khalid", Amount: 800, Status: models.PaymentVerified},
		{ID: "p3", StudentName: "Ruqayyah", Amount: 1600, Status: models.PaymentPending},
	} {
		if err := env.repo.Payments().Create(ctx, p); err != nil {
			t.Fatalf("seed payment: %v", err)
		}
	}
	tests := []models.Test{
		{ID: "test1", Class: "Fazil-1", Date: "2024-01-15"}, // past
		{ID: "test2", Class: "Fazil-1", Date: "2024-02-12"}, // today counts
		{ID: "test3", Class: "Fazil-1", Date: "2024-02-20"},
	}
	if err := env.store.Save(ctx, store.CollectionTests, tests); err != nil {
		t.Fatalf("seed tests: %v", err)
	}
	attendance := []models.AttendanceRecord{
		{
			ID: "att1", Status: models.AttendanceHeld,
			Students: []models.StudentMark{
				{StudentID: "s11", Status: models.PresencePresent},
				{StudentID: "s12", Status: models.PresencePresent},
				{StudentID: "s13", Status: models.PresenceAbsent},
				{StudentID: "s11", Status: models.PresencePresent},
			},
		},
		{ID: "att2", Status: models.AttendanceCancelled,
			Students: []models.StudentMark{{StudentID: "s11", Status: models.PresenceAbsent}}},
	}
	if err := env.store.Save(ctx, store.CollectionAttendance, attendance); err != nil {
		t.Fatalf("seed attendance: %v", err)
	}

	stats, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}

	if stats.TotalStudents != 3 {
		t.Errorf("TotalStudents = %d, want 3", stats.TotalStudents)
	}
	if stats.TotalTeachers != 2 {
		t.Errorf("TotalTeachers = %d, want 2", stats.TotalTeachers)
	}
	if stats.PendingPayments != 2 {
		t.Errorf("PendingPayments = %d, want 2", stats.PendingPayments)
	}
	if stats.UpcomingTests != 2 {
		t.Errorf("UpcomingTests = %d, want 2", stats.UpcomingTests)
	}
	// 3 of 4 marks present across held sittings.
	if stats.AverageAttendance != 75 {
		t.Errorf("AverageAttendance = %d, want 75", stats.AverageAttendance)
	}
}

func TestDashboardService_StatsCorruptCollection(t *testing.T) {
	env := newTestEnv(t)
	svc := NewDashboardService(env.repo, env.logger)
	ctx := context.Background()

	if err := env.repo.Teachers().Create(ctx, models.Teacher{ID: "t1", Name: "Rahman", IsEnabled: true}); err != nil {
		t.Fatalf("seed teacher: %v", err)
	}
	// A payload that cannot unmarshal into a student slice reads as an
	// empty collection, not as an error.
	if err := env.store.Save(ctx, store.CollectionStudents, map[string]string{"not": "an array"}); err != nil {
		t.Fatalf("plant corrupt payload: %v", err)
	}

	stats, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("stats over corrupt collection: %v", err)
	}
	if stats.TotalStudents != 0 {
		t.Errorf("TotalStudents = %d, want 0", stats.TotalStudents)
	}
	if stats.TotalTeachers != 1 {
		t.Errorf("TotalTeachers = %d, want 1", stats.TotalTeachers)
	}
}

func TestDashboardService_StatsEmpty(t *testing.T) {
	env := newTestEnv(t)
	svc := NewDashboardService(env.repo, env.logger)

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalStudents != 0 || stats.PendingPayments != 0 || stats.AverageAttendance != 0 {
		t.Fatalf("empty store should yield zero stats, got %+v", stats)
	}
}
