package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/raja-bazar/makhtab-admin-service/internal/models"
	"github.com/raja-bazar/makhtab-admin-service/internal/repositories"
)

type dashboardService struct {
	repo   repositories.Repository
	logger *slog.Logger

	now func() time.Time
}

func NewDashboardService(repo repositories.Repository, logger *slog.Logger) DashboardService {
	return &dashboardService{repo: repo, logger: logger, now: time.Now}
}

func (s *dashboardService) Stats(ctx context.Context) (*models.DashboardStats, error) {
	students, err := s.repo.Students().List(ctx)
	if students, err = collectionOrEmpty(s.logger, "students", students, err); err != nil {
		return nil, err
	}
	teachers, err := s.repo.Teachers().List(ctx)
	if teachers, err = collectionOrEmpty(s.logger, "teachers", teachers, err); err != nil {
		return nil, err
	}
	payments, err := s.repo.Payments().List(ctx)
	if payments, err = collectionOrEmpty(s.logger, "payments", payments, err); err != nil {
		return nil, err
	}
	tests, err := s.repo.Tests().List(ctx)
	if tests, err = collectionOrEmpty(s.logger, "tests", tests, err); err != nil {
		return nil, err
	}
	attendance, err := s.repo.Attendance().List(ctx)
	if attendance, err = collectionOrEmpty(s.logger, "attendance", attendance, err); err != nil {
		return nil, err
	}

	pending := 0
	for _, p := range payments {
		if p.Status == models.PaymentPending {
			pending++
		}
	}

	today := s.now().Format("2006-01-02")
	upcoming := 0
	for _, t := range tests {
		if t.Date >= today {
			upcoming++
		}
	}

	return &models.DashboardStats{
		TotalStudents:     len(students),
		TotalTeachers:     len(teachers),
		PendingPayments:   pending,
		UpcomingTests:     upcoming,
		AverageAttendance: OverallAttendance(attendance),
	}, nil
}
