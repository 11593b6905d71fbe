package kv

import (
	"context"
	"fmt"

	"github.com/raja-bazar/makhtab-admin-service/internal/models"
	"github.com/raja-bazar/makhtab-admin-service/internal/store"
)

type testRepository struct {
	store store.Store
}

func (r *testRepository) List(ctx context.Context) ([]models.Test, error) {
	tests := []models.Test{}
	if _, err := r.store.Load(ctx, store.CollectionTests, &tests); err != nil {
		return nil, fmt.Errorf("load tests: %w", err)
	}
	return tests, nil
}

func (r *testRepository) ListByClass(ctx context.Context, class string) ([]models.Test, error) {
	tests, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	matched := []models.Test{}
	for _, t := range tests {
		if t.Class == class {
			matched = append(matched, t)
		}
	}
	return matched, nil
}

type attendanceRepository struct {
	store store.Store
}

func (r *attendanceRepository) List(ctx context.Context) ([]models.AttendanceRecord, error) {
	records := []models.AttendanceRecord{}
	if _, err := r.store.Load(ctx, store.CollectionAttendance, &records); err != nil {
		return nil, fmt.Errorf("load attendance: %w", err)
	}
	return records, nil
}

func (r *attendanceRepository) ListByTeacher(ctx context.Context, teacherID string) ([]models.AttendanceRecord, error) {
	records, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	matched := []models.AttendanceRecord{}
	for _, rec := range records {
		if rec.TeacherID == teacherID {
			matched = append(matched, rec)
		}
	}
	return matched, nil
}
