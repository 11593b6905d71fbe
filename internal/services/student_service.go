package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/raja-bazar/makhtab-admin-service/internal/models"
	"github.com/raja-bazar/makhtab-admin-service/internal/repositories"
	"github.com/raja-bazar/makhtab-admin-service/internal/validator"
)

type studentService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator

	now func() time.Time
}

func NewStudentService(repo repositories.Repository, logger *slog.Logger, v *validator.Validator) StudentService {
	return &studentService{repo: repo, logger: logger, validator: v, now: time.Now}
}

func (s *studentService) List(ctx context.Context) ([]models.Student, error) {
	return s.repo.Students().List(ctx)
}

func (s *studentService) Get(ctx context.Context, id string) (*models.Student, error) {
	student, err := s.repo.Students().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, NewNotFoundError("student", id)
		}
		return nil, fmt.Errorf("get student: %w", err)
	}
	return student, nil
}

func (s *studentService) GetByGuardianPhone(ctx context.Context, phone string) (*models.Student, error) {
	student, err := s.repo.Students().GetByGuardianPhone(ctx, phone)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, NewNotFoundError("student", phone)
		}
		return nil, fmt.Errorf("get student by phone: %w", err)
	}
	return student, nil
}

func (s *studentService) Create(ctx context.Context, req *CreateStudentRequest) (*models.Student, error) {
	if errs := s.validator.Validate(req); errs != nil {
		return nil, NewValidationError(errs[0].Field, errs[0].Message, errs[0].Value)
	}

	student := models.Student{
		ID:               "s-" + uuid.NewString(),
		Name:             req.Name,
		Class:            req.Class,
		GuardianName:     req.GuardianName,
		GuardianPhone:    req.GuardianPhone,
		AssignedTeachers: req.AssignedTeachers,
		EnrollmentDate:   s.now().Format("2006-01-02"),
	}
	if student.AssignedTeachers == nil {
		student.AssignedTeachers = []string{}
	}

	if err := s.repo.Students().Create(ctx, student); err != nil {
		return nil, fmt.Errorf("create student: %w", err)
	}

	s.logger.Info("student created", "student_id", student.ID, "class", student.Class)
	return &student, nil
}

func (s *studentService) Update(ctx context.Context, id string, req *UpdateStudentRequest) (*models.Student, error) {
	if errs := s.validator.Validate(req); errs != nil {
		return nil, NewValidationError(errs[0].Field, errs[0].Message, errs[0].Value)
	}

	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = req.Name
	existing.Class = req.Class
	existing.GuardianName = req.GuardianName
	existing.GuardianPhone = req.GuardianPhone
	existing.AssignedTeachers = req.AssignedTeachers
	if existing.AssignedTeachers == nil {
		existing.AssignedTeachers = []string{}
	}

	if err := s.repo.Students().Update(ctx, *existing); err != nil {
		return nil, fmt.Errorf("update student: %w", err)
	}

	s.logger.Info("student updated", "student_id", id)
	return existing, nil
}

func (s *studentService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Students().Delete(ctx, id); err != nil {
		if repositories.IsNotFoundError(err) {
			return NewNotFoundError("student", id)
		}
		return fmt.Errorf("delete student: %w", err)
	}
	s.logger.Info("student removed", "student_id", id)
	return nil
}

// Overview assembles the student dashboard: the tests for their class,
// their attendance percentage and the notices addressed to them.
func (s *studentService) Overview(ctx context.Context, id string) (*StudentOverview, error) {
	student, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	tests, err := s.repo.Tests().ListByClass(ctx, student.Class)
	if tests, err = collectionOrEmpty(s.logger, "tests", tests, err); err != nil {
		return nil, err
	}

	attendance, err := s.repo.Attendance().List(ctx)
	if attendance, err = collectionOrEmpty(s.logger, "attendance", attendance, err); err != nil {
		return nil, err
	}
	// Only sittings that actually marked this student.
	mine := []models.AttendanceRecord{}
	for _, rec := range attendance {
		if rec.HasMark(student.ID) {
			mine = append(mine, rec)
		}
	}

	notices, err := s.repo.Notices().List(ctx)
	if notices, err = collectionOrEmpty(s.logger, "notices", notices, err); err != nil {
		return nil, err
	}
	now := s.now()
	visible := []models.Notice{}
	for _, n := range notices {
		if n.Active(now) && n.VisibleTo(student.Class) {
			visible = append(visible, n)
		}
	}

	return &StudentOverview{
		Student:              *student,
		Tests:                tests,
		AttendancePercentage: AttendancePercentage(mine, student.ID),
		Notices:              visible,
		Attendance:           mine,
	}, nil
}
