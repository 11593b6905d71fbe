package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/google/uuid"

	"github.com/raja-bazar/makhtab-admin-service/internal/models"
	"github.com/raja-bazar/makhtab-admin-service/internal/repositories"
	"github.com/raja-bazar/makhtab-admin-service/internal/validator"
)

type teacherService struct {
	repo         repositories.Repository
	notification NotificationEventService
	logger       *slog.Logger
	validator    *validator.Validator
}

func NewTeacherService(repo repositories.Repository, notification NotificationEventService, logger *slog.Logger, v *validator.Validator) TeacherService {
	return &teacherService{repo: repo, notification: notification, logger: logger, validator: v}
}

func (s *teacherService) List(ctx context.Context) ([]models.Teacher, error) {
	return s.repo.Teachers().List(ctx)
}

func (s *teacherService) Get(ctx context.Context, id string) (*models.Teacher, error) {
	teacher, err := s.repo.Teachers().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, NewNotFoundError("teacher", id)
		}
		return nil, fmt.Errorf("get teacher: %w", err)
	}
	return teacher, nil
}

func (s *teacherService) Create(ctx context.Context, req *CreateTeacherRequest) (*models.Teacher, error) {
	if errs := s.validator.Validate(req); errs != nil {
		return nil, NewValidationError(errs[0].Field, errs[0].Message, errs[0].Value)
	}

	teacher := models.Teacher{
		ID:                 "t-" + uuid.NewString(),
		Name:               req.Name,
		Photo:              avatarURL(req.Name),
		Subjects:           req.Subjects,
		Contact:            req.Contact,
		Email:              req.Email,
		WeeklyAvailability: toWeeklySlots(req.WeeklyAvailability),
		IsEnabled:          true,
	}
	if teacher.Subjects == nil {
		teacher.Subjects = []string{}
	}

	if err := s.repo.Teachers().Create(ctx, teacher); err != nil {
		return nil, fmt.Errorf("create teacher: %w", err)
	}

	s.logger.Info("teacher created", "teacher_id", teacher.ID)
	return &teacher, nil
}

func (s *teacherService) Update(ctx context.Context, id string, req *UpdateTeacherRequest) (*models.Teacher, error) {
	if errs := s.validator.Validate(req); errs != nil {
		return nil, NewValidationError(errs[0].Field, errs[0].Message, errs[0].Value)
	}

	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = req.Name
	existing.Email = req.Email
	existing.Contact = req.Contact
	existing.Subjects = req.Subjects
	if existing.Subjects == nil {
		existing.Subjects = []string{}
	}
	if req.WeeklyAvailability != nil {
		existing.WeeklyAvailability = toWeeklySlots(req.WeeklyAvailability)
	}

	if err := s.repo.Teachers().Update(ctx, *existing); err != nil {
		return nil, fmt.Errorf("update teacher: %w", err)
	}

	s.logger.Info("teacher updated", "teacher_id", id)
	return existing, nil
}

func (s *teacherService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Teachers().Delete(ctx, id); err != nil {
		if repositories.IsNotFoundError(err) {
			return NewNotFoundError("teacher", id)
		}
		return fmt.Errorf("delete teacher: %w", err)
	}
	s.logger.Info("teacher removed", "teacher_id", id)
	return nil
}

// Toggle flips the enabled flag gating teacher login.
func (s *teacherService) Toggle(ctx context.Context, id string) (*models.Teacher, error) {
	teacher, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	teacher.IsEnabled = !teacher.IsEnabled
	if err := s.repo.Teachers().Update(ctx, *teacher); err != nil {
		return nil, fmt.Errorf("toggle teacher: %w", err)
	}

	if err := s.notification.TeacherToggled(ctx, teacher); err != nil {
		s.logger.Warn("publish teacher toggle event failed", "error", err)
	}

	s.logger.Info("teacher toggled", "teacher_id", id, "enabled", teacher.IsEnabled)
	return teacher, nil
}

// Overview assembles the teacher dashboard: assigned students and the
// teacher's attendance history.
func (s *teacherService) Overview(ctx context.Context, id string) (*TeacherOverview, error) {
	teacher, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	allStudents, err := s.repo.Students().List(ctx)
	if allStudents, err = collectionOrEmpty(s.logger, "students", allStudents, err); err != nil {
		return nil, err
	}
	assigned := []models.Student{}
	for _, student := range allStudents {
		for _, tid := range student.AssignedTeachers {
			if tid == teacher.ID {
				assigned = append(assigned, student)
				break
			}
		}
	}

	attendance, err := s.repo.Attendance().ListByTeacher(ctx, teacher.ID)
	if attendance, err = collectionOrEmpty(s.logger, "attendance", attendance, err); err != nil {
		return nil, err
	}

	held := 0
	for _, rec := range attendance {
		if rec.Status == models.AttendanceHeld {
			held++
		}
	}

	return &TeacherOverview{
		Teacher:     *teacher,
		Students:    assigned,
		Attendance:  attendance,
		ClassesHeld: held,
	}, nil
}

func toWeeklySlots(reqs []validator.WeeklySlotRequest) []models.WeeklySlot {
	slots := make([]models.WeeklySlot, 0, len(reqs))
	for _, r := range reqs {
		slots = append(slots, models.WeeklySlot{Day: r.Day, StartTime: r.StartTime, EndTime: r.EndTime})
	}
	return slots
}

func avatarURL(name string) string {
	return "https://api.dicebear.com/7.x/avataaars/svg?seed=" + url.QueryEscape(name)
}
