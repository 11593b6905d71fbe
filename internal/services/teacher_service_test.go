package services

import (
	"context"
	"testing"

	"github.com/raja-bazar/makhtab-admin-service/internal/models"
	"github.com/raja-bazar/makhtab-admin-service/internal/store"
)

func newTestTeacherService(t *testing.T, env *testEnv) TeacherService {
	t.Helper()
	return NewTeacherService(env.repo, env.notifications(), env.logger, env.validator)
}

func TestTeacherService_Create(t *testing.T) {
	env := newTestEnv(t)
	svc := newTestTeacherService(t, env)
	ctx := context.Background()

	teacher, err := svc.Create(ctx, &CreateTeacherRequest{
		Name:     "Maulana Rahman",
		Email:    "rahman@rajabazar.edu",
		Contact:  "9876543210",
		Subjects: []string{"Quran", "Tajweed"},
		WeeklyAvailability: []WeeklySlotRequest{
			{Day: 1, StartTime: "08:00", EndTime: "10:00"},
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if !teacher.IsEnabled {
		t.Fatal("new teachers start enabled")
	}
	if teacher.Photo == "" {
		t.Fatal("expected generated avatar url")
	}
	if len(teacher.WeeklyAvailability) != 1 || teacher.WeeklyAvailability[0].StartTime != "08:00" {
		t.Fatalf("unexpected availability: %+v", teacher.WeeklyAvailability)
	}
}

func TestTeacherService_CreateValidation(t *testing.T) {
	env := newTestEnv(t)
	svc := newTestTeacherService(t, env)
	ctx := context.Background()

	cases := []CreateTeacherRequest{
		{Name: ""},
		{Name: "Rahman", Email: "not-an-email"},
		{Name: "Rahman", WeeklyAvailability: []WeeklySlotRequest{{Day: 1, StartTime: "25:00", EndTime: "10:00"}}},
		{Name: "Rahman", WeeklyAvailability: []WeeklySlotRequest{{Day: 9, StartTime: "08:00", EndTime: "10:00"}}},
	}
	for _, req := range cases {
		if _, err := svc.Create(ctx, &req); !IsValidationError(err) {
			t.Fatalf("expected validation error for %+v, got %v", req, err)
		}
	}
}

func TestTeacherService_Toggle(t *testing.T) {
	env := newTestEnv(t)
	svc := newTestTeacherService(t, env)
	ctx := context.Background()

	teacher, err := svc.Create(ctx, &CreateTeacherRequest{Name: "Qari Zubair"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	env.publisher.Reset()

	toggled, err := svc.Toggle(ctx, teacher.ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if toggled.IsEnabled {
		t.Fatal("toggle should disable an enabled teacher")
	}

	published := env.publisher.GetPublishedEvents()
	if len(published) != 1 || published[0].Type != models.NotificationTeacherToggled {
		t.Fatalf("expected teacher toggled event, got %+v", published)
	}

	toggled, err = svc.Toggle(ctx, teacher.ID)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if !toggled.IsEnabled {
		t.Fatal("second toggle should re-enable")
	}
}

func TestTeacherService_Overview(t *testing.T) {
	env := newTestEnv(t)
	svc := newTestTeacherService(t, env)
	ctx := context.Background()

	if err := env.repo.Teachers().Create(ctx, models.Teacher{ID: "t1", Name: "Rahman", IsEnabled: true}); err != nil {
		t.Fatalf("seed teacher: %v", err)
	}
	for _, s := range []models.Student{
		{ID: "s16", Name: "Omar", Class: "Nazra-1", AssignedTeachers: []string{"t1", "t10"}},
		{ID: "s17", Name: "Amina", Class: "Nazra-1", AssignedTeachers: []string{"t10"}},
		{ID: "s22", Name: "Salman", Class: "Hifz-1", AssignedTeachers: []string{"t1", "t4"}},
	} {
		if err := env.repo.Students().Create(ctx, s); err != nil {
			t.Fatalf("seed student: %v", err)
		}
	}
	attendance := []models.AttendanceRecord{
		{ID: "att1", TeacherID: "t1", Status: models.AttendanceHeld},
		{ID: "att2", TeacherID: "t1", Status: models.AttendanceCancelled},
		{ID: "att3", TeacherID: "t2", Status: models.AttendanceHeld},
	}
	if err := env.store.Save(ctx, store.CollectionAttendance, attendance); err != nil {
		t.Fatalf("seed attendance: %v", err)
	}

	overview, err := svc.Overview(ctx, "t1")
	if err != nil {
		t.Fatalf("overview: %v", err)
	}

	if len(overview.Students) != 2 {
		t.Fatalf("expected 2 assigned students, got %d", len(overview.Students))
	}
	if len(overview.Attendance) != 2 {
		t.Fatalf("expected 2 own sittings, got %d", len(overview.Attendance))
	}
	if overview.ClassesHeld != 1 {
		t.Fatalf("cancelled sittings do not count as held, got %d", overview.ClassesHeld)
	}
}

func TestTeacherService_OverviewCorruptCollection(t *testing.T) {
	env := newTestEnv(t)
	svc := newTestTeacherService(t, env)
	ctx := context.Background()

	if err := env.repo.Teachers().Create(ctx, models.Teacher{ID: "t1", Name: "Rahman", IsEnabled: true}); err != nil {
		t.Fatalf("seed teacher: %v", err)
	}
	if err := env.store.Save(ctx, store.CollectionStudents, map[string]string{"not": "an array"}); err != nil {
		t.Fatalf("plant corrupt payload: %v", err)
	}

	overview, err := svc.Overview(ctx, "t1")
	if err != nil {
		t.Fatalf("overview over corrupt students: %v", err)
	}
	if len(overview.Students) != 0 {
		t.Fatalf("corrupt students must read as empty, got %+v", overview.Students)
	}
}
