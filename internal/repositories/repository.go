package repositories

import (
	"context"
	"errors"

	"github.com/raja-bazar/makhtab-admin-service/internal/models"
)

// ErrNotFound indicates a lookup by identity found no matching record.
var ErrNotFound = errors.New("record not found")

// IsNotFoundError reports whether err is a not-found lookup failure.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

type StudentRepository interface {
	List(ctx context.Context) ([]models.Student, error)
	GetByID(ctx context.Context, id string) (*models.Student, error)
	GetByGuardianPhone(ctx context.Context, phone string) (*models.Student, error)
	Create(ctx context.Context, student models.Student) error
	Update(ctx context.Context, student models.Student) error
	Delete(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, students []models.Student) error
}

type TeacherRepository interface {
	List(ctx context.Context) ([]models.Teacher, error)
	GetByID(ctx context.Context, id string) (*models.Teacher, error)
	GetByEmail(ctx context.Context, email string) (*models.Teacher, error)
	Create(ctx context.Context, teacher models.Teacher) error
	Update(ctx context.Context, teacher models.Teacher) error
	Delete(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, teachers []models.Teacher) error
}

// TestRepository is read-only: tests are seeded, never created here.
type TestRepository interface {
	List(ctx context.Context) ([]models.Test, error)
	ListByClass(ctx context.Context, class string) ([]models.Test, error)
}

// AttendanceRepository is read-only: records are seeded, never created here.
type AttendanceRepository interface {
	List(ctx context.Context) ([]models.AttendanceRecord, error)
	ListByTeacher(ctx context.Context, teacherID string) ([]models.AttendanceRecord, error)
}

type NoticeRepository interface {
	List(ctx context.Context) ([]models.Notice, error)
	Create(ctx context.Context, notice models.Notice) error
	Delete(ctx context.Context, id string) error
}

type PaymentRepository interface {
	List(ctx context.Context) ([]models.Payment, error)
	GetByID(ctx context.Context, id string) (*models.Payment, error)
	Create(ctx context.Context, payment models.Payment) error
	Update(ctx context.Context, payment models.Payment) error
}

// OTPRepository keeps at most one live code per (phone, role) pair.
type OTPRepository interface {
	Get(ctx context.Context, phone string, role models.Role) (*models.OTPRecord, error)
	Put(ctx context.Context, record models.OTPRecord) error
	Delete(ctx context.Context, phone string, role models.Role) error
}

type SessionRepository interface {
	Get(ctx context.Context) (*models.Session, error)
	Set(ctx context.Context, session models.Session) error
	Clear(ctx context.Context) error
}

// FlagRepository holds the scalar store keys: the OTP demo-mode toggle and
// the schema cleanup version consumed by migrations.
type FlagRepository interface {
	OTPDemoMode(ctx context.Context) (bool, error)
	SetOTPDemoMode(ctx context.Context, enabled bool) error
	CleanupVersion(ctx context.Context) (int, error)
	SetCleanupVersion(ctx context.Context, version int) error
}

type Repository interface {
	Students() StudentRepository
	Teachers() TeacherRepository
	Tests() TestRepository
	Attendance() AttendanceRepository
	Notices() NoticeRepository
	Payments() PaymentRepository
	OTP() OTPRepository
	Session() SessionRepository
	Flags() FlagRepository

	Ping(ctx context.Context) error
	Close() error
}
