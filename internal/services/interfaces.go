package services

import (
	"context"
	"time"

	"github.com/raja-bazar/makhtab-admin-service/internal/models"
	"github.com/raja-bazar/makhtab-admin-service/internal/validator"
)

// ===== REQUEST/RESPONSE DTOs =====

// Use request validator types
type SendOTPRequest = validator.SendOTPRequest
type VerifyOTPRequest = validator.VerifyOTPRequest
type AdminLoginRequest = validator.AdminLoginRequest
type TeacherLoginRequest = validator.TeacherLoginRequest
type DemoLoginRequest = validator.DemoLoginRequest
type CreateStudentRequest = validator.StudentCreateRequest
type UpdateStudentRequest = validator.StudentUpdateRequest
type CreateTeacherRequest = validator.TeacherCreateRequest
type UpdateTeacherRequest = validator.TeacherUpdateRequest
type WeeklySlotRequest = validator.WeeklySlotRequest
type CreateNoticeRequest = validator.NoticeCreateRequest
type CreatePaymentRequest = validator.PaymentCreateRequest

type SendOTPResponse struct {
	Phone     string      `json:"phone"`
	Role      models.Role `json:"role"`
	ExpiresAt time.Time   `json:"expiresAt"`
	// DemoCode echoes the generated code when demo mode is enabled, so the
	// flow works without an SMS provider.
	DemoCode string `json:"demoCode,omitempty"`
}

type NoticeFilter struct {
	Type  *models.NoticeType
	Class string
}

type StudentOverview struct {
	Student              models.Student            `json:"student"`
	Tests                []models.Test             `json:"tests"`
	AttendancePercentage int                       `json:"attendancePercentage"`
	Notices              []models.Notice           `json:"notices"`
	Attendance           []models.AttendanceRecord `json:"attendance"`
}

type TeacherOverview struct {
	Teacher     models.Teacher            `json:"teacher"`
	Students    []models.Student          `json:"students"`
	Attendance  []models.AttendanceRecord `json:"attendance"`
	ClassesHeld int                       `json:"classesHeld"`
}

// ExportTable is the shaped row data handed to CSV/XLSX encoders: a stable
// column order with stringified cell values.
type ExportTable struct {
	Headers []string
	Rows    [][]string
}

// ===== SERVICE INTERFACES =====

// OTPService issues and verifies time-boxed one-time codes per
// (phone, role) pair.
type OTPService interface {
	Issue(ctx context.Context, phone string, role models.Role) (*models.OTPRecord, error)
	Verify(ctx context.Context, phone, code string, role models.Role) (bool, error)
	DemoModeEnabled(ctx context.Context) (bool, error)
	ToggleDemoMode(ctx context.Context) (bool, error)
}

// SessionService manages the single active session record.
type SessionService interface {
	Create(ctx context.Context, userID string, role models.Role, name, phone string, method models.LoginMethod) (*models.Session, error)
	Get(ctx context.Context) (*models.Session, error)
	Clear(ctx context.Context) error
	IsAuthenticated(ctx context.Context) (bool, error)
	HasRole(ctx context.Context, allowed ...models.Role) (bool, error)
}

type AuthService interface {
	SendOTP(ctx context.Context, req *SendOTPRequest) (*SendOTPResponse, error)
	VerifyOTPLogin(ctx context.Context, req *VerifyOTPRequest) (*models.Session, error)
	AdminLogin(ctx context.Context, req *AdminLoginRequest) (*models.Session, error)
	TeacherLogin(ctx context.Context, req *TeacherLoginRequest) (*models.Session, error)
	DemoLogin(ctx context.Context, req *DemoLoginRequest) (*models.Session, error)
	Logout(ctx context.Context) error
}

// SeedService populates empty collections with the built-in demo dataset
// and applies the ordered schema migrations.
type SeedService interface {
	EnsureSeeded(ctx context.Context) error
	Migrate(ctx context.Context) error
}

type StudentService interface {
	List(ctx context.Context) ([]models.Student, error)
	Get(ctx context.Context, id string) (*models.Student, error)
	GetByGuardianPhone(ctx context.Context, phone string) (*models.Student, error)
	Create(ctx context.Context, req *CreateStudentRequest) (*models.Student, error)
	Update(ctx context.Context, id string, req *UpdateStudentRequest) (*models.Student, error)
	Delete(ctx context.Context, id string) error
	Overview(ctx context.Context, id string) (*StudentOverview, error)
}

type TeacherService interface {
	List(ctx context.Context) ([]models.Teacher, error)
	Get(ctx context.Context, id string) (*models.Teacher, error)
	Create(ctx context.Context, req *CreateTeacherRequest) (*models.Teacher, error)
	Update(ctx context.Context, id string, req *UpdateTeacherRequest) (*models.Teacher, error)
	Delete(ctx context.Context, id string) error
	Toggle(ctx context.Context, id string) (*models.Teacher, error)
	Overview(ctx context.Context, id string) (*TeacherOverview, error)
}

type NoticeService interface {
	Create(ctx context.Context, req *CreateNoticeRequest, createdBy string) (*models.Notice, error)
	ListActive(ctx context.Context, filter NoticeFilter) ([]models.Notice, error)
	Delete(ctx context.Context, id string) error
}

type PaymentService interface {
	Submit(ctx context.Context, req *CreatePaymentRequest, payer *models.Session) (*models.Payment, error)
	List(ctx context.Context) ([]models.Payment, error)
	Verify(ctx context.Context, id, verifiedBy string) (*models.Payment, error)
}

type DashboardService interface {
	Stats(ctx context.Context) (*models.DashboardStats, error)
}

type ExportService interface {
	Students(ctx context.Context) (*ExportTable, error)
	Payments(ctx context.Context) (*ExportTable, error)
	EncodeCSV(table *ExportTable) ([]byte, error)
	EncodeXLSX(table *ExportTable) ([]byte, error)
}

// NotificationEventService publishes domain events for external consumers.
type NotificationEventService interface {
	NoticePublished(ctx context.Context, notice *models.Notice) error
	PaymentSubmitted(ctx context.Context, payment *models.Payment) error
	PaymentVerified(ctx context.Context, payment *models.Payment) error
	TeacherToggled(ctx context.Context, teacher *models.Teacher) error
	UserLoggedIn(ctx context.Context, session *models.Session) error
}

type ServiceManager interface {
	OTP() OTPService
	Session() SessionService
	Auth() AuthService
	Seed() SeedService
	Student() StudentService
	Teacher() TeacherService
	Notice() NoticeService
	Payment() PaymentService
	Dashboard() DashboardService
	Export() ExportService
	Notification() NotificationEventService

	Initialize(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
