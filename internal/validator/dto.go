package validator

import "github.com/raja-bazar/makhtab-admin-service/internal/models"

// ===== AUTH REQUESTS =====

type SendOTPRequest struct {
	Phone string      `json:"phone" validate:"required,indian_phone"`
	Role  models.Role `json:"role" validate:"required,otp_role"`
}

type VerifyOTPRequest struct {
	Phone string      `json:"phone" validate:"required,indian_phone"`
	Code  string      `json:"code" validate:"required,len=6,numeric"`
	Role  models.Role `json:"role" validate:"required,otp_role"`
}

type AdminLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type TeacherLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type DemoLoginRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Phone string `json:"phone" validate:"required,indian_phone"`
}

// ===== ADMIN CRUD REQUESTS =====

type StudentCreateRequest struct {
	Name             string   `json:"name" validate:"required,max=100"`
	Class            string   `json:"class" validate:"required,max=50"`
	GuardianName     string   `json:"guardianName" validate:"max=100"`
	GuardianPhone    string   `json:"guardianPhone" validate:"omitempty,indian_phone"`
	AssignedTeachers []string `json:"assignedTeachers"`
}

// StudentUpdateRequest carries the same required fields as creation; the
// admin form always submits the full record.
type StudentUpdateRequest = StudentCreateRequest

type WeeklySlotRequest struct {
	Day       int    `json:"day" validate:"min=0,max=6"`
	StartTime string `json:"startTime" validate:"required,hhmm_time"`
	EndTime   string `json:"endTime" validate:"required,hhmm_time"`
}

type TeacherCreateRequest struct {
	Name               string              `json:"name" validate:"required,max=100"`
	Email              string              `json:"email" validate:"omitempty,email"`
	Contact            string              `json:"contact" validate:"omitempty,indian_phone"`
	Subjects           []string            `json:"subjects"`
	WeeklyAvailability []WeeklySlotRequest `json:"weeklyAvailability" validate:"dive"`
}

type TeacherUpdateRequest = TeacherCreateRequest

type NoticeCreateRequest struct {
	Title       string            `json:"title" validate:"required,max=200"`
	Content     string            `json:"content" validate:"required,max=2000"`
	Type        models.NoticeType `json:"type" validate:"required,oneof=general class-specific"`
	TargetClass string            `json:"targetClass" validate:"required_if=Type class-specific,max=50"`
	ExpiryDate  string            `json:"expiryDate" validate:"required,date_ymd"`
	IsPinned    bool              `json:"isPinned"`
}

type PaymentCreateRequest struct {
	StudentName     string  `json:"studentName" validate:"required,max=100"`
	Class           string  `json:"class" validate:"required,max=50"`
	Amount          float64 `json:"amount" validate:"required,gt=0"`
	Method          string  `json:"method" validate:"omitempty,max=50"`
	TransactionNote string  `json:"transactionNote" validate:"max=500"`
}
