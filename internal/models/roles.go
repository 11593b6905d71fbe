package models

type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

// OTPRoles are the roles that may authenticate by phone OTP.
var OTPRoles = []Role{RoleStudent, RoleAdmin}

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleAdmin:
		return true
	}
	return false
}

type LoginMethod string

const (
	LoginOTP         LoginMethod = "otp"
	LoginCredentials LoginMethod = "credentials"
	LoginDemo        LoginMethod = "demo"
)
