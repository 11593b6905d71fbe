package models

import "time"

// Session is the single current authenticated identity. At most one exists
// at any time; creating a new one overwrites the previous unconditionally.
type Session struct {
	UserID      string      `json:"userId"`
	Role        Role        `json:"role"`
	Name        string      `json:"name"`
	Phone       string      `json:"phone"`
	LoginMethod LoginMethod `json:"loginMethod"`
	LoginTime   time.Time   `json:"loginTime"`
}

// HasRole reports whether the session role is in the allowed set.
func (s Session) HasRole(allowed ...Role) bool {
	for _, r := range allowed {
		if s.Role == r {
			return true
		}
	}
	return false
}

// OTPRecord is a pending one-time code for a (phone, role) pair. At most
// one live record exists per pair; issuing a new code replaces any prior
// record. A record past ExpiresAt is treated as absent.
type OTPRecord struct {
	Phone     string    `json:"phone"`
	OTP       string    `json:"otp"`
	ExpiresAt time.Time `json:"expiresAt"`
	Role      Role      `json:"role"`
}

// Expired reports whether the code's validity window has passed.
func (r OTPRecord) Expired(now time.Time) bool {
	return now.After(r.ExpiresAt)
}
