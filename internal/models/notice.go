package models

import "time"

type NoticeType string

const (
	NoticeGeneral       NoticeType = "general"
	NoticeClassSpecific NoticeType = "class-specific"
)

type Notice struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	Type        NoticeType `json:"type"`
	TargetClass string     `json:"targetClass,omitempty"`
	Attachments []string   `json:"attachments,omitempty"`
	ExpiryDate  string     `json:"expiryDate"` // YYYY-MM-DD
	IsPinned    bool       `json:"isPinned"`
	CreatedAt   time.Time  `json:"createdAt"`
	CreatedBy   string     `json:"createdBy"`
}

// Active reports whether the notice has not expired at the given instant.
// A notice with an unparseable expiry date is treated as expired.
func (n Notice) Active(now time.Time) bool {
	expiry, err := time.Parse("2006-01-02", n.ExpiryDate)
	if err != nil {
		return false
	}
	return expiry.After(now)
}

// VisibleTo reports whether the notice targets the given class. General
// notices are visible to everyone; class-specific notices only to their
// target class.
func (n Notice) VisibleTo(class string) bool {
	if n.Type != NoticeClassSpecific {
		return true
	}
	return n.TargetClass == class
}
