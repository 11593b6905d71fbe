package models

type AttendanceStatus string

const (
	AttendanceHeld      AttendanceStatus = "held"
	AttendanceCancelled AttendanceStatus = "cancelled"
)

type PresenceStatus string

const (
	PresencePresent PresenceStatus = "present"
	PresenceAbsent  PresenceStatus = "absent"
)

type StudentMark struct {
	StudentID string         `json:"studentId"`
	Status    PresenceStatus `json:"status"`
}

// AttendanceRecord is one class sitting taken by a teacher. Cancelled
// sittings carry no per-student marks and are excluded from percentages.
type AttendanceRecord struct {
	ID        string           `json:"id"`
	TeacherID string           `json:"teacherId"`
	Date      string           `json:"date"` // YYYY-MM-DD
	Status    AttendanceStatus `json:"status"`
	Students  []StudentMark    `json:"students"`
}

// HasMark reports whether the sitting recorded a mark for the student.
func (r AttendanceRecord) HasMark(studentID string) bool {
	for _, mark := range r.Students {
		if mark.StudentID == studentID {
			return true
		}
	}
	return false
}
