package services

import (
	"math"

	"github.com/raja-bazar/makhtab-admin-service/internal/models"
)

// GradeFor maps a test percentage onto the letter scale used across
// report cards and overviews.
func GradeFor(percentage float64) string {
	switch {
	case percentage >= 90:
		return "A+"
	case percentage >= 85:
		return "A"
	case percentage >= 80:
		return "A-"
	case percentage >= 75:
		return "B+"
	case percentage >= 70:
		return "B"
	case percentage >= 65:
		return "B-"
	case percentage >= 60:
		return "C+"
	case percentage >= 55:
		return "C"
	case percentage >= 50:
		return "C-"
	default:
		return "F"
	}
}

// AttendancePercentage computes a student's presence rate across held
// sittings only. A student with no held sittings scores 0, not an error.
func AttendancePercentage(records []models.AttendanceRecord, studentID string) int {
	held, present := 0, 0
	for _, record := range records {
		if record.Status != models.AttendanceHeld {
			continue
		}
		for _, mark := range record.Students {
			if mark.StudentID != studentID {
				continue
			}
			held++
			if mark.Status == models.PresencePresent {
				present++
			}
		}
	}
	if held == 0 {
		return 0
	}
	return int(math.Round(100 * float64(present) / float64(held)))
}

// OverallAttendance is the admin dashboard figure: present marks over all
// marks across held sittings, regardless of student.
func OverallAttendance(records []models.AttendanceRecord) int {
	total, present := 0, 0
	for _, record := range records {
		if record.Status != models.AttendanceHeld {
			continue
		}
		for _, mark := range record.Students {
			total++
			if mark.Status == models.PresencePresent {
				present++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(present) / float64(total)))
}
