package models

// Student is an enrolled pupil. AssignedTeachers holds teacher IDs as weak
// references; the store does not enforce referential integrity.
type Student struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Class            string   `json:"class"`
	GuardianPhone    string   `json:"guardianPhone"`
	GuardianName     string   `json:"guardianName"`
	AssignedTeachers []string `json:"assignedTeachers"`
	EnrollmentDate   string   `json:"enrollmentDate"` // YYYY-MM-DD
}
