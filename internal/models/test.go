package models

type TestResult struct {
	StudentID       string  `json:"studentId"`
	MarksObtained   float64 `json:"marksObtained"`
	Percentage      float64 `json:"percentage"`
	Grade           string  `json:"grade"`
	Comments        string  `json:"comments,omitempty"`
	CheckedSheetURL string  `json:"checkedSheetUrl,omitempty"`
}

// Test is externally populated (seed data); there is no creation flow.
type Test struct {
	ID               string       `json:"id"`
	Title            string       `json:"title"`
	Class            string       `json:"class"`
	Subject          string       `json:"subject"`
	Date             string       `json:"date"` // YYYY-MM-DD
	MaxMarks         int          `json:"maxMarks"`
	TeacherID        string       `json:"teacherId"`
	QuestionPaperURL string       `json:"questionPaperUrl,omitempty"`
	Results          []TestResult `json:"results"`
}
