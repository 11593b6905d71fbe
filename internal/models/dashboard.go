package models

type DashboardStats struct {
	TotalStudents     int `json:"totalStudents"`
	TotalTeachers     int `json:"totalTeachers"`
	PendingPayments   int `json:"pendingPayments"`
	UpcomingTests     int `json:"upcomingTests"`
	AverageAttendance int `json:"averageAttendance"`
}
