package models

type NotificationType string

const (
	NotificationNoticePublished  NotificationType = "notice_published"
	NotificationPaymentSubmitted NotificationType = "payment_submitted"
	NotificationPaymentVerified  NotificationType = "payment_verified"
	NotificationTeacherToggled   NotificationType = "teacher_toggled"
	NotificationUserLoggedIn     NotificationType = "user_logged_in"
)

type NotificationPriority string

const (
	PriorityLow    NotificationPriority = "low"
	PriorityNormal NotificationPriority = "normal"
	PriorityHigh   NotificationPriority = "high"
)
