package models

// WeeklySlot is a recurring availability window. Day is 0 (Sunday) through
// 6 (Saturday); times are HH:MM strings.
type WeeklySlot struct {
	Day       int    `json:"day"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// Teacher can sign in with email plus the shared teacher password, but only
// while IsEnabled is true.
type Teacher struct {
	ID                 string       `json:"id"`
	Name               string       `json:"name"`
	Photo              string       `json:"photo,omitempty"`
	Subjects           []string     `json:"subjects"`
	Contact            string       `json:"contact"`
	Email              string       `json:"email,omitempty"`
	WeeklyAvailability []WeeklySlot `json:"weeklyAvailability"`
	IsEnabled          bool         `json:"isEnabled"`
}
