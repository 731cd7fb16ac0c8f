package domain

import "time"

// UserAccount is the owner identity sessions reference by email. Password
// handling beyond opaque storage belongs to the credential layer.
type UserAccount struct {
	Email    string
	Name     string
	Password string
	Schedule []ScheduleEntry

	CreatedAt time.Time
}

// ScheduleEntry is one recurring activity slot on an account's timetable.
// The lifecycle manager does not re-validate the session/schedule linkage.
type ScheduleEntry struct {
	Name    string
	Weekday string
	Start   string
	End     string
}
