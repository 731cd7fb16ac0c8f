package domain

import (
	"fmt"
	"time"
)

// Session is one open/close attendance record for an activity occurrence.
// Descriptive fields are immutable after creation; EndTime, Status and
// Duration change exactly once, when the session is closed.
type Session struct {
	Key        string
	ActivityID string
	OwnerEmail string
	Subject    string
	Weekday    string

	// Date is the calendar date the session pertains to, DD/MM/YYYY.
	Date      string
	StartTime string
	EndTime   string
	Status    SessionStatus

	// Duration is derived at close: decimal hours with two decimals.
	// Empty while the session is open.
	Duration string

	CreatedAt time.Time
}

// SessionKey builds the composite session identifier from the activity and
// the creation instant. Keys embed epoch millis, so two sessions for the
// same activity opened at different instants never collide.
func SessionKey(activityID string, createdAt time.Time) string {
	return fmt.Sprintf("%s-%d", activityID, createdAt.UnixMilli())
}

// IsOpen reports whether the session is still awaiting a close.
func (s *Session) IsOpen() bool {
	return s.Status == SessionOpen
}

// Close transitions the session to its terminal state, computing the stored
// duration from the start and end times. The caller persists the result.
func (s *Session) Close(endTime string) error {
	if !s.IsOpen() {
		return fmt.Errorf("session %s: %w", s.Key, ErrSessionClosed)
	}
	if s.StartTime == "" {
		return fmt.Errorf("%w: session %s has no start time", ErrValidation, s.Key)
	}
	elapsed, err := ElapsedStrings(s.StartTime, endTime)
	if err != nil {
		return err
	}
	s.EndTime = endTime
	s.Duration = FormatDecimalHours(elapsed)
	s.Status = SessionClosed
	return nil
}
