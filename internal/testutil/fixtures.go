package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/dmfalcao/classlog/internal/domain"
)

var testKeyCounter atomic.Int64

// Session options
type SessionOption func(*domain.Session)

func WithOwner(email string) SessionOption {
	return func(s *domain.Session) {
		s.OwnerEmail = email
	}
}

func WithDate(date string) SessionOption {
	return func(s *domain.Session) {
		s.Date = date
	}
}

func WithStartTime(hhmm string) SessionOption {
	return func(s *domain.Session) {
		s.StartTime = hhmm
	}
}

func WithClosed(endTime, duration string) SessionOption {
	return func(s *domain.Session) {
		s.EndTime = endTime
		s.Duration = duration
		s.Status = domain.SessionClosed
	}
}

func WithCreatedAt(t time.Time) SessionOption {
	return func(s *domain.Session) {
		s.CreatedAt = t
		s.Key = domain.SessionKey(s.ActivityID, t)
	}
}

// NewTestSession builds an open session for the given activity. Keys get a
// per-process counter mixed into the creation instant so fixtures created
// within the same millisecond never collide.
func NewTestSession(activityID string, opts ...SessionOption) *domain.Session {
	createdAt := time.Now().UTC().Add(time.Duration(testKeyCounter.Add(1)) * time.Millisecond)
	s := &domain.Session{
		Key:        domain.SessionKey(activityID, createdAt),
		ActivityID: activityID,
		OwnerEmail: "student@example.com",
		Subject:    "Mathematics",
		Weekday:    "Mon",
		Date:       domain.FormatCalendarDate(createdAt),
		StartTime:  "08:00",
		Status:     domain.SessionOpen,
		CreatedAt:  createdAt,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// User options
type UserOption func(*domain.UserAccount)

func WithName(name string) UserOption {
	return func(u *domain.UserAccount) {
		u.Name = name
	}
}

func WithPassword(password string) UserOption {
	return func(u *domain.UserAccount) {
		u.Password = password
	}
}

func WithSchedule(entries ...domain.ScheduleEntry) UserOption {
	return func(u *domain.UserAccount) {
		u.Schedule = entries
	}
}

func NewTestUser(email string, opts ...UserOption) *domain.UserAccount {
	u := &domain.UserAccount{
		Email:     email,
		Name:      fmt.Sprintf("User %s", email),
		Password:  "secret",
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}
