package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// TimeOfDay is a wall-clock point expressed as minutes since midnight.
type TimeOfDay int

var timeOfDayPattern = regexp.MustCompile(`^(\d{2}):(\d{2})(?::(\d{2}))?$`)

// ParseTimeOfDay parses a zero-padded 24-hour "HH:MM" string. A trailing
// ":SS" component is accepted and validated but does not contribute to the
// resulting value; sessions are tracked at minute granularity.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	m := timeOfDayPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%w: time %q must match HH:MM", ErrValidation, s)
	}
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	if hours > 23 {
		return 0, fmt.Errorf("%w: hour %02d out of range", ErrValidation, hours)
	}
	if minutes > 59 {
		return 0, fmt.Errorf("%w: minute %02d out of range", ErrValidation, minutes)
	}
	if m[3] != "" {
		seconds, _ := strconv.Atoi(m[3])
		if seconds > 59 {
			return 0, fmt.Errorf("%w: second %02d out of range", ErrValidation, seconds)
		}
	}
	return TimeOfDay(hours*60 + minutes), nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// Elapsed returns the wall-clock span between two points on the same
// calendar day. Sessions never span midnight, so an end before the start is
// a validation failure rather than a wrap-around.
func Elapsed(start, end TimeOfDay) (time.Duration, error) {
	if end < start {
		return 0, fmt.Errorf("%w: end time %s precedes start time %s", ErrValidation, end, start)
	}
	return time.Duration(end-start) * time.Minute, nil
}

// ElapsedStrings is Elapsed over raw "HH:MM" strings, parsing both ends.
func ElapsedStrings(start, end string) (time.Duration, error) {
	s, err := ParseTimeOfDay(start)
	if err != nil {
		return 0, err
	}
	e, err := ParseTimeOfDay(end)
	if err != nil {
		return 0, err
	}
	return Elapsed(s, e)
}

// FormatVerbose renders a duration as "H Horas e M Minutos".
func FormatVerbose(d time.Duration) string {
	total := int(d.Minutes())
	return fmt.Sprintf("%d Horas e %d Minutos", total/60, total%60)
}

// FormatCompact renders a duration as "Hh Mm".
func FormatCompact(d time.Duration) string {
	total := int(d.Minutes())
	return fmt.Sprintf("%dh %dm", total/60, total%60)
}

// FormatDecimalHours renders a duration in decimal hours with two fixed
// decimal places, the form persisted on closed sessions (90 min -> "1.50").
func FormatDecimalHours(d time.Duration) string {
	return fmt.Sprintf("%.2f", d.Minutes()/60)
}
