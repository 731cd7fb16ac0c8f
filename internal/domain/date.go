package domain

import (
	"fmt"
	"regexp"
	"time"
)

// CalendarDateLayout is the storage format for session dates.
const CalendarDateLayout = "02/01/2006"

var calendarDatePattern = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)

// ValidateCalendarDate checks that s is a real date in DD/MM/YYYY form.
func ValidateCalendarDate(s string) error {
	if !calendarDatePattern.MatchString(s) {
		return fmt.Errorf("%w: date %q must match DD/MM/YYYY", ErrValidation, s)
	}
	if _, err := time.Parse(CalendarDateLayout, s); err != nil {
		return fmt.Errorf("%w: date %q is not a valid calendar date", ErrValidation, s)
	}
	return nil
}

// FormatCalendarDate renders t in the session date storage format.
func FormatCalendarDate(t time.Time) string {
	return t.Format(CalendarDateLayout)
}
