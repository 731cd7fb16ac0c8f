package importer

import (
	"fmt"
	"strings"

	"github.com/dmfalcao/classlog/internal/domain"
)

var validWeekdays = map[string]bool{
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
}

// ValidateRoster checks the roster schema for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateRoster(schema *RosterSchema) []error {
	var errs []error

	if len(schema.Users) == 0 {
		errs = append(errs, fmt.Errorf("roster has no users"))
	}

	seen := make(map[string]bool)
	for i, u := range schema.Users {
		errs = append(errs, validateUser(i, &u, seen)...)
	}

	return errs
}

func validateUser(i int, u *UserImport, seen map[string]bool) []error {
	var errs []error

	if u.Email == "" {
		errs = append(errs, fmt.Errorf("users[%d].email is required", i))
	} else {
		if !strings.Contains(u.Email, "@") {
			errs = append(errs, fmt.Errorf("users[%d].email: invalid address %q", i, u.Email))
		}
		key := strings.ToLower(u.Email)
		if seen[key] {
			errs = append(errs, fmt.Errorf("users[%d].email: duplicate address %q", i, u.Email))
		}
		seen[key] = true
	}
	if u.Name == "" {
		errs = append(errs, fmt.Errorf("users[%d].name is required", i))
	}
	if u.Password == "" {
		errs = append(errs, fmt.Errorf("users[%d].password is required", i))
	}

	for j, e := range u.Schedule {
		errs = append(errs, validateScheduleEntry(i, j, &e)...)
	}

	return errs
}

func validateScheduleEntry(i, j int, e *ScheduleEntryImport) []error {
	var errs []error

	if e.Name == "" {
		errs = append(errs, fmt.Errorf("users[%d].schedule[%d].name is required", i, j))
	}
	if !validWeekdays[strings.ToLower(e.Weekday)] {
		errs = append(errs, fmt.Errorf("users[%d].schedule[%d].weekday: invalid weekday %q", i, j, e.Weekday))
	}

	start, startErr := domain.ParseTimeOfDay(e.Start)
	if startErr != nil {
		errs = append(errs, fmt.Errorf("users[%d].schedule[%d].start: %v", i, j, startErr))
	}
	end, endErr := domain.ParseTimeOfDay(e.End)
	if endErr != nil {
		errs = append(errs, fmt.Errorf("users[%d].schedule[%d].end: %v", i, j, endErr))
	}
	if startErr == nil && endErr == nil {
		if _, err := domain.Elapsed(start, end); err != nil {
			errs = append(errs, fmt.Errorf("users[%d].schedule[%d]: end %q must not precede start %q", i, j, e.End, e.Start))
		}
	}

	return errs
}
