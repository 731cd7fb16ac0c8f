package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// RosterSchema is the top-level JSON structure for account roster import.
type RosterSchema struct {
	Users []UserImport `json:"users"`
}

// UserImport defines one account in the roster file.
type UserImport struct {
	Email    string                `json:"email"`
	Name     string                `json:"name"`
	Password string                `json:"password"`
	Schedule []ScheduleEntryImport `json:"schedule,omitempty"`
}

// ScheduleEntryImport defines one recurring timetable slot for an account.
type ScheduleEntryImport struct {
	Name    string `json:"name"`
	Weekday string `json:"weekday"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

// LoadRosterFile reads and parses a roster JSON file from disk.
func LoadRosterFile(path string) (*RosterSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading roster file: %w", err)
	}

	var schema RosterSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing roster file: %w", err)
	}

	return &schema, nil
}
