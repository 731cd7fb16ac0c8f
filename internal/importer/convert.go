package importer

import (
	"strings"
	"time"

	"github.com/dmfalcao/classlog/internal/domain"
)

// Convert transforms a validated RosterSchema into account records ready for
// persistence. Call ValidateRoster first; Convert assumes the schema is valid.
func Convert(schema *RosterSchema) []*domain.UserAccount {
	now := time.Now().UTC()

	accounts := make([]*domain.UserAccount, 0, len(schema.Users))
	for _, u := range schema.Users {
		account := &domain.UserAccount{
			Email:     strings.ToLower(u.Email),
			Name:      u.Name,
			Password:  u.Password,
			CreatedAt: now,
		}

		for _, e := range u.Schedule {
			account.Schedule = append(account.Schedule, domain.ScheduleEntry{
				Name:    e.Name,
				Weekday: strings.ToLower(e.Weekday),
				Start:   e.Start,
				End:     e.End,
			})
		}

		accounts = append(accounts, account)
	}

	return accounts
}
