package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert_MinimalRoster(t *testing.T) {
	accounts := Convert(validMinimalRoster())

	require.Len(t, accounts, 1)
	assert.Equal(t, "ana@example.com", accounts[0].Email)
	assert.Equal(t, "Ana", accounts[0].Name)
	assert.Equal(t, "secret", accounts[0].Password)
	assert.Empty(t, accounts[0].Schedule)
	assert.False(t, accounts[0].CreatedAt.IsZero())
}

func TestConvert_NormalizesEmailAndWeekday(t *testing.T) {
	schema := &RosterSchema{
		Users: []UserImport{
			{
				Email:    "Ana@Example.COM",
				Name:     "Ana",
				Password: "secret",
				Schedule: []ScheduleEntryImport{
					{Name: "MATH101", Weekday: "Monday", Start: "08:00", End: "09:30"},
				},
			},
		},
	}

	accounts := Convert(schema)

	require.Len(t, accounts, 1)
	assert.Equal(t, "ana@example.com", accounts[0].Email)
	require.Len(t, accounts[0].Schedule, 1)
	entry := accounts[0].Schedule[0]
	assert.Equal(t, "MATH101", entry.Name)
	assert.Equal(t, "monday", entry.Weekday)
	assert.Equal(t, "08:00", entry.Start)
	assert.Equal(t, "09:30", entry.End)
}

func TestConvert_PreservesRosterOrder(t *testing.T) {
	schema := &RosterSchema{
		Users: []UserImport{
			{Email: "bruno@example.com", Name: "Bruno", Password: "pw"},
			{Email: "ana@example.com", Name: "Ana", Password: "pw"},
		},
	}

	accounts := Convert(schema)

	require.Len(t, accounts, 2)
	assert.Equal(t, "bruno@example.com", accounts[0].Email)
	assert.Equal(t, "ana@example.com", accounts[1].Email)
}
