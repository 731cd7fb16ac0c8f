package formatter

import (
	"testing"

	"github.com/dmfalcao/classlog/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatOpenSessions_RendersRows(t *testing.T) {
	sessions := []*domain.Session{
		{
			Key:        "MATH101-1709280000000",
			ActivityID: "MATH101",
			Subject:    "Mathematics",
			Date:       "01/03/2024",
			StartTime:  "08:00",
			Status:     domain.SessionOpen,
		},
		{
			Key:        "PHYS201-1709283600000",
			ActivityID: "PHYS201",
			Subject:    "Physics",
			Date:       "01/03/2024",
			StartTime:  "09:00",
			Status:     domain.SessionOpen,
		},
	}

	out := FormatOpenSessions("ana@example.com", sessions)
	assert.Contains(t, out, "ana@example.com")
	assert.Contains(t, out, "MATH101-1709280000000")
	assert.Contains(t, out, "PHYS201")
	assert.Contains(t, out, "Em Andamento")
}

func TestFormatOpenSessions_Empty(t *testing.T) {
	out := FormatOpenSessions("ana@example.com", nil)
	assert.Contains(t, out, "No open sessions.")
}

func TestFormatClosedSession(t *testing.T) {
	s := &domain.Session{
		Key:       "MATH101-1709280000000",
		StartTime: "08:00",
		EndTime:   "09:30",
		Status:    domain.SessionClosed,
		Duration:  "1.50",
	}

	out := FormatClosedSession(s)
	assert.Contains(t, out, "MATH101-1709280000000")
	assert.Contains(t, out, "1h 30m")
	assert.Contains(t, out, "Concluído")
}

func TestFormatClosedSession_FallsBackToStoredDuration(t *testing.T) {
	s := &domain.Session{
		Key:      "MATH101-1709280000000",
		EndTime:  "09:30",
		Status:   domain.SessionClosed,
		Duration: "1.50",
	}

	out := FormatClosedSession(s)
	assert.Contains(t, out, "1.50")
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable(
		[]string{"KEY", "ACTIVITY"},
		[][]string{
			{"short", "MATH101"},
			{"a-much-longer-key", "PHYS201"},
		},
	)

	assert.Contains(t, out, "KEY")
	assert.Contains(t, out, "a-much-longer-key")
	assert.Contains(t, out, "─")
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, nil))
}
