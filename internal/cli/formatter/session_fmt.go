package formatter

import (
	"fmt"
	"strings"

	"github.com/dmfalcao/classlog/internal/domain"
)

// FormatOpenSessions renders the open-session table shown by
// `classlog sessions list`.
func FormatOpenSessions(owner string, sessions []*domain.Session) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Open sessions — %s", owner)))
	b.WriteString("\n")

	if len(sessions) == 0 {
		b.WriteString(Dim("No open sessions.") + "\n")
		return b.String()
	}

	headers := []string{"KEY", "ACTIVITY", "SUBJECT", "DATE", "START", "STATUS"}
	rows := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		rows = append(rows, []string{
			Dim(s.Key),
			Bold(s.ActivityID),
			s.Subject,
			s.Date,
			s.StartTime,
			StatusIndicator(s.Status),
		})
	}
	b.WriteString(RenderTable(headers, rows))
	return b.String()
}

// FormatClosedSession renders the confirmation line printed after a close.
func FormatClosedSession(s *domain.Session) string {
	elapsed, err := domain.ElapsedStrings(s.StartTime, s.EndTime)
	if err != nil {
		return fmt.Sprintf("Closed %s (%s)\n", s.Key, s.Duration)
	}
	return fmt.Sprintf("Closed %s: %s (%s)\n",
		Bold(s.Key),
		domain.FormatCompact(elapsed),
		StatusIndicator(s.Status),
	)
}
