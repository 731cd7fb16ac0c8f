package service

import (
	"bytes"
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/dmfalcao/classlog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// Full journey: open -> close on the same calendar date -> export. Mirrors
// the flow a client drives through the HTTP adapter.
func TestLifecycle_OpenCloseReport(t *testing.T) {
	sessions, users, _ := setupRepos(t)
	ctx := context.Background()
	mustRegisterUser(t, users, "a@x.com")

	now := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	svc := newSessionServiceAt(t, now, sessions, users)

	sess, err := svc.Open(ctx, OpenSessionInput{
		ActivityID: "MATH101",
		OwnerEmail: "a@x.com",
		Subject:    "Math",
		Weekday:    "Mon",
		Date:       "01/03/2024",
		StartTime:  "08:00",
	})
	require.NoError(t, err)

	// Key has the {activity}-{epochMillis} composite form.
	require.True(t, strings.HasPrefix(sess.Key, "MATH101-"))
	millis, err := strconv.ParseInt(strings.TrimPrefix(sess.Key, "MATH101-"), 10, 64)
	require.NoError(t, err)
	assert.Equal(t, now.UnixMilli(), millis)

	closed, err := svc.Close(ctx, CloseSessionInput{
		OwnerEmail: "a@x.com",
		ActivityID: "MATH101",
		EndTime:    "09:30",
		Date:       "01/03/2024",
		Status:     "Concluido",
	})
	require.NoError(t, err)
	assert.Equal(t, "1.50", closed.Duration)
	assert.Equal(t, domain.SessionClosed, closed.Status)
	assert.Equal(t, "Concluído", closed.Status.Label())

	reports := NewReportService(sessions, "class-logs.xlsx")
	wb, err := reports.BuildReport(ctx)
	require.NoError(t, err)
	assert.Equal(t, "class-logs.xlsx", wb.Filename)

	f, err := excelize.OpenReader(bytes.NewReader(wb.Bytes))
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })

	rows, err := f.GetRows("Class Logs")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, sess.Key, rows[1][0])
	assert.Equal(t, "Concluído", rows[1][8])
	assert.Equal(t, "1 Horas e 30 Minutos", rows[1][9])
}

// Closing with a stale date must leave the session untouched.
func TestLifecycle_StaleDateCloseRejected(t *testing.T) {
	sessions, users, _ := setupRepos(t)
	ctx := context.Background()
	mustRegisterUser(t, users, "a@x.com")

	opened := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	svc := newSessionServiceAt(t, opened, sessions, users)
	sess, err := svc.Open(ctx, OpenSessionInput{
		ActivityID: "MATH101",
		OwnerEmail: "a@x.com",
		Date:       "01/03/2024",
		StartTime:  "08:00",
	})
	require.NoError(t, err)

	// The server moves on to the next day; the client still sends the
	// session's original date.
	svc.now = func() time.Time { return opened.AddDate(0, 0, 1) }
	_, err = svc.Close(ctx, CloseSessionInput{
		OwnerEmail: "a@x.com",
		ActivityID: "MATH101",
		EndTime:    "09:30",
		Date:       "01/03/2024",
		Status:     "Concluido",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)

	stored, err := sessions.GetByKey(ctx, sess.Key)
	require.NoError(t, err)
	assert.True(t, stored.IsOpen())
	assert.Empty(t, stored.EndTime)
	assert.Empty(t, stored.Duration)
}
