package report

import (
	"bytes"
	"testing"

	"github.com/dmfalcao/classlog/internal/domain"
	"github.com/dmfalcao/classlog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func readRows(t *testing.T, wb *Workbook) [][]string {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(wb.Bytes))
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	return rows
}

func TestRow_ClosedSession(t *testing.T) {
	s := testutil.NewTestSession("MATH101",
		testutil.WithOwner("a@x.com"),
		testutil.WithStartTime("08:00"),
		testutil.WithClosed("09:30", "1.50"),
	)

	row := Row(s)
	require.Len(t, row, len(columnHeaders))
	assert.Equal(t, s.Key, row[0])
	assert.Equal(t, "MATH101", row[1])
	assert.Equal(t, "a@x.com", row[2])
	assert.Equal(t, "Concluído", row[8])
	// Duration is recomputed from start/end, not read from the record.
	assert.Equal(t, "1 Horas e 30 Minutos", row[9])
}

func TestRow_RecomputesDuration(t *testing.T) {
	s := testutil.NewTestSession("MATH101",
		testutil.WithStartTime("08:00"),
		testutil.WithClosed("10:00", "9.99"), // stored value is stale
	)

	assert.Equal(t, "2 Horas e 0 Minutos", Row(s)[9])
}

func TestRow_OpenSession_Sentinel(t *testing.T) {
	s := testutil.NewTestSession("MATH101", testutil.WithStartTime("08:00"))

	row := Row(s)
	assert.Equal(t, "Em Andamento", row[8])
	assert.Equal(t, DurationUnavailable, row[9])
}

func TestRow_MalformedTimes_Sentinel(t *testing.T) {
	s := testutil.NewTestSession("MATH101",
		testutil.WithStartTime("junk"),
		testutil.WithClosed("09:30", ""),
	)

	assert.Equal(t, DurationUnavailable, Row(s)[9])
}

func TestBuild_HeaderAndRows(t *testing.T) {
	sessions := []*domain.Session{
		testutil.NewTestSession("MATH101",
			testutil.WithStartTime("08:00"),
			testutil.WithClosed("09:30", "1.50"),
		),
		testutil.NewTestSession("BIO200", testutil.WithStartTime("10:00")),
	}

	wb, err := Build(sessions, "class-logs.xlsx")
	require.NoError(t, err)
	assert.Equal(t, "class-logs.xlsx", wb.Filename)
	assert.Equal(t, ContentType, wb.ContentType)

	rows := readRows(t, wb)
	require.Len(t, rows, 3)
	assert.Equal(t, columnHeaders, rows[0])
	assert.Equal(t, "MATH101", rows[1][1])
	assert.Equal(t, "1 Horas e 30 Minutos", rows[1][9])
	assert.Equal(t, DurationUnavailable, rows[2][9])
}

func TestBuild_NoSessions_HeaderOnly(t *testing.T) {
	wb, err := Build(nil, "class-logs.xlsx")
	require.NoError(t, err)

	rows := readRows(t, wb)
	require.Len(t, rows, 1, "empty store should yield a header-only workbook")
	assert.Equal(t, columnHeaders, rows[0])
}

func TestBuild_OneBadRowDoesNotFailExport(t *testing.T) {
	sessions := []*domain.Session{
		testutil.NewTestSession("MATH101",
			testutil.WithStartTime("bad"),
			testutil.WithClosed("also-bad", ""),
		),
		testutil.NewTestSession("BIO200",
			testutil.WithStartTime("10:00"),
			testutil.WithClosed("11:00", "1.00"),
		),
	}

	wb, err := Build(sessions, "class-logs.xlsx")
	require.NoError(t, err)

	rows := readRows(t, wb)
	require.Len(t, rows, 3)
	assert.Equal(t, DurationUnavailable, rows[1][9])
	assert.Equal(t, "1 Horas e 0 Minutos", rows[2][9])
}
