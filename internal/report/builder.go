// Package report turns the stored session set into an exportable
// spreadsheet workbook.
package report

import (
	"fmt"

	"github.com/dmfalcao/classlog/internal/domain"
	"github.com/xuri/excelize/v2"
)

// ContentType is the MIME type of the produced workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// DurationUnavailable is emitted for rows whose duration cannot be derived
// (open sessions, or rows with malformed time strings). A bad row never
// fails the whole export.
const DurationUnavailable = "N/A"

const sheetName = "Class Logs"

var columnHeaders = []string{
	"Session Key", "Activity", "Owner", "Subject", "Weekday",
	"Date", "Start Time", "End Time", "Status", "Duration",
}

// Workbook is the export artifact plus the transport hints needed to serve
// it as an attachment.
type Workbook struct {
	Bytes       []byte
	Filename    string
	ContentType string
}

// Row projects a session into the fixed column order of the report.
// The duration column is recomputed from the raw start/end strings rather
// than read from the stored decimal field, so stale stored values never
// leak into the export.
func Row(s *domain.Session) []string {
	return []string{
		s.Key,
		s.ActivityID,
		s.OwnerEmail,
		s.Subject,
		s.Weekday,
		s.Date,
		s.StartTime,
		s.EndTime,
		s.Status.Label(),
		durationCell(s),
	}
}

func durationCell(s *domain.Session) string {
	if s.EndTime == "" {
		return DurationUnavailable
	}
	elapsed, err := domain.ElapsedStrings(s.StartTime, s.EndTime)
	if err != nil {
		return DurationUnavailable
	}
	return domain.FormatVerbose(elapsed)
}

// Build serializes the sessions into a single-sheet xlsx workbook with a
// header row. Zero sessions yield a header-only workbook.
func Build(sessions []*domain.Session, filename string) (*Workbook, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("naming report sheet: %w", err)
	}
	if err := f.SetSheetRow(sheetName, "A1", &columnHeaders); err != nil {
		return nil, fmt.Errorf("writing header row: %w", err)
	}

	for i, s := range sessions {
		row := Row(s)
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("writing row for session %s: %w", s.Key, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializing workbook: %w", err)
	}
	return &Workbook{
		Bytes:       buf.Bytes(),
		Filename:    filename,
		ContentType: ContentType,
	}, nil
}
