package service

import (
	"context"
	"time"

	"github.com/dmfalcao/classlog/internal/report"
	"github.com/dmfalcao/classlog/internal/repository"
)

type reportService struct {
	sessions repository.SessionRepo
	filename string
	observer UseCaseObserver
}

// NewReportService builds workbook exports over the full session store.
// filename is the attachment name hinted to the transport layer.
func NewReportService(sessions repository.SessionRepo, filename string, observers ...UseCaseObserver) ReportService {
	return &reportService{
		sessions: sessions,
		filename: filename,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *reportService) BuildReport(ctx context.Context) (wb *report.Workbook, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "build-report",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	sessions, err := s.sessions.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	fields["rows"] = len(sessions)

	return report.Build(sessions, s.filename)
}
