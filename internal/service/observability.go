package service

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// UseCaseEvent is one completed service operation: its name, outcome, and
// any operation-specific fields the service chose to attach.
type UseCaseEvent struct {
	Name      string
	Duration  time.Duration
	Success   bool
	Err       error
	Fields    map[string]any
	StartedAt time.Time
}

// UseCaseObserver receives a UseCaseEvent after each service operation.
type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

// NoopUseCaseObserver discards events.
type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

// NewLogUseCaseObserver returns an observer that logs each event as a
// single slog line on w. A nil writer yields the noop observer.
func NewLogUseCaseObserver(w io.Writer) UseCaseObserver {
	if w == nil {
		return NoopUseCaseObserver{}
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	return &logUseCaseObserver{logger: slog.New(handler)}
}

type logUseCaseObserver struct {
	logger *slog.Logger
}

func (o *logUseCaseObserver) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	attrs := []any{
		"use_case", event.Name,
		"duration_ms", event.Duration.Milliseconds(),
		"success", event.Success,
	}
	for k, v := range event.Fields {
		attrs = append(attrs, k, v)
	}

	if event.Err != nil {
		o.logger.ErrorContext(ctx, "use_case", append(attrs, "error", event.Err.Error())...)
		return
	}
	o.logger.InfoContext(ctx, "use_case", attrs...)
}

// useCaseObserverOrNoop picks the first non-nil observer from a variadic
// constructor argument list.
func useCaseObserverOrNoop(observers []UseCaseObserver) UseCaseObserver {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return NoopUseCaseObserver{}
}
