package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmfalcao/classlog/internal/domain"
	"github.com/dmfalcao/classlog/internal/repository"
)

type sessionService struct {
	sessions repository.SessionRepo
	users    repository.UserRepo
	observer UseCaseObserver

	// now is the clock used for key generation and the close-date guard;
	// tests override it.
	now func() time.Time
}

func NewSessionService(sessions repository.SessionRepo, users repository.UserRepo, observers ...UseCaseObserver) SessionService {
	return &sessionService{
		sessions: sessions,
		users:    users,
		observer: useCaseObserverOrNoop(observers),
		now:      time.Now,
	}
}

func (s *sessionService) Open(ctx context.Context, in OpenSessionInput) (session *domain.Session, err error) {
	startedAt := s.now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "open-session",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"activity": in.ActivityID, "owner": in.OwnerEmail},
		})
	}()

	if err = validateOpenInput(in); err != nil {
		return nil, err
	}
	if _, err = s.users.GetByEmail(ctx, in.OwnerEmail); err != nil {
		// Only a missing row means an unknown identity; store failures
		// must keep their own identity so they surface as 5xx.
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("owner %s: %w", in.OwnerEmail, domain.ErrIdentityNotFound)
		}
		return nil, fmt.Errorf("looking up owner %s: %w", in.OwnerEmail, err)
	}

	createdAt := s.now().UTC()
	session = &domain.Session{
		Key:        domain.SessionKey(in.ActivityID, createdAt),
		ActivityID: in.ActivityID,
		OwnerEmail: in.OwnerEmail,
		Subject:    in.Subject,
		Weekday:    in.Weekday,
		Date:       in.Date,
		StartTime:  in.StartTime,
		Status:     domain.SessionOpen,
		CreatedAt:  createdAt,
	}
	if err = s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *sessionService) Close(ctx context.Context, in CloseSessionInput) (session *domain.Session, err error) {
	startedAt := s.now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "close-session",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"activity": in.ActivityID, "owner": in.OwnerEmail},
		})
	}()

	if in.OwnerEmail == "" || in.ActivityID == "" {
		return nil, fmt.Errorf("%w: owner email and activity are required", domain.ErrValidation)
	}
	if err = domain.ValidateCalendarDate(in.Date); err != nil {
		return nil, err
	}
	// The supplied date must match the server's current date, not the
	// session's stored one. This guards against closing sessions left
	// open from a prior day by mistake.
	if today := domain.FormatCalendarDate(s.now()); in.Date != today {
		return nil, fmt.Errorf("%w: date %s does not match today (%s)", domain.ErrValidation, in.Date, today)
	}
	status, err := domain.ParseSessionStatus(in.Status)
	if err != nil {
		return nil, err
	}
	if status != domain.SessionClosed {
		return nil, fmt.Errorf("%w: closing status %q does not terminate the session", domain.ErrValidation, in.Status)
	}

	session, err = s.sessions.FindOpenByOwnerAndActivity(ctx, in.OwnerEmail, in.ActivityID)
	if err != nil {
		return nil, err
	}
	if err = session.Close(in.EndTime); err != nil {
		return nil, err
	}

	// Conditional write: if a concurrent close won the race since the
	// read above, this reports ErrNotFound and nothing is overwritten.
	if err = s.sessions.CloseOpen(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *sessionService) ListOpen(ctx context.Context, ownerEmail string) ([]*domain.Session, error) {
	if ownerEmail == "" {
		return nil, fmt.Errorf("%w: owner email is required", domain.ErrValidation)
	}
	return s.sessions.ListOpenByOwner(ctx, ownerEmail)
}

func validateOpenInput(in OpenSessionInput) error {
	if in.ActivityID == "" || in.OwnerEmail == "" {
		return fmt.Errorf("%w: activity and owner email are required", domain.ErrValidation)
	}
	if err := domain.ValidateCalendarDate(in.Date); err != nil {
		return err
	}
	if _, err := domain.ParseTimeOfDay(in.StartTime); err != nil {
		return err
	}
	return nil
}
