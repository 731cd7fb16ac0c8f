package service

import (
	"context"

	"github.com/dmfalcao/classlog/internal/domain"
	"github.com/dmfalcao/classlog/internal/report"
)

// OpenSessionInput carries the caller-supplied fields of an open operation.
// The session key is generated by the service, never by the caller.
type OpenSessionInput struct {
	ActivityID string
	OwnerEmail string
	Subject    string
	Weekday    string
	Date       string
	StartTime  string
}

// CloseSessionInput identifies the open session by (owner, activity) and
// carries the closing fields. Status is a free-form string normalized to
// the session status enum.
type CloseSessionInput struct {
	OwnerEmail string
	ActivityID string
	EndTime    string
	Date       string
	Status     string
}

type SessionService interface {
	Open(ctx context.Context, in OpenSessionInput) (*domain.Session, error)
	Close(ctx context.Context, in CloseSessionInput) (*domain.Session, error)
	ListOpen(ctx context.Context, ownerEmail string) ([]*domain.Session, error)
}

type ReportService interface {
	BuildReport(ctx context.Context) (*report.Workbook, error)
}

type UserService interface {
	Register(ctx context.Context, u *domain.UserAccount) error
	GetByEmail(ctx context.Context, email string) (*domain.UserAccount, error)
	List(ctx context.Context) ([]*domain.UserAccount, error)
	Update(ctx context.Context, u *domain.UserAccount) error
	Delete(ctx context.Context, email string) error
	Authenticate(ctx context.Context, email, password string) (*domain.UserAccount, error)
	ImportRoster(ctx context.Context, accounts []*domain.UserAccount) (int, error)
}
