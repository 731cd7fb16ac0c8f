package repository

import (
	"context"

	"github.com/dmfalcao/classlog/internal/domain"
)

type SessionRepo interface {
	Create(ctx context.Context, s *domain.Session) error
	GetByKey(ctx context.Context, key string) (*domain.Session, error)
	FindOpenByOwnerAndActivity(ctx context.Context, ownerEmail, activityID string) (*domain.Session, error)
	ListOpenByOwner(ctx context.Context, ownerEmail string) ([]*domain.Session, error)
	ListAll(ctx context.Context) ([]*domain.Session, error)
	Update(ctx context.Context, s *domain.Session) error
	// CloseOpen persists the terminal fields of s conditionally on the
	// stored row still being OPEN. Returns ErrNotFound when the row is
	// absent or was already closed, so concurrent closes for the same
	// session yield exactly one winner.
	CloseOpen(ctx context.Context, s *domain.Session) error
}

type UserRepo interface {
	Create(ctx context.Context, u *domain.UserAccount) error
	GetByEmail(ctx context.Context, email string) (*domain.UserAccount, error)
	List(ctx context.Context) ([]*domain.UserAccount, error)
	Update(ctx context.Context, u *domain.UserAccount) error
	Delete(ctx context.Context, email string) error
}
