package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dmfalcao/classlog/internal/db"
	"github.com/dmfalcao/classlog/internal/domain"
	"github.com/dmfalcao/classlog/internal/repository"
)

// userService is a thin adapter over the user store. Credential handling is
// an opaque equality check standing in for the external authenticate
// capability; it performs no hashing of its own.
type userService struct {
	users repository.UserRepo
	uow   db.UnitOfWork
}

func NewUserService(users repository.UserRepo, uow db.UnitOfWork) UserService {
	return &userService{users: users, uow: uow}
}

func (s *userService) Register(ctx context.Context, u *domain.UserAccount) error {
	if u.Email == "" {
		return fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	u.CreatedAt = time.Now().UTC()

	// Account row and schedule entries land atomically.
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteUserRepo(tx).Create(ctx, u)
	})
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*domain.UserAccount, error) {
	return s.users.GetByEmail(ctx, email)
}

func (s *userService) List(ctx context.Context) ([]*domain.UserAccount, error) {
	return s.users.List(ctx)
}

func (s *userService) Update(ctx context.Context, u *domain.UserAccount) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteUserRepo(tx).Update(ctx, u)
	})
}

func (s *userService) Delete(ctx context.Context, email string) error {
	return s.users.Delete(ctx, email)
}

// ImportRoster persists a batch of converted roster accounts in a single
// transaction. Either every account lands or none do; the count of inserted
// accounts is returned on success.
func (s *userService) ImportRoster(ctx context.Context, accounts []*domain.UserAccount) (int, error) {
	if len(accounts) == 0 {
		return 0, fmt.Errorf("%w: roster has no accounts", domain.ErrValidation)
	}

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteUserRepo(tx)
		for _, u := range accounts {
			if err := repo.Create(ctx, u); err != nil {
				return fmt.Errorf("importing %s: %w", u.Email, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(accounts), nil
}

func (s *userService) Authenticate(ctx context.Context, email, password string) (*domain.UserAccount, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u.Password != password {
		return nil, fmt.Errorf("user %s: %w", email, domain.ErrIdentityNotFound)
	}
	return u, nil
}
