package service

import (
	"context"
	"testing"
	"time"

	"github.com/dmfalcao/classlog/internal/db"
	"github.com/dmfalcao/classlog/internal/repository"
	"github.com/dmfalcao/classlog/internal/testutil"
	"github.com/stretchr/testify/require"
)

func setupRepos(t *testing.T) (*repository.SQLiteSessionRepo, *repository.SQLiteUserRepo, db.UnitOfWork) {
	t.Helper()
	database := testutil.NewTestDB(t)
	return repository.NewSQLiteSessionRepo(database),
		repository.NewSQLiteUserRepo(database),
		testutil.NewTestUoW(database)
}

// newSessionServiceAt wires a session service with a fixed clock so the
// close-date guard and key generation are deterministic.
func newSessionServiceAt(t *testing.T, now time.Time, sessions repository.SessionRepo, users repository.UserRepo) *sessionService {
	t.Helper()
	svc, ok := NewSessionService(sessions, users).(*sessionService)
	require.True(t, ok)
	svc.now = func() time.Time { return now }
	return svc
}

func mustRegisterUser(t *testing.T, users *repository.SQLiteUserRepo, email string) {
	t.Helper()
	require.NoError(t, users.Create(context.Background(), testutil.NewTestUser(email)))
}
