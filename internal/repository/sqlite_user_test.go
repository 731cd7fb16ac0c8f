package repository

import (
	"context"
	"testing"

	"github.com/dmfalcao/classlog/internal/domain"
	"github.com/dmfalcao/classlog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userTestSetup(t *testing.T) *SQLiteUserRepo {
	t.Helper()
	return NewSQLiteUserRepo(testutil.NewTestDB(t))
}

func TestUserRepo_CreateAndGetByEmail(t *testing.T) {
	repo := userTestSetup(t)
	ctx := context.Background()

	user := testutil.NewTestUser("a@x.com",
		testutil.WithName("Ana"),
		testutil.WithSchedule(
			domain.ScheduleEntry{Name: "MATH101", Weekday: "Mon", Start: "08:00", End: "09:30"},
			domain.ScheduleEntry{Name: "BIO200", Weekday: "Wed", Start: "10:00", End: "11:00"},
		),
	)
	require.NoError(t, repo.Create(ctx, user))

	fetched, err := repo.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "Ana", fetched.Name)
	require.Len(t, fetched.Schedule, 2)
	assert.Equal(t, "MATH101", fetched.Schedule[0].Name)
	assert.Equal(t, "08:00", fetched.Schedule[0].Start)
}

func TestUserRepo_Create_DuplicateEmail(t *testing.T) {
	repo := userTestSetup(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestUser("a@x.com")))

	err := repo.Create(ctx, testutil.NewTestUser("a@x.com"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateKey)
}

func TestUserRepo_GetByEmail_NotFound(t *testing.T) {
	repo := userTestSetup(t)

	_, err := repo.GetByEmail(context.Background(), "missing@x.com")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepo_Update_ReplacesSchedule(t *testing.T) {
	repo := userTestSetup(t)
	ctx := context.Background()

	user := testutil.NewTestUser("a@x.com",
		testutil.WithSchedule(domain.ScheduleEntry{Name: "MATH101", Weekday: "Mon", Start: "08:00", End: "09:30"}),
	)
	require.NoError(t, repo.Create(ctx, user))

	user.Name = "Renamed"
	user.Schedule = []domain.ScheduleEntry{
		{Name: "CHEM1", Weekday: "Fri", Start: "14:00", End: "15:30"},
	}
	require.NoError(t, repo.Update(ctx, user))

	fetched, err := repo.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", fetched.Name)
	require.Len(t, fetched.Schedule, 1)
	assert.Equal(t, "CHEM1", fetched.Schedule[0].Name)
}

func TestUserRepo_Update_NotFound(t *testing.T) {
	repo := userTestSetup(t)

	err := repo.Update(context.Background(), testutil.NewTestUser("ghost@x.com"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepo_Delete_CascadesSchedule(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteUserRepo(db)
	ctx := context.Background()

	user := testutil.NewTestUser("a@x.com",
		testutil.WithSchedule(domain.ScheduleEntry{Name: "MATH101", Weekday: "Mon", Start: "08:00", End: "09:30"}),
	)
	require.NoError(t, repo.Create(ctx, user))
	require.NoError(t, repo.Delete(ctx, "a@x.com"))

	_, err := repo.GetByEmail(ctx, "a@x.com")
	assert.ErrorIs(t, err, ErrNotFound)

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM schedule_entries WHERE owner_email = 'a@x.com'`).Scan(&count))
	assert.Zero(t, count, "schedule entries should cascade on delete")
}

func TestUserRepo_List(t *testing.T) {
	repo := userTestSetup(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestUser("b@x.com")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestUser("a@x.com")))

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "a@x.com", users[0].Email, "ordered by email")
}
