package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmfalcao/classlog/internal/db"
	"github.com/dmfalcao/classlog/internal/domain"
)

// SQLiteUserRepo implements UserRepo using a SQLite database. Schedule
// entries are owned rows replaced wholesale on every account write.
type SQLiteUserRepo struct {
	db db.DBTX
}

// NewSQLiteUserRepo creates a new SQLiteUserRepo.
func NewSQLiteUserRepo(conn db.DBTX) *SQLiteUserRepo {
	return &SQLiteUserRepo{db: conn}
}

func (r *SQLiteUserRepo) Create(ctx context.Context, u *domain.UserAccount) error {
	query := `INSERT INTO users (email, name, password, created_at) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		u.Email,
		u.Name,
		u.Password,
		u.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("user %s: %w", u.Email, ErrDuplicateKey)
		}
		return fmt.Errorf("inserting user: %w", err)
	}
	return r.replaceSchedule(ctx, u.Email, u.Schedule)
}

func (r *SQLiteUserRepo) GetByEmail(ctx context.Context, email string) (*domain.UserAccount, error) {
	query := `SELECT email, name, password, created_at FROM users WHERE email = ?`
	row := r.db.QueryRowContext(ctx, query, email)

	var u domain.UserAccount
	var createdAtStr string
	err := row.Scan(&u.Email, &u.Name, &u.Password, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user %s: %w", email, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning user: %w", err)
	}
	u.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}

	u.Schedule, err = r.loadSchedule(ctx, email)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *SQLiteUserRepo) List(ctx context.Context) ([]*domain.UserAccount, error) {
	query := `SELECT email, name, password, created_at FROM users ORDER BY email`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	defer rows.Close()

	var users []*domain.UserAccount
	for rows.Next() {
		var u domain.UserAccount
		var createdAtStr string
		if err := rows.Scan(&u.Email, &u.Name, &u.Password, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning user row: %w", err)
		}
		u.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		users = append(users, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating users: %w", err)
	}

	for _, u := range users {
		u.Schedule, err = r.loadSchedule(ctx, u.Email)
		if err != nil {
			return nil, err
		}
	}
	return users, nil
}

func (r *SQLiteUserRepo) Update(ctx context.Context, u *domain.UserAccount) error {
	query := `UPDATE users SET name = ?, password = ? WHERE email = ?`
	res, err := r.db.ExecContext(ctx, query, u.Name, u.Password, u.Email)
	if err != nil {
		return fmt.Errorf("updating user: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking user update: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("user %s: %w", u.Email, ErrNotFound)
	}
	return r.replaceSchedule(ctx, u.Email, u.Schedule)
}

func (r *SQLiteUserRepo) Delete(ctx context.Context, email string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE email = ?`, email)
	if err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking user delete: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("user %s: %w", email, ErrNotFound)
	}
	return nil
}

func (r *SQLiteUserRepo) loadSchedule(ctx context.Context, email string) ([]domain.ScheduleEntry, error) {
	query := `SELECT name, weekday, start_time, end_time FROM schedule_entries
		WHERE owner_email = ? ORDER BY rowid`
	rows, err := r.db.QueryContext(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("loading schedule: %w", err)
	}
	defer rows.Close()

	var entries []domain.ScheduleEntry
	for rows.Next() {
		var e domain.ScheduleEntry
		if err := rows.Scan(&e.Name, &e.Weekday, &e.Start, &e.End); err != nil {
			return nil, fmt.Errorf("scanning schedule entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating schedule entries: %w", err)
	}
	return entries, nil
}

func (r *SQLiteUserRepo) replaceSchedule(ctx context.Context, email string, entries []domain.ScheduleEntry) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM schedule_entries WHERE owner_email = ?`, email); err != nil {
		return fmt.Errorf("clearing schedule: %w", err)
	}
	for _, e := range entries {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO schedule_entries (owner_email, name, weekday, start_time, end_time) VALUES (?, ?, ?, ?, ?)`,
			email, e.Name, e.Weekday, e.Start, e.End,
		)
		if err != nil {
			return fmt.Errorf("inserting schedule entry: %w", err)
		}
	}
	return nil
}
