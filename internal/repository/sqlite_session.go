package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmfalcao/classlog/internal/db"
	"github.com/dmfalcao/classlog/internal/domain"
)

const sessionColumns = `session_key, activity_id, owner_email, subject, weekday,
	date, start_time, end_time, status, duration, created_at`

// SQLiteSessionRepo implements SessionRepo using a SQLite database.
type SQLiteSessionRepo struct {
	db db.DBTX
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo.
func NewSQLiteSessionRepo(conn db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: conn}
}

func (r *SQLiteSessionRepo) Create(ctx context.Context, s *domain.Session) error {
	query := `INSERT INTO sessions (` + sessionColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.Key,
		s.ActivityID,
		s.OwnerEmail,
		s.Subject,
		s.Weekday,
		s.Date,
		s.StartTime,
		s.EndTime,
		string(s.Status),
		s.Duration,
		s.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("session %s: %w", s.Key, ErrDuplicateKey)
		}
		return fmt.Errorf("inserting session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) GetByKey(ctx context.Context, key string) (*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE session_key = ?`
	row := r.db.QueryRowContext(ctx, query, key)
	return r.scanSession(row)
}

func (r *SQLiteSessionRepo) FindOpenByOwnerAndActivity(ctx context.Context, ownerEmail, activityID string) (*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions
		WHERE owner_email = ? AND activity_id = ? AND status = 'OPEN'
		ORDER BY created_at LIMIT 1`
	row := r.db.QueryRowContext(ctx, query, ownerEmail, activityID)
	return r.scanSession(row)
}

func (r *SQLiteSessionRepo) ListOpenByOwner(ctx context.Context, ownerEmail string) ([]*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions
		WHERE owner_email = ? AND status = 'OPEN'
		ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, ownerEmail)
	if err != nil {
		return nil, fmt.Errorf("listing open sessions: %w", err)
	}
	defer rows.Close()
	return r.scanSessions(rows)
}

func (r *SQLiteSessionRepo) ListAll(ctx context.Context) ([]*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	defer rows.Close()
	return r.scanSessions(rows)
}

func (r *SQLiteSessionRepo) Update(ctx context.Context, s *domain.Session) error {
	query := `UPDATE sessions SET activity_id = ?, owner_email = ?, subject = ?,
		weekday = ?, date = ?, start_time = ?, end_time = ?, status = ?, duration = ?
		WHERE session_key = ?`
	res, err := r.db.ExecContext(ctx, query,
		s.ActivityID,
		s.OwnerEmail,
		s.Subject,
		s.Weekday,
		s.Date,
		s.StartTime,
		s.EndTime,
		string(s.Status),
		s.Duration,
		s.Key,
	)
	if err != nil {
		return fmt.Errorf("updating session: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking session update: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("session %s: %w", s.Key, ErrNotFound)
	}
	return nil
}

func (r *SQLiteSessionRepo) CloseOpen(ctx context.Context, s *domain.Session) error {
	// Conditional on status so two racing closes resolve to one winner.
	query := `UPDATE sessions SET end_time = ?, status = ?, duration = ?
		WHERE session_key = ? AND status = 'OPEN'`
	res, err := r.db.ExecContext(ctx, query,
		s.EndTime,
		string(s.Status),
		s.Duration,
		s.Key,
	)
	if err != nil {
		return fmt.Errorf("closing session: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking session close: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("open session %s: %w", s.Key, ErrNotFound)
	}
	return nil
}

// scanSession scans a single session from a *sql.Row.
func (r *SQLiteSessionRepo) scanSession(row *sql.Row) (*domain.Session, error) {
	var s domain.Session
	var status, createdAtStr string

	err := row.Scan(
		&s.Key, &s.ActivityID, &s.OwnerEmail, &s.Subject, &s.Weekday,
		&s.Date, &s.StartTime, &s.EndTime, &status, &s.Duration, &createdAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("session: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning session: %w", err)
	}
	return r.populateSession(&s, status, createdAtStr)
}

// scanSessions scans multiple sessions from *sql.Rows.
func (r *SQLiteSessionRepo) scanSessions(rows *sql.Rows) ([]*domain.Session, error) {
	var sessions []*domain.Session
	for rows.Next() {
		var s domain.Session
		var status, createdAtStr string

		err := rows.Scan(
			&s.Key, &s.ActivityID, &s.OwnerEmail, &s.Subject, &s.Weekday,
			&s.Date, &s.StartTime, &s.EndTime, &status, &s.Duration, &createdAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning session row: %w", err)
		}

		session, parseErr := r.populateSession(&s, status, createdAtStr)
		if parseErr != nil {
			return nil, parseErr
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}
	return sessions, nil
}

// populateSession fills in parsed fields on a Session after scanning raw strings.
func (r *SQLiteSessionRepo) populateSession(s *domain.Session, status, createdAtStr string) (*domain.Session, error) {
	s.Status = domain.SessionStatus(status)

	var parseErr error
	s.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	return s, nil
}
