package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"

	"github.com/dmfalcao/classlog/internal/db"
)

// FailOnNthExecUoW is a unit of work that makes the Nth ExecContext inside
// the transaction return Err instead of running. Rollback tests use it to
// fail a multi-write operation partway through. Exec calls are counted from
// 1; reads pass through uncounted.
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int32
	Err    error
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	faulty := &execFaultInjector{DBTX: tx, failOn: u.FailOn, err: u.Err}
	if fnErr := fn(ctx, faulty); fnErr != nil {
		_ = tx.Rollback()
		return fnErr
	}
	return tx.Commit()
}

type execFaultInjector struct {
	db.DBTX
	calls  atomic.Int32
	failOn int32
	err    error
}

func (f *execFaultInjector) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if f.calls.Add(1) == f.failOn {
		return nil, f.err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
