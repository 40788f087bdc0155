package testutil

import (
	"context"
	"database/sql"

	"github.com/Geetanshgarg/future-gaze/internal/db"
)

// FailOnNthExecUoW runs the real SQLite unit of work but makes the FailOn-th
// write inside the transaction return Err. Reads are not counted. Use it to
// check that writes made before the failure are rolled back.
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int32
	Err    error
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	return db.NewSQLiteUnitOfWork(u.DB).WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return fn(ctx, &execTrap{DBTX: tx, failOn: u.FailOn, err: u.Err})
	})
}

// execTrap counts writes on one transaction. A transaction is used from a
// single goroutine, so a plain counter is enough.
type execTrap struct {
	db.DBTX
	writes int32
	failOn int32
	err    error
}

func (e *execTrap) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	e.writes++
	if e.writes == e.failOn {
		return nil, e.err
	}
	return e.DBTX.ExecContext(ctx, query, args...)
}
