package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/pvs_ledger/internal/apperrors"
	"github.com/SscSPs/pvs_ledger/internal/middleware"
)

// UnitState is the lifecycle state of a UnitOfWork.
type UnitState int

const (
	UnitIdle UnitState = iota
	UnitOpen
	UnitCommitted
	UnitRolledBack
)

func (s UnitState) String() string {
	switch s {
	case UnitIdle:
		return "idle"
	case UnitOpen:
		return "open"
	case UnitCommitted:
		return "committed"
	case UnitRolledBack:
		return "rolled_back"
	}
	return fmt.Sprintf("UnitState(%d)", int(s))
}

// UnitOfWork groups writes on one connection into a single database
// transaction. It counts successful writes and only commits when the count
// matches what the caller planned. Committed and rolled back are terminal.
//
// A UnitOfWork is not safe for concurrent use.
type UnitOfWork struct {
	conn    *sql.Conn
	tx      *sql.Tx
	state   UnitState
	changes int
}

// BeginUnitOfWork acquires a connection and opens a transaction on it.
// The caller must Release the unit.
func (s *Store) BeginUnitOfWork(ctx context.Context) (*UnitOfWork, error) {
	conn, err := s.Conn(ctx)
	if err != nil {
		return nil, err
	}
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("%w: failed to begin transaction: %w", apperrors.ErrStoreAccess, err)
	}
	return &UnitOfWork{conn: conn, tx: tx, state: UnitOpen}, nil
}

func (u *UnitOfWork) State() UnitState { return u.state }

// Executor returns the transaction statements of this unit must run on.
func (u *UnitOfWork) Executor() Executor { return u.tx }

// RecordChange counts one successful write.
func (u *UnitOfWork) RecordChange() { u.changes++ }

func (u *UnitOfWork) Changes() int { return u.changes }

// Rollback discards the unit's writes. It never fails: a rollback error is
// logged and the unit still ends up rolled back. Calling it on a unit that is
// no longer open does nothing.
func (u *UnitOfWork) Rollback(ctx context.Context) {
	if u.state != UnitOpen {
		return
	}
	logger := middleware.GetLoggerFromCtx(ctx)
	logger.Warn("Rolling back unit of work", slog.Int("changes", u.changes))
	if err := u.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		logger.Error("Rollback failed", slog.String("error", err.Error()))
	}
	u.state = UnitRolledBack
}

// End commits when expected equals the number of recorded changes and rolls
// back otherwise. It reports whether the writes were committed. A failed
// commit is logged and reported as false; the database has applied nothing.
func (u *UnitOfWork) End(ctx context.Context, expected int) bool {
	if u.state != UnitOpen {
		return false
	}
	logger := middleware.GetLoggerFromCtx(ctx)
	if expected != u.changes {
		logger.Warn("Unit of work change count mismatch",
			slog.Int("expected", expected),
			slog.Int("actual", u.changes))
		u.Rollback(ctx)
		return false
	}
	if err := u.tx.Commit(); err != nil {
		logger.Error("Commit failed", slog.String("error", err.Error()), slog.Int("changes", u.changes))
		u.state = UnitRolledBack
		return false
	}
	u.state = UnitCommitted
	return true
}

// Release rolls back a unit that is still open and returns its connection to the pool.
func (u *UnitOfWork) Release(ctx context.Context) {
	u.Rollback(ctx)
	if err := u.conn.Close(); err != nil && !errors.Is(err, sql.ErrConnDone) {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to release connection", slog.String("error", err.Error()))
	}
}
