package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/SscSPs/pvs_ledger/internal/middleware"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	store *Store
}

// withConn runs fn on a scoped connection that is released on every exit path.
func (r *BaseRepository) withConn(ctx context.Context, fn func(conn *sql.Conn) error) error {
	conn, err := r.store.Conn(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil && !errors.Is(cerr, sql.ErrConnDone) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to release connection", slog.String("error", cerr.Error()))
		}
	}()
	return fn(conn)
}

// findOne runs a single-row lookup on a scoped connection.
func findOne[M, D any](ctx context.Context, r *BaseRepository, decode Decoder[M], toDomain func(M) (D, error), query string, args ...any) (D, bool, error) {
	var (
		out   D
		found bool
	)
	err := r.withConn(ctx, func(conn *sql.Conn) error {
		m, ok, err := QueryOne(ctx, conn, decode, query, args...)
		if err != nil || !ok {
			return err
		}
		out, err = toDomain(m)
		found = err == nil
		return err
	})
	if err != nil {
		var zero D
		return zero, false, err
	}
	return out, found, nil
}

// findAll runs a multi-row select on a scoped connection.
func findAll[M, D any](ctx context.Context, r *BaseRepository, decode Decoder[M], toDomain func([]M) ([]D, error), query string, args ...any) ([]D, error) {
	var out []D
	err := r.withConn(ctx, func(conn *sql.Conn) error {
		ms, err := Collect(Query(ctx, conn, decode, query, args...))
		if err != nil {
			return err
		}
		out, err = toDomain(ms)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// insertID runs an INSERT ... RETURNING id on a scoped connection.
func (r *BaseRepository) insertID(ctx context.Context, query string, args ...any) (int64, error) {
	var id int64
	err := r.withConn(ctx, func(conn *sql.Conn) error {
		var err error
		id, err = InsertReturningID(ctx, conn, query, args...)
		return err
	})
	return id, err
}

// execChanged runs a statement on a scoped connection and reports whether it changed any row.
func (r *BaseRepository) execChanged(ctx context.Context, query string, args ...any) (bool, error) {
	var n int64
	err := r.withConn(ctx, func(conn *sql.Conn) error {
		var err error
		n, err = Exec(ctx, conn, query, args...)
		return err
	})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
