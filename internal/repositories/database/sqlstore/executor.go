package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"iter"

	"github.com/SscSPs/pvs_ledger/internal/apperrors"
)

// Executor runs SQL. *sql.DB, *sql.Conn and *sql.Tx all satisfy it, so the
// same helpers work on a pooled handle, a scoped connection or a unit of work.
//
// Statements use $1..$n placeholders in ascending order, which both
// go-sqlite3 and pgx bind positionally.
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Query runs a select and yields decoded records lazily. The statement is
// executed when iteration starts and the result set is closed when iteration
// stops, whether or not it was drained. The sequence is single-use: ranging
// over it a second time yields ErrStoreAccess.
func Query[T any](ctx context.Context, ex Executor, decode Decoder[T], query string, args ...any) iter.Seq2[T, error] {
	consumed := false
	return func(yield func(T, error) bool) {
		var zero T
		if consumed {
			yield(zero, fmt.Errorf("%w: result sequence already consumed", apperrors.ErrStoreAccess))
			return
		}
		consumed = true

		rows, err := ex.QueryContext(ctx, query, args...)
		if err != nil {
			yield(zero, classifyError(err))
			return
		}
		defer rows.Close()

		columns, err := rows.Columns()
		if err != nil {
			yield(zero, classifyError(err))
			return
		}
		index := columnIndex(columns)

		for rows.Next() {
			row, err := scanRow(rows, index)
			if err != nil {
				yield(zero, err)
				return
			}
			record, err := decode(row)
			if err != nil {
				yield(zero, err)
				return
			}
			if !yield(record, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(zero, classifyError(err))
		}
	}
}

// Collect drains a sequence into a slice. An empty result is an empty, non-nil slice.
func Collect[T any](seq iter.Seq2[T, error]) ([]T, error) {
	out := []T{}
	for record, err := range seq {
		if err != nil {
			return nil, err
		}
		out = append(out, record)
	}
	return out, nil
}

// QueryOne returns the first record of a select, reporting absence through the boolean.
func QueryOne[T any](ctx context.Context, ex Executor, decode Decoder[T], query string, args ...any) (T, bool, error) {
	var zero T
	for record, err := range Query(ctx, ex, decode, query, args...) {
		if err != nil {
			return zero, false, err
		}
		return record, true, nil
	}
	return zero, false, nil
}

// Exec runs a statement that returns no rows and reports how many rows it changed.
func Exec(ctx context.Context, ex Executor, query string, args ...any) (int64, error) {
	result, err := ex.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, classifyError(err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, classifyError(err)
	}
	return n, nil
}

// InsertReturningID runs an INSERT ... RETURNING id and returns the generated
// id. Zero means the statement produced no row.
func InsertReturningID(ctx context.Context, ex Executor, query string, args ...any) (int64, error) {
	var id int64
	err := ex.QueryRowContext(ctx, query, args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, classifyError(err)
	}
	return id, nil
}
