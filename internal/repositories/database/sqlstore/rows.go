package sqlstore

import (
	"database/sql"
	"fmt"
	"strconv"

	"github.com/SscSPs/pvs_ledger/internal/apperrors"
)

// Row is one result row addressed by column name. Values are whatever the
// driver produced; the typed getters convert them and fail with ErrDecode
// when a column is missing, NULL, or holds an unexpected type.
type Row struct {
	columns map[string]int
	values  []any
}

// Decoder materializes a Row into a typed record.
type Decoder[T any] func(Row) (T, error)

func columnIndex(columns []string) map[string]int {
	index := make(map[string]int, len(columns))
	for i, c := range columns {
		index[c] = i
	}
	return index
}

func scanRow(rows *sql.Rows, index map[string]int) (Row, error) {
	values := make([]any, len(index))
	dest := make([]any, len(values))
	for i := range values {
		dest[i] = &values[i]
	}
	if err := rows.Scan(dest...); err != nil {
		return Row{}, fmt.Errorf("%w: %w", apperrors.ErrDecode, err)
	}
	return Row{columns: index, values: values}, nil
}

// Has reports whether the row carries the column.
func (r Row) Has(column string) bool {
	_, ok := r.columns[column]
	return ok
}

func (r Row) value(column string) (any, error) {
	i, ok := r.columns[column]
	if !ok {
		return nil, fmt.Errorf("%w: column %q not in result", apperrors.ErrDecode, column)
	}
	v := r.values[i]
	if v == nil {
		return nil, fmt.Errorf("%w: column %q is NULL", apperrors.ErrDecode, column)
	}
	return v, nil
}

// Int64 reads an integer column.
func (r Row) Int64(column string) (int64, error) {
	v, err := r.value(column)
	if err != nil {
		return 0, err
	}
	switch n := v.(type) {
	case int64:
		return n, nil
	case int32:
		return int64(n), nil
	case int:
		return int64(n), nil
	case []byte:
		return parseInt(column, string(n))
	case string:
		return parseInt(column, n)
	default:
		return 0, fmt.Errorf("%w: column %q holds %T, want integer", apperrors.ErrDecode, column, v)
	}
}

// String reads a text column.
func (r Row) String(column string) (string, error) {
	v, err := r.value(column)
	if err != nil {
		return "", err
	}
	switch s := v.(type) {
	case string:
		return s, nil
	case []byte:
		return string(s), nil
	default:
		return "", fmt.Errorf("%w: column %q holds %T, want text", apperrors.ErrDecode, column, v)
	}
}

func parseInt(column, s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: column %q holds %q, want integer", apperrors.ErrDecode, column, s)
	}
	return n, nil
}
