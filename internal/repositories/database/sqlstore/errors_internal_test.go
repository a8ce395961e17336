package sqlstore

import (
	"errors"
	"testing"

	"github.com/SscSPs/pvs_ledger/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "sqlite unique", err: sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}, want: apperrors.ErrDuplicate},
		{name: "sqlite foreign key", err: sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}, want: apperrors.ErrConstraint},
		{name: "sqlite busy", err: sqlite3.Error{Code: sqlite3.ErrBusy}, want: apperrors.ErrStoreAccess},
		{name: "postgres unique", err: &pgconn.PgError{Code: "23505"}, want: apperrors.ErrDuplicate},
		{name: "postgres foreign key", err: &pgconn.PgError{Code: "23503"}, want: apperrors.ErrConstraint},
		{name: "postgres serialization", err: &pgconn.PgError{Code: "40001"}, want: apperrors.ErrStoreAccess},
		{name: "plain", err: errors.New("boom"), want: apperrors.ErrStoreAccess},
		{name: "already classified", err: apperrors.ErrDecode, want: apperrors.ErrDecode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyError(tt.err)
			assert.ErrorIs(t, got, tt.want)
			assert.ErrorIs(t, got, tt.err)
		})
	}

	assert.NoError(t, classifyError(nil))
	assert.ErrorIs(t, classifyError(&pgconn.PgError{Code: "23503"}), apperrors.ErrValidation)
}
