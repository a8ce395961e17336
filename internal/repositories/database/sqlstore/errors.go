package sqlstore

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/pvs_ledger/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

const (
	pgUniqueViolation         = "23505"
	pgIntegrityViolationClass = "23"
)

// classifyError maps a driver error onto the application error taxonomy:
// unique violations become ErrDuplicate, any other integrity violation
// becomes ErrConstraint, and everything else is ErrStoreAccess. The driver
// error stays in the chain.
func classifyError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, apperrors.ErrDecode) || errors.Is(err, apperrors.ErrStoreAccess) || errors.Is(err, apperrors.ErrValidation) {
		return err
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return fmt.Errorf("%w: %w", apperrors.ErrDuplicate, err)
		default:
			return fmt.Errorf("%w: %w", apperrors.ErrConstraint, err)
		}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("%w: %w", apperrors.ErrDuplicate, err)
		}
		if strings.HasPrefix(pgErr.Code, pgIntegrityViolationClass) {
			return fmt.Errorf("%w: %w", apperrors.ErrConstraint, err)
		}
	}

	return fmt.Errorf("%w: %w", apperrors.ErrStoreAccess, err)
}
