package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/SscSPs/pvs_ledger/internal/apperrors"
	"github.com/SscSPs/pvs_ledger/internal/core/domain"
	"github.com/SscSPs/pvs_ledger/pkg/database"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Supported database drivers.
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"
)

// Options configure how a Store connects.
type Options struct {
	Driver string
	// DSN is a file path or "file:" URI for SQLite, a postgres:// URL for pgx.
	DSN string
	// MoneyScale is the number of fractional digits ledger amounts are stored with.
	MoneyScale int32
	// Ping checks connectivity before Open returns.
	Ping bool
}

// Store is the connection provider of the ledger. Every logical operation
// takes a connection from it and gives it back on all exit paths.
type Store struct {
	db     *sql.DB
	pool   *pgxpool.Pool
	driver string
	scale  int32
}

// Open connects to the database described by opts.
func Open(ctx context.Context, opts Options) (*Store, error) {
	if opts.MoneyScale < 0 || opts.MoneyScale > domain.MaxMoneyScale {
		return nil, fmt.Errorf("%w: money scale %d outside [0, %d]", apperrors.ErrValidation, opts.MoneyScale, domain.MaxMoneyScale)
	}

	switch opts.Driver {
	case DriverSQLite:
		db, err := database.OpenSQLite(ctx, opts.DSN, opts.Ping)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrStoreAccess, err)
		}
		return &Store{db: db, driver: opts.Driver, scale: opts.MoneyScale}, nil
	case DriverPostgres:
		db, pool, err := database.OpenPostgres(ctx, opts.DSN, opts.Ping)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrStoreAccess, err)
		}
		return &Store{db: db, pool: pool, driver: opts.Driver, scale: opts.MoneyScale}, nil
	default:
		return nil, fmt.Errorf("%w: unsupported database driver %q", apperrors.ErrValidation, opts.Driver)
	}
}

// NewStore wraps an already open database handle.
func NewStore(db *sql.DB, driver string, moneyScale int32) *Store {
	return &Store{db: db, driver: driver, scale: moneyScale}
}

// Conn yields a dedicated auto-commit connection. The caller must Close it.
func (s *Store) Conn(ctx context.Context) (*sql.Conn, error) {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to acquire connection: %w", apperrors.ErrStoreAccess, err)
	}
	return conn, nil
}

// DB exposes the pooled handle for callers that manage their own statements.
func (s *Store) DB() *sql.DB { return s.db }

func (s *Store) Driver() string { return s.driver }

// MoneyScale is the scale every stored amount is written and read at.
func (s *Store) MoneyScale() int32 { return s.scale }

// Close releases the handle and, for PostgreSQL, the underlying pgx pool.
func (s *Store) Close() error {
	err := s.db.Close()
	database.ClosePgxPool(s.pool)
	return err
}
