package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/pvs_ledger/internal/apperrors"
	"github.com/SscSPs/pvs_ledger/internal/middleware"
	"github.com/SscSPs/pvs_ledger/migrations"
	"github.com/SscSPs/pvs_ledger/pkg/database"
	migrate "github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// SchemaManager creates and drops the ledger tables using the embedded
// migrations. It opens its own handle because closing a migrate instance
// closes the database it was given.
type SchemaManager struct {
	driver string
	dsn    string
}

func NewSchemaManager(driver, dsn string) *SchemaManager {
	return &SchemaManager{driver: driver, dsn: dsn}
}

// CreateTables applies every pending up migration. Running it on an
// up-to-date schema is a no-op.
func (m *SchemaManager) CreateTables(ctx context.Context) error {
	return m.run(ctx, "up", func(mg *migrate.Migrate) error { return mg.Up() })
}

// DropTables applies every down migration, removing all ledger tables.
func (m *SchemaManager) DropTables(ctx context.Context) error {
	return m.run(ctx, "down", func(mg *migrate.Migrate) error { return mg.Down() })
}

// Version reports the applied migration version and whether it is dirty.
// A schema that was never migrated reports version 0.
func (m *SchemaManager) Version(ctx context.Context) (uint, bool, error) {
	var (
		version uint
		dirty   bool
	)
	err := m.run(ctx, "version", func(mg *migrate.Migrate) error {
		var err error
		version, dirty, err = mg.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			return nil
		}
		return err
	})
	return version, dirty, err
}

func (m *SchemaManager) run(ctx context.Context, action string, fn func(*migrate.Migrate) error) error {
	logger := middleware.GetLoggerFromCtx(ctx).With(slog.String("driver", m.driver), slog.String("action", action))

	dsn := m.dsn
	if m.driver == DriverSQLite {
		dsn = database.SQLiteDSN(dsn)
	}
	db, err := sql.Open(m.driver, dsn)
	if err != nil {
		return fmt.Errorf("%w: failed to open database for migrations: %w", apperrors.ErrStoreAccess, err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return fmt.Errorf("%w: failed to ping database for migrations: %w", apperrors.ErrStoreAccess, err)
	}

	var (
		driver migratedb.Driver
		dir    string
	)
	switch m.driver {
	case DriverSQLite:
		driver, err = migratesqlite.WithInstance(db, &migratesqlite.Config{})
		dir = "sqlite3"
	case DriverPostgres:
		driver, err = postgres.WithInstance(db, &postgres.Config{})
		dir = "postgres"
	default:
		db.Close()
		return fmt.Errorf("%w: unsupported database driver %q", apperrors.ErrValidation, m.driver)
	}
	if err != nil {
		db.Close()
		return fmt.Errorf("%w: could not create migration driver: %w", apperrors.ErrStoreAccess, err)
	}

	source, err := iofs.New(migrations.FS, dir)
	if err != nil {
		db.Close()
		return fmt.Errorf("could not read embedded migrations: %w", err)
	}

	mg, err := migrate.NewWithInstance("iofs", source, m.driver, driver)
	if err != nil {
		db.Close()
		return fmt.Errorf("%w: could not create migrate instance: %w", apperrors.ErrStoreAccess, err)
	}

	runErr := fn(mg)
	if errors.Is(runErr, migrate.ErrNoChange) {
		logger.Info("Schema already up to date")
		runErr = nil
	} else if runErr == nil && action != "version" {
		logger.Info("Schema migration applied")
	}

	sourceErr, dbErr := mg.Close()
	if runErr != nil {
		return fmt.Errorf("%w: migration %s failed: %w", apperrors.ErrStoreAccess, action, runErr)
	}
	return errors.Join(sourceErr, dbErr)
}
