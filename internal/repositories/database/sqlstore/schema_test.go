package sqlstore_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/SscSPs/pvs_ledger/internal/apperrors"
	"github.com/SscSPs/pvs_ledger/internal/repositories/database/sqlstore"
	"github.com/SscSPs/pvs_ledger/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tableNames(t *testing.T, path string) []string {
	t.Helper()
	db, err := sql.Open("sqlite3", database.SQLiteDSN(path))
	require.NoError(t, err)
	defer db.Close()

	rows, err := db.Query(`SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' AND name != 'schema_migrations' ORDER BY name`)
	require.NoError(t, err)
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		require.NoError(t, rows.Scan(&name))
		names = append(names, name)
	}
	require.NoError(t, rows.Err())
	return names
}

func TestSchemaManager_CreateAndDrop(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "schema.db")
	manager := sqlstore.NewSchemaManager(sqlstore.DriverSQLite, path)

	version, _, err := manager.Version(ctx)
	require.NoError(t, err)
	assert.Zero(t, version)

	require.NoError(t, manager.CreateTables(ctx))
	require.NoError(t, manager.CreateTables(ctx))
	assert.Equal(t, []string{"account", "config", "daybook", "journal", "ledger", "period"}, tableNames(t, path))

	version, dirty, err := manager.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
	assert.False(t, dirty)

	require.NoError(t, manager.DropTables(ctx))
	assert.Empty(t, tableNames(t, path))

	require.NoError(t, manager.CreateTables(ctx))
	assert.Len(t, tableNames(t, path), 6)
}

func TestSchemaManager_UnknownDriver(t *testing.T) {
	err := sqlstore.NewSchemaManager("oracle", "x").CreateTables(context.Background())
	assert.Error(t, err)
}

func TestOpen_RejectsBadOptions(t *testing.T) {
	ctx := context.Background()

	_, err := sqlstore.Open(ctx, sqlstore.Options{Driver: "oracle", DSN: "x", MoneyScale: 2})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = sqlstore.Open(ctx, sqlstore.Options{Driver: sqlstore.DriverSQLite, DSN: "x.db", MoneyScale: 19})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = sqlstore.Open(ctx, sqlstore.Options{Driver: sqlstore.DriverPostgres, DSN: "", MoneyScale: 2})
	assert.ErrorIs(t, err, apperrors.ErrStoreAccess)
}
