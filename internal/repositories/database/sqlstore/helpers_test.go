package sqlstore_test

import (
	"context"
	"path/filepath"
	"testing"

	portsrepo "github.com/SscSPs/pvs_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/pvs_ledger/internal/repositories/database/sqlstore"
	"github.com/stretchr/testify/require"
)

const testMoneyScale = 2

// newTestStore creates a migrated SQLite database in a temp dir.
func newTestStore(t *testing.T) (*sqlstore.Store, portsrepo.RepositoryProvider) {
	t.Helper()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "pvs.db")

	require.NoError(t, sqlstore.NewSchemaManager(sqlstore.DriverSQLite, path).CreateTables(ctx))

	store, err := sqlstore.Open(ctx, sqlstore.Options{
		Driver:     sqlstore.DriverSQLite,
		DSN:        path,
		MoneyScale: testMoneyScale,
		Ping:       true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return store, sqlstore.NewRepositoryProvider(store)
}

func countRows(t *testing.T, store *sqlstore.Store, table string) int {
	t.Helper()
	var n int
	require.NoError(t, store.DB().QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}
