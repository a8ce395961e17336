package database_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/SscSPs/pvs_ledger/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "file:pvs.db?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000", database.SQLiteDSN("pvs.db"))
	assert.Equal(t, "file:x.db?mode=ro&_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000", database.SQLiteDSN("file:x.db?mode=ro"))
	assert.Equal(t, "file:x.db?_foreign_keys=off&_journal_mode=WAL&_busy_timeout=5000", database.SQLiteDSN("file:x.db?_foreign_keys=off"))
	assert.Equal(t, "file:x.db?_fk=1&_timeout=100&_journal_mode=WAL", database.SQLiteDSN("file:x.db?_fk=1&_timeout=100"))
	assert.Equal(t, "file:x.db?_foreign_keys=on&_journal_mode=DELETE&_busy_timeout=1",
		database.SQLiteDSN("file:x.db?_foreign_keys=on&_journal_mode=DELETE&_busy_timeout=1"))
}

func TestOpenSQLite_FileURIGetsBusyTimeout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pvs.db")
	db, err := database.OpenSQLite(context.Background(), "file:"+path, true)
	require.NoError(t, err)
	defer db.Close()

	var timeout int
	require.NoError(t, db.QueryRow("PRAGMA busy_timeout").Scan(&timeout))
	assert.Equal(t, 5000, timeout)

	var mode string
	require.NoError(t, db.QueryRow("PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)
}

func TestOpenSQLite_EnforcesForeignKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "pvs.db")
	db, err := database.OpenSQLite(context.Background(), path, true)
	require.NoError(t, err)
	defer db.Close()

	var enabled int
	require.NoError(t, db.QueryRow("PRAGMA foreign_keys").Scan(&enabled))
	assert.Equal(t, 1, enabled)
}

func TestOpenSQLite_EmptyPath(t *testing.T) {
	_, err := database.OpenSQLite(context.Background(), "", false)
	assert.Error(t, err)
}
