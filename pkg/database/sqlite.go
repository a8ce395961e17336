package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// sqliteParams are the connection settings every store connection needs,
// each listed with the go-sqlite3 aliases that set the same thing.
var sqliteParams = []struct {
	value   string
	aliases []string
}{
	{value: "_foreign_keys=on", aliases: []string{"_foreign_keys", "_fk"}},
	{value: "_journal_mode=WAL", aliases: []string{"_journal_mode", "_journal"}},
	{value: "_busy_timeout=5000", aliases: []string{"_busy_timeout", "_timeout"}},
}

// SQLiteDSN turns a database path into a go-sqlite3 connection string with
// foreign keys enforced, WAL journaling and a busy timeout. A "file:" URI
// keeps the settings it already names and gets the missing ones appended.
func SQLiteDSN(path string) string {
	if !strings.HasPrefix(path, "file:") {
		path = "file:" + path
	}
	_, rawQuery, _ := strings.Cut(path, "?")
	present, _ := url.ParseQuery(rawQuery)

	var missing []string
	for _, p := range sqliteParams {
		if !slices.ContainsFunc(p.aliases, present.Has) {
			missing = append(missing, p.value)
		}
	}
	if len(missing) == 0 {
		return path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + strings.Join(missing, "&")
}

// OpenSQLite opens a SQLite database, creating the parent directory of a
// plain file path when needed.
func OpenSQLite(ctx context.Context, path string, ping bool) (*sql.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("database path cannot be empty")
	}
	if !strings.HasPrefix(path, "file:") {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", SQLiteDSN(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if ping {
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to ping database: %w", err)
		}
	}

	slog.Info("Opened SQLite database", slog.String("path", path))
	return db, nil
}
