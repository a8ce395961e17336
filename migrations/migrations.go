// Package migrations embeds the schema of the ledger store, one directory per
// database driver, in golang-migrate's NNNNNN_name.{up,down}.sql layout.
package migrations

import "embed"

//go:embed sqlite3/*.sql postgres/*.sql
var FS embed.FS
