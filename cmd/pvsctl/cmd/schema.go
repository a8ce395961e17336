package cmd

import (
	"fmt"

	"github.com/SscSPs/pvs_ledger/internal/platform/config"
	"github.com/SscSPs/pvs_ledger/internal/repositories/database/sqlstore"
	"github.com/SscSPs/pvs_ledger/pkg/database"
	"github.com/spf13/cobra"
)

func newSchemaCmd() *cobra.Command {
	schemaCmd := &cobra.Command{
		Use:   "schema",
		Short: "Create or drop the ledger tables",
	}

	run := func(action string) func(cmd *cobra.Command, args []string) error {
		return func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if cfg.DBDriver == config.DriverSQLite {
				// make sure the parent directory of the database file exists
				db, err := database.OpenSQLite(cmd.Context(), cfg.DatabaseURL, false)
				if err != nil {
					return err
				}
				db.Close()
			}

			schema := sqlstore.NewSchemaManager(cfg.DBDriver, cfg.DatabaseURL)
			switch action {
			case "up":
				err = schema.CreateTables(cmd.Context())
			case "down":
				err = schema.DropTables(cmd.Context())
			}
			if err != nil {
				return err
			}

			version, dirty, err := schema.Version(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "schema version %d (dirty=%t)\n", version, dirty)
			return nil
		}
	}

	schemaCmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE:  run("up"),
	})
	schemaCmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Drop every ledger table",
		RunE:  run("down"),
	})
	return schemaCmd
}
