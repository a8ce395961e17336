// Package cmd provides the pvsctl commands.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	portssvc "github.com/SscSPs/pvs_ledger/internal/core/ports/services"
	"github.com/SscSPs/pvs_ledger/internal/core/services"
	"github.com/SscSPs/pvs_ledger/internal/platform/config"
	"github.com/SscSPs/pvs_ledger/internal/repositories/database/sqlstore"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the command tree. Each call returns fresh flag state.
func NewRootCmd() *cobra.Command {
	var debug bool

	rootCmd := &cobra.Command{
		Use:   "pvsctl",
		Short: "Manage a double-entry ledger from the command line",
		Long: `pvsctl works directly against the ledger store configured by
DB_DRIVER and DATABASE_URL (a .env file in the working directory is read too).

Example:
  pvsctl schema up
  pvsctl account create Cash --type ASSET
  pvsctl period create "YEAR 2019"
  pvsctl daybook create "March 2019" --period 1 --current
  pvsctl post --from 1 --to 2 --amount 10000.00 --ref PV20190331001 --narrative "Fuel"
  pvsctl transactions --account 2`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logLevel := slog.LevelInfo
			if debug {
				logLevel = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: logLevel,
			}))
			slog.SetDefault(logger)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(newSchemaCmd())
	rootCmd.AddCommand(newAccountCmd())
	rootCmd.AddCommand(newPeriodCmd())
	rootCmd.AddCommand(newDayBookCmd())
	rootCmd.AddCommand(newPostCmd())
	rootCmd.AddCommand(newTransactionsCmd())

	return rootCmd
}

// Execute runs the CLI. This is called by main.main().
func Execute() error {
	return NewRootCmd().Execute()
}

// withServices opens the configured store and hands the service container to fn.
func withServices(ctx context.Context, fn func(*config.Config, *portssvc.ServiceContainer) error) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	store, err := sqlstore.Open(ctx, sqlstore.Options{
		Driver:     cfg.DBDriver,
		DSN:        cfg.DatabaseURL,
		MoneyScale: cfg.MoneyScale,
		Ping:       true,
	})
	if err != nil {
		return fmt.Errorf("failed to open ledger store: %w", err)
	}
	defer store.Close()

	return fn(cfg, services.NewServiceContainer(sqlstore.NewRepositoryProvider(store)))
}
