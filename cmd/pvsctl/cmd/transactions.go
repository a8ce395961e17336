package cmd

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/SscSPs/pvs_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/pvs_ledger/internal/core/ports/services"
	"github.com/SscSPs/pvs_ledger/internal/platform/config"
	"github.com/spf13/cobra"
)

func newTransactionsCmd() *cobra.Command {
	var accountID, dayBookID int64

	txnCmd := &cobra.Command{
		Use:   "transactions",
		Short: "List posted transactions with their ledger entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd.Context(), func(_ *config.Config, svc *portssvc.ServiceContainer) error {
				ctx := cmd.Context()
				var (
					txns []domain.Transaction
					err  error
				)
				switch {
				case accountID > 0:
					account, accErr := svc.Account.GetAccountByID(ctx, accountID)
					if accErr != nil {
						return accErr
					}
					dayBook, dbErr := resolveDayBook(cmd, svc, dayBookID)
					if dbErr != nil {
						return dbErr
					}
					txns, err = svc.Journal.GetTransactionsForAccountInDayBook(ctx, account, dayBook)
				case dayBookID > 0:
					dayBook, dbErr := svc.DayBook.GetDayBookByID(ctx, dayBookID)
					if dbErr != nil {
						return dbErr
					}
					txns, err = svc.Journal.GetTransactionsForDayBook(ctx, dayBook)
				default:
					txns, err = svc.Journal.GetTransactions(ctx)
				}
				if err != nil {
					return err
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', tabwriter.AlignRight)
				fmt.Fprintln(w, "DATE\tREFERENCE\tACCOUNT\tAMOUNT\t")
				for _, txn := range txns {
					for _, e := range txn.LedgerEntries {
						fmt.Fprintf(w, "%s\t%s\t%d\t%s\t\n", txn.Date.Format(time.DateOnly), txn.Reference, e.AccountID, e.Amount)
					}
				}
				return w.Flush()
			})
		},
	}

	txnCmd.Flags().Int64Var(&accountID, "account", 0, "only transactions touching this account")
	txnCmd.Flags().Int64Var(&dayBookID, "daybook", 0, "only transactions in this day book")
	return txnCmd
}
