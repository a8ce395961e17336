package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/SscSPs/pvs_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/pvs_ledger/internal/core/ports/services"
	"github.com/SscSPs/pvs_ledger/internal/platform/config"
	"github.com/SscSPs/pvs_ledger/internal/utils/accounting"
	"github.com/spf13/cobra"
)

func newAccountCmd() *cobra.Command {
	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Create and list accounts",
	}

	var accountType string
	createCmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := domain.ParseAccountType(accountType)
			if err != nil {
				return err
			}
			return withServices(cmd.Context(), func(_ *config.Config, svc *portssvc.ServiceContainer) error {
				acc, err := svc.Account.CreateAccount(cmd.Context(), args[0], t)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "created account %d %s (%s)\n", acc.ID, acc.Name, acc.Type)
				return nil
			})
		},
	}
	createCmd.Flags().StringVar(&accountType, "type", domain.Asset.String(), "ASSET, LIABILITY, INCOME, EXPENSE or RETAINED_EARNINGS")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd.Context(), func(_ *config.Config, svc *portssvc.ServiceContainer) error {
				accounts, err := svc.Account.ListAccounts(cmd.Context())
				if err != nil {
					return err
				}
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tNAME\tTYPE")
				for _, a := range accounts {
					fmt.Fprintf(w, "%d\t%s\t%s\n", a.ID, a.Name, a.Type)
				}
				return w.Flush()
			})
		},
	}

	var dayBookID int64
	balanceCmd := &cobra.Command{
		Use:   "balance ACCOUNT_ID",
		Short: "Show an account's balance in a day book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			accountID, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withServices(cmd.Context(), func(cfg *config.Config, svc *portssvc.ServiceContainer) error {
				ctx := cmd.Context()
				account, err := svc.Account.GetAccountByID(ctx, accountID)
				if err != nil {
					return err
				}
				dayBook, err := resolveDayBook(cmd, svc, dayBookID)
				if err != nil {
					return err
				}
				balance, err := svc.Journal.CalculateAccountBalance(ctx, account, dayBook)
				if err != nil {
					return err
				}
				normal, err := accounting.NormalBalance(balance, account.Type)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s in %s: %s (%s as %s)\n", account.Name, dayBook.Name,
					accounting.FormatAmount(balance, cfg.MoneyScale), accounting.FormatAmount(normal, cfg.MoneyScale), account.Type)
				return nil
			})
		},
	}
	balanceCmd.Flags().Int64Var(&dayBookID, "daybook", 0, "day book id (default: current day book)")

	accountCmd.AddCommand(createCmd, listCmd, balanceCmd)
	return accountCmd
}
