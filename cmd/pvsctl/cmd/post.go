package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/pvs_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/pvs_ledger/internal/core/ports/services"
	"github.com/SscSPs/pvs_ledger/internal/platform/config"
	"github.com/spf13/cobra"
)

// errRolledBack is returned when the store undid a posting.
var errRolledBack = errors.New("posting was rolled back; nothing was recorded")

func newPostCmd() *cobra.Command {
	var (
		fromID, toID, dayBookID int64
		amount, reference       string
		narrative, date         string
	)

	postCmd := &cobra.Command{
		Use:   "post",
		Short: "Post a transfer from one account to another",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			when := time.Now().UTC()
			if date != "" {
				parsed, err := time.Parse(time.DateOnly, date)
				if err != nil {
					return fmt.Errorf("invalid --date %q, want YYYY-MM-DD", date)
				}
				when = parsed
			}

			return withServices(cmd.Context(), func(cfg *config.Config, svc *portssvc.ServiceContainer) error {
				ctx := cmd.Context()
				money, err := domain.ParseMoney(amount, cfg.MoneyScale)
				if err != nil {
					return err
				}
				from, err := svc.Account.GetAccountByID(ctx, fromID)
				if err != nil {
					return err
				}
				to, err := svc.Account.GetAccountByID(ctx, toID)
				if err != nil {
					return err
				}
				dayBook, err := resolveDayBook(cmd, svc, dayBookID)
				if err != nil {
					return err
				}

				posted, err := svc.Journal.PostTransaction(ctx, when, narrative, money, from, to, reference, dayBook.ID)
				if err != nil {
					return err
				}
				if !posted {
					return errRolledBack
				}
				fmt.Fprintf(cmd.OutOrStdout(), "posted %s: %s %s -> %s\n", reference, money, from.Name, to.Name)
				return nil
			})
		},
	}

	postCmd.Flags().Int64Var(&fromID, "from", 0, "account id the money leaves")
	postCmd.Flags().Int64Var(&toID, "to", 0, "account id the money arrives in")
	postCmd.Flags().StringVar(&amount, "amount", "", "decimal amount, e.g. 10000.00")
	postCmd.Flags().StringVar(&reference, "ref", "", "unique voucher reference")
	postCmd.Flags().StringVar(&narrative, "narrative", "", "description of the transaction")
	postCmd.Flags().StringVar(&date, "date", "", "transaction date YYYY-MM-DD (default: today)")
	postCmd.Flags().Int64Var(&dayBookID, "daybook", 0, "day book id (default: current day book)")
	for _, name := range []string{"from", "to", "amount", "ref", "narrative"} {
		_ = postCmd.MarkFlagRequired(name)
	}

	return postCmd
}
