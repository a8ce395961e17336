package cmd

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/SscSPs/pvs_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/pvs_ledger/internal/core/ports/services"
	"github.com/SscSPs/pvs_ledger/internal/platform/config"
	"github.com/spf13/cobra"
)

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

// resolveDayBook returns day book id, or the current day book when id is 0.
func resolveDayBook(cmd *cobra.Command, svc *portssvc.ServiceContainer, id int64) (domain.DayBook, error) {
	if id == 0 {
		return svc.DayBook.GetCurrentDayBook(cmd.Context())
	}
	return svc.DayBook.GetDayBookByID(cmd.Context(), id)
}

func newPeriodCmd() *cobra.Command {
	periodCmd := &cobra.Command{
		Use:   "period",
		Short: "Create and list accounting periods",
	}

	periodCmd.AddCommand(&cobra.Command{
		Use:   "create NAME",
		Short: "Create an accounting period",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd.Context(), func(_ *config.Config, svc *portssvc.ServiceContainer) error {
				p, err := svc.Period.CreatePeriod(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "created period %d %s\n", p.ID, p.Name)
				return nil
			})
		},
	})

	periodCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List accounting periods",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd.Context(), func(_ *config.Config, svc *portssvc.ServiceContainer) error {
				periods, err := svc.Period.ListPeriods(cmd.Context())
				if err != nil {
					return err
				}
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tNAME")
				for _, p := range periods {
					fmt.Fprintf(w, "%d\t%s\n", p.ID, p.Name)
				}
				return w.Flush()
			})
		},
	})

	return periodCmd
}
