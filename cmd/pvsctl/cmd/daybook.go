package cmd

import (
	"fmt"
	"text/tabwriter"

	portssvc "github.com/SscSPs/pvs_ledger/internal/core/ports/services"
	"github.com/SscSPs/pvs_ledger/internal/platform/config"
	"github.com/spf13/cobra"
)

func newDayBookCmd() *cobra.Command {
	dayBookCmd := &cobra.Command{
		Use:   "daybook",
		Short: "Manage day books and the current day book",
	}

	var (
		periodID    int64
		makeCurrent bool
	)
	createCmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Open a day book within a period",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd.Context(), func(_ *config.Config, svc *portssvc.ServiceContainer) error {
				db, err := svc.DayBook.CreateDayBook(cmd.Context(), args[0], periodID)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "created day book %d %s\n", db.ID, db.Name)
				if makeCurrent {
					return svc.DayBook.SetCurrentDayBook(cmd.Context(), db.ID)
				}
				return nil
			})
		},
	}
	createCmd.Flags().Int64Var(&periodID, "period", 0, "period id the day book belongs to")
	createCmd.Flags().BoolVar(&makeCurrent, "current", false, "make the new day book current")
	_ = createCmd.MarkFlagRequired("period")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List day books",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd.Context(), func(_ *config.Config, svc *portssvc.ServiceContainer) error {
				dayBooks, err := svc.DayBook.ListDayBooks(cmd.Context())
				if err != nil {
					return err
				}
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tNAME\tPERIOD")
				for _, db := range dayBooks {
					fmt.Fprintf(w, "%d\t%s\t%d\n", db.ID, db.Name, db.PeriodID)
				}
				return w.Flush()
			})
		},
	}

	useCmd := &cobra.Command{
		Use:   "use ID",
		Short: "Make a day book current",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withServices(cmd.Context(), func(_ *config.Config, svc *portssvc.ServiceContainer) error {
				return svc.DayBook.SetCurrentDayBook(cmd.Context(), id)
			})
		},
	}

	dayBookCmd.AddCommand(createCmd, listCmd, useCmd)
	return dayBookCmd
}
