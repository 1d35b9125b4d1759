package main

import (
	"fmt"

	"github.com/celulaviver/internal/analytics"
	"github.com/celulaviver/internal/config"
	"github.com/celulaviver/internal/contact"
	"github.com/celulaviver/internal/locale"
	"github.com/celulaviver/internal/store"
	"github.com/spf13/cobra"
)

var lateCmd = &cobra.Command{
	Use:   "late",
	Short: "List cells whose last meeting has no report",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(cfg config.AppConfig, s *store.Store) error {
			alerts := analytics.DetectLateCells(s.Cells(), s.Reports(), now(cfg))
			if len(alerts) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No late reports")
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), "CELL\tLEADER\tDATE\tLINK")
			for _, alert := range alerts {
				link, err := contact.ChargeLeaderLink(alert.Cell, alert.Date)
				if err != nil {
					link = "-"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\n", alert.Cell.Name, alert.Cell.Leader, locale.FormatISODate(alert.Date), link)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(lateCmd)
}
