package main

import (
	"fmt"

	"github.com/celulaviver/internal/analytics"
	"github.com/celulaviver/internal/config"
	"github.com/celulaviver/internal/export"
	"github.com/celulaviver/internal/locale"
	"github.com/celulaviver/internal/store"
	"github.com/spf13/cobra"
)

var (
	exportPeriod   string
	exportYear     string
	exportCellType string
	exportCell     string
	exportOut      string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write filtered reports to an XLSX file",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(cfg config.AppConfig, s *store.Store) error {
			filter := analytics.ReportFilter{
				CellType: exportCellType,
				CellName: exportCell,
				Period:   exportPeriod,
				Year:     exportYear,
			}
			reports := analytics.FilterReports(s.Reports(), s.Cells(), filter, now(cfg))

			out := exportOut
			if out == "" {
				out = export.FileName(exportPeriod, exportYear)
			}
			if err := export.SaveReports(out, reports); err != nil {
				return err
			}

			totals := analytics.ComputeTotals(reports)
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d reports to %s (ofertas %s)\n", len(reports), out, locale.FormatCurrency(totals.TotalOffering()))
			return nil
		})
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportPeriod, "period", analytics.PeriodAll, "Period: all, week, month, bimester, quarter, semester, year or 1-12")
	exportCmd.Flags().StringVar(&exportYear, "year", analytics.YearAll, "Year (YYYY) or all")
	exportCmd.Flags().StringVar(&exportCellType, "type", "all", "Cell type or all")
	exportCmd.Flags().StringVar(&exportCell, "cell", "all", "Cell name or all")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file (defaults to relatorios-<year>-<period>.xlsx)")
	rootCmd.AddCommand(exportCmd)
}
