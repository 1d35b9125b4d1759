package main

import (
	"context"
	"fmt"

	"github.com/celulaviver/internal/config"
	"github.com/celulaviver/internal/gateway"
	"github.com/celulaviver/internal/store"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the default cells when the cells table is empty",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withGateway(func(_ config.AppConfig, gw gateway.Gateway) error {
			ctx := context.Background()
			existing, err := gw.Cells().SelectAll(ctx)
			if err != nil {
				return fmt.Errorf("list cells: %w", err)
			}
			if len(existing) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Cells already present (%d), nothing to do\n", len(existing))
				return nil
			}

			cells := store.InitialCells()
			for _, cell := range cells {
				if err := gw.Cells().Insert(ctx, cell); err != nil {
					return fmt.Errorf("insert cell %s: %w", cell.Name, err)
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Inserted %d cells\n", len(cells))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
