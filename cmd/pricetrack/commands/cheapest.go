package commands

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(cheapestCmd)
}

var cheapestCmd = &cobra.Command{
	Use:   "cheapest <family-key>",
	Short: "Ranks stores by the family's latest price per base unit.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		service, cleanup := openService(cmd.Context())
		defer cleanup()

		report, err := service.Cheapest(cmd.Context(), args[0])
		if err != nil {
			fail(err)
		}

		t := newTable()
		t.AppendHeader(table.Row{"Store", "Pack", "Price", "Unit price", "Observed"})
		for _, r := range report.Rows {
			t.AppendRow(table.Row{
				r.Store,
				fmt.Sprintf("%g%s", r.Size, r.Unit),
				euros(r.PriceCents),
				fmt.Sprintf("%.2f €/%s", r.PerBase, r.PerBaseUnit),
				r.ObservedOn,
			})
		}
		if len(report.Missing) > 0 {
			t.AppendFooter(table.Row{"no price yet", strings.Join(report.Missing, ", "), "", "", ""})
		}
		t.Render()

		if report.MixedUnits {
			fmt.Println("note: this family mixes base units, rows are grouped per unit and only comparable within a group")
		}
	},
}
