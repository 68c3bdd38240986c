package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	historyStore      *string
	historyNormalized *bool
	historyShowTitle  *bool
)

func init() {
	historyStore = historyCmd.Flags().String("store", "", "Only show observations from this store.")
	historyNormalized = historyCmd.Flags().Bool("normalized", false, "Add a unit price column (€ per l/kg/pcs).")
	historyShowTitle = historyCmd.Flags().Bool("show-title", false, "Add the raw page title each price was scraped under.")
	rootCmd.AddCommand(historyCmd)
}

var historyCmd = &cobra.Command{
	Use:   "history <family-key>",
	Short: "Prints every recorded price of a family, oldest first per store.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		service, cleanup := openService(cmd.Context())
		defer cleanup()

		points, err := service.History(cmd.Context(), args[0], *historyStore)
		if err != nil {
			fail(err)
		}

		header := table.Row{"Date", "Store", "Pack", "Price"}
		if *historyNormalized {
			header = append(header, "Unit price")
		}
		if *historyShowTitle {
			header = append(header, "Title")
		}

		t := newTable()
		t.AppendHeader(header)
		for _, p := range points {
			row := table.Row{
				p.ObservedOn,
				p.Store,
				fmt.Sprintf("%g%s", p.Size, p.Unit),
				euros(p.PriceCents),
			}
			if *historyNormalized {
				row = append(row, fmt.Sprintf("%.2f €/%s", p.PerBase, p.PerBaseUnit))
			}
			if *historyShowTitle {
				row = append(row, p.TitleRaw)
			}
			t.AppendRow(row)
		}
		t.Render()
	},
}
