package commands

import (
	"fmt"

	"pricetrack-backend/services/tracker"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	listStore      *string
	listFamily     *string
	listNormalized *bool
)

func init() {
	listStore = listCmd.Flags().String("store", "", "Only show items tracked at this store.")
	listFamily = listCmd.Flags().String("family", "", "Only show items of this family.")
	listNormalized = listCmd.Flags().Bool("normalized", false, "Add the latest price and its unit price per l/kg/pcs.")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Prints every tracked store item.",
	Run: func(cmd *cobra.Command, args []string) {
		service, cleanup := openService(cmd.Context())
		defer cleanup()

		items, err := service.ListTracked(cmd.Context(), tracker.ListFilter{
			Store:      *listStore,
			FamilyKey:  *listFamily,
			WithLatest: *listNormalized,
		})
		if err != nil {
			fail(err)
		}

		header := table.Row{"Item", "Store", "Family", "Label", "Pack", "Scraper", "Url"}
		if *listNormalized {
			header = append(header, "Latest", "Unit price")
		}

		t := newTable()
		t.AppendHeader(header)
		for _, item := range items {
			row := table.Row{
				item.Item.ID,
				item.Store,
				item.Item.FamilyKey,
				item.Item.Label,
				fmt.Sprintf("%g%s", item.Item.Size, item.Item.Unit),
				item.Scraper,
				item.Url,
			}
			if *listNormalized {
				if item.Latest != nil {
					row = append(row,
						fmt.Sprintf("%s on %s", euros(item.Latest.PriceCents), item.Latest.ObservedOn),
						fmt.Sprintf("%.2f €/%s", item.Latest.PerBase, item.Latest.PerBaseUnit),
					)
				} else {
					row = append(row, "no price yet", "")
				}
			}
			t.AppendRow(row)
		}
		t.Render()
	},
}
