package commands

import (
	"fmt"
	"os"

	"pricetrack-backend/lib/scrapers"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var scrapeDate *string

func init() {
	scrapeDate = scrapeCmd.Flags().String("date", "", "Observation date as YYYY-MM-DD, today when empty.")
	rootCmd.AddCommand(scrapeCmd)
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape [--date <YYYY-MM-DD>]",
	Short: "Fetches the current price of every tracked item and records it.",
	Run: func(cmd *cobra.Command, args []string) {
		service, cleanup := openService(cmd.Context())
		defer cleanup()

		report, err := service.ScrapeAll(cmd.Context(), scrapers.Default(), *scrapeDate)
		if err != nil {
			fail(err)
		}

		t := newTable()
		t.AppendHeader(table.Row{"Store", "Family", "Price", "Status"})
		for _, outcome := range report.Outcomes {
			status := "ok"
			price := euros(outcome.PriceCents)
			if outcome.Err != nil {
				status = outcome.Err.Error()
				price = ""
			}
			t.AppendRow(table.Row{outcome.Item.Store, outcome.Item.Item.FamilyKey, price, status})
		}
		t.AppendFooter(table.Row{"", "", "", fmt.Sprintf("%d ok, %d failed on %s", report.Ingested, report.Failed, report.ObservedOn)})
		t.Render()

		if report.Ingested == 0 && report.Failed > 0 {
			os.Exit(1)
		}
	},
}
