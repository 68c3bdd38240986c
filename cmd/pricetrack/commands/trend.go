package commands

import (
	"fmt"

	"pricetrack-backend/services/tracker"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(trendCmd)
}

var trendCmd = &cobra.Command{
	Use:   "trend <family-key>",
	Short: "Shows the movement between the latest two prices, per store.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		service, cleanup := openService(cmd.Context())
		defer cleanup()

		rows, err := service.Trend(cmd.Context(), args[0])
		if err != nil {
			fail(err)
		}

		t := newTable()
		t.AppendHeader(table.Row{"Store", "Pack", "Latest", "Δ", "%", "Since"})
		for _, r := range rows {
			if r.Direction == tracker.DirectionInsufficient {
				t.AppendRow(table.Row{
					r.Store,
					fmt.Sprintf("%g%s", r.Size, r.Unit),
					euros(r.LatestCents) + " on " + r.LatestOn,
					"", "", "only one observation",
				})
				continue
			}
			percent := ""
			if r.PercentValid {
				percent = fmt.Sprintf("%+.1f%%", r.Percent)
			}
			t.AppendRow(table.Row{
				r.Store,
				fmt.Sprintf("%g%s", r.Size, r.Unit),
				euros(r.LatestCents) + " on " + r.LatestOn,
				fmt.Sprintf("%s %+d c", arrow(r.Direction), r.DeltaCents),
				percent,
				r.PreviousOn,
			})
		}
		t.Render()
	},
}

func arrow(d tracker.Direction) string {
	switch d {
	case tracker.DirectionUp:
		return "↑"
	case tracker.DirectionDown:
		return "↓"
	default:
		return "→"
	}
}
