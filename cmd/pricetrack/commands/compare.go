package commands

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"pricetrack-backend/services/tracker"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(compareCmd)
}

var compareCmd = &cobra.Command{
	Use:   "compare <family-key>=<quantity>...",
	Short: "Prices a shopping list at every known store.",
	Long: `Prices a shopping list at every known store, using each store's latest
observed price per family. Stores missing part of the list are ranked
after the ones covering all of it.

  pricetrack compare milk=2 bread=1 olive_oil=1`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		entries, err := parseEntries(args)
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}

		service, cleanup := openService(cmd.Context())
		defer cleanup()

		out, err := service.CompareList(cmd.Context(), entries)
		if err != nil {
			fail(err)
		}

		t := newTable()
		t.AppendHeader(table.Row{"Store", "Total", "Missing"})
		for _, cmp := range out {
			total := euros(cmp.TotalCents)
			if !cmp.Complete {
				total += " (partial)"
			}
			t.AppendRow(table.Row{cmp.Store, total, strings.Join(cmp.Unavailable, ", ")})
		}
		t.Render()
	},
}

func parseEntries(args []string) ([]tracker.ListEntry, error) {
	entries := make([]tracker.ListEntry, 0, len(args))
	for _, arg := range args {
		key, qty, found := strings.Cut(arg, "=")
		if !found {
			// a bare family key means one of it
			entries = append(entries, tracker.ListEntry{FamilyKey: arg, Quantity: 1})
			continue
		}
		n, err := strconv.ParseInt(qty, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid quantity in %q: %v", arg, err)
		}
		entries = append(entries, tracker.ListEntry{FamilyKey: key, Quantity: n})
	}
	return entries, nil
}
