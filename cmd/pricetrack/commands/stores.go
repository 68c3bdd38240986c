package commands

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(storesCmd)
	rootCmd.AddCommand(untrackStoreCmd)
	rootCmd.AddCommand(untrackItemCmd)
	rootCmd.AddCommand(untrackCmd)
}

var storesCmd = &cobra.Command{
	Use:   "stores",
	Short: "Prints every known store.",
	Run: func(cmd *cobra.Command, args []string) {
		service, cleanup := openService(cmd.Context())
		defer cleanup()

		names, err := service.ListStores(cmd.Context())
		if err != nil {
			fail(err)
		}

		t := newTable()
		t.AppendHeader(table.Row{"Store"})
		for _, name := range names {
			t.AppendRow(table.Row{name})
		}
		t.Render()
	},
}

var untrackStoreCmd = &cobra.Command{
	Use:   "untrack-store <store>",
	Short: "Removes a store along with its tracked items and their whole price history.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		service, cleanup := openService(cmd.Context())
		defer cleanup()

		err := service.DeleteStore(cmd.Context(), args[0])
		if err != nil {
			fail(err)
		}
		slog.Info("store removed", "store", args[0])
	},
}

var untrackCmd = &cobra.Command{
	Use:   "untrack <url>",
	Short: "Stops tracking one product page, dropping its price history.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		service, cleanup := openService(cmd.Context())
		defer cleanup()

		err := service.DeleteTrackedUrl(cmd.Context(), args[0])
		if err != nil {
			fail(err)
		}
		slog.Info("url untracked", "url", args[0])
	},
}

var untrackItemCmd = &cobra.Command{
	Use:   "untrack-item <canonical-item-id>",
	Short: "Removes a packaging variant along with its bindings and price history.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			slog.Error("invalid canonical item id", "arg", args[0])
			os.Exit(1)
		}

		service, cleanup := openService(cmd.Context())
		defer cleanup()

		err = service.DeleteCanonicalItem(cmd.Context(), id)
		if err != nil {
			fail(err)
		}
		slog.Info("canonical item removed", "id", id)
	},
}
