package commands

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"

	"pricetrack-backend/lib/scrapers"

	"github.com/spf13/cobra"
)

var trackScraper *string

func init() {
	trackScraper = trackCmd.Flags().String("scraper", "", "Scraper kind; inferred from the url host when empty.")
	rootCmd.AddCommand(trackCmd)
}

var trackCmd = &cobra.Command{
	Use:   "track <family-key> <label> <size> <unit> <store> <url>",
	Short: "Starts tracking a product page as one packaging variant of a family.",
	Args:  cobra.ExactArgs(6),
	Run: func(cmd *cobra.Command, args []string) {
		familyKey, label, store, pageUrl := args[0], args[1], args[4], args[5]

		size, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid size %q: %v\n", args[2], err)
			os.Exit(1)
		}

		kind := *trackScraper
		if kind == "" {
			kind = inferScraper(pageUrl)
		}
		if kind == "" {
			fmt.Fprintln(os.Stderr, "cannot infer a scraper from the url host, pass --scraper")
			os.Exit(1)
		}

		service, cleanup := openService(cmd.Context())
		defer cleanup()

		item, err := service.RegisterCanonicalItem(cmd.Context(), familyKey, label, size, args[3])
		if err != nil {
			fail(err)
		}
		tracked, err := service.RegisterStoreItem(cmd.Context(), store, item.ID, pageUrl, kind)
		if err != nil {
			fail(err)
		}

		slog.Info("tracking",
			"store", tracked.Store,
			"family", tracked.Item.FamilyKey,
			"pack", fmt.Sprintf("%g%s", tracked.Item.Size, tracked.Item.Unit),
			"scraper", tracked.Scraper,
			"url", tracked.Url,
		)
	},
}

func inferScraper(pageUrl string) string {
	u, err := url.Parse(pageUrl)
	if err != nil {
		return ""
	}
	host := u.Hostname()
	for kind := range scrapers.Default() {
		if strings.Contains(host, kind) {
			return kind
		}
	}
	return ""
}
