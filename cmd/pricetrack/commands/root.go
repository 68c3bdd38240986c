package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"pricetrack-backend/lib/configuration"
	"pricetrack-backend/lib/configutil"
	"pricetrack-backend/lib/serviceutil"
	"pricetrack-backend/services/tracker"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

type Config struct {
	Database configuration.Database `json:"database"`
}

var dbFile *string

var rootCmd = &cobra.Command{
	Use:   "pricetrack",
	Short: "pricetrack follows grocery prices across store websites.",
}

func init() {
	dbFile = rootCmd.PersistentFlags().String("db", "", "Override the database file from config.json5.")
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openService reads config.json5 (optional), opens the database and
// applies the schema. The cleanup closes the handle.
func openService(ctx context.Context) (tracker.Service, func()) {
	cfg, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		serviceutil.Fatal("failed to read config", err)
	}
	if *dbFile != "" {
		cfg.Database = configuration.Database{File: *dbFile}
	}

	database, err := cfg.Database.OpenDB()
	if err != nil {
		serviceutil.Fatal("failed to open db", err)
	}
	service := tracker.NewService(database)
	err = service.InitSchema(ctx)
	if err != nil {
		serviceutil.Fatal("failed to apply schema", err)
	}
	return service, func() { database.Close() }
}

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(os.Stdout)
	return t
}

func euros(cents int64) string {
	return fmt.Sprintf("%.2f €", float64(cents)/100)
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err.Error())
	os.Exit(1)
}
