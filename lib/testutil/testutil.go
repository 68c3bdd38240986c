package testutil

import (
	"database/sql"
	"fmt"
	"strings"
	"testing"

	"pricetrack-backend/lib/telemetry"

	_ "modernc.org/sqlite"
)

type ServiceParams struct {
	Name string
	// if unspecified, it will skip setting up a db
	DbSchema string
	// if unspecified, it will use `:memory:`
	DbPath string
}

type ServiceResult struct {
	DB *sql.DB
}

// SetupService opens a sqlite database for a package's tests, applies
// the schema, and wires up telemetry. The returned cleanup should be
// deferred.
func SetupService(t testing.TB, params ServiceParams) (ServiceResult, func()) {
	cleanup := telemetry.SetupForTesting(t, fmt.Sprintf("test:%s", params.Name))

	dbpath := params.DbPath
	if dbpath == "" {
		dbpath = ":memory:"
	}
	sqlite, err := sql.Open("sqlite", fmt.Sprintf("file:%s?_pragma=foreign_keys(1)", dbpath))
	if err != nil {
		t.Fatal(err)
	}
	if dbpath == ":memory:" {
		// an in-memory sqlite db only exists on the connection that
		// created it
		sqlite.SetMaxOpenConns(1)
	}
	if params.DbSchema != "" {
		_, err = sqlite.Exec(params.DbSchema)
		if err != nil && !strings.Contains(err.Error(), "already exists") {
			t.Fatal(err)
		}
	}

	return ServiceResult{DB: sqlite}, func() {
		sqlite.Close()
		cleanup()
	}
}
