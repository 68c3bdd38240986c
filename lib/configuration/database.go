package configuration

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

// Database points the tracker at its datastore: a local sqlite file by
// default, or a remote libsql instance when Url is set.
type Database struct {
	File      string `json:"file"`
	Url       string `json:"url"`
	AuthToken string `json:"auth_token"`
}

func (config Database) OpenDB() (*sql.DB, error) {
	if config.Url != "" {
		dsn := config.Url
		if config.AuthToken != "" {
			dsn = fmt.Sprintf("%s?authToken=%s", config.Url, config.AuthToken)
		}
		return sql.Open("libsql", dsn)
	}

	file := config.File
	if file == "" {
		file = "data/prices.sqlite"
	}
	if file != ":memory:" {
		err := os.MkdirAll(filepath.Dir(file), 0o755)
		if err != nil {
			return nil, err
		}
	}
	// cascade deletes depend on foreign keys being enforced on every connection
	return sql.Open("sqlite", fmt.Sprintf("file:%s?_pragma=foreign_keys(1)", file))
}
