package tracker

import (
	"context"
	"database/sql"

	"pricetrack-backend/services/tracker/db"

	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("services/tracker")

// Service is the canonical pricing engine: catalog registration, daily
// price ingestion, history/trend reports and shopping list comparison,
// all against one sqlite handle passed in by the caller.
type Service struct {
	db  *sql.DB
	qry *db.Queries
}

func NewService(database *sql.DB) Service {
	return Service{
		db:  database,
		qry: db.New(database),
	}
}

// InitSchema applies the embedded schema. Safe to run on every startup,
// all statements are IF NOT EXISTS.
func (s Service) InitSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, db.Schema)
	return err
}
