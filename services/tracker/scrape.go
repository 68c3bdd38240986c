package tracker

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"pricetrack-backend/lib/scraper"
	"pricetrack-backend/lib/timezone"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// ItemOutcome is what happened to one tracked item during a batch
// scrape. Err is nil on success.
type ItemOutcome struct {
	Item       TrackedItem
	PriceCents int64
	Title      string
	Err        error
}

// BatchReport summarizes one scrape run.
type BatchReport struct {
	ObservedOn string
	Ingested   int
	Failed     int
	Outcomes   []ItemOutcome
}

// ScrapeAll fetches the current price of every tracked item and ingests
// it for the given date (today when empty). Every item is its own
// atomic unit: a failing scrape or ingest is recorded in the report and
// the batch moves on, so a rerun after a partial failure only has to
// redo the failed items.
func (s Service) ScrapeAll(ctx context.Context, registry scraper.Registry, observedOn string) (BatchReport, error) {
	ctx, span := tracer.Start(ctx, "ScrapeAll")
	defer span.End()

	observedOn = strings.TrimSpace(observedOn)
	if observedOn == "" {
		observedOn = timezone.Today()
	}
	_, err := time.Parse(time.DateOnly, observedOn)
	if err != nil {
		return BatchReport{}, fmt.Errorf("observed_on must be YYYY-MM-DD, got %q", observedOn)
	}
	span.SetAttributes(attribute.String("observed_on", observedOn))

	items, err := s.ListTracked(ctx, ListFilter{})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return BatchReport{}, err
	}

	report := BatchReport{ObservedOn: observedOn}
	for _, item := range items {
		outcome := s.scrapeOne(ctx, registry, item, observedOn)
		if outcome.Err != nil {
			report.Failed++
			slog.ErrorContext(ctx, "scrape failed",
				"store", item.Store,
				"family", item.Item.FamilyKey,
				"url", item.Url,
				"err", outcome.Err,
			)
		} else {
			report.Ingested++
			slog.InfoContext(ctx, "ingested observation",
				"date", observedOn,
				"store", item.Store,
				"family", item.Item.FamilyKey,
				"pack", fmt.Sprintf("%g%s", item.Item.Size, item.Item.Unit),
				"cents", outcome.PriceCents,
			)
		}
		report.Outcomes = append(report.Outcomes, outcome)
	}
	return report, nil
}

func (s Service) scrapeOne(ctx context.Context, registry scraper.Registry, item TrackedItem, observedOn string) ItemOutcome {
	outcome := ItemOutcome{Item: item}

	scr, ok := registry.Lookup(item.Scraper)
	if !ok {
		outcome.Err = fmt.Errorf("%w: no scraper registered for kind %q", ErrScrapeFailure, item.Scraper)
		return outcome
	}

	result, err := scr.Scrape(ctx, item.Url)
	if err != nil {
		outcome.Err = fmt.Errorf("%w: %s %s: %v", ErrScrapeFailure, item.Store, item.Url, err)
		return outcome
	}
	outcome.PriceCents = result.PriceCents
	outcome.Title = result.Title

	err = s.Ingest(ctx, item.StoreItemID, observedOn, result.PriceCents, result.Title)
	if err != nil {
		outcome.Err = err
	}
	return outcome
}
