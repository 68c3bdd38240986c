package tracker

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"pricetrack-backend/lib/textutil"
	"pricetrack-backend/lib/units"
	"pricetrack-backend/services/tracker/db"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// PricePoint is one observation joined with the packaging it was
// observed for. PerBase carries the normalized unit price when the
// packaging normalizes cleanly.
type PricePoint struct {
	Store       string
	Label       string
	Size        float64
	Unit        units.Unit
	ObservedOn  string
	PriceCents  int64
	TitleRaw    string
	PerBase     float64
	PerBaseUnit units.Base
}

// Ingest records one daily price snapshot. Re-running it for the same
// store item and date overwrites the previous value in place — the
// insert-or-update runs as one statement keyed on the unique
// constraint, so overlapping scheduled runs cannot duplicate rows.
func (s Service) Ingest(ctx context.Context, storeItemID int64, observedOn string, priceCents int64, titleRaw string) error {
	ctx, span := tracer.Start(ctx, "Ingest")
	defer span.End()
	span.SetAttributes(
		attribute.Int64("store_item_id", storeItemID),
		attribute.String("observed_on", observedOn),
	)

	observedOn = strings.TrimSpace(observedOn)
	_, err := time.Parse(time.DateOnly, observedOn)
	if err != nil {
		return fmt.Errorf("observed_on must be YYYY-MM-DD, got %q", observedOn)
	}
	if priceCents < 0 {
		return fmt.Errorf("%w: got %d cents", ErrInvalidPrice, priceCents)
	}

	title := sql.NullString{}
	if titleRaw != "" {
		title = sql.NullString{String: titleRaw, Valid: true}
	}
	err = s.qry.UpsertObservation(ctx, db.UpsertObservationParams{
		StoreItemID: storeItemID,
		ObservedOn:  observedOn,
		PriceCents:  priceCents,
		TitleRaw:    title,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// History returns every observation for a family, ascending by date per
// store item. storeFilter narrows it to one store when non-empty.
func (s Service) History(ctx context.Context, familyKey, storeFilter string) ([]PricePoint, error) {
	ctx, span := tracer.Start(ctx, "History")
	defer span.End()
	span.SetAttributes(attribute.String("family_key", familyKey))

	familyKey = textutil.NormalizeKey(familyKey)
	storeFilter = strings.TrimSpace(storeFilter)
	err := s.requireFamily(ctx, familyKey)
	if err != nil {
		return nil, err
	}

	var points []PricePoint
	if storeFilter == "" {
		rows, err := s.qry.HistoryByFamily(ctx, familyKey)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		points = make([]PricePoint, len(rows))
		for i, r := range rows {
			points[i] = pricePoint(r.StoreName, r.Label, r.Size, r.Unit, r.ObservedOn, r.PriceCents, r.TitleRaw)
		}
	} else {
		rows, err := s.qry.HistoryByFamilyAndStore(ctx, db.HistoryByFamilyAndStoreParams{
			FamilyKey: familyKey,
			Name:      storeFilter,
		})
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		points = make([]PricePoint, len(rows))
		for i, r := range rows {
			points[i] = pricePoint(r.StoreName, r.Label, r.Size, r.Unit, r.ObservedOn, r.PriceCents, r.TitleRaw)
		}
	}
	return points, nil
}

func (s Service) requireFamily(ctx context.Context, familyKey string) error {
	variants, err := s.qry.ListCanonicalItemsByFamily(ctx, familyKey)
	if err != nil {
		return err
	}
	if len(variants) == 0 {
		return fmt.Errorf("%w: family %q", ErrNotFound, familyKey)
	}
	return nil
}

func pricePoint(store, label string, size float64, unit, observedOn string, cents int64, title sql.NullString) PricePoint {
	p := PricePoint{
		Store:      store,
		Label:      label,
		Size:       size,
		Unit:       units.Unit(unit),
		ObservedOn: observedOn,
		PriceCents: cents,
		TitleRaw:   title.String,
	}
	perBase, base, err := units.PricePerBase(cents, size, p.Unit)
	if err == nil {
		p.PerBase = perBase
		p.PerBaseUnit = base
	}
	return p
}
