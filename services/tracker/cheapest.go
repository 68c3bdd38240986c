package tracker

import (
	"context"
	"fmt"
	"sort"

	"pricetrack-backend/lib/textutil"
	"pricetrack-backend/lib/units"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// CheapestRow is one store offer for a family, normalized to its base
// unit so different pack sizes compare directly.
type CheapestRow struct {
	Store       string
	Label       string
	Size        float64
	Unit        units.Unit
	Url         string
	PriceCents  int64
	ObservedOn  string
	PerBase     float64
	PerBaseUnit units.Base
}

// CheapestReport ranks every store's latest offer for a family by
// normalized unit price.
type CheapestReport struct {
	// ordered cheapest per-base-unit first
	Rows []CheapestRow
	// tracked offers with no observation yet, e.g. "Mercator 0.75l"
	Missing []string
	// set when the family mixes base units (volume vs mass vs count);
	// cross-base rows are grouped, not compared
	MixedUnits bool
}

// Cheapest finds the store currently selling a family cheapest per base
// unit, across all tracked pack variants.
func (s Service) Cheapest(ctx context.Context, familyKey string) (CheapestReport, error) {
	ctx, span := tracer.Start(ctx, "Cheapest")
	defer span.End()
	span.SetAttributes(attribute.String("family_key", familyKey))

	familyKey = textutil.NormalizeKey(familyKey)
	err := s.requireFamily(ctx, familyKey)
	if err != nil {
		return CheapestReport{}, err
	}

	rows, err := s.qry.LatestObservationsByFamily(ctx, familyKey)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return CheapestReport{}, err
	}

	report := CheapestReport{}
	bases := map[units.Base]bool{}
	for _, r := range rows {
		if !r.PriceCents.Valid {
			report.Missing = append(report.Missing, fmt.Sprintf("%s %g%s", r.StoreName, r.Size, r.Unit))
			continue
		}
		perBase, base, err := units.PricePerBase(r.PriceCents.Int64, r.Size, units.Unit(r.Unit))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return CheapestReport{}, err
		}
		bases[base] = true
		report.Rows = append(report.Rows, CheapestRow{
			Store:       r.StoreName,
			Label:       r.Label,
			Size:        r.Size,
			Unit:        units.Unit(r.Unit),
			Url:         r.Url,
			PriceCents:  r.PriceCents.Int64,
			ObservedOn:  r.ObservedOn.String,
			PerBase:     perBase,
			PerBaseUnit: base,
		})
	}
	report.MixedUnits = len(bases) > 1

	sort.SliceStable(report.Rows, func(i, j int) bool {
		if report.Rows[i].PerBaseUnit != report.Rows[j].PerBaseUnit {
			return report.Rows[i].PerBaseUnit < report.Rows[j].PerBaseUnit
		}
		if report.Rows[i].PerBase != report.Rows[j].PerBase {
			return report.Rows[i].PerBase < report.Rows[j].PerBase
		}
		return report.Rows[i].Store < report.Rows[j].Store
	})
	return report, nil
}
