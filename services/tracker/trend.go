package tracker

import (
	"context"

	"pricetrack-backend/lib/textutil"
	"pricetrack-backend/lib/units"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
	DirectionFlat Direction = "flat"
	// fewer than two observations exist, there is nothing to compare
	DirectionInsufficient Direction = "insufficient"
)

// TrendRow is the price movement between the two most recent
// observations of one store item.
type TrendRow struct {
	Store string
	Label string
	Size  float64
	Unit  units.Unit

	Direction   Direction
	LatestCents int64
	LatestOn    string
	DeltaCents  int64
	// Percent is only meaningful when PercentValid is set; a previous
	// price of zero cents has no defined percentage change
	Percent      float64
	PercentValid bool
	// PreviousOn is empty when the trend has no span to report
	PreviousOn string
}

// Trend reports, per store item tracking the family, the movement
// between its latest two observations. Rows are ordered by store name,
// unit, then size so repeated runs render identically.
func (s Service) Trend(ctx context.Context, familyKey string) ([]TrendRow, error) {
	ctx, span := tracer.Start(ctx, "Trend")
	defer span.End()
	span.SetAttributes(attribute.String("family_key", familyKey))

	familyKey = textutil.NormalizeKey(familyKey)
	err := s.requireFamily(ctx, familyKey)
	if err != nil {
		return nil, err
	}

	rows, err := s.qry.ObservationsByFamilyDesc(ctx, familyKey)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	// rows arrive ordered by store item, newest observation first, so
	// the first two rows of each group are the pair we need
	var out []TrendRow
	counts := map[int64]int{}
	index := map[int64]int{}
	for _, r := range rows {
		seen := counts[r.StoreItemID]
		counts[r.StoreItemID] = seen + 1

		switch seen {
		case 0:
			index[r.StoreItemID] = len(out)
			out = append(out, TrendRow{
				Store:       r.StoreName,
				Label:       r.Label,
				Size:        r.Size,
				Unit:        units.Unit(r.Unit),
				Direction:   DirectionInsufficient,
				LatestCents: r.PriceCents,
				LatestOn:    r.ObservedOn,
			})
		case 1:
			row := &out[index[r.StoreItemID]]
			row.DeltaCents = row.LatestCents - r.PriceCents
			switch {
			case row.DeltaCents > 0:
				row.Direction = DirectionUp
			case row.DeltaCents < 0:
				row.Direction = DirectionDown
			default:
				row.Direction = DirectionFlat
			}
			if r.PriceCents != 0 {
				row.Percent = float64(row.DeltaCents) / float64(r.PriceCents) * 100
				row.PercentValid = true
			}
			if r.ObservedOn != row.LatestOn {
				row.PreviousOn = r.ObservedOn
			}
		}
	}
	return out, nil
}
