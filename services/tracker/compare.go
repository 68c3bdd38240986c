package tracker

import (
	"context"
	"fmt"
	"sort"

	"pricetrack-backend/lib/textutil"

	"go.opentelemetry.io/otel/codes"
)

// ListEntry is one line of a shopping list.
type ListEntry struct {
	FamilyKey string
	Quantity  int64
}

// StoreComparison is one store's cost for a shopping list. Families the
// store does not track, or has never observed a price for, are listed
// in Unavailable instead of contributing to the total.
type StoreComparison struct {
	Store       string
	TotalCents  int64
	Unavailable []string
	Complete    bool
}

// CompareList prices a shopping list at every known store. Duplicate
// family keys are merged by summing their quantities. The result is
// ordered so the cheapest store that covers the whole list comes
// first; partial stores follow, cheapest first, flagged via Complete.
func (s Service) CompareList(ctx context.Context, entries []ListEntry) ([]StoreComparison, error) {
	ctx, span := tracer.Start(ctx, "CompareList")
	defer span.End()

	merged, order, err := mergeEntries(entries)
	if err != nil {
		return nil, err
	}

	stores, err := s.qry.ListStores(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	// latest price per (family, store), cheapest variant when a store
	// tracks several pack sizes of the same family
	prices := map[string]map[string]int64{}
	for _, familyKey := range order {
		err := s.requireFamily(ctx, familyKey)
		if err != nil {
			return nil, err
		}
		rows, err := s.qry.LatestObservationsByFamily(ctx, familyKey)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		perStore := map[string]int64{}
		for _, r := range rows {
			if !r.PriceCents.Valid {
				continue
			}
			current, ok := perStore[r.StoreName]
			if !ok || r.PriceCents.Int64 < current {
				perStore[r.StoreName] = r.PriceCents.Int64
			}
		}
		prices[familyKey] = perStore
	}

	out := make([]StoreComparison, 0, len(stores))
	for _, store := range stores {
		cmp := StoreComparison{Store: store.Name}
		for _, familyKey := range order {
			cents, ok := prices[familyKey][store.Name]
			if !ok {
				cmp.Unavailable = append(cmp.Unavailable, familyKey)
				continue
			}
			cmp.TotalCents += cents * merged[familyKey]
		}
		cmp.Complete = len(cmp.Unavailable) == 0
		out = append(out, cmp)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Complete != out[j].Complete {
			return out[i].Complete
		}
		if out[i].TotalCents != out[j].TotalCents {
			return out[i].TotalCents < out[j].TotalCents
		}
		return out[i].Store < out[j].Store
	})
	return out, nil
}

func mergeEntries(entries []ListEntry) (map[string]int64, []string, error) {
	merged := map[string]int64{}
	var order []string
	for _, e := range entries {
		familyKey := textutil.NormalizeKey(e.FamilyKey)
		if familyKey == "" {
			return nil, nil, fmt.Errorf("%w: family key cannot be empty", ErrNotFound)
		}
		if e.Quantity < 1 {
			return nil, nil, fmt.Errorf("%w: %s has quantity %d", ErrInvalidQuantity, familyKey, e.Quantity)
		}
		if _, ok := merged[familyKey]; !ok {
			order = append(order, familyKey)
		}
		merged[familyKey] += e.Quantity
	}
	if len(order) == 0 {
		return nil, nil, fmt.Errorf("%w: shopping list is empty", ErrInvalidQuantity)
	}
	return merged, order, nil
}
