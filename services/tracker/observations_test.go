package tracker

import (
	"context"
	"testing"

	"pricetrack-backend/lib/units"

	"github.com/stretchr/testify/require"
)

func mustTrack(t *testing.T, service Service, store, familyKey, label string, size float64, unit, url string) TrackedItem {
	t.Helper()
	ctx := context.Background()
	item, err := service.RegisterCanonicalItem(ctx, familyKey, label, size, unit)
	require.NoError(t, err)
	tracked, err := service.RegisterStoreItem(ctx, store, item.ID, url, "mercator")
	require.NoError(t, err)
	return tracked
}

func TestIngestIdempotent(t *testing.T) {
	service, _ := setupTracker(t)
	ctx := context.Background()
	tracked := mustTrack(t, service, "Mercator", "olive_oil", "Oljčno olje", 0.75, "l", "https://mercator.si/p/oil")

	err := service.Ingest(ctx, tracked.StoreItemID, "2025-03-01", 1199, "Oljčno olje 0,75l")
	require.NoError(t, err)
	// a rerun on the same day replaces the value instead of duplicating
	err = service.Ingest(ctx, tracked.StoreItemID, "2025-03-01", 1149, "Oljčno olje 0,75l")
	require.NoError(t, err)

	points, err := service.History(ctx, "olive_oil", "")
	require.NoError(t, err)
	require.Len(t, points, 1)
	require.Equal(t, int64(1149), points[0].PriceCents)
	require.Equal(t, "2025-03-01", points[0].ObservedOn)
}

func TestIngestValidation(t *testing.T) {
	service, _ := setupTracker(t)
	ctx := context.Background()
	tracked := mustTrack(t, service, "Mercator", "olive_oil", "Oljčno olje", 0.75, "l", "https://mercator.si/p/oil")

	err := service.Ingest(ctx, tracked.StoreItemID, "2025-03-01", -1, "")
	require.ErrorIs(t, err, ErrInvalidPrice)

	err = service.Ingest(ctx, tracked.StoreItemID, "01.03.2025", 1199, "")
	require.Error(t, err)

	err = service.Ingest(ctx, tracked.StoreItemID, "2025-3-1", 1199, "")
	require.Error(t, err)

	// zero cents is a legitimate promotional price
	err = service.Ingest(ctx, tracked.StoreItemID, "2025-03-01", 0, "")
	require.NoError(t, err)
}

func TestHistory(t *testing.T) {
	service, _ := setupTracker(t)
	ctx := context.Background()
	mercator := mustTrack(t, service, "Mercator", "olive_oil", "Oljčno olje", 0.75, "l", "https://mercator.si/p/oil")

	item, err := service.RegisterCanonicalItem(ctx, "olive_oil", "Oljčno olje", 0.75, "l")
	require.NoError(t, err)
	hofer, err := service.RegisterStoreItem(ctx, "Hofer", item.ID, "https://hofer.si/p/oil", "hofer")
	require.NoError(t, err)

	require.NoError(t, service.Ingest(ctx, mercator.StoreItemID, "2025-03-02", 1199, ""))
	require.NoError(t, service.Ingest(ctx, mercator.StoreItemID, "2025-03-01", 1249, ""))
	require.NoError(t, service.Ingest(ctx, hofer.StoreItemID, "2025-03-01", 1099, ""))

	points, err := service.History(ctx, "olive_oil", "")
	require.NoError(t, err)
	require.Len(t, points, 3)

	filtered, err := service.History(ctx, "olive_oil", "Mercator")
	require.NoError(t, err)
	require.Len(t, filtered, 2)
	// ascending by date within the store
	require.Equal(t, "2025-03-01", filtered[0].ObservedOn)
	require.Equal(t, "2025-03-02", filtered[1].ObservedOn)

	// 11.99 € for 0.75 l normalizes to ~15.99 €/l
	require.InDelta(t, 15.9867, filtered[1].PerBase, 0.0001)
	require.Equal(t, units.BaseLiter, filtered[1].PerBaseUnit)

	// a padded store filter matches the same trimmed store name
	padded, err := service.History(ctx, "olive_oil", "  Mercator ")
	require.NoError(t, err)
	require.Len(t, padded, 2)

	_, err = service.History(ctx, "no_such_family", "")
	require.ErrorIs(t, err, ErrNotFound)
}
