package tracker

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func TestTrendSingleObservation(t *testing.T) {
	service, _ := setupTracker(t)
	ctx := context.Background()
	tracked := mustTrack(t, service, "Mercator", "olive_oil", "Oljčno olje", 0.75, "l", "https://mercator.si/p/oil")

	require.NoError(t, service.Ingest(ctx, tracked.StoreItemID, "2025-03-01", 1199, ""))

	rows, err := service.Trend(ctx, "olive_oil")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, DirectionInsufficient, rows[0].Direction)
	require.Equal(t, int64(1199), rows[0].LatestCents)
	require.Empty(t, rows[0].PreviousOn)
}

func TestTrendDirections(t *testing.T) {
	service, _ := setupTracker(t)
	ctx := context.Background()
	tracked := mustTrack(t, service, "Mercator", "olive_oil", "Oljčno olje", 0.75, "l", "https://mercator.si/p/oil")

	require.NoError(t, service.Ingest(ctx, tracked.StoreItemID, "2025-03-01", 1199, ""))
	require.NoError(t, service.Ingest(ctx, tracked.StoreItemID, "2025-03-02", 1249, ""))

	rows, err := service.Trend(ctx, "olive_oil")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, DirectionUp, rows[0].Direction)
	require.Equal(t, int64(50), rows[0].DeltaCents)
	require.True(t, rows[0].PercentValid)
	require.InDelta(t, 4.1701, rows[0].Percent, 0.0001)
	require.Equal(t, "2025-03-01", rows[0].PreviousOn)
	require.Equal(t, "2025-03-02", rows[0].LatestOn)

	// only the latest pair counts, an older third observation changes nothing
	require.NoError(t, service.Ingest(ctx, tracked.StoreItemID, "2025-02-20", 999, ""))
	rows, err = service.Trend(ctx, "olive_oil")
	require.NoError(t, err)
	require.Equal(t, DirectionUp, rows[0].Direction)
	require.Equal(t, int64(50), rows[0].DeltaCents)

	require.NoError(t, service.Ingest(ctx, tracked.StoreItemID, "2025-03-03", 1249, ""))
	rows, err = service.Trend(ctx, "olive_oil")
	require.NoError(t, err)
	require.Equal(t, DirectionFlat, rows[0].Direction)
	require.Zero(t, rows[0].DeltaCents)

	require.NoError(t, service.Ingest(ctx, tracked.StoreItemID, "2025-03-04", 1199, ""))
	rows, err = service.Trend(ctx, "olive_oil")
	require.NoError(t, err)
	require.Equal(t, DirectionDown, rows[0].Direction)
	require.Equal(t, int64(-50), rows[0].DeltaCents)
}

func TestTrendZeroPreviousPrice(t *testing.T) {
	service, _ := setupTracker(t)
	ctx := context.Background()
	tracked := mustTrack(t, service, "Mercator", "olive_oil", "Oljčno olje", 0.75, "l", "https://mercator.si/p/oil")

	require.NoError(t, service.Ingest(ctx, tracked.StoreItemID, "2025-03-01", 0, ""))
	require.NoError(t, service.Ingest(ctx, tracked.StoreItemID, "2025-03-02", 1199, ""))

	rows, err := service.Trend(ctx, "olive_oil")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	// the rise is reported, its percentage is not defined
	require.Equal(t, DirectionUp, rows[0].Direction)
	require.Equal(t, int64(1199), rows[0].DeltaCents)
	require.False(t, rows[0].PercentValid)
}

func TestTrendPerStoreItem(t *testing.T) {
	service, _ := setupTracker(t)
	ctx := context.Background()

	mercator := mustTrack(t, service, "Mercator", "olive_oil", "Oljčno olje", 0.75, "l", "https://mercator.si/p/oil")
	item, err := service.RegisterCanonicalItem(ctx, "olive_oil", "Oljčno olje", 0.75, "l")
	require.NoError(t, err)
	hofer, err := service.RegisterStoreItem(ctx, "Hofer", item.ID, "https://hofer.si/p/oil", "hofer")
	require.NoError(t, err)

	require.NoError(t, service.Ingest(ctx, mercator.StoreItemID, "2025-03-01", 1249, ""))
	require.NoError(t, service.Ingest(ctx, mercator.StoreItemID, "2025-03-02", 1199, ""))
	require.NoError(t, service.Ingest(ctx, hofer.StoreItemID, "2025-03-02", 1099, ""))

	rows, err := service.Trend(ctx, "olive_oil")
	require.NoError(t, err)

	want := []TrendRow{
		{
			Store:       "Hofer",
			Label:       "Oljčno olje",
			Size:        0.75,
			Unit:        "l",
			Direction:   DirectionInsufficient,
			LatestCents: 1099,
			LatestOn:    "2025-03-02",
		},
		{
			Store:        "Mercator",
			Label:        "Oljčno olje",
			Size:         0.75,
			Unit:         "l",
			Direction:    DirectionDown,
			LatestCents:  1199,
			LatestOn:     "2025-03-02",
			DeltaCents:   -50,
			Percent:      -4.00320256204964,
			PercentValid: true,
			PreviousOn:   "2025-03-01",
		},
	}
	diff := cmp.Diff(want, rows, cmpopts.EquateApprox(0, 0.001))
	require.Empty(t, diff)
}

func TestTrendUnknownFamily(t *testing.T) {
	service, _ := setupTracker(t)

	_, err := service.Trend(context.Background(), "no_such_family")
	require.ErrorIs(t, err, ErrNotFound)
}
