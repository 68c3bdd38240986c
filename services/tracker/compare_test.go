package tracker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompareListAvailabilityOrdering(t *testing.T) {
	service, _ := setupTracker(t)
	ctx := context.Background()

	oilA := mustTrack(t, service, "Store A", "olive_oil", "Oljčno olje", 0.75, "l", "https://a.example/oil")
	item, err := service.RegisterCanonicalItem(ctx, "olive_oil", "Oljčno olje", 0.75, "l")
	require.NoError(t, err)
	oilB, err := service.RegisterStoreItem(ctx, "Store B", item.ID, "https://b.example/oil", "hofer")
	require.NoError(t, err)

	// Store A tracks the oil but has never seen a price; Store B has
	require.NoError(t, service.Ingest(ctx, oilB.StoreItemID, "2025-03-01", 599, ""))
	_ = oilA

	out, err := service.CompareList(ctx, []ListEntry{{FamilyKey: "olive_oil", Quantity: 1}})
	require.NoError(t, err)
	require.Len(t, out, 2)

	require.Equal(t, "Store B", out[0].Store)
	require.True(t, out[0].Complete)
	require.Equal(t, int64(599), out[0].TotalCents)

	require.Equal(t, "Store A", out[1].Store)
	require.False(t, out[1].Complete)
	require.Equal(t, []string{"olive_oil"}, out[1].Unavailable)
}

func TestCompareListQuantitiesAndStaleness(t *testing.T) {
	service, _ := setupTracker(t)
	ctx := context.Background()

	milk := mustTrack(t, service, "Mercator", "milk", "Mleko 3.5%", 1, "l", "https://mercator.si/p/milk")
	bread := mustTrack(t, service, "Mercator", "bread", "Kruh beli", 500, "g", "https://mercator.si/p/bread")

	// the latest observation counts even when the dates differ per item
	require.NoError(t, service.Ingest(ctx, milk.StoreItemID, "2025-03-01", 129, ""))
	require.NoError(t, service.Ingest(ctx, milk.StoreItemID, "2025-03-02", 135, ""))
	require.NoError(t, service.Ingest(ctx, bread.StoreItemID, "2025-02-20", 249, ""))

	out, err := service.CompareList(ctx, []ListEntry{
		{FamilyKey: "milk", Quantity: 2},
		{FamilyKey: "bread", Quantity: 1},
		{FamilyKey: "milk", Quantity: 1},
	})
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.True(t, out[0].Complete)
	// 3 * 135 + 1 * 249, duplicate milk lines merged
	require.Equal(t, int64(654), out[0].TotalCents)
}

func TestCompareListCheapestVariantPerStore(t *testing.T) {
	service, _ := setupTracker(t)
	ctx := context.Background()

	small := mustTrack(t, service, "Mercator", "olive_oil", "Oljčno olje 0.75l", 0.75, "l", "https://mercator.si/p/oil-small")
	big, err := service.RegisterCanonicalItem(ctx, "olive_oil", "Oljčno olje 1l", 1, "l")
	require.NoError(t, err)
	bigTracked, err := service.RegisterStoreItem(ctx, "Hofer", big.ID, "https://hofer.si/p/oil-big", "hofer")
	require.NoError(t, err)

	require.NoError(t, service.Ingest(ctx, small.StoreItemID, "2025-03-01", 1199, ""))
	require.NoError(t, service.Ingest(ctx, bigTracked.StoreItemID, "2025-03-01", 1399, ""))

	out, err := service.CompareList(ctx, []ListEntry{{FamilyKey: "olive_oil", Quantity: 1}})
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.Equal(t, "Mercator", out[0].Store)
	require.Equal(t, int64(1199), out[0].TotalCents)
	require.Equal(t, "Hofer", out[1].Store)
	require.Equal(t, int64(1399), out[1].TotalCents)
}

func TestCompareListValidation(t *testing.T) {
	service, _ := setupTracker(t)
	ctx := context.Background()
	tracked := mustTrack(t, service, "Mercator", "milk", "Mleko", 1, "l", "https://mercator.si/p/milk")
	require.NoError(t, service.Ingest(ctx, tracked.StoreItemID, "2025-03-01", 129, ""))

	_, err := service.CompareList(ctx, []ListEntry{{FamilyKey: "milk", Quantity: 0}})
	require.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = service.CompareList(ctx, []ListEntry{{FamilyKey: "milk", Quantity: -2}})
	require.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = service.CompareList(ctx, nil)
	require.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = service.CompareList(ctx, []ListEntry{
		{FamilyKey: "milk", Quantity: 1},
		{FamilyKey: "no_such_family", Quantity: 1},
	})
	require.ErrorIs(t, err, ErrNotFound)
}
