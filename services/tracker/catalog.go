package tracker

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"strings"

	"pricetrack-backend/lib/textutil"
	"pricetrack-backend/lib/units"
	"pricetrack-backend/services/tracker/db"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// CanonicalItem is one packaging variant of a product family.
type CanonicalItem struct {
	ID        int64
	FamilyKey string
	Label     string
	Size      float64
	Unit      units.Unit
}

// TrackedItem binds one store's product url to a canonical item.
type TrackedItem struct {
	StoreItemID int64
	Store       string
	Url         string
	Scraper     string
	Item        CanonicalItem
	// Latest is set when requested via ListFilter.WithLatest and the
	// item has at least one observation
	Latest *LatestPrice
}

// LatestPrice is a tracked item's most recent observation, normalized
// to its base unit.
type LatestPrice struct {
	ObservedOn  string
	PriceCents  int64
	PerBase     float64
	PerBaseUnit units.Base
}

// ListFilter narrows ListTracked output and opts into annotation.
type ListFilter struct {
	// keep only this store's items when non-empty
	Store string
	// keep only this family when non-empty
	FamilyKey string
	// annotate each item with its latest observed price
	WithLatest bool
}

// RegisterCanonicalItem creates a packaging variant, or returns the
// existing one matching (familyKey, size, unit). A different label on
// an existing variant is treated as a label correction.
func (s Service) RegisterCanonicalItem(ctx context.Context, familyKey, label string, size float64, unit string) (CanonicalItem, error) {
	ctx, span := tracer.Start(ctx, "RegisterCanonicalItem")
	defer span.End()
	span.SetAttributes(attribute.String("family_key", familyKey))

	familyKey = textutil.NormalizeKey(familyKey)
	label = strings.TrimSpace(label)
	if familyKey == "" {
		return CanonicalItem{}, fmt.Errorf("%w: family key cannot be empty", ErrInvalidPackaging)
	}
	if label == "" {
		return CanonicalItem{}, fmt.Errorf("%w: label cannot be empty", ErrInvalidPackaging)
	}
	parsedUnit, err := units.Parse(unit)
	if err != nil {
		return CanonicalItem{}, err
	}
	sizeBase, _, err := units.SizeInBase(size, parsedUnit)
	if err != nil {
		return CanonicalItem{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return CanonicalItem{}, err
	}
	defer tx.Rollback()
	txqry := s.qry.WithTx(tx)

	existing, err := txqry.GetCanonicalItemByPackaging(ctx, db.GetCanonicalItemByPackagingParams{
		FamilyKey: familyKey,
		Size:      size,
		Unit:      string(parsedUnit),
	})
	if err == nil {
		if existing.Label != label {
			err = txqry.UpdateCanonicalItemLabel(ctx, db.UpdateCanonicalItemLabelParams{
				Label: label,
				ID:    existing.ID,
			})
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
				return CanonicalItem{}, err
			}
			existing.Label = label
		}
		return canonicalFromRow(existing), tx.Commit()
	}
	if !errors.Is(err, sql.ErrNoRows) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return CanonicalItem{}, err
	}

	// a new (size, unit) spelling may still describe the same physical
	// pack as an existing variant, e.g. 750 ml vs 0.75 l — that would
	// slip past the unique constraint while breaking the one-row-per-
	// variant contract
	variants, err := txqry.ListCanonicalItemsByFamily(ctx, familyKey)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return CanonicalItem{}, err
	}
	for _, v := range variants {
		if !units.Compatible(parsedUnit, units.Unit(v.Unit)) {
			continue
		}
		variantBase, _, err := units.SizeInBase(v.Size, units.Unit(v.Unit))
		if err != nil {
			continue
		}
		if math.Abs(variantBase-sizeBase) < 1e-9 {
			return CanonicalItem{}, fmt.Errorf(
				"%w: %g%s equals existing variant %g%s",
				ErrDuplicatePackaging, size, parsedUnit, v.Size, v.Unit,
			)
		}
	}

	id, err := txqry.CreateCanonicalItem(ctx, db.CreateCanonicalItemParams{
		FamilyKey: familyKey,
		Label:     label,
		Size:      size,
		Unit:      string(parsedUnit),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return CanonicalItem{}, err
	}
	err = tx.Commit()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return CanonicalItem{}, err
	}

	return CanonicalItem{
		ID:        id,
		FamilyKey: familyKey,
		Label:     label,
		Size:      size,
		Unit:      parsedUnit,
	}, nil
}

// RegisterStoreItem binds a store (created on first use) to a canonical
// item through the product url the scraper will visit.
func (s Service) RegisterStoreItem(ctx context.Context, storeName string, canonicalItemID int64, url, scraperKind string) (TrackedItem, error) {
	ctx, span := tracer.Start(ctx, "RegisterStoreItem")
	defer span.End()
	span.SetAttributes(
		attribute.String("store", storeName),
		attribute.String("url", url),
	)

	storeName = strings.TrimSpace(storeName)
	url = strings.TrimSpace(url)
	scraperKind = strings.ToLower(strings.TrimSpace(scraperKind))
	if storeName == "" {
		return TrackedItem{}, fmt.Errorf("store name cannot be empty")
	}
	if url == "" {
		return TrackedItem{}, fmt.Errorf("url cannot be empty")
	}
	if scraperKind == "" {
		return TrackedItem{}, fmt.Errorf("scraper kind cannot be empty")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return TrackedItem{}, err
	}
	defer tx.Rollback()
	txqry := s.qry.WithTx(tx)

	item, err := txqry.GetCanonicalItem(ctx, canonicalItemID)
	if errors.Is(err, sql.ErrNoRows) {
		return TrackedItem{}, fmt.Errorf("%w: canonical item %d", ErrNotFound, canonicalItemID)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return TrackedItem{}, err
	}

	err = txqry.CreateStore(ctx, storeName)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return TrackedItem{}, err
	}
	store, err := txqry.GetStoreByName(ctx, storeName)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return TrackedItem{}, err
	}

	byUrl, err := txqry.GetStoreItemByUrl(ctx, url)
	if err == nil {
		if byUrl.StoreID == store.ID && byUrl.CanonicalItemID == item.ID && byUrl.Scraper == scraperKind {
			// re-registering the identical binding is a no-op
			return trackedFromParts(byUrl, store.Name, item), tx.Commit()
		}
		return TrackedItem{}, fmt.Errorf("%w: %s", ErrDuplicateURL, url)
	}
	if !errors.Is(err, sql.ErrNoRows) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return TrackedItem{}, err
	}

	_, err = txqry.GetStoreItemByBinding(ctx, db.GetStoreItemByBindingParams{
		StoreID:         store.ID,
		CanonicalItemID: item.ID,
	})
	if err == nil {
		return TrackedItem{}, fmt.Errorf(
			"%w: %s already tracks %s %g%s",
			ErrDuplicateBinding, store.Name, item.FamilyKey, item.Size, item.Unit,
		)
	}
	if !errors.Is(err, sql.ErrNoRows) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return TrackedItem{}, err
	}

	id, err := txqry.CreateStoreItem(ctx, db.CreateStoreItemParams{
		StoreID:         store.ID,
		CanonicalItemID: item.ID,
		Url:             url,
		Scraper:         scraperKind,
	})
	if err != nil {
		err = mapStoreItemConflict(err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return TrackedItem{}, err
	}
	err = tx.Commit()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return TrackedItem{}, err
	}

	return TrackedItem{
		StoreItemID: id,
		Store:       store.Name,
		Url:         url,
		Scraper:     scraperKind,
		Item:        canonicalFromRow(item),
	}, nil
}

// ListTracked returns store items joined with their canonical
// metadata, ordered by store, family, unit, size. The filter narrows
// by store or family and can annotate each item with its latest
// observation normalized per base unit.
func (s Service) ListTracked(ctx context.Context, filter ListFilter) ([]TrackedItem, error) {
	ctx, span := tracer.Start(ctx, "ListTracked")
	defer span.End()

	rows, err := s.qry.ListTracked(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	var latest map[int64]db.ListTrackedLatestRow
	if filter.WithLatest {
		obs, err := s.qry.ListTrackedLatest(ctx)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		latest = make(map[int64]db.ListTrackedLatestRow, len(obs))
		for _, o := range obs {
			latest[o.StoreItemID] = o
		}
	}

	store := strings.TrimSpace(filter.Store)
	familyKey := textutil.NormalizeKey(filter.FamilyKey)

	var items []TrackedItem
	for _, r := range rows {
		if store != "" && r.StoreName != store {
			continue
		}
		if familyKey != "" && r.FamilyKey != familyKey {
			continue
		}
		item := TrackedItem{
			StoreItemID: r.StoreItemID,
			Store:       r.StoreName,
			Url:         r.Url,
			Scraper:     r.Scraper,
			Item: CanonicalItem{
				ID:        r.CanonicalItemID,
				FamilyKey: r.FamilyKey,
				Label:     r.Label,
				Size:      r.Size,
				Unit:      units.Unit(r.Unit),
			},
		}
		if o, ok := latest[r.StoreItemID]; ok && o.PriceCents.Valid {
			lp := LatestPrice{
				ObservedOn: o.ObservedOn.String,
				PriceCents: o.PriceCents.Int64,
			}
			perBase, base, err := units.PricePerBase(o.PriceCents.Int64, r.Size, units.Unit(r.Unit))
			if err == nil {
				lp.PerBase = perBase
				lp.PerBaseUnit = base
			}
			item.Latest = &lp
		}
		items = append(items, item)
	}
	return items, nil
}

// ListStores returns every known store name, sorted.
func (s Service) ListStores(ctx context.Context) ([]string, error) {
	ctx, span := tracer.Start(ctx, "ListStores")
	defer span.End()

	rows, err := s.qry.ListStores(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	names := make([]string, len(rows))
	for i, r := range rows {
		names[i] = r.Name
	}
	return names, nil
}

// DeleteStore removes a store, its tracked items and all of their
// observations. Export first if the history matters.
func (s Service) DeleteStore(ctx context.Context, name string) error {
	ctx, span := tracer.Start(ctx, "DeleteStore")
	defer span.End()
	span.SetAttributes(attribute.String("store", name))

	affected, err := s.qry.DeleteStore(ctx, strings.TrimSpace(name))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: store %q", ErrNotFound, name)
	}
	return nil
}

// DeleteTrackedUrl removes a single tracked url and its observations,
// leaving the store and the canonical item in place.
func (s Service) DeleteTrackedUrl(ctx context.Context, url string) error {
	ctx, span := tracer.Start(ctx, "DeleteTrackedUrl")
	defer span.End()
	span.SetAttributes(attribute.String("url", url))

	item, err := s.qry.GetStoreItemByUrl(ctx, strings.TrimSpace(url))
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: url %q", ErrNotFound, url)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	_, err = s.qry.DeleteStoreItem(ctx, item.ID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// DeleteCanonicalItem removes a packaging variant and cascades through
// its store items and observations.
func (s Service) DeleteCanonicalItem(ctx context.Context, id int64) error {
	ctx, span := tracer.Start(ctx, "DeleteCanonicalItem")
	defer span.End()

	affected, err := s.qry.DeleteCanonicalItem(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: canonical item %d", ErrNotFound, id)
	}
	return nil
}

// mapStoreItemConflict translates a unique-constraint failure into the
// duplicate sentinels. The pre-insert checks normally catch these, but
// a second writer racing between check and insert would otherwise
// surface a raw sqlite error.
func mapStoreItemConflict(err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "store_item.url"):
		return fmt.Errorf("%w: %v", ErrDuplicateURL, err)
	case strings.Contains(msg, "store_item.store_id"):
		return fmt.Errorf("%w: %v", ErrDuplicateBinding, err)
	}
	return err
}

func canonicalFromRow(r db.CanonicalItem) CanonicalItem {
	return CanonicalItem{
		ID:        r.ID,
		FamilyKey: r.FamilyKey,
		Label:     r.Label,
		Size:      r.Size,
		Unit:      units.Unit(r.Unit),
	}
}

func trackedFromParts(si db.StoreItem, storeName string, item db.CanonicalItem) TrackedItem {
	return TrackedItem{
		StoreItemID: si.ID,
		Store:       storeName,
		Url:         si.Url,
		Scraper:     si.Scraper,
		Item:        canonicalFromRow(item),
	}
}
