package tracker

import (
	"errors"

	"pricetrack-backend/lib/units"
)

var (
	// the url is already tracked under a different store item
	ErrDuplicateURL = errors.New("url is already tracked")
	// the (store, canonical item) pair is already bound to another url
	ErrDuplicateBinding = errors.New("store already tracks this canonical item")
	// the packaging describes the same physical pack as an existing
	// variant under a different (size, unit) spelling
	ErrDuplicatePackaging = errors.New("packaging duplicates an existing variant")
	ErrInvalidPrice       = errors.New("price must not be negative")
	ErrInvalidQuantity    = errors.New("quantity must be at least 1")
	ErrNotFound           = errors.New("not found")
	ErrScrapeFailure      = errors.New("scrape failure")
)

// ErrInvalidPackaging is shared with the unit normalizer so callers can
// match on one sentinel for both registration and normalization input.
var ErrInvalidPackaging = units.ErrInvalidPackaging
