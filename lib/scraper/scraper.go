package scraper

import "context"

// a store scraper turns a tracked product url into a price + display
// title, or fails. the core tracker never looks at store identity, it
// only dispatches through this interface — each store's page quirks
// live entirely behind its own implementation.
//
// scraping a page generally has this structure:
// 1. fetch the page/endpoint for the url.
// 2. make assertions on response validity (status, expected markers).
// 3. extract the main price out of whatever the store's layout is today.
// 4. extract a display title (og:title, <title>, or API field).

// Result is one successful scrape: the pack price in currency minor
// units and the raw display title at scrape time.
type Result struct {
	PriceCents int64
	Title      string
}

type Scraper interface {
	Scrape(ctx context.Context, url string) (Result, error)
}

// Registry maps a store item's scraper kind to its implementation.
type Registry map[string]Scraper

func (r Registry) Lookup(kind string) (Scraper, bool) {
	s, ok := r[kind]
	return s, ok
}
