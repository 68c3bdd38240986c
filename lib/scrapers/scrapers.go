package scrapers

import (
	"pricetrack-backend/lib/scraper"
	"pricetrack-backend/lib/scrapers/hofer"
	"pricetrack-backend/lib/scrapers/lidl"
	"pricetrack-backend/lib/scrapers/mercator"
	"pricetrack-backend/lib/scrapers/spar"
)

// Default returns the registry of every store scraper, keyed by the
// scraper kind stored on a tracked item.
func Default() scraper.Registry {
	return scraper.Registry{
		"mercator": mercator.New(),
		"hofer":    hofer.New(),
		"lidl":     lidl.New(),
		"spar":     spar.New(),
	}
}
