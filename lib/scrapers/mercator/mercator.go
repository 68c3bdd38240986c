package mercator

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"pricetrack-backend/lib/htmlutil"
	"pricetrack-backend/lib/restyutil"
	"pricetrack-backend/lib/scraper"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("lib/scrapers/mercator")

type Scraper struct {
	client *resty.Client
}

func New() Scraper {
	client := resty.New().
		SetTimeout(time.Second*20).
		SetHeader("User-Agent", "Mozilla/5.0 (price-tracker; educational project)").
		SetHeader("Accept-Language", "sl-SI,sl;q=0.9,en;q=0.8")
	restyutil.InstrumentClient(client, tracer, restyutil.OutputFromEnv())
	return Scraper{client: client}
}

func (s Scraper) Scrape(ctx context.Context, url string) (scraper.Result, error) {
	ctx, span := tracer.Start(ctx, "Scrape")
	defer span.End()

	res, err := s.client.R().SetContext(ctx).Get(url)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return scraper.Result{}, err
	}
	if res.StatusCode() != 200 {
		err := fmt.Errorf("unexpected status %d for %s", res.StatusCode(), url)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return scraper.Result{}, err
	}

	page := res.String()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return scraper.Result{}, err
	}

	cents, err := extractPriceCents(page)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return scraper.Result{}, err
	}

	return scraper.Result{
		PriceCents: cents,
		Title:      htmlutil.Title(doc),
	}, nil
}

// the page shows the pack price next to a higher unit price inside the
// "Cena na enoto" block, so collect everything in that window and take
// the minimum
func extractPriceCents(page string) (int64, error) {
	idx := strings.Index(page, "Cena na enoto")
	if idx == -1 {
		return 0, fmt.Errorf("'Cena na enoto' block not found, page layout likely changed")
	}
	end := idx + 2000
	if end > len(page) {
		end = len(page)
	}
	prices, err := htmlutil.FindEuroCents(page[idx:end])
	if err != nil {
		return 0, fmt.Errorf("no prices near unit price block: %w", err)
	}
	return slices.Min(prices), nil
}
