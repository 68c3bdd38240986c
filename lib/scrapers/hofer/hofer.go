package hofer

import (
	"context"
	"fmt"
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

var tracer = otel.Tracer("lib/scrapers/hofer")

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

	cents, err := extractPriceCents(doc, page)
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

func extractPriceCents(doc *goquery.Document, page string) (int64, error) {
	// primary selector for the regular pack price
	regular := strings.TrimSpace(doc.Find(".base-price__regular span").First().Text())
	if regular != "" {
		prices, err := htmlutil.FindEuroCents(regular)
		if err == nil {
			return prices[0], nil
		}
	}

	// fallback: the last price on the page is usually the main one
	prices, err := htmlutil.FindEuroCents(page)
	if err != nil {
		return 0, fmt.Errorf("no price found, page layout likely changed: %w", err)
	}
	return prices[len(prices)-1], nil
}
