package spar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"pricetrack-backend/lib/htmlutil"
	"pricetrack-backend/lib/restyutil"
	"pricetrack-backend/lib/scraper"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("lib/scrapers/spar")

// the product pages are rendered client-side, so prices come from the
// fact-finder search backend instead, looked up by the numeric product
// code at the end of the product url
const searchEndpoint = "https://search-spar.spar-ics.com/fact-finder/rest/v4/search/products_lmos_si"

var productCode = regexp.MustCompile(`-(\d+)$`)

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

type searchHit struct {
	ID           string `json:"id"`
	MasterValues struct {
		Title     string `json:"title"`
		Url       string `json:"url"`
		BestPrice any    `json:"best-price"`
	} `json:"masterValues"`
}

type searchResponse struct {
	Hits []searchHit `json:"hits"`
}

func (s Scraper) Scrape(ctx context.Context, productUrl string) (scraper.Result, error) {
	ctx, span := tracer.Start(ctx, "Scrape")
	defer span.End()

	code, err := extractCode(productUrl)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return scraper.Result{}, err
	}
	span.SetAttributes(attribute.String("product_code", code))

	res, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"query":           code,
			"q":               code,
			"page":            "1",
			"hitsPerPage":     "10",
			"substringFilter": "pos-visible:81701",
		}).
		Get(searchEndpoint)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return scraper.Result{}, err
	}
	if res.StatusCode() != 200 {
		err := fmt.Errorf("unexpected status %d from search backend", res.StatusCode())
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return scraper.Result{}, err
	}

	var search searchResponse
	err = json.Unmarshal(res.Body(), &search)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return scraper.Result{}, fmt.Errorf("parse search response: %w", err)
	}
	if len(search.Hits) == 0 {
		err := fmt.Errorf("search backend returned no hits for code %s", code)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return scraper.Result{}, err
	}

	hit := pickHit(search.Hits, code, productUrl)

	cents, err := priceCents(hit.MasterValues.BestPrice)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return scraper.Result{}, err
	}

	title := hit.MasterValues.Title
	if title == "" {
		title = "(unknown title)"
	}
	return scraper.Result{PriceCents: cents, Title: title}, nil
}

func extractCode(productUrl string) (string, error) {
	parsed, err := url.Parse(productUrl)
	if err != nil {
		return "", err
	}
	path := strings.TrimRight(parsed.Path, "/")
	last := path[strings.LastIndex(path, "/")+1:]
	m := productCode.FindStringSubmatch(last)
	if m == nil {
		return "", fmt.Errorf("cannot extract product code from url %q (expected ...-<digits>)", productUrl)
	}
	return m[1], nil
}

// prefer an exact id match, then a product-url match, then the first hit
func pickHit(hits []searchHit, code, productUrl string) searchHit {
	for _, h := range hits {
		if h.ID == code {
			return h
		}
	}
	wantedPath := ""
	if parsed, err := url.Parse(productUrl); err == nil {
		wantedPath = strings.TrimRight(parsed.Path, "/")
	}
	for _, h := range hits {
		if h.MasterValues.Url != "" && strings.TrimRight(h.MasterValues.Url, "/") == wantedPath {
			return h
		}
	}
	return hits[0]
}

// best-price shows up both as a JSON number and as a localized string
func priceCents(v any) (int64, error) {
	switch price := v.(type) {
	case nil:
		return 0, fmt.Errorf("search hit missing masterValues.best-price")
	case float64:
		cents := int64(price*100 + 0.5)
		if cents < 0 {
			return 0, fmt.Errorf("negative price parsed: %v", price)
		}
		return cents, nil
	case string:
		return htmlutil.EuroCents(price)
	}
	return 0, fmt.Errorf("unexpected best-price type %T", v)
}
