package spar

import (
	"context"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/require"
)

func TestExtractCode(t *testing.T) {
	code, err := extractCode("https://www.spar.si/online/p/monini-olivno-olje-131036/")
	require.NoError(t, err)
	require.Equal(t, "131036", code)

	_, err = extractCode("https://www.spar.si/online/p/brez-kode/")
	require.Error(t, err)
}

func TestScrape(t *testing.T) {
	s := New()
	httpmock.ActivateNonDefault(s.client.GetClient())
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", searchEndpoint,
		httpmock.NewStringResponder(200, `{
			"hits": [
				{
					"id": "999999",
					"masterValues": {
						"title": "Drug izdelek",
						"url": "/p/drug-izdelek-999999",
						"best-price": 3.49
					}
				},
				{
					"id": "131036",
					"masterValues": {
						"title": "Monini oljčno olje 750 ml",
						"url": "/p/monini-olivno-olje-131036",
						"best-price": 11.99
					}
				}
			]
		}`))

	res, err := s.Scrape(context.Background(), "https://www.spar.si/online/p/monini-olivno-olje-131036")
	require.NoError(t, err)
	require.EqualValues(t, 1199, res.PriceCents)
	require.Equal(t, "Monini oljčno olje 750 ml", res.Title)
}

func TestScrapeStringPriceAndUrlFallback(t *testing.T) {
	s := New()
	httpmock.ActivateNonDefault(s.client.GetClient())
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", searchEndpoint,
		httpmock.NewStringResponder(200, `{
			"hits": [
				{
					"id": "somehash",
					"masterValues": {
						"title": "Mleko 3.5% 1L",
						"url": "/online/p/mleko-35-1l-200123",
						"best-price": "1,09"
					}
				}
			]
		}`))

	res, err := s.Scrape(context.Background(), "https://www.spar.si/online/p/mleko-35-1l-200123/")
	require.NoError(t, err)
	require.EqualValues(t, 109, res.PriceCents)
	require.Equal(t, "Mleko 3.5% 1L", res.Title)
}

func TestScrapeNoHits(t *testing.T) {
	s := New()
	httpmock.ActivateNonDefault(s.client.GetClient())
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", searchEndpoint,
		httpmock.NewStringResponder(200, `{"hits": []}`))

	_, err := s.Scrape(context.Background(), "https://www.spar.si/online/p/izdelek-131036")
	require.Error(t, err)
}
