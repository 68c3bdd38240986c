package mercator

import (
	"context"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/require"
)

const productPage = `
<html>
  <head>
    <meta property="og:title" content="Monini oljčno olje 750 ml"/>
    <title>Fallback title</title>
  </head>
  <body>
    <div>... nekaj ...</div>
    <div>Cena na enoto</div>
    <div>15,99 € / 1l</div>
    <div>11,99 €</div>
  </body>
</html>`

func TestScrape(t *testing.T) {
	s := New()
	httpmock.ActivateNonDefault(s.client.GetClient())
	defer httpmock.DeactivateAndReset()

	url := "https://mercatoronline.si/izdelek/12345/monini-olivno-olje"
	httpmock.RegisterResponder("GET", url,
		httpmock.NewStringResponder(200, productPage))

	res, err := s.Scrape(context.Background(), url)
	require.NoError(t, err)
	require.EqualValues(t, 1199, res.PriceCents)
	require.Equal(t, "Monini oljčno olje 750 ml", res.Title)
}

func TestScrapeLayoutChanged(t *testing.T) {
	s := New()
	httpmock.ActivateNonDefault(s.client.GetClient())
	defer httpmock.DeactivateAndReset()

	url := "https://mercatoronline.si/izdelek/12345/monini-olivno-olje"
	httpmock.RegisterResponder("GET", url,
		httpmock.NewStringResponder(200, "<html><body>redesigned</body></html>"))

	_, err := s.Scrape(context.Background(), url)
	require.Error(t, err)
}

func TestScrapeBadStatus(t *testing.T) {
	s := New()
	httpmock.ActivateNonDefault(s.client.GetClient())
	defer httpmock.DeactivateAndReset()

	url := "https://mercatoronline.si/izdelek/404/gone"
	httpmock.RegisterResponder("GET", url,
		httpmock.NewStringResponder(404, "not found"))

	_, err := s.Scrape(context.Background(), url)
	require.Error(t, err)
}
