package lidl

import (
	"context"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/require"
)

func TestScrapeTakesLowerPromoPrice(t *testing.T) {
	s := New()
	httpmock.ActivateNonDefault(s.client.GetClient())
	defer httpmock.DeactivateAndReset()

	url := "https://www.lidl.si/p/olivno-olje/p10008"
	httpmock.RegisterResponder("GET", url, httpmock.NewStringResponder(200, `
<html>
  <head><meta property="og:title" content="Lidl oljčno olje"/></head>
  <body>
    <div>Stara cena: 6.49 €</div>
    <div>Nova cena: 5.29 €*</div>
  </body>
</html>`))

	res, err := s.Scrape(context.Background(), url)
	require.NoError(t, err)
	require.EqualValues(t, 529, res.PriceCents)
	require.Equal(t, "Lidl oljčno olje", res.Title)
}

func TestScrapeNoPrices(t *testing.T) {
	s := New()
	httpmock.ActivateNonDefault(s.client.GetClient())
	defer httpmock.DeactivateAndReset()

	url := "https://www.lidl.si/p/olivno-olje/p10008"
	httpmock.RegisterResponder("GET", url,
		httpmock.NewStringResponder(200, "<html><body>ni cen</body></html>"))

	_, err := s.Scrape(context.Background(), url)
	require.Error(t, err)
}
