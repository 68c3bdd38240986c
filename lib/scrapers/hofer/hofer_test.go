package hofer

import (
	"context"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/require"
)

func TestScrapePrimarySelector(t *testing.T) {
	s := New()
	httpmock.ActivateNonDefault(s.client.GetClient())
	defer httpmock.DeactivateAndReset()

	url := "https://www.hofer.si/sl/p.olivno-olje.html"
	httpmock.RegisterResponder("GET", url, httpmock.NewStringResponder(200, `
<html>
  <head>
    <meta property="og:title" content="Hofer extra deviško oljčno olje"/>
  </head>
  <body>
    <div class="base-price__regular">
      <span> 7,49 € </span>
    </div>
  </body>
</html>`))

	res, err := s.Scrape(context.Background(), url)
	require.NoError(t, err)
	require.EqualValues(t, 749, res.PriceCents)
	require.Equal(t, "Hofer extra deviško oljčno olje", res.Title)
}

func TestScrapeFallbackLastPrice(t *testing.T) {
	s := New()
	httpmock.ActivateNonDefault(s.client.GetClient())
	defer httpmock.DeactivateAndReset()

	url := "https://www.hofer.si/sl/p.mleko.html"
	httpmock.RegisterResponder("GET", url, httpmock.NewStringResponder(200, `
<html>
  <head><title>Mleko 3.5% 1L</title></head>
  <body>
    <div>Priporočena cena: 1,39 €</div>
    <div>1,09 €</div>
  </body>
</html>`))

	res, err := s.Scrape(context.Background(), url)
	require.NoError(t, err)
	require.EqualValues(t, 109, res.PriceCents)
	require.Equal(t, "Mleko 3.5% 1L", res.Title)
}
