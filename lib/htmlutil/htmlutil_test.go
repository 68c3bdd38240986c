package htmlutil

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func mustDoc(t *testing.T, page string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	require.NoError(t, err)
	return doc
}

func TestTitle(t *testing.T) {
	doc := mustDoc(t, `<html><head>
		<meta property="og:title" content="Monini oljčno olje 750 ml"/>
		<title>Fallback title</title>
	</head></html>`)
	require.Equal(t, "Monini oljčno olje 750 ml", Title(doc))

	doc = mustDoc(t, `<html><head><title>
		Mleko  3.5%
		1L </title></head></html>`)
	require.Equal(t, "Mleko 3.5% 1L", Title(doc))

	doc = mustDoc(t, `<html><head></head><body></body></html>`)
	require.Equal(t, "(unknown title)", Title(doc))
}

func TestEuroCents(t *testing.T) {
	cents, err := EuroCents("11,99")
	require.NoError(t, err)
	require.EqualValues(t, 1199, cents)

	cents, err = EuroCents("1.234,56")
	require.NoError(t, err)
	require.EqualValues(t, 123456, cents)

	cents, err = EuroCents("5.29")
	require.NoError(t, err)
	require.EqualValues(t, 529, cents)

	_, err = EuroCents("abc")
	require.Error(t, err)
}

func TestFindEuroCents(t *testing.T) {
	cents, err := FindEuroCents("Stara cena: 6,49 € Nova cena: 5,29 €*")
	require.NoError(t, err)
	require.Equal(t, []int64{649, 529}, cents)

	_, err = FindEuroCents("no prices here")
	require.Error(t, err)
}
