package htmlutil

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// GetText concatenates every text node under the given node.
func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

var innerWhitespace = regexp.MustCompile(`\s\s+`)

// Title extracts the product title from a page: og:title when present,
// otherwise the <title> element collapsed to single spaces.
func Title(doc *goquery.Document) string {
	if content, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok {
		if title := strings.TrimSpace(content); title != "" {
			return title
		}
	}
	title := strings.TrimSpace(innerWhitespace.ReplaceAllString(doc.Find("title").Text(), " "))
	if title != "" {
		return title
	}
	return "(unknown title)"
}

// matches euro amounts the Slovenian store pages render: "11,99 €",
// "1.234,56 €", "5.29€", including a trailing asterisk on promo prices
var euroAmount = regexp.MustCompile(`(\d{1,3}(?:[.,]\d{3})*[.,]\d{2})\s*€\*?`)

// EuroCents parses an amount like "1.234,56" (thousands dots, decimal
// comma) or "5.29" into integer cents.
func EuroCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse euro amount %q: %w", s, err)
	}
	cents := int64(value*100 + 0.5)
	if value < 0 {
		return 0, fmt.Errorf("negative price parsed: %q", s)
	}
	return cents, nil
}

// FindEuroCents returns every euro amount found in the text, in document
// order, converted to cents.
func FindEuroCents(text string) ([]int64, error) {
	matches := euroAmount.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil, fmt.Errorf("no euro amounts found")
	}
	out := make([]int64, len(matches))
	for i, m := range matches {
		cents, err := EuroCents(m[1])
		if err != nil {
			return nil, err
		}
		out[i] = cents
	}
	return out, nil
}
