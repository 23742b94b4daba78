package crawler

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractLinks returns the href target of every anchor element in body, in
// document order. Anchors without an href attribute yield an empty string so
// the caller can treat them as non-enqueueable.
func ExtractLinks(body string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, err
	}

	var links []string
	doc.Find("a").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		links = append(links, href)
	})
	return links, nil
}
