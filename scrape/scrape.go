// Package scrape extracts article candidates from listing pages and titles
// and publish dates from article pages. The markup it deals with is
// heterogeneous and undocumented, so each field is recovered by an ordered
// list of independent strategies; the first one to produce a value wins, and
// a field no strategy can recover is reported as absent rather than as an
// error.
package scrape

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ParseDocument parses raw page markup into a queryable document.
func ParseDocument(markup string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return doc, nil
}
