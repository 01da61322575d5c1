package scrape

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Candidates scans a listing page for anchors pointing into the site's
// article section and returns their absolute URLs, deduplicated by exact
// match in first-seen order, truncated to max. Listing pages link far more
// articles than the feed needs; the cap keeps the per-run request count
// bounded while leaving enough slack for candidates that later fail to
// parse.
//
// An href qualifies when its path starts with prefix, either as a relative
// link or as an absolute URL on the listing page's own host. Links carrying
// a query string or fragment are variants of pages already linked plainly
// and are skipped.
func Candidates(doc *goquery.Document, base *url.URL, prefix string, max int) []string {
	if max <= 0 {
		return nil
	}

	seen := make(map[string]bool)
	var urls []string

	doc.Find("a[href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		href := strings.TrimSpace(s.AttrOr("href", ""))
		if href == "" || strings.ContainsAny(href, "?#") {
			return true
		}

		resolved, ok := resolveCandidate(href, base, prefix)
		if !ok {
			return true
		}

		if seen[resolved] {
			return true
		}
		seen[resolved] = true
		urls = append(urls, resolved)

		return len(urls) < max
	})

	return urls
}

// resolveCandidate turns an href into an absolute article URL, or reports
// that the href doesn't point into the article section.
func resolveCandidate(href string, base *url.URL, prefix string) (string, bool) {
	ref, err := url.Parse(href)
	if err != nil {
		return "", false
	}

	// Absolute links must stay on the listing page's host.
	if ref.Host != "" && ref.Host != base.Host {
		return "", false
	}

	if !strings.HasPrefix(ref.Path, prefix) {
		return "", false
	}

	return base.ResolveReference(ref).String(), true
}
