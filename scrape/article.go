package scrape

import (
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// monthDateRe matches free-text dates of the form "March 2, 2026".
var monthDateRe = regexp.MustCompile(
	`(?i)\b(January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2},\s+\d{4}\b`,
)

// isoLayouts are the timestamp shapes accepted from structured metadata,
// tried in order. RFC 3339 covers both "Z" and explicit offsets.
var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// titleStrategies recover an article title, most reliable first.
var titleStrategies = []func(*goquery.Document) string{
	socialTitle,
	documentTitle,
}

// dateStrategies recover an article publish date, most reliable first.
var dateStrategies = []func(*goquery.Document) *time.Time{
	publishedTimeMeta,
	timeElementDate,
	textualDate,
}

// Title extracts the article title, or "" when no strategy finds one.
func Title(doc *goquery.Document) string {
	for _, strategy := range titleStrategies {
		if title := strategy(doc); title != "" {
			return title
		}
	}
	return ""
}

// PublishedAt extracts the article publish date, or nil when no strategy
// finds one. Timezone-aware timestamps are converted to UTC; the feed only
// needs day granularity, so the offset itself is not preserved.
func PublishedAt(doc *goquery.Document) *time.Time {
	for _, strategy := range dateStrategies {
		if published := strategy(doc); published != nil {
			return published
		}
	}
	return nil
}

// socialTitle reads the og:title metadata tag sites publish for social
// sharing cards.
func socialTitle(doc *goquery.Document) string {
	content, ok := doc.Find(`meta[property="og:title"]`).First().Attr("content")
	if !ok {
		return ""
	}
	return strings.TrimSpace(content)
}

// documentTitle falls back to the <title> element, with whitespace runs
// collapsed to single spaces.
func documentTitle(doc *goquery.Document) string {
	title := doc.Find("title").First().Text()
	return strings.Join(strings.Fields(title), " ")
}

// publishedTimeMeta reads the article:published_time metadata tag.
func publishedTimeMeta(doc *goquery.Document) *time.Time {
	content, ok := doc.Find(`meta[property="article:published_time"]`).First().Attr("content")
	if !ok {
		return nil
	}
	return parseISO(strings.TrimSpace(content))
}

// timeElementDate reads the machine-readable datetime attribute of a <time>
// element. When the attribute isn't a full timestamp, its first ten
// characters are retried as a plain calendar date.
func timeElementDate(doc *goquery.Document) *time.Time {
	raw, ok := doc.Find("time[datetime]").First().Attr("datetime")
	if !ok {
		return nil
	}
	raw = strings.TrimSpace(raw)

	if parsed := parseISO(raw); parsed != nil {
		return parsed
	}

	if len(raw) >= 10 {
		if day, err := time.Parse("2006-01-02", raw[:10]); err == nil {
			return &day
		}
	}

	return nil
}

// textualDate scans the page's visible text for a "Month DD, YYYY" date.
func textualDate(doc *goquery.Document) *time.Time {
	match := monthDateRe.FindString(doc.Text())
	if match == "" {
		return nil
	}

	parsed, err := time.Parse("January 2, 2006", normalizeMonthDate(match))
	if err != nil {
		return nil
	}
	return &parsed
}

// normalizeMonthDate title-cases the month so case-insensitive matches like
// "march 2, 2026" still parse.
func normalizeMonthDate(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// parseISO parses an ISO-8601-like timestamp, returning nil when no
// accepted layout matches. A trailing " UTC" marker is treated the same as
// no timezone at all.
func parseISO(raw string) *time.Time {
	raw = strings.TrimSuffix(raw, " UTC")

	for _, layout := range isoLayouts {
		parsed, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}
		utc := parsed.UTC()
		return &utc
	}

	return nil
}
