package feed

import (
	"context"
	"fmt"
	"log"
	"sort"

	"github.com/tempest790/reportfeed/config"
	"github.com/tempest790/reportfeed/fetch"
	"github.com/tempest790/reportfeed/scrape"
)

// Collector runs the scrape pipeline for one listing page: extract article
// candidates, fetch and parse each one, and keep the most recent items.
type Collector struct {
	cfg    config.Config
	client fetch.Client
}

// NewCollector creates a collector for the given configuration. When client
// is nil a real HTTP fetcher is used; tests pass a fake client instead.
func NewCollector(cfg config.Config, client fetch.Client) *Collector {
	if client == nil {
		referer := cfg.SourceURL
		if base, err := cfg.BaseOrigin(); err == nil {
			referer = base.String() + "/"
		}
		client = fetch.New(cfg.Timeout, referer)
	}

	return &Collector{
		cfg:    cfg,
		client: client,
	}
}

// Collect fetches the listing page and assembles the feed items, sorted by
// publish date descending (candidate order breaks ties) and truncated to
// the configured maximum.
//
// Failures degrade rather than abort: if the listing page itself can't be
// fetched the result is an empty list, so the caller can still publish a
// structurally valid empty feed; a candidate that can't be fetched or
// yields no title or date is skipped and the loop continues. The error
// return is reserved for configuration problems.
func (c *Collector) Collect(ctx context.Context) ([]Item, error) {
	base, err := c.cfg.BaseOrigin()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve base origin: %w", err)
	}

	markup, err := c.client.Fetch(ctx, c.cfg.SourceURL)
	if err != nil {
		log.Printf("ERROR: Failed to fetch listing page %s: %v", c.cfg.SourceURL, err)
		return nil, nil
	}

	doc, err := scrape.ParseDocument(markup)
	if err != nil {
		log.Printf("ERROR: Failed to parse listing page %s: %v", c.cfg.SourceURL, err)
		return nil, nil
	}

	candidates := scrape.Candidates(doc, base, c.cfg.ArticlePathPrefix, c.cfg.CandidateCap)
	log.Printf("INFO: Found %d candidate articles on %s", len(candidates), c.cfg.SourceURL)

	var items []Item
	for _, candidate := range candidates {
		item, ok := c.collectOne(ctx, candidate)
		if !ok {
			continue
		}
		items = append(items, item)
	}

	// Stable: candidates sharing a date keep their listing order.
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].PublishedAt.After(items[j].PublishedAt)
	})

	if len(items) > c.cfg.MaxItems {
		items = items[:c.cfg.MaxItems]
	}

	return items, nil
}

// collectOne fetches and parses a single candidate page. It reports false
// when the candidate should be skipped, never an error: one bad article must
// not take down the run.
func (c *Collector) collectOne(ctx context.Context, candidate string) (Item, bool) {
	markup, err := c.client.Fetch(ctx, candidate)
	if err != nil {
		log.Printf("WARN: Skipping %s: %v", candidate, err)
		return Item{}, false
	}

	doc, err := scrape.ParseDocument(markup)
	if err != nil {
		log.Printf("WARN: Skipping %s: %v", candidate, err)
		return Item{}, false
	}

	title := scrape.Title(doc)
	publishedAt := scrape.PublishedAt(doc)

	if title == "" || publishedAt == nil {
		log.Printf("WARN: Skipping %s: no usable title or publish date", candidate)
		return Item{}, false
	}

	return NewItem(title, candidate, *publishedAt), true
}
