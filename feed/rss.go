package feed

import (
	"encoding/xml"
	"fmt"
	"html"
	"time"

	"github.com/tempest790/reportfeed/config"
)

// rfc2822 is the RSS 2.0 date convention. Dates are rendered in UTC, so the
// zone is the literal +0000.
const rfc2822 = "Mon, 02 Jan 2006 15:04:05 +0000"

// rssDocument is the serialized shape of the output feed. It is write-only;
// nothing in this program reads the rendered document back.
type rssDocument struct {
	XMLName   xml.Name   `xml:"rss"`
	Version   string     `xml:"version,attr"`
	AtomNS    string     `xml:"xmlns:atom,attr"`
	ContentNS string     `xml:"xmlns:content,attr"`
	Channel   rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title         string    `xml:"title"`
	Link          string    `xml:"link"`
	SelfLink      atomLink  `xml:"atom:link"`
	Description   string    `xml:"description"`
	LastBuildDate string    `xml:"lastBuildDate"`
	Items         []rssItem `xml:"item"`
}

// atomLink is the self-referential feed link recommended by the RSS best
// practices profile.
type atomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
	Type string `xml:"type,attr"`
}

type rssItem struct {
	Title       string  `xml:"title"`
	Link        string  `xml:"link"`
	GUID        rssGUID `xml:"guid"`
	PubDate     string  `xml:"pubDate"`
	Description cdata   `xml:"description"`
	Content     cdata   `xml:"content:encoded"`
}

type rssGUID struct {
	IsPermaLink bool   `xml:"isPermaLink,attr"`
	Value       string `xml:",chardata"`
}

type cdata struct {
	Text string `xml:",cdata"`
}

// RenderRSS serializes the items into an RSS 2.0 document. An empty item
// list still yields a complete channel block, so the published feed resource
// stays valid even on a run that found nothing.
//
// Beyond the structured <link>, each item's description embeds a clickable
// HTML link: some feed consumers render only the description and would
// otherwise leave the reader with no way through to the article.
func RenderRSS(items []Item, cfg config.Config, buildTime time.Time) (string, error) {
	doc := rssDocument{
		Version:   "2.0",
		AtomNS:    "http://www.w3.org/2005/Atom",
		ContentNS: "http://purl.org/rss/1.0/modules/content/",
		Channel: rssChannel{
			Title: cfg.Channel.Title,
			Link:  cfg.SourceURL,
			SelfLink: atomLink{
				Href: cfg.FeedURL,
				Rel:  "self",
				Type: "application/rss+xml",
			},
			Description:   cfg.Channel.Description,
			LastBuildDate: buildTime.UTC().Format(rfc2822),
		},
	}

	for _, item := range items {
		linkHTML := fmt.Sprintf(`<p><a href="%s">Open the full article</a></p>`,
			html.EscapeString(item.Link))
		dateText := item.PublishedAt.Format("January 2, 2006")

		doc.Channel.Items = append(doc.Channel.Items, rssItem{
			Title:       item.Title,
			Link:        item.Link,
			GUID:        rssGUID{IsPermaLink: true, Value: item.Link},
			PubDate:     item.PublishedAt.UTC().Format(rfc2822),
			Description: cdata{Text: dateText + "<br/>" + linkHTML},
			Content:     cdata{Text: linkHTML},
		})
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal feed: %w", err)
	}

	return xml.Header + string(out) + "\n", nil
}
