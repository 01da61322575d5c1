package feed

import (
	"time"

	"github.com/google/uuid"
)

// Item is a fully resolved feed entry. One is only constructed once both a
// title and a publish date have been recovered for a candidate; partial
// records are dropped upstream rather than emitted with placeholders.
type Item struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	PublishedAt time.Time `json:"published_at"`
}

// NewItem creates an Item with a fresh ID. The ID is for logging and
// diagnostics only; the rendered feed identifies items by their permalink.
func NewItem(title, link string, publishedAt time.Time) Item {
	return Item{
		ID:          uuid.New(),
		Title:       title,
		Link:        link,
		PublishedAt: publishedAt,
	}
}
