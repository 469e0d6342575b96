package feeds

import (
	"fmt"

	"github.com/mmcdole/gofeed"

	"gridbrief/types"
)

// DefaultMaxEntries caps how many entries are taken from a single feed.
const DefaultMaxEntries = 50

// Source yields raw entries for one registry feed. The network-backed
// implementation is FeedFetcher; tests substitute an in-memory fake.
type Source interface {
	Fetch(feedURL string, maxCount int) ([]types.RawEntry, error)
}

// FeedFetcher retrieves and parses RSS/Atom feeds over HTTP.
type FeedFetcher struct {
	parser *gofeed.Parser
}

func NewFeedFetcher() *FeedFetcher {
	return &FeedFetcher{parser: gofeed.NewParser()}
}

// Fetch returns up to maxCount entries from the feed at feedURL.
func (f *FeedFetcher) Fetch(feedURL string, maxCount int) ([]types.RawEntry, error) {
	feed, err := f.parser.ParseURL(feedURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}

	count := min(len(feed.Items), maxCount)
	entries := make([]types.RawEntry, 0, count)

	for i := 0; i < count; i++ {
		item := feed.Items[i]

		// Get description/summary
		summary := item.Description
		if summary == "" {
			summary = item.Content
		}

		// Prefer the published date, fall back to updated
		published := item.PublishedParsed
		if published == nil {
			published = item.UpdatedParsed
		}

		entries = append(entries, types.RawEntry{
			Title:     item.Title,
			Summary:   summary,
			Link:      item.Link,
			Published: published,
		})
	}

	return entries, nil
}
