package article

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/mmcdole/gofeed"
)

// ErrEmptyFeed is returned when a feed has no item with a link.
var ErrEmptyFeed = errors.New("feed has no linked items")

// FeedPresets maps friendly names to RSS feed URLs
var FeedPresets = map[string]string{
	"cna": "https://www.channelnewsasia.com/api/v1/rss-outbound-feed?_format=xml",
	"st":  "https://www.straitstimes.com/news/singapore/rss.xml",
	"hn":  "https://hnrss.org/newest",
	"tr":  "https://www.technologyreview.com/feed/",
}

// ResolveFeedURL resolves a feed identifier to a URL
// If the input is a preset name, returns the corresponding URL
// Otherwise, returns the input as-is (assuming it's a direct URL)
func ResolveFeedURL(feedInput string) string {
	if url, exists := FeedPresets[feedInput]; exists {
		return url
	}
	return feedInput
}

// LatestFromFeed returns the link of the first item of an RSS/Atom feed.
func LatestFromFeed(ctx context.Context, client *http.Client, feedURL string) (string, error) {
	parser := gofeed.NewParser()
	if client != nil {
		parser.Client = client
	}

	feed, err := parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return "", fmt.Errorf("failed to fetch feed: %w", err)
	}

	for _, item := range feed.Items {
		if item.Link != "" {
			return item.Link, nil
		}
	}
	return "", ErrEmptyFeed
}
