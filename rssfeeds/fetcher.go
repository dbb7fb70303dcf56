package rssfeeds

import (
	"context"
	"fmt"
	"net/http"

	"vaultfeed/config"
	"vaultfeed/types"

	"github.com/mmcdole/gofeed"
)

// FetchFeed retrieves and parses an RSS/Atom feed, returning normalized items.
// The parser is lenient: structurally imperfect documents that still yield
// entries come back as a normal result. Only a fetch failure or a document
// with no usable entries produces an error.
func FetchFeed(ctx context.Context, feedURL string, limit int) (*types.FeedResult, error) {
	parser := gofeed.NewParser()
	parser.UserAgent = config.FeedUserAgent
	parser.Client = &http.Client{Timeout: config.FetchTimeout}

	feed, err := parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}

	count := min(len(feed.Items), limit)
	items := make([]types.FeedItem, 0, count)
	for i := 0; i < count; i++ {
		items = append(items, normalizeItem(feed.Items[i]))
	}

	return &types.FeedResult{Items: items, FeedTitle: feed.Title}, nil
}

// publishedSources lists the timestamp accessors in precedence order.
// The raw string passes through untouched.
var publishedSources = []func(*gofeed.Item) string{
	func(it *gofeed.Item) string { return it.Published },
	func(it *gofeed.Item) string { return it.Updated },
	dctermsCreated,
}

// normalizeItem maps one parsed entry to the uniform item shape.
func normalizeItem(item *gofeed.Item) types.FeedItem {
	title := item.Title
	if title == "" {
		title = "(no title)"
	}

	published := ""
	for _, src := range publishedSources {
		if v := src(item); v != "" {
			published = v
			break
		}
	}

	// Prefer the rich content body over the summary/description field.
	description := item.Content
	if description == "" {
		description = item.Description
	}
	description = truncate(description, config.MaxDescriptionLen)

	author := ""
	if item.Author != nil {
		author = item.Author.Name
	}

	return types.FeedItem{
		Title:       title,
		Link:        item.Link,
		Published:   published,
		Description: description,
		Thumbnail:   mediaThumbnail(item),
		Author:      author,
	}
}

// dctermsCreated reads the dcterms:created extension some feeds carry.
func dctermsCreated(item *gofeed.Item) string {
	exts, ok := item.Extensions["dcterms"]
	if !ok {
		return ""
	}
	if created, ok := exts["created"]; ok && len(created) > 0 {
		return created[0].Value
	}
	return ""
}

// mediaThumbnail returns the URL of the first media:thumbnail element,
// falling back to the first media:content element.
func mediaThumbnail(item *gofeed.Item) string {
	media, ok := item.Extensions["media"]
	if !ok {
		return ""
	}
	for _, field := range []string{"thumbnail", "content"} {
		if els, ok := media[field]; ok && len(els) > 0 {
			if url, ok := els[0].Attrs["url"]; ok {
				return url
			}
		}
	}
	return ""
}

// truncate cuts s to at most n characters.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
