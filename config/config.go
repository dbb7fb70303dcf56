package config

import (
	"os"
	"strconv"
	"time"
)

// Feed endpoint constants
const (
	// DefaultLimit is the number of feed items returned when the client
	// does not ask for a specific count.
	DefaultLimit = 20

	// MaxLimit caps the number of feed items per response.
	MaxLimit = 50

	// MaxDescriptionLen truncates item descriptions, counted in characters.
	// Truncation may land mid-markup; the front-end tolerates that.
	MaxDescriptionLen = 2000

	// FeedUserAgent identifies outbound feed fetches.
	FeedUserAgent = "VaultFeed/1.0"
)

// Article extraction constants
const (
	// FetchTimeout bounds every outbound page fetch.
	FetchTimeout = 12 * time.Second

	// MinArticleTextLen is the minimum extracted text length below which
	// the fallback extraction pass is attempted.
	MinArticleTextLen = 100

	// BrowserUserAgent identifies article page fetches; some publishers
	// serve stripped-down pages to non-browser agents.
	BrowserUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) " +
		"Chrome/122.0.0.0 Safari/537.36"
)

const fallbackFeedURL = "https://hnrss.org/frontpage"

// FeedPresets maps friendly names to RSS feed URLs
var FeedPresets = map[string]string{
	"cna": "https://www.channelnewsasia.com/api/v1/rss-outbound-feed?_format=xml",
	"st":  "https://www.straitstimes.com/news/singapore/rss.xml",
	"hn":  "https://hnrss.org/frontpage",
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

// DefaultFeedURL returns the fallback feed source used when a request
// carries no url parameter, configurable via NEWS_RSS_URL.
func DefaultFeedURL() string {
	return GetEnvOrDefault("NEWS_RSS_URL", fallbackFeedURL)
}

// ClampLimit parses a raw limit query value. Missing, non-numeric, or
// non-positive input yields the default; anything above the cap is clamped.
func ClampLimit(raw string) int {
	if raw == "" {
		return DefaultLimit
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return DefaultLimit
	}
	if n > MaxLimit {
		return MaxLimit
	}
	return n
}

// GetEnvOrDefault returns the value of an environment variable or a default value
func GetEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
