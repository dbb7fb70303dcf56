package types

// FeedItem is a single normalized entry from an RSS/Atom feed.
// Published carries the source's timestamp string as-is; date parsing is
// left to the reader front-end.
type FeedItem struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Published   string `json:"published"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
	Author      string `json:"author"`
}

// FeedResult is the top-level wrapper for the news endpoint response.
type FeedResult struct {
	Items     []FeedItem `json:"items"`
	FeedTitle string     `json:"feed_title"`
}
