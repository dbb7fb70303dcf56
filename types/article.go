package types

// ArticleResult is the reader-view payload extracted from a page URL.
// Every field is always present; extraction failures leave empty values
// rather than producing an error response.
type ArticleResult struct {
	Title       string   `json:"title"`
	Authors     []string `json:"authors"`
	PublishDate string   `json:"publish_date"`
	TopImage    string   `json:"top_image"`
	Text        string   `json:"text"`
	HTML        string   `json:"html"`
	SourceURL   string   `json:"source_url"`
}
