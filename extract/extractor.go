package extract

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"vaultfeed/config"
	"vaultfeed/types"

	"github.com/PuerkitoBio/goquery"
	goose "github.com/advancedlogic/GoOse"
	"github.com/go-resty/resty/v2"
)

// ExtractArticle runs the two-stage extraction pipeline for a page URL.
// The primary pass uses the full-document extractor; when it yields too
// little text, a readability fallback pass re-fetches and isolates the main
// content. Strategy failures never surface: the result carries whatever the
// stages managed to produce, down to all-empty fields.
func ExtractArticle(ctx context.Context, pageURL string) types.ArticleResult {
	result := types.ArticleResult{
		Authors:   []string{},
		SourceURL: pageURL,
	}

	client := newClient()

	if primary, err := extractPrimary(ctx, client, pageURL); err == nil {
		result.Title = primary.Title
		result.Authors = primary.Authors
		result.PublishDate = primary.PublishDate
		result.TopImage = primary.TopImage
		result.Text = primary.Text
	}

	if textLen(result.Text) < config.MinArticleTextLen {
		fb, err := extractFallback(ctx, client, pageURL)
		// Fallback text wins only when strictly longer than what the
		// primary pass produced.
		if err == nil && textLen(fb.Text) > textLen(result.Text) {
			result.Text = fb.Text
			result.HTML = fb.HTML
			if result.Title == "" {
				result.Title = fb.Title
			}
			if result.TopImage == "" {
				result.TopImage = fb.Image
			}
		}
	}

	if result.Text != "" && result.HTML == "" {
		result.HTML = SynthesizeHTML(result.Text)
	}

	return result
}

// textLen counts characters, not bytes; extracted text is frequently
// non-ASCII and the fallback threshold is a character count.
func textLen(s string) int {
	return utf8.RuneCountInString(s)
}

// newClient builds the outbound HTTP client used for article page fetches.
func newClient() *resty.Client {
	return resty.New().
		SetTimeout(config.FetchTimeout).
		SetHeader("User-Agent", config.BrowserUserAgent)
}

// primaryResult is the intermediate state produced by the primary pass.
// It carries no HTML: the result markup comes from the fallback pass or is
// synthesized from the text.
type primaryResult struct {
	Title       string
	Authors     []string
	PublishDate string
	TopImage    string
	Text        string
}

// extractPrimary downloads the page and runs the full-document extractor
// over the raw HTML.
func extractPrimary(ctx context.Context, client *resty.Client, pageURL string) (primaryResult, error) {
	res := primaryResult{Authors: []string{}}

	resp, err := client.R().SetContext(ctx).Get(pageURL)
	if err != nil {
		return res, err
	}
	if resp.IsError() {
		return res, fmt.Errorf("page fetch returned status %d", resp.StatusCode())
	}

	g := goose.New()
	article, err := g.ExtractFromRawHTML(resp.String(), pageURL)
	if err != nil {
		return res, err
	}

	res.Title = article.Title
	res.Text = strings.TrimSpace(article.CleanedText)
	res.TopImage = article.TopImage
	if article.PublishDate != nil {
		res.PublishDate = article.PublishDate.Format(time.RFC3339)
	}
	if article.Doc != nil {
		res.Authors = metaAuthors(article.Doc)
	}
	return res, nil
}

// authorMetaSelectors are tried in order; the first tag with content wins.
var authorMetaSelectors = []string{
	`meta[name="author"]`,
	`meta[property="article:author"]`,
	`meta[name="twitter:creator"]`,
}

// metaAuthors pulls author names out of the page's meta tags, splitting
// comma-separated lists.
func metaAuthors(doc *goquery.Document) []string {
	authors := []string{}
	for _, sel := range authorMetaSelectors {
		node := doc.Find(sel).First()
		if node.Length() == 0 {
			continue
		}
		content, ok := node.Attr("content")
		if !ok {
			continue
		}
		for _, name := range strings.Split(content, ",") {
			if name = strings.TrimSpace(name); name != "" {
				authors = append(authors, name)
			}
		}
		if len(authors) > 0 {
			break
		}
	}
	return authors
}
