package extract

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
	"github.com/go-resty/resty/v2"
	"golang.org/x/net/html"
)

// fallbackResult is the cleaned fragment produced by the readability pass.
type fallbackResult struct {
	Title string
	Text  string
	HTML  string
	Image string
}

// extractFallback re-fetches the page independently of the primary pass and
// isolates the main content with a readability pass. Script, style, and
// embedded-object elements are stripped from the returned fragment.
func extractFallback(ctx context.Context, client *resty.Client, pageURL string) (fallbackResult, error) {
	var res fallbackResult

	resp, err := client.R().SetContext(ctx).Get(pageURL)
	if err != nil {
		return res, err
	}
	if resp.IsError() {
		return res, fmt.Errorf("page fetch returned status %d", resp.StatusCode())
	}

	parsedURL, err := url.Parse(pageURL)
	if err != nil {
		return res, err
	}

	article, err := readability.FromReader(strings.NewReader(resp.String()), parsedURL)
	if err != nil {
		return res, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(article.Content))
	if err != nil {
		return res, err
	}
	doc.Find("script, style, iframe, object, embed").Remove()

	body := doc.Find("body")
	fragment, err := body.Html()
	if err != nil {
		return res, err
	}

	res.Title = article.Title
	res.Text = blockText(body)
	res.HTML = fragment
	res.Image = firstHTTPImage(doc)
	return res, nil
}

// blockText flattens a selection to plain text, joining text segments with
// blank lines so downstream paragraph splitting keeps the block structure.
func blockText(sel *goquery.Selection) string {
	var segments []string
	for _, node := range sel.Nodes {
		collectText(node, &segments)
	}
	return strings.TrimSpace(strings.Join(segments, "\n\n"))
}

func collectText(n *html.Node, segments *[]string) {
	if n.Type == html.TextNode {
		if t := strings.TrimSpace(n.Data); t != "" {
			*segments = append(*segments, t)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, segments)
	}
}

// firstHTTPImage returns the first image source in the fragment that is an
// absolute http(s) URL.
func firstHTTPImage(doc *goquery.Document) string {
	image := ""
	doc.Find("img[src]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		src, _ := s.Attr("src")
		if strings.HasPrefix(src, "http") {
			image = src
			return false
		}
		return true
	})
	return image
}
