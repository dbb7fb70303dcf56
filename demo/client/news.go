package client

import (
	"context"
	"net/url"
	"strconv"

	"vaultfeed/types"
)

// GetNews fetches a normalized feed from the API. An empty feedURL lets the
// server apply its configured default source.
func (c *Client) GetNews(ctx context.Context, feedURL string, limit int) (*types.FeedResult, error) {
	q := url.Values{}
	if feedURL != "" {
		q.Set("url", feedURL)
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	var result types.FeedResult
	if err := c.getJSON(ctx, "/api/news?"+q.Encode(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetArticle fetches extracted reader content for a page URL.
func (c *Client) GetArticle(ctx context.Context, pageURL string) (*types.ArticleResult, error) {
	q := url.Values{}
	q.Set("url", pageURL)

	var result types.ArticleResult
	if err := c.getJSON(ctx, "/api/article?"+q.Encode(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}
