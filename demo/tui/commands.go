package tui

import (
	"context"

	"vaultfeed/demo/client"

	tea "github.com/charmbracelet/bubbletea"
)

// fetchFeed creates a command that loads the normalized feed list
func fetchFeed(c *client.Client, feedURL string, limit int) tea.Cmd {
	return func() tea.Msg {
		result, err := c.GetNews(context.Background(), feedURL, limit)
		return FeedLoadedMsg{Result: result, Err: err}
	}
}

// fetchArticle creates a command that loads reader content for one item
func fetchArticle(c *client.Client, pageURL string) tea.Cmd {
	return func() tea.Msg {
		article, err := c.GetArticle(context.Background(), pageURL)
		return ArticleLoadedMsg{Article: article, Err: err}
	}
}
