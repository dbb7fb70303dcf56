package tui

import (
	"vaultfeed/demo/client"
	"vaultfeed/types"

	tea "github.com/charmbracelet/bubbletea"
)

// State represents the reader state machine
type State string

const (
	StateLoadingFeed    State = "loading_feed"
	StateList           State = "list"
	StateLoadingArticle State = "loading_article"
	StateArticle        State = "article"
	StateError          State = "error"
)

// Model represents the TUI reader state (thin client)
type Model struct {
	Client *client.Client

	// Feed request parameters
	FeedURL string
	Limit   int

	// Loaded feed state
	FeedTitle string
	Items     []types.FeedItem
	Cursor    int

	// Loaded article state
	Article *types.ArticleResult

	State State
	Err   error
}

// NewModel creates a new TUI model
func NewModel(apiURL, feedURL string, limit int) Model {
	return Model{
		Client:  client.NewClient(apiURL),
		FeedURL: feedURL,
		Limit:   limit,
		State:   StateLoadingFeed,
	}
}

// Init implements tea.Model interface
func (m Model) Init() tea.Cmd {
	return fetchFeed(m.Client, m.FeedURL, m.Limit)
}
