package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case FeedLoadedMsg:
		return m.handleFeedLoaded(msg)
	case ArticleLoadedMsg:
		return m.handleArticleLoaded(msg)
	}
	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		if m.State == StateList && m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.State == StateList && m.Cursor < len(m.Items)-1 {
			m.Cursor++
		}
	case "enter":
		if m.State == StateList && len(m.Items) > 0 {
			item := m.Items[m.Cursor]
			if item.Link != "" {
				m.State = StateLoadingArticle
				return m, fetchArticle(m.Client, item.Link)
			}
		}
	case "r", "R":
		if m.State == StateList || m.State == StateError {
			m.State = StateLoadingFeed
			m.Err = nil
			return m, fetchFeed(m.Client, m.FeedURL, m.Limit)
		}
	case "b", "esc":
		if m.State == StateArticle {
			m.Article = nil
			m.State = StateList
		}
	}
	return m, nil
}

// handleFeedLoaded processes feed list completion
func (m Model) handleFeedLoaded(msg FeedLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.State = StateError
		m.Err = msg.Err
		return m, nil
	}
	m.FeedTitle = msg.Result.FeedTitle
	m.Items = msg.Result.Items
	m.Cursor = 0
	m.State = StateList
	return m, nil
}

// handleArticleLoaded processes article completion
func (m Model) handleArticleLoaded(msg ArticleLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		// Keep the list usable; show the error inline instead of a dead end
		m.State = StateList
		m.Err = msg.Err
		return m, nil
	}
	m.Article = msg.Article
	m.Err = nil
	m.State = StateArticle
	return m, nil
}
