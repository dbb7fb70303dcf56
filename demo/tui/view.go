package tui

import (
	"fmt"
	"strings"
)

// View implements tea.Model interface
func (m Model) View() string {
	var b strings.Builder

	// Title
	b.WriteString(TitleStyle.Render("📰 VaultFeed Reader"))
	b.WriteString("\n\n")

	switch m.State {
	case StateLoadingFeed:
		b.WriteString(StatusStyle.Render("⏳ Fetching feed..."))
		b.WriteString("\n")
	case StateLoadingArticle:
		b.WriteString(StatusStyle.Render("⏳ Extracting article..."))
		b.WriteString("\n")
	case StateError:
		b.WriteString(ErrorStyle.Render(fmt.Sprintf("❌ Error: %v", m.Err)))
		b.WriteString("\n\n")
		b.WriteString(InfoStyle.Render(TextFooterError))
	case StateList:
		b.WriteString(m.viewList())
	case StateArticle:
		b.WriteString(m.viewArticle())
	}

	return b.String()
}

// viewList renders the feed item list with the cursor marker
func (m Model) viewList() string {
	var b strings.Builder

	if m.FeedTitle != "" {
		b.WriteString(HighlightStyle.Render(m.FeedTitle))
		b.WriteString("\n\n")
	}

	if len(m.Items) == 0 {
		b.WriteString(InfoStyle.Render("No items in this feed."))
		b.WriteString("\n\n")
	}

	for i, item := range m.Items {
		line := "  " + item.Title
		if i == m.Cursor {
			line = CursorStyle.Render("› " + item.Title)
		}
		b.WriteString(line)
		b.WriteString("\n")
		if i == m.Cursor && item.Published != "" {
			b.WriteString(InfoStyle.Render("    " + item.Published))
			b.WriteString("\n")
		}
	}

	if m.Err != nil {
		b.WriteString("\n")
		b.WriteString(ErrorStyle.Render(fmt.Sprintf("⚠️  %v", m.Err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(InfoStyle.Render(TextFooterList))
	return b.String()
}

// viewArticle renders the extracted reader view
func (m Model) viewArticle() string {
	var b strings.Builder
	a := m.Article

	title := a.Title
	if title == "" {
		title = a.SourceURL
	}
	b.WriteString(HighlightStyle.Render(title))
	b.WriteString("\n")

	var meta []string
	if len(a.Authors) > 0 {
		meta = append(meta, strings.Join(a.Authors, ", "))
	}
	if a.PublishDate != "" {
		meta = append(meta, a.PublishDate)
	}
	if len(meta) > 0 {
		b.WriteString(InfoStyle.Render(strings.Join(meta, " · ")))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if a.Text == "" {
		b.WriteString(InfoStyle.Render("No readable content could be extracted."))
		b.WriteString("\n")
	} else {
		b.WriteString(BoxStyle.Render(a.Text))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(InfoStyle.Render(TextFooterArticle))
	return b.String()
}
