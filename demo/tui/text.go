package tui

// UI Text Constants
const (
	// Footer
	TextFooterList    = "↑/↓ move | enter read | r refresh | q quit"
	TextFooterArticle = "b/esc back to list | q quit"
	TextFooterError   = "Press 'r' to retry | Press 'q' to quit"
)
