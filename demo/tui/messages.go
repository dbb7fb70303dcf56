package tui

import "vaultfeed/types"

// Messages for the tea program

// FeedLoadedMsg is sent when the feed list request completes
type FeedLoadedMsg struct {
	Result *types.FeedResult
	Err    error
}

// ArticleLoadedMsg is sent when the article request completes
type ArticleLoadedMsg struct {
	Article *types.ArticleResult
	Err     error
}
