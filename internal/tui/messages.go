package tui

import "github.com/gfmartins/postdeck/internal/article"

// Fetch results carry the generation they were started under; messages from
// a superseded fetch are discarded so a stale response can never overwrite a
// newer collection.

type articlesLoadedMsg struct {
	gen      int
	articles []article.Article
}

type fetchErrMsg struct {
	gen int
	err error
}
