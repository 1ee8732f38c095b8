package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"

	"codeberg.org/racewiki/server/api/rest/search"
	"codeberg.org/racewiki/server/api/rest/wiki"
	"codeberg.org/racewiki/server/racewiki/entries"
)

// represents the current screen of the TUI
type AppState int

const (
	StateSearch AppState = iota
	StatePage
)

// main TUI application model
type Model struct {
	state  AppState
	width  int
	height int
	client *Client
	search *SearchModel
	page   *PageModel
}

// search box and result list
type SearchModel struct {
	input         textinput.Model
	spinner       spinner.Model
	client        *Client
	width         int
	height        int
	lastQuery     string
	inferredQuery string
	imageDerived  bool
	results       []entries.Entry
	selected      int
	isFetching    bool
	err           error
}

// a single entry rendered as markdown
type PageModel struct {
	viewport viewport.Model
	renderer *glamour.TermRenderer
	page     *wiki.PageResponse
	width    int
	height   int
}

// sent when a search completes
type SearchResultsMsg struct {
	query    string
	response search.SearchResponse
}

// sent when a search fails
type SearchErrorMsg struct {
	query string
	err   error
}

// sent when an entry has been fetched
type PageLoadedMsg struct {
	page wiki.PageResponse
}

// sent when an entry could not be fetched
type PageErrorMsg struct {
	slug string
	err  error
}

// sent to return from a page to the results
type BackMsg struct{}
