package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"codeberg.org/racewiki/server/internal/markdown"
	"codeberg.org/racewiki/server/racewiki/entries"
)

const summaryRunes = 90

// returns the search screen
func NewSearchModel(client *Client) *SearchModel {
	ti := textinput.New()
	ti.Placeholder = "search cars, tracks, sims, tools..."
	ti.Focus()
	ti.CharLimit = 1000
	ti.Width = 80
	ti.Prompt = "> "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(colorLightGray)
	ti.TextStyle = lipgloss.NewStyle().Foreground(colorWhite)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorRed)

	return &SearchModel{
		input:   ti,
		spinner: sp,
		client:  client,
	}
}

func (m *SearchModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *SearchModel) Update(msg tea.Msg) (*SearchModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return m, m.submit()

		case "up", "ctrl+p":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil

		case "down", "ctrl+n":
			if m.selected < len(m.results)-1 {
				m.selected++
			}
			return m, nil

		case "ctrl+l":
			m.reset()
			return m, nil
		}

	case SearchResultsMsg:
		// a newer search is in flight
		if msg.query != m.lastQuery {
			return m, nil
		}

		m.isFetching = false
		m.err = nil
		m.results = msg.response.Results
		m.inferredQuery = msg.response.InferredQuery
		m.imageDerived = msg.response.ImageDerived
		m.selected = 0
		return m, nil

	case SearchErrorMsg:
		if msg.query != m.lastQuery {
			return m, nil
		}

		m.isFetching = false
		m.err = msg.err
		return m, nil

	case PageErrorMsg:
		m.isFetching = false
		m.err = fmt.Errorf("could not open %s: %w", msg.slug, msg.err)
		return m, nil

	case PageLoadedMsg:
		m.isFetching = false
		return m, nil

	case spinner.TickMsg:
		if !m.isFetching {
			return m, nil
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(20, msg.Width-10)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// searches when the input changed since the last search, otherwise opens the selected result
func (m *SearchModel) submit() tea.Cmd {
	query := strings.TrimSpace(m.input.Value())

	if query != "" && query != m.lastQuery {
		m.lastQuery = query
		m.isFetching = true
		m.err = nil

		return tea.Batch(m.spinner.Tick, m.client.SearchCmd(query))
	}

	if len(m.results) == 0 {
		return nil
	}

	m.isFetching = true
	return tea.Batch(m.spinner.Tick, m.client.EntryCmd(m.results[m.selected].Slug))
}

func (m *SearchModel) reset() {
	m.input.SetValue("")
	m.lastQuery = ""
	m.inferredQuery = ""
	m.imageDerived = false
	m.results = nil
	m.selected = 0
	m.isFetching = false
	m.err = nil
}

// the entry under the cursor, nil when there are no results
func (m *SearchModel) Selected() *entries.Entry {
	if len(m.results) == 0 {
		return nil
	}

	return &m.results[m.selected]
}

func (m *SearchModel) View() string {
	var b strings.Builder

	b.WriteString(welcomeView(m.client))
	b.WriteString(inputBoxStyle.Width(max(20, m.width-4)).Render(m.input.View()))
	b.WriteString("\n")

	switch {
	case m.isFetching:
		b.WriteString(m.spinner.View() + infoStyle.Render(" searching..."))
	case m.err != nil:
		b.WriteString(errorStyle.Render("error: " + m.err.Error()))
	case m.lastQuery != "" && len(m.results) == 0:
		b.WriteString(infoStyle.Render("no entries matched " + fmt.Sprintf("%q", m.lastQuery)))
	case m.imageDerived:
		b.WriteString(infoStyle.Render("searched for " + fmt.Sprintf("%q", m.inferredQuery)))
	}

	b.WriteString("\n\n")

	for i, e := range m.results {
		b.WriteString(m.resultView(i, e))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("[enter: search/open] [↑/↓: select] [ctrl+l: clear] [ctrl+c: quit]"))

	return b.String()
}

func (m *SearchModel) resultView(i int, e entries.Entry) string {
	line := fmt.Sprintf("%d. %s %s", i+1, e.Title, categoryStyle.Render("["+string(e.Category)+"]"))

	if i == m.selected {
		line = resultSelectedStyle.Render(line)
	} else {
		line = resultStyle.Render(line)
	}

	summary := markdown.Summary(strings.Join(strings.Fields(e.Content), " "), summaryRunes)
	if summary == "" {
		return line
	}

	return line + "\n" + summaryStyle.Render(summary)
}
