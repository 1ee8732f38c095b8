package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// creates the wiki browser for the API at endpoint
func NewApp(endpoint, locale string) *Model {
	client := NewClient(endpoint, locale)

	return &Model{
		state:  StateSearch,
		client: client,
		search: NewSearchModel(client),
		page:   NewPageModel(),
	}
}

func (m *Model) Init() tea.Cmd {
	return m.search.Init()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			// on a page, ctrl+c goes back to the results
			if m.state == StatePage {
				m.state = StateSearch
				return m, nil
			}

			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		m.page, _ = m.page.Update(msg)
		m.search, _ = m.search.Update(msg)
		return m, nil

	case PageLoadedMsg:
		m.search, _ = m.search.Update(msg)
		m.page.SetPage(msg.page)
		m.state = StatePage
		return m, nil

	case BackMsg:
		m.state = StateSearch
		return m, nil
	}

	switch m.state {
	case StatePage:
		var cmd tea.Cmd

		switch msg.(type) {
		case tea.KeyMsg, tea.MouseMsg:
			m.page, cmd = m.page.Update(msg)
		default:
			// async search replies still belong to the search screen
			m.search, cmd = m.search.Update(msg)
		}

		return m, cmd

	default:
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
}

func (m *Model) View() string {
	switch m.state {
	case StateSearch:
		return m.search.View()

	case StatePage:
		return m.page.View()

	default:
		return fmt.Sprintf("unknown state %d", m.state)
	}
}
