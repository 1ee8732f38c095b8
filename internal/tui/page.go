package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"codeberg.org/racewiki/server/api/rest/wiki"
	"codeberg.org/racewiki/server/internal/markdown"
)

// lines taken by the header and help line around the viewport
const pageChrome = 4

// returns the entry screen
func NewPageModel() *PageModel {
	return &PageModel{
		viewport: viewport.New(80, 20),
	}
}

// replaces the displayed entry
func (m *PageModel) SetPage(page wiki.PageResponse) {
	m.page = &page
	m.viewport.SetContent(m.render())
	m.viewport.GotoTop()
}

func (m *PageModel) Update(msg tea.Msg) (*PageModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "backspace", "q":
			return m, func() tea.Msg { return BackMsg{} }
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(1, msg.Height-pageChrome)
		m.renderer = nil

		if m.page != nil {
			m.viewport.SetContent(m.render())
		}

		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *PageModel) View() string {
	if m.page == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(m.page.Title))
	b.WriteString(" ")
	b.WriteString(categoryStyle.Render(m.page.CategoryLabel))
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf("[esc: back] [↑/↓/pgup/pgdn: scroll] %3.f%%", m.viewport.ScrollPercent()*100)))

	return b.String()
}

// renders the entry markdown, falling back to the raw text when glamour fails
func (m *PageModel) render() string {
	content := markdown.NormalizeNewlines(m.page.Content)

	if m.renderer == nil {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle("dark"),
			glamour.WithWordWrap(max(20, m.width-4)),
		)

		if err != nil {
			return content
		}

		m.renderer = renderer
	}

	out, err := m.renderer.Render(content)
	if err != nil {
		return content
	}

	return out
}
