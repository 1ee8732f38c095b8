package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"

	"codeberg.org/racewiki/server/internal/tui"
)

const defaultEndpoint = "http://localhost:8080"

func main() {
	if !term.IsTerminal(os.Stdout.Fd()) {
		fmt.Fprintln(os.Stderr, "racewiki tui needs an interactive terminal, use wikictl search instead")
		os.Exit(1)
	}

	endpoint := os.Getenv("RACEWIKI_API_ENDPOINT")
	if endpoint == "" {
		endpoint = defaultEndpoint
	}

	app := tui.NewApp(endpoint, os.Getenv("RACEWIKI_LANG"))
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		fmt.Printf("error running racewiki tui: %v\n", err)
		os.Exit(1)
	}
}
