package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	colorWhite     = lipgloss.Color("#FFFFFF")
	colorLightGray = lipgloss.Color("#CCCCCC")
	colorGray      = lipgloss.Color("#888888")
	colorDarkGray  = lipgloss.Color("#444444")
	colorRed       = lipgloss.Color("#E10600")
	colorYellow    = lipgloss.Color("#FFD000")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorRed).
			MarginTop(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorLightGray).
			MarginBottom(1)

	resultStyle = lipgloss.NewStyle().
			Foreground(colorLightGray).
			PaddingLeft(2)

	resultSelectedStyle = lipgloss.NewStyle().
				Foreground(colorWhite).
				Bold(true).
				BorderStyle(lipgloss.ThickBorder()).
				BorderLeft(true).
				BorderForeground(colorRed).
				PaddingLeft(1)

	categoryStyle = lipgloss.NewStyle().
			Foreground(colorYellow)

	summaryStyle = lipgloss.NewStyle().
			Foreground(colorGray).
			PaddingLeft(2)

	inputBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(colorGray).
			Padding(0, 1)

	infoStyle = lipgloss.NewStyle().
			Foreground(colorGray).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorDarkGray).
			Italic(true).
			MarginTop(1)
)

const logo = `
  ██████╗  █████╗  ██████╗███████╗██╗    ██╗██╗██╗  ██╗██╗
  ██╔══██╗██╔══██╗██╔════╝██╔════╝██║    ██║██║██║ ██╔╝██║
  ██████╔╝███████║██║     █████╗  ██║ █╗ ██║██║█████╔╝ ██║
  ██╔══██╗██╔══██║██║     ██╔══╝  ██║███╗██║██║██╔═██╗ ██║
  ██║  ██║██║  ██║╚██████╗███████╗╚███╔███╔╝██║██║  ██╗██║
  ╚═╝  ╚═╝╚═╝  ╚═╝ ╚═════╝╚══════╝ ╚══╝╚══╝ ╚═╝╚═╝  ╚═╝╚═╝
`
