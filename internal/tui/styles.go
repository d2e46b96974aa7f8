package tui

import "github.com/charmbracelet/lipgloss"

// Color palette.
const (
	ColorHeader    = lipgloss.Color("12")
	ColorLabel     = lipgloss.Color("245")
	ColorValue     = lipgloss.Color("255")
	ColorMuted     = lipgloss.Color("240")
	ColorHighlight = lipgloss.Color("13")
	ColorError     = lipgloss.Color("9")
)

var (
	TitleStyle    = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	HeaderStyle   = lipgloss.NewStyle().Foreground(ColorLabel).Bold(true)
	LabelStyle    = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle    = lipgloss.NewStyle().Foreground(ColorValue)
	MutedStyle    = lipgloss.NewStyle().Foreground(ColorMuted)
	SelectedStyle = lipgloss.NewStyle().Foreground(ColorHighlight).Bold(true)
	ErrorStyle    = lipgloss.NewStyle().Foreground(ColorError)
	DetailStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1)
)
