package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Description lipgloss.Style
	Input       lipgloss.Style
	InputError  lipgloss.Style
	InputHint   lipgloss.Style
	ErrorText   lipgloss.Style
	Loading     lipgloss.Style
	Panel       lipgloss.Style
	Location    lipgloss.Style
	Timestamp   lipgloss.Style
	Condition   lipgloss.Style
	Temperature lipgloss.Style
	Icon        lipgloss.Style
	Dim         lipgloss.Style
	Help        lipgloss.Style
	Main        lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Description: lipgloss.NewStyle().Faint(true).MarginBottom(1),
		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		InputError: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("203")).
			Padding(0, 1),
		InputHint: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		ErrorText: lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Align(lipgloss.Center),
		Loading:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Align(lipgloss.Center), // gray
		Panel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(1, 2).
			Align(lipgloss.Center),
		Location:    lipgloss.NewStyle().Bold(true),
		Timestamp:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Condition:   lipgloss.NewStyle(),
		Temperature: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33")), // blue
		Icon:        lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Dim:         lipgloss.NewStyle().Faint(true),
		Help:        lipgloss.NewStyle().Faint(true),
		Main:        lipgloss.NewStyle().Padding(1, 2),
	}
}
