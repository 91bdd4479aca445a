package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"weatherdash/internal/ui/views"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	minLength int
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer(minLength int) *HelpRenderer {
	return &HelpRenderer{minLength: minLength}
}

// RenderHelpContent generates help content with colors for the pager
func (r *HelpRenderer) RenderHelpContent(keys keyMap) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	help.WriteString(titleStyle.Render(views.AppTitle + " Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Searching"))
	help.WriteString("\n")
	help.WriteString("  Type a city name. The lookup starts once typing pauses and\n")
	help.WriteString(fmt.Sprintf("  the name is longer than %d characters.\n", r.minLength))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Keys"))
	help.WriteString("\n")
	for _, b := range keys.ShortHelp() {
		h := b.Help()
		help.WriteString(fmt.Sprintf("  %-8s %s\n", keyStyle.Render(h.Key), descStyle.Render(h.Desc)))
	}
	help.WriteString(fmt.Sprintf("  %-8s %s\n", keyStyle.Render("ctrl+c"), descStyle.Render("quit")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("In the pager"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %-8s %s", keyStyle.Render("q"), descStyle.Render("return to the dashboard")))

	return help.String()
}
