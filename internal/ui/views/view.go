package views

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"weatherdash/internal/domain"
)

const (
	// AppTitle is the heading and terminal window title
	AppTitle = "Weather Dashboard"
	// AppDescription is shown under the title
	AppDescription = "Check the current weather conditions of any city."
	// LoadingText is shown while a request is in flight
	LoadingText = "Loading..."
	// TimestampLayout formats the location's local time
	TimestampLayout = "Mon, 02 Jan 2006 15:04"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width        int
	Height       int
	Input        string
	InputError   string
	Request      domain.RequestState
	ErrorMessage string
	Spinner      string
	MinLength    int
	Help         string
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Styles returns the renderer's styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.styles.Title.Render(AppTitle))
	content.WriteString("\n")
	content.WriteString(r.styles.Description.Render(AppDescription))
	content.WriteString("\n")

	content.WriteString(r.renderInput(state))
	content.WriteString("\n\n")

	if body := r.renderBody(state); body != "" {
		content.WriteString(body)
		content.WriteString("\n")
	}

	if state.Help != "" {
		content.WriteString("\n")
		content.WriteString(r.styles.Help.Render(state.Help))
	}

	return r.styles.Main.Render(content.String())
}

func (r *Renderer) renderInput(state ViewState) string {
	box := r.styles.Input
	if state.InputError != "" {
		box = r.styles.InputError
	}
	if w := panelWidth(state.Width); w > 0 {
		box = box.Width(w)
	}

	out := box.Render(state.Input)
	if state.InputError != "" {
		out += "\n" + r.styles.InputHint.Render(state.InputError)
	}
	return out
}

func (r *Renderer) renderBody(state ViewState) string {
	switch state.Request.Status {
	case domain.StatusLoading:
		text := LoadingText
		if state.Spinner != "" {
			text = state.Spinner + " " + text
		}
		return r.styles.Loading.Render(text)
	case domain.StatusError:
		// an inline input error replaces the general panel
		if state.InputError != "" {
			return ""
		}
		return r.styles.ErrorText.Render(state.ErrorMessage)
	case domain.StatusSuccess:
		if state.Request.Report == nil {
			return ""
		}
		return r.renderReport(state.Request.Report, panelWidth(state.Width))
	default:
		if state.InputError != "" {
			return ""
		}
		return r.styles.Dim.Render(fmt.Sprintf("Enter at least %d characters", state.MinLength+1))
	}
}

func (r *Renderer) renderReport(report *domain.Report, width int) string {
	icon := IconFor(report)

	lines := []string{
		r.styles.Location.Render(report.Title()),
		r.styles.Timestamp.Render(FormatTimestamp(report)),
		"",
		r.styles.Icon.Render(icon.Glyph) + " " + r.styles.Condition.Render(icon.Label),
		r.styles.Temperature.Render(report.Temperature()),
	}
	if icon.URL != "" {
		lines = append(lines, r.styles.Dim.Render(icon.URL))
	}

	panel := r.styles.Panel
	if width > 0 {
		panel = panel.Width(width)
	}
	return panel.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}

// FormatTimestamp renders the location's local time, falling back to the
// provider's raw string when it cannot be parsed
func FormatTimestamp(report *domain.Report) string {
	t, err := report.LocalTime()
	if err != nil {
		return report.Location.Localtime
	}
	return t.Format(TimestampLayout)
}

// RenderDetails renders the full report for the pager
func RenderDetails(report *domain.Report) string {
	if report == nil {
		return "No weather data loaded yet.\n"
	}

	section := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	label := lipgloss.NewStyle().Foreground(lipgloss.Color("220"))

	var b strings.Builder
	row := func(name, value string) {
		b.WriteString(fmt.Sprintf("  %-14s %s\n", label.Render(name), value))
	}

	b.WriteString(section.Render(report.Title()))
	b.WriteString("\n\n")

	b.WriteString(section.Render("Location"))
	b.WriteString("\n")
	row("Name", report.Location.Name)
	row("Region", report.Location.Region)
	row("Country", report.Location.Country)
	row("Coordinates", fmt.Sprintf("%.2f, %.2f", report.Location.Lat, report.Location.Lon))
	row("Time zone", report.Location.TzID)
	row("Local time", FormatTimestamp(report))
	b.WriteString("\n")

	c := report.Current
	b.WriteString(section.Render("Current"))
	b.WriteString("\n")
	row("Condition", c.Condition.Text)
	row("Temperature", report.Temperature())
	row("Feels like", fmt.Sprintf("%g°C", c.FeelsLikeC))
	row("Fahrenheit", fmt.Sprintf("%g°F", c.TempF))
	row("Humidity", fmt.Sprintf("%d%%", c.Humidity))
	row("Wind", fmt.Sprintf("%g kph %s", c.WindKph, c.WindDir))
	row("Last updated", c.LastUpdated)
	row("Icon", report.IconURL())

	if len(report.Raw) > 0 {
		var pretty bytes.Buffer
		if err := json.Indent(&pretty, report.Raw, "", "  "); err == nil {
			b.WriteString("\n")
			b.WriteString(section.Render("Raw response"))
			b.WriteString("\n")
			b.WriteString(pretty.String())
			b.WriteString("\n")
		}
	}

	return b.String()
}

func panelWidth(width int) int {
	if width <= 0 {
		return 0
	}
	w := width - 8
	if w > 60 {
		w = 60
	}
	if w < 20 {
		w = 20
	}
	return w
}
