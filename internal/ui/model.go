package ui

import (
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"weatherdash/internal/config"
	"weatherdash/internal/debounce"
	"weatherdash/internal/domain"
	"weatherdash/internal/query"
	"weatherdash/internal/ui/views"
	"weatherdash/internal/weatherapi"
)

// Model represents the UI state
type Model struct {
	config *config.Config
	runner *query.Runner
	logger *zap.Logger

	width   int
	height  int
	keys    keyMap
	help    help.Model
	input   textinput.Model
	spinner spinner.Model

	debouncer  *debounce.Debouncer
	renderer   *views.Renderer
	helpRender *HelpRenderer
	pager      *Pager

	state       domain.RequestState
	lastKey     string // normalized key of the last settled query
	inputError  string
	inPagerMode bool // tracks if we're currently in pager mode

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(cfg *config.Config, runner *query.Runner, logger *zap.Logger) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}

	ti := textinput.New()
	ti.Placeholder = "Enter a city name"
	ti.Prompt = "City: "
	ti.CharLimit = 100
	ti.SetValue(cfg.UI.DefaultCity)

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &Model{
		config:     cfg,
		runner:     runner,
		logger:     logger.Named("ui"),
		keys:       defaultKeyMap(),
		help:       help.New(),
		input:      ti,
		spinner:    sp,
		debouncer:  debounce.New(cfg.UI.Debounce.Duration),
		renderer:   views.NewRenderer(),
		helpRender: NewHelpRenderer(cfg.UI.MinQueryLength),
		pager:      NewPager(nil),
		state:      domain.Idle(),
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// State returns the current request state
func (m *Model) State() domain.RequestState {
	return m.state
}

// InputError returns the message shown under the input, if any
func (m *Model) InputError() string {
	return m.inputError
}

// Init schedules the first lookup for the default city
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(views.AppTitle),
		m.input.Focus(),
		m.debouncer.Push(m.input.Value()),
	)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case debounce.SettledMsg:
		value, ok := m.debouncer.Settle(msg)
		if !ok {
			return m, nil
		}
		return m, m.settle(value, false)

	case query.ResultMsg:
		m.handleResult(msg)
		return m, nil

	case spinner.TickMsg:
		if m.state.Status != domain.StatusLoading || m.inPagerMode {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case pagerMsg:
		if msg.err != nil {
			m.logger.Warn("pager failed", zap.String("title", msg.title), zap.Error(msg.err))
		}
		// Pager succeeded, RestoreTerminal() should have restored the screen
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		if m.state.Status == domain.StatusLoading {
			return m, m.spinner.Tick
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.runner.Cancel()
		return tea.Quit

	case key.Matches(msg, m.keys.Submit):
		value, ok := m.debouncer.Flush()
		if !ok {
			return nil
		}
		return m.settle(value, false)

	case key.Matches(msg, m.keys.Refresh):
		value, _ := m.debouncer.Flush()
		return m.settle(value, true)

	case key.Matches(msg, m.keys.Details):
		return m.showInPager("details", views.RenderDetails(m.state.Report))

	case key.Matches(msg, m.keys.Help):
		return m.showInPager("help", m.helpRender.RenderHelpContent(m.keys))
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() == before {
		return cmd
	}
	return tea.Batch(cmd, m.debouncer.Push(m.input.Value()))
}

// settle reacts to a new debounced value. An unchanged key is ignored unless
// force is set.
func (m *Model) settle(value string, force bool) tea.Cmd {
	norm := query.Normalize(value)
	if norm == m.lastKey && !force {
		return nil
	}
	m.lastKey = norm

	if !query.Enabled(value, m.config.UI.MinQueryLength) {
		m.runner.Cancel()
		m.state = domain.Idle()
		return nil
	}

	m.logger.Debug("query settled", zap.String("key", norm))
	m.state = domain.Loading(norm)
	return tea.Batch(m.runner.Start(value), m.spinner.Tick)
}

func (m *Model) handleResult(msg query.ResultMsg) {
	if !m.runner.Current(msg.Seq) {
		m.logger.Debug("dropping stale result", zap.Uint64("seq", msg.Seq), zap.String("key", msg.Key))
		return
	}

	norm := query.Normalize(msg.Key)
	if msg.Err != nil {
		m.state = domain.Failed(norm, msg.Err)
		if weatherapi.IsInputError(msg.Err) {
			m.inputError = weatherapi.UserMessage(msg.Err)
		} else {
			m.inputError = ""
		}
		m.logger.Info("weather lookup failed", zap.String("key", norm), zap.Error(msg.Err))
		return
	}

	m.state = domain.Succeeded(norm, msg.Report)
	m.inputError = ""
}

// showInPager returns a command that shows content using ov pager
func (m *Model) showInPager(title, content string) tea.Cmd {
	return func() tea.Msg {
		if m.program == nil {
			return pagerMsg{title: title, err: errors.New("program not set")}
		}

		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.pager.Show(content)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return pagerMsg{title: title, err: err}
	}
}

// View renders the UI
func (m *Model) View() string {
	return m.renderer.Render(views.ViewState{
		Width:        m.width,
		Height:       m.height,
		Input:        m.input.View(),
		InputError:   m.inputError,
		Request:      m.state,
		ErrorMessage: weatherapi.UserMessage(m.state.Err),
		Spinner:      m.spinner.View(),
		MinLength:    m.config.UI.MinQueryLength,
		Help:         m.help.View(m.keys),
	})
}
