package tui

import (
	"errors"
	rand "math/rand/v2"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/partycards/internal/game"
)

const (
	screenSetup = iota
	screenTable
)

const (
	paneLog = iota
	paneInput
)

// Options configures a Model
type Options struct {
	Players   int
	Cards     int
	Mode      game.GenerationMode
	RNG       *rand.Rand
	Clock     quartz.Clock
	SkipSetup bool // Go straight to the table with Players and Cards
}

// Model is the Bubble Tea model: it renders session snapshots and turns
// keyboard input into game actions.
type Model struct {
	logger    *log.Logger
	opts      Options
	formatter *game.EventFormatter

	screen  int
	setup   SetupModel
	session *game.Session

	// UI components
	logViewport viewport.Model
	actionInput textinput.Model

	gameLog     []string
	focusedPane int
	quitting    bool
	err         error // Fatal error that ended the program

	// Dimensions
	width  int
	height int
}

// NewModel creates the TUI model. The session is created once the setup
// screen is confirmed, or immediately with SkipSetup.
func NewModel(logger *log.Logger, opts Options) (*Model, error) {
	if opts.RNG == nil {
		return nil, errors.New("tui: an RNG is required")
	}
	if opts.Clock == nil {
		opts.Clock = quartz.NewReal()
	}

	vp := viewport.New(10, 5)
	vp.SetContent("")

	ti := textinput.New()
	ti.Placeholder = "raise 5, draw 3, next, help"
	ti.Focus()
	ti.CharLimit = 40
	ti.Width = 40
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA"))
	ti.Prompt = "> "

	m := &Model{
		logger: logger.WithPrefix("tui"),
		opts:   opts,
		formatter: game.NewEventFormatter(game.FormattingOptions{
			ShowRejections: true,
			ShowDirection:  true,
		}),
		screen:      screenSetup,
		setup:       NewSetupModel(opts.Players, opts.Cards),
		logViewport: vp,
		actionInput: ti,
		gameLog:     []string{},
		focusedPane: paneInput,
	}

	if opts.SkipSetup {
		if err := m.startSession(); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Init initializes the TUI model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logger.Debug("Updating dimensions", "width", m.width, "height", m.height)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "esc" {
			m.quitting = true
			return m, tea.Quit
		}
		if m.screen == screenSetup {
			return m.updateSetup(msg)
		}
		return m.updateTable(msg)
	}

	var cmd tea.Cmd
	m.logViewport, cmd = m.logViewport.Update(msg)
	return m, cmd
}

func (m *Model) updateSetup(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.setup = m.setup.Update(msg)
	if !m.setup.Done {
		return m, nil
	}
	if err := m.startSession(); err != nil {
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) updateTable(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg.String() {
	case "tab":
		if m.focusedPane == paneLog {
			m.focusedPane = paneInput
			m.actionInput.Focus()
		} else {
			m.focusedPane = paneLog
			m.actionInput.Blur()
		}
		return m, nil
	case "enter":
		if m.focusedPane == paneInput {
			quit := m.Submit(m.actionInput.Value())
			m.actionInput.SetValue("")
			if quit {
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.focusedPane == paneInput {
		m.actionInput, cmd = m.actionInput.Update(msg)
		cmds = append(cmds, cmd)
	} else {
		m.logViewport, cmd = m.logViewport.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// Submit parses one line of input and applies it to the session. It
// returns true when the player asked to quit.
func (m *Model) Submit(input string) bool {
	if m.session == nil {
		return false
	}

	cmd, err := ParseCommand(input, m.session.State.Over())
	if err != nil {
		m.AddLogEntry(ErrorStyle.Render(err.Error()))
		return false
	}

	switch {
	case cmd.Quit:
		m.logger.Info("Player quit", "round", m.session.State.Number)
		return true
	case cmd.Help:
		for _, line := range helpLines {
			m.AddLogEntry(InfoStyle.Render(line))
		}
		return false
	}

	m.logger.Debug("Applying action", "action", cmd.Action)
	if err := m.session.Apply(cmd.Action); err != nil {
		// Rejections are reported through the event bus; the loop goes on.
		if !errors.Is(err, game.ErrInvalidAction) {
			m.logger.Error("Unexpected error applying action", "action", cmd.Action, "error", err)
			m.AddLogEntry(ErrorStyle.Render(err.Error()))
		}
	}
	return false
}

// OnEvent receives session events and appends them to the log pane
func (m *Model) OnEvent(event game.GameEvent) {
	if event.EventType() == game.EventTypeRoundStart {
		m.ClearLog()
	}
	line := m.formatter.Format(event)
	if line == "" {
		return
	}
	if event.EventType() == game.EventTypeActionRejected {
		line = ErrorStyle.Render(line)
	}
	m.AddLogEntry(line)
}

func (m *Model) startSession() error {
	cfg := m.setup.Config(m.opts.Mode)
	bus := game.NewEventBus()
	bus.Subscribe(m)

	session, err := game.NewSession(m.opts.RNG, cfg,
		game.WithLogger(m.logger),
		game.WithClock(m.opts.Clock),
		game.WithEventBus(bus),
	)
	if err != nil {
		return err
	}

	m.logger.Info("Session started", "session", session.ID, "players", cfg.Players, "cards", cfg.Cards)
	m.session = session
	m.screen = screenTable
	return nil
}

// Session returns the running session, or nil on the setup screen
func (m *Model) Session() *game.Session {
	return m.session
}

// Err returns the error that ended the program, if any
func (m *Model) Err() error {
	return m.err
}

// AddLogEntry adds an entry to the game log and scrolls to it
func (m *Model) AddLogEntry(entry string) {
	m.gameLog = append(m.gameLog, entry)
	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
	if m.logViewport.Height > 0 && m.logViewport.Width > 0 {
		m.logViewport.GotoBottom()
	}
}

// ClearLog clears the game log
func (m *Model) ClearLog() {
	m.gameLog = []string{}
	m.logViewport.SetContent("")
}

// Log returns a copy of the log entries
func (m *Model) Log() []string {
	out := make([]string, len(m.gameLog))
	copy(out, m.gameLog)
	return out
}

// Run starts the Bubble Tea program and blocks until the player quits
func Run(m *Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return m.Err()
}
