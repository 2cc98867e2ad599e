package tui

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/setsubun/internal/assets"
	"github.com/vovakirdan/setsubun/internal/config"
	"github.com/vovakirdan/setsubun/internal/core"
	"github.com/vovakirdan/setsubun/internal/registry"
	"github.com/vovakirdan/setsubun/internal/session"
)

// Rows reserved outside the arena.
const (
	headerRows = 1
	footerRows = 1
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#D24545"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Options configures Run.
type Options struct {
	Config   config.SetsubunConfig
	Loader   assets.Loader
	TickRate int
	Seed     int64
	Cols     int
	Rows     int
	Logger   *log.Logger
}

// Model is the Bubble Tea model for one game of Setsubun.
type Model struct {
	lc       *session.Lifecycle
	loop     *session.FrameLoop
	screen   *core.Screen
	prompt   *Prompter
	keys     KeyMap
	help     help.Model
	tickRate int
	quitting bool
}

// NewModel creates a model around an already started lifecycle.
func NewModel(lc *session.Lifecycle, loop *session.FrameLoop, screen *core.Screen, prompt *Prompter, tickRate int) Model {
	return Model{
		lc:       lc,
		loop:     loop,
		screen:   screen,
		prompt:   prompt,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		tickRate: tickRate,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		x, y := m.screen.CellToPixel(msg.X, msg.Y)
		registry.DispatchPointerMove(x, y)
		return m, nil

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.screen.Resize(msg.Width, msg.Height-headerRows-footerRows)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Confirm):
		if !m.prompt.Acknowledge() {
			return m, nil
		}
		// A restart that failed leaves nothing to tick.
		if !m.loop.Pending() {
			m.quitting = true
			return m, tea.Quit
		}
		return m, tickCmd(m.tickRate)
	}

	return m, nil
}

// handleTick fires one frame and keeps ticking while frames are queued. The
// chain stops at game over and resumes on acknowledge.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.loop.Fire()
	if !m.loop.Pending() {
		return m, nil
	}
	return m, tickCmd(m.tickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	header := titleStyle.Render(fmt.Sprintf("%s  round %d", m.lc.Current().Game().Title(), m.lc.Rounds()))

	var body string
	if m.prompt.Active() {
		body = m.prompt.View(m.screen.Width(), m.screen.Height(), "press enter to play again")
	} else {
		body = RenderScreen(m.screen)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, helpStyle.Render(m.help.View(m.keys)))
}

// Run starts a lifecycle on a terminal screen and blocks until the player
// quits.
func Run(ctx context.Context, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	palette, err := opts.Config.Palette()
	if err != nil {
		return err
	}

	cols, rows := opts.Cols, opts.Rows-headerRows-footerRows
	screen := core.NewScreen(cols, rows, opts.Config.Arena.Width, opts.Config.Arena.Height)
	screen.SetBackground(palette.Background)
	screen.SetOrigin(0, headerRows)

	loop := &session.FrameLoop{}
	prompt := &Prompter{}

	lc := session.NewLifecycle(session.Host{
		Canvas:    screen,
		Scheduler: loop,
		Prompter:  prompt,
		Loader:    opts.Loader,
	}, opts.Config, opts.Seed, opts.TickRate, logger)

	var restartErr error
	lc.OnError(func(err error) { restartErr = err })

	if err := lc.Start(ctx); err != nil {
		return err
	}

	p := tea.NewProgram(
		NewModel(lc, loop, screen, prompt, opts.TickRate),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil {
		return err
	}
	return restartErr
}
