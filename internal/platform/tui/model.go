package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pou-arcade/internal/core"
	"github.com/vovakirdan/pou-arcade/internal/session"
)

// footerLines is the number of terminal rows below the playfield.
const footerLines = 1

// Options configures the terminal host.
type Options struct {
	FPS           int
	Width, Height int     // Initial terminal size in cells
	WorldW        float64 // Playfield size in world units
	WorldH        float64
	// HoldTicks overrides the held-key window; zero derives it from FPS.
	HoldTicks int
}

// Model is the Bubble Tea model that drives a session.
type Model struct {
	ctrl     *session.Controller
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	held     *HeldKeys
	tracker  *core.InputTracker
	fps      int
	quitting bool
}

// NewModel creates a model for the given session.
func NewModel(ctrl *session.Controller, opts Options) *Model {
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 80, 24
	}

	held := NewHeldKeys(opts.FPS)
	if opts.HoldTicks > 0 {
		held = NewHeldKeysWindow(opts.HoldTicks)
	}

	screen := core.NewScreen(opts.Width, max(opts.Height-footerLines, 1))
	screen.SetWorld(opts.WorldW, opts.WorldH)

	m := &Model{
		ctrl:    ctrl,
		screen:  screen,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		held:    held,
		tracker: core.NewInputTracker(),
		fps:     opts.FPS,
	}
	m.help.Width = opts.Width
	m.draw()
	return m
}

// Init starts the tick loop.
func (m *Model) Init() tea.Cmd {
	return tickCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action := m.keys.Action(msg)
		if action == core.ActionQuit {
			m.quitting = true
			return m, tea.Quit
		}
		m.held.Key(action)
		return m, nil

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, max(msg.Height-footerLines, 1))
		m.help.Width = msg.Width
		m.draw()
		return m, nil

	case TickMsg:
		return m.tick()
	}

	return m, nil
}

// tick advances the session by one frame.
func (m *Model) tick() (tea.Model, tea.Cmd) {
	frame := m.tracker.Next(m.held.Tick())
	if res := m.ctrl.Step(frame); res.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	m.draw()
	return m, tickCmd(m.fps)
}

func (m *Model) draw() {
	m.screen.Clear()
	m.ctrl.Render(m.screen)
}

// View renders the playfield and the help footer.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		RenderScreen(m.screen),
		helpStyle.Render(m.help.ShortHelpView(m.keys.ShortHelp())),
	)
}

// Quitting reports whether the model has asked the program to exit.
func (m *Model) Quitting() bool {
	return m.quitting
}

// Run runs a session in the terminal until it quits.
func Run(ctrl *session.Controller, opts Options) error {
	p := tea.NewProgram(NewModel(ctrl, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
