package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/jonboulle/clockwork"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// CauseQuit is recorded for runs abandoned by quitting.
const CauseQuit = "quit"

// Game is what the model drives. flappy.Game satisfies it.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// Options configures the model. Zero values fall back to defaults.
type Options struct {
	Store         *storage.Store
	Logger        *log.Logger
	Clock         clockwork.Clock
	Runtime       core.RuntimeConfig
	TickInterval  time.Duration
	ScreenshotDir string
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game     Game
	screen   *core.Screen
	store    *storage.Store
	log      *log.Logger
	clock    clockwork.Clock
	config   core.RuntimeConfig
	interval time.Duration
	shotDir  string

	keys  KeyMap
	help  help.Model
	runs  runsView
	input core.InputFrame
	state core.GameState

	runStart time.Time
	showRuns bool
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.Runtime.ScreenW == 0 && opts.Runtime.ScreenH == 0 {
		rt := core.DefaultConfig()
		rt.Seed = opts.Runtime.Seed
		opts.Runtime = rt
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = time.Second / 60
	}
	if opts.ScreenshotDir == "" {
		opts.ScreenshotDir = defaultScreenshotDir()
	}

	rt := opts.Runtime
	return Model{
		game:     game,
		screen:   core.NewScreen(rt.ScreenW, rt.ScreenH-1),
		store:    opts.Store,
		log:      opts.Logger,
		clock:    opts.Clock,
		config:   rt,
		interval: opts.TickInterval,
		shotDir:  opts.ScreenshotDir,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		runs:     newRunsView(opts.Store, rt.ScreenW, rt.ScreenH),
		input:    core.NewInputFrame(),
	}
}

// Init starts the tick loop. Run resets the game before the program starts.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if !m.showRuns {
			m.input.Set(MouseAction(msg))
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues game actions in arrival order. Platform keys act at once.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil

	case key.Matches(msg, m.keys.Runs):
		// The simulation keeps ticking, so the table is only offered between runs
		if m.running() {
			return m, nil
		}
		m.showRuns = !m.showRuns
		if m.showRuns {
			m.runs.refresh()
		}
		return m, nil
	}

	if m.showRuns && !key.Matches(msg, m.keys.Quit) {
		var cmd tea.Cmd
		m.runs, cmd = m.runs.Update(msg)
		return m, cmd
	}

	m.input.Set(m.keys.Action(msg))
	return m, nil
}

// handleResize adapts the screen. The simulation works in world units, so
// the run continues untouched.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-1)
	m.help.Width = msg.Width
	m.runs = m.runs.resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasRunning := m.running()

	result := m.game.Step(m.input)
	m.input.Clear()

	for _, e := range result.Events {
		m.handleEvent(e, result.State)
	}
	m.state = result.State

	if result.Quit {
		if wasRunning && m.running() {
			m.saveRun(result.State, CauseQuit)
		}
		m.log.Info("quit", "score", m.state.Score, "best", m.state.Best)
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.interval)
}

func (m Model) running() bool {
	return m.state.Started && !m.state.GameOver
}

// handleEvent logs a game event and keeps the run log current.
func (m *Model) handleEvent(e core.Event, state core.GameState) {
	switch e.Kind {
	case core.EventStarted:
		m.runStart = m.clock.Now()
		m.log.Info("run started")
	case core.EventCrashed:
		m.log.Info("run over", "cause", e.Detail, "score", state.Score, "best", state.Best, "ticks", state.Ticks)
		m.saveRun(state, e.Detail)
	case core.EventScored:
		m.log.Debug("scored", "score", e.Detail)
	case core.EventSpawned:
		m.log.Debug("pipe spawned", "detail", e.Detail)
	case core.EventReset:
		m.log.Debug("restart")
	}
}

func (m *Model) saveRun(state core.GameState, cause string) {
	if m.store == nil {
		return
	}
	run := storage.Run{
		Score:     state.Score,
		Best:      state.Best,
		Ticks:     state.Ticks,
		Cause:     cause,
		StartedAt: m.runStart,
		EndedAt:   m.clock.Now(),
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.log.Warn("cannot record run", "err", err)
	}
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		m.log.Warn("screenshot failed", "err", err)
		return
	}

	timestamp := m.clock.Now().Format("20060102_150405")
	path := filepath.Join(m.shotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("screenshot failed", "err", err)
		return
	}
	m.log.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showRuns {
		return m.runs.View() + "\n" + helpStyle.Render(m.help.View(m.keys))
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run resets the game and starts the Bubble Tea program.
func Run(game Game, opts Options) error {
	model := NewModel(game, opts)
	game.Reset(model.config)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}

func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".tui-flappy", "screenshots")
	}
	return filepath.Join(home, ".tui-flappy", "screenshots")
}
