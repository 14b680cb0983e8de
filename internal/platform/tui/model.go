package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/vovakirdan/leftright/internal/config"
	"github.com/vovakirdan/leftright/internal/core"
	"github.com/vovakirdan/leftright/internal/registry"
)

// Options configures a Model beyond the game and runtime config.
type Options struct {
	// Config is the front-end configuration (theme, keys, help footer).
	Config config.Config

	// Clock measures time between events. Defaults to the real clock.
	Clock quartz.Clock

	// Logger receives phase changes. Defaults to a discarding logger.
	Logger *log.Logger

	// ScreenshotDir is where Ctrl+S frames are written.
	// Defaults to ~/.leftright/screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model that drives a game.
// It is the only owner of the game; Bubble Tea calls Update with one message
// at a time, so time deltas and key presses reach the game in arrival order.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	palette  Palette
	showHelp bool
	clock    quartz.Clock
	lastTick time.Time
	logger   *log.Logger
	shotDir  string
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if opts.Clock == nil {
		opts.Clock = quartz.NewReal()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = opts.Clock.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = opts.Config.Display.TickRate
	}

	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(lipgloss.Color(opts.Config.Theme.Text))
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(lipgloss.Color(opts.Config.Theme.Hint))
	h.Styles.ShortSeparator = h.Styles.ShortDesc

	m := Model{
		game:     game,
		config:   cfg,
		keys:     NewKeyMap(opts.Config.Keys),
		help:     h,
		palette:  NewPalette(opts.Config.Theme),
		showHelp: opts.Config.Display.ShowHelp,
		clock:    opts.Clock,
		lastTick: opts.Clock.Now(),
		logger:   opts.Logger.WithPrefix("tui"),
		shotDir:  opts.ScreenshotDir,
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.gameHeight(cfg.ScreenH))
	m.help.Width = cfg.ScreenW

	game.Reset(cfg)
	m.logger.Debug("game ready", "game", game.ID(), "seed", cfg.Seed, "tick_rate", cfg.TickRate)
	return m
}

// gameHeight is the screen height left for the game once the help footer
// takes its row.
func (m Model) gameHeight(total int) int {
	if m.showHelp {
		return core.Max(0, total-1)
	}
	return total
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		m.flush()
		return m, tickCmd(m.config.TickRate)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionScreenshot:
		m.saveScreenshot()
		return m, nil
	case core.ActionNone:
		return m, nil
	}

	// Account for the time since the last tick before the key lands, so the
	// measured reaction time doesn't snap to the tick interval.
	m.flush()
	m.report(m.game.Input(action), "key", action.String())
	return m, nil
}

// handleResize processes window resize events.
// The round in progress is kept; only the drawing surface changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, m.gameHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// flush advances the game by the time elapsed on the clock since the last call.
func (m *Model) flush() {
	now := m.clock.Now()
	dt := now.Sub(m.lastTick)
	m.lastTick = now
	if dt <= 0 {
		return
	}
	m.report(m.game.Advance(dt), "dt", dt)
}

// report logs phase changes.
func (m *Model) report(res core.StepResult, keyvals ...any) {
	if !res.Changed {
		return
	}
	st := res.State
	m.logger.Info("phase changed", append([]any{"phase", st.Phase, "status", st.Status}, keyvals...)...)
	if st.Phase == "result" {
		m.logger.Info("round finished", "won", st.Won, "elapsed", fmt.Sprintf("%.3f", st.Elapsed))
	}
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := m.shotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("screenshot skipped", "error", err)
			return
		}
		dir = filepath.Join(home, ".leftright", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := m.clock.Now().Format("20060102_150405.000")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	out := RenderScreen(m.screen, m.palette)
	if m.showHelp {
		out += "\n" + m.help.View(m.keys)
	}
	return out
}

// Game returns the game the model drives.
func (m Model) Game() registry.Game {
	return m.game
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
