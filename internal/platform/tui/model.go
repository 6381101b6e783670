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

	"github.com/vovakirdan/yafb/internal/core"
	"github.com/vovakirdan/yafb/internal/game"
)

const (
	maxPendingKeys = 8 // Presses beyond this are dropped
	helpRows       = 1 // Help line below the playfield
)

// Model is the Bubble Tea model hosting one game.
type Model struct {
	game     *game.Game
	screen   *core.Screen
	mapper   *KeyMapper
	help     help.Model
	config   core.RuntimeConfig
	logger   *log.Logger
	pending  []core.KeyEvent
	lastTick time.Time
	width    int
	height   int
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(g *game.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	h := help.New()
	h.ShowAll = false

	return Model{
		game:   g,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		mapper: NewKeyMapper(DefaultKeyMap()),
		help:   h,
		config: cfg,
		logger: logger,
	}
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
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey queues game keys for the next tick and runs host commands now.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ev, cmd := m.mapper.MapKey(msg)
	switch cmd {
	case HostForceQuit:
		m.quitting = true
		return m, tea.Quit
	case HostScreenshot:
		m.saveScreenshot()
		return m, nil
	}

	if ev.IsNone() {
		return m, nil
	}
	if len(m.pending) >= maxPendingKeys {
		m.logger.Debug("key queue full, dropping key", "key", ev.Key)
		return m, nil
	}
	m.pending = append(m.pending, ev)
	return m, nil
}

// handleResize records the terminal size. The playfield keeps its
// configured dimensions.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	return m, nil
}

// handleTick delivers the real elapsed time and at most one queued key.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var delta time.Duration
	if !m.lastTick.IsZero() {
		delta = now.Sub(m.lastTick)
	}
	m.lastTick = now

	ev := core.NoKey
	if len(m.pending) > 0 {
		ev = m.pending[0]
		m.pending = m.pending[1:]
	}

	res := m.game.Tick(delta, ev)
	if res.Quit {
		m.quitting = true
		return m, tea.Quit
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	dir := filepath.Join(home, ".yafb", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("yafb_%s_%s.txt", m.game.Mode(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	needW, needH := m.screen.Width(), m.screen.Height()+helpRows
	if m.width > 0 && (m.width < needW || m.height < needH) {
		return fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d.\nResize or press ctrl+c to exit.",
			needW, needH, m.width, m.height)
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	helpLine := m.help.View(modeHelp{keys: m.mapper.Keys(), mode: m.game.Mode()})
	return lipgloss.JoinVertical(lipgloss.Left, RenderScreen(m.screen), helpLine)
}

// Run starts the Bubble Tea program for the given game.
func Run(g *game.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(g, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
