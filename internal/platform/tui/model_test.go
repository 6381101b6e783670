package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/yafb/internal/config"
	"github.com/vovakirdan/yafb/internal/core"
	"github.com/vovakirdan/yafb/internal/game"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	tuning := config.Default()
	g := game.New(game.Options{Tuning: tuning, Seed: 1})
	cfg := core.DefaultConfig()
	cfg.ScreenW = tuning.Screen.Width
	cfg.ScreenH = tuning.Screen.Height
	return NewModel(g, cfg, nil)
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestKeysWaitForTick(t *testing.T) {
	m := newTestModel(t)
	start := time.Now()

	m, _ = send(t, m, runeMsg('s'))
	if m.game.Mode() != game.ModeMenu {
		t.Fatal("a key must not change the mode before the next tick")
	}

	m, cmd := send(t, m, TickMsg(start))
	if m.game.Mode() != game.ModePlaying {
		t.Errorf("got mode %v, expected Playing", m.game.Mode())
	}
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
}

func TestOneKeyPerTick(t *testing.T) {
	m := newTestModel(t)
	start := time.Now()

	// h then m: HighScore on the first tick, back to Menu on the second.
	m, _ = send(t, m, runeMsg('h'))
	m, _ = send(t, m, runeMsg('m'))

	m, _ = send(t, m, TickMsg(start))
	if m.game.Mode() != game.ModeHighScore {
		t.Fatalf("got mode %v, expected HighScore", m.game.Mode())
	}
	m, _ = send(t, m, TickMsg(start.Add(time.Millisecond)))
	if m.game.Mode() != game.ModeMenu {
		t.Errorf("got mode %v, expected Menu", m.game.Mode())
	}
}

func TestTickDeliversRealDelta(t *testing.T) {
	m := newTestModel(t)
	start := time.Now()

	m, _ = send(t, m, runeMsg('s'))
	m, _ = send(t, m, TickMsg(start))
	y := m.game.Player().Y

	// 40ms is less than one step.
	m, _ = send(t, m, TickMsg(start.Add(40*time.Millisecond)))
	if m.game.Player().Y != y {
		t.Fatal("player moved before a full step elapsed")
	}
	// 80ms total crosses the step.
	m, _ = send(t, m, TickMsg(start.Add(80*time.Millisecond)))
	if m.game.Player().Y == y {
		t.Error("player should fall once a full step elapsed")
	}
}

func TestQuitFromMenu(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, runeMsg('q'))
	m, cmd := send(t, m, TickMsg(time.Now()))
	if !m.quitting {
		t.Error("q in the menu should quit")
	}
	if cmd == nil {
		t.Error("quit should return a command")
	}
	if m.View() != "" {
		t.Error("a quitting model renders nothing")
	}
}

func TestForceQuit(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !m.quitting {
		t.Error("ctrl+c should always quit")
	}
}

func TestPendingKeysBounded(t *testing.T) {
	m := newTestModel(t)
	for i := 0; i < maxPendingKeys+5; i++ {
		m, _ = send(t, m, runeMsg('x'))
	}
	if len(m.pending) != maxPendingKeys {
		t.Errorf("got %d pending keys, expected %d", len(m.pending), maxPendingKeys)
	}
}

func TestViewTooSmall(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 40, Height: 20})
	if !strings.Contains(m.View(), "Terminal too small") {
		t.Error("small terminal should get a resize hint")
	}

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 60})
	view := ansiSeq.ReplaceAllString(m.View(), "")
	if !strings.Contains(view, "Welcome to Yet Another Flappy Bird!") {
		t.Error("menu view should show the title")
	}
	if !strings.Contains(view, "start") {
		t.Error("menu view should show the help line")
	}
}
