package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/yafb/internal/core"
	"github.com/vovakirdan/yafb/internal/game"
)

// HostCommand is a key handled by the host instead of the game.
type HostCommand int

const (
	HostNone HostCommand = iota
	HostForceQuit
	HostScreenshot
)

// KeyMap defines the key bindings for the game.
type KeyMap struct {
	Start      key.Binding
	HighScores key.Binding
	Quit       key.Binding
	Confirm    key.Binding
	Menu       key.Binding
	Restart    key.Binding
	Edit       key.Binding
	Backspace  key.Binding
	Flap       key.Binding
	ForceQuit  key.Binding
	Screenshot key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Start: key.NewBinding(
			key.WithKeys("s", "S"),
			key.WithHelp("s", "start"),
		),
		HighScores: key.NewBinding(
			key.WithKeys("h", "H"),
			key.WithHelp("h", "high scores"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "Q"),
			key.WithHelp("q", "quit"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Menu: key.NewBinding(
			key.WithKeys("m", "M"),
			key.WithHelp("m", "menu"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "R"),
			key.WithHelp("r", "restart"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e", "E"),
			key.WithHelp("e", "edit name"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "delete"),
		),
		Flap: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "flap"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "exit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// binding returns the binding for a game key.
func (k KeyMap) binding(gk core.Key) (key.Binding, bool) {
	switch gk {
	case core.KeyStart:
		return k.Start, true
	case core.KeyHighScores:
		return k.HighScores, true
	case core.KeyQuit:
		return k.Quit, true
	case core.KeyConfirm:
		return k.Confirm, true
	case core.KeyMenu:
		return k.Menu, true
	case core.KeyRestart:
		return k.Restart, true
	case core.KeyEdit:
		return k.Edit, true
	case core.KeyBackspace:
		return k.Backspace, true
	case core.KeyFlap:
		return k.Flap, true
	}
	return key.Binding{}, false
}

// KeyMapper translates Bubble Tea key messages to game key events.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with the given bindings.
func NewKeyMapper(keys KeyMap) *KeyMapper {
	return &KeyMapper{keys: keys}
}

// Keys returns the bindings in use.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to a game key event, or to a host
// command for keys the game never sees. Letter keys carry the typed rune
// so name editing can use them.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (core.KeyEvent, HostCommand) {
	switch {
	case key.Matches(msg, km.keys.ForceQuit):
		return core.NoKey, HostForceQuit
	case key.Matches(msg, km.keys.Screenshot):
		return core.NoKey, HostScreenshot
	}

	typed := rune(0)
	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && !msg.Alt {
		typed = msg.Runes[0]
	}

	for _, gk := range core.AllKeys() {
		b, ok := km.keys.binding(gk)
		if ok && key.Matches(msg, b) {
			return core.KeyEvent{Key: gk, Rune: typed}, HostNone
		}
	}

	if typed != 0 {
		return core.PressRune(typed), HostNone
	}
	return core.NoKey, HostNone
}

// modeHelp adapts the bindings to help.KeyMap for a single mode, showing
// only the keys that mode reacts to.
type modeHelp struct {
	keys KeyMap
	mode game.Mode
}

// ShortHelp returns key bindings for the short help view.
func (h modeHelp) ShortHelp() []key.Binding {
	var out []key.Binding
	for _, gk := range game.KeysFor(h.mode) {
		if b, ok := h.keys.binding(gk); ok {
			out = append(out, b)
		}
	}
	if h.mode == game.ModeEdit {
		out = append(out, key.NewBinding(key.WithKeys("a-z"), key.WithHelp("a-z 0-9", "type")))
	}
	return append(out, h.keys.ForceQuit)
}

// FullHelp returns key bindings for the full help view.
func (h modeHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp(), {h.keys.Screenshot}}
}
