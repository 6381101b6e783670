package game

import (
	"unicode"
	"unicode/utf8"

	"github.com/vovakirdan/yafb/internal/core"
)

// Outcome describes what a key event did.
type Outcome int

const (
	OutcomeIgnored Outcome = iota // No entry for (mode, key)
	OutcomeHandled                // Entry ran
	OutcomeQuit                   // Entry asked the host to terminate
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "Ignored"
	case OutcomeHandled:
		return "Handled"
	case OutcomeQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

type transition func(g *Game, ev core.KeyEvent) Outcome

// transitions is the complete (mode, key) table. Pairs not listed are ignored.
var transitions = map[Mode]map[core.Key]transition{
	ModeMenu: {
		core.KeyStart:      startRun,
		core.KeyHighScores: goTo(ModeHighScore),
		core.KeyQuit:       quit,
	},
	ModePlaying: {
		core.KeyFlap: flap,
	},
	ModeEnd: {
		core.KeyEdit:    saveAndEdit,
		core.KeyMenu:    goTo(ModeMenu),
		core.KeyRestart: startRun,
		core.KeyQuit:    quit,
		core.KeyConfirm: confirmSave,
	},
	ModeEdit: {
		core.KeyRune:      appendRune,
		core.KeyBackspace: deleteRune,
		core.KeyConfirm:   goTo(ModeEnd),
	},
	ModeHighScore: {
		core.KeyMenu:  goTo(ModeMenu),
		core.KeyStart: startRun,
	},
}

// Handles reports whether key does anything in mode.
func Handles(mode Mode, key core.Key) bool {
	_, ok := transitions[mode][key]
	return ok
}

// KeysFor returns the keys handled in mode, in core.AllKeys order.
func KeysFor(mode Mode) []core.Key {
	var keys []core.Key
	for _, k := range core.AllKeys() {
		if Handles(mode, k) {
			keys = append(keys, k)
		}
	}
	return keys
}

func (g *Game) dispatch(ev core.KeyEvent) Outcome {
	if ev.IsNone() {
		return OutcomeIgnored
	}
	// While editing, letter keys type their character instead of their command.
	if g.mode == ModeEdit && ev.Rune != 0 && ev.Key != core.KeyConfirm && ev.Key != core.KeyBackspace {
		ev.Key = core.KeyRune
	}

	t, ok := transitions[g.mode][ev.Key]
	if !ok {
		return OutcomeIgnored
	}
	return t(g, ev)
}

func goTo(mode Mode) transition {
	return func(g *Game, _ core.KeyEvent) Outcome {
		g.mode = mode
		return OutcomeHandled
	}
}

func startRun(g *Game, _ core.KeyEvent) Outcome {
	g.reset()
	g.mode = ModePlaying
	return OutcomeHandled
}

func quit(_ *Game, _ core.KeyEvent) Outcome {
	return OutcomeQuit
}

func flap(g *Game, _ core.KeyEvent) Outcome {
	g.player.Flap()
	return OutcomeHandled
}

func saveAndEdit(g *Game, _ core.KeyEvent) Outcome {
	g.saveScore()
	g.mode = ModeEdit
	return OutcomeHandled
}

func confirmSave(g *Game, _ core.KeyEvent) Outcome {
	g.saveScore()
	return OutcomeHandled
}

func appendRune(g *Game, ev core.KeyEvent) Outcome {
	r := ev.Rune
	if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
		return OutcomeIgnored
	}
	if utf8.RuneCountInString(g.playerName) >= g.tuning.Player.MaxNameLength {
		return OutcomeIgnored
	}
	g.playerName += string(r)
	return OutcomeHandled
}

func deleteRune(g *Game, _ core.KeyEvent) Outcome {
	if g.playerName == "" {
		return OutcomeIgnored
	}
	_, size := utf8.DecodeLastRuneInString(g.playerName)
	g.playerName = g.playerName[:len(g.playerName)-size]
	return OutcomeHandled
}
