package core

// Key represents a semantic key event, abstracted from physical key presses.
// The platform maps terminal keys to these values so the game never sees
// raw terminal input.
type Key int

const (
	KeyNone        Key = iota
	KeyStart           // S - start a run
	KeyHighScores      // H - view the high-score table
	KeyQuit            // Q - leave the game
	KeyConfirm         // Enter - confirm / save
	KeyMenu            // M - back to the main menu
	KeyRestart         // R - restart after game over
	KeyEdit            // E - edit the player name
	KeyBackspace       // Backspace - delete while editing
	KeyFlap            // Space - flap
	KeyRune            // Any printable character, carried in KeyEvent.Rune
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyStart:
		return "Start"
	case KeyHighScores:
		return "HighScores"
	case KeyQuit:
		return "Quit"
	case KeyConfirm:
		return "Confirm"
	case KeyMenu:
		return "Menu"
	case KeyRestart:
		return "Restart"
	case KeyEdit:
		return "Edit"
	case KeyBackspace:
		return "Backspace"
	case KeyFlap:
		return "Flap"
	case KeyRune:
		return "Rune"
	default:
		return "Unknown"
	}
}

// AllKeys lists every key the game can receive, KeyNone included.
func AllKeys() []Key {
	return []Key{
		KeyNone, KeyStart, KeyHighScores, KeyQuit, KeyConfirm, KeyMenu,
		KeyRestart, KeyEdit, KeyBackspace, KeyFlap, KeyRune,
	}
}

// KeyEvent is the optional input delivered with a single tick.
// The zero value means "no key this tick".
type KeyEvent struct {
	Key  Key
	Rune rune // Set for KeyRune and for letter keys, so name editing can use them
}

// NoKey is the empty key event.
var NoKey = KeyEvent{}

// Press builds a key event for a command key.
func Press(k Key) KeyEvent {
	return KeyEvent{Key: k}
}

// PressRune builds a KeyRune event for a printable character.
func PressRune(r rune) KeyEvent {
	return KeyEvent{Key: KeyRune, Rune: r}
}

// IsNone reports whether the event carries no key.
func (e KeyEvent) IsNone() bool {
	return e.Key == KeyNone
}
