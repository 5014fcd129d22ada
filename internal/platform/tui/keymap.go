package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkamenev/torsnake/internal/game"
)

// Intent is a semantic input request, abstracted from physical key presses.
// Intents only ever touch pending state on the game; the tick remains the
// single writer of movement state.
type Intent int

const (
	IntentNone Intent = iota
	IntentUp
	IntentDown
	IntentLeft
	IntentRight
	IntentStart
	IntentPause
	IntentEnd
	IntentQuit
)

// KeyMapper translates Bubble Tea key messages to intents.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// Map translates a key message to an intent.
func (km *KeyMapper) Map(msg tea.KeyMsg) Intent {
	switch msg.String() {
	case "ctrl+c", "q":
		return IntentQuit
	case "up", "w", "k":
		return IntentUp
	case "down", "s", "j":
		return IntentDown
	case "left", "a", "h":
		return IntentLeft
	case "right", "d", "l":
		return IntentRight
	case "enter", " ":
		return IntentStart
	case "p", "P", "esc":
		return IntentPause
	case "x", "X":
		return IntentEnd
	}
	return IntentNone
}

// Direction returns the game direction for a movement intent.
func (i Intent) Direction() (game.Direction, bool) {
	switch i {
	case IntentUp:
		return game.DirUp, true
	case IntentDown:
		return game.DirDown, true
	case IntentLeft:
		return game.DirLeft, true
	case IntentRight:
		return game.DirRight, true
	default:
		return 0, false
	}
}
