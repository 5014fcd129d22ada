// Package audio provides named sound cues for game events. Playback is
// fire-and-forget: a failing or disabled player never affects game state.
package audio

import (
	"io"
	"os"
)

// Cue names a game sound.
type Cue int

const (
	CueStart Cue = iota
	CueEat
	CueLevelUp
	CueGameOver
)

func (c Cue) String() string {
	switch c {
	case CueStart:
		return "start"
	case CueEat:
		return "eat"
	case CueLevelUp:
		return "level_up"
	case CueGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Player plays named cues. Implementations must tolerate being called at
// any time and must never block the game loop.
type Player interface {
	Play(c Cue)
	SetEnabled(enabled bool)
	Enabled() bool
}

// BellPlayer maps every cue to the terminal bell. It is deliberately crude:
// the terminal decides what a bell sounds (or flashes) like.
type BellPlayer struct {
	out     io.Writer
	enabled bool
}

// NewBellPlayer creates a bell player writing to the given writer,
// defaulting to stderr so the bell does not disturb the rendered frame.
func NewBellPlayer(out io.Writer) *BellPlayer {
	if out == nil {
		out = os.Stderr
	}
	return &BellPlayer{out: out, enabled: true}
}

// Play rings the terminal bell. Write errors are swallowed.
func (p *BellPlayer) Play(Cue) {
	if !p.enabled {
		return
	}
	_, _ = p.out.Write([]byte{'\a'})
}

// SetEnabled toggles the global mute flag.
func (p *BellPlayer) SetEnabled(enabled bool) {
	p.enabled = enabled
}

// Enabled reports whether playback is on.
func (p *BellPlayer) Enabled() bool {
	return p.enabled
}

// NullPlayer discards all cues.
type NullPlayer struct{}

func (NullPlayer) Play(Cue)        {}
func (NullPlayer) SetEnabled(bool) {}
func (NullPlayer) Enabled() bool   { return false }

var (
	_ Player = (*BellPlayer)(nil)
	_ Player = NullPlayer{}
)
