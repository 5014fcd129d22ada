package game

import (
	"time"

	"github.com/mkamenev/torsnake/internal/core"
)

// Phase is the lifecycle state of a game.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhasePaused
	PhaseGameOver
	PhaseWon // Terminal like GameOver, reached when the snake fills the board
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	case PhaseWon:
		return "won"
	default:
		return "unknown"
	}
}

// Terminal reports whether the phase is an end state.
func (p Phase) Terminal() bool {
	return p == PhaseGameOver || p == PhaseWon
}

// Snapshot is a read-only copy of the game state, consumed by the renderer
// each frame and by determinism tests.
type Snapshot struct {
	Tick      uint64
	Phase     Phase
	Snake     []core.Cell // Head first
	Food      core.Cell
	Direction Direction
	Score     int
	Level     int
	Speed     time.Duration
}

// Snapshot returns a copy of the current state. The returned snake slice is
// owned by the caller.
func (g *Game) Snapshot() Snapshot {
	snake := make([]core.Cell, len(g.snake))
	copy(snake, g.snake)

	return Snapshot{
		Tick:      g.tick,
		Phase:     g.phase,
		Snake:     snake,
		Food:      g.food,
		Direction: g.direction,
		Score:     g.score,
		Level:     g.level,
		Speed:     g.speed,
	}
}
