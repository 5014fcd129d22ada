// Package game implements the snake state machine: movement on a toroidal
// grid, food, scoring, level-driven speed, and the lifecycle
// NotStarted -> Running <-> Paused -> GameOver/Won -> (reset) -> NotStarted.
//
// The package is pure: no timers, no rendering, no persistence. An external
// driver calls Tick at the cadence given by Speed, and input handlers feed
// direction/pause/start/end requests between ticks. Tick is the single
// writer of movement state; requests only touch the pending direction and
// the phase flags.
package game

import (
	"math"
	"math/rand"
	"time"

	"github.com/mkamenev/torsnake/internal/core"
)

// Options holds the tunable parameters of a game.
type Options struct {
	GridSize       int           // Board is GridSize x GridSize cells
	InitialSpeed   time.Duration // Tick interval at level 1
	MinSpeed       time.Duration // Tick interval at MaxLevel
	MaxLevel       int
	PointsPerLevel int // Score needed to advance one level
	Seed           int64
}

// DefaultOptions returns the standard game parameters.
func DefaultOptions() Options {
	return Options{
		GridSize:       20,
		InitialSpeed:   165 * time.Millisecond,
		MinSpeed:       70 * time.Millisecond,
		MaxLevel:       10,
		PointsPerLevel: 10,
		Seed:           0, // 0 means the caller picks a time-based seed
	}
}

// Game owns the complete snake game state. It is not safe for concurrent
// use; the driver must call all methods from a single goroutine (the
// Bubble Tea update loop in this repo) or guard it with a mutex.
type Game struct {
	opts Options
	rng  *rand.Rand
	tick uint64

	phase     Phase
	snake     []core.Cell // Head at index 0
	direction Direction
	pending   Direction // Latest accepted direction request, applied on next tick
	food      core.Cell
	score     int
	level     int
	speed     time.Duration
}

// New creates a game in the NotStarted phase.
func New(opts Options) *Game {
	if opts.GridSize < 2 {
		opts.GridSize = DefaultOptions().GridSize
	}
	if opts.MaxLevel < 1 {
		opts.MaxLevel = 1
	}
	if opts.PointsPerLevel < 1 {
		opts.PointsPerLevel = DefaultOptions().PointsPerLevel
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	g := &Game{opts: opts}
	g.Reset()
	return g
}

// Reset returns the game to NotStarted with all fields at initial values:
// a single-cell snake at the grid center, heading right, score 0, level 1,
// speed at the level-1 interval. Valid from any phase.
func (g *Game) Reset() {
	g.rng = rand.New(rand.NewSource(g.opts.Seed))
	g.tick = 0
	g.phase = PhaseNotStarted
	center := core.Cell{X: g.opts.GridSize / 2, Y: g.opts.GridSize / 2}
	g.snake = []core.Cell{center}
	g.direction = DirRight
	g.pending = DirRight
	g.score = 0
	g.level = 1
	g.speed = g.SpeedForLevel(1)
	g.spawnFood()
}

// Start transitions NotStarted -> Running. Returns false (no-op) in any
// other phase.
func (g *Game) Start() bool {
	if g.phase != PhaseNotStarted {
		return false
	}
	g.phase = PhaseRunning
	return true
}

// RequestDirection records a direction change to apply on the next tick.
// Requests are coalesced: only the latest accepted request takes effect.
// Rejected (no-op, returns false) when not Running or when the request is
// the direct opposite of the current heading.
func (g *Game) RequestDirection(d Direction) bool {
	if g.phase != PhaseRunning {
		return false
	}
	if d == g.direction.Opposite() {
		return false
	}
	g.pending = d
	return true
}

// TogglePause flips Running <-> Paused. No effect in other phases.
func (g *Game) TogglePause() bool {
	switch g.phase {
	case PhaseRunning:
		g.phase = PhasePaused
		return true
	case PhasePaused:
		g.phase = PhaseRunning
		return true
	default:
		return false
	}
}

// End is a manual transition Running -> GameOver. Not valid while Paused.
func (g *Game) End() bool {
	if g.phase != PhaseRunning {
		return false
	}
	g.phase = PhaseGameOver
	return true
}

// Tick advances the simulation by one step. Only meaningful while Running;
// in any other phase it is a no-op. The caller enforces cadence: at most
// one call per Speed interval.
func (g *Game) Tick() TickResult {
	if g.phase != PhaseRunning {
		return TickResult{}
	}
	g.tick++

	g.direction = g.pending
	dx, dy := g.direction.Delta()
	newHead := g.snake[0].Add(dx, dy).Wrap(g.opts.GridSize)

	// Self-collision freezes the snake as-is.
	if g.isSnakeAt(newHead) {
		g.phase = PhaseGameOver
		return TickResult{Events: []Event{EventGameOver}}
	}

	ate := newHead == g.food
	g.snake = append([]core.Cell{newHead}, g.snake...)

	var events []Event
	if ate {
		g.score++
		events = append(events, EventAte)

		if newLevel := g.LevelForScore(g.score); newLevel > g.level {
			g.level = newLevel
			g.speed = g.SpeedForLevel(newLevel)
			events = append(events, EventLevelUp)
		}

		if !g.spawnFood() {
			// Snake fills the board: nowhere left to place food.
			g.phase = PhaseWon
			events = append(events, EventWon)
		}
	} else {
		g.snake = g.snake[:len(g.snake)-1]
	}

	return TickResult{Events: events}
}

// spawnFood places food on a uniformly random free cell, sampling from the
// explicit free-cell set so placement terminates even on a crowded board.
// Returns false when no free cell exists.
func (g *Game) spawnFood() bool {
	free := make([]core.Cell, 0, g.opts.GridSize*g.opts.GridSize-len(g.snake))
	for y := 0; y < g.opts.GridSize; y++ {
		for x := 0; x < g.opts.GridSize; x++ {
			c := core.Cell{X: x, Y: y}
			if !g.isSnakeAt(c) {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		g.food = core.Cell{X: -1, Y: -1}
		return false
	}
	g.food = free[g.rng.Intn(len(free))]
	return true
}

// isSnakeAt checks whether the snake occupies the given cell.
func (g *Game) isSnakeAt(c core.Cell) bool {
	for _, seg := range g.snake {
		if seg == c {
			return true
		}
	}
	return false
}

// LevelForScore derives the level (1..MaxLevel) from a score.
func (g *Game) LevelForScore(score int) int {
	if score < 0 {
		score = 0
	}
	return core.Min(score/g.opts.PointsPerLevel+1, g.opts.MaxLevel)
}

// SpeedForLevel returns the tick interval for a level: linear interpolation
// from InitialSpeed at level 1 down to MinSpeed at MaxLevel, rounded to the
// nearest millisecond.
func (g *Game) SpeedForLevel(level int) time.Duration {
	level = core.Clamp(level, 1, g.opts.MaxLevel)
	if g.opts.MaxLevel == 1 {
		return g.opts.InitialSpeed
	}
	initial := float64(g.opts.InitialSpeed.Milliseconds())
	min := float64(g.opts.MinSpeed.Milliseconds())
	ms := initial - float64(level-1)/float64(g.opts.MaxLevel-1)*(initial-min)
	return time.Duration(math.Round(ms)) * time.Millisecond
}

// Speed returns the current tick interval.
func (g *Game) Speed() time.Duration {
	return g.speed
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Level returns the current level.
func (g *Game) Level() int {
	return g.level
}

// Phase returns the current lifecycle phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// GridSize returns the board size in cells.
func (g *Game) GridSize() int {
	return g.opts.GridSize
}
