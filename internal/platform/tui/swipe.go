package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkamenev/torsnake/internal/core"
	"github.com/mkamenev/torsnake/internal/game"
)

// Swipe thresholds: a press-drag-release shorter than swipeMaxDuration and
// spanning at least swipeMinCells along its dominant axis resolves to a
// direction request. Tuned for terminal cells rather than pixels.
const (
	swipeMinCells    = 3
	swipeMaxDuration = 300 * time.Millisecond
)

// SwipeTracker resolves mouse press/release pairs into direction requests,
// giving touch-style controls on terminals that report mouse events.
type SwipeTracker struct {
	active bool
	startX int
	startY int
	start  time.Time
}

// Update feeds one mouse message. It returns a direction and true when a
// release completes a valid swipe.
func (t *SwipeTracker) Update(msg tea.MouseMsg, now time.Time) (game.Direction, bool) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			t.active = true
			t.startX = msg.X
			t.startY = msg.Y
			t.start = now
		}
		return 0, false

	case tea.MouseActionRelease:
		if !t.active {
			return 0, false
		}
		t.active = false

		if now.Sub(t.start) > swipeMaxDuration {
			return 0, false
		}
		return resolveSwipe(msg.X-t.startX, msg.Y-t.startY)
	}

	return 0, false
}

// resolveSwipe picks the dominant axis of a drag delta.
func resolveSwipe(dx, dy int) (game.Direction, bool) {
	if core.Abs(dx) >= core.Abs(dy) {
		if core.Abs(dx) < swipeMinCells {
			return 0, false
		}
		if dx > 0 {
			return game.DirRight, true
		}
		return game.DirLeft, true
	}

	if core.Abs(dy) < swipeMinCells {
		return 0, false
	}
	if dy > 0 {
		return game.DirDown, true
	}
	return game.DirUp, true
}
