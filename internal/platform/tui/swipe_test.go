package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkamenev/torsnake/internal/game"
)

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease}
}

func TestSwipeDirections(t *testing.T) {
	tests := []struct {
		name           string
		startX, startY int
		endX, endY     int
		want           game.Direction
	}{
		{"right", 5, 5, 10, 5, game.DirRight},
		{"left", 10, 5, 5, 6, game.DirLeft},
		{"down", 5, 2, 5, 8, game.DirDown},
		{"up", 5, 8, 6, 2, game.DirUp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tr SwipeTracker
			now := time.Now()

			if _, ok := tr.Update(press(tt.startX, tt.startY), now); ok {
				t.Fatal("press should not resolve a swipe")
			}
			got, ok := tr.Update(release(tt.endX, tt.endY), now.Add(100*time.Millisecond))
			if !ok {
				t.Fatal("release should resolve a swipe")
			}
			if got != tt.want {
				t.Errorf("swipe = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSwipeTooShort(t *testing.T) {
	var tr SwipeTracker
	now := time.Now()

	tr.Update(press(5, 5), now)
	if _, ok := tr.Update(release(7, 5), now.Add(50*time.Millisecond)); ok {
		t.Error("2-cell drag should not count as a swipe")
	}
}

func TestSwipeTooSlow(t *testing.T) {
	var tr SwipeTracker
	now := time.Now()

	tr.Update(press(5, 5), now)
	if _, ok := tr.Update(release(15, 5), now.Add(time.Second)); ok {
		t.Error("slow drag should not count as a swipe")
	}
}

func TestSwipeReleaseWithoutPress(t *testing.T) {
	var tr SwipeTracker
	if _, ok := tr.Update(release(10, 10), time.Now()); ok {
		t.Error("release without press should not resolve")
	}
}

func TestSwipeDominantAxis(t *testing.T) {
	// A diagonal drag resolves to whichever axis moved further.
	var tr SwipeTracker
	now := time.Now()

	tr.Update(press(0, 0), now)
	got, ok := tr.Update(release(4, 8), now.Add(100*time.Millisecond))
	if !ok {
		t.Fatal("diagonal drag should still resolve")
	}
	if got != game.DirDown {
		t.Errorf("swipe = %v, want %v", got, game.DirDown)
	}
}
